package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-eats/internal/domain"
	"github.com/fsdevblog/groph-eats/internal/logger"
	"github.com/fsdevblog/groph-eats/internal/service"
	"github.com/fsdevblog/groph-eats/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-eats/internal/transport/api/testutils"
)

type SubscriptionHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockSubService *mocks.MockSubscriptionServicer
	jwtSecret      []byte
	merchantToken  string
}

func TestSubscriptionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SubscriptionHandlerTestSuite))
}

func (s *SubscriptionHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockSubService = mocks.NewMockSubscriptionServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	router, routerErr := New(RouterArgs{
		Logger:              logger.New(os.Stdout),
		SubscriptionService: s.mockSubService,
		JWTSecretKey:        s.jwtSecret,
	})
	s.Require().NoError(routerErr)
	s.router = router

	token, tokenErr := merchantJWT(1, s.jwtSecret)
	s.Require().NoError(tokenErr)
	s.merchantToken = token
}

func makeSubscription() *domain.Subscription {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.Subscription{
		ID:               1,
		MerchantID:       1,
		PlanCode:         "standard",
		Price:            decimal.NewFromFloat(49.90),
		Status:           domain.SubscriptionStatusActive,
		CurrentPeriodEnd: now.AddDate(0, 1, 0),
		NextChargeAt:     now.AddDate(0, 1, 0),
	}
}

func (s *SubscriptionHandlerTestSuite) TestShow() {
	sub := makeSubscription()
	sub.PendingVoucher = "WELCOME10"

	s.mockSubService.EXPECT().
		GetByMerchantID(gomock.Any(), int64(1)).
		Return(sub, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + SubscriptionRoute,
	}, testutils.WithBearerToken(s.merchantToken))
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Equal(http.StatusOK, res.StatusCode)

	var body struct {
		Subscription SubscriptionResponse `json:"subscription"`
	}
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Equal("standard", body.Subscription.PlanCode)
	s.Equal(domain.SubscriptionStatusActive, body.Subscription.Status)
	s.Equal("WELCOME10", body.Subscription.PendingVoucher)
}

func (s *SubscriptionHandlerTestSuite) TestShowNotFound() {
	s.mockSubService.EXPECT().
		GetByMerchantID(gomock.Any(), int64(1)).
		Return(nil, domain.ErrRecordNotFound)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + SubscriptionRoute,
	}, testutils.WithBearerToken(s.merchantToken))
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Equal(http.StatusNotFound, res.StatusCode)
}

func (s *SubscriptionHandlerTestSuite) TestHistory() {
	now := time.Now().UTC().Truncate(time.Second)
	flows := []service.EventFlow{
		{
			Key:       "req-1",
			Kind:      "request_id",
			StartedAt: now.Add(-time.Minute),
			EndedAt:   now,
			Events: []domain.SubscriptionEvent{
				{
					Kind:       domain.EventKindChargeSucceeded,
					Amount:     decimal.NewFromFloat(49.90),
					OccurredAt: now,
				}, {
					Kind:       domain.EventKindChargeFailed,
					Message:    "card declined",
					OccurredAt: now.Add(-time.Minute),
				},
			},
		}, {
			Key:       "2024-11-01",
			Kind:      "day_bucket",
			Heuristic: true,
			StartedAt: now.Add(-24 * time.Hour),
			EndedAt:   now.Add(-24 * time.Hour),
			Events: []domain.SubscriptionEvent{
				{Kind: domain.EventKindVoucherRedeemed, OccurredAt: now.Add(-24 * time.Hour)},
			},
		},
	}

	s.mockSubService.EXPECT().
		History(gomock.Any(), int64(1)).
		Return(flows, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + SubscriptionHistoryRoute,
	}, testutils.WithBearerToken(s.merchantToken))
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Equal(http.StatusOK, res.StatusCode)

	var body struct {
		Flows []EventFlowResponse `json:"flows"`
	}
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Require().Len(body.Flows, 2)
	s.Equal("req-1", body.Flows[0].Key)
	s.False(body.Flows[0].Heuristic)
	s.Len(body.Flows[0].Events, 2)
	s.Equal("card declined", body.Flows[0].Events[1].Message)
	s.True(body.Flows[1].Heuristic)
}

func (s *SubscriptionHandlerTestSuite) TestRedeemVoucher() {
	voucher := domain.Voucher{
		ID:         1,
		Code:       "WELCOME10",
		PercentOff: 10,
	}

	s.mockSubService.EXPECT().
		RedeemVoucher(gomock.Any(), int64(1), "WELCOME10").
		Return(&voucher, nil)
	s.mockSubService.EXPECT().
		RedeemVoucher(gomock.Any(), int64(1), "EXPIRED").
		Return(nil, domain.ErrVoucherExhausted)
	s.mockSubService.EXPECT().
		RedeemVoucher(gomock.Any(), int64(1), "GHOST").
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		payload    string
		wantStatus int
	}{
		{
			name:       "ok",
			payload:    `{"code":"WELCOME10"}`,
			wantStatus: http.StatusOK,
		}, {
			name:       "exhausted voucher",
			payload:    `{"code":"EXPIRED"}`,
			wantStatus: http.StatusConflict,
		}, {
			name:       "unknown code",
			payload:    `{"code":"GHOST"}`,
			wantStatus: http.StatusNotFound,
		}, {
			name:       "empty payload",
			payload:    `{}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + SubscriptionRedeemVoucherRoute,
				Body:   bytes.NewReader([]byte(t.payload)),
			},
				testutils.WithBearerToken(s.merchantToken),
				testutils.WithHeader("Content-Type", "application/json"),
			)
			s.Require().NoError(err)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusOK {
				var body struct {
					Code       string `json:"code"`
					PercentOff int32  `json:"percentOff"`
				}
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
				s.Equal("WELCOME10", body.Code)
				s.Equal(int32(10), body.PercentOff)
			}
		})
	}
}

func (s *SubscriptionHandlerTestSuite) TestCancel() {
	sub := makeSubscription()
	sub.Status = domain.SubscriptionStatusCanceled

	s.mockSubService.EXPECT().
		Cancel(gomock.Any(), int64(1)).
		Return(sub, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + SubscriptionCancelRoute,
	}, testutils.WithBearerToken(s.merchantToken))
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Equal(http.StatusOK, res.StatusCode)

	var body struct {
		Subscription SubscriptionResponse `json:"subscription"`
	}
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Equal(domain.SubscriptionStatusCanceled, body.Subscription.Status)
}
