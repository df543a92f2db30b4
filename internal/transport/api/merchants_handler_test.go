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
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-eats/internal/domain"
	"github.com/fsdevblog/groph-eats/internal/logger"
	"github.com/fsdevblog/groph-eats/internal/repository/repoargs"
	"github.com/fsdevblog/groph-eats/internal/service"
	"github.com/fsdevblog/groph-eats/internal/service/psswd"
	"github.com/fsdevblog/groph-eats/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-eats/internal/transport/api/testutils"
)

type MerchantsHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockMerchantService *mocks.MockMerchantServicer
	jwtSecret           []byte
	adminToken          string
}

func TestMerchantsHandlerSuite(t *testing.T) {
	suite.Run(t, new(MerchantsHandlerTestSuite))
}

func (s *MerchantsHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockMerchantService = mocks.NewMockMerchantServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	router, routerErr := New(RouterArgs{
		Logger:          logger.New(os.Stdout),
		MerchantService: s.mockMerchantService,
		PasswordHasher:  psswd.PasswordHash(""),
		JWTSecretKey:    s.jwtSecret,
	})
	s.Require().NoError(routerErr)
	s.router = router

	token, tokenErr := adminJWT(s.jwtSecret)
	s.Require().NoError(tokenErr)
	s.adminToken = token
}

func makeMerchant(id int64, name, slug string) domain.Merchant {
	return domain.Merchant{
		ID:        id,
		UUID:      uuid.New(),
		Name:      name,
		Slug:      slug,
		Active:    true,
		CreatedAt: time.Now(),
	}
}

func (s *MerchantsHandlerTestSuite) TestIndex() {
	merchants := []domain.Merchant{
		makeMerchant(21, "Pizza Roma", "pizza-roma"),
		makeMerchant(22, "Sushi Bar", "sushi-bar"),
	}

	s.mockMerchantService.EXPECT().
		GetPage(gomock.Any(), repoargs.MerchantCursorPage{AfterID: 20, Limit: 2}).
		Return(merchants, nil)

	// limit выше потолка урезается.
	s.mockMerchantService.EXPECT().
		GetPage(gomock.Any(), repoargs.MerchantCursorPage{Limit: maxMerchantsPageLimit}).
		Return([]domain.Merchant{}, nil)

	cases := []struct {
		name      string
		query     string
		wantCount int
	}{
		{name: "after and limit", query: "?after=20&limit=2", wantCount: 2},
		{name: "limit clamped", query: "?limit=500", wantCount: 0},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    RouteGroup + AdminMerchantsRoute + t.query,
			}, testutils.WithBearerToken(s.adminToken))
			s.Require().NoError(err)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(http.StatusOK, res.StatusCode)

			var body struct {
				Merchants []MerchantResponse `json:"merchants"`
			}
			s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
			s.Len(body.Merchants, t.wantCount)
		})
	}
}

func (s *MerchantsHandlerTestSuite) TestIndexWrongRole() {
	merchantToken, tokenErr := merchantJWT(1, s.jwtSecret)
	s.Require().NoError(tokenErr)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + AdminMerchantsRoute,
	}, testutils.WithBearerToken(merchantToken))
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Equal(http.StatusForbidden, res.StatusCode)
}

func (s *MerchantsHandlerTestSuite) TestCreate() {
	created := makeMerchant(1, "Pizza Roma", "pizza-roma")

	s.mockMerchantService.EXPECT().
		CreateWithOwner(gomock.Any(), gomock.Any(), service.CreateMerchantArgs{
			Name:          "Pizza Roma",
			OwnerUsername: "owner",
			OwnerPassword: "password1",
		}).
		Return(&created, nil)

	s.mockMerchantService.EXPECT().
		CreateWithOwner(gomock.Any(), gomock.Any(), service.CreateMerchantArgs{
			Name:          "Pizza Roma",
			OwnerUsername: "duplicate",
			OwnerPassword: "password1",
		}).
		Return(nil, domain.ErrOwnerConflict)

	cases := []struct {
		name       string
		payload    string
		wantStatus int
	}{
		{
			name:       "ok",
			payload:    `{"name":"Pizza Roma","ownerLogin":"owner","ownerPassword":"password1"}`,
			wantStatus: http.StatusCreated,
		}, {
			name:       "owner conflict",
			payload:    `{"name":"Pizza Roma","ownerLogin":"duplicate","ownerPassword":"password1"}`,
			wantStatus: http.StatusConflict,
		}, {
			name:       "short password",
			payload:    `{"name":"Pizza Roma","ownerLogin":"owner","ownerPassword":"123"}`,
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "missing name",
			payload:    `{"ownerLogin":"owner","ownerPassword":"password1"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + AdminMerchantsRoute,
				Body:   bytes.NewReader([]byte(t.payload)),
			},
				testutils.WithBearerToken(s.adminToken),
				testutils.WithHeader("Content-Type", "application/json"),
			)
			s.Require().NoError(err)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusCreated {
				var body struct {
					Merchant MerchantResponse `json:"merchant"`
				}
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
				s.Equal("pizza-roma", body.Merchant.Slug)
				s.Equal(created.UUID, body.Merchant.UUID)
			}
		})
	}
}

func (s *MerchantsHandlerTestSuite) TestToggleActive() {
	known := uuid.New()
	missing := uuid.New()

	s.mockMerchantService.EXPECT().
		ToggleActive(gomock.Any(), known).
		Return(false, nil)
	s.mockMerchantService.EXPECT().
		ToggleActive(gomock.Any(), missing).
		Return(false, domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		uuidParam  string
		wantStatus int
	}{
		{name: "ok", uuidParam: known.String(), wantStatus: http.StatusOK},
		{name: "unknown merchant", uuidParam: missing.String(), wantStatus: http.StatusNotFound},
		{name: "broken uuid", uuidParam: "not-a-uuid", wantStatus: http.StatusNotFound},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			url := RouteGroup + "/admin/merchants/" + t.uuidParam + "/toggle-active"
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPatch,
				URL:    url,
			}, testutils.WithBearerToken(s.adminToken))
			s.Require().NoError(err)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusOK {
				var body struct {
					Active bool `json:"active"`
				}
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
				s.False(body.Active)
			}
		})
	}
}

func (s *MerchantsHandlerTestSuite) TestOverview() {
	s.mockMerchantService.EXPECT().
		PlatformOverview(gomock.Any()).
		Return(&repoargs.PlatformCounters{
			Merchants:           12,
			Orders:              340,
			ActiveSubscriptions: 9,
			PastDueSubscription: 2,
		}, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + AdminOverviewRoute,
	}, testutils.WithBearerToken(s.adminToken))
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Equal(http.StatusOK, res.StatusCode)

	var body OverviewResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Equal(int64(12), body.Merchants)
	s.Equal(int64(340), body.Orders)
	s.Equal(int64(9), body.ActiveSubscriptions)
	s.Equal(int64(2), body.PastDueSubscription)
}
