package billing

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/fsdevblog/groph-eats/internal/domain"
	"github.com/fsdevblog/groph-eats/internal/service"
	"github.com/fsdevblog/groph-eats/internal/transport/billing/client"
	"github.com/fsdevblog/groph-eats/internal/transport/billing/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type ProcessorTestSuite struct {
	suite.Suite
	processor      *Processor
	mockHTTPClient *mocks.MockClient
	mockService    *mocks.MockServicer
	ctrl           *gomock.Controller
}

func (s *ProcessorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.mockHTTPClient = mocks.NewMockClient(s.ctrl)
	s.mockService = mocks.NewMockServicer(s.ctrl)

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	s.processor = New(s.mockService, "", logger)
	s.processor.client = s.mockHTTPClient
}

func (s *ProcessorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestProcessorSuite(t *testing.T) {
	suite.Run(t, new(ProcessorTestSuite))
}

func makeCandidate(id, merchantID int64, amount float64) service.ChargeCandidate {
	return service.ChargeCandidate{
		Subscription: domain.Subscription{
			ID:         id,
			MerchantID: merchantID,
			Status:     domain.SubscriptionStatusActive,
		},
		Amount: decimal.NewFromFloat(amount),
	}
}

// TestProcess_NoSubscriptions Тест на случай, когда списывать нечего.
func (s *ProcessorTestSuite) TestProcess_NoSubscriptions() {
	s.mockService.EXPECT().
		DueCharges(gomock.Any(), s.processor.limitPerIteration).
		Return([]service.ChargeCandidate{}, nil)

	err := s.processor.process(s.T().Context())

	s.ErrorIs(err, ErrNoSubscriptions)
}

// TestProcess_Success Тест на успешное списание по всем подпискам.
func (s *ProcessorTestSuite) TestProcess_Success() {
	candidates := []service.ChargeCandidate{
		makeCandidate(1, 10, 49.90),
		makeCandidate(2, 20, 44.91),
	}

	s.mockService.EXPECT().
		DueCharges(gomock.Any(), s.processor.limitPerIteration).
		Return(candidates, nil)

	// Шлюз отвечает успехом на оба списания.
	s.mockHTTPClient.EXPECT().
		Charge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req client.ChargeRequest) (*client.Response, error) {
			s.NotEmpty(req.IdempotencyKey)
			return &client.Response{
				Status: client.StatusSucceeded,
				Ref:    "gw-" + req.MerchantRef,
			}, nil
		}).Times(2)

	s.mockService.EXPECT().
		ApplyChargeResults(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, updates []service.ChargeResultArgs) {
			s.Require().Len(updates, 2)

			for _, update := range updates {
				s.NoError(update.Error) //nolint:testifylint
				s.NotEmpty(update.GatewayRef)
				s.NotEmpty(update.RequestID)

				switch update.SubscriptionID {
				case 1:
					s.Equal(int64(10), update.MerchantID)
					s.Equal("gw-sub-1", update.GatewayRef)
				case 2:
					s.Equal(int64(20), update.MerchantID)
					s.Equal("gw-sub-2", update.GatewayRef)
				default:
					s.Failf("unexpected subscription", "id=%d", update.SubscriptionID)
				}
			}
		}).Return(nil)

	ctx, cancel := context.WithTimeout(s.T().Context(), time.Second)
	defer cancel()
	err := s.processor.process(ctx)
	s.NoError(err)
}

// TestProcess_DeclinedAndErrors Тест на смесь отказов шлюза и транспортных ошибок.
func (s *ProcessorTestSuite) TestProcess_DeclinedAndErrors() {
	candidates := []service.ChargeCandidate{
		makeCandidate(1, 10, 49.90),
		makeCandidate(2, 20, 49.90),
	}

	s.mockService.EXPECT().
		DueCharges(gomock.Any(), s.processor.limitPerIteration).
		Return(candidates, nil)

	declined := client.NewDeclinedError("insufficient funds")
	internalError := client.NewStatusCodeError(http.StatusInternalServerError)

	s.mockHTTPClient.EXPECT().
		Charge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req client.ChargeRequest) (*client.Response, error) {
			if req.MerchantRef == "sub-1" {
				return nil, declined
			}
			return nil, internalError
		}).Times(2)

	s.mockService.EXPECT().
		ApplyChargeResults(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, updates []service.ChargeResultArgs) {
			// Ошибки доходят до сервисного слоя, он сам решает что с ними делать.
			s.Require().Len(updates, 2)
			s.Error(updates[0].Error) //nolint:testifylint
			s.Error(updates[1].Error) //nolint:testifylint
		}).Return(nil)

	ctx, cancel := context.WithTimeout(s.T().Context(), time.Second)
	defer cancel()
	err := s.processor.process(ctx)
	s.NoError(err)
}

// TestProcess_RetryAfterThrottle Тест на повтор после 429 с тем же ключом идемпотентности.
func (s *ProcessorTestSuite) TestProcess_RetryAfterThrottle() {
	candidates := []service.ChargeCandidate{
		makeCandidate(1, 10, 49.90),
	}

	s.mockService.EXPECT().
		DueCharges(gomock.Any(), s.processor.limitPerIteration).
		Return(candidates, nil)

	var firstKey string

	// Первый запрос упирается в лимит шлюза, повтор обязан идти с тем же ключом.
	first := s.mockHTTPClient.EXPECT().
		Charge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req client.ChargeRequest) (*client.Response, error) {
			firstKey = req.IdempotencyKey
			return nil, client.NewTooManyRequestError(10 * time.Millisecond)
		})

	s.mockHTTPClient.EXPECT().
		Charge(gomock.Any(), gomock.Any()).
		After(first).
		DoAndReturn(func(_ context.Context, req client.ChargeRequest) (*client.Response, error) {
			s.Equal(firstKey, req.IdempotencyKey)
			return &client.Response{Status: client.StatusSucceeded, Ref: "gw-ref-1"}, nil
		})

	s.mockService.EXPECT().
		ApplyChargeResults(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, updates []service.ChargeResultArgs) {
			s.Require().Len(updates, 1)
			s.NoError(updates[0].Error) //nolint:testifylint
			s.Equal("gw-ref-1", updates[0].GatewayRef)
			s.Equal(firstKey, updates[0].RequestID)
		}).Return(nil)

	ctx, cancel := context.WithTimeout(s.T().Context(), time.Second)
	defer cancel()
	err := s.processor.process(ctx)
	s.NoError(err)
}
