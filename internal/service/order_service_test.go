package service

import (
	"context"
	"testing"
	"time"

	"github.com/fsdevblog/groph-eats/internal/domain"
	"github.com/fsdevblog/groph-eats/internal/repository/repoargs"
	"github.com/fsdevblog/groph-eats/internal/service/mocks"
	"github.com/fsdevblog/groph-eats/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-eats/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type OrderServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockUOW       *uowmocks.MockUOW
	mockOrderRepo *mocks.MockOrderRepository
	orderService  *OrderService
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func (s *OrderServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockOrderRepo = mocks.NewMockOrderRepository(s.mockCtrl)

	// Мок получения репозитория из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil).AnyTimes()

	orderService, servErr := NewOrderService(s.mockUOW)
	s.Require().NoError(servErr)
	s.orderService = orderService
}

func (s *OrderServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *OrderServiceTestSuite) TestGetPage() {
	var merchantID int64 = 1
	now := time.Now()

	fullPage := make([]domain.Order, 2)
	for i := range fullPage {
		fullPage[i] = domain.Order{
			ID:         int64(i + 1),
			CreatedAt:  now.Add(-time.Duration(i) * time.Minute),
			MerchantID: merchantID,
			PublicCode: "ORD-00" + string(rune('1'+i)),
			Status:     domain.OrderStatusPending,
			Total:      decimal.NewFromInt(100),
		}
	}

	// Первый запрос без курсора: полная страница, должен вернуться курсор.
	s.mockOrderRepo.EXPECT().
		GetPage(gomock.Any(), repoargs.OrderCursorPage{
			MerchantID: merchantID,
			Limit:      2,
		}).
		Return(fullPage, nil)

	page, err := s.orderService.GetPage(s.T().Context(), OrdersPageArgs{
		MerchantID: merchantID,
		Limit:      2,
	})
	s.Require().NoError(err)
	s.Require().Len(page.Orders, 2)
	s.Require().NotEmpty(page.NextCursor)

	// Курсор кодирует позицию последнего заказа страницы.
	last := fullPage[1]
	s.mockOrderRepo.EXPECT().
		GetPage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.OrderCursorPage) ([]domain.Order, error) {
			s.Equal(last.ID, args.AfterID)
			s.Equal(last.CreatedAt.UnixNano(), args.AfterCreatedAt.UnixNano())
			return []domain.Order{}, nil
		})

	next, nextErr := s.orderService.GetPage(s.T().Context(), OrdersPageArgs{
		MerchantID: merchantID,
		Cursor:     page.NextCursor,
		Limit:      2,
	})
	s.Require().NoError(nextErr)
	// Короткая страница означает конец выборки: курсора быть не должно.
	s.Empty(next.NextCursor)
}

func (s *OrderServiceTestSuite) TestGetPageLimits() {
	var merchantID int64 = 1

	cases := []struct {
		name      string
		limit     int32
		wantLimit int32
	}{
		{name: "default", limit: 0, wantLimit: DefaultOrdersPageLimit},
		{name: "negative", limit: -5, wantLimit: DefaultOrdersPageLimit},
		{name: "capped", limit: 500, wantLimit: MaxOrdersPageLimit},
		{name: "as is", limit: 10, wantLimit: 10},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.mockOrderRepo.EXPECT().
				GetPage(gomock.Any(), repoargs.OrderCursorPage{
					MerchantID: merchantID,
					Limit:      t.wantLimit,
				}).
				Return([]domain.Order{}, nil)

			_, err := s.orderService.GetPage(s.T().Context(), OrdersPageArgs{
				MerchantID: merchantID,
				Limit:      t.limit,
			})
			s.Require().NoError(err)
		})
	}
}

func (s *OrderServiceTestSuite) TestGetPageInvalidCursor() {
	cases := []struct {
		name   string
		cursor string
	}{
		{name: "not base64", cursor: "%%%"},
		{name: "no separator", cursor: "MTIzNDU"},
		{name: "garbage parts", cursor: "YWJjOmRlZg"},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			_, err := s.orderService.GetPage(s.T().Context(), OrdersPageArgs{
				MerchantID: 1,
				Cursor:     t.cursor,
			})
			s.Require().ErrorIs(err, domain.ErrInvalidCursor)
		})
	}
}

func (s *OrderServiceTestSuite) TestUpdateStatus() {
	var merchantID int64 = 1
	var orderID int64 = 10

	pending := domain.Order{
		ID:         orderID,
		MerchantID: merchantID,
		Status:     domain.OrderStatusPending,
	}
	confirmed := pending
	confirmed.Status = domain.OrderStatusConfirmed

	s.mockOrderRepo.EXPECT().
		FindByID(gomock.Any(), merchantID, orderID).
		Return(&pending, nil).
		Times(2)

	s.mockOrderRepo.EXPECT().
		UpdateStatus(gomock.Any(), merchantID, orderID, domain.OrderStatusConfirmed).
		Return(&confirmed, nil)

	cases := []struct {
		name    string
		status  domain.OrderStatusType
		wantErr error
	}{
		{name: "ok", status: domain.OrderStatusConfirmed},
		{name: "invalid transition", status: domain.OrderStatusReady, wantErr: domain.ErrInvalidTransition},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			order, err := s.orderService.UpdateStatus(s.T().Context(), merchantID, orderID, t.status)

			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
				return
			}
			s.Require().NoError(err)
			s.Equal(domain.OrderStatusConfirmed, order.Status)
		})
	}
}

func (s *OrderServiceTestSuite) TestFindByPublicCode() {
	order := domain.Order{
		ID:         1,
		PublicCode: "ORD-XYZ123",
		Status:     domain.OrderStatusPreparing,
	}

	s.mockOrderRepo.EXPECT().
		FindByPublicCode(gomock.Any(), order.PublicCode).
		Return(&order, nil)

	s.mockOrderRepo.EXPECT().
		FindByPublicCode(gomock.Any(), "unknown").
		Return(nil, domain.ErrRecordNotFound)

	found, err := s.orderService.FindByPublicCode(s.T().Context(), order.PublicCode)
	s.Require().NoError(err)
	s.Equal(&order, found)

	_, notFoundErr := s.orderService.FindByPublicCode(s.T().Context(), "unknown")
	s.Require().ErrorIs(notFoundErr, domain.ErrRecordNotFound)
}
