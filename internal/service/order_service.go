package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fsdevblog/groph-eats/internal/domain"
	"github.com/fsdevblog/groph-eats/internal/repository/repoargs"
	"github.com/fsdevblog/groph-eats/pkg/uow"
)

const (
	DefaultOrdersPageLimit int32 = 20
	MaxOrdersPageLimit     int32 = 100
)

type OrderService struct {
	uow       uow.UOW
	orderRepo OrderRepository
}

func NewOrderService(u uow.UOW) (*OrderService, error) {
	orderRepo, err := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, err
	}
	return &OrderService{
		uow:       u,
		orderRepo: orderRepo,
	}, nil
}

type OrdersPageArgs struct {
	MerchantID int64
	Status     domain.OrderStatusType
	Cursor     string
	Limit      int32
}

type OrdersPage struct {
	Orders     []domain.Order
	NextCursor string
}

// GetPage возвращает страницу заказов мерчанта. Keyset пагинация по паре
// (created_at, id): курсор кодирует позицию последнего заказа страницы, выборка
// стабильна при параллельных вставках в отличие от offset.
func (o *OrderService) GetPage(ctx context.Context, args OrdersPageArgs) (*OrdersPage, error) {
	limit := args.Limit
	if limit <= 0 {
		limit = DefaultOrdersPageLimit
	}
	if limit > MaxOrdersPageLimit {
		limit = MaxOrdersPageLimit
	}

	afterCreatedAt, afterID, cursorErr := decodeOrderCursor(args.Cursor)
	if cursorErr != nil {
		return nil, cursorErr
	}

	orders, err := o.orderRepo.GetPage(ctx, repoargs.OrderCursorPage{
		MerchantID:     args.MerchantID,
		Status:         args.Status,
		AfterCreatedAt: afterCreatedAt,
		AfterID:        afterID,
		Limit:          limit,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	page := OrdersPage{Orders: orders}
	// курсор отдаем только для полной страницы: короткая страница означает конец выборки.
	if len(orders) == int(limit) {
		last := orders[len(orders)-1]
		page.NextCursor = encodeOrderCursor(last.CreatedAt, last.ID)
	}
	return &page, nil
}

// UpdateStatus переводит заказ в новый статус с проверкой допустимости перехода.
// Недопустимый переход - domain.ErrInvalidTransition.
func (o *OrderService) UpdateStatus(
	ctx context.Context,
	merchantID, orderID int64,
	status domain.OrderStatusType,
) (*domain.Order, error) {
	order, findErr := o.orderRepo.FindByID(ctx, merchantID, orderID)
	if findErr != nil {
		return nil, fmt.Errorf("updating order status: %w", findErr)
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf(
			"updating order status from %s to %s: %w",
			order.Status, status, domain.ErrInvalidTransition,
		)
	}

	updated, updErr := o.orderRepo.UpdateStatus(ctx, merchantID, orderID, status)
	if updErr != nil {
		return nil, fmt.Errorf("updating order status: %w", updErr)
	}
	return updated, nil
}

// FindByPublicCode публичный поиск заказа по коду для страницы отслеживания.
func (o *OrderService) FindByPublicCode(ctx context.Context, code string) (*domain.Order, error) {
	order, err := o.orderRepo.FindByPublicCode(ctx, code)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return order, nil
}

// encodeOrderCursor упаковывает позицию (createdAt, id) в непрозрачный для клиента курсор.
func encodeOrderCursor(createdAt time.Time, id int64) string {
	raw := strconv.FormatInt(createdAt.UnixNano(), 10) + ":" + strconv.FormatInt(id, 10)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// decodeOrderCursor разбирает курсор. Пустой курсор означает первую страницу.
// Некорректный курсор - domain.ErrInvalidCursor.
func decodeOrderCursor(cursor string) (time.Time, int64, error) {
	if cursor == "" {
		return time.Time{}, 0, nil
	}
	raw, decodeErr := base64.RawURLEncoding.DecodeString(cursor)
	if decodeErr != nil {
		return time.Time{}, 0, fmt.Errorf("%w: %s", domain.ErrInvalidCursor, decodeErr.Error())
	}
	parts := strings.SplitN(string(raw), ":", 2)
	if len(parts) != 2 {
		return time.Time{}, 0, domain.ErrInvalidCursor
	}
	nanos, nanosErr := strconv.ParseInt(parts[0], 10, 64)
	if nanosErr != nil {
		return time.Time{}, 0, fmt.Errorf("%w: %s", domain.ErrInvalidCursor, nanosErr.Error())
	}
	id, idErr := strconv.ParseInt(parts[1], 10, 64)
	if idErr != nil {
		return time.Time{}, 0, fmt.Errorf("%w: %s", domain.ErrInvalidCursor, idErr.Error())
	}
	return time.Unix(0, nanos), id, nil
}
