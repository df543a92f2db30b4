package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-eats/internal/domain"
	"github.com/fsdevblog/groph-eats/internal/repository/repoargs"
	"github.com/fsdevblog/groph-eats/pkg/uow"
)

type OrderRepository struct {
	db uow.DBTX
}

func NewOrderRepository(db uow.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = `id, created_at, updated_at, merchant_id, public_code,
	customer_name, customer_phone, status, total, placed_at`

// GetPage возвращает страницу заказов мерчанта в порядке (created_at, id) по убыванию.
// Keyset пагинация: выборка продолжается строго после позиции (AfterCreatedAt, AfterID).
func (o *OrderRepository) GetPage(ctx context.Context, page repoargs.OrderCursorPage) ([]domain.Order, error) {
	rows, err := o.db.Query(ctx, `
		SELECT `+orderColumns+` FROM orders
		WHERE merchant_id = $1
			AND ($2 = '' OR status = $2)
			AND ($3::timestamptz IS NULL OR (created_at, id) < ($3, $4))
		ORDER BY created_at DESC, id DESC
		LIMIT $5`,
		page.MerchantID, string(page.Status), nullableTime(page.AfterCreatedAt), page.AfterID, page.Limit,
	)
	if err != nil {
		return nil, convertErr(err, "getting orders page for merchant %d", page.MerchantID)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning orders page")
		}
		orders = append(orders, *order)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting orders page for merchant %d", page.MerchantID)
	}
	return orders, nil
}

// FindByPublicCode ищет заказ по публичному коду вместе с позициями. Используется
// публичной страницей отслеживания заказа.
func (o *OrderRepository) FindByPublicCode(ctx context.Context, code string) (*domain.Order, error) {
	row := o.db.QueryRow(ctx, `
		SELECT `+orderColumns+` FROM orders WHERE public_code = $1`, code)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "finding order by code `%s`", code)
	}

	items, itemsErr := o.getItems(ctx, order.ID)
	if itemsErr != nil {
		return nil, itemsErr
	}
	order.Items = items
	return order, nil
}

func (o *OrderRepository) FindByID(ctx context.Context, merchantID, orderID int64) (*domain.Order, error) {
	row := o.db.QueryRow(ctx, `
		SELECT `+orderColumns+` FROM orders WHERE id = $1 AND merchant_id = $2`, orderID, merchantID)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "finding order %d", orderID)
	}
	return order, nil
}

// UpdateStatus выставляет новый статус заказа и возвращает обновленную запись.
func (o *OrderRepository) UpdateStatus(
	ctx context.Context,
	merchantID, orderID int64,
	status domain.OrderStatusType,
) (*domain.Order, error) {
	row := o.db.QueryRow(ctx, `
		UPDATE orders SET status = $3, updated_at = now()
		WHERE id = $1 AND merchant_id = $2
		RETURNING `+orderColumns,
		orderID, merchantID, status,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "updating order %d status", orderID)
	}
	return order, nil
}

// CountAll возвращает общее количество заказов. Используется в админском дашборде.
func (o *OrderRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := o.db.QueryRow(ctx, `SELECT count(*) FROM orders`).Scan(&count); err != nil {
		return 0, convertErr(err, "counting orders")
	}
	return count, nil
}

func (o *OrderRepository) getItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	rows, err := o.db.Query(ctx, `
		SELECT id, order_id, name, quantity, unit_price, addons
		FROM order_items WHERE order_id = $1 ORDER BY id ASC`, orderID)
	if err != nil {
		return nil, convertErr(err, "getting items for order %d", orderID)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if scanErr := rows.Scan(
			&item.ID, &item.OrderID, &item.Name, &item.Quantity, &item.UnitPrice, &item.Addons,
		); scanErr != nil {
			return nil, convertErr(scanErr, "scanning items for order %d", orderID)
		}
		items = append(items, item)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting items for order %d", orderID)
	}
	return items, nil
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var m domain.Order
	err := row.Scan(
		&m.ID, &m.CreatedAt, &m.UpdatedAt, &m.MerchantID, &m.PublicCode,
		&m.CustomerName, &m.CustomerPhone, &m.Status, &m.Total, &m.PlacedAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &m, nil
}
