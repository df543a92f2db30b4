package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-eats/internal/domain"
	"github.com/fsdevblog/groph-eats/internal/repository/repoargs"
	"github.com/fsdevblog/groph-eats/pkg/uow"
)

type SubscriptionRepository struct {
	db uow.DBTX
}

func NewSubscriptionRepository(db uow.DBTX) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

const subscriptionColumns = `id, created_at, updated_at, merchant_id, plan_code, price,
	status, current_period_end, next_charge_at, charge_attempts, pending_voucher`

const subscriptionEventColumns = `id, subscription_id, kind, amount, message,
	flow_id, request_id, voucher_code, occurred_at`

func (s *SubscriptionRepository) CreateSubscription(
	ctx context.Context,
	args repoargs.CreateSubscription,
) (*domain.Subscription, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO subscriptions (merchant_id, plan_code, price, status, current_period_end, next_charge_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING `+subscriptionColumns,
		args.MerchantID, args.PlanCode, args.Price, args.Status, args.NextChargeAt,
	)
	sub, err := scanSubscription(row)
	if err != nil {
		return nil, convertErr(err, "creating subscription for merchant %d", args.MerchantID)
	}
	return sub, nil
}

func (s *SubscriptionRepository) FindByMerchantID(ctx context.Context, merchantID int64) (*domain.Subscription, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+subscriptionColumns+` FROM subscriptions WHERE merchant_id = $1`, merchantID)
	sub, err := scanSubscription(row)
	if err != nil {
		return nil, convertErr(err, "finding subscription for merchant %d", merchantID)
	}
	return sub, nil
}

// GetDueForCharge возвращает подписки, подлежащие списанию: активные или триальные
// с наступившим next_charge_at. Сортировка по next_charge_at, чтобы дольше всех
// ожидающие обрабатывались первыми.
func (s *SubscriptionRepository) GetDueForCharge(ctx context.Context, limit uint) ([]domain.Subscription, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+subscriptionColumns+` FROM subscriptions
		WHERE status IN ($1, $2) AND next_charge_at <= now()
		ORDER BY next_charge_at ASC
		LIMIT $3`,
		domain.SubscriptionStatusActive, domain.SubscriptionStatusTrialing, limit,
	)
	if err != nil {
		return nil, convertErr(err, "getting subscriptions due for charge")
	}
	defer rows.Close()

	var subs []domain.Subscription
	for rows.Next() {
		sub, scanErr := scanSubscription(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning subscriptions due for charge")
		}
		subs = append(subs, *sub)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting subscriptions due for charge")
	}
	return subs, nil
}

// BatchApplyCharge батчем применяет результат успешного списания: новый статус,
// границы периода, сброс счетчика попыток и ваучера. Условие next_charge_at <= now()
// перепроверяет срок списания внутри транзакции: период, уже продленный
// параллельным инстансом, дает нулевой апдейт и domain.ErrRecordNotFound в fn.
func (s *SubscriptionRepository) BatchApplyCharge(
	ctx context.Context,
	updates []repoargs.ApplyChargeSubscription,
	fn repoargs.BatchExecQueryRow,
) {
	batch := new(pgx.Batch)
	for _, update := range updates {
		batch.Queue(`
			UPDATE subscriptions
			SET status = $2, current_period_end = $3, next_charge_at = $4,
				charge_attempts = 0, pending_voucher = '', updated_at = now()
			WHERE id = $1 AND next_charge_at <= now()`,
			update.ID, update.Status, update.CurrentPeriodEnd, update.NextChargeAt,
		)
	}
	results := s.db.SendBatch(ctx, batch)
	defer func() { _ = results.Close() }()

	for i, update := range updates {
		tag, err := results.Exec()
		if err == nil && tag.RowsAffected() == 0 {
			err = errNoRowsAffected
		}
		fn(i, convertErr(err, "applying charge to subscription %d", update.ID))
	}
}

// IncrementChargeAttempts увеличивает счетчик неудачных списаний. Подписки,
// исчерпавшие maxAttempts, переводятся в past_due.
func (s *SubscriptionRepository) IncrementChargeAttempts(ctx context.Context, ids []int64, maxAttempts int32) error {
	if _, err := s.db.Exec(ctx, `
		UPDATE subscriptions
		SET charge_attempts = charge_attempts + 1,
			status = CASE WHEN charge_attempts + 1 >= $2 THEN 'past_due' ELSE status END,
			updated_at = now()
		WHERE id = ANY($1)`, ids, maxAttempts); err != nil {
		return convertErr(err, "incrementing charge attempts for subscriptions `%v`", ids)
	}
	return nil
}

func (s *SubscriptionRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.SubscriptionStatusType,
) (*domain.Subscription, error) {
	row := s.db.QueryRow(ctx, `
		UPDATE subscriptions SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+subscriptionColumns, id, status)
	sub, err := scanSubscription(row)
	if err != nil {
		return nil, convertErr(err, "updating subscription %d status", id)
	}
	return sub, nil
}

// SetPendingVoucher запоминает код ваучера, который будет применен к следующему списанию.
func (s *SubscriptionRepository) SetPendingVoucher(ctx context.Context, id int64, code string) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE subscriptions SET pending_voucher = $2, updated_at = now() WHERE id = $1`, id, code)
	if err != nil {
		return convertErr(err, "setting pending voucher for subscription %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "setting pending voucher for subscription %d", id)
	}
	return nil
}

func (s *SubscriptionRepository) CreateEvent(
	ctx context.Context,
	args repoargs.CreateSubscriptionEvent,
) (*domain.SubscriptionEvent, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO subscription_events (subscription_id, kind, amount, message, flow_id, request_id, voucher_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+subscriptionEventColumns,
		args.SubscriptionID, args.Kind, args.Amount, args.Message, args.FlowID, args.RequestID, args.VoucherCode,
	)
	event, err := scanSubscriptionEvent(row)
	if err != nil {
		return nil, convertErr(err, "creating subscription event")
	}
	return event, nil
}

// GetEventsBySubscriptionID возвращает журнал событий подписки по убыванию occurred_at.
func (s *SubscriptionRepository) GetEventsBySubscriptionID(
	ctx context.Context,
	subscriptionID int64,
) ([]domain.SubscriptionEvent, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+subscriptionEventColumns+` FROM subscription_events
		WHERE subscription_id = $1
		ORDER BY occurred_at DESC, id DESC`, subscriptionID)
	if err != nil {
		return nil, convertErr(err, "getting events for subscription %d", subscriptionID)
	}
	defer rows.Close()

	var events []domain.SubscriptionEvent
	for rows.Next() {
		event, scanErr := scanSubscriptionEvent(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning events for subscription %d", subscriptionID)
		}
		events = append(events, *event)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting events for subscription %d", subscriptionID)
	}
	return events, nil
}

func (s *SubscriptionRepository) CreateTransaction(
	ctx context.Context,
	args repoargs.CreateTransaction,
) (*domain.Transaction, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO transactions (subscription_id, gateway_ref, status, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at, subscription_id, gateway_ref, status, amount`,
		args.SubscriptionID, args.GatewayRef, args.Status, args.Amount,
	)
	var t domain.Transaction
	err := row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt, &t.SubscriptionID, &t.GatewayRef, &t.Status, &t.Amount)
	if err != nil {
		return nil, convertErr(err, "creating transaction for subscription %d", args.SubscriptionID)
	}
	return &t, nil
}

// CountByStatus возвращает количество подписок в указанном статусе. Используется в админском дашборде.
func (s *SubscriptionRepository) CountByStatus(ctx context.Context, status domain.SubscriptionStatusType) (int64, error) {
	var count int64
	if err := s.db.QueryRow(ctx, `
		SELECT count(*) FROM subscriptions WHERE status = $1`, status).Scan(&count); err != nil {
		return 0, convertErr(err, "counting subscriptions by status %s", status)
	}
	return count, nil
}

func scanSubscription(row rowScanner) (*domain.Subscription, error) {
	var m domain.Subscription
	err := row.Scan(
		&m.ID, &m.CreatedAt, &m.UpdatedAt, &m.MerchantID, &m.PlanCode, &m.Price,
		&m.Status, &m.CurrentPeriodEnd, &m.NextChargeAt, &m.ChargeAttempts, &m.PendingVoucher,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &m, nil
}

func scanSubscriptionEvent(row rowScanner) (*domain.SubscriptionEvent, error) {
	var m domain.SubscriptionEvent
	err := row.Scan(
		&m.ID, &m.SubscriptionID, &m.Kind, &m.Amount, &m.Message,
		&m.FlowID, &m.RequestID, &m.VoucherCode, &m.OccurredAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &m, nil
}
