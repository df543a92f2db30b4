package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-eats/internal/domain"
	"github.com/fsdevblog/groph-eats/internal/repository/repoargs"
	"github.com/fsdevblog/groph-eats/pkg/uow"
	"github.com/shopspring/decimal"
)

type InfluencerRepository struct {
	db uow.DBTX
}

func NewInfluencerRepository(db uow.DBTX) *InfluencerRepository {
	return &InfluencerRepository{db: db}
}

const influencerColumns = `id, created_at, updated_at, uuid, name, referral_code,
	commission_percent, active`

func (r *InfluencerRepository) FindByReferralCode(ctx context.Context, code string) (*domain.Influencer, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+influencerColumns+` FROM influencers WHERE referral_code = $1 AND active`, code)
	influencer, err := scanInfluencer(row)
	if err != nil {
		return nil, convertErr(err, "finding influencer by referral code `%s`", code)
	}
	return influencer, nil
}

func (r *InfluencerRepository) FindByID(ctx context.Context, id int64) (*domain.Influencer, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+influencerColumns+` FROM influencers WHERE id = $1`, id)
	influencer, err := scanInfluencer(row)
	if err != nil {
		return nil, convertErr(err, "finding influencer by id %d", id)
	}
	return influencer, nil
}

// LockByID берет блокировку строки инфлюенсера до конца текущей транзакции.
// Сериализует конкурирующие операции над балансом.
func (r *InfluencerRepository) LockByID(ctx context.Context, id int64) error {
	var locked int64
	if err := r.db.QueryRow(ctx, `
		SELECT id FROM influencers WHERE id = $1 FOR UPDATE`, id).Scan(&locked); err != nil {
		return convertErr(err, "locking influencer %d", id)
	}
	return nil
}

func (r *InfluencerRepository) CreateCommissionTransaction(
	ctx context.Context,
	args repoargs.CommissionTransactionCreate,
) (*domain.CommissionTransaction, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO commission_transactions (influencer_id, merchant_id, direction, amount, reference)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at, influencer_id, merchant_id, direction, amount, reference`,
		args.InfluencerID, args.MerchantID, args.Direction, args.Amount, args.Reference,
	)
	var t domain.CommissionTransaction
	err := row.Scan(
		&t.ID, &t.CreatedAt, &t.UpdatedAt, &t.InfluencerID, &t.MerchantID,
		&t.Direction, &t.Amount, &t.Reference,
	)
	if err != nil {
		return nil, convertErr(err, "creating commission transaction")
	}
	return &t, nil
}

// GetBalance возвращает суммы движений по балансу инфлюенсера, сгруппированные по направлению.
func (r *InfluencerRepository) GetBalance(ctx context.Context, influencerID int64) (*repoargs.BalanceAggregation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT direction, COALESCE(SUM(amount), 0)
		FROM commission_transactions
		WHERE influencer_id = $1
		GROUP BY direction`, influencerID)
	if err != nil {
		return nil, convertErr(err, "getting balance for influencer %d", influencerID)
	}
	defer rows.Close()

	var sum = new(repoargs.BalanceAggregation)
	for rows.Next() {
		var direction domain.DirectionType
		var amount decimal.Decimal
		if scanErr := rows.Scan(&direction, &amount); scanErr != nil {
			return nil, convertErr(scanErr, "scanning balance for influencer %d", influencerID)
		}
		if direction == domain.DirectionCredit {
			sum.CreditAmount = amount
		} else {
			sum.DebitAmount = amount
		}
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting balance for influencer %d", influencerID)
	}
	return sum, nil
}

// GetReferrals возвращает мерчантов инфлюенсера с суммой начисленной комиссии по каждому.
func (r *InfluencerRepository) GetReferrals(ctx context.Context, influencerID int64) ([]repoargs.ReferralSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT m.id, m.name, COALESCE(SUM(ct.amount) FILTER (WHERE ct.direction = 'debit'), 0)
		FROM merchants m
		JOIN influencers i ON i.referral_code = m.referral_code_used
		LEFT JOIN commission_transactions ct ON ct.merchant_id = m.id AND ct.influencer_id = i.id
		WHERE i.id = $1
		GROUP BY m.id, m.name
		ORDER BY m.id ASC`, influencerID)
	if err != nil {
		return nil, convertErr(err, "getting referrals for influencer %d", influencerID)
	}
	defer rows.Close()

	var referrals []repoargs.ReferralSummary
	for rows.Next() {
		var ref repoargs.ReferralSummary
		if scanErr := rows.Scan(&ref.MerchantID, &ref.MerchantName, &ref.Accrued); scanErr != nil {
			return nil, convertErr(scanErr, "scanning referrals for influencer %d", influencerID)
		}
		referrals = append(referrals, ref)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting referrals for influencer %d", influencerID)
	}
	return referrals, nil
}

func (r *InfluencerRepository) CreateWithdrawal(
	ctx context.Context,
	args repoargs.CreateWithdrawal,
) (*domain.Withdrawal, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO withdrawals (influencer_id, amount, destination, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at, influencer_id, amount, destination, status`,
		args.InfluencerID, args.Amount, args.Destination, domain.WithdrawalStatusPending,
	)
	var w domain.Withdrawal
	err := row.Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt, &w.InfluencerID, &w.Amount, &w.Destination, &w.Status)
	if err != nil {
		return nil, convertErr(err, "creating withdrawal for influencer %d", args.InfluencerID)
	}
	return &w, nil
}

func (r *InfluencerRepository) GetWithdrawals(ctx context.Context, influencerID int64) ([]domain.Withdrawal, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, created_at, updated_at, influencer_id, amount, destination, status
		FROM withdrawals
		WHERE influencer_id = $1
		ORDER BY created_at DESC, id DESC`, influencerID)
	if err != nil {
		return nil, convertErr(err, "getting withdrawals for influencer %d", influencerID)
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var w domain.Withdrawal
		if scanErr := rows.Scan(
			&w.ID, &w.CreatedAt, &w.UpdatedAt, &w.InfluencerID, &w.Amount, &w.Destination, &w.Status,
		); scanErr != nil {
			return nil, convertErr(scanErr, "scanning withdrawals for influencer %d", influencerID)
		}
		withdrawals = append(withdrawals, w)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting withdrawals for influencer %d", influencerID)
	}
	return withdrawals, nil
}

func scanInfluencer(row rowScanner) (*domain.Influencer, error) {
	var m domain.Influencer
	err := row.Scan(
		&m.ID, &m.CreatedAt, &m.UpdatedAt, &m.UUID, &m.Name, &m.ReferralCode,
		&m.CommissionPercent, &m.Active,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &m, nil
}
