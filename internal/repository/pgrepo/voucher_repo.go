package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-eats/internal/domain"
	"github.com/fsdevblog/groph-eats/pkg/uow"
)

type VoucherRepository struct {
	db uow.DBTX
}

func NewVoucherRepository(db uow.DBTX) *VoucherRepository {
	return &VoucherRepository{db: db}
}

const voucherColumns = `id, created_at, updated_at, code, percent_off, max_redemptions,
	redeemed_count, expires_at, active`

func (v *VoucherRepository) FindByCode(ctx context.Context, code string) (*domain.Voucher, error) {
	row := v.db.QueryRow(ctx, `
		SELECT `+voucherColumns+` FROM vouchers WHERE code = $1`, code)
	voucher, err := scanVoucher(row)
	if err != nil {
		return nil, convertErr(err, "finding voucher by code `%s`", code)
	}
	return voucher, nil
}

// Redeem инкрементирует счетчик использований, не превышая max_redemptions.
// Возвращает domain.ErrRecordNotFound, если лимит уже исчерпан (ноль затронутых строк).
func (v *VoucherRepository) Redeem(ctx context.Context, id int64) error {
	tag, err := v.db.Exec(ctx, `
		UPDATE vouchers SET redeemed_count = redeemed_count + 1, updated_at = now()
		WHERE id = $1 AND redeemed_count < max_redemptions`, id)
	if err != nil {
		return convertErr(err, "redeeming voucher %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "redeeming voucher %d", id)
	}
	return nil
}

func scanVoucher(row rowScanner) (*domain.Voucher, error) {
	var m domain.Voucher
	err := row.Scan(
		&m.ID, &m.CreatedAt, &m.UpdatedAt, &m.Code, &m.PercentOff, &m.MaxRedemptions,
		&m.RedeemedCount, &m.ExpiresAt, &m.Active,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &m, nil
}
