package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-eats/internal/domain"
	"github.com/fsdevblog/groph-eats/internal/repository/repoargs"
	"github.com/fsdevblog/groph-eats/pkg/uow"
	"github.com/google/uuid"
)

type MerchantRepository struct {
	db uow.DBTX
}

func NewMerchantRepository(db uow.DBTX) *MerchantRepository {
	return &MerchantRepository{db: db}
}

const merchantColumns = `id, created_at, updated_at, uuid, name, slug, owner_user_id,
	active, referral_code_used`

func (m *MerchantRepository) CreateMerchant(
	ctx context.Context,
	args repoargs.CreateMerchant,
) (*domain.Merchant, error) {
	row := m.db.QueryRow(ctx, `
		INSERT INTO merchants (name, slug, owner_user_id, referral_code_used)
		VALUES ($1, $2, $3, $4)
		RETURNING `+merchantColumns,
		args.Name, args.Slug, args.OwnerUserID, args.ReferralCodeUsed,
	)
	merchant, err := scanMerchant(row)
	if err != nil {
		return nil, convertErr(err, "creating merchant with slug `%s`", args.Slug)
	}
	return merchant, nil
}

func (m *MerchantRepository) FindByUUID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error) {
	row := m.db.QueryRow(ctx, `
		SELECT `+merchantColumns+` FROM merchants WHERE uuid = $1`, id)
	merchant, err := scanMerchant(row)
	if err != nil {
		return nil, convertErr(err, "finding merchant by uuid %s", id)
	}
	return merchant, nil
}

func (m *MerchantRepository) FindByID(ctx context.Context, id int64) (*domain.Merchant, error) {
	row := m.db.QueryRow(ctx, `
		SELECT `+merchantColumns+` FROM merchants WHERE id = $1`, id)
	merchant, err := scanMerchant(row)
	if err != nil {
		return nil, convertErr(err, "finding merchant by id %d", id)
	}
	return merchant, nil
}

// GetPage возвращает страницу мерчантов в порядке возрастания id (keyset пагинация).
func (m *MerchantRepository) GetPage(
	ctx context.Context,
	page repoargs.MerchantCursorPage,
) ([]domain.Merchant, error) {
	rows, err := m.db.Query(ctx, `
		SELECT `+merchantColumns+` FROM merchants
		WHERE id > $1
		ORDER BY id ASC
		LIMIT $2`, page.AfterID, page.Limit)
	if err != nil {
		return nil, convertErr(err, "getting merchants page")
	}
	defer rows.Close()

	var merchants []domain.Merchant
	for rows.Next() {
		merchant, scanErr := scanMerchant(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning merchants page")
		}
		merchants = append(merchants, *merchant)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting merchants page")
	}
	return merchants, nil
}

// ToggleActive переключает флаг active и возвращает новое значение.
func (m *MerchantRepository) ToggleActive(ctx context.Context, id uuid.UUID) (bool, error) {
	var active bool
	err := m.db.QueryRow(ctx, `
		UPDATE merchants SET active = NOT active, updated_at = now()
		WHERE uuid = $1
		RETURNING active`, id).Scan(&active)
	if err != nil {
		return false, convertErr(err, "toggling merchant %s", id)
	}
	return active, nil
}

// CountAll возвращает общее количество мерчантов. Используется в админском дашборде.
func (m *MerchantRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := m.db.QueryRow(ctx, `SELECT count(*) FROM merchants`).Scan(&count); err != nil {
		return 0, convertErr(err, "counting merchants")
	}
	return count, nil
}

func scanMerchant(row rowScanner) (*domain.Merchant, error) {
	var m domain.Merchant
	err := row.Scan(
		&m.ID, &m.CreatedAt, &m.UpdatedAt, &m.UUID, &m.Name, &m.Slug, &m.OwnerUserID,
		&m.Active, &m.ReferralCodeUsed,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &m, nil
}
