package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-eats/internal/domain"
	"github.com/fsdevblog/groph-eats/internal/repository/repoargs"
	"github.com/fsdevblog/groph-eats/pkg/uow"
)

type AddonRepository struct {
	db uow.DBTX
}

func NewAddonRepository(db uow.DBTX) *AddonRepository {
	return &AddonRepository{db: db}
}

const addonCategoryColumns = `id, created_at, updated_at, merchant_id, name,
	min_selection, max_selection, required, active, display_order`

const addonItemColumns = `id, created_at, updated_at, category_id, name, price,
	active, display_order`

func (a *AddonRepository) CreateCategory(
	ctx context.Context,
	args repoargs.CreateAddonCategory,
) (*domain.AddonCategory, error) {
	// display_order новой категории всегда в хвосте списка.
	row := a.db.QueryRow(ctx, `
		INSERT INTO addon_categories (merchant_id, name, min_selection, max_selection, required, display_order)
		VALUES ($1, $2, $3, $4, $5,
			(SELECT COALESCE(MAX(display_order), 0) + 1 FROM addon_categories WHERE merchant_id = $1))
		RETURNING `+addonCategoryColumns,
		args.MerchantID, args.Name, args.MinSelection, args.MaxSelection, args.Required,
	)
	category, err := scanAddonCategory(row)
	if err != nil {
		return nil, convertErr(err, "creating addon category `%s`", args.Name)
	}
	return category, nil
}

func (a *AddonRepository) UpdateCategory(
	ctx context.Context,
	args repoargs.UpdateAddonCategory,
) (*domain.AddonCategory, error) {
	row := a.db.QueryRow(ctx, `
		UPDATE addon_categories
		SET name = $3, min_selection = $4, max_selection = $5, required = $6, updated_at = now()
		WHERE id = $1 AND merchant_id = $2
		RETURNING `+addonCategoryColumns,
		args.ID, args.MerchantID, args.Name, args.MinSelection, args.MaxSelection, args.Required,
	)
	category, err := scanAddonCategory(row)
	if err != nil {
		return nil, convertErr(err, "updating addon category %d", args.ID)
	}
	return category, nil
}

func (a *AddonRepository) GetCategoriesByMerchantID(
	ctx context.Context,
	merchantID int64,
) ([]domain.AddonCategory, error) {
	rows, err := a.db.Query(ctx, `
		SELECT `+addonCategoryColumns+` FROM addon_categories
		WHERE merchant_id = $1
		ORDER BY display_order ASC, id ASC`, merchantID)
	if err != nil {
		return nil, convertErr(err, "getting addon categories for merchant %d", merchantID)
	}
	defer rows.Close()

	var categories []domain.AddonCategory
	for rows.Next() {
		category, scanErr := scanAddonCategory(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning addon categories")
		}
		categories = append(categories, *category)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting addon categories for merchant %d", merchantID)
	}
	return categories, nil
}

func (a *AddonRepository) FindCategory(
	ctx context.Context,
	merchantID, categoryID int64,
) (*domain.AddonCategory, error) {
	row := a.db.QueryRow(ctx, `
		SELECT `+addonCategoryColumns+` FROM addon_categories
		WHERE id = $1 AND merchant_id = $2`, categoryID, merchantID)
	category, err := scanAddonCategory(row)
	if err != nil {
		return nil, convertErr(err, "finding addon category %d", categoryID)
	}
	return category, nil
}

// ToggleCategoryActive переключает флаг active категории и возвращает новое значение.
func (a *AddonRepository) ToggleCategoryActive(ctx context.Context, merchantID, categoryID int64) (bool, error) {
	var active bool
	err := a.db.QueryRow(ctx, `
		UPDATE addon_categories SET active = NOT active, updated_at = now()
		WHERE id = $1 AND merchant_id = $2
		RETURNING active`, categoryID, merchantID).Scan(&active)
	if err != nil {
		return false, convertErr(err, "toggling addon category %d", categoryID)
	}
	return active, nil
}

func (a *AddonRepository) DeleteCategory(ctx context.Context, merchantID, categoryID int64) error {
	tag, err := a.db.Exec(ctx, `
		DELETE FROM addon_categories WHERE id = $1 AND merchant_id = $2`, categoryID, merchantID)
	if err != nil {
		return convertErr(err, "deleting addon category %d", categoryID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "deleting addon category %d", categoryID)
	}
	return nil
}

func (a *AddonRepository) CreateItem(
	ctx context.Context,
	args repoargs.CreateAddonItem,
) (*domain.AddonItem, error) {
	row := a.db.QueryRow(ctx, `
		INSERT INTO addon_items (category_id, name, price, display_order)
		VALUES ($1, $2, $3,
			(SELECT COALESCE(MAX(display_order), 0) + 1 FROM addon_items WHERE category_id = $1))
		RETURNING `+addonItemColumns,
		args.CategoryID, args.Name, args.Price,
	)
	item, err := scanAddonItem(row)
	if err != nil {
		return nil, convertErr(err, "creating addon item `%s`", args.Name)
	}
	return item, nil
}

func (a *AddonRepository) UpdateItem(
	ctx context.Context,
	args repoargs.UpdateAddonItem,
) (*domain.AddonItem, error) {
	row := a.db.QueryRow(ctx, `
		UPDATE addon_items SET name = $2, price = $3, updated_at = now()
		WHERE id = $1
		RETURNING `+addonItemColumns,
		args.ID, args.Name, args.Price,
	)
	item, err := scanAddonItem(row)
	if err != nil {
		return nil, convertErr(err, "updating addon item %d", args.ID)
	}
	return item, nil
}

func (a *AddonRepository) DeleteItem(ctx context.Context, itemID int64) error {
	tag, err := a.db.Exec(ctx, `DELETE FROM addon_items WHERE id = $1`, itemID)
	if err != nil {
		return convertErr(err, "deleting addon item %d", itemID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "deleting addon item %d", itemID)
	}
	return nil
}

func (a *AddonRepository) GetItemsByCategoryID(ctx context.Context, categoryID int64) ([]domain.AddonItem, error) {
	rows, err := a.db.Query(ctx, `
		SELECT `+addonItemColumns+` FROM addon_items
		WHERE category_id = $1
		ORDER BY display_order ASC, id ASC`, categoryID)
	if err != nil {
		return nil, convertErr(err, "getting addon items for category %d", categoryID)
	}
	defer rows.Close()

	var items []domain.AddonItem
	for rows.Next() {
		item, scanErr := scanAddonItem(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning addon items")
		}
		items = append(items, *item)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting addon items for category %d", categoryID)
	}
	return items, nil
}

// BatchUpdateItemsDisplayOrder батчем переставляет display_order аддонов.
// Вызывается внутри uow транзакции: частичное применение порядка недопустимо.
func (a *AddonRepository) BatchUpdateItemsDisplayOrder(
	ctx context.Context,
	categoryID int64,
	updates []repoargs.AddonItemDisplayOrder,
	fn repoargs.BatchExecQueryRow,
) {
	batch := new(pgx.Batch)
	for _, update := range updates {
		batch.Queue(`
			UPDATE addon_items SET display_order = $3, updated_at = now()
			WHERE id = $1 AND category_id = $2`,
			update.ID, categoryID, update.DisplayOrder,
		)
	}
	results := a.db.SendBatch(ctx, batch)
	defer func() { _ = results.Close() }()

	for i, update := range updates {
		tag, err := results.Exec()
		if err == nil && tag.RowsAffected() == 0 {
			err = errNoRowsAffected
		}
		fn(i, convertErr(err, "reordering addon item %d", update.ID))
	}
}

func scanAddonCategory(row rowScanner) (*domain.AddonCategory, error) {
	var m domain.AddonCategory
	err := row.Scan(
		&m.ID, &m.CreatedAt, &m.UpdatedAt, &m.MerchantID, &m.Name,
		&m.MinSelection, &m.MaxSelection, &m.Required, &m.Active, &m.DisplayOrder,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &m, nil
}

func scanAddonItem(row rowScanner) (*domain.AddonItem, error) {
	var m domain.AddonItem
	err := row.Scan(
		&m.ID, &m.CreatedAt, &m.UpdatedAt, &m.CategoryID, &m.Name, &m.Price,
		&m.Active, &m.DisplayOrder,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &m, nil
}
