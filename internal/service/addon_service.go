package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/groph-eats/internal/domain"
	"github.com/fsdevblog/groph-eats/internal/repository/repoargs"
	"github.com/fsdevblog/groph-eats/pkg/uow"
)

// ErrSelectionRange нарушение инварианта minSelection <= maxSelection.
var ErrSelectionRange = errors.New("min selection greater than max selection")

type AddonService struct {
	uow       uow.UOW
	addonRepo AddonRepository
}

func NewAddonService(u uow.UOW) (*AddonService, error) {
	addonRepo, err := uow.GetRepositoryAs[AddonRepository](u, uow.RepositoryName(repoargs.AddonRepoName))
	if err != nil {
		return nil, err
	}
	return &AddonService{
		uow:       u,
		addonRepo: addonRepo,
	}, nil
}

// CreateCategory создает категорию аддонов. Инвариант minSelection <= maxSelection
// проверяется и здесь, а не только в хендлере: у категории есть CHECK в базе, но
// осмысленную ошибку клиент должен получить до запроса.
func (a *AddonService) CreateCategory(
	ctx context.Context,
	args repoargs.CreateAddonCategory,
) (*domain.AddonCategory, error) {
	if args.MinSelection > args.MaxSelection {
		return nil, ErrSelectionRange
	}
	category, err := a.addonRepo.CreateCategory(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("creating addon category: %w", err)
	}
	return category, nil
}

func (a *AddonService) UpdateCategory(
	ctx context.Context,
	args repoargs.UpdateAddonCategory,
) (*domain.AddonCategory, error) {
	if args.MinSelection > args.MaxSelection {
		return nil, ErrSelectionRange
	}
	category, err := a.addonRepo.UpdateCategory(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("updating addon category: %w", err)
	}
	return category, nil
}

// GetCategories возвращает категории мерчанта вместе с аддонами, отсортированные
// по display_order.
func (a *AddonService) GetCategories(ctx context.Context, merchantID int64) ([]AddonCategoryWithItems, error) {
	categories, err := a.addonRepo.GetCategoriesByMerchantID(ctx, merchantID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	var result = make([]AddonCategoryWithItems, len(categories))
	for i, category := range categories {
		items, itemsErr := a.addonRepo.GetItemsByCategoryID(ctx, category.ID)
		if itemsErr != nil {
			return nil, itemsErr //nolint:wrapcheck
		}
		result[i] = AddonCategoryWithItems{
			Category: category,
			Items:    items,
		}
	}
	return result, nil
}

type AddonCategoryWithItems struct {
	Category domain.AddonCategory
	Items    []domain.AddonItem
}

func (a *AddonService) ToggleCategoryActive(ctx context.Context, merchantID, categoryID int64) (bool, error) {
	active, err := a.addonRepo.ToggleCategoryActive(ctx, merchantID, categoryID)
	if err != nil {
		return false, err //nolint:wrapcheck
	}
	return active, nil
}

func (a *AddonService) DeleteCategory(ctx context.Context, merchantID, categoryID int64) error {
	return a.addonRepo.DeleteCategory(ctx, merchantID, categoryID) //nolint:wrapcheck
}

// CreateItem создает аддон в категории мерчанта. Принадлежность категории мерчанту
// проверяется до вставки.
func (a *AddonService) CreateItem(
	ctx context.Context,
	merchantID int64,
	args repoargs.CreateAddonItem,
) (*domain.AddonItem, error) {
	if _, err := a.addonRepo.FindCategory(ctx, merchantID, args.CategoryID); err != nil {
		return nil, fmt.Errorf("creating addon item: %w", err)
	}
	item, err := a.addonRepo.CreateItem(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("creating addon item: %w", err)
	}
	return item, nil
}

func (a *AddonService) UpdateItem(ctx context.Context, args repoargs.UpdateAddonItem) (*domain.AddonItem, error) {
	item, err := a.addonRepo.UpdateItem(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("updating addon item: %w", err)
	}
	return item, nil
}

func (a *AddonService) DeleteItem(ctx context.Context, itemID int64) error {
	return a.addonRepo.DeleteItem(ctx, itemID) //nolint:wrapcheck
}

// ReorderItems сохраняет новый порядок аддонов категории.
//
// Алгоритм работы:
//  1. Загружает текущий состав категории и сверяет его с переданным списком id:
//     список обязан быть полной перестановкой, иначе *domain.ReorderMismatchError.
//  2. Батчем выставляет display_order по позиции id в списке.
//
// Выполняется внутри uow транзакции: при любой ошибке порядок остается прежним,
// клиент может безопасно откатить свой локальный drag-and-drop.
func (a *AddonService) ReorderItems(ctx context.Context, merchantID, categoryID int64, itemIDs []int64) error {
	txErr := a.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[AddonRepository](tx, uow.RepositoryName(repoargs.AddonRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		if _, findErr := repo.FindCategory(c, merchantID, categoryID); findErr != nil {
			return findErr //nolint:wrapcheck
		}

		items, itemsErr := repo.GetItemsByCategoryID(c, categoryID)
		if itemsErr != nil {
			return itemsErr //nolint:wrapcheck
		}

		if mismatchErr := validateReorder(categoryID, items, itemIDs); mismatchErr != nil {
			return mismatchErr
		}

		var updates = make([]repoargs.AddonItemDisplayOrder, len(itemIDs))
		for i, id := range itemIDs {
			updates[i] = repoargs.AddonItemDisplayOrder{
				ID:           id,
				DisplayOrder: int32(i) + 1, //nolint:gosec
			}
		}

		// batchErr хранит последнюю ошибку батча, их незачем объединять.
		var batchErr error
		repo.BatchUpdateItemsDisplayOrder(c, categoryID, updates, func(_ int, err error) {
			if err != nil {
				batchErr = err
			}
		})
		return batchErr
	})

	if txErr != nil {
		return fmt.Errorf("reordering addon items: %w", txErr)
	}
	return nil
}

// validateReorder проверяет что itemIDs является перестановкой фактического состава категории.
func validateReorder(categoryID int64, items []domain.AddonItem, itemIDs []int64) error {
	if len(items) != len(itemIDs) {
		return domain.NewReorderMismatchError(categoryID, len(itemIDs), len(items))
	}
	known := make(map[int64]struct{}, len(items))
	for _, item := range items {
		known[item.ID] = struct{}{}
	}
	for _, id := range itemIDs {
		if _, ok := known[id]; !ok {
			return domain.NewReorderMismatchError(categoryID, len(itemIDs), len(items))
		}
		delete(known, id) // ловим дубликаты id в списке
	}
	return nil
}
