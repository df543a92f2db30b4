package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-eats/internal/domain"
	"github.com/fsdevblog/groph-eats/internal/repository/repoargs"
	"github.com/fsdevblog/groph-eats/internal/service"
)

type AddonsHandler struct {
	addonSvs AddonServicer
}

func NewAddonsHandler(addonSvs AddonServicer) *AddonsHandler {
	return &AddonsHandler{
		addonSvs: addonSvs,
	}
}

type AddonItemResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Active       bool            `json:"active"`
	DisplayOrder int32           `json:"displayOrder"`
}

type AddonCategoryResponse struct {
	ID           int64               `json:"id"`
	Name         string              `json:"name"`
	MinSelection int32               `json:"minSelection"`
	MaxSelection int32               `json:"maxSelection"`
	Required     bool                `json:"required"`
	Active       bool                `json:"active"`
	DisplayOrder int32               `json:"displayOrder"`
	CreatedAt    time.Time           `json:"createdAt"`
	Items        []AddonItemResponse `json:"items,omitempty"`
}

// Index GET RouteGroup + AddonCategoriesRoute. Категории аддонов мерчанта вместе
// с позициями, отсортированные по display_order.
func (h *AddonsHandler) Index(c *gin.Context) {
	merchantID := getMerchantIDFromContext(c)

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	categories, err := h.addonSvs.GetCategories(ctx, merchantID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]AddonCategoryResponse, len(categories))
	for i, category := range categories {
		response[i] = categoryResponse(&category.Category)
		response[i].Items = make([]AddonItemResponse, len(category.Items))
		for j, item := range category.Items {
			response[i].Items[j] = itemResponse(&item)
		}
	}
	c.JSON(http.StatusOK, gin.H{"categories": response})
}

type AddonCategoryParams struct {
	Name         string `binding:"required,min=1,max_bytes=80" json:"name"`
	MinSelection int32  `binding:"min=0"                       json:"minSelection"`
	MaxSelection int32  `binding:"min=0"                       json:"maxSelection"`
	Required     bool   `json:"required"`
}

// CreateCategory POST RouteGroup + AddonCategoriesRoute.
func (h *AddonsHandler) CreateCategory(c *gin.Context) {
	var params AddonCategoryParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	category, err := h.addonSvs.CreateCategory(ctx, repoargs.CreateAddonCategory{
		MerchantID:   getMerchantIDFromContext(c),
		Name:         params.Name,
		MinSelection: params.MinSelection,
		MaxSelection: params.MaxSelection,
		Required:     params.Required,
	})
	if err != nil {
		abortAddonError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": categoryResponse(category)})
}

// UpdateCategory PATCH RouteGroup + AddonCategoryRoute.
func (h *AddonsHandler) UpdateCategory(c *gin.Context) {
	categoryID, ok := paramInt64(c, "id")
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	var params AddonCategoryParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	category, err := h.addonSvs.UpdateCategory(ctx, repoargs.UpdateAddonCategory{
		ID:           categoryID,
		MerchantID:   getMerchantIDFromContext(c),
		Name:         params.Name,
		MinSelection: params.MinSelection,
		MaxSelection: params.MaxSelection,
		Required:     params.Required,
	})
	if err != nil {
		abortAddonError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": categoryResponse(category)})
}

// ToggleCategoryActive PATCH RouteGroup + AddonCategoryToggleActiveRoute.
func (h *AddonsHandler) ToggleCategoryActive(c *gin.Context) {
	categoryID, ok := paramInt64(c, "id")
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	active, err := h.addonSvs.ToggleCategoryActive(ctx, getMerchantIDFromContext(c), categoryID)
	if err != nil {
		abortAddonError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"active": active})
}

// DeleteCategory DELETE RouteGroup + AddonCategoryRoute.
func (h *AddonsHandler) DeleteCategory(c *gin.Context) {
	categoryID, ok := paramInt64(c, "id")
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.addonSvs.DeleteCategory(ctx, getMerchantIDFromContext(c), categoryID); err != nil {
		abortAddonError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}

type AddonItemParams struct {
	Name  string          `binding:"required,min=1,max_bytes=80" json:"name"`
	Price decimal.Decimal `json:"price"`
}

// CreateItem POST RouteGroup + AddonCategoryItemsRoute.
func (h *AddonsHandler) CreateItem(c *gin.Context) {
	categoryID, ok := paramInt64(c, "id")
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	var params AddonItemParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	item, err := h.addonSvs.CreateItem(ctx, getMerchantIDFromContext(c), repoargs.CreateAddonItem{
		CategoryID: categoryID,
		Name:       params.Name,
		Price:      params.Price,
	})
	if err != nil {
		abortAddonError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": itemResponse(item)})
}

// UpdateItem PATCH RouteGroup + AddonItemRoute.
func (h *AddonsHandler) UpdateItem(c *gin.Context) {
	itemID, ok := paramInt64(c, "id")
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	var params AddonItemParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	item, err := h.addonSvs.UpdateItem(ctx, repoargs.UpdateAddonItem{
		ID:    itemID,
		Name:  params.Name,
		Price: params.Price,
	})
	if err != nil {
		abortAddonError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": itemResponse(item)})
}

// DeleteItem DELETE RouteGroup + AddonItemRoute.
func (h *AddonsHandler) DeleteItem(c *gin.Context) {
	itemID, ok := paramInt64(c, "id")
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.addonSvs.DeleteItem(ctx, itemID); err != nil {
		abortAddonError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}

type ReorderParams struct {
	ItemIDs []int64 `binding:"required,min=1" json:"itemIds"`
}

// Reorder POST RouteGroup + AddonCategoryReorderRoute. Принимает полный список id
// позиций категории в новом порядке.
func (h *AddonsHandler) Reorder(c *gin.Context) {
	categoryID, ok := paramInt64(c, "id")
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	var params ReorderParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.addonSvs.ReorderItems(ctx, getMerchantIDFromContext(c), categoryID, params.ItemIDs); err != nil {
		var mismatchErr *domain.ReorderMismatchError
		if errors.As(err, &mismatchErr) {
			_ = c.AbortWithError(http.StatusUnprocessableEntity, mismatchErr).
				SetType(gin.ErrorTypePublic)
			return
		}
		abortAddonError(c, err)
		return
	}

	c.AbortWithStatus(http.StatusOK)
}

// abortAddonError общий маппинг ошибок аддон-сервиса на http статусы.
func abortAddonError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSelectionRange):
		_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrRecordNotFound):
		c.AbortWithStatus(http.StatusNotFound)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}

func categoryResponse(category *domain.AddonCategory) AddonCategoryResponse {
	return AddonCategoryResponse{
		ID:           category.ID,
		Name:         category.Name,
		MinSelection: category.MinSelection,
		MaxSelection: category.MaxSelection,
		Required:     category.Required,
		Active:       category.Active,
		DisplayOrder: category.DisplayOrder,
		CreatedAt:    category.CreatedAt,
	}
}

func itemResponse(item *domain.AddonItem) AddonItemResponse {
	return AddonItemResponse{
		ID:           item.ID,
		Name:         item.Name,
		Price:        item.Price,
		Active:       item.Active,
		DisplayOrder: item.DisplayOrder,
	}
}
