package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fsdevblog/groph-eats/internal/domain"
	"github.com/fsdevblog/groph-eats/internal/repository/repoargs"
	"github.com/fsdevblog/groph-eats/internal/service"
)

const (
	defaultMerchantsPageLimit int32 = 20
	maxMerchantsPageLimit     int32 = 100
)

type MerchantsHandler struct {
	merchantSvs MerchantServicer
	psswd       service.PasswordHasher
}

func NewMerchantsHandler(merchantSvs MerchantServicer, psswd service.PasswordHasher) *MerchantsHandler {
	return &MerchantsHandler{
		merchantSvs: merchantSvs,
		psswd:       psswd,
	}
}

type MerchantResponse struct {
	UUID      uuid.UUID `json:"uuid"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// Index GET RouteGroup + AdminMerchantsRoute. Страница мерчантов с keyset
// пагинацией по id: параметр after это id последнего мерчанта предыдущей страницы.
func (h *MerchantsHandler) Index(c *gin.Context) {
	afterID, _ := strconv.ParseInt(c.Query("after"), 10, 64)

	limit := defaultMerchantsPageLimit
	if rawLimit, limitErr := strconv.ParseInt(c.Query("limit"), 10, 32); limitErr == nil && rawLimit > 0 {
		limit = int32(rawLimit)
	}
	if limit > maxMerchantsPageLimit {
		limit = maxMerchantsPageLimit
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	merchants, err := h.merchantSvs.GetPage(ctx, repoargs.MerchantCursorPage{
		AfterID: afterID,
		Limit:   limit,
	})
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]MerchantResponse, len(merchants))
	for i, merchant := range merchants {
		response[i] = merchantResponse(&merchant)
	}
	c.JSON(http.StatusOK, gin.H{"merchants": response})
}

type MerchantCreateParams struct {
	Name          string `binding:"required,min=1,max_bytes=80" json:"name"`
	OwnerUsername string `binding:"required,min=1,max=30"       json:"ownerLogin"`
	OwnerPassword string `binding:"required,min=6,max=255"      json:"ownerPassword"`
}

// Create POST RouteGroup + AdminMerchantsRoute. Создает мерчанта вместе с
// юзером-владельцем.
func (h *MerchantsHandler) Create(c *gin.Context) {
	var params MerchantCreateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	merchant, createErr := h.merchantSvs.CreateWithOwner(ctx, h.psswd, service.CreateMerchantArgs{
		Name:          params.Name,
		OwnerUsername: params.OwnerUsername,
		OwnerPassword: params.OwnerPassword,
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrOwnerConflict) || errors.Is(createErr, domain.ErrDuplicateKey) {
			_ = c.AbortWithError(http.StatusConflict, errors.New("merchant owner conflict")).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, createErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"merchant": merchantResponse(merchant)})
}

// ToggleActive PATCH RouteGroup + AdminMerchantToggleActiveRoute. Переключает
// активность мерчанта, возвращает новое значение флага.
func (h *MerchantsHandler) ToggleActive(c *gin.Context) {
	id, parseErr := uuid.Parse(c.Param("uuid"))
	if parseErr != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	active, err := h.merchantSvs.ToggleActive(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"active": active})
}

type OverviewResponse struct {
	Merchants           int64 `json:"merchants"`
	Orders              int64 `json:"orders"`
	ActiveSubscriptions int64 `json:"activeSubscriptions"`
	PastDueSubscription int64 `json:"pastDueSubscriptions"`
}

// Overview GET RouteGroup + AdminOverviewRoute. Счетчики платформы для дашборда.
func (h *MerchantsHandler) Overview(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	counters, err := h.merchantSvs.PlatformOverview(ctx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, OverviewResponse{
		Merchants:           counters.Merchants,
		Orders:              counters.Orders,
		ActiveSubscriptions: counters.ActiveSubscriptions,
		PastDueSubscription: counters.PastDueSubscription,
	})
}

func merchantResponse(m *domain.Merchant) MerchantResponse {
	return MerchantResponse{
		UUID:      m.UUID,
		Name:      m.Name,
		Slug:      m.Slug,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
	}
}
