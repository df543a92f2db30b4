package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-eats/internal/domain"
)

type SubscriptionHandler struct {
	subSvs SubscriptionServicer
}

func NewSubscriptionHandler(subSvs SubscriptionServicer) *SubscriptionHandler {
	return &SubscriptionHandler{
		subSvs: subSvs,
	}
}

type SubscriptionResponse struct {
	PlanCode         string                        `json:"planCode"`
	Price            decimal.Decimal               `json:"price"`
	Status           domain.SubscriptionStatusType `json:"status"`
	CurrentPeriodEnd time.Time                     `json:"currentPeriodEnd"`
	NextChargeAt     time.Time                     `json:"nextChargeAt"`
	PendingVoucher   string                        `json:"pendingVoucher,omitempty"`
}

// Show GET RouteGroup + SubscriptionRoute. Текущая подписка мерчанта.
func (h *SubscriptionHandler) Show(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	sub, err := h.subSvs.GetByMerchantID(reqCtx, getMerchantIDFromContext(c))
	if err != nil {
		abortSubscriptionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscription": subscriptionResponse(sub)})
}

type EventResponse struct {
	Kind       domain.EventKindType `json:"kind"`
	Amount     decimal.Decimal      `json:"amount"`
	Message    string               `json:"message,omitempty"`
	OccurredAt time.Time            `json:"occurredAt"`
}

type EventFlowResponse struct {
	Key       string          `json:"key"`
	Kind      string          `json:"kind"`
	StartedAt time.Time       `json:"startedAt"`
	EndedAt   time.Time       `json:"endedAt"`
	Heuristic bool            `json:"heuristic"`
	Events    []EventResponse `json:"events"`
}

// History GET RouteGroup + SubscriptionHistoryRoute. Журнал событий подписки,
// сгруппированный во флоу.
func (h *SubscriptionHandler) History(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	flows, err := h.subSvs.History(reqCtx, getMerchantIDFromContext(c))
	if err != nil {
		abortSubscriptionError(c, err)
		return
	}

	response := make([]EventFlowResponse, len(flows))
	for i, flow := range flows {
		events := make([]EventResponse, len(flow.Events))
		for j, event := range flow.Events {
			events[j] = EventResponse{
				Kind:       event.Kind,
				Amount:     event.Amount,
				Message:    event.Message,
				OccurredAt: event.OccurredAt,
			}
		}
		response[i] = EventFlowResponse{
			Key:       flow.Key,
			Kind:      flow.Kind,
			StartedAt: flow.StartedAt,
			EndedAt:   flow.EndedAt,
			Heuristic: flow.Heuristic,
			Events:    events,
		}
	}

	c.JSON(http.StatusOK, gin.H{"flows": response})
}

type RedeemVoucherParams struct {
	Code string `binding:"required,min=1,max=40" json:"code"`
}

// RedeemVoucher POST RouteGroup + SubscriptionRedeemVoucherRoute. Применяет
// ваучер к следующему списанию: 404 неизвестный код, 409 исчерпанный или истекший.
func (h *SubscriptionHandler) RedeemVoucher(c *gin.Context) {
	var params RedeemVoucherParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	voucher, err := h.subSvs.RedeemVoucher(reqCtx, getMerchantIDFromContext(c), params.Code)
	if err != nil {
		if errors.Is(err, domain.ErrVoucherExhausted) {
			_ = c.AbortWithError(http.StatusConflict, errors.New("voucher is not redeemable")).
				SetType(gin.ErrorTypePublic)
			return
		}
		abortSubscriptionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":       voucher.Code,
		"percentOff": voucher.PercentOff,
	})
}

// Cancel POST RouteGroup + SubscriptionCancelRoute.
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	sub, err := h.subSvs.Cancel(reqCtx, getMerchantIDFromContext(c))
	if err != nil {
		abortSubscriptionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscription": subscriptionResponse(sub)})
}

func abortSubscriptionError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrRecordNotFound) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
}

func subscriptionResponse(sub *domain.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		PlanCode:         sub.PlanCode,
		Price:            sub.Price,
		Status:           sub.Status,
		CurrentPeriodEnd: sub.CurrentPeriodEnd,
		NextChargeAt:     sub.NextChargeAt,
		PendingVoucher:   sub.PendingVoucher,
	}
}
