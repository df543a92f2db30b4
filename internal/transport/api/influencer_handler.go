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

type InfluencerHandler struct {
	svs InfluencerServicer
}

func NewInfluencerHandler(svs InfluencerServicer) *InfluencerHandler {
	return &InfluencerHandler{
		svs: svs,
	}
}

type BalanceResponse struct {
	Accrued   float64 `json:"accrued"`
	Withdrawn float64 `json:"withdrawn"`
	Current   float64 `json:"current"`
}

// Balance GET RouteGroup + InfluencerBalanceRoute.
func (h *InfluencerHandler) Balance(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := h.svs.GetBalance(reqCtx, getInfluencerIDFromContext(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &BalanceResponse{
		Accrued:   balance.Accrued.InexactFloat64(),
		Withdrawn: balance.Withdrawn.InexactFloat64(),
		Current:   balance.Current.InexactFloat64(),
	})
}

type ReferralResponse struct {
	MerchantName string  `json:"merchantName"`
	Accrued      float64 `json:"accrued"`
}

// Referrals GET RouteGroup + InfluencerReferralsRoute. Мерчанты, пришедшие по
// коду инфлюенсера, с начисленной по каждому комиссией.
func (h *InfluencerHandler) Referrals(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	referrals, err := h.svs.GetReferrals(reqCtx, getInfluencerIDFromContext(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]ReferralResponse, len(referrals))
	for i, referral := range referrals {
		response[i] = ReferralResponse{
			MerchantName: referral.MerchantName,
			Accrued:      referral.Accrued.InexactFloat64(),
		}
	}
	c.JSON(http.StatusOK, gin.H{"referrals": response})
}

type WithdrawParams struct {
	Amount      decimal.Decimal `json:"sum"`
	Destination string          `binding:"required,min=1,max=255" json:"destination"`
}

// Withdraw POST RouteGroup + InfluencerWithdrawalsRoute. Заявка на вывод средств,
// недостаточный баланс - 402.
func (h *InfluencerHandler) Withdraw(c *gin.Context) {
	var params WithdrawParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	withdrawal, err := h.svs.Withdraw(reqCtx, getInfluencerIDFromContext(c), params.Amount, params.Destination)
	if err != nil {
		if errors.Is(err, domain.ErrNotEnoughBalance) {
			c.AbortWithStatus(http.StatusPaymentRequired)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"withdrawal": withdrawalResponse(withdrawal)})
}

type WithdrawalResponse struct {
	Amount      float64                     `json:"sum"`
	Destination string                      `json:"destination"`
	Status      domain.WithdrawalStatusType `json:"status"`
	CreatedAt   string                      `json:"processed_at"`
}

// Withdrawals GET RouteGroup + InfluencerWithdrawalsRoute.
func (h *InfluencerHandler) Withdrawals(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	withdrawals, err := h.svs.GetWithdrawals(reqCtx, getInfluencerIDFromContext(c))
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]WithdrawalResponse, len(withdrawals))
	for i, withdrawal := range withdrawals {
		response[i] = withdrawalResponse(&withdrawal)
	}
	c.JSON(http.StatusOK, response)
}

func withdrawalResponse(w *domain.Withdrawal) WithdrawalResponse {
	return WithdrawalResponse{
		Amount:      w.Amount.InexactFloat64(),
		Destination: w.Destination,
		Status:      w.Status,
		CreatedAt:   w.CreatedAt.Format(time.RFC3339),
	}
}
