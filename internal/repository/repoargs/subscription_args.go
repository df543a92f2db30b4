package repoargs

import (
	"time"

	"github.com/fsdevblog/groph-eats/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateSubscription struct {
	MerchantID   int64
	PlanCode     string
	Price        decimal.Decimal
	Status       domain.SubscriptionStatusType
	NextChargeAt time.Time
}

// ApplyChargeSubscription параметры батч обновления подписки после попытки списания.
type ApplyChargeSubscription struct {
	ID               int64
	Status           domain.SubscriptionStatusType
	CurrentPeriodEnd time.Time
	NextChargeAt     time.Time
}

type CreateSubscriptionEvent struct {
	SubscriptionID int64
	Kind           domain.EventKindType
	Amount         decimal.Decimal
	Message        string
	FlowID         string
	RequestID      string
	VoucherCode    string
}

type CreateTransaction struct {
	SubscriptionID int64
	GatewayRef     string
	Status         domain.TransactionStatusType
	Amount         decimal.Decimal
}
