package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	UUID         uuid.UUID
	Username     string
	Password     string
	Role         UserRoleType
	MerchantID   *int64
	InfluencerID *int64
}

type Merchant struct {
	ID               int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
	UUID             uuid.UUID
	Name             string
	Slug             string
	OwnerUserID      int64
	Active           bool
	ReferralCodeUsed string
}

type AddonCategory struct {
	ID           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	MerchantID   int64
	Name         string
	MinSelection int32
	MaxSelection int32
	Required     bool
	Active       bool
	DisplayOrder int32
}

type AddonItem struct {
	ID           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CategoryID   int64
	Name         string
	Price        decimal.Decimal
	Active       bool
	DisplayOrder int32
}

type Order struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	MerchantID    int64
	PublicCode    string
	CustomerName  string
	CustomerPhone string
	Status        OrderStatusType
	Total         decimal.Decimal
	PlacedAt      time.Time
	Items         []OrderItem
}

type OrderItem struct {
	ID        int64
	OrderID   int64
	Name      string
	Quantity  int32
	UnitPrice decimal.Decimal
	Addons    []byte // jsonb снапшот выбранных аддонов на момент заказа.
}

type Subscription struct {
	ID               int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
	MerchantID       int64
	PlanCode         string
	Price            decimal.Decimal
	Status           SubscriptionStatusType
	CurrentPeriodEnd time.Time
	NextChargeAt     time.Time
	ChargeAttempts   int32
	PendingVoucher   string
}

// SubscriptionEvent строка append-only журнала событий подписки. Поля FlowID,
// RequestID и VoucherCode опциональны: легаси строки их не имеют и группируются
// эвристикой по дням.
type SubscriptionEvent struct {
	ID             int64
	SubscriptionID int64
	Kind           EventKindType
	Amount         decimal.Decimal
	Message        string
	FlowID         string
	RequestID      string
	VoucherCode    string
	OccurredAt     time.Time
}

type Voucher struct {
	ID             int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	Code           string
	PercentOff     int32
	MaxRedemptions int32
	RedeemedCount  int32
	ExpiresAt      time.Time
	Active         bool
}

type Influencer struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	UUID              uuid.UUID
	Name              string
	ReferralCode      string
	CommissionPercent decimal.Decimal
	Active            bool
}

// CommissionTransaction движение по балансу инфлюенсера. Direction debit -
// начисление комиссии, credit - списание при выводе средств.
type CommissionTransaction struct {
	ID           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	InfluencerID int64
	MerchantID   int64
	Direction    DirectionType
	Amount       decimal.Decimal
	Reference    string
}

type Transaction struct {
	ID             int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	SubscriptionID int64
	GatewayRef     string
	Status         TransactionStatusType
	Amount         decimal.Decimal
}

type Withdrawal struct {
	ID           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	InfluencerID int64
	Amount       decimal.Decimal
	Destination  string
	Status       WithdrawalStatusType
}
