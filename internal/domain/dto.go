package domain

type UserRoleType string

const (
	RoleAdmin      UserRoleType = "admin"
	RoleMerchant   UserRoleType = "merchant"
	RoleInfluencer UserRoleType = "influencer"
)

type OrderStatusType string

const (
	OrderStatusPending   OrderStatusType = "pending"
	OrderStatusConfirmed OrderStatusType = "confirmed"
	OrderStatusPreparing OrderStatusType = "preparing"
	OrderStatusReady     OrderStatusType = "ready"
	OrderStatusCompleted OrderStatusType = "completed"
	OrderStatusCanceled  OrderStatusType = "canceled"
)

// OrderStatusTransitions допустимые переходы статуса заказа.
var OrderStatusTransitions = map[OrderStatusType][]OrderStatusType{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCanceled},
	OrderStatusConfirmed: {OrderStatusPreparing, OrderStatusCanceled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCanceled},
	OrderStatusReady:     {OrderStatusCompleted},
}

// CanTransitionTo проверяет, допустим ли переход статуса заказа из from в to.
func (from OrderStatusType) CanTransitionTo(to OrderStatusType) bool {
	for _, allowed := range OrderStatusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type SubscriptionStatusType string

const (
	SubscriptionStatusTrialing SubscriptionStatusType = "trialing"
	SubscriptionStatusActive   SubscriptionStatusType = "active"
	SubscriptionStatusPastDue  SubscriptionStatusType = "past_due"
	SubscriptionStatusCanceled SubscriptionStatusType = "canceled"
)

type TransactionStatusType string

const (
	TransactionStatusSucceeded TransactionStatusType = "succeeded"
	TransactionStatusFailed    TransactionStatusType = "failed"
)

type WithdrawalStatusType string

const (
	WithdrawalStatusPending  WithdrawalStatusType = "pending"
	WithdrawalStatusPaid     WithdrawalStatusType = "paid"
	WithdrawalStatusRejected WithdrawalStatusType = "rejected"
)

type EventKindType string

const (
	EventKindChargeSucceeded EventKindType = "charge_succeeded"
	EventKindChargeFailed    EventKindType = "charge_failed"
	EventKindVoucherRedeemed EventKindType = "voucher_redeemed"
	EventKindStatusChanged   EventKindType = "status_changed"
	EventKindCanceled        EventKindType = "canceled"
)

type DirectionType string

const (
	DirectionDebit  DirectionType = "debit"
	DirectionCredit DirectionType = "credit"
)
