package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/fsdevblog/groph-eats/internal/domain"
	"github.com/fsdevblog/groph-eats/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	AttachMerchant(ctx context.Context, userID, merchantID int64) error
}

type MerchantRepository interface {
	CreateMerchant(ctx context.Context, args repoargs.CreateMerchant) (*domain.Merchant, error)
	FindByUUID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error)
	FindByID(ctx context.Context, id int64) (*domain.Merchant, error)
	GetPage(ctx context.Context, page repoargs.MerchantCursorPage) ([]domain.Merchant, error)
	ToggleActive(ctx context.Context, id uuid.UUID) (bool, error)
	CountAll(ctx context.Context) (int64, error)
}

type AddonRepository interface {
	CreateCategory(ctx context.Context, args repoargs.CreateAddonCategory) (*domain.AddonCategory, error)
	UpdateCategory(ctx context.Context, args repoargs.UpdateAddonCategory) (*domain.AddonCategory, error)
	GetCategoriesByMerchantID(ctx context.Context, merchantID int64) ([]domain.AddonCategory, error)
	FindCategory(ctx context.Context, merchantID, categoryID int64) (*domain.AddonCategory, error)
	ToggleCategoryActive(ctx context.Context, merchantID, categoryID int64) (bool, error)
	DeleteCategory(ctx context.Context, merchantID, categoryID int64) error
	CreateItem(ctx context.Context, args repoargs.CreateAddonItem) (*domain.AddonItem, error)
	UpdateItem(ctx context.Context, args repoargs.UpdateAddonItem) (*domain.AddonItem, error)
	DeleteItem(ctx context.Context, itemID int64) error
	GetItemsByCategoryID(ctx context.Context, categoryID int64) ([]domain.AddonItem, error)
	BatchUpdateItemsDisplayOrder(
		ctx context.Context,
		categoryID int64,
		updates []repoargs.AddonItemDisplayOrder,
		fn repoargs.BatchExecQueryRow,
	)
}

type OrderRepository interface {
	GetPage(ctx context.Context, page repoargs.OrderCursorPage) ([]domain.Order, error)
	FindByPublicCode(ctx context.Context, code string) (*domain.Order, error)
	FindByID(ctx context.Context, merchantID, orderID int64) (*domain.Order, error)
	UpdateStatus(ctx context.Context, merchantID, orderID int64, status domain.OrderStatusType) (*domain.Order, error)
	CountAll(ctx context.Context) (int64, error)
}

type SubscriptionRepository interface {
	CreateSubscription(ctx context.Context, args repoargs.CreateSubscription) (*domain.Subscription, error)
	FindByMerchantID(ctx context.Context, merchantID int64) (*domain.Subscription, error)
	GetDueForCharge(ctx context.Context, limit uint) ([]domain.Subscription, error)
	BatchApplyCharge(
		ctx context.Context,
		updates []repoargs.ApplyChargeSubscription,
		fn repoargs.BatchExecQueryRow,
	)
	IncrementChargeAttempts(ctx context.Context, ids []int64, maxAttempts int32) error
	UpdateStatus(ctx context.Context, id int64, status domain.SubscriptionStatusType) (*domain.Subscription, error)
	SetPendingVoucher(ctx context.Context, id int64, code string) error
	CreateEvent(ctx context.Context, args repoargs.CreateSubscriptionEvent) (*domain.SubscriptionEvent, error)
	GetEventsBySubscriptionID(ctx context.Context, subscriptionID int64) ([]domain.SubscriptionEvent, error)
	CreateTransaction(ctx context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error)
	CountByStatus(ctx context.Context, status domain.SubscriptionStatusType) (int64, error)
}

type VoucherRepository interface {
	FindByCode(ctx context.Context, code string) (*domain.Voucher, error)
	Redeem(ctx context.Context, id int64) error
}

type InfluencerRepository interface {
	FindByReferralCode(ctx context.Context, code string) (*domain.Influencer, error)
	FindByID(ctx context.Context, id int64) (*domain.Influencer, error)
	LockByID(ctx context.Context, id int64) error
	CreateCommissionTransaction(
		ctx context.Context,
		args repoargs.CommissionTransactionCreate,
	) (*domain.CommissionTransaction, error)
	GetBalance(ctx context.Context, influencerID int64) (*repoargs.BalanceAggregation, error)
	GetReferrals(ctx context.Context, influencerID int64) ([]repoargs.ReferralSummary, error)
	CreateWithdrawal(ctx context.Context, args repoargs.CreateWithdrawal) (*domain.Withdrawal, error)
	GetWithdrawals(ctx context.Context, influencerID int64) ([]domain.Withdrawal, error)
}
