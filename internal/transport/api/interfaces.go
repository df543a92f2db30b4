package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-eats/internal/domain"
	"github.com/fsdevblog/groph-eats/internal/repository/repoargs"
	"github.com/fsdevblog/groph-eats/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
}

type MerchantServicer interface {
	CreateWithOwner(
		ctx context.Context,
		psswd service.PasswordHasher,
		args service.CreateMerchantArgs,
	) (*domain.Merchant, error)
	GetPage(ctx context.Context, page repoargs.MerchantCursorPage) ([]domain.Merchant, error)
	FindByUUID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error)
	ToggleActive(ctx context.Context, id uuid.UUID) (bool, error)
	PlatformOverview(ctx context.Context) (*repoargs.PlatformCounters, error)
}

type AddonServicer interface {
	CreateCategory(ctx context.Context, args repoargs.CreateAddonCategory) (*domain.AddonCategory, error)
	UpdateCategory(ctx context.Context, args repoargs.UpdateAddonCategory) (*domain.AddonCategory, error)
	GetCategories(ctx context.Context, merchantID int64) ([]service.AddonCategoryWithItems, error)
	ToggleCategoryActive(ctx context.Context, merchantID, categoryID int64) (bool, error)
	DeleteCategory(ctx context.Context, merchantID, categoryID int64) error
	CreateItem(ctx context.Context, merchantID int64, args repoargs.CreateAddonItem) (*domain.AddonItem, error)
	UpdateItem(ctx context.Context, args repoargs.UpdateAddonItem) (*domain.AddonItem, error)
	DeleteItem(ctx context.Context, itemID int64) error
	ReorderItems(ctx context.Context, merchantID, categoryID int64, itemIDs []int64) error
}

type OrderServicer interface {
	GetPage(ctx context.Context, args service.OrdersPageArgs) (*service.OrdersPage, error)
	UpdateStatus(
		ctx context.Context,
		merchantID, orderID int64,
		status domain.OrderStatusType,
	) (*domain.Order, error)
	FindByPublicCode(ctx context.Context, code string) (*domain.Order, error)
}

type SubscriptionServicer interface {
	GetByMerchantID(ctx context.Context, merchantID int64) (*domain.Subscription, error)
	History(ctx context.Context, merchantID int64) ([]service.EventFlow, error)
	RedeemVoucher(ctx context.Context, merchantID int64, code string) (*domain.Voucher, error)
	Cancel(ctx context.Context, merchantID int64) (*domain.Subscription, error)
}

type InfluencerServicer interface {
	GetBalance(ctx context.Context, influencerID int64) (*service.InfluencerBalance, error)
	GetReferrals(ctx context.Context, influencerID int64) ([]repoargs.ReferralSummary, error)
	Withdraw(
		ctx context.Context,
		influencerID int64,
		amount decimal.Decimal,
		destination string,
	) (*domain.Withdrawal, error)
	GetWithdrawals(ctx context.Context, influencerID int64) ([]domain.Withdrawal, error)
}
