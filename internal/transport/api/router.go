package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-eats/internal/domain"
	"github.com/fsdevblog/groph-eats/internal/service"
	"github.com/fsdevblog/groph-eats/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup    = "/api"
	RegisterRoute = "/user/register"
	LoginRoute    = "/user/login"

	AdminMerchantsRoute            = "/admin/merchants"
	AdminMerchantToggleActiveRoute = "/admin/merchants/:uuid/toggle-active"
	AdminOverviewRoute             = "/admin/overview"

	AddonCategoriesRoute           = "/merchant/addon-categories"
	AddonCategoryRoute             = "/merchant/addon-categories/:id"
	AddonCategoryToggleActiveRoute = "/merchant/addon-categories/:id/toggle-active"
	AddonCategoryItemsRoute        = "/merchant/addon-categories/:id/items"
	AddonCategoryReorderRoute      = "/merchant/addon-categories/:id/reorder"
	AddonItemRoute                 = "/merchant/addon-items/:id"

	MerchantOrdersRoute      = "/merchant/orders"
	MerchantOrderStatusRoute = "/merchant/orders/:id/status"
	PublicOrderRoute         = "/public/orders/:code"

	SubscriptionRoute              = "/merchant/subscription"
	SubscriptionHistoryRoute       = "/merchant/subscription/history"
	SubscriptionRedeemVoucherRoute = "/merchant/subscription/redeem-voucher"
	SubscriptionCancelRoute        = "/merchant/subscription/cancel"

	InfluencerBalanceRoute     = "/influencer/balance"
	InfluencerReferralsRoute   = "/influencer/referrals"
	InfluencerWithdrawalsRoute = "/influencer/withdrawals"

	MetricsRoute = "/metrics"
)

type RouterArgs struct {
	Logger              *logrus.Logger
	UserService         UserServicer
	MerchantService     MerchantServicer
	AddonService        AddonServicer
	OrderService        OrderServicer
	SubscriptionService SubscriptionServicer
	InfluencerService   InfluencerServicer
	PasswordHasher      service.PasswordHasher
	JWTSecretKey        []byte
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Metrics())
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	merchantsHandler := NewMerchantsHandler(args.MerchantService, args.PasswordHasher)
	addonsHandler := NewAddonsHandler(args.AddonService)
	ordersHandler := NewOrdersHandler(args.OrderService)
	subscriptionHandler := NewSubscriptionHandler(args.SubscriptionService)
	influencerHandler := NewInfluencerHandler(args.InfluencerService)

	r.GET(MetricsRoute, gin.WrapH(promhttp.Handler()))

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)

	// публичная страница отслеживания заказа, токен не требуется.
	api.GET(PublicOrderRoute, ordersHandler.PublicShow)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.

	admin := api.Group("", middlewares.RequireRole(domain.RoleAdmin))
	admin.GET(AdminMerchantsRoute, merchantsHandler.Index)
	admin.POST(AdminMerchantsRoute, merchantsHandler.Create)
	admin.PATCH(AdminMerchantToggleActiveRoute, merchantsHandler.ToggleActive)
	admin.GET(AdminOverviewRoute, merchantsHandler.Overview)

	merchant := api.Group("", middlewares.RequireRole(domain.RoleMerchant))
	merchant.GET(AddonCategoriesRoute, addonsHandler.Index)
	merchant.POST(AddonCategoriesRoute, addonsHandler.CreateCategory)
	merchant.PATCH(AddonCategoryRoute, addonsHandler.UpdateCategory)
	merchant.PATCH(AddonCategoryToggleActiveRoute, addonsHandler.ToggleCategoryActive)
	merchant.DELETE(AddonCategoryRoute, addonsHandler.DeleteCategory)
	merchant.POST(AddonCategoryItemsRoute, addonsHandler.CreateItem)
	merchant.PATCH(AddonItemRoute, addonsHandler.UpdateItem)
	merchant.DELETE(AddonItemRoute, addonsHandler.DeleteItem)
	merchant.POST(AddonCategoryReorderRoute, addonsHandler.Reorder)

	merchant.GET(MerchantOrdersRoute, ordersHandler.Index)
	merchant.PATCH(MerchantOrderStatusRoute, ordersHandler.UpdateStatus)

	merchant.GET(SubscriptionRoute, subscriptionHandler.Show)
	merchant.GET(SubscriptionHistoryRoute, subscriptionHandler.History)
	merchant.POST(SubscriptionRedeemVoucherRoute, subscriptionHandler.RedeemVoucher)
	merchant.POST(SubscriptionCancelRoute, subscriptionHandler.Cancel)

	influencer := api.Group("", middlewares.RequireRole(domain.RoleInfluencer))
	influencer.GET(InfluencerBalanceRoute, influencerHandler.Balance)
	influencer.GET(InfluencerReferralsRoute, influencerHandler.Referrals)
	influencer.POST(InfluencerWithdrawalsRoute, influencerHandler.Withdraw)
	influencer.GET(InfluencerWithdrawalsRoute, influencerHandler.Withdrawals)

	return r, nil
}
