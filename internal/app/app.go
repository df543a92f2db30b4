package app

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-eats/internal/repository/repoargs"

	"github.com/fsdevblog/groph-eats/internal/transport/billing"

	"github.com/fsdevblog/groph-eats/pkg/uow"

	"github.com/fsdevblog/groph-eats/internal/config"
	"github.com/fsdevblog/groph-eats/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-eats/internal/service"
	"github.com/fsdevblog/groph-eats/internal/service/psswd"
	"github.com/fsdevblog/groph-eats/internal/transport/api"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	"os/signal"
	"syscall"

	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %+v", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	services, sErr := service.Factory(unitOfWork, []byte(a.Config.JWTUserSecret))
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:              a.Logger,
		UserService:         services.UserService,
		MerchantService:     services.MerchantService,
		AddonService:        services.AddonService,
		OrderService:        services.OrderService,
		SubscriptionService: services.SubscriptionService,
		InfluencerService:   services.InfluencerService,
		PasswordHasher:      psswd.PasswordHash(""),
		JWTSecretKey:        []byte(a.Config.JWTUserSecret),
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	processor := billing.New(services.SubscriptionService, a.Config.GatewayAddress, a.Logger).
		SetBillingWorkers(a.Config.BillingWorkers).
		SetLimitPerIteration(a.Config.BillingBatchLimit)

	go processor.Run(notifyCtx)

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		repoargs.MerchantRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewMerchantRepository(dbtx)
		},
		repoargs.AddonRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewAddonRepository(dbtx)
		},
		repoargs.OrderRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewOrderRepository(dbtx)
		},
		repoargs.SubscriptionRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewSubscriptionRepository(dbtx)
		},
		repoargs.VoucherRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewVoucherRepository(dbtx)
		},
		repoargs.InfluencerRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewInfluencerRepository(dbtx)
		},
	}

	for name, factoryFn := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factoryFn); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
