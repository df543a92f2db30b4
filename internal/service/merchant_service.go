package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/fsdevblog/groph-eats/internal/domain"
	"github.com/fsdevblog/groph-eats/internal/repository/repoargs"
	"github.com/fsdevblog/groph-eats/pkg/uow"
)

type MerchantService struct {
	uow          uow.UOW
	merchantRepo MerchantRepository
	orderRepo    OrderRepository
	subRepo      SubscriptionRepository
}

func NewMerchantService(u uow.UOW) (*MerchantService, error) {
	merchantRepo, merchantRepoErr := uow.GetRepositoryAs[MerchantRepository](u, uow.RepositoryName(repoargs.MerchantRepoName))
	if merchantRepoErr != nil {
		return nil, merchantRepoErr
	}
	orderRepo, orderRepoErr := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if orderRepoErr != nil {
		return nil, orderRepoErr
	}
	subRepo, subRepoErr := uow.GetRepositoryAs[SubscriptionRepository](u, uow.RepositoryName(repoargs.SubscriptionRepoName))
	if subRepoErr != nil {
		return nil, subRepoErr
	}
	return &MerchantService{
		uow:          u,
		merchantRepo: merchantRepo,
		orderRepo:    orderRepo,
		subRepo:      subRepo,
	}, nil
}

type CreateMerchantArgs struct {
	Name          string
	OwnerUsername string
	OwnerPassword string
}

// CreateWithOwner создает мерчанта вместе с юзером-владельцем из админки.
// Юзер, мерчант и триальная подписка создаются в одной uow транзакции;
// конфликт владельца - domain.ErrOwnerConflict.
func (m *MerchantService) CreateWithOwner(
	ctx context.Context,
	psswd PasswordHasher,
	args CreateMerchantArgs,
) (*domain.Merchant, error) {
	password, hashErr := psswd.HashPassword(args.OwnerPassword)
	if hashErr != nil {
		return nil, fmt.Errorf("creating merchant: %s", hashErr.Error())
	}

	var merchant *domain.Merchant
	txErr := m.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		merchantRepo, merchantRepoErr := uow.GetAs[MerchantRepository](tx, uow.RepositoryName(repoargs.MerchantRepoName))
		if merchantRepoErr != nil {
			return merchantRepoErr //nolint:wrapcheck
		}
		subRepo, subRepoErr := uow.GetAs[SubscriptionRepository](tx, uow.RepositoryName(repoargs.SubscriptionRepoName))
		if subRepoErr != nil {
			return subRepoErr //nolint:wrapcheck
		}

		owner, ownerErr := userRepo.CreateUser(c, repoargs.CreateUser{
			Username: args.OwnerUsername,
			Password: password,
			Role:     domain.RoleMerchant,
		})
		if ownerErr != nil {
			return ownerErr //nolint:wrapcheck
		}

		var createErr error
		merchant, createErr = merchantRepo.CreateMerchant(c, repoargs.CreateMerchant{
			Name:        args.Name,
			Slug:        slugify(args.Name),
			OwnerUserID: owner.ID,
		})
		if createErr != nil {
			if errors.Is(createErr, domain.ErrDuplicateKey) {
				return fmt.Errorf("%w: %s", domain.ErrOwnerConflict, createErr.Error())
			}
			return createErr //nolint:wrapcheck
		}

		if attachErr := userRepo.AttachMerchant(c, owner.ID, merchant.ID); attachErr != nil {
			return attachErr //nolint:wrapcheck
		}

		_, subErr := subRepo.CreateSubscription(c, repoargs.CreateSubscription{
			MerchantID:   merchant.ID,
			PlanCode:     defaultPlanCode,
			Price:        defaultPlanPrice,
			Status:       domain.SubscriptionStatusTrialing,
			NextChargeAt: time.Now().AddDate(0, 0, defaultTrialDays),
		})
		return subErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("creating merchant: %w", txErr)
	}
	return merchant, nil
}

// GetPage возвращает страницу мерчантов (keyset по id) для админского списка.
func (m *MerchantService) GetPage(ctx context.Context, page repoargs.MerchantCursorPage) ([]domain.Merchant, error) {
	merchants, err := m.merchantRepo.GetPage(ctx, page)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return merchants, nil
}

func (m *MerchantService) FindByUUID(ctx context.Context, id uuid.UUID) (*domain.Merchant, error) {
	merchant, err := m.merchantRepo.FindByUUID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return merchant, nil
}

func (m *MerchantService) FindByID(ctx context.Context, id int64) (*domain.Merchant, error) {
	merchant, err := m.merchantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return merchant, nil
}

// ToggleActive переключает активность мерчанта и возвращает новое значение флага.
func (m *MerchantService) ToggleActive(ctx context.Context, id uuid.UUID) (bool, error) {
	active, err := m.merchantRepo.ToggleActive(ctx, id)
	if err != nil {
		return false, err //nolint:wrapcheck
	}
	return active, nil
}

// PlatformOverview собирает счетчики для админского дашборда. Четыре независимых
// запроса выполняются параллельно через errgroup.
func (m *MerchantService) PlatformOverview(ctx context.Context) (*repoargs.PlatformCounters, error) {
	var counters repoargs.PlatformCounters

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		counters.Merchants, err = m.merchantRepo.CountAll(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		counters.Orders, err = m.orderRepo.CountAll(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		counters.ActiveSubscriptions, err = m.subRepo.CountByStatus(gCtx, domain.SubscriptionStatusActive)
		return err
	})
	g.Go(func() error {
		var err error
		counters.PastDueSubscription, err = m.subRepo.CountByStatus(gCtx, domain.SubscriptionStatusPastDue)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("platform overview: %w", err)
	}
	return &counters, nil
}
