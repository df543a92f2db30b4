package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-eats/internal/domain"
	"github.com/fsdevblog/groph-eats/internal/repository/repoargs"
	"github.com/fsdevblog/groph-eats/internal/service/tokens"
	"github.com/fsdevblog/groph-eats/pkg/uow"
)

const JWTTokenExpire = 1 * time.Hour

// Параметры стартовой подписки нового мерчанта.
const (
	defaultPlanCode  = "standard"
	defaultTrialDays = 14
)

var defaultPlanPrice = decimal.NewFromFloat(49.90)

type UserService struct {
	uow            uow.UOW
	userRepo       UserRepository
	psswd          PasswordHasher
	jwtTokenSecret []byte
}

func NewUserService(u uow.UOW, jwtTokenSecret []byte, psswd PasswordHasher) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &UserService{
		uow:            u,
		userRepo:       userRepo,
		psswd:          psswd,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type RegisterUserArgs struct {
	Username     string
	Password     string
	MerchantName string
	ReferralCode string
}

// Register регистрирует мерчанта: в одной транзакции создает юзера-владельца,
// мерчанта и триальную подписку. Если указан ReferralCode, он валидируется и
// сохраняется за мерчантом для начисления комиссии инфлюенсеру.
// Возвращает 3 значения: созданный юзер, jwt токен и ошибку.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, string, error) {
	password, hashErr := s.psswd.HashPassword(args.Password)
	if hashErr != nil {
		return nil, "", fmt.Errorf("registering user: %s", hashErr.Error())
	}

	var user *domain.User
	var token string
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
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

		referralCode, referralErr := s.resolveReferralCode(c, tx, args.ReferralCode)
		if referralErr != nil {
			return referralErr
		}

		var userErr error
		user, userErr = userRepo.CreateUser(c, repoargs.CreateUser{
			Username: args.Username,
			Password: password,
			Role:     domain.RoleMerchant,
		})
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}

		merchant, merchantErr := merchantRepo.CreateMerchant(c, repoargs.CreateMerchant{
			Name:             args.MerchantName,
			Slug:             slugify(args.MerchantName),
			OwnerUserID:      user.ID,
			ReferralCodeUsed: referralCode,
		})
		if merchantErr != nil {
			if errors.Is(merchantErr, domain.ErrDuplicateKey) {
				return fmt.Errorf("%w: %s", domain.ErrOwnerConflict, merchantErr.Error())
			}
			return merchantErr //nolint:wrapcheck
		}

		if attachErr := userRepo.AttachMerchant(c, user.ID, merchant.ID); attachErr != nil {
			return attachErr //nolint:wrapcheck
		}
		user.MerchantID = &merchant.ID

		_, subErr := subRepo.CreateSubscription(c, repoargs.CreateSubscription{
			MerchantID:   merchant.ID,
			PlanCode:     defaultPlanCode,
			Price:        defaultPlanPrice,
			Status:       domain.SubscriptionStatusTrialing,
			NextChargeAt: time.Now().AddDate(0, 0, defaultTrialDays),
		})
		if subErr != nil {
			return subErr //nolint:wrapcheck
		}

		var tokenErr error
		token, tokenErr = tokens.GenerateUserJWT(user, JWTTokenExpire, s.jwtTokenSecret)
		if tokenErr != nil {
			return tokenErr //nolint:wrapcheck
		}
		return nil
	})

	if txErr != nil {
		return nil, "", fmt.Errorf("registering user: %w", txErr)
	}
	return user, token, nil
}

// resolveReferralCode проверяет реферальный код. Пустой код допустим; неизвестный
// или неактивный - domain.ErrRecordNotFound.
func (s *UserService) resolveReferralCode(ctx context.Context, tx uow.TX, code string) (string, error) {
	if code == "" {
		return "", nil
	}
	influencerRepo, repoErr := uow.GetAs[InfluencerRepository](tx, uow.RepositoryName(repoargs.InfluencerRepoName))
	if repoErr != nil {
		return "", repoErr //nolint:wrapcheck
	}
	influencer, findErr := influencerRepo.FindByReferralCode(ctx, code)
	if findErr != nil {
		return "", findErr //nolint:wrapcheck
	}
	return influencer.ReferralCode, nil
}

type LoginUserArgs struct {
	Username string
	Password string
}

// Login аутентифицирует по паре логин/пароль. Возвращает юзера, jwt токен и ошибку.
// В случае неверного пароля - domain.ErrPasswordMissMatch, неизвестного логина -
// domain.ErrRecordNotFound.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, findErr := s.userRepo.FindUserByUsername(ctx, args.Username)
	if findErr != nil {
		return nil, "", fmt.Errorf("login user: %w", findErr)
	}

	if !s.psswd.ComparePassword(args.Password, user.Password) {
		return nil, "", fmt.Errorf("login user: %w", domain.ErrPasswordMissMatch)
	}

	token, tokenErr := tokens.GenerateUserJWT(user, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("login user: %s", tokenErr.Error())
	}
	return user, token, nil
}
