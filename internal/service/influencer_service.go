package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-eats/internal/domain"
	"github.com/fsdevblog/groph-eats/internal/repository/repoargs"
	"github.com/fsdevblog/groph-eats/pkg/uow"
)

type InfluencerService struct {
	uow            uow.UOW
	influencerRepo InfluencerRepository
}

func NewInfluencerService(u uow.UOW) (*InfluencerService, error) {
	influencerRepo, err := uow.GetRepositoryAs[InfluencerRepository](u, uow.RepositoryName(repoargs.InfluencerRepoName))
	if err != nil {
		return nil, err
	}
	return &InfluencerService{
		uow:            u,
		influencerRepo: influencerRepo,
	}, nil
}

func (i *InfluencerService) FindByID(ctx context.Context, id int64) (*domain.Influencer, error) {
	influencer, err := i.influencerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return influencer, nil
}

// InfluencerBalance агрегированный баланс: начислено, выведено и доступно.
type InfluencerBalance struct {
	Accrued   decimal.Decimal
	Withdrawn decimal.Decimal
	Current   decimal.Decimal
}

// GetBalance возвращает баланс инфлюенсера. Доступная сумма считается как
// начислено минус выведено.
func (i *InfluencerService) GetBalance(ctx context.Context, influencerID int64) (*InfluencerBalance, error) {
	sum, err := i.influencerRepo.GetBalance(ctx, influencerID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &InfluencerBalance{
		Accrued:   sum.DebitAmount,
		Withdrawn: sum.CreditAmount,
		Current:   sum.DebitAmount.Sub(sum.CreditAmount),
	}, nil
}

// GetReferrals возвращает мерчантов, зарегистрировавшихся по коду инфлюенсера,
// с накопленной по каждому комиссией.
func (i *InfluencerService) GetReferrals(ctx context.Context, influencerID int64) ([]repoargs.ReferralSummary, error) {
	referrals, err := i.influencerRepo.GetReferrals(ctx, influencerID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return referrals, nil
}

// Withdraw создает заявку на вывод средств.
//
// Алгоритм работы:
//  1. Берет блокировку строки инфлюенсера (SELECT FOR UPDATE).
//  2. Агрегирует баланс инфлюенсера. Запрошенная сумма больше доступной -
//     domain.ErrNotEnoughBalance.
//  3. Создает заявку и кредитовую запись о движении средств.
//
// Блокировка держится до конца uow транзакции и сериализует конкурирующие
// выводы: второй запрос прочитает баланс уже с учетом первого.
func (i *InfluencerService) Withdraw(
	ctx context.Context,
	influencerID int64,
	amount decimal.Decimal,
	destination string,
) (*domain.Withdrawal, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("withdraw amount %s: %w", amount, domain.ErrNotEnoughBalance)
	}

	var withdrawal *domain.Withdrawal

	txErr := i.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[InfluencerRepository](tx, uow.RepositoryName(repoargs.InfluencerRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		if lockErr := repo.LockByID(c, influencerID); lockErr != nil {
			return lockErr //nolint:wrapcheck
		}

		sum, sumErr := repo.GetBalance(c, influencerID)
		if sumErr != nil {
			return sumErr //nolint:wrapcheck
		}

		if sum.DebitAmount.Sub(sum.CreditAmount).LessThan(amount) {
			return domain.ErrNotEnoughBalance
		}

		var createErr error
		withdrawal, createErr = repo.CreateWithdrawal(c, repoargs.CreateWithdrawal{
			InfluencerID: influencerID,
			Amount:       amount,
			Destination:  destination,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		_, commissionErr := repo.CreateCommissionTransaction(c, repoargs.CommissionTransactionCreate{
			InfluencerID: influencerID,
			Direction:    domain.DirectionCredit,
			Amount:       amount,
			Reference:    fmt.Sprintf("withdrawal:%s", uuid.NewString()),
		})
		return commissionErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("withdrawing funds: %w", txErr)
	}
	return withdrawal, nil
}

func (i *InfluencerService) GetWithdrawals(ctx context.Context, influencerID int64) ([]domain.Withdrawal, error) {
	withdrawals, err := i.influencerRepo.GetWithdrawals(ctx, influencerID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return withdrawals, nil
}
