package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-eats/internal/domain"
	"github.com/fsdevblog/groph-eats/internal/repository/repoargs"
	"github.com/fsdevblog/groph-eats/pkg/uow"
)

// maxChargeAttempts после стольких неудачных списаний подписка переводится в past_due.
const maxChargeAttempts int32 = 3

var hundred = decimal.NewFromInt(100)

type SubscriptionService struct {
	uow     uow.UOW
	subRepo SubscriptionRepository
}

func NewSubscriptionService(u uow.UOW) (*SubscriptionService, error) {
	subRepo, err := uow.GetRepositoryAs[SubscriptionRepository](u, uow.RepositoryName(repoargs.SubscriptionRepoName))
	if err != nil {
		return nil, err
	}
	return &SubscriptionService{
		uow:     u,
		subRepo: subRepo,
	}, nil
}

func (s *SubscriptionService) GetByMerchantID(ctx context.Context, merchantID int64) (*domain.Subscription, error) {
	sub, err := s.subRepo.FindByMerchantID(ctx, merchantID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return sub, nil
}

// History возвращает журнал событий подписки, сгруппированный во флоу для таймлайна.
func (s *SubscriptionService) History(ctx context.Context, merchantID int64) ([]EventFlow, error) {
	sub, subErr := s.subRepo.FindByMerchantID(ctx, merchantID)
	if subErr != nil {
		return nil, subErr //nolint:wrapcheck
	}
	events, eventsErr := s.subRepo.GetEventsBySubscriptionID(ctx, sub.ID)
	if eventsErr != nil {
		return nil, eventsErr //nolint:wrapcheck
	}
	return GroupEventFlows(events), nil
}

// RedeemVoucher применяет ваучер к следующему списанию подписки мерчанта.
//
// Алгоритм работы:
//  1. Находит подписку и ваучер. Неизвестный код - domain.ErrRecordNotFound.
//  2. Проверяет пригодность ваучера (активен, не истек, лимит не исчерпан),
//     иначе domain.ErrVoucherExhausted.
//  3. Инкрементирует счетчик использований, запоминает код за подпиской и пишет
//     событие voucher_redeemed в журнал.
//
// Все шаги в одной uow транзакции: конкурирующее погашение последнего
// использования откатится на шаге 3.
func (s *SubscriptionService) RedeemVoucher(ctx context.Context, merchantID int64, code string) (*domain.Voucher, error) {
	var voucher *domain.Voucher

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		subRepo, subRepoErr := uow.GetAs[SubscriptionRepository](tx, uow.RepositoryName(repoargs.SubscriptionRepoName))
		if subRepoErr != nil {
			return subRepoErr //nolint:wrapcheck
		}
		voucherRepo, voucherRepoErr := uow.GetAs[VoucherRepository](tx, uow.RepositoryName(repoargs.VoucherRepoName))
		if voucherRepoErr != nil {
			return voucherRepoErr //nolint:wrapcheck
		}

		sub, subErr := subRepo.FindByMerchantID(c, merchantID)
		if subErr != nil {
			return subErr //nolint:wrapcheck
		}

		var findErr error
		voucher, findErr = voucherRepo.FindByCode(c, code)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}

		if !voucher.Active || time.Now().After(voucher.ExpiresAt) ||
			voucher.RedeemedCount >= voucher.MaxRedemptions {
			return domain.ErrVoucherExhausted
		}

		if redeemErr := voucherRepo.Redeem(c, voucher.ID); redeemErr != nil {
			// гонка за последнее использование: Redeem не затронул строк.
			if errors.Is(redeemErr, domain.ErrRecordNotFound) {
				return domain.ErrVoucherExhausted
			}
			return redeemErr //nolint:wrapcheck
		}

		if setErr := subRepo.SetPendingVoucher(c, sub.ID, voucher.Code); setErr != nil {
			return setErr //nolint:wrapcheck
		}

		_, eventErr := subRepo.CreateEvent(c, repoargs.CreateSubscriptionEvent{
			SubscriptionID: sub.ID,
			Kind:           domain.EventKindVoucherRedeemed,
			Message:        fmt.Sprintf("voucher %s applied: -%d%% off next charge", voucher.Code, voucher.PercentOff),
			RequestID:      uuid.NewString(),
			VoucherCode:    voucher.Code,
		})
		return eventErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("redeeming voucher: %w", txErr)
	}
	return voucher, nil
}

// Cancel переводит подписку мерчанта в canceled и пишет событие в журнал.
func (s *SubscriptionService) Cancel(ctx context.Context, merchantID int64) (*domain.Subscription, error) {
	var sub *domain.Subscription

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		subRepo, subRepoErr := uow.GetAs[SubscriptionRepository](tx, uow.RepositoryName(repoargs.SubscriptionRepoName))
		if subRepoErr != nil {
			return subRepoErr //nolint:wrapcheck
		}

		current, findErr := subRepo.FindByMerchantID(c, merchantID)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}

		var updErr error
		sub, updErr = subRepo.UpdateStatus(c, current.ID, domain.SubscriptionStatusCanceled)
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}

		_, eventErr := subRepo.CreateEvent(c, repoargs.CreateSubscriptionEvent{
			SubscriptionID: sub.ID,
			Kind:           domain.EventKindCanceled,
			Message:        "subscription canceled by merchant",
			RequestID:      uuid.NewString(),
		})
		return eventErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("canceling subscription: %w", txErr)
	}
	return sub, nil
}

// ChargeCandidate подписка, подлежащая списанию, с суммой к оплате с учетом
// отложенного ваучера.
type ChargeCandidate struct {
	Subscription domain.Subscription
	Amount       decimal.Decimal
}

// DueCharges возвращает подписки подлежащие списанию. Для подписок с отложенным
// ваучером сумма уменьшается на его процент; непригодный ваучер (удаленный,
// деактивированный или истекший к моменту списания) молча игнорируется,
// списывается полная цена.
func (s *SubscriptionService) DueCharges(ctx context.Context, limit uint) ([]ChargeCandidate, error) {
	subs, err := s.subRepo.GetDueForCharge(ctx, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	voucherRepo, voucherRepoErr := uow.GetRepositoryAs[VoucherRepository](s.uow, uow.RepositoryName(repoargs.VoucherRepoName))
	if voucherRepoErr != nil {
		return nil, voucherRepoErr //nolint:wrapcheck
	}

	var candidates = make([]ChargeCandidate, len(subs))
	for i, sub := range subs {
		amount := sub.Price
		if sub.PendingVoucher != "" {
			voucher, findErr := voucherRepo.FindByCode(ctx, sub.PendingVoucher)
			if findErr == nil && voucher.Active && !time.Now().After(voucher.ExpiresAt) {
				percent := decimal.NewFromInt32(voucher.PercentOff)
				amount = amount.Mul(hundred.Sub(percent)).Div(hundred).Round(2)
			} else if findErr != nil && !errors.Is(findErr, domain.ErrRecordNotFound) {
				return nil, findErr //nolint:wrapcheck
			}
		}
		candidates[i] = ChargeCandidate{
			Subscription: sub,
			Amount:       amount,
		}
	}
	return candidates, nil
}

type ChargeResultArgs struct {
	Error          error
	SubscriptionID int64
	MerchantID     int64
	Amount         decimal.Decimal
	GatewayRef     string
	RequestID      string
}

type appliedCharge struct {
	SubscriptionID int64
	MerchantID     int64
	Amount         decimal.Decimal
	GatewayRef     string
	RequestID      string
}

// ApplyChargeResults применяет результаты списаний биллинг-процессора.
//
// Параметры:
//   - ctx: контекст для управления жизненным циклом
//   - updates: срез результатов списаний, успешных и неуспешных.
//
// Алгоритм работы:
//  1. Успешные списания: батч обновляет подписки (новый период, сброс попыток и
//     ваучера), создает записи transactions и события charge_succeeded. Апдейт
//     перепроверяет next_charge_at: период, уже продленный параллельным
//     инстансом, пропускается целиком, без дублей transactions и событий.
//  2. Начисляет комиссию инфлюенсерам за мерчантов, пришедших по реферальному коду.
//     Дубликат по reference игнорируется: по одному списанию комиссия начисляется единожды.
//  3. Неуспешные: инкремент счетчика попыток (с переводом в past_due после
//     maxChargeAttempts) и события charge_failed.
//
// Все изменения применяются в одной uow транзакции.
func (s *SubscriptionService) ApplyChargeResults(ctx context.Context, updates []ChargeResultArgs) error {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		succeeded, failed := splitChargeResults(updates)

		if err := s.applySucceededCharges(c, tx, succeeded); err != nil {
			return err //nolint:wrapcheck
		}

		if err := s.applyFailedCharges(c, tx, failed); err != nil {
			return err //nolint:wrapcheck
		}
		return nil
	})

	if txErr != nil {
		return fmt.Errorf("applying charge results: %w", txErr)
	}
	return nil
}

// splitChargeResults разбивает результаты на успешные и неуспешные.
func splitChargeResults(updates []ChargeResultArgs) ([]appliedCharge, []ChargeResultArgs) {
	var succeeded = make([]appliedCharge, 0, len(updates))
	var failed = make([]ChargeResultArgs, 0, len(updates))
	for _, update := range updates {
		if update.Error == nil {
			succeeded = append(succeeded, appliedCharge{
				SubscriptionID: update.SubscriptionID,
				MerchantID:     update.MerchantID,
				Amount:         update.Amount,
				GatewayRef:     update.GatewayRef,
				RequestID:      update.RequestID,
			})
		} else {
			failed = append(failed, update)
		}
	}
	return succeeded, failed
}

func (s *SubscriptionService) applySucceededCharges(ctx context.Context, tx uow.TX, charges []appliedCharge) error {
	if len(charges) == 0 {
		return nil
	}
	subRepo, subRepoErr := uow.GetAs[SubscriptionRepository](tx, uow.RepositoryName(repoargs.SubscriptionRepoName))
	if subRepoErr != nil {
		return subRepoErr //nolint:wrapcheck
	}

	now := time.Now()
	var batchArgs = make([]repoargs.ApplyChargeSubscription, len(charges))
	for i, charge := range charges {
		batchArgs[i] = repoargs.ApplyChargeSubscription{
			ID:               charge.SubscriptionID,
			Status:           domain.SubscriptionStatusActive,
			CurrentPeriodEnd: now.AddDate(0, 1, 0),
			NextChargeAt:     now.AddDate(0, 1, 0),
		}
	}

	// batchErr хранит последнюю ошибку батча.
	var batchErr error
	stale := make([]bool, len(charges))
	subRepo.BatchApplyCharge(ctx, batchArgs, func(i int, err error) {
		// нулевой апдейт: next_charge_at уже в будущем, период обработан
		// параллельным инстансом.
		if errors.Is(err, domain.ErrRecordNotFound) {
			stale[i] = true
			return
		}
		if err != nil {
			batchErr = err
		}
	})
	if batchErr != nil {
		return batchErr
	}

	for i, charge := range charges {
		if stale[i] {
			continue
		}
		if _, err := subRepo.CreateTransaction(ctx, repoargs.CreateTransaction{
			SubscriptionID: charge.SubscriptionID,
			GatewayRef:     charge.GatewayRef,
			Status:         domain.TransactionStatusSucceeded,
			Amount:         charge.Amount,
		}); err != nil {
			return err //nolint:wrapcheck
		}

		if _, err := subRepo.CreateEvent(ctx, repoargs.CreateSubscriptionEvent{
			SubscriptionID: charge.SubscriptionID,
			Kind:           domain.EventKindChargeSucceeded,
			Amount:         charge.Amount,
			Message:        "subscription charged",
			RequestID:      charge.RequestID,
		}); err != nil {
			return err //nolint:wrapcheck
		}

		if err := s.accrueCommission(ctx, tx, charge); err != nil {
			return err
		}
	}
	return nil
}

// accrueCommission начисляет комиссию инфлюенсеру за успешное списание у
// реферального мерчанта. Мерчанты без реферального кода пропускаются.
func (s *SubscriptionService) accrueCommission(ctx context.Context, tx uow.TX, charge appliedCharge) error {
	merchantRepo, merchantRepoErr := uow.GetAs[MerchantRepository](tx, uow.RepositoryName(repoargs.MerchantRepoName))
	if merchantRepoErr != nil {
		return merchantRepoErr //nolint:wrapcheck
	}
	influencerRepo, influencerRepoErr := uow.GetAs[InfluencerRepository](tx, uow.RepositoryName(repoargs.InfluencerRepoName))
	if influencerRepoErr != nil {
		return influencerRepoErr //nolint:wrapcheck
	}

	merchant, merchantErr := merchantRepo.FindByID(ctx, charge.MerchantID)
	if merchantErr != nil {
		return merchantErr //nolint:wrapcheck
	}
	if merchant.ReferralCodeUsed == "" {
		return nil
	}

	influencer, influencerErr := influencerRepo.FindByReferralCode(ctx, merchant.ReferralCodeUsed)
	if influencerErr != nil {
		// реферальный код мог быть деактивирован после регистрации мерчанта.
		if errors.Is(influencerErr, domain.ErrRecordNotFound) {
			return nil
		}
		return influencerErr //nolint:wrapcheck
	}

	commission := charge.Amount.Mul(influencer.CommissionPercent).Div(hundred).Round(2)
	if !commission.IsPositive() {
		return nil
	}

	_, createErr := influencerRepo.CreateCommissionTransaction(ctx, repoargs.CommissionTransactionCreate{
		InfluencerID: influencer.ID,
		MerchantID:   merchant.ID,
		Direction:    domain.DirectionDebit,
		Amount:       commission,
		Reference:    charge.GatewayRef,
	})
	if createErr != nil {
		// дубликат возможен только при повторной обработке того же списания.
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			return nil
		}
		return createErr //nolint:wrapcheck
	}
	return nil
}

func (s *SubscriptionService) applyFailedCharges(ctx context.Context, tx uow.TX, failed []ChargeResultArgs) error {
	if len(failed) == 0 {
		return nil
	}
	subRepo, subRepoErr := uow.GetAs[SubscriptionRepository](tx, uow.RepositoryName(repoargs.SubscriptionRepoName))
	if subRepoErr != nil {
		return subRepoErr //nolint:wrapcheck
	}

	var ids = make([]int64, len(failed))
	for i, update := range failed {
		ids[i] = update.SubscriptionID
	}

	if err := subRepo.IncrementChargeAttempts(ctx, ids, maxChargeAttempts); err != nil {
		return err //nolint:wrapcheck
	}

	for _, update := range failed {
		if _, err := subRepo.CreateEvent(ctx, repoargs.CreateSubscriptionEvent{
			SubscriptionID: update.SubscriptionID,
			Kind:           domain.EventKindChargeFailed,
			Amount:         update.Amount,
			Message:        update.Error.Error(),
			RequestID:      update.RequestID,
		}); err != nil {
			return err //nolint:wrapcheck
		}
	}
	return nil
}
