package service

import (
	"context"
	"testing"
	"time"

	"github.com/fsdevblog/groph-eats/internal/domain"
	"github.com/fsdevblog/groph-eats/internal/repository/repoargs"
	"github.com/fsdevblog/groph-eats/internal/service/mocks"
	"github.com/fsdevblog/groph-eats/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-eats/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SubscriptionServiceTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	mockUOW            *uowmocks.MockUOW
	mockTX             *uowmocks.MockTX
	mockSubRepo        *mocks.MockSubscriptionRepository
	mockVoucherRepo    *mocks.MockVoucherRepository
	mockMerchantRepo   *mocks.MockMerchantRepository
	mockInfluencerRepo *mocks.MockInfluencerRepository
	subService         *SubscriptionService
}

func TestSubscriptionServiceSuite(t *testing.T) {
	suite.Run(t, new(SubscriptionServiceTestSuite))
}

func (s *SubscriptionServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockSubRepo = mocks.NewMockSubscriptionRepository(s.mockCtrl)
	s.mockVoucherRepo = mocks.NewMockVoucherRepository(s.mockCtrl)
	s.mockMerchantRepo = mocks.NewMockMerchantRepository(s.mockCtrl)
	s.mockInfluencerRepo = mocks.NewMockInfluencerRepository(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.SubscriptionRepoName)).
		Return(s.mockSubRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.VoucherRepoName)).
		Return(s.mockVoucherRepo, nil).AnyTimes()

	subService, servErr := NewSubscriptionService(s.mockUOW)
	s.Require().NoError(servErr)
	s.subService = subService
}

func (s *SubscriptionServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectTx настраивает выполнение uow транзакции на мок tx.
func (s *SubscriptionServiceTestSuite) expectTx() {
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.SubscriptionRepoName)).
		Return(s.mockSubRepo, nil).
		AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.VoucherRepoName)).
		Return(s.mockVoucherRepo, nil).
		AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.MerchantRepoName)).
		Return(s.mockMerchantRepo, nil).
		AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.InfluencerRepoName)).
		Return(s.mockInfluencerRepo, nil).
		AnyTimes()

	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		})
}

func (s *SubscriptionServiceTestSuite) TestHistory() {
	var merchantID int64 = 1
	sub := domain.Subscription{ID: 5, MerchantID: merchantID}

	events := []domain.SubscriptionEvent{
		{ID: 1, SubscriptionID: sub.ID, FlowID: "flow-1", OccurredAt: time.Now().Add(-time.Hour)},
		{ID: 2, SubscriptionID: sub.ID, FlowID: "flow-1", OccurredAt: time.Now()},
	}

	s.mockSubRepo.EXPECT().
		FindByMerchantID(gomock.Any(), merchantID).
		Return(&sub, nil)
	s.mockSubRepo.EXPECT().
		GetEventsBySubscriptionID(gomock.Any(), sub.ID).
		Return(events, nil)

	flows, err := s.subService.History(s.T().Context(), merchantID)
	s.Require().NoError(err)
	s.Require().Len(flows, 1)
	s.Equal("flow-1", flows[0].Key)
	s.Len(flows[0].Events, 2)
}

func (s *SubscriptionServiceTestSuite) TestRedeemVoucher() {
	var merchantID int64 = 1
	sub := domain.Subscription{ID: 5, MerchantID: merchantID}
	voucher := domain.Voucher{
		ID:             3,
		Code:           "SPRING10",
		PercentOff:     10,
		MaxRedemptions: 100,
		RedeemedCount:  1,
		ExpiresAt:      time.Now().Add(24 * time.Hour),
		Active:         true,
	}

	s.expectTx()

	s.mockSubRepo.EXPECT().
		FindByMerchantID(gomock.Any(), merchantID).
		Return(&sub, nil)
	s.mockVoucherRepo.EXPECT().
		FindByCode(gomock.Any(), voucher.Code).
		Return(&voucher, nil)
	s.mockVoucherRepo.EXPECT().
		Redeem(gomock.Any(), voucher.ID).
		Return(nil)
	s.mockSubRepo.EXPECT().
		SetPendingVoucher(gomock.Any(), sub.ID, voucher.Code).
		Return(nil)
	s.mockSubRepo.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateSubscriptionEvent) (*domain.SubscriptionEvent, error) {
			s.Equal(domain.EventKindVoucherRedeemed, args.Kind)
			s.Equal(voucher.Code, args.VoucherCode)
			s.NotEmpty(args.RequestID)
			return &domain.SubscriptionEvent{ID: 1}, nil
		})

	redeemed, err := s.subService.RedeemVoucher(s.T().Context(), merchantID, voucher.Code)
	s.Require().NoError(err)
	s.Equal(&voucher, redeemed)
}

func (s *SubscriptionServiceTestSuite) TestRedeemVoucherNotRedeemable() {
	var merchantID int64 = 1
	sub := domain.Subscription{ID: 5, MerchantID: merchantID}

	expired := domain.Voucher{
		ID:             1,
		Code:           "EXPIRED",
		MaxRedemptions: 100,
		ExpiresAt:      time.Now().Add(-time.Hour),
		Active:         true,
	}
	exhausted := domain.Voucher{
		ID:             2,
		Code:           "GONE",
		MaxRedemptions: 10,
		RedeemedCount:  10,
		ExpiresAt:      time.Now().Add(time.Hour),
		Active:         true,
	}
	inactive := domain.Voucher{
		ID:             3,
		Code:           "OFF",
		MaxRedemptions: 10,
		ExpiresAt:      time.Now().Add(time.Hour),
		Active:         false,
	}

	for _, voucher := range []domain.Voucher{expired, exhausted, inactive} {
		s.Run(voucher.Code, func() {
			s.expectTx()
			s.mockSubRepo.EXPECT().
				FindByMerchantID(gomock.Any(), merchantID).
				Return(&sub, nil)
			s.mockVoucherRepo.EXPECT().
				FindByCode(gomock.Any(), voucher.Code).
				Return(&voucher, nil)

			_, err := s.subService.RedeemVoucher(s.T().Context(), merchantID, voucher.Code)
			s.Require().ErrorIs(err, domain.ErrVoucherExhausted)
		})
	}
}

func (s *SubscriptionServiceTestSuite) TestRedeemVoucherRace() {
	var merchantID int64 = 1
	sub := domain.Subscription{ID: 5, MerchantID: merchantID}
	voucher := domain.Voucher{
		ID:             3,
		Code:           "LAST",
		MaxRedemptions: 10,
		RedeemedCount:  9,
		ExpiresAt:      time.Now().Add(time.Hour),
		Active:         true,
	}

	s.expectTx()

	s.mockSubRepo.EXPECT().
		FindByMerchantID(gomock.Any(), merchantID).
		Return(&sub, nil)
	s.mockVoucherRepo.EXPECT().
		FindByCode(gomock.Any(), voucher.Code).
		Return(&voucher, nil)
	// Гонка за последнее использование: Redeem не затронул строк.
	s.mockVoucherRepo.EXPECT().
		Redeem(gomock.Any(), voucher.ID).
		Return(domain.ErrRecordNotFound)

	_, err := s.subService.RedeemVoucher(s.T().Context(), merchantID, voucher.Code)
	s.Require().ErrorIs(err, domain.ErrVoucherExhausted)
}

func (s *SubscriptionServiceTestSuite) TestCancel() {
	var merchantID int64 = 1
	sub := domain.Subscription{ID: 5, MerchantID: merchantID, Status: domain.SubscriptionStatusActive}
	canceled := sub
	canceled.Status = domain.SubscriptionStatusCanceled

	s.expectTx()

	s.mockSubRepo.EXPECT().
		FindByMerchantID(gomock.Any(), merchantID).
		Return(&sub, nil)
	s.mockSubRepo.EXPECT().
		UpdateStatus(gomock.Any(), sub.ID, domain.SubscriptionStatusCanceled).
		Return(&canceled, nil)
	s.mockSubRepo.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateSubscriptionEvent) (*domain.SubscriptionEvent, error) {
			s.Equal(domain.EventKindCanceled, args.Kind)
			return &domain.SubscriptionEvent{ID: 1}, nil
		})

	result, err := s.subService.Cancel(s.T().Context(), merchantID)
	s.Require().NoError(err)
	s.Equal(domain.SubscriptionStatusCanceled, result.Status)
}

func (s *SubscriptionServiceTestSuite) TestDueCharges() {
	price := decimal.NewFromFloat(49.90)

	subs := []domain.Subscription{
		{ID: 1, MerchantID: 1, Price: price},
		{ID: 2, MerchantID: 2, Price: price, PendingVoucher: "SPRING10"},
		{ID: 3, MerchantID: 3, Price: price, PendingVoucher: "REMOVED"},
		{ID: 4, MerchantID: 4, Price: price, PendingVoucher: "EXPIRED"},
		{ID: 5, MerchantID: 5, Price: price, PendingVoucher: "PAUSED"},
	}

	s.mockSubRepo.EXPECT().
		GetDueForCharge(gomock.Any(), uint(50)).
		Return(subs, nil)

	s.mockVoucherRepo.EXPECT().
		FindByCode(gomock.Any(), "SPRING10").
		Return(&domain.Voucher{
			Code:       "SPRING10",
			PercentOff: 10,
			Active:     true,
			ExpiresAt:  time.Now().Add(24 * time.Hour),
		}, nil)
	// Удаленный ваучер молча игнорируется.
	s.mockVoucherRepo.EXPECT().
		FindByCode(gomock.Any(), "REMOVED").
		Return(nil, domain.ErrRecordNotFound)
	// Истекший после погашения ваучер скидку не дает.
	s.mockVoucherRepo.EXPECT().
		FindByCode(gomock.Any(), "EXPIRED").
		Return(&domain.Voucher{
			Code:       "EXPIRED",
			PercentOff: 10,
			Active:     true,
			ExpiresAt:  time.Now().Add(-time.Hour),
		}, nil)
	// Деактивированный тоже.
	s.mockVoucherRepo.EXPECT().
		FindByCode(gomock.Any(), "PAUSED").
		Return(&domain.Voucher{
			Code:       "PAUSED",
			PercentOff: 10,
			Active:     false,
			ExpiresAt:  time.Now().Add(24 * time.Hour),
		}, nil)

	candidates, err := s.subService.DueCharges(s.T().Context(), 50)
	s.Require().NoError(err)
	s.Require().Len(candidates, 5)

	s.True(candidates[0].Amount.Equal(price))
	s.True(candidates[1].Amount.Equal(decimal.NewFromFloat(44.91)))
	s.True(candidates[2].Amount.Equal(price))
	s.True(candidates[3].Amount.Equal(price))
	s.True(candidates[4].Amount.Equal(price))
}

func (s *SubscriptionServiceTestSuite) TestApplyChargeResultsSucceeded() {
	charge := ChargeResultArgs{
		SubscriptionID: 5,
		MerchantID:     1,
		Amount:         decimal.NewFromFloat(49.90),
		GatewayRef:     "gw-ref-1",
		RequestID:      "req-1",
	}

	merchant := domain.Merchant{ID: 1, ReferralCodeUsed: "inf-code"}
	influencer := domain.Influencer{
		ID:                9,
		ReferralCode:      "inf-code",
		CommissionPercent: decimal.NewFromInt(20),
	}

	s.expectTx()

	s.mockSubRepo.EXPECT().
		BatchApplyCharge(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, updates []repoargs.ApplyChargeSubscription, fn repoargs.BatchExecQueryRow) {
			s.Require().Len(updates, 1)
			s.Equal(charge.SubscriptionID, updates[0].ID)
			s.Equal(domain.SubscriptionStatusActive, updates[0].Status)
			fn(0, nil)
		})

	s.mockSubRepo.EXPECT().
		CreateTransaction(gomock.Any(), repoargs.CreateTransaction{
			SubscriptionID: charge.SubscriptionID,
			GatewayRef:     charge.GatewayRef,
			Status:         domain.TransactionStatusSucceeded,
			Amount:         charge.Amount,
		}).
		Return(&domain.Transaction{ID: 1}, nil)

	s.mockSubRepo.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateSubscriptionEvent) (*domain.SubscriptionEvent, error) {
			s.Equal(domain.EventKindChargeSucceeded, args.Kind)
			s.Equal(charge.RequestID, args.RequestID)
			return &domain.SubscriptionEvent{ID: 1}, nil
		})

	s.mockMerchantRepo.EXPECT().
		FindByID(gomock.Any(), merchant.ID).
		Return(&merchant, nil)
	s.mockInfluencerRepo.EXPECT().
		FindByReferralCode(gomock.Any(), merchant.ReferralCodeUsed).
		Return(&influencer, nil)
	s.mockInfluencerRepo.EXPECT().
		CreateCommissionTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(
			_ context.Context,
			args repoargs.CommissionTransactionCreate,
		) (*domain.CommissionTransaction, error) {
			s.Equal(influencer.ID, args.InfluencerID)
			s.Equal(domain.DirectionDebit, args.Direction)
			// 20% от 49.90
			s.True(args.Amount.Equal(decimal.NewFromFloat(9.98)))
			s.Equal(charge.GatewayRef, args.Reference)
			return &domain.CommissionTransaction{ID: 1}, nil
		})

	err := s.subService.ApplyChargeResults(s.T().Context(), []ChargeResultArgs{charge})
	s.Require().NoError(err)
}

// TestApplyChargeResultsStaleSkipped Тест на повторную обработку того же периода:
// нулевой апдейт подписки не плодит дублей transactions и событий.
func (s *SubscriptionServiceTestSuite) TestApplyChargeResultsStaleSkipped() {
	stale := ChargeResultArgs{
		SubscriptionID: 5,
		MerchantID:     1,
		Amount:         decimal.NewFromFloat(49.90),
		GatewayRef:     "gw-ref-1",
		RequestID:      "req-1",
	}
	fresh := ChargeResultArgs{
		SubscriptionID: 6,
		MerchantID:     2,
		Amount:         decimal.NewFromFloat(49.90),
		GatewayRef:     "gw-ref-2",
		RequestID:      "req-2",
	}

	s.expectTx()

	s.mockSubRepo.EXPECT().
		BatchApplyCharge(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, updates []repoargs.ApplyChargeSubscription, fn repoargs.BatchExecQueryRow) {
			s.Require().Len(updates, 2)
			// next_charge_at уже в будущем: период продлен параллельным инстансом.
			fn(0, domain.ErrRecordNotFound)
			fn(1, nil)
		})

	// Записи создаются только по живой подписке.
	s.mockSubRepo.EXPECT().
		CreateTransaction(gomock.Any(), repoargs.CreateTransaction{
			SubscriptionID: fresh.SubscriptionID,
			GatewayRef:     fresh.GatewayRef,
			Status:         domain.TransactionStatusSucceeded,
			Amount:         fresh.Amount,
		}).
		Return(&domain.Transaction{ID: 1}, nil)
	s.mockSubRepo.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateSubscriptionEvent) (*domain.SubscriptionEvent, error) {
			s.Equal(fresh.SubscriptionID, args.SubscriptionID)
			s.Equal(fresh.RequestID, args.RequestID)
			return &domain.SubscriptionEvent{ID: 1}, nil
		})
	s.mockMerchantRepo.EXPECT().
		FindByID(gomock.Any(), fresh.MerchantID).
		Return(&domain.Merchant{ID: fresh.MerchantID}, nil)

	err := s.subService.ApplyChargeResults(s.T().Context(), []ChargeResultArgs{stale, fresh})
	s.Require().NoError(err)
}

func (s *SubscriptionServiceTestSuite) TestApplyChargeResultsCommissionIdempotent() {
	charge := ChargeResultArgs{
		SubscriptionID: 5,
		MerchantID:     1,
		Amount:         decimal.NewFromFloat(49.90),
		GatewayRef:     "gw-ref-1",
		RequestID:      "req-1",
	}

	merchant := domain.Merchant{ID: 1, ReferralCodeUsed: "inf-code"}
	influencer := domain.Influencer{
		ID:                9,
		ReferralCode:      "inf-code",
		CommissionPercent: decimal.NewFromInt(20),
	}

	s.expectTx()

	s.mockSubRepo.EXPECT().
		BatchApplyCharge(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, _ []repoargs.ApplyChargeSubscription, fn repoargs.BatchExecQueryRow) {
			fn(0, nil)
		})
	s.mockSubRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		Return(&domain.Transaction{ID: 1}, nil)
	s.mockSubRepo.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		Return(&domain.SubscriptionEvent{ID: 1}, nil)

	s.mockMerchantRepo.EXPECT().
		FindByID(gomock.Any(), merchant.ID).
		Return(&merchant, nil)
	s.mockInfluencerRepo.EXPECT().
		FindByReferralCode(gomock.Any(), merchant.ReferralCodeUsed).
		Return(&influencer, nil)
	// Повторная обработка того же списания: дубликат по reference не ошибка.
	s.mockInfluencerRepo.EXPECT().
		CreateCommissionTransaction(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrDuplicateKey)

	err := s.subService.ApplyChargeResults(s.T().Context(), []ChargeResultArgs{charge})
	s.Require().NoError(err)
}

func (s *SubscriptionServiceTestSuite) TestApplyChargeResultsFailed() {
	failed := ChargeResultArgs{
		Error:          errors.New("card declined"),
		SubscriptionID: 5,
		MerchantID:     1,
		Amount:         decimal.NewFromFloat(49.90),
		RequestID:      "req-1",
	}

	s.expectTx()

	s.mockSubRepo.EXPECT().
		IncrementChargeAttempts(gomock.Any(), []int64{failed.SubscriptionID}, maxChargeAttempts).
		Return(nil)
	s.mockSubRepo.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateSubscriptionEvent) (*domain.SubscriptionEvent, error) {
			s.Equal(domain.EventKindChargeFailed, args.Kind)
			s.Equal("card declined", args.Message)
			return &domain.SubscriptionEvent{ID: 1}, nil
		})

	err := s.subService.ApplyChargeResults(s.T().Context(), []ChargeResultArgs{failed})
	s.Require().NoError(err)
}
