package service

import (
	"context"
	"strings"
	"testing"

	"github.com/fsdevblog/groph-eats/internal/domain"
	"github.com/fsdevblog/groph-eats/internal/repository/repoargs"
	"github.com/fsdevblog/groph-eats/internal/service/mocks"
	"github.com/fsdevblog/groph-eats/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-eats/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type InfluencerServiceTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	mockUOW            *uowmocks.MockUOW
	mockTX             *uowmocks.MockTX
	mockInfluencerRepo *mocks.MockInfluencerRepository
	influencerService  *InfluencerService
}

func TestInfluencerServiceSuite(t *testing.T) {
	suite.Run(t, new(InfluencerServiceTestSuite))
}

func (s *InfluencerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockInfluencerRepo = mocks.NewMockInfluencerRepository(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.InfluencerRepoName)).
		Return(s.mockInfluencerRepo, nil).AnyTimes()

	influencerService, servErr := NewInfluencerService(s.mockUOW)
	s.Require().NoError(servErr)
	s.influencerService = influencerService
}

func (s *InfluencerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectTx настраивает выполнение uow транзакции на мок tx.
func (s *InfluencerServiceTestSuite) expectTx() {
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.InfluencerRepoName)).
		Return(s.mockInfluencerRepo, nil).
		MinTimes(1)

	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		})
}

func (s *InfluencerServiceTestSuite) TestGetBalance() {
	var influencerID int64 = 9

	s.mockInfluencerRepo.EXPECT().
		GetBalance(gomock.Any(), influencerID).
		Return(&repoargs.BalanceAggregation{
			DebitAmount:  decimal.NewFromFloat(150.50),
			CreditAmount: decimal.NewFromFloat(50.00),
		}, nil)

	balance, err := s.influencerService.GetBalance(s.T().Context(), influencerID)
	s.Require().NoError(err)
	s.True(balance.Accrued.Equal(decimal.NewFromFloat(150.50)))
	s.True(balance.Withdrawn.Equal(decimal.NewFromFloat(50.00)))
	s.True(balance.Current.Equal(decimal.NewFromFloat(100.50)))
}

func (s *InfluencerServiceTestSuite) TestWithdraw() {
	var influencerID int64 = 9
	amount := decimal.NewFromFloat(40.00)
	destination := "IBAN DE00 0000 0000"

	created := domain.Withdrawal{
		ID:           1,
		InfluencerID: influencerID,
		Amount:       amount,
		Destination:  destination,
		Status:       domain.WithdrawalStatusPending,
	}

	s.expectTx()

	// Баланс читается только под блокировкой строки инфлюенсера.
	lock := s.mockInfluencerRepo.EXPECT().
		LockByID(gomock.Any(), influencerID).
		Return(nil)

	s.mockInfluencerRepo.EXPECT().
		GetBalance(gomock.Any(), influencerID).
		After(lock).
		Return(&repoargs.BalanceAggregation{
			DebitAmount:  decimal.NewFromFloat(100),
			CreditAmount: decimal.NewFromFloat(20),
		}, nil)

	s.mockInfluencerRepo.EXPECT().
		CreateWithdrawal(gomock.Any(), repoargs.CreateWithdrawal{
			InfluencerID: influencerID,
			Amount:       amount,
			Destination:  destination,
		}).
		Return(&created, nil)

	s.mockInfluencerRepo.EXPECT().
		CreateCommissionTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(
			_ context.Context,
			args repoargs.CommissionTransactionCreate,
		) (*domain.CommissionTransaction, error) {
			s.Equal(influencerID, args.InfluencerID)
			s.Equal(domain.DirectionCredit, args.Direction)
			s.True(args.Amount.Equal(amount))
			s.True(strings.HasPrefix(args.Reference, "withdrawal:"))
			return &domain.CommissionTransaction{ID: 1}, nil
		})

	withdrawal, err := s.influencerService.Withdraw(s.T().Context(), influencerID, amount, destination)
	s.Require().NoError(err)
	s.Equal(&created, withdrawal)
}

func (s *InfluencerServiceTestSuite) TestWithdrawNotEnoughBalance() {
	var influencerID int64 = 9

	s.expectTx()

	s.mockInfluencerRepo.EXPECT().
		LockByID(gomock.Any(), influencerID).
		Return(nil)

	s.mockInfluencerRepo.EXPECT().
		GetBalance(gomock.Any(), influencerID).
		Return(&repoargs.BalanceAggregation{
			DebitAmount:  decimal.NewFromFloat(30),
			CreditAmount: decimal.NewFromFloat(10),
		}, nil)

	_, err := s.influencerService.Withdraw(
		s.T().Context(),
		influencerID,
		decimal.NewFromFloat(50),
		"IBAN DE00 0000 0000",
	)
	s.Require().ErrorIs(err, domain.ErrNotEnoughBalance)
}

func (s *InfluencerServiceTestSuite) TestWithdrawUnknownInfluencer() {
	var influencerID int64 = 404

	s.expectTx()

	// Неудачная блокировка прерывает вывод до чтения баланса.
	s.mockInfluencerRepo.EXPECT().
		LockByID(gomock.Any(), influencerID).
		Return(domain.ErrRecordNotFound)

	_, err := s.influencerService.Withdraw(
		s.T().Context(),
		influencerID,
		decimal.NewFromFloat(50),
		"IBAN DE00 0000 0000",
	)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *InfluencerServiceTestSuite) TestWithdrawNonPositiveAmount() {
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10)} {
		_, err := s.influencerService.Withdraw(s.T().Context(), 9, amount, "IBAN DE00 0000 0000")
		s.Require().ErrorIs(err, domain.ErrNotEnoughBalance)
	}
}

func (s *InfluencerServiceTestSuite) TestGetReferrals() {
	var influencerID int64 = 9

	referrals := []repoargs.ReferralSummary{
		{MerchantID: 1, MerchantName: "Pizza Roma", Accrued: decimal.NewFromFloat(29.94)},
		{MerchantID: 2, MerchantName: "Sushi Bar", Accrued: decimal.Zero},
	}

	s.mockInfluencerRepo.EXPECT().
		GetReferrals(gomock.Any(), influencerID).
		Return(referrals, nil)

	result, err := s.influencerService.GetReferrals(s.T().Context(), influencerID)
	s.Require().NoError(err)
	s.Equal(referrals, result)
}
