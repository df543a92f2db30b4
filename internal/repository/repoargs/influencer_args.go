package repoargs

import (
	"github.com/fsdevblog/groph-eats/internal/domain"
	"github.com/shopspring/decimal"
)

type CommissionTransactionCreate struct {
	InfluencerID int64
	MerchantID   int64
	Direction    domain.DirectionType
	Amount       decimal.Decimal
	Reference    string
}

type BalanceAggregation struct {
	DebitAmount  decimal.Decimal
	CreditAmount decimal.Decimal
}

type CreateWithdrawal struct {
	InfluencerID int64
	Amount       decimal.Decimal
	Destination  string
}

// ReferralSummary мерчант, пришедший по реферальному коду, с суммой начисленной комиссии.
type ReferralSummary struct {
	MerchantID   int64
	MerchantName string
	Accrued      decimal.Decimal
}
