package repoargs

import "github.com/shopspring/decimal"

type CreateAddonCategory struct {
	MerchantID   int64
	Name         string
	MinSelection int32
	MaxSelection int32
	Required     bool
}

type UpdateAddonCategory struct {
	ID           int64
	MerchantID   int64
	Name         string
	MinSelection int32
	MaxSelection int32
	Required     bool
}

type CreateAddonItem struct {
	CategoryID int64
	Name       string
	Price      decimal.Decimal
}

type UpdateAddonItem struct {
	ID    int64
	Name  string
	Price decimal.Decimal
}

// AddonItemDisplayOrder пара для батч обновления порядка вывода.
type AddonItemDisplayOrder struct {
	ID           int64
	DisplayOrder int32
}
