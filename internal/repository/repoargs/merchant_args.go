package repoargs

type CreateMerchant struct {
	Name             string
	Slug             string
	OwnerUserID      int64
	ReferralCodeUsed string
}

// MerchantCursorPage параметры keyset пагинации списка мерчантов.
type MerchantCursorPage struct {
	AfterID int64
	Limit   int32
}

// PlatformCounters агрегаты для админского дашборда.
type PlatformCounters struct {
	Merchants           int64
	Orders              int64
	ActiveSubscriptions int64
	PastDueSubscription int64
}
