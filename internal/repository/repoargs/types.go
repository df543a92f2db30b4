package repoargs

type RepositoryName string

const (
	UserRepoName         RepositoryName = "user"
	MerchantRepoName     RepositoryName = "merchant"
	AddonRepoName        RepositoryName = "addon"
	OrderRepoName        RepositoryName = "order"
	SubscriptionRepoName RepositoryName = "subscription"
	VoucherRepoName      RepositoryName = "voucher"
	InfluencerRepoName   RepositoryName = "influencer"
)

// BatchExecQueryRow колбек результата батч запроса без возвращаемых строк.
type BatchExecQueryRow func(i int, err error)
