package repoargs

import "github.com/fsdevblog/groph-eats/internal/domain"

type CreateUser struct {
	Username     string
	Password     string
	Role         domain.UserRoleType
	MerchantID   *int64
	InfluencerID *int64
}
