package api

import (
	"time"

	"github.com/fsdevblog/groph-eats/internal/domain"
	"github.com/fsdevblog/groph-eats/internal/service/tokens"
)

// merchantJWT выдает токен владельца мерчанта для тестовых запросов.
func merchantJWT(merchantID int64, secret []byte) (string, error) {
	return tokens.GenerateUserJWT(&domain.User{
		ID:         1,
		Role:       domain.RoleMerchant,
		MerchantID: &merchantID,
	}, time.Hour, secret)
}

func adminJWT(secret []byte) (string, error) {
	return tokens.GenerateUserJWT(&domain.User{
		ID:   1,
		Role: domain.RoleAdmin,
	}, time.Hour, secret)
}

func influencerJWT(influencerID int64, secret []byte) (string, error) {
	return tokens.GenerateUserJWT(&domain.User{
		ID:           1,
		Role:         domain.RoleInfluencer,
		InfluencerID: &influencerID,
	}, time.Hour, secret)
}
