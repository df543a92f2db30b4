package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/groph-eats/internal/transport/api/middlewares"
)

// getUserIDFromContext возвращает id текущего юзера. Значение кладет
// middlewares.AuthRequired, на роутах без него вернется ноль.
func getUserIDFromContext(c *gin.Context) int64 {
	return c.GetInt64(middlewares.CurrentUserIDKey)
}

// getMerchantIDFromContext возвращает id мерчанта текущего юзера из claims токена.
func getMerchantIDFromContext(c *gin.Context) int64 {
	return c.GetInt64(middlewares.CurrentMerchantIDKey)
}

// getInfluencerIDFromContext возвращает id инфлюенсера текущего юзера из claims токена.
func getInfluencerIDFromContext(c *gin.Context) int64 {
	return c.GetInt64(middlewares.CurrentInfluencerIDKey)
}

// paramInt64 разбирает числовой path-параметр. Второе значение false для
// нечисловых значений.
func paramInt64(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
