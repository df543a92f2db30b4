package repoargs

import (
	"time"

	"github.com/fsdevblog/groph-eats/internal/domain"
)

// OrderCursorPage параметры keyset пагинации списка заказов. Заказы отдаются
// в порядке (created_at, id) по убыванию; After* задают позицию после которой
// продолжается выборка.
type OrderCursorPage struct {
	MerchantID     int64
	Status         domain.OrderStatusType
	AfterCreatedAt time.Time
	AfterID        int64
	Limit          int32
}
