package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-eats/internal/domain"
	"github.com/fsdevblog/groph-eats/internal/service"
)

type OrdersHandler struct {
	orderSvs OrderServicer
}

func NewOrdersHandler(orderSvs OrderServicer) *OrdersHandler {
	return &OrdersHandler{
		orderSvs: orderSvs,
	}
}

type OrderItemResponse struct {
	Name      string          `json:"name"`
	Quantity  int32           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type OrderResponse struct {
	ID            int64                  `json:"id"`
	PublicCode    string                 `json:"publicCode"`
	CustomerName  string                 `json:"customerName"`
	CustomerPhone string                 `json:"customerPhone,omitempty"`
	Status        domain.OrderStatusType `json:"status"`
	Total         decimal.Decimal        `json:"total"`
	PlacedAt      time.Time              `json:"placedAt"`
	Items         []OrderItemResponse    `json:"items,omitempty"`
}

// Index GET RouteGroup + MerchantOrdersRoute. Страница заказов мерчанта с keyset
// пагинацией: cursor - непрозрачная строка из предыдущего ответа, status -
// опциональный фильтр.
func (o *OrdersHandler) Index(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 32)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	page, err := o.orderSvs.GetPage(reqCtx, service.OrdersPageArgs{
		MerchantID: getMerchantIDFromContext(c),
		Status:     domain.OrderStatusType(c.Query("status")),
		Cursor:     c.Query("cursor"),
		Limit:      int32(limit),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCursor) {
			_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]OrderResponse, len(page.Orders))
	for i, order := range page.Orders {
		response[i] = orderResponse(&order)
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":     response,
		"nextCursor": page.NextCursor,
	})
}

type OrderStatusParams struct {
	Status domain.OrderStatusType `binding:"required" json:"status"`
}

// UpdateStatus PATCH RouteGroup + MerchantOrderStatusRoute. Перевод заказа в
// новый статус, недопустимый переход - 422.
func (o *OrdersHandler) UpdateStatus(c *gin.Context) {
	orderID, ok := paramInt64(c, "id")
	if !ok {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}

	var params OrderStatusParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.UpdateStatus(reqCtx, getMerchantIDFromContext(c), orderID, params.Status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidTransition):
			_ = c.AbortWithError(http.StatusUnprocessableEntity, err).SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatus(http.StatusNotFound)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": orderResponse(order)})
}

// PublicShow GET RouteGroup + PublicOrderRoute. Публичная страница отслеживания
// заказа по коду, без авторизации. Телефон клиента в ответ не попадает.
func (o *OrdersHandler) PublicShow(c *gin.Context) {
	code := c.Param("code")

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.FindByPublicCode(reqCtx, code)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := orderResponse(order)
	response.CustomerPhone = ""
	c.JSON(http.StatusOK, gin.H{"order": response})
}

func orderResponse(order *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}
	return OrderResponse{
		ID:            order.ID,
		PublicCode:    order.PublicCode,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		Status:        order.Status,
		Total:         order.Total,
		PlacedAt:      order.PlacedAt,
		Items:         items,
	}
}
