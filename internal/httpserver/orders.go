package httpserver

import (
	"net/http"

	"marketstall/internal/domain"
	ordersvc "marketstall/internal/service/order"
	"github.com/gin-gonic/gin"
)

type orderItemRequest struct {
	ProductID  string `json:"productId" binding:"required"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
}

type createOrderRequest struct {
	Items      []orderItemRequest `json:"items" binding:"required"`
	TotalCents int64              `json:"totalCents"`
	BuyerName  string             `json:"buyerName" binding:"required"`
}

// createOrderHandler places an order for any caller, authenticated or not.
// The submitted total is trusted as-is.
func createOrderHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		items := make([]domain.OrderItem, 0, len(req.Items))
		for _, it := range req.Items {
			items = append(items, domain.OrderItem{
				ProductID:  it.ProductID,
				Name:       it.Name,
				PriceCents: it.PriceCents,
			})
		}
		created, err := svc.Create(c.Request.Context(), ordersvc.CreateInput{
			Items:      items,
			TotalCents: req.TotalCents,
			BuyerName:  req.BuyerName,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// listOrdersHandler returns every order platform-wide, newest first. There
// is no per-seller filter.
func listOrdersHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, orders)
	}
}

func shipOrderHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.MarkShipped(c.Request.Context(), c.Param("orderID")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": string(domain.OrderStatusShipped)})
	}
}
