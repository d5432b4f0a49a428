package domain

import "time"

type OrderStatus string

const (
	OrderStatusNew     OrderStatus = "new"
	OrderStatusShipped OrderStatus = "shipped"
)

type Order struct {
	ID         string      `json:"id"`
	Items      []OrderItem `json:"items"`
	TotalCents int64       `json:"totalCents"`
	BuyerName  string      `json:"buyerName"`
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// OrderItem is a snapshot of the product at purchase time, not a live
// reference. Later product edits or deletes do not affect placed orders.
type OrderItem struct {
	ProductID  string `json:"productId"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
}
