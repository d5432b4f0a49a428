package domain

import "time"

type Product struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"-"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"priceCents"`
	SKU         string    `json:"sku,omitempty"`
	StorageID   *string   `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
}
