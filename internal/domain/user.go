package domain

import "time"

// User mirrors an identity-provider account. Rows are written only by the
// webhook-driven identity sync, keyed by the provider's external id.
type User struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	ImageID    string    `json:"imageId"`
	ExternalID string    `json:"externalId"`
	CreatedAt  time.Time `json:"createdAt"`
}
