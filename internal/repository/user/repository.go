package user

import (
	"context"

	"marketstall/internal/domain"
)

type Repository interface {
	// Upsert inserts the user when the external id is new, otherwise patches
	// username and image reference on the existing row.
	Upsert(ctx context.Context, user domain.User) (*domain.User, error)
	GetByExternalID(ctx context.Context, externalID string) (*domain.User, error)
}
