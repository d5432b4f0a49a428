package product

import (
	"context"

	"marketstall/internal/domain"
)

type Repository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Product, error)
	ListPublic(ctx context.Context, limit int) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
