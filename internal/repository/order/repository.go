package order

import (
	"context"

	"marketstall/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, order domain.Order) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	MarkShipped(ctx context.Context, id string) error
}
