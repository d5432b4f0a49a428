package order

import (
	"context"
	"errors"
	"strings"

	"marketstall/internal/domain"
)

type repo interface {
	Create(ctx context.Context, order domain.Order) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	MarkShipped(ctx context.Context, id string) error
}

type Service struct {
	repo repo
}

func New(repo repo) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Items      []domain.OrderItem `json:"items"`
	TotalCents int64              `json:"totalCents"`
	BuyerName  string             `json:"buyerName"`
}

// Create places an order with status new. The submitted total is stored
// as-is; there is no recomputation from the line items and no payment
// verification.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Order, error) {
	if strings.TrimSpace(in.BuyerName) == "" {
		return nil, errors.New("buyerName required")
	}
	return s.repo.Create(ctx, domain.Order{
		Items:      in.Items,
		TotalCents: in.TotalCents,
		BuyerName:  in.BuyerName,
		Status:     domain.OrderStatusNew,
	})
}

// List returns every order platform-wide, newest first. There is no
// per-seller filter; each dashboard viewer sees everything.
func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.List(ctx)
}

// MarkShipped transitions the order to shipped. The transition is
// unconditional and idempotent.
func (s *Service) MarkShipped(ctx context.Context, id string) error {
	return s.repo.MarkShipped(ctx, id)
}
