package product

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"marketstall/internal/domain"
	"marketstall/internal/storage"
)

// PublicListLimit caps the storefront listing. There is no pagination
// cursor; items beyond the cap are simply not shown.
const PublicListLimit = 50

// View is a product annotated with a resolved image URL, or nil when the
// product has no stored file (or the file is gone).
type View struct {
	domain.Product
	ImageURL *string `json:"imageUrl"`
}

type repo interface {
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Product, error)
	ListPublic(ctx context.Context, limit int) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo   repo
	files  storage.FileStore
	logger *log.Logger
}

func New(repo repo, files storage.FileStore, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, files: files, logger: logger}
}

type CreateInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PriceCents  int64   `json:"priceCents"`
	SKU         string  `json:"sku"`
	StorageID   *string `json:"storageId"`
}

// ListForOwner returns the caller's products, newest first. An empty caller
// subject yields an empty result rather than an error.
func (s *Service) ListForOwner(ctx context.Context, callerSubject string) ([]View, error) {
	if callerSubject == "" {
		return []View{}, nil
	}
	products, err := s.repo.ListByOwner(ctx, callerSubject)
	if err != nil {
		return nil, err
	}
	return s.annotate(ctx, products), nil
}

// ListPublic returns up to PublicListLimit newest products platform-wide.
// No authentication is required.
func (s *Service) ListPublic(ctx context.Context) ([]View, error) {
	products, err := s.repo.ListPublic(ctx, PublicListLimit)
	if err != nil {
		return nil, err
	}
	return s.annotate(ctx, products), nil
}

// Get returns the product with its image URL, or (nil, nil) when the id does
// not resolve to an existing product.
func (s *Service) Get(ctx context.Context, id string) (*View, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	v := s.view(ctx, *p)
	return &v, nil
}

// Create stores a new listing owned by the caller.
func (s *Service) Create(ctx context.Context, callerSubject string, in CreateInput) (*domain.Product, error) {
	if callerSubject == "" {
		return nil, domain.ErrUnauthorized
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, errors.New("name required")
	}
	if in.PriceCents < 0 {
		return nil, errors.New("price must not be negative")
	}
	return s.repo.Create(ctx, domain.Product{
		OwnerID:     callerSubject,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		PriceCents:  in.PriceCents,
		SKU:         strings.TrimSpace(in.SKU),
		StorageID:   in.StorageID,
	})
}

// Delete removes the caller's listing. When a stored file exists it is
// deleted first; if that fails the product row is left intact and
// ErrCleanupFailed surfaces. File and row deletion are still two separate
// steps, not a transaction.
func (s *Service) Delete(ctx context.Context, callerSubject, productID string) error {
	if callerSubject == "" {
		return domain.ErrUnauthorized
	}
	p, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrAccessDenied
		}
		return err
	}
	if p.OwnerID != callerSubject {
		return domain.ErrAccessDenied
	}

	if p.StorageID != nil {
		if err := s.files.Delete(ctx, *p.StorageID); err != nil {
			s.logger.Printf("product service: delete file storage_id=%s error=%v", *p.StorageID, err)
			return fmt.Errorf("%w: %v", domain.ErrCleanupFailed, err)
		}
	}

	return s.repo.Delete(ctx, productID)
}

func (s *Service) annotate(ctx context.Context, products []domain.Product) []View {
	views := make([]View, 0, len(products))
	for _, p := range products {
		views = append(views, s.view(ctx, p))
	}
	return views
}

func (s *Service) view(ctx context.Context, p domain.Product) View {
	v := View{Product: p}
	if p.StorageID == nil {
		return v
	}
	u, err := s.files.ResolveURL(ctx, *p.StorageID)
	if err != nil {
		// An unresolvable file reads as "no image", the listing still renders.
		s.logger.Printf("product service: resolve storage_id=%s error=%v", *p.StorageID, err)
		return v
	}
	v.ImageURL = &u
	return v
}
