package user

import (
	"context"
	"strings"

	"marketstall/internal/domain"
)

type repo interface {
	Upsert(ctx context.Context, user domain.User) (*domain.User, error)
}

// Service applies identity-provider events to the local user table.
type Service struct {
	repo repo
}

func New(repo repo) *Service {
	return &Service{repo: repo}
}

type SyncInput struct {
	ExternalID string
	FirstName  string
	LastName   string
	ImageURL   string
}

// Sync upserts the user for a created/updated identity event. The display
// name is the trimmed "first last" pair; either part may be empty.
func (s *Service) Sync(ctx context.Context, in SyncInput) (*domain.User, error) {
	username := strings.TrimSpace(in.FirstName + " " + in.LastName)
	return s.repo.Upsert(ctx, domain.User{
		Username:   username,
		ImageID:    in.ImageURL,
		ExternalID: in.ExternalID,
	})
}
