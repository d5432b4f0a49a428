package user

import (
	"context"
	"errors"
	"io"
	"log"

	"marketstall/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Upsert(ctx context.Context, user domain.User) (*domain.User, error) {
	const q = `
INSERT INTO users (username, image_id, external_id)
VALUES ($1, $2, $3)
ON CONFLICT (external_id) DO UPDATE SET
    username = EXCLUDED.username,
    image_id = EXCLUDED.image_id
RETURNING id::text, created_at
`
	res := user
	err := r.pool.QueryRow(ctx, q, user.Username, user.ImageID, user.ExternalID).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		r.logger.Printf("user repo: upsert external_id=%s error=%v", user.ExternalID, err)
		return nil, err
	}
	r.logger.Printf("user repo: upserted external_id=%s id=%s", res.ExternalID, res.ID)
	return &res, nil
}

func (r *postgresRepo) GetByExternalID(ctx context.Context, externalID string) (*domain.User, error) {
	const q = `
SELECT id::text, username, image_id, external_id, created_at
FROM users
WHERE external_id = $1
`
	var u domain.User
	err := r.pool.QueryRow(ctx, q, externalID).Scan(&u.ID, &u.Username, &u.ImageID, &u.ExternalID, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
