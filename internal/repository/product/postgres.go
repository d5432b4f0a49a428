package product

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

func (r *postgresRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Product, error) {
	const q = `
SELECT id::text, owner_id, name, COALESCE(description, ''), price_cents, COALESCE(sku, ''), storage_id, created_at
FROM products
WHERE owner_id = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, ownerID)
	if err != nil {
		r.logger.Printf("product repo: list owner_id=%s error=%v", ownerID, err)
		return nil, err
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *postgresRepo) ListPublic(ctx context.Context, limit int) ([]domain.Product, error) {
	const q = `
SELECT id::text, owner_id, name, COALESCE(description, ''), price_cents, COALESCE(sku, ''), storage_id, created_at
FROM products
ORDER BY created_at DESC
LIMIT $1
`
	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		r.logger.Printf("product repo: list public error=%v", err)
		return nil, err
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT id::text, owner_id, name, COALESCE(description, ''), price_cents, COALESCE(sku, ''), storage_id, created_at
FROM products
WHERE id = $1
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.PriceCents, &p.SKU, &p.StorageID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Create(ctx context.Context, product domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (owner_id, name, description, price_cents, sku, storage_id)
VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), $6)
RETURNING id::text, created_at
`
	res := product
	err := r.pool.QueryRow(ctx, q,
		product.OwnerID,
		product.Name,
		product.Description,
		product.PriceCents,
		product.SKU,
		product.StorageID,
	).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		r.logger.Printf("product repo: create owner_id=%s error=%v", product.OwnerID, err)
		return nil, err
	}
	r.logger.Printf("product repo: created id=%s owner_id=%s", res.ID, res.OwnerID)
	return &res, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	const q = `
DELETE FROM products
WHERE id = $1
`
	cmd, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) collect(rows pgx.Rows) ([]domain.Product, error) {
	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.PriceCents, &p.SKU, &p.StorageID, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: rows error=%v", err)
		return nil, err
	}
	return result, nil
}
