package order

import (
	"context"
	"io"
	"log"

	"marketstall/internal/domain"
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

func (r *postgresRepo) Create(ctx context.Context, order domain.Order) (*domain.Order, error) {
	const q = `
INSERT INTO orders (items, total_cents, buyer_name, status)
VALUES ($1, $2, $3, $4)
RETURNING id::text, created_at
`
	res := order
	if res.Items == nil {
		res.Items = []domain.OrderItem{}
	}
	err := r.pool.QueryRow(ctx, q, res.Items, res.TotalCents, res.BuyerName, res.Status).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		r.logger.Printf("order repo: create buyer=%q error=%v", order.BuyerName, err)
		return nil, err
	}
	r.logger.Printf("order repo: created id=%s total_cents=%d", res.ID, res.TotalCents)
	return &res, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Order, error) {
	const q = `
SELECT id::text, items, total_cents, buyer_name, status, created_at
FROM orders
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("order repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.Items, &o.TotalCents, &o.BuyerName, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("order repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

// MarkShipped sets the status unconditionally. A second call on an already
// shipped order is a no-op that still succeeds.
func (r *postgresRepo) MarkShipped(ctx context.Context, id string) error {
	const q = `
UPDATE orders
SET status = 'shipped'
WHERE id = $1
`
	cmd, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		r.logger.Printf("order repo: ship id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
