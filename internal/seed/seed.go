package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	OwnerID     string
	Name        string
	Description string
	PriceCents  int64
	SKU         string
}

// Apply inserts basic seed data for manual testing. It is idempotent via
// a delete-then-insert per seed SKU.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			OwnerID:     "user_demo",
			Name:        "Demo T-Shirt",
			Description: "Soft cotton tee for demo purposes",
			PriceCents:  1999,
			SKU:         "SKU-DEMO-TSHIRT",
		},
		{
			OwnerID:     "user_demo",
			Name:        "Demo Mug",
			Description: "Ceramic mug with demo logo",
			PriceCents:  1299,
			SKU:         "SKU-DEMO-MUG",
		},
	}

	for _, p := range products {
		if err := replaceProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("seed product %s: %w", p.SKU, err)
		}
	}

	return nil
}

func replaceProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	if _, err := pool.Exec(ctx, `DELETE FROM products WHERE owner_id = $1 AND sku = $2`, p.OwnerID, p.SKU); err != nil {
		return err
	}
	const q = `
INSERT INTO products (owner_id, name, description, price_cents, sku)
VALUES ($1, $2, $3, $4, $5)
`
	_, err := pool.Exec(ctx, q, p.OwnerID, p.Name, p.Description, p.PriceCents, p.SKU)
	return err
}
