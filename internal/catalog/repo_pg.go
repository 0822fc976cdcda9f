package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const productColumns = `id, name, brand, category, description, price_cents, image_url, product_url, shade_family, undertone, video_url, benefits, ingredients`

// List returns all products.
func (r *PGRepo) List(ctx context.Context) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// GetByID returns a product by id.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	row := r.DB.QueryRowContext(ctx, query, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		return Product{}, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// ListByCategory returns products whose category contains the given value.
func (r *PGRepo) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category ILIKE $1 ORDER BY id`
	rows, err := r.DB.QueryContext(ctx, query, "%"+strings.TrimSpace(category)+"%")
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// Seed inserts the given products if the table is empty.
func (r *PGRepo) Seed(ctx context.Context, products []Product) error {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	const query = `
INSERT INTO products (id, name, brand, category, description, price_cents, image_url, product_url, shade_family, undertone, video_url, benefits, ingredients)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
ON CONFLICT (id) DO NOTHING`

	for _, p := range products {
		benefits, err := json.Marshal(p.Benefits)
		if err != nil {
			return fmt.Errorf("marshal benefits: %w", err)
		}
		ingredients, err := json.Marshal(p.Ingredients)
		if err != nil {
			return fmt.Errorf("marshal ingredients: %w", err)
		}
		_, err = r.DB.ExecContext(ctx, query,
			p.ID,
			p.Name,
			p.Brand,
			p.Category,
			p.Description,
			p.PriceCents,
			p.ImageURL,
			p.ProductURL,
			nullable(p.ShadeFamily),
			nullable(p.Undertone),
			nullable(p.VideoURL),
			benefits,
			ingredients,
		)
		if err != nil {
			return fmt.Errorf("seed product %d: %w", p.ID, err)
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var p Product
	var shadeFamily, undertone, videoURL sql.NullString
	var benefits, ingredients []byte
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Brand,
		&p.Category,
		&p.Description,
		&p.PriceCents,
		&p.ImageURL,
		&p.ProductURL,
		&shadeFamily,
		&undertone,
		&videoURL,
		&benefits,
		&ingredients,
	)
	if err != nil {
		return Product{}, err
	}
	p.ShadeFamily = shadeFamily.String
	p.Undertone = undertone.String
	p.VideoURL = videoURL.String
	if len(benefits) > 0 {
		if err := json.Unmarshal(benefits, &p.Benefits); err != nil {
			return Product{}, fmt.Errorf("decode benefits: %w", err)
		}
	}
	if len(ingredients) > 0 {
		if err := json.Unmarshal(ingredients, &p.Ingredients); err != nil {
			return Product{}, fmt.Errorf("decode ingredients: %w", err)
		}
	}
	return p, nil
}

func scanProducts(rows *sql.Rows) ([]Product, error) {
	out := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func nullable(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
