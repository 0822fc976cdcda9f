package userproducts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const joinedColumns = `
up.id, up.user_id, up.product_id, up.favorited, up.created_at,
p.id, p.name, p.brand, p.category, p.description, p.price_cents,
p.image_url, p.product_url, p.shade_family, p.undertone, p.video_url,
p.benefits, p.ingredients`

func (r *PGRepo) Add(ctx context.Context, userID string, productID int64) (UserProduct, error) {
	const insert = `
INSERT INTO user_products (id, user_id, product_id, favorited, created_at)
VALUES ($1, $2, $3, FALSE, $4)
ON CONFLICT (user_id, product_id) DO NOTHING`

	_, err := r.DB.ExecContext(ctx, insert, uuid.NewString(), userID, productID, time.Now().UTC())
	if err != nil {
		if isForeignKeyViolation(err) {
			return UserProduct{}, ErrUnknownProduct
		}
		return UserProduct{}, fmt.Errorf("save product: %w", err)
	}
	return r.get(ctx, userID, productID)
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]UserProduct, error) {
	query := `
SELECT ` + joinedColumns + `
FROM user_products up
JOIN products p ON p.id = up.product_id
WHERE up.user_id = $1
ORDER BY up.created_at DESC, up.id DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list saved products: %w", err)
	}
	defer rows.Close()

	out := []UserProduct{}
	for rows.Next() {
		item, err := scanUserProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PGRepo) ToggleFavorite(ctx context.Context, userID string, productID int64) (UserProduct, error) {
	const upsert = `
INSERT INTO user_products (id, user_id, product_id, favorited, created_at)
VALUES ($1, $2, $3, TRUE, $4)
ON CONFLICT (user_id, product_id) DO UPDATE SET favorited = NOT user_products.favorited`

	_, err := r.DB.ExecContext(ctx, upsert, uuid.NewString(), userID, productID, time.Now().UTC())
	if err != nil {
		if isForeignKeyViolation(err) {
			return UserProduct{}, ErrUnknownProduct
		}
		return UserProduct{}, fmt.Errorf("toggle favorite: %w", err)
	}
	return r.get(ctx, userID, productID)
}

func (r *PGRepo) Remove(ctx context.Context, userID string, productID int64) error {
	const query = `DELETE FROM user_products WHERE user_id = $1 AND product_id = $2`
	res, err := r.DB.ExecContext(ctx, query, userID, productID)
	if err != nil {
		return fmt.Errorf("remove saved product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove saved product rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) get(ctx context.Context, userID string, productID int64) (UserProduct, error) {
	query := `
SELECT ` + joinedColumns + `
FROM user_products up
JOIN products p ON p.id = up.product_id
WHERE up.user_id = $1 AND up.product_id = $2`

	item, err := scanUserProduct(r.DB.QueryRowContext(ctx, query, userID, productID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return UserProduct{}, ErrNotFound
		}
		return UserProduct{}, fmt.Errorf("get saved product: %w", err)
	}
	return item, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUserProduct(row rowScanner) (UserProduct, error) {
	var item UserProduct
	var shadeFamily, undertone, videoURL sql.NullString
	var benefits, ingredients []byte
	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.Favorited,
		&item.CreatedAt,
		&item.Product.ID,
		&item.Product.Name,
		&item.Product.Brand,
		&item.Product.Category,
		&item.Product.Description,
		&item.Product.PriceCents,
		&item.Product.ImageURL,
		&item.Product.ProductURL,
		&shadeFamily,
		&undertone,
		&videoURL,
		&benefits,
		&ingredients,
	)
	if err != nil {
		return UserProduct{}, err
	}
	item.Product.ShadeFamily = shadeFamily.String
	item.Product.Undertone = undertone.String
	item.Product.VideoURL = videoURL.String
	if len(benefits) > 0 {
		if err := json.Unmarshal(benefits, &item.Product.Benefits); err != nil {
			return UserProduct{}, fmt.Errorf("decode benefits: %w", err)
		}
	}
	if len(ingredients) > 0 {
		if err := json.Unmarshal(ingredients, &item.Product.Ingredients); err != nil {
			return UserProduct{}, fmt.Errorf("decode ingredients: %w", err)
		}
	}
	return item, nil
}

func isForeignKeyViolation(err error) bool {
	// pgx wraps server errors with the SQLSTATE in the message.
	msg := err.Error()
	return strings.Contains(msg, "23503") || strings.Contains(msg, "foreign key")
}
