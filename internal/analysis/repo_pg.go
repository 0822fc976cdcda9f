package analysis

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const analysisColumns = `id, user_id, image_key, raw_text, skin_type, skin_tone, undertone, concerns, recommendations, foundation_shades, degraded, created_at`

// Create inserts the analysis.
func (r *PGRepo) Create(ctx context.Context, a Analysis) error {
	concerns, err := json.Marshal(a.Concerns)
	if err != nil {
		return fmt.Errorf("marshal concerns: %w", err)
	}
	recommendations, err := json.Marshal(a.Recommendations)
	if err != nil {
		return fmt.Errorf("marshal recommendations: %w", err)
	}
	shades, err := json.Marshal(a.FoundationShades)
	if err != nil {
		return fmt.Errorf("marshal foundation shades: %w", err)
	}

	const query = `
INSERT INTO analyses (id, user_id, image_key, raw_text, skin_type, skin_tone, undertone, concerns, recommendations, foundation_shades, degraded, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err = r.DB.ExecContext(ctx, query,
		a.ID,
		a.UserID,
		a.ImageKey,
		a.RawText,
		a.SkinType,
		a.SkinTone,
		a.Undertone,
		concerns,
		recommendations,
		shades,
		a.Degraded,
		a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create analysis: %w", err)
	}
	return nil
}

// GetByID returns the analysis when it exists and belongs to the user.
func (r *PGRepo) GetByID(ctx context.Context, id, userID string) (Analysis, error) {
	query := `SELECT ` + analysisColumns + ` FROM analyses WHERE id = $1 AND user_id = $2`
	row := r.DB.QueryRowContext(ctx, query, id, userID)
	a, err := scanAnalysis(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, fmt.Errorf("get analysis: %w", err)
	}
	return a, nil
}

// ListByUser returns the user's analyses, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Analysis, error) {
	query := `SELECT ` + analysisColumns + ` FROM analyses WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	defer rows.Close()

	out := []Analysis{}
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var a Analysis
	var concerns, recommendations, shades []byte
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.ImageKey,
		&a.RawText,
		&a.SkinType,
		&a.SkinTone,
		&a.Undertone,
		&concerns,
		&recommendations,
		&shades,
		&a.Degraded,
		&a.CreatedAt,
	)
	if err != nil {
		return Analysis{}, err
	}
	if len(concerns) > 0 {
		if err := json.Unmarshal(concerns, &a.Concerns); err != nil {
			return Analysis{}, fmt.Errorf("decode concerns: %w", err)
		}
	}
	if len(recommendations) > 0 {
		if err := json.Unmarshal(recommendations, &a.Recommendations); err != nil {
			return Analysis{}, fmt.Errorf("decode recommendations: %w", err)
		}
	}
	if len(shades) > 0 {
		if err := json.Unmarshal(shades, &a.FoundationShades); err != nil {
			return Analysis{}, fmt.Errorf("decode foundation shades: %w", err)
		}
	}
	return a, nil
}
