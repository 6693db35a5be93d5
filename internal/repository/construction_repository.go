package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/avaluo/landval/internal/database"
	"github.com/avaluo/landval/internal/models"
)

// ConstructionRepository defines data access for constructions on a parcel.
type ConstructionRepository interface {
	Create(ctx context.Context, c *models.Construction) (*models.Construction, error)

	// ListByDocument returns the document's constructions, newest first.
	ListByDocument(ctx context.Context, documentID int64) ([]models.Construction, error)

	// Delete reports false when no row matched id.
	Delete(ctx context.Context, id int64) (bool, error)

	// AverageTotalValue returns the mean construction total rounded to two
	// decimals, or nil when the document has no constructions.
	AverageTotalValue(ctx context.Context, documentID int64) (*float64, error)
}

type constructionRepository struct {
	db *database.Database
}

// NewConstructionRepository creates a new instance of ConstructionRepository.
func NewConstructionRepository(db *database.Database) ConstructionRepository {
	return &constructionRepository{db: db}
}

const constructionColumns = `
	id,
	document_id,
	kind,
	area_m2,
	value_per_m2,
	age_years,
	adjustment_factor,
	total_value,
	description,
	photo_url,
	created_by,
	created_at`

func scanConstruction(row pgx.Row) (*models.Construction, error) {
	var c models.Construction
	err := row.Scan(
		&c.ID,
		&c.DocumentID,
		&c.Kind,
		&c.AreaM2,
		&c.ValuePerM2,
		&c.AgeYears,
		&c.AdjustmentFactor,
		&c.TotalValue,
		&c.Description,
		&c.PhotoURL,
		&c.CreatedBy,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *constructionRepository) Create(ctx context.Context, c *models.Construction) (*models.Construction, error) {
	query := `
		INSERT INTO constructions (
			document_id, kind, area_m2, value_per_m2, age_years,
			adjustment_factor, total_value, description, photo_url, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + constructionColumns

	saved, err := scanConstruction(r.db.Pool.QueryRow(ctx, query,
		c.DocumentID,
		c.Kind,
		c.AreaM2,
		c.ValuePerM2,
		c.AgeYears,
		c.AdjustmentFactor,
		c.TotalValue,
		c.Description,
		c.PhotoURL,
		c.CreatedBy,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to insert construction for document %d: %w", c.DocumentID, err)
	}
	return saved, nil
}

func (r *constructionRepository) ListByDocument(ctx context.Context, documentID int64) ([]models.Construction, error) {
	query := `SELECT ` + constructionColumns + `
		FROM constructions
		WHERE document_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Pool.Query(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query constructions for document %d: %w", documentID, err)
	}
	defer rows.Close()

	results := []models.Construction{}
	for rows.Next() {
		c, err := scanConstruction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan construction row: %w", err)
		}
		results = append(results, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating construction rows: %w", err)
	}
	return results, nil
}

func (r *constructionRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM constructions WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete construction %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *constructionRepository) AverageTotalValue(ctx context.Context, documentID int64) (*float64, error) {
	var avg *float64
	err := r.db.Pool.QueryRow(ctx,
		`SELECT ROUND(AVG(total_value), 2)::float8 FROM constructions WHERE document_id = $1`,
		documentID,
	).Scan(&avg)
	if err != nil {
		return nil, fmt.Errorf("failed to average constructions for document %d: %w", documentID, err)
	}
	return avg, nil
}
