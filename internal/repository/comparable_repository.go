package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/avaluo/landval/internal/database"
	"github.com/avaluo/landval/internal/models"
)

// ComparableRepository defines data access for market reference properties.
type ComparableRepository interface {
	Create(ctx context.Context, c *models.Comparable) (*models.Comparable, error)

	// ListByDocument returns the document's comparables, newest first.
	ListByDocument(ctx context.Context, documentID int64) ([]models.Comparable, error)

	// Delete reports false when no row matched id.
	Delete(ctx context.Context, id int64) (bool, error)

	// AverageLandValuePerM2 returns the mean land value per m² rounded to two
	// decimals, or nil when the document has no comparables.
	AverageLandValuePerM2(ctx context.Context, documentID int64) (*float64, error)
}

type comparableRepository struct {
	db *database.Database
}

// NewComparableRepository creates a new instance of ComparableRepository.
func NewComparableRepository(db *database.Database) ComparableRepository {
	return &comparableRepository{db: db}
}

const comparableColumns = `
	id,
	document_id,
	source_link,
	total_value,
	land_area_m2,
	built_area_m2,
	construction_value,
	land_value_per_m2,
	photo_url,
	created_by,
	created_at`

func scanComparable(row pgx.Row) (*models.Comparable, error) {
	var c models.Comparable
	err := row.Scan(
		&c.ID,
		&c.DocumentID,
		&c.SourceLink,
		&c.TotalValue,
		&c.LandAreaM2,
		&c.BuiltAreaM2,
		&c.ConstructionValue,
		&c.LandValuePerAreaM2,
		&c.PhotoURL,
		&c.CreatedBy,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *comparableRepository) Create(ctx context.Context, c *models.Comparable) (*models.Comparable, error) {
	query := `
		INSERT INTO comparables (
			document_id, source_link, total_value, land_area_m2, built_area_m2,
			construction_value, land_value_per_m2, photo_url, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + comparableColumns

	saved, err := scanComparable(r.db.Pool.QueryRow(ctx, query,
		c.DocumentID,
		c.SourceLink,
		c.TotalValue,
		c.LandAreaM2,
		c.BuiltAreaM2,
		c.ConstructionValue,
		c.LandValuePerAreaM2,
		c.PhotoURL,
		c.CreatedBy,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to insert comparable for document %d: %w", c.DocumentID, err)
	}
	return saved, nil
}

func (r *comparableRepository) ListByDocument(ctx context.Context, documentID int64) ([]models.Comparable, error) {
	query := `SELECT ` + comparableColumns + `
		FROM comparables
		WHERE document_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Pool.Query(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comparables for document %d: %w", documentID, err)
	}
	defer rows.Close()

	results := []models.Comparable{}
	for rows.Next() {
		c, err := scanComparable(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comparable row: %w", err)
		}
		results = append(results, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comparable rows: %w", err)
	}
	return results, nil
}

func (r *comparableRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM comparables WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete comparable %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *comparableRepository) AverageLandValuePerM2(ctx context.Context, documentID int64) (*float64, error) {
	var avg *float64
	err := r.db.Pool.QueryRow(ctx,
		`SELECT ROUND(AVG(land_value_per_m2), 2)::float8 FROM comparables WHERE document_id = $1`,
		documentID,
	).Scan(&avg)
	if err != nil {
		return nil, fmt.Errorf("failed to average comparables for document %d: %w", documentID, err)
	}
	return avg, nil
}
