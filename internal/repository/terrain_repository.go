package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/avaluo/landval/internal/database"
	"github.com/avaluo/landval/internal/models"
)

// TerrainRepository defines data access for per-document terrain records.
type TerrainRepository interface {
	// Upsert writes the record for record.DocumentID, replacing any existing row.
	// Concurrent writers are serialised by the primary key; the last one wins.
	Upsert(ctx context.Context, record *models.DocumentTerrainRecord) (*models.DocumentTerrainRecord, error)

	// FindByDocumentID returns nil, nil when the document has no terrain record.
	FindByDocumentID(ctx context.Context, documentID int64) (*models.DocumentTerrainRecord, error)
}

type terrainRepository struct {
	db *database.Database
}

// NewTerrainRepository creates a new instance of TerrainRepository.
func NewTerrainRepository(db *database.Database) TerrainRepository {
	return &terrainRepository{db: db}
}

const terrainColumns = `
	document_id,
	position,
	frontage_m,
	depth_m,
	interior_distance_m,
	shape,
	slope_pct,
	elevation_direction,
	elevation_m,
	factor_position,
	factor_frontage,
	factor_depth,
	factor_extension,
	factor_shape,
	factor_slope,
	factor_elevation,
	final_factor,
	trace,
	COALESCE(created_by, ''),
	COALESCE(updated_by, ''),
	created_at,
	updated_at`

func scanTerrain(row pgx.Row) (*models.DocumentTerrainRecord, error) {
	var rec models.DocumentTerrainRecord
	err := row.Scan(
		&rec.DocumentID,
		&rec.Position,
		&rec.FrontageM,
		&rec.DepthM,
		&rec.InteriorDistanceM,
		&rec.Shape,
		&rec.SlopePct,
		&rec.ElevationDirection,
		&rec.ElevationM,
		&rec.FactorPosition,
		&rec.FactorFrontage,
		&rec.FactorDepth,
		&rec.FactorExtension,
		&rec.FactorShape,
		&rec.FactorSlope,
		&rec.FactorElevation,
		&rec.FinalFactor,
		&rec.Trace,
		&rec.CreatedBy,
		&rec.UpdatedBy,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Upsert inserts or overwrites the terrain row. created_by and created_at keep
// their original values on overwrite.
func (r *terrainRepository) Upsert(ctx context.Context, record *models.DocumentTerrainRecord) (*models.DocumentTerrainRecord, error) {
	query := `
		INSERT INTO document_terrain (
			document_id, position, frontage_m, depth_m, interior_distance_m,
			shape, slope_pct, elevation_direction, elevation_m,
			factor_position, factor_frontage, factor_depth, factor_extension,
			factor_shape, factor_slope, factor_elevation, final_factor,
			trace, created_by, updated_by, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $19, now(), now())
		ON CONFLICT (document_id) DO UPDATE SET
			position            = EXCLUDED.position,
			frontage_m          = EXCLUDED.frontage_m,
			depth_m             = EXCLUDED.depth_m,
			interior_distance_m = EXCLUDED.interior_distance_m,
			shape               = EXCLUDED.shape,
			slope_pct           = EXCLUDED.slope_pct,
			elevation_direction = EXCLUDED.elevation_direction,
			elevation_m         = EXCLUDED.elevation_m,
			factor_position     = EXCLUDED.factor_position,
			factor_frontage     = EXCLUDED.factor_frontage,
			factor_depth        = EXCLUDED.factor_depth,
			factor_extension    = EXCLUDED.factor_extension,
			factor_shape        = EXCLUDED.factor_shape,
			factor_slope        = EXCLUDED.factor_slope,
			factor_elevation    = EXCLUDED.factor_elevation,
			final_factor        = EXCLUDED.final_factor,
			trace               = EXCLUDED.trace,
			updated_by          = EXCLUDED.updated_by,
			updated_at          = now()
		RETURNING ` + terrainColumns

	saved, err := scanTerrain(r.db.Pool.QueryRow(ctx, query,
		record.DocumentID,
		record.Position,
		record.FrontageM,
		record.DepthM,
		record.InteriorDistanceM,
		record.Shape,
		record.SlopePct,
		record.ElevationDirection,
		record.ElevationM,
		record.FactorPosition,
		record.FactorFrontage,
		record.FactorDepth,
		record.FactorExtension,
		record.FactorShape,
		record.FactorSlope,
		record.FactorElevation,
		record.FinalFactor,
		record.Trace,
		record.UpdatedBy,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert terrain record for document %d: %w", record.DocumentID, err)
	}
	return saved, nil
}

func (r *terrainRepository) FindByDocumentID(ctx context.Context, documentID int64) (*models.DocumentTerrainRecord, error) {
	query := `SELECT ` + terrainColumns + ` FROM document_terrain WHERE document_id = $1`

	rec, err := scanTerrain(r.db.Pool.QueryRow(ctx, query, documentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query terrain record for document %d: %w", documentID, err)
	}
	return rec, nil
}
