package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/avaluo/landval/internal/database"
	"github.com/avaluo/landval/internal/models"
)

// DocumentRepository defines data access for legal documents.
type DocumentRepository interface {
	// FindByID returns nil, nil if the document does not exist.
	FindByID(ctx context.Context, id int64) (*models.LegalDocument, error)

	// UpdateArea stores a calculated area with its provenance.
	// Returns nil, nil if the document does not exist.
	UpdateArea(ctx context.Context, id int64, areaM2 float64, origin, method string, source *models.AreaSource) (*models.LegalDocument, error)

	// MarkAppraised flags the document as appraised. Reports false if it does not exist.
	MarkAppraised(ctx context.Context, id int64) (bool, error)

	// ListAppraised returns appraised documents, most recently updated first.
	ListAppraised(ctx context.Context) ([]models.LegalDocument, error)
}

type documentRepository struct {
	db *database.Database
}

// NewDocumentRepository creates a new instance of DocumentRepository.
func NewDocumentRepository(db *database.Database) DocumentRepository {
	return &documentRepository{db: db}
}

const documentColumns = `
	id,
	kind,
	status,
	owner,
	address,
	deed_number,
	cert_date,
	area_m2,
	area_origin,
	area_method,
	area_source,
	appraised,
	created_at,
	updated_at`

func scanDocument(row pgx.Row) (*models.LegalDocument, error) {
	var doc models.LegalDocument
	var source []byte

	err := row.Scan(
		&doc.ID,
		&doc.Kind,
		&doc.Status,
		&doc.Owner,
		&doc.Address,
		&doc.DeedNumber,
		&doc.CertDate,
		&doc.AreaM2,
		&doc.AreaOrigin,
		&doc.AreaMethod,
		&source,
		&doc.Appraised,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(source) > 0 {
		var as models.AreaSource
		if err := json.Unmarshal(source, &as); err != nil {
			return nil, fmt.Errorf("failed to parse area source for document %d: %w", doc.ID, err)
		}
		doc.AreaSource = &as
	}
	return &doc, nil
}

func (r *documentRepository) FindByID(ctx context.Context, id int64) (*models.LegalDocument, error) {
	query := `SELECT ` + documentColumns + ` FROM legal_documents WHERE id = $1`

	doc, err := scanDocument(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query document %d: %w", id, err)
	}
	return doc, nil
}

func (r *documentRepository) UpdateArea(ctx context.Context, id int64, areaM2 float64, origin, method string, source *models.AreaSource) (*models.LegalDocument, error) {
	var sourceJSON []byte
	if source != nil {
		encoded, err := json.Marshal(source)
		if err != nil {
			return nil, fmt.Errorf("failed to encode area source: %w", err)
		}
		sourceJSON = encoded
	}

	query := `
		UPDATE legal_documents
		SET area_m2 = $2,
			area_origin = $3,
			area_method = $4,
			area_source = $5,
			updated_at = now()
		WHERE id = $1
		RETURNING ` + documentColumns

	doc, err := scanDocument(r.db.Pool.QueryRow(ctx, query, id, areaM2, origin, method, sourceJSON))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update area for document %d: %w", id, err)
	}
	return doc, nil
}

func (r *documentRepository) MarkAppraised(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx,
		`UPDATE legal_documents SET appraised = TRUE, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to mark document %d appraised: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *documentRepository) ListAppraised(ctx context.Context) ([]models.LegalDocument, error) {
	query := `SELECT ` + documentColumns + `
		FROM legal_documents
		WHERE appraised
		ORDER BY updated_at DESC, id DESC`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query appraised documents: %w", err)
	}
	defer rows.Close()

	results := []models.LegalDocument{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		results = append(results, *doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating document rows: %w", err)
	}
	return results, nil
}
