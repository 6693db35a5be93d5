package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/avaluo/landval/internal/factors"
	"github.com/avaluo/landval/internal/logger"
	"github.com/avaluo/landval/internal/models"
	"github.com/avaluo/landval/internal/repository"
)

// TerrainService computes and stores the land adjustment factors of a document.
type TerrainService interface {
	// ComputeAndPersistFactors resolves every factor for m using the document's
	// declared area, then overwrites the document's terrain record.
	// Returns ErrDocumentNotFound if the document does not exist and an error
	// matching both ErrValidation and factors.ErrUnresolved when any factor
	// cannot be resolved. Nothing is written in either case.
	ComputeAndPersistFactors(ctx context.Context, documentID int64, m factors.Measurement, updaterID string) (*models.DocumentTerrainRecord, error)

	// GetTerrainRecord returns ErrTerrainNotFound when no record exists.
	GetTerrainRecord(ctx context.Context, documentID int64) (*models.DocumentTerrainRecord, error)
}

type terrainService struct {
	terrain   repository.TerrainRepository
	documents repository.DocumentRepository
	log       *logger.Logger
}

// NewTerrainService creates a new instance of TerrainService.
func NewTerrainService(terrain repository.TerrainRepository, documents repository.DocumentRepository, log *logger.Logger) TerrainService {
	return &terrainService{
		terrain:   terrain,
		documents: documents,
		log:       log,
	}
}

func (s *terrainService) ComputeAndPersistFactors(ctx context.Context, documentID int64, m factors.Measurement, updaterID string) (*models.DocumentTerrainRecord, error) {
	doc, err := s.documents.FindByID(ctx, documentID)
	if err != nil {
		s.log.Error("Failed to read document area", err, map[string]interface{}{
			"document_id": documentID,
		})
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: id %d", ErrDocumentNotFound, documentID)
	}

	// The extension factor always uses the area on record, never a caller value.
	// An undeclared area counts as 0 and is traced as null.
	m.AreaM2 = doc.AreaM2

	result, err := factors.Compose(m)
	if err != nil {
		var verr *factors.ValidationError
		if errors.As(err, &verr) {
			s.log.Warn("Factor resolution failed", map[string]interface{}{
				"document_id": documentID,
				"fields":      verr.Fields,
			})
		}
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	record := &models.DocumentTerrainRecord{
		DocumentID:         documentID,
		Position:           result.Position.String(),
		FrontageM:          m.FrontageM,
		DepthM:             m.DepthM,
		InteriorDistanceM:  result.Trace.Inputs.InteriorDistanceM,
		Shape:              result.Shape.String(),
		SlopePct:           result.Trace.Inputs.SlopePct,
		ElevationDirection: result.ElevationDirection.String(),
		ElevationM:         result.Trace.Inputs.ElevationM,
		FactorPosition:     result.Factors.Position,
		FactorFrontage:     result.Factors.Frontage,
		FactorDepth:        result.Factors.Depth,
		FactorExtension:    result.Factors.Extension,
		FactorShape:        result.Factors.Shape,
		FactorSlope:        result.Factors.Slope,
		FactorElevation:    result.Factors.Elevation,
		FinalFactor:        result.FinalFactor,
		Trace:              models.Trace(result.Trace),
		UpdatedBy:          updaterID,
	}

	saved, err := s.terrain.Upsert(ctx, record)
	if err != nil {
		s.log.Error("Failed to persist terrain record", err, map[string]interface{}{
			"document_id": documentID,
		})
		return nil, fmt.Errorf("failed to persist terrain record: %w", err)
	}

	s.log.Info("Terrain factors computed", map[string]interface{}{
		"document_id":  documentID,
		"position":     record.Position,
		"final_factor": saved.FinalFactor,
		"updated_by":   updaterID,
		"rule_version": factors.RuleVersion,
	})

	return saved, nil
}

func (s *terrainService) GetTerrainRecord(ctx context.Context, documentID int64) (*models.DocumentTerrainRecord, error) {
	record, err := s.terrain.FindByDocumentID(ctx, documentID)
	if err != nil {
		s.log.Error("Failed to read terrain record", err, map[string]interface{}{
			"document_id": documentID,
		})
		return nil, fmt.Errorf("failed to read terrain record: %w", err)
	}
	if record == nil {
		return nil, fmt.Errorf("%w: document %d", ErrTerrainNotFound, documentID)
	}
	return record, nil
}
