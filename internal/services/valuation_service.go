package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/avaluo/landval/internal/logger"
	"github.com/avaluo/landval/internal/models"
	"github.com/avaluo/landval/internal/repository"
)

// ValuationService aggregates the stored factor, comparables and constructions
// of a document into an estimated value.
type ValuationService interface {
	// ComputeValuationSummary never fails for missing data: an absent terrain
	// record counts as factor 1, absent comparables or constructions as 0 and an
	// absent document or area as area 0. Only repository failures are returned.
	ComputeValuationSummary(ctx context.Context, documentID int64) (*models.ValuationSummary, error)

	// FinalizeAppraisal marks the document appraised. Returns ErrDocumentNotFound
	// if it does not exist.
	FinalizeAppraisal(ctx context.Context, documentID int64) error
}

type valuationService struct {
	documents     repository.DocumentRepository
	terrain       repository.TerrainRepository
	comparables   repository.ComparableRepository
	constructions repository.ConstructionRepository
	log           *logger.Logger
}

// NewValuationService creates a new instance of ValuationService.
func NewValuationService(
	documents repository.DocumentRepository,
	terrain repository.TerrainRepository,
	comparables repository.ComparableRepository,
	constructions repository.ConstructionRepository,
	log *logger.Logger,
) ValuationService {
	return &valuationService{
		documents:     documents,
		terrain:       terrain,
		comparables:   comparables,
		constructions: constructions,
		log:           log,
	}
}

func (s *valuationService) ComputeValuationSummary(ctx context.Context, documentID int64) (*models.ValuationSummary, error) {
	summary := &models.ValuationSummary{
		DocumentID:  documentID,
		FinalFactor: 1,
	}

	record, err := s.terrain.FindByDocumentID(ctx, documentID)
	if err != nil {
		return nil, s.dependencyError("terrain record", documentID, err)
	}
	if record != nil {
		summary.FinalFactor = record.FinalFactor
	}

	avgLand, err := s.comparables.AverageLandValuePerM2(ctx, documentID)
	if err != nil {
		return nil, s.dependencyError("comparables average", documentID, err)
	}
	if avgLand != nil {
		summary.AvgLandValuePerM2 = *avgLand
	}

	avgConstruction, err := s.constructions.AverageTotalValue(ctx, documentID)
	if err != nil {
		return nil, s.dependencyError("constructions average", documentID, err)
	}
	if avgConstruction != nil {
		summary.AvgConstructionValue = *avgConstruction
	}

	doc, err := s.documents.FindByID(ctx, documentID)
	if err != nil {
		return nil, s.dependencyError("document area", documentID, err)
	}
	if doc != nil && doc.AreaM2 != nil {
		summary.DocumentAreaM2 = *doc.AreaM2
	}

	summary.EstimatedTotal = estimateTotal(summary)

	s.log.Debug("Valuation summary computed", map[string]interface{}{
		"document_id":     documentID,
		"final_factor":    summary.FinalFactor,
		"estimated_total": summary.EstimatedTotal,
	})

	return summary, nil
}

// estimateTotal is avgLand * area * factor + avgConstruction, rounded to cents.
func estimateTotal(s *models.ValuationSummary) float64 {
	land := decimal.NewFromFloat(s.AvgLandValuePerM2).
		Mul(decimal.NewFromFloat(s.DocumentAreaM2)).
		Mul(decimal.NewFromFloat(s.FinalFactor))
	total := land.Add(decimal.NewFromFloat(s.AvgConstructionValue))
	return total.Round(moneyPlaces).InexactFloat64()
}

func (s *valuationService) dependencyError(what string, documentID int64, err error) error {
	s.log.Error("Failed to read valuation input", err, map[string]interface{}{
		"document_id": documentID,
		"input":       what,
	})
	return fmt.Errorf("failed to read %s: %w", what, err)
}

func (s *valuationService) FinalizeAppraisal(ctx context.Context, documentID int64) error {
	ok, err := s.documents.MarkAppraised(ctx, documentID)
	if err != nil {
		s.log.Error("Failed to finalize appraisal", err, map[string]interface{}{
			"document_id": documentID,
		})
		return fmt.Errorf("failed to finalize appraisal: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: id %d", ErrDocumentNotFound, documentID)
	}

	s.log.Info("Appraisal finalized", map[string]interface{}{
		"document_id": documentID,
	})
	return nil
}
