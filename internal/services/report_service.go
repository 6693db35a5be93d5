package services

import (
	"context"
	"fmt"

	"github.com/avaluo/landval/internal/logger"
	"github.com/avaluo/landval/internal/models"
	"github.com/avaluo/landval/internal/repository"
)

// AppraisalReport is everything a report renderer needs for one document.
type AppraisalReport struct {
	Document      *models.LegalDocument         `json:"document"`
	Terrain       *models.DocumentTerrainRecord `json:"terrain"`
	Comparables   []models.Comparable           `json:"comparables"`
	Constructions []models.Construction         `json:"constructions"`
	Summary       *models.ValuationSummary      `json:"summary"`
}

// ReportService assembles appraisal report data.
type ReportService interface {
	// BuildReport returns ErrDocumentNotFound when the document does not exist.
	// Terrain is nil when factors were never computed.
	BuildReport(ctx context.Context, documentID int64) (*AppraisalReport, error)
}

type reportService struct {
	documents     repository.DocumentRepository
	terrain       repository.TerrainRepository
	comparables   repository.ComparableRepository
	constructions repository.ConstructionRepository
	valuation     ValuationService
	log           *logger.Logger
}

// NewReportService creates a new instance of ReportService.
func NewReportService(
	documents repository.DocumentRepository,
	terrain repository.TerrainRepository,
	comparables repository.ComparableRepository,
	constructions repository.ConstructionRepository,
	valuation ValuationService,
	log *logger.Logger,
) ReportService {
	return &reportService{
		documents:     documents,
		terrain:       terrain,
		comparables:   comparables,
		constructions: constructions,
		valuation:     valuation,
		log:           log,
	}
}

func (s *reportService) BuildReport(ctx context.Context, documentID int64) (*AppraisalReport, error) {
	doc, err := s.documents.FindByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: id %d", ErrDocumentNotFound, documentID)
	}

	terrain, err := s.terrain.FindByDocumentID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to read terrain record: %w", err)
	}

	comparables, err := s.comparables.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comparables: %w", err)
	}

	constructions, err := s.constructions.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list constructions: %w", err)
	}

	summary, err := s.valuation.ComputeValuationSummary(ctx, documentID)
	if err != nil {
		return nil, err
	}

	s.log.Info("Report data assembled", map[string]interface{}{
		"document_id":   documentID,
		"comparables":   len(comparables),
		"constructions": len(constructions),
		"has_terrain":   terrain != nil,
	})

	return &AppraisalReport{
		Document:      doc,
		Terrain:       terrain,
		Comparables:   comparables,
		Constructions: constructions,
		Summary:       summary,
	}, nil
}
