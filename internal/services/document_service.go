package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/avaluo/landval/internal/logger"
	"github.com/avaluo/landval/internal/models"
	"github.com/avaluo/landval/internal/repository"
)

// AreaInput is a "box of two triangles" survey: two triangles sharing the
// diagonal, each described by its front and depth.
type AreaInput struct {
	DiagonalM float64
	Front1M   float64
	Depth1M   float64
	Front2M   float64
	Depth2M   float64
	// Force replaces an area already on the document.
	Force bool
}

// TwoTriangleArea returns f1*d1/2 + f2*d2/2 rounded to two decimals.
func TwoTriangleArea(in AreaInput) float64 {
	half := decimal.NewFromFloat(0.5)
	t1 := decimal.NewFromFloat(in.Front1M).Mul(decimal.NewFromFloat(in.Depth1M)).Mul(half)
	t2 := decimal.NewFromFloat(in.Front2M).Mul(decimal.NewFromFloat(in.Depth2M)).Mul(half)
	return t1.Add(t2).Round(moneyPlaces).InexactFloat64()
}

// DocumentService covers the legal-document operations of the appraisal flow.
type DocumentService interface {
	// GetDocument returns ErrDocumentNotFound when id does not exist.
	GetDocument(ctx context.Context, id int64) (*models.LegalDocument, error)

	// CalculateArea stores the two-triangle area on the document.
	// Returns ErrValidation for non-positive measurements, ErrDocumentNotFound,
	// or ErrAreaAlreadySet when an area exists and in.Force is false.
	CalculateArea(ctx context.Context, id int64, in AreaInput) (*models.LegalDocument, error)

	// ListAppraised returns appraised documents, most recently updated first.
	ListAppraised(ctx context.Context) ([]models.LegalDocument, error)
}

type documentService struct {
	documents repository.DocumentRepository
	log       *logger.Logger
}

// NewDocumentService creates a new instance of DocumentService.
func NewDocumentService(documents repository.DocumentRepository, log *logger.Logger) DocumentService {
	return &documentService{documents: documents, log: log}
}

func (s *documentService) GetDocument(ctx context.Context, id int64) (*models.LegalDocument, error) {
	doc, err := s.documents.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to read document", err, map[string]interface{}{"document_id": id})
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: id %d", ErrDocumentNotFound, id)
	}
	return doc, nil
}

func (s *documentService) CalculateArea(ctx context.Context, id int64, in AreaInput) (*models.LegalDocument, error) {
	for name, v := range map[string]float64{
		"diagonal_m": in.DiagonalM,
		"front_1_m":  in.Front1M,
		"depth_1_m":  in.Depth1M,
		"front_2_m":  in.Front2M,
		"depth_2_m":  in.Depth2M,
	} {
		if !finitePositive(v) {
			return nil, fmt.Errorf("%w: %s must be a finite number greater than 0", ErrValidation, name)
		}
	}

	doc, err := s.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc.AreaM2 != nil && !in.Force {
		return nil, fmt.Errorf("%w: document %d has %.2f m²", ErrAreaAlreadySet, id, *doc.AreaM2)
	}

	area := TwoTriangleArea(in)
	source := &models.AreaSource{
		DiagonalM: in.DiagonalM,
		Front1M:   in.Front1M,
		Depth1M:   in.Depth1M,
		Front2M:   in.Front2M,
		Depth2M:   in.Depth2M,
	}

	updated, err := s.documents.UpdateArea(ctx, id, area, models.AreaOriginCalculated, models.AreaMethodTwoTriangles, source)
	if err != nil {
		s.log.Error("Failed to store calculated area", err, map[string]interface{}{"document_id": id})
		return nil, fmt.Errorf("failed to store area: %w", err)
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: id %d", ErrDocumentNotFound, id)
	}

	s.log.Info("Document area calculated", map[string]interface{}{
		"document_id": id,
		"area_m2":     area,
		"replaced":    doc.AreaM2 != nil,
	})
	return updated, nil
}

func (s *documentService) ListAppraised(ctx context.Context) ([]models.LegalDocument, error) {
	docs, err := s.documents.ListAppraised(ctx)
	if err != nil {
		s.log.Error("Failed to list appraised documents", err, nil)
		return nil, fmt.Errorf("failed to list appraised documents: %w", err)
	}
	return docs, nil
}
