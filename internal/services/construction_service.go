package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/avaluo/landval/internal/logger"
	"github.com/avaluo/landval/internal/models"
	"github.com/avaluo/landval/internal/repository"
)

// ConstructionInput is a new construction record. A nil AdjustmentFactor means 1.
type ConstructionInput struct {
	Kind             string
	AreaM2           float64
	ValuePerM2       float64
	AgeYears         int
	AdjustmentFactor *float64
	Description      *string
	PhotoURL         *string
}

// ConstructionList is a document's constructions plus their rounded mean total.
type ConstructionList struct {
	Items         []models.Construction `json:"items"`
	AvgTotalValue float64               `json:"avgTotalValue"`
	DocumentID    int64                 `json:"documentId"`
}

// ConstructionTotal is area * value per m² * factor, rounded to two decimals.
func ConstructionTotal(areaM2, valuePerM2, factor float64) float64 {
	return decimal.NewFromFloat(areaM2).
		Mul(decimal.NewFromFloat(valuePerM2)).
		Mul(decimal.NewFromFloat(factor)).
		Round(moneyPlaces).
		InexactFloat64()
}

// ConstructionService manages the constructions recorded for a document.
type ConstructionService interface {
	Create(ctx context.Context, documentID int64, in ConstructionInput, createdBy string) (*models.Construction, error)
	List(ctx context.Context, documentID int64) (*ConstructionList, error)
	// Delete returns ErrConstructionNotFound when id does not exist.
	Delete(ctx context.Context, id int64) error
}

type constructionService struct {
	constructions repository.ConstructionRepository
	documents     repository.DocumentRepository
	log           *logger.Logger
}

// NewConstructionService creates a new instance of ConstructionService.
func NewConstructionService(constructions repository.ConstructionRepository, documents repository.DocumentRepository, log *logger.Logger) ConstructionService {
	return &constructionService{constructions: constructions, documents: documents, log: log}
}

func (s *constructionService) Create(ctx context.Context, documentID int64, in ConstructionInput, createdBy string) (*models.Construction, error) {
	factor := 1.0
	if in.AdjustmentFactor != nil {
		factor = *in.AdjustmentFactor
	}

	switch {
	case strings.TrimSpace(in.Kind) == "":
		return nil, fmt.Errorf("%w: kind is required", ErrValidation)
	case !finitePositive(in.AreaM2):
		return nil, fmt.Errorf("%w: area_m2 must be greater than 0", ErrValidation)
	case !finitePositive(in.ValuePerM2):
		return nil, fmt.Errorf("%w: value_per_m2 must be greater than 0", ErrValidation)
	case in.AgeYears < 0:
		return nil, fmt.Errorf("%w: age_years must be at least 0", ErrValidation)
	case !finitePositive(factor):
		return nil, fmt.Errorf("%w: adjustment_factor must be greater than 0", ErrValidation)
	}

	if err := requireDocument(ctx, s.documents, documentID); err != nil {
		return nil, err
	}

	c := &models.Construction{
		DocumentID:       documentID,
		Kind:             strings.TrimSpace(in.Kind),
		AreaM2:           round2(in.AreaM2),
		ValuePerM2:       round2(in.ValuePerM2),
		AgeYears:         in.AgeYears,
		AdjustmentFactor: factor,
		TotalValue:       ConstructionTotal(in.AreaM2, in.ValuePerM2, factor),
		Description:      in.Description,
		PhotoURL:         in.PhotoURL,
	}
	if createdBy != "" {
		c.CreatedBy = &createdBy
	}

	saved, err := s.constructions.Create(ctx, c)
	if err != nil {
		s.log.Error("Failed to create construction", err, map[string]interface{}{"document_id": documentID})
		return nil, fmt.Errorf("failed to create construction: %w", err)
	}

	s.log.Info("Construction created", map[string]interface{}{
		"document_id":     documentID,
		"construction_id": saved.ID,
		"total_value":     saved.TotalValue,
	})
	return saved, nil
}

func (s *constructionService) List(ctx context.Context, documentID int64) (*ConstructionList, error) {
	items, err := s.constructions.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list constructions: %w", err)
	}
	avg, err := s.constructions.AverageTotalValue(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to average constructions: %w", err)
	}

	list := &ConstructionList{Items: items, DocumentID: documentID}
	if avg != nil {
		list.AvgTotalValue = *avg
	}
	return list, nil
}

func (s *constructionService) Delete(ctx context.Context, id int64) error {
	ok, err := s.constructions.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete construction: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: id %d", ErrConstructionNotFound, id)
	}
	s.log.Info("Construction deleted", map[string]interface{}{"construction_id": id})
	return nil
}
