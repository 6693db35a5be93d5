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

// ComparableInput is a new market reference for a document.
type ComparableInput struct {
	SourceLink        string
	TotalValue        float64
	LandAreaM2        float64
	BuiltAreaM2       float64
	ConstructionValue float64
	PhotoURL          *string
}

// ComparableList is a document's comparables plus their rounded mean land value.
type ComparableList struct {
	Items             []models.Comparable `json:"items"`
	AvgLandValuePerM2 float64             `json:"avgLandValuePerM2"`
	DocumentID        int64               `json:"documentId"`
}

// LandValuePerM2 is (total - construction) / land area, rounded to two decimals.
func LandValuePerM2(total, construction, landArea float64) float64 {
	land := decimal.NewFromFloat(total).Sub(decimal.NewFromFloat(construction))
	return land.Div(decimal.NewFromFloat(landArea)).Round(moneyPlaces).InexactFloat64()
}

// ComparableService manages the market references of a document.
type ComparableService interface {
	Create(ctx context.Context, documentID int64, in ComparableInput, createdBy string) (*models.Comparable, error)
	List(ctx context.Context, documentID int64) (*ComparableList, error)
	// Delete returns ErrComparableNotFound when id does not exist.
	Delete(ctx context.Context, id int64) error
}

type comparableService struct {
	comparables repository.ComparableRepository
	documents   repository.DocumentRepository
	log         *logger.Logger
}

// NewComparableService creates a new instance of ComparableService.
func NewComparableService(comparables repository.ComparableRepository, documents repository.DocumentRepository, log *logger.Logger) ComparableService {
	return &comparableService{comparables: comparables, documents: documents, log: log}
}

func validateComparable(in ComparableInput) error {
	switch {
	case strings.TrimSpace(in.SourceLink) == "":
		return fmt.Errorf("%w: source_link is required", ErrValidation)
	case !finitePositive(in.TotalValue):
		return fmt.Errorf("%w: total_value must be greater than 0", ErrValidation)
	case !finitePositive(in.LandAreaM2):
		return fmt.Errorf("%w: land_area_m2 must be greater than 0", ErrValidation)
	case !finiteNonNegative(in.BuiltAreaM2):
		return fmt.Errorf("%w: built_area_m2 must be at least 0", ErrValidation)
	case !finiteNonNegative(in.ConstructionValue):
		return fmt.Errorf("%w: construction_value must be at least 0", ErrValidation)
	case in.ConstructionValue > in.TotalValue:
		return fmt.Errorf("%w: construction_value cannot exceed total_value", ErrValidation)
	}
	return nil
}

func (s *comparableService) Create(ctx context.Context, documentID int64, in ComparableInput, createdBy string) (*models.Comparable, error) {
	if err := validateComparable(in); err != nil {
		return nil, err
	}
	if err := requireDocument(ctx, s.documents, documentID); err != nil {
		return nil, err
	}

	c := &models.Comparable{
		DocumentID:         documentID,
		SourceLink:         strings.TrimSpace(in.SourceLink),
		TotalValue:         round2(in.TotalValue),
		LandAreaM2:         round2(in.LandAreaM2),
		BuiltAreaM2:        round2(in.BuiltAreaM2),
		ConstructionValue:  round2(in.ConstructionValue),
		LandValuePerAreaM2: LandValuePerM2(in.TotalValue, in.ConstructionValue, in.LandAreaM2),
		PhotoURL:           in.PhotoURL,
	}
	if createdBy != "" {
		c.CreatedBy = &createdBy
	}

	saved, err := s.comparables.Create(ctx, c)
	if err != nil {
		s.log.Error("Failed to create comparable", err, map[string]interface{}{"document_id": documentID})
		return nil, fmt.Errorf("failed to create comparable: %w", err)
	}

	s.log.Info("Comparable created", map[string]interface{}{
		"document_id":       documentID,
		"comparable_id":     saved.ID,
		"land_value_per_m2": saved.LandValuePerAreaM2,
	})
	return saved, nil
}

func (s *comparableService) List(ctx context.Context, documentID int64) (*ComparableList, error) {
	items, err := s.comparables.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comparables: %w", err)
	}
	avg, err := s.comparables.AverageLandValuePerM2(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to average comparables: %w", err)
	}

	list := &ComparableList{Items: items, DocumentID: documentID}
	if avg != nil {
		list.AvgLandValuePerM2 = *avg
	}
	return list, nil
}

func (s *comparableService) Delete(ctx context.Context, id int64) error {
	ok, err := s.comparables.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete comparable: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: id %d", ErrComparableNotFound, id)
	}
	s.log.Info("Comparable deleted", map[string]interface{}{"comparable_id": id})
	return nil
}

// requireDocument returns ErrDocumentNotFound unless documentID exists.
func requireDocument(ctx context.Context, documents repository.DocumentRepository, documentID int64) error {
	doc, err := documents.FindByID(ctx, documentID)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}
	if doc == nil {
		return fmt.Errorf("%w: id %d", ErrDocumentNotFound, documentID)
	}
	return nil
}
