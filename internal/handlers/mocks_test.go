package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/avaluo/landval/internal/factors"
	"github.com/avaluo/landval/internal/models"
	"github.com/avaluo/landval/internal/services"
)

// MockTerrainService is a mock implementation of services.TerrainService.
type MockTerrainService struct {
	mock.Mock
}

func (m *MockTerrainService) ComputeAndPersistFactors(ctx context.Context, documentID int64, meas factors.Measurement, updaterID string) (*models.DocumentTerrainRecord, error) {
	args := m.Called(ctx, documentID, meas, updaterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DocumentTerrainRecord), args.Error(1)
}

func (m *MockTerrainService) GetTerrainRecord(ctx context.Context, documentID int64) (*models.DocumentTerrainRecord, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DocumentTerrainRecord), args.Error(1)
}

// MockValuationService is a mock implementation of services.ValuationService.
type MockValuationService struct {
	mock.Mock
}

func (m *MockValuationService) ComputeValuationSummary(ctx context.Context, documentID int64) (*models.ValuationSummary, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ValuationSummary), args.Error(1)
}

func (m *MockValuationService) FinalizeAppraisal(ctx context.Context, documentID int64) error {
	return m.Called(ctx, documentID).Error(0)
}

// MockDocumentService is a mock implementation of services.DocumentService.
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) GetDocument(ctx context.Context, id int64) (*models.LegalDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LegalDocument), args.Error(1)
}

func (m *MockDocumentService) CalculateArea(ctx context.Context, id int64, in services.AreaInput) (*models.LegalDocument, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LegalDocument), args.Error(1)
}

func (m *MockDocumentService) ListAppraised(ctx context.Context) ([]models.LegalDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LegalDocument), args.Error(1)
}

// MockComparableService is a mock implementation of services.ComparableService.
type MockComparableService struct {
	mock.Mock
}

func (m *MockComparableService) Create(ctx context.Context, documentID int64, in services.ComparableInput, createdBy string) (*models.Comparable, error) {
	args := m.Called(ctx, documentID, in, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comparable), args.Error(1)
}

func (m *MockComparableService) List(ctx context.Context, documentID int64) (*services.ComparableList, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ComparableList), args.Error(1)
}

func (m *MockComparableService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockConstructionService is a mock implementation of services.ConstructionService.
type MockConstructionService struct {
	mock.Mock
}

func (m *MockConstructionService) Create(ctx context.Context, documentID int64, in services.ConstructionInput, createdBy string) (*models.Construction, error) {
	args := m.Called(ctx, documentID, in, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Construction), args.Error(1)
}

func (m *MockConstructionService) List(ctx context.Context, documentID int64) (*services.ConstructionList, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ConstructionList), args.Error(1)
}

func (m *MockConstructionService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockReportService is a mock implementation of services.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) BuildReport(ctx context.Context, documentID int64) (*services.AppraisalReport, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.AppraisalReport), args.Error(1)
}
