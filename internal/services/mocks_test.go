package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/avaluo/landval/internal/models"
)

// MockTerrainRepository is a mock implementation of TerrainRepository for testing
type MockTerrainRepository struct {
	mock.Mock
}

func (m *MockTerrainRepository) Upsert(ctx context.Context, record *models.DocumentTerrainRecord) (*models.DocumentTerrainRecord, error) {
	args := m.Called(ctx, record)
	if fn, ok := args.Get(0).(func(context.Context, *models.DocumentTerrainRecord) *models.DocumentTerrainRecord); ok {
		return fn(ctx, record), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DocumentTerrainRecord), args.Error(1)
}

func (m *MockTerrainRepository) FindByDocumentID(ctx context.Context, documentID int64) (*models.DocumentTerrainRecord, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DocumentTerrainRecord), args.Error(1)
}

// MockDocumentRepository is a mock implementation of DocumentRepository for testing
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) FindByID(ctx context.Context, id int64) (*models.LegalDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LegalDocument), args.Error(1)
}

func (m *MockDocumentRepository) UpdateArea(ctx context.Context, id int64, areaM2 float64, origin, method string, source *models.AreaSource) (*models.LegalDocument, error) {
	args := m.Called(ctx, id, areaM2, origin, method, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LegalDocument), args.Error(1)
}

func (m *MockDocumentRepository) MarkAppraised(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockDocumentRepository) ListAppraised(ctx context.Context) ([]models.LegalDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LegalDocument), args.Error(1)
}

// MockComparableRepository is a mock implementation of ComparableRepository for testing
type MockComparableRepository struct {
	mock.Mock
}

func (m *MockComparableRepository) Create(ctx context.Context, c *models.Comparable) (*models.Comparable, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comparable), args.Error(1)
}

func (m *MockComparableRepository) ListByDocument(ctx context.Context, documentID int64) ([]models.Comparable, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comparable), args.Error(1)
}

func (m *MockComparableRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockComparableRepository) AverageLandValuePerM2(ctx context.Context, documentID int64) (*float64, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*float64), args.Error(1)
}

// MockConstructionRepository is a mock implementation of ConstructionRepository for testing
type MockConstructionRepository struct {
	mock.Mock
}

func (m *MockConstructionRepository) Create(ctx context.Context, c *models.Construction) (*models.Construction, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Construction), args.Error(1)
}

func (m *MockConstructionRepository) ListByDocument(ctx context.Context, documentID int64) ([]models.Construction, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Construction), args.Error(1)
}

func (m *MockConstructionRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockConstructionRepository) AverageTotalValue(ctx context.Context, documentID int64) (*float64, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*float64), args.Error(1)
}

func ptr(v float64) *float64 {
	return &v
}
