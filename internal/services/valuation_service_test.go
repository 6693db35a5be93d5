package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avaluo/landval/internal/logger"
	"github.com/avaluo/landval/internal/models"
)

type valuationMocks struct {
	documents     *MockDocumentRepository
	terrain       *MockTerrainRepository
	comparables   *MockComparableRepository
	constructions *MockConstructionRepository
}

func newValuationService() (ValuationService, valuationMocks) {
	m := valuationMocks{
		documents:     new(MockDocumentRepository),
		terrain:       new(MockTerrainRepository),
		comparables:   new(MockComparableRepository),
		constructions: new(MockConstructionRepository),
	}
	return NewValuationService(m.documents, m.terrain, m.comparables, m.constructions, logger.New("test")), m
}

func TestComputeValuationSummary_Estimate(t *testing.T) {
	service, m := newValuationService()
	ctx := context.Background()

	m.terrain.On("FindByDocumentID", ctx, int64(1)).Return(&models.DocumentTerrainRecord{DocumentID: 1, FinalFactor: 0.611}, nil)
	m.comparables.On("AverageLandValuePerM2", ctx, int64(1)).Return(ptr(1233.67), nil)
	m.constructions.On("AverageTotalValue", ctx, int64(1)).Return(ptr(864000), nil)
	m.documents.On("FindByID", ctx, int64(1)).Return(&models.LegalDocument{ID: 1, AreaM2: ptr(1500)}, nil)

	summary, err := service.ComputeValuationSummary(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.DocumentID)
	assert.Equal(t, 0.611, summary.FinalFactor)
	assert.Equal(t, 1233.67, summary.AvgLandValuePerM2)
	assert.Equal(t, 864000.0, summary.AvgConstructionValue)
	assert.Equal(t, 1500.0, summary.DocumentAreaM2)
	// 1233.67 * 1500 * 0.611 + 864000 = 1994658.555
	assert.Equal(t, 1994658.56, summary.EstimatedTotal)
}

func TestComputeValuationSummary_Defaults(t *testing.T) {
	service, m := newValuationService()
	ctx := context.Background()

	m.terrain.On("FindByDocumentID", ctx, int64(2)).Return(nil, nil)
	m.comparables.On("AverageLandValuePerM2", ctx, int64(2)).Return(nil, nil)
	m.constructions.On("AverageTotalValue", ctx, int64(2)).Return(nil, nil)
	m.documents.On("FindByID", ctx, int64(2)).Return(&models.LegalDocument{ID: 2, AreaM2: ptr(100)}, nil)

	summary, err := service.ComputeValuationSummary(ctx, 2)

	require.NoError(t, err)
	assert.Equal(t, 1.0, summary.FinalFactor)
	assert.Equal(t, 0.0, summary.AvgLandValuePerM2)
	assert.Equal(t, 0.0, summary.AvgConstructionValue)
	assert.Equal(t, 100.0, summary.DocumentAreaM2)
	assert.Equal(t, 0.0, summary.EstimatedTotal)
}

func TestComputeValuationSummary_MissingDocumentCountsAsZeroArea(t *testing.T) {
	service, m := newValuationService()
	ctx := context.Background()

	m.terrain.On("FindByDocumentID", ctx, int64(3)).Return(nil, nil)
	m.comparables.On("AverageLandValuePerM2", ctx, int64(3)).Return(ptr(1000), nil)
	m.constructions.On("AverageTotalValue", ctx, int64(3)).Return(ptr(250.5), nil)
	m.documents.On("FindByID", ctx, int64(3)).Return(nil, nil)

	summary, err := service.ComputeValuationSummary(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.DocumentAreaM2)
	assert.Equal(t, 250.5, summary.EstimatedTotal)
}

func TestComputeValuationSummary_RepositoryErrors(t *testing.T) {
	dbErr := errors.New("connection reset")

	tests := []struct {
		name  string
		setup func(ctx context.Context, m valuationMocks)
		want  string
	}{
		{
			name: "terrain",
			setup: func(ctx context.Context, m valuationMocks) {
				m.terrain.On("FindByDocumentID", ctx, int64(1)).Return(nil, dbErr)
			},
			want: "failed to read terrain record",
		},
		{
			name: "comparables",
			setup: func(ctx context.Context, m valuationMocks) {
				m.terrain.On("FindByDocumentID", ctx, int64(1)).Return(nil, nil)
				m.comparables.On("AverageLandValuePerM2", ctx, int64(1)).Return(nil, dbErr)
			},
			want: "failed to read comparables average",
		},
		{
			name: "constructions",
			setup: func(ctx context.Context, m valuationMocks) {
				m.terrain.On("FindByDocumentID", ctx, int64(1)).Return(nil, nil)
				m.comparables.On("AverageLandValuePerM2", ctx, int64(1)).Return(nil, nil)
				m.constructions.On("AverageTotalValue", ctx, int64(1)).Return(nil, dbErr)
			},
			want: "failed to read constructions average",
		},
		{
			name: "document",
			setup: func(ctx context.Context, m valuationMocks) {
				m.terrain.On("FindByDocumentID", ctx, int64(1)).Return(nil, nil)
				m.comparables.On("AverageLandValuePerM2", ctx, int64(1)).Return(nil, nil)
				m.constructions.On("AverageTotalValue", ctx, int64(1)).Return(nil, nil)
				m.documents.On("FindByID", ctx, int64(1)).Return(nil, dbErr)
			},
			want: "failed to read document area",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newValuationService()
			ctx := context.Background()
			tt.setup(ctx, m)

			summary, err := service.ComputeValuationSummary(ctx, 1)

			assert.Nil(t, summary)
			assert.ErrorIs(t, err, dbErr)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFinalizeAppraisal(t *testing.T) {
	t.Run("marks document", func(t *testing.T) {
		service, m := newValuationService()
		ctx := context.Background()
		m.documents.On("MarkAppraised", ctx, int64(4)).Return(true, nil)

		require.NoError(t, service.FinalizeAppraisal(ctx, 4))
		m.documents.AssertExpectations(t)
	})

	t.Run("unknown document", func(t *testing.T) {
		service, m := newValuationService()
		ctx := context.Background()
		m.documents.On("MarkAppraised", ctx, int64(4)).Return(false, nil)

		assert.ErrorIs(t, service.FinalizeAppraisal(ctx, 4), ErrDocumentNotFound)
	})

	t.Run("repository error", func(t *testing.T) {
		service, m := newValuationService()
		ctx := context.Background()
		m.documents.On("MarkAppraised", ctx, int64(4)).Return(false, errors.New("boom"))

		err := service.FinalizeAppraisal(ctx, 4)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrDocumentNotFound)
	})
}
