package models

import (
	"time"
)

// DocumentTerrainRecord is the persisted factor computation for one legal document.
// There is exactly one row per document; recomputation overwrites it.
type DocumentTerrainRecord struct {
	CreatedAt          time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt          time.Time `gorm:"column:updated_at" json:"updatedAt"`
	InteriorDistanceM  *float64  `gorm:"type:numeric(10,2);column:interior_distance_m" json:"interiorDistanceM,omitempty"`
	Position           string    `gorm:"size:32;not null;column:position" json:"position"`
	Shape              string    `gorm:"size:32;not null;column:shape" json:"shape"`
	ElevationDirection string    `gorm:"size:16;not null;column:elevation_direction" json:"elevationDirection"`
	CreatedBy          string    `gorm:"size:64;column:created_by" json:"createdBy"`
	UpdatedBy          string    `gorm:"size:64;column:updated_by" json:"updatedBy"`
	Trace              Trace     `gorm:"type:jsonb;not null;column:trace" json:"trace"`
	FrontageM          float64   `gorm:"type:numeric(10,2);column:frontage_m" json:"frontageM"`
	DepthM             float64   `gorm:"type:numeric(10,2);column:depth_m" json:"depthM"`
	SlopePct           float64   `gorm:"type:numeric(6,2);column:slope_pct" json:"slopePct"`
	ElevationM         float64   `gorm:"type:numeric(6,2);column:elevation_m" json:"elevationM"`
	FactorPosition     float64   `gorm:"type:numeric(10,4);column:factor_position" json:"factorPosition"`
	FactorFrontage     float64   `gorm:"type:numeric(10,4);column:factor_frontage" json:"factorFrontage"`
	FactorDepth        float64   `gorm:"type:numeric(10,4);column:factor_depth" json:"factorDepth"`
	FactorExtension    float64   `gorm:"type:numeric(10,4);column:factor_extension" json:"factorExtension"`
	FactorShape        float64   `gorm:"type:numeric(10,4);column:factor_shape" json:"factorShape"`
	FactorSlope        float64   `gorm:"type:numeric(10,4);column:factor_slope" json:"factorSlope"`
	FactorElevation    float64   `gorm:"type:numeric(10,4);column:factor_elevation" json:"factorElevation"`
	FinalFactor        float64   `gorm:"type:numeric(10,3);column:final_factor" json:"finalFactor"`
	DocumentID         int64     `gorm:"primaryKey;column:document_id" json:"documentId"`
}

// TableName matches the table created by the schema bootstrap.
func (DocumentTerrainRecord) TableName() string {
	return "document_terrain"
}
