package models

import (
	"time"
)

// Comparable is a market reference property used to price land for a document.
type Comparable struct {
	CreatedAt          time.Time `gorm:"column:created_at" json:"createdAt"`
	PhotoURL           *string   `gorm:"type:text;column:photo_url" json:"photoUrl,omitempty"`
	CreatedBy          *string   `gorm:"size:64;column:created_by" json:"createdBy,omitempty"`
	SourceLink         string    `gorm:"type:text;not null;column:source_link" json:"sourceLink"`
	TotalValue         float64   `gorm:"type:numeric(14,2);column:total_value" json:"totalValue"`
	LandAreaM2         float64   `gorm:"type:numeric(12,2);column:land_area_m2" json:"landAreaM2"`
	BuiltAreaM2        float64   `gorm:"type:numeric(12,2);column:built_area_m2" json:"builtAreaM2"`
	ConstructionValue  float64   `gorm:"type:numeric(14,2);column:construction_value" json:"constructionValue"`
	LandValuePerAreaM2 float64   `gorm:"type:numeric(14,2);column:land_value_per_m2" json:"landValuePerM2"`
	ID                 int64     `gorm:"primaryKey" json:"id"`
	DocumentID         int64     `gorm:"index;not null;column:document_id" json:"documentId"`
}

// TableName matches the table created by the schema bootstrap.
func (Comparable) TableName() string {
	return "comparables"
}
