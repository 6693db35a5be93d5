package models

import (
	"time"
)

// Construction is a building or improvement on the appraised parcel.
type Construction struct {
	CreatedAt        time.Time `gorm:"column:created_at" json:"createdAt"`
	Description      *string   `gorm:"type:text;column:description" json:"description,omitempty"`
	PhotoURL         *string   `gorm:"type:text;column:photo_url" json:"photoUrl,omitempty"`
	CreatedBy        *string   `gorm:"size:64;column:created_by" json:"createdBy,omitempty"`
	Kind             string    `gorm:"size:64;not null;column:kind" json:"kind"`
	AreaM2           float64   `gorm:"type:numeric(12,2);column:area_m2" json:"areaM2"`
	ValuePerM2       float64   `gorm:"type:numeric(14,2);column:value_per_m2" json:"valuePerM2"`
	AdjustmentFactor float64   `gorm:"type:numeric(10,4);column:adjustment_factor" json:"adjustmentFactor"`
	TotalValue       float64   `gorm:"type:numeric(14,2);column:total_value" json:"totalValue"`
	ID               int64     `gorm:"primaryKey" json:"id"`
	DocumentID       int64     `gorm:"index;not null;column:document_id" json:"documentId"`
	AgeYears         int       `gorm:"column:age_years" json:"ageYears"`
}

// TableName matches the table created by the schema bootstrap.
func (Construction) TableName() string {
	return "constructions"
}
