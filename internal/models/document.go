package models

import (
	"time"
)

// Area origins recorded on a legal document.
const (
	AreaOriginDeclared   = "declared"
	AreaOriginCalculated = "calculated"
)

// AreaMethodTwoTriangles is the "box of two triangles" area method.
const AreaMethodTwoTriangles = "two_triangle_box"

// LegalDocument is the header of a legal document (certification or deed) under appraisal.
// Only the fields the valuation workflow touches are mapped.
type LegalDocument struct {
	CreatedAt  time.Time   `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt  time.Time   `gorm:"column:updated_at" json:"updatedAt"`
	CertDate   *time.Time  `gorm:"column:cert_date" json:"certDate,omitempty"`
	Owner      *string     `gorm:"size:255;column:owner" json:"owner,omitempty"`
	Address    *string     `gorm:"type:text;column:address" json:"address,omitempty"`
	DeedNumber *string     `gorm:"size:64;column:deed_number" json:"deedNumber,omitempty"`
	AreaM2     *float64    `gorm:"type:numeric(12,2);column:area_m2" json:"areaM2,omitempty"`
	AreaOrigin *string     `gorm:"size:32;column:area_origin" json:"areaOrigin,omitempty"`
	AreaMethod *string     `gorm:"size:32;column:area_method" json:"areaMethod,omitempty"`
	AreaSource *AreaSource `gorm:"type:jsonb;column:area_source" json:"areaSource,omitempty"`
	Kind       string      `gorm:"size:32;not null;column:kind" json:"kind"`
	Status     string      `gorm:"size:32;not null;column:status" json:"status"`
	ID         int64       `gorm:"primaryKey" json:"id"`
	Appraised  bool        `gorm:"column:appraised" json:"appraised"`
}

// TableName matches the table created by the schema bootstrap.
func (LegalDocument) TableName() string {
	return "legal_documents"
}

// AreaSource holds the measurements an area calculation was derived from.
type AreaSource struct {
	DiagonalM float64 `json:"diagonal_m"`
	Front1M   float64 `json:"front_1_m"`
	Depth1M   float64 `json:"depth_1_m"`
	Front2M   float64 `json:"front_2_m"`
	Depth2M   float64 `json:"depth_2_m"`
}
