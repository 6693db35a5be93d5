package models

// ValuationSummary is the best-effort estimate for a document. It is derived on
// every request and never persisted.
type ValuationSummary struct {
	AvgLandValuePerM2    float64 `json:"avgLandValuePerM2"`
	AvgConstructionValue float64 `json:"avgConstructionValue"`
	DocumentAreaM2       float64 `json:"documentAreaM2"`
	FinalFactor          float64 `json:"finalFactor"`
	EstimatedTotal       float64 `json:"estimatedTotal"`
	DocumentID           int64   `json:"documentId"`
}
