package dto

import "errors"

// Custom errors
var (
	ErrInvalidRevenue  = errors.New("revenue must be greater than zero")
	ErrNoWithholdings  = errors.New("no invoice with withholdings found in the document")
	ErrInvalidDocument = errors.New("the file could not be read as a PDF")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// AnalysisResponse is the final response structure
type AnalysisResponse struct {
	Filename     string             `json:"filename"`
	Revenue      float64            `json:"revenue"`
	Summary      CalculationSummary `json:"summary"`
	INSSWithheld float64            `json:"inss_withheld"`
	RecordCount  int                `json:"record_count"`
	PageCount    int                `json:"page_count"`
	ProcessedAt  string             `json:"processed_at"`
}
