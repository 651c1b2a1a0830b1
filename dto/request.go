package dto

import (
	"errors"
	"mime/multipart"
	"strings"
)

// AnalysisRequest represents the incoming analysis request
type AnalysisRequest struct {
	File    *multipart.FileHeader `form:"file" binding:"required"`
	Revenue float64               `form:"revenue" binding:"required"`
}

// Validate performs basic validation on the request
func (r *AnalysisRequest) Validate() error {
	if r.File == nil {
		return errors.New("a PDF file is required")
	}
	if !strings.HasSuffix(strings.ToLower(r.File.Filename), ".pdf") {
		return errors.New("only PDF files are supported")
	}
	if r.Revenue <= 0 {
		return ErrInvalidRevenue
	}
	return nil
}
