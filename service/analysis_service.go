package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/analisafiscal/retention-analyzer/dto"
	"github.com/analisafiscal/retention-analyzer/repository"
	"github.com/analisafiscal/retention-analyzer/utils"
)

// AnalysisStore persists finished analyses for the history screen.
type AnalysisStore interface {
	Save(analysis *repository.Analysis) error
	ListRecent(limit int) ([]repository.Analysis, error)
}

type AnalysisService struct {
	pdfProcessor PDFProcessor
	store        AnalysisStore
	results      *gocache.Cache
}

func NewAnalysisService(pdfProcessor PDFProcessor, store AnalysisStore) *AnalysisService {
	return &AnalysisService{
		pdfProcessor: pdfProcessor,
		store:        store,
		results:      gocache.New(30*time.Minute, 10*time.Minute),
	}
}

// Analyze runs the extraction and calculation pipeline over one uploaded
// document and records the result in the history store. Repeated uploads of
// the same bytes with the same revenue are served from an in-process cache.
func (s *AnalysisService) Analyze(filename string, pdfData []byte, revenue float64) (*dto.AnalysisResponse, error) {
	if revenue <= 0 {
		return nil, dto.ErrInvalidRevenue
	}

	cacheKey := resultKey(pdfData, revenue)
	if cached, found := s.results.Get(cacheKey); found {
		log.Printf("Returning cached analysis for %s", filename)
		return cached.(*dto.AnalysisResponse), nil
	}

	pageCount, err := s.pdfProcessor.Validate(pdfData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInvalidDocument, err)
	}

	pages, err := s.pdfProcessor.ExtractPages(pdfData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInvalidDocument, err)
	}

	records := utils.ExtractWithholdings(pages)
	if len(records) == 0 {
		return nil, dto.ErrNoWithholdings
	}
	log.Printf("Found %d invoice(s) with withholdings in %s (%d pages)", len(records), filename, pageCount)

	summary, inssWithheld := CalculateTaxes(records, revenue)

	processedAt := time.Now()
	if err := s.store.Save(repository.FromSummary(processedAt, filename, revenue, summary, inssWithheld)); err != nil {
		return nil, fmt.Errorf("failed to record analysis for %s: %w", filename, err)
	}

	response := &dto.AnalysisResponse{
		Filename:     filename,
		Revenue:      revenue,
		Summary:      summary,
		INSSWithheld: inssWithheld,
		RecordCount:  len(records),
		PageCount:    pageCount,
		ProcessedAt:  processedAt.Format(time.RFC3339),
	}
	s.results.Set(cacheKey, response, gocache.DefaultExpiration)

	return response, nil
}

// History returns the most recent stored analyses, newest first.
func (s *AnalysisService) History(limit int) ([]dto.HistoryEntry, error) {
	analyses, err := s.store.ListRecent(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	entries := make([]dto.HistoryEntry, 0, len(analyses))
	for _, analysis := range analyses {
		entries = append(entries, analysis.ToHistoryEntry())
	}
	return entries, nil
}

func resultKey(pdfData []byte, revenue float64) string {
	hash := sha256.Sum256(pdfData)
	return fmt.Sprintf("%s:%.2f", hex.EncodeToString(hash[:]), revenue)
}
