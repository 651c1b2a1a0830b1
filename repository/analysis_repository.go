package repository

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/analisafiscal/retention-analyzer/dto"
)

// Analysis is one stored pipeline run: the declared revenue and the net
// amount due per tax, plus the informational INSS withheld total.
type Analysis struct {
	gorm.Model
	ProcessedAt  time.Time
	Filename     string
	Revenue      float64
	PISNet       float64
	COFINSNet    float64
	CSLLNet      float64
	IRPJNet      float64
	ISSNet       float64
	INSSWithheld float64
}

type AnalysisRepository struct {
	db *gorm.DB
}

// NewAnalysisRepository opens (or creates) the sqlite history database and
// migrates the schema.
func NewAnalysisRepository(databasePath string) (*AnalysisRepository, error) {
	db, err := gorm.Open(sqlite.Open(databasePath), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&Analysis{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &AnalysisRepository{db: db}, nil
}

func (r *AnalysisRepository) Save(analysis *Analysis) error {
	return r.db.Create(analysis).Error
}

// ListRecent returns the latest analyses, newest first.
func (r *AnalysisRepository) ListRecent(limit int) ([]Analysis, error) {
	var analyses []Analysis
	err := r.db.Order("id desc").Limit(limit).Find(&analyses).Error
	return analyses, err
}

// FromSummary flattens a calculation summary into one history row.
func FromSummary(processedAt time.Time, filename string, revenue float64, summary dto.CalculationSummary, inssWithheld float64) *Analysis {
	analysis := &Analysis{
		ProcessedAt:  processedAt,
		Filename:     filename,
		Revenue:      revenue,
		INSSWithheld: inssWithheld,
	}

	for _, line := range summary {
		switch line.Tax {
		case dto.TaxPIS:
			analysis.PISNet = line.NetDue
		case dto.TaxCOFINS:
			analysis.COFINSNet = line.NetDue
		case dto.TaxCSLL:
			analysis.CSLLNet = line.NetDue
		case dto.TaxIRPJ:
			analysis.IRPJNet = line.NetDue
		case dto.TaxISS:
			analysis.ISSNet = line.NetDue
		}
	}

	return analysis
}

// ToHistoryEntry converts a stored row into its API representation.
func (a Analysis) ToHistoryEntry() dto.HistoryEntry {
	return dto.HistoryEntry{
		ID:           a.ID,
		ProcessedAt:  a.ProcessedAt.Format("2006-01-02 15:04"),
		Filename:     a.Filename,
		Revenue:      a.Revenue,
		PISNet:       a.PISNet,
		COFINSNet:    a.COFINSNet,
		CSLLNet:      a.CSLLNet,
		IRPJNet:      a.IRPJNet,
		ISSNet:       a.ISSNet,
		INSSWithheld: a.INSSWithheld,
	}
}
