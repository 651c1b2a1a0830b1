package service

import (
	"testing"

	"github.com/analisafiscal/retention-analyzer/dto"
	"github.com/stretchr/testify/assert"
)

func TestCalculateTaxes(t *testing.T) {
	records := []dto.WithholdingRecord{
		{PIS: 10, COFINS: 20, CSLL: 5, IRRF: 15, INSS: 8, ISS: 50},
	}

	summary, inss := CalculateTaxes(records, 100000.00)

	assert.Len(t, summary, 5)
	assert.Equal(t, []dto.TaxKind{dto.TaxPIS, dto.TaxCOFINS, dto.TaxIRPJ, dto.TaxCSLL, dto.TaxISS},
		[]dto.TaxKind{summary[0].Tax, summary[1].Tax, summary[2].Tax, summary[3].Tax, summary[4].Tax})

	assert.InDelta(t, 650.00, summary[0].GrossDue, 0.001)
	assert.InDelta(t, 640.00, summary[0].NetDue, 0.001)

	assert.InDelta(t, 3000.00, summary[1].GrossDue, 0.001)
	assert.InDelta(t, 2980.00, summary[1].NetDue, 0.001)

	// IRPJ is offset by the IRRF withholdings.
	assert.InDelta(t, 1200.00, summary[2].GrossDue, 0.001)
	assert.InDelta(t, 15.00, summary[2].TotalWithheld, 0.001)
	assert.InDelta(t, 1185.00, summary[2].NetDue, 0.001)

	assert.InDelta(t, 1080.00, summary[3].GrossDue, 0.001)
	assert.InDelta(t, 1075.00, summary[3].NetDue, 0.001)

	assert.InDelta(t, 5000.00, summary[4].GrossDue, 0.001)
	assert.InDelta(t, 4950.00, summary[4].NetDue, 0.001)

	assert.InDelta(t, 8.00, inss, 0.001)
}

func TestCalculateTaxesNoRecords(t *testing.T) {
	summary, inss := CalculateTaxes(nil, 1000.00)

	assert.Len(t, summary, 5)
	for _, line := range summary {
		assert.InDelta(t, 1000.00*line.Rate, line.GrossDue, 0.001)
		assert.Equal(t, 0.0, line.TotalWithheld)
		assert.InDelta(t, line.GrossDue, line.NetDue, 0.001)
	}
	assert.Equal(t, 0.0, inss)
}

func TestCalculateTaxesSumsAreOrderIndependent(t *testing.T) {
	forward := []dto.WithholdingRecord{{PIS: 10}, {PIS: 5}}
	backward := []dto.WithholdingRecord{{PIS: 5}, {PIS: 10}}

	forwardSummary, _ := CalculateTaxes(forward, 1000.00)
	backwardSummary, _ := CalculateTaxes(backward, 1000.00)

	assert.Equal(t, 15.00, forwardSummary[0].TotalWithheld)
	assert.Equal(t, forwardSummary, backwardSummary)
}

func TestCalculateTaxesOverWithheldGoesNegative(t *testing.T) {
	records := []dto.WithholdingRecord{{PIS: 100}}

	summary, _ := CalculateTaxes(records, 1000.00)

	assert.True(t, summary[0].NetDue < 0)
}
