package service

import (
	"github.com/analisafiscal/retention-analyzer/dto"
)

// taxRates holds the nominal rates applied to the declared monthly revenue,
// in display order. INSS has no rate line: it is withheld at source and only
// reported back as a total.
var taxRates = []struct {
	Tax  dto.TaxKind
	Rate float64
}{
	{dto.TaxPIS, 0.0065},
	{dto.TaxCOFINS, 0.03},
	{dto.TaxIRPJ, 0.012},
	{dto.TaxCSLL, 0.0108},
	{dto.TaxISS, 0.05},
}

// CalculateTaxes nets the withheld totals out of the gross tax due on the
// declared revenue and returns one line per rated tax plus the INSS withheld
// total. Revenue validation is the caller's responsibility.
func CalculateTaxes(records []dto.WithholdingRecord, revenue float64) (dto.CalculationSummary, float64) {
	totals := make(map[dto.TaxKind]float64)
	for _, record := range records {
		totals[dto.TaxPIS] += record.PIS
		totals[dto.TaxCOFINS] += record.COFINS
		totals[dto.TaxCSLL] += record.CSLL
		totals[dto.TaxIRRF] += record.IRRF
		totals[dto.TaxINSS] += record.INSS
		totals[dto.TaxISS] += record.ISS
	}

	summary := make(dto.CalculationSummary, 0, len(taxRates))
	for _, entry := range taxRates {
		withheldKey := entry.Tax
		if entry.Tax == dto.TaxIRPJ {
			// Income tax withheld on invoices is reported as IRRF but
			// offsets the IRPJ liability.
			withheldKey = dto.TaxIRRF
		}

		gross := revenue * entry.Rate
		withheld := totals[withheldKey]
		summary = append(summary, dto.TaxLineResult{
			Tax:           entry.Tax,
			Rate:          entry.Rate,
			GrossDue:      gross,
			TotalWithheld: withheld,
			NetDue:        gross - withheld,
		})
	}

	return summary, totals[dto.TaxINSS]
}
