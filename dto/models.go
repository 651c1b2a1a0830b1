package dto

type TaxKind string

const (
	TaxPIS    TaxKind = "PIS"
	TaxCOFINS TaxKind = "COFINS"
	TaxIRPJ   TaxKind = "IRPJ"
	TaxCSLL   TaxKind = "CSLL"
	TaxIRRF   TaxKind = "IRRF"
	TaxISS    TaxKind = "ISS"
	TaxINSS   TaxKind = "INSS"
)

// WithholdingRecord holds the amounts withheld on one invoice page.
// ISS stays zero unless the page carried the "ISS Retido" flag.
type WithholdingRecord struct {
	PIS    float64 `json:"pis"`
	COFINS float64 `json:"cofins"`
	CSLL   float64 `json:"csll"`
	IRRF   float64 `json:"irrf"`
	INSS   float64 `json:"inss"`
	ISS    float64 `json:"iss"`
}

// TaxLineResult is the final figure for one tax: the gross amount due on the
// declared revenue, the total withheld on the invoices, and the net to pay.
// NetDue goes negative when more was withheld than is due.
type TaxLineResult struct {
	Tax           TaxKind `json:"tax"`
	Rate          float64 `json:"rate"`
	GrossDue      float64 `json:"gross_due"`
	TotalWithheld float64 `json:"total_withheld"`
	NetDue        float64 `json:"net_due"`
}

// CalculationSummary lists the tax lines in display order:
// PIS, COFINS, IRPJ, CSLL, ISS.
type CalculationSummary []TaxLineResult

// HistoryEntry is one stored analysis as shown on the history screen.
type HistoryEntry struct {
	ID           uint    `json:"id"`
	ProcessedAt  string  `json:"processed_at"`
	Filename     string  `json:"filename"`
	Revenue      float64 `json:"revenue"`
	PISNet       float64 `json:"pis_net"`
	COFINSNet    float64 `json:"cofins_net"`
	CSLLNet      float64 `json:"csll_net"`
	IRPJNet      float64 `json:"irpj_net"`
	ISSNet       float64 `json:"iss_net"`
	INSSWithheld float64 `json:"inss_withheld"`
}
