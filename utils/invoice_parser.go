package utils

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/analisafiscal/retention-analyzer/dto"
)

// anchorMap maps each field key to the label printed on its own line in the
// NFS-e layout. The value of a field is always on the line below its label.
var anchorMap = map[string]string{
	"numero_nota":          "Número da NFS-e",
	"data_emissao":         "Data e Hora de Emissão da NFS-e",
	"cnpj_tomador":         "CPF/CNPJ/Documento",
	"razao_social_tomador": "Nome/Razão Social",
	"iss_retido_check":     "ISS Retido",
	"valor_iss":            "Total do ISS",
	"valor_pis":            "PIS",
	"valor_cofins":         "COFINS",
	"valor_csll":           "CSLL",
	"valor_irrf":           "IRRF",
	"valor_inss":           "INSS",
}

var currencyPattern = regexp.MustCompile(`[\d.,]+`)

// ExtractWithholdings scans the text of each page for the NFS-e label
// anchors and returns one record per page that carries any withholding.
// Pages with no matched anchors, or with all-zero amounts and no ISS
// retention flag, contribute nothing.
func ExtractWithholdings(pages []string) []dto.WithholdingRecord {
	var records []dto.WithholdingRecord

	for _, pageText := range pages {
		fields := scanPage(strings.Split(pageText, "\n"))

		pis := ParseCurrency(fields["valor_pis"])
		cofins := ParseCurrency(fields["valor_cofins"])
		csll := ParseCurrency(fields["valor_csll"])
		irrf := ParseCurrency(fields["valor_irrf"])
		inss := ParseCurrency(fields["valor_inss"])

		// The retention checkbox is rendered as text; "1" marks it checked.
		issRetido := strings.Contains(fields["iss_retido_check"], "1")
		iss := 0.0
		if issRetido {
			iss = ParseCurrency(fields["valor_iss"])
		}

		if pis > 0 || cofins > 0 || csll > 0 || irrf > 0 || inss > 0 || issRetido {
			records = append(records, dto.WithholdingRecord{
				PIS:    pis,
				COFINS: cofins,
				CSLL:   csll,
				IRRF:   irrf,
				INSS:   inss,
				ISS:    iss,
			})
		}
	}

	return records
}

// scanPage matches whole lines against the anchor labels, case- and
// whitespace-insensitively, and takes the following line as the raw value.
// A label repeated on the same page keeps the last value found.
func scanPage(lines []string) map[string]string {
	fields := make(map[string]string)

	for i, line := range lines {
		content := strings.ToLower(strings.TrimSpace(line))
		for key, anchor := range anchorMap {
			if content == strings.ToLower(strings.TrimSpace(anchor)) && i+1 < len(lines) {
				fields[key] = strings.TrimSpace(lines[i+1])
			}
		}
	}

	return fields
}

// ParseCurrency reads a Brazilian-formatted amount ("1.234,56") out of a raw
// token. Periods are thousands separators and the comma is the decimal mark.
// Missing or malformed values come back as 0 so that one bad field never
// aborts the document.
func ParseCurrency(text string) float64 {
	match := currencyPattern.FindString(text)
	if match == "" {
		return 0.0
	}

	normalized := strings.Replace(strings.ReplaceAll(match, ".", ""), ",", ".", 1)
	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0.0
	}

	return value
}
