package service

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

type PDFProcessor interface {
	Validate(pdfData []byte) (int, error)
	ExtractPages(pdfData []byte) ([]string, error)
}

type pdfProcessor struct{}

func NewPDFProcessor() PDFProcessor {
	return &pdfProcessor{}
}

// Validate checks that the bytes are a readable PDF and returns the page count.
func (p *pdfProcessor) Validate(pdfData []byte) (int, error) {
	conf := model.NewDefaultConfiguration()

	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(pdfData), conf)
	if err != nil {
		return 0, fmt.Errorf("failed to read and validate PDF: %w", err)
	}

	return ctx.PageCount, nil
}

// ExtractPages returns the text of each page, one entry per page, with rows
// separated by newlines in reading order. Pages with no readable content
// come back as empty strings so page numbering stays intact.
func (p *pdfProcessor) ExtractPages(pdfData []byte) ([]string, error) {
	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return nil, err
	}

	totalPage := r.NumPage()
	pages := make([]string, 0, totalPage)

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		var textBuilder bytes.Buffer
		rows, _ := page.GetTextByRow()
		for _, row := range rows {
			for _, word := range row.Content {
				textBuilder.WriteString(word.S)
			}
			textBuilder.WriteString("\n")
		}
		pages = append(pages, textBuilder.String())
	}

	return pages, nil
}
