package handler

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/analisafiscal/retention-analyzer/dto"
	"github.com/analisafiscal/retention-analyzer/service"

	"github.com/gin-gonic/gin"
)

type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
	}
}

// Analyze handles the POST /analysis/analyze endpoint
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	log.Println("Received analysis request")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "A PDF file is required", err)
		return
	}

	// A missing or malformed revenue field parses to 0 and fails validation.
	revenue, _ := strconv.ParseFloat(c.PostForm("revenue"), 64)

	request := &dto.AnalysisRequest{
		File:    fileHeader,
		Revenue: revenue,
	}
	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to open uploaded file", err)
		return
	}
	defer file.Close()

	pdfData, err := io.ReadAll(file)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to read uploaded file", err)
		return
	}

	response, err := h.analysisService.Analyze(fileHeader.Filename, pdfData, revenue)
	if err != nil {
		switch {
		case errors.Is(err, dto.ErrNoWithholdings):
			h.sendError(c, http.StatusUnprocessableEntity, "No invoice with withholdings was found in the document", err)
		case errors.Is(err, dto.ErrInvalidDocument):
			h.sendError(c, http.StatusBadRequest, "The file could not be read as a PDF", err)
		case errors.Is(err, dto.ErrInvalidRevenue):
			h.sendError(c, http.StatusBadRequest, dto.ErrInvalidRevenue.Error(), err)
		default:
			h.sendError(c, http.StatusInternalServerError, "Failed to analyze document", err)
		}
		return
	}

	log.Printf("Analysis completed for %s: %d record(s)", fileHeader.Filename, response.RecordCount)
	c.JSON(http.StatusOK, response)
}

// History handles the GET /analysis/history endpoint
func (h *AnalysisHandler) History(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	entries, err := h.analysisService.History(limit)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to load analysis history", err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// sendError sends a structured error response
func (h *AnalysisHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "ANALYSIS_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
