package main

import (
	"log"

	"github.com/analisafiscal/retention-analyzer/config"
	"github.com/analisafiscal/retention-analyzer/handler"
	"github.com/analisafiscal/retention-analyzer/repository"
	"github.com/analisafiscal/retention-analyzer/service"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// Open the analysis history database
	analysisRepository, err := repository.NewAnalysisRepository(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open analysis history database: %v", err)
	}

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	analysisService := service.NewAnalysisService(pdfProcessor, analysisRepository)

	// Initialize handler layer
	analysisHandler := handler.NewAnalysisHandler(analysisService)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory
	router.MaxMultipartMemory = cfg.MaxFileSize

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Fiscal Retention Analyzer",
		})
	})

	// API routes, behind the password gate when one is configured
	api := router.Group("/api/v1", handler.PasswordGate(cfg.AppPassword))
	{
		analysis := api.Group("/analysis")
		{
			analysis.POST("/analyze", analysisHandler.Analyze)
			analysis.GET("/history", analysisHandler.History)
		}
	}

	// Start server
	log.Printf("Starting Fiscal Retention Analyzer on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
