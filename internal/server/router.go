package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ZobayerAkib/AI-Invoice-Analyzer/internal/pipeline"
)

// NewRouter wires the analyzer behind the HTTP surface: the analyze
// endpoint, a health check, and a static mount of the working directory
// for the upload page.
func NewRouter(analyzer *pipeline.Analyzer, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{analyzer: analyzer, logger: logger}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", h.Health)
	r.POST("/analyze-invoice", h.AnalyzeInvoice)
	r.Static("/static", ".")

	return r
}
