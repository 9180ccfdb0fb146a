package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ZobayerAkib/AI-Invoice-Analyzer/internal/pipeline"
)

type Handler struct {
	analyzer *pipeline.Analyzer
	logger   *zap.Logger
}

// Health reports that the service is up.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "AI Invoice Analyzer running"})
}

// AnalyzeInvoice accepts one multipart file upload, runs the extraction
// pipeline and returns the normalized invoice record. Client-tier failures
// (bad content type, unreadable PDF) come back as 400 with their fixed
// message; everything else is a 500 carrying the failure message.
func (h *Handler) AnalyzeInvoice(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.String(http.StatusBadRequest, "file is required")
		return
	}
	contentType := fh.Header.Get("Content-Type")

	f, err := fh.Open()
	if err != nil {
		h.logger.Warn("open upload failed", zap.Error(err))
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		h.logger.Warn("read upload failed", zap.Error(err))
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	rec, err := h.analyzer.Analyze(c.Request.Context(), contentType, data)
	if err != nil {
		if pipeline.IsClientError(err) {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Warn("analyze failed",
			zap.String("content_type", contentType),
			zap.Int("bytes", len(data)),
			zap.Error(err),
		)
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, rec)
}
