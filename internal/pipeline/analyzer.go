package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ZobayerAkib/AI-Invoice-Analyzer/constants"
	"github.com/ZobayerAkib/AI-Invoice-Analyzer/internal/extract"
	"github.com/ZobayerAkib/AI-Invoice-Analyzer/internal/invoice"
	"github.com/ZobayerAkib/AI-Invoice-Analyzer/internal/llm"
)

// Sampling is pinned for determinism on both call shapes.
const temperature float32 = 0

// Analyzer runs the full per-request sequence: dispatch on content type,
// extract or encode, query the model, validate the output, normalize.
// It is stateless across calls; every request flows through sequentially.
type Analyzer struct {
	Chat llm.ChatClient
	Text extract.TextExtractor
	Log  *slog.Logger
}

func NewAnalyzer(chat llm.ChatClient, text extract.TextExtractor, log *slog.Logger) *Analyzer {
	if log == nil {
		log = slog.Default()
	}
	return &Analyzer{Chat: chat, Text: text, Log: log}
}

// Analyze processes one uploaded document and returns the normalized record.
// Failures are either one of the client-tier sentinels in errors.go or a
// wrapped server-tier error.
func (a *Analyzer) Analyze(ctx context.Context, contentType string, data []byte) (invoice.Record, error) {
	start := time.Now()

	format := constants.MapContentTypeToFormat(contentType)
	if format == "" {
		return invoice.Record{}, ErrUnsupportedContentType
	}

	var messages []llm.Message
	switch format {
	case constants.PDF:
		res, err := a.Text.Extract(ctx, data)
		if err != nil {
			return invoice.Record{}, fmt.Errorf("extract pdf text: %w", err)
		}
		if res.Text == "" {
			return invoice.Record{}, ErrNoExtractableText
		}
		messages = llm.BuildTextMessages(res.Text)
	case constants.IMAGE:
		messages = llm.BuildImageMessages(contentType, data)
	}

	content, err := a.Chat.Complete(ctx, llm.ChatRequest{
		Messages:    messages,
		Temperature: temperature,
	})
	if err != nil {
		return invoice.Record{}, fmt.Errorf("model call: %w", err)
	}

	raw := []byte(content)
	if err := llm.ValidateInvoiceJSON(raw); err != nil {
		return invoice.Record{}, fmt.Errorf("model output: %w", err)
	}

	rec, err := invoice.Decode(raw)
	if err != nil {
		return invoice.Record{}, err
	}
	rec = invoice.Normalize(rec)

	a.Log.Info("analyze.done",
		"format", format,
		"input_bytes", len(data),
		"total", rec.TotalAmount.String(),
		"valid", rec.Valid,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rec, nil
}
