package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ZobayerAkib/AI-Invoice-Analyzer/constants"
	"github.com/ZobayerAkib/AI-Invoice-Analyzer/internal/config"
	"github.com/ZobayerAkib/AI-Invoice-Analyzer/internal/extract"
	"github.com/ZobayerAkib/AI-Invoice-Analyzer/internal/llm/openai"
	"github.com/ZobayerAkib/AI-Invoice-Analyzer/internal/pipeline"
)

// invoicectl runs the analyze pipeline once against a local file and
// prints the resulting record JSON to stdout.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		logger.Error("usage: invoicectl <file.pdf|file.png|file.jpg>")
		os.Exit(2)
	}
	path := os.Args[1]

	contentType := constants.MapExtToContentType(filepath.Ext(path))
	if contentType == "" {
		logger.Error("unsupported file extension", "path", path)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config", "error", err)
		os.Exit(2)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("read file", "path", path, "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	chat := openai.NewClient(openai.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
	}, logger)
	analyzer := pipeline.NewAnalyzer(chat, extract.NewPDFExtractor(logger), logger)

	rec, err := analyzer.Analyze(ctx, contentType, data)
	if err != nil {
		logger.Error("analyze failed", "path", path, "error", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		logger.Error("encode record", "error", err)
		os.Exit(1)
	}
	os.Stdout.Write(append(out, '\n'))
}
