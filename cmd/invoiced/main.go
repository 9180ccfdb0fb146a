package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/ZobayerAkib/AI-Invoice-Analyzer/internal/config"
	"github.com/ZobayerAkib/AI-Invoice-Analyzer/internal/extract"
	"github.com/ZobayerAkib/AI-Invoice-Analyzer/internal/llm/openai"
	"github.com/ZobayerAkib/AI-Invoice-Analyzer/internal/pipeline"
	"github.com/ZobayerAkib/AI-Invoice-Analyzer/internal/server"
)

func main() {
	// Logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	// Env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	chat := openai.NewClient(openai.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
	}, slogger)
	analyzer := pipeline.NewAnalyzer(chat, extract.NewPDFExtractor(slogger), slogger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server.NewRouter(analyzer, logger),
	}

	go func() {
		log.Infof("HTTP serving on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warnf("shutdown: %v", err)
	}
	fmt.Println("stopped.")
}
