package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/jaundice/internal/config"
	dbRedis "github.com/kailas-cloud/jaundice/internal/db/redis"
	"github.com/kailas-cloud/jaundice/internal/domain/text"
	"github.com/kailas-cloud/jaundice/internal/extractor"
	logpkg "github.com/kailas-cloud/jaundice/internal/logger"
	"github.com/kailas-cloud/jaundice/internal/metrics"
	"github.com/kailas-cloud/jaundice/internal/repository/dictionary"
	"github.com/kailas-cloud/jaundice/internal/repository/lemma"
	chiTransport "github.com/kailas-cloud/jaundice/internal/transport/chi"
	"github.com/kailas-cloud/jaundice/internal/transport/fetcher"
	analyzeuc "github.com/kailas-cloud/jaundice/internal/usecase/analyze"
	healthuc "github.com/kailas-cloud/jaundice/internal/usecase/health"
	"github.com/kailas-cloud/jaundice/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting jaundice API server",
		zap.String("version", version.String()),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("dictionary_source", cfg.Dictionary.Source),
		zap.Duration("fetch_timeout", cfg.Fetch.Timeout),
		zap.Duration("analysis_timeout", cfg.Analysis.Timeout),
		zap.Int("max_urls", cfg.Batch.MaxURLs),
	)

	// Register metrics explicitly (no init())
	metrics.RegisterHTTPMetrics()
	metrics.RegisterAnalysisMetrics()

	ctx := context.Background()

	// Normalizer: lowercase, optionally followed by a lemma table
	var normalizer text.Normalizer = text.NewLowercaseNormalizer()
	if cfg.Dictionary.LemmasFile != "" {
		lemmas, err := lemma.LoadFile(cfg.Dictionary.LemmasFile)
		if err != nil {
			logger.Fatal("Failed to load lemmas", zap.Error(err))
		}
		normalizer = text.NewDictionaryNormalizer(normalizer, lemmas)
		logger.Info("Lemmas loaded", zap.Int("forms", len(lemmas)))
	}

	// Charged-word dictionary
	var (
		src     dictionary.Source
		dbCheck healthuc.DBPinger
	)
	switch cfg.Dictionary.Source {
	case config.DictionaryRedis:
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Dictionary.RedisAddrs,
			Password: cfg.Dictionary.RedisPassword,
		})
		if err != nil {
			logger.Fatal("Failed to create redis store", zap.Error(err))
		}
		defer store.Close()

		readiness := time.Duration(cfg.Dictionary.ReadinessTimeout) * time.Second
		if err := store.WaitForReady(ctx, readiness); err != nil {
			logger.Fatal("Redis not ready", zap.Error(err))
		}
		logger.Info("Connected to redis")

		repo := dictionary.New(store, cfg.Dictionary.RedisKey)
		if cfg.Dictionary.Dir != "" {
			seeded, err := dictionary.SeedIfEmpty(ctx, repo, dictionary.NewFileSource(cfg.Dictionary.Dir))
			if err != nil {
				logger.Fatal("Failed to seed dictionary", zap.Error(err))
			}
			if seeded {
				logger.Info("Dictionary seeded from files",
					zap.String("dir", cfg.Dictionary.Dir),
					zap.String("key", repo.Key()),
				)
			}
		}
		src = repo
		dbCheck = store
	default:
		src = dictionary.NewFileSource(cfg.Dictionary.Dir)
	}

	chargedWords, err := dictionary.Load(ctx, src, normalizer)
	if err != nil {
		logger.Fatal("Failed to load charged words", zap.Error(err))
	}
	logger.Info("Charged words loaded", zap.Int("words", chargedWords.Len()))

	// Pipeline stages, shared by every request
	f := fetcher.New(fetcher.Config{
		Timeout:       cfg.Fetch.Timeout,
		UserAgent:     cfg.Fetch.UserAgent,
		MaxBodyBytes:  cfg.Fetch.MaxBodyBytes,
		MaxRedirects:  cfg.Fetch.MaxRedirects,
		MaxConcurrent: cfg.Fetch.MaxConcurrent,
		PerHostRPS:    cfg.Fetch.PerHostRPS,
	})
	registry := extractor.NewDefaultRegistry(cfg.Extractors.GenericHosts...)
	logger.Info("Extractors registered", zap.Strings("hosts", registry.Hosts()))

	tokenizer := text.NewTokenizer(normalizer,
		text.WithYieldEvery(cfg.Analysis.YieldEvery),
		text.WithKeepShort(cfg.Analysis.KeepShort...),
	)

	// Create use case services
	pipeline := analyzeuc.NewPipeline(f, registry, tokenizer, chargedWords).
		WithAnalysisTimeout(cfg.Analysis.Timeout)
	analyzeSvc := analyzeuc.New(pipeline).
		WithLimits(cfg.Batch.MaxURLs, cfg.Batch.MaxConcurrency)
	healthSvc := healthuc.New(chargedWords, dbCheck)

	// Create chi server
	server := chiTransport.NewServer(analyzeSvc, healthSvc, logger)
	handler := chiTransport.NewRouter(server, chiTransport.RouterOptions{
		APIKeys: cfg.Auth.APIKeys,
		Logger:  logger,
	})

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}
