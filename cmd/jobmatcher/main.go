package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/config"
	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/db"
	dbRedis "github.com/helendjordjevic/NAISProject-JobMatcher/internal/db/redis"
	logpkg "github.com/helendjordjevic/NAISProject-JobMatcher/internal/logger"
	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/metrics"
	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/query"
	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/repository/embcache"
	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/repository/textstore"
	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/repository/vectorstore"
	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/transport/httpapi"
	openaiEmb "github.com/helendjordjevic/NAISProject-JobMatcher/internal/transport/openai"
	candidateuc "github.com/helendjordjevic/NAISProject-JobMatcher/internal/usecase/candidate"
	healthuc "github.com/helendjordjevic/NAISProject-JobMatcher/internal/usecase/health"
	jobaduc "github.com/helendjordjevic/NAISProject-JobMatcher/internal/usecase/jobad"
	reportuc "github.com/helendjordjevic/NAISProject-JobMatcher/internal/usecase/report"
	"github.com/helendjordjevic/NAISProject-JobMatcher/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting job matcher API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("text_store_addrs", cfg.TextStore.Addrs),
		zap.Strings("vector_store_addrs", cfg.VectorStore.Addrs),
	)

	ctx := context.Background()

	textStore := mustStore(ctx, "text store", cfg.TextStore, logger)
	defer textStore.Close()

	vectorStore := mustStore(ctx, "vector store", cfg.VectorStore, logger)
	defer vectorStore.Close()

	// Register metrics explicitly (no init())
	metrics.RegisterEmbeddingMetrics()
	metrics.RegisterSagaMetrics()

	// Embedder chain: OpenAI gateway wrapped in a vector-store-backed cache.
	baseEmbedder := openaiEmb.NewEmbedder(&openaiEmb.Config{
		APIKey:     cfg.Embedding.APIKey,
		BaseURL:    cfg.Embedding.BaseURL,
		Model:      cfg.Embedding.Model,
		Dimensions: cfg.Embedding.Dimensions,
		Provider:   cfg.Embedding.Provider,
		Logger:     logger,
	})
	embedder := embcache.New(
		baseEmbedder,
		vectorStore,
		time.Duration(cfg.Embedding.CacheTTLSec)*time.Second,
		metrics.EmbeddingCacheTotal,
		logger,
	)
	logger.Info("Embedder created",
		zap.String("provider", cfg.Embedding.Provider),
		zap.String("model", cfg.Embedding.Model),
		zap.Int("dimensions", cfg.Embedding.Dimensions),
	)

	// Repositories
	textRepo := textstore.New(textStore)
	if err := textRepo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("Failed to create text store indexes", zap.Error(err))
	}
	vectorRepo := vectorstore.New(vectorStore, cfg.Embedding.Dimensions)
	if err := vectorRepo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("Failed to create vector store indexes", zap.Error(err))
	}

	// Use case services
	builder := query.NewVectorBuilder(embedder, cfg.Embedding.Dimensions)
	saga := jobaduc.NewSaga(textRepo, vectorRepo, embedder, metrics.JobAdSagaOutcomes, logger)
	jobAdSvc := jobaduc.New(saga, textRepo, vectorRepo, builder, logger)
	candidateSvc := candidateuc.New(textRepo, vectorRepo, embedder, builder, logger)
	reportSvc := reportuc.New(textRepo, vectorRepo, builder)
	healthSvc := healthuc.New(textStore, vectorStore, baseEmbedder)

	// HTTP server
	server := httpapi.NewServer(jobAdSvc, candidateSvc, reportSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(httpapi.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
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

// mustStore connects one Redis-backed store and waits for it to respond.
func mustStore(ctx context.Context, name string, cfg config.StoreConfig, logger *zap.Logger) db.Store {
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Addrs,
		Username: cfg.Username,
		Password: cfg.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create store", zap.String("store", name), zap.Error(err))
	}
	if err := store.WaitForReady(ctx, time.Duration(cfg.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Store not ready", zap.String("store", name), zap.Error(err))
	}
	logger.Info("Connected to store", zap.String("store", name))
	return store
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
