package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/adscout/internal/catalog"
	"github.com/kailas-cloud/adscout/internal/config"
	"github.com/kailas-cloud/adscout/internal/domain"
	"github.com/kailas-cloud/adscout/internal/insight"
	logpkg "github.com/kailas-cloud/adscout/internal/logger"
	"github.com/kailas-cloud/adscout/internal/metrics"
	"github.com/kailas-cloud/adscout/internal/retrieval"
	"github.com/kailas-cloud/adscout/internal/retrieval/embedding"
	"github.com/kailas-cloud/adscout/internal/retrieval/lexical"
	"github.com/kailas-cloud/adscout/internal/telemetry"
	chiTransport "github.com/kailas-cloud/adscout/internal/transport/chi"
	"github.com/kailas-cloud/adscout/internal/transport/gemini"
	openaiTransport "github.com/kailas-cloud/adscout/internal/transport/openai"
	"github.com/kailas-cloud/adscout/internal/version"
	healthuc "github.com/kailas-cloud/adscout/internal/usecase/health"
	insightuc "github.com/kailas-cloud/adscout/internal/usecase/insight"
	searchuc "github.com/kailas-cloud/adscout/internal/usecase/search"
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

	logger.Info("Starting adscout API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("catalog_path", cfg.Catalog.ArtifactPath),
	)

	// Catalog is a boot precondition: no titles, no service.
	store, err := catalog.Load(cfg.Catalog.ArtifactPath)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}
	logger.Info("Catalog loaded",
		zap.Int("titles", store.Count()),
		zap.String("data_hash", store.Hash()),
	)

	// Register domain metrics explicitly (no init())
	metrics.RegisterCoreMetrics()

	// Lexical index always exists; it is the fallback of last resort.
	docs := make([]string, store.Count())
	for i, t := range store.All() {
		docs[i] = t.Combined
	}
	lexIndex := lexical.New(docs, store.Hash())

	// Embedding engine is chosen at startup only when the encoder is
	// configured AND the precomputed artifact matches the catalog.
	var encoder *openaiTransport.Encoder
	var primary retrieval.Engine
	if cfg.Encoder.APIKey != "" {
		encoder = openaiTransport.NewEncoder(openaiTransport.EncoderConfig{
			APIKey:     cfg.Encoder.APIKey,
			BaseURL:    cfg.Encoder.BaseURL,
			Model:      cfg.Encoder.Model,
			Dimensions: cfg.Encoder.Dimensions,
			Logger:     logger,
		})

		embIndex, embErr := embedding.Load(
			cfg.Catalog.EmbeddingsPath,
			cfg.Catalog.EmbeddingsMetaPath,
			encoder,
			store.Hash(),
			store.Count(),
		)
		switch {
		case embErr == nil:
			primary = embIndex
			logger.Info("Embedding engine ready",
				zap.String("model", embIndex.Info().Model),
				zap.Int("rows", store.Count()),
			)
		case errors.Is(embErr, domain.ErrArtifactStale):
			logger.Warn("Embedding artifact stale, serving lexical only", zap.Error(embErr))
		default:
			logger.Warn("Embedding artifact unavailable, serving lexical only", zap.Error(embErr))
		}
	} else {
		logger.Info("Encoder not configured, serving lexical only")
	}
	router := retrieval.NewRouter(primary, lexIndex, logger)
	logger.Info("Retrieval engine selected", zap.String("engine", string(router.Info().Type)))

	// Telemetry: Redis when configured, in-memory otherwise.
	var recorder telemetry.Recorder
	if len(cfg.Telemetry.Addrs) > 0 {
		redisRec, redisErr := telemetry.NewRedis(telemetry.RedisConfig{
			Addrs:     cfg.Telemetry.Addrs,
			Password:  cfg.Telemetry.Password,
			KeyPrefix: cfg.Telemetry.KeyPrefix,
		}, logger)
		if redisErr != nil {
			logger.Warn("Redis telemetry unavailable, using in-memory recorder", zap.Error(redisErr))
			recorder = telemetry.NewMemory()
		} else {
			defer redisRec.Close()
			recorder = redisRec
			logger.Info("Telemetry connected", zap.Strings("addrs", cfg.Telemetry.Addrs))
		}
	} else {
		recorder = telemetry.NewMemory()
	}

	// Provider chain in priority order: gateway, gemini, openai.
	// Unconfigured providers are skipped, not attempted.
	providers := buildProviders(cfg.Insights, logger)
	logger.Info("Insight providers configured", zap.Int("count", len(providers)))

	orchestrator := insight.NewOrchestrator(
		providers,
		time.Duration(cfg.Insights.ProviderTimeoutSec)*time.Second,
		logger,
	)

	// Use case services
	searchSvc := searchuc.New(store, router, recorder, cfg.Search.MaxTopK, logger)
	insightSvc := insightuc.New(store, orchestrator, recorder)

	var encoderChecker healthuc.EncoderChecker
	if encoder != nil {
		encoderChecker = encoder
	}
	healthSvc := healthuc.New(recorder, encoderChecker)

	// Create chi server
	server := chiTransport.NewServer(
		searchSvc, insightSvc, healthSvc, store, recorder,
		chiTransport.Defaults{TopK: cfg.Search.DefaultTopK, Alpha: cfg.Search.DefaultAlpha},
		logger,
	)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Register(r)

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

// buildProviders assembles the insight provider chain from config.
// Order is the attempt order.
func buildProviders(cfg config.InsightsConfig, logger *zap.Logger) []insight.Provider {
	var providers []insight.Provider

	if cfg.Gateway.APIKey != "" {
		providers = append(providers, openaiTransport.NewChatProvider(openaiTransport.ChatConfig{
			Name:    "gateway",
			APIKey:  cfg.Gateway.APIKey,
			BaseURL: cfg.Gateway.BaseURL,
			Model:   cfg.Gateway.Model,
			Logger:  logger,
		}, insight.SystemPrompt))
	}

	if cfg.Gemini.APIKey != "" {
		providers = append(providers, gemini.New(gemini.Config{
			APIKey:  cfg.Gemini.APIKey,
			Model:   cfg.Gemini.Model,
			BaseURL: cfg.Gemini.BaseURL,
			Logger:  logger,
		}, insight.SystemPrompt))
	}

	if cfg.OpenAI.APIKey != "" {
		providers = append(providers, openaiTransport.NewChatProvider(openaiTransport.ChatConfig{
			Name:    "openai",
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.OpenAI.Model,
			Logger:  logger,
		}, insight.SystemPrompt))
	}

	return providers
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

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one line per request
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
