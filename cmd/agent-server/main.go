// cmd/agent-server/main.go
package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"finance-agent/internal/agent"
	"finance-agent/internal/common/config"
	stderrors "finance-agent/internal/common/errors"
	"finance-agent/internal/common/genai"
	"finance-agent/internal/common/logger"
	"finance-agent/internal/common/observability"
	"finance-agent/internal/common/validation"
	"finance-agent/internal/models"
	"finance-agent/internal/tools/cryptoprice"
	"finance-agent/internal/tools/exchangerate"
	"finance-agent/internal/tools/geopolitical"
	"finance-agent/internal/tools/news"
	"finance-agent/internal/tools/stockprice"
)

type queryProcessor interface {
	ProcessUserInput(ctx context.Context, input string) string
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// newQueryHandler serves POST /api/query. Client mistakes get a 200
// with a friendly message rather than an error status so the browser UI
// always has something to render. When the model key is absent the
// canned responder answers directly.
func newQueryHandler(processor queryProcessor, hasModelKey bool, obs *observability.Observability, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method Not Allowed"})
			return
		}

		started := time.Now()
		requestID := uuid.New().String()
		reqLog := log.With(map[string]interface{}{
			"request_id": requestID,
		})

		body, err := io.ReadAll(r.Body)
		if err != nil {
			reqLog.Warn("failed to read request body", map[string]interface{}{"error": err.Error()})
			writeJSON(w, http.StatusOK, models.QueryResponse{Response: "Sorry, there was a problem understanding your request. Please try again."})
			return
		}

		var req models.QueryRequest
		if err := json.Unmarshal(body, &req); err != nil {
			reqLog.Warn("malformed request body", map[string]interface{}{"error": err.Error()})
			writeJSON(w, http.StatusOK, models.QueryResponse{Response: "Sorry, there was a problem understanding your request. Please try again."})
			return
		}

		result, err := validation.ValidateQueryRequest(body)
		if err != nil || !result.Valid {
			if result != nil {
				valErr := stderrors.NewValidationFailedError(strings.Join(result.GetErrorMessages(), "; "))
				reqLog.WithError(valErr).Warn("request failed schema validation", nil)
			}
			writeJSON(w, http.StatusOK, models.QueryResponse{Response: "Prompt is required. Please enter your question."})
			return
		}

		prompt := req.Prompt
		reqLog.Info("processing query", map[string]interface{}{
			"prompt_length": len(prompt),
		})

		defer func() {
			if rec := recover(); rec != nil {
				reqLog.Error("query processing panicked", map[string]interface{}{"panic": rec})
				writeJSON(w, http.StatusOK, models.QueryResponse{Response: agent.CannedResponse(prompt)})
			}
		}()

		var response string
		if !hasModelKey {
			reqLog.Warn("model key missing, using canned responder", nil)
			response = agent.CannedResponse(prompt)
		} else {
			response = processor.ProcessUserInput(r.Context(), prompt)
		}

		if strings.TrimSpace(response) == "" {
			reqLog.Error("empty response from pipeline", nil)
			response = agent.CannedResponse(prompt)
		}

		obs.RecordQueryProcessed(r.Context(), "api_query")
		obs.RecordQueryDuration(r.Context(), time.Since(started), "api_query")
		writeJSON(w, http.StatusOK, models.QueryResponse{Response: response})
	}
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting agent server...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log = logger.NewZapAdapter(zapLog)

	// Missing keys only narrow degradation tiers, so log presence rather
	// than failing.
	zapLog.Info("Provider key check",
		zap.Bool("genai", cfg.GenAI.APIKey != ""),
		zap.Bool("alpha_vantage", cfg.Providers.AlphaVantage.APIKey != ""),
		zap.Bool("coinmarketcap", cfg.Providers.CoinMarketCap.APIKey != ""),
		zap.Bool("news", cfg.Providers.News.APIKey != ""),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	genaiClient := genai.NewClient(cfg.GenAI, log)

	newsHandler := news.NewHandler(news.LoadConfig(cfg), log)
	tools := agent.Tools{
		Stocks:       stockprice.NewHandler(stockprice.LoadConfig(cfg), log),
		Crypto:       cryptoprice.NewHandler(cryptoprice.LoadConfig(cfg), log),
		Rates:        exchangerate.NewHandler(exchangerate.LoadConfig(cfg), log),
		News:         newsHandler,
		Geopolitical: geopolitical.NewHandler(geopolitical.LoadConfig(cfg), newsHandler, genaiClient, log),
	}

	router := agent.NewRouter(tools, genaiClient, log)

	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/api/query", newQueryHandler(router, genaiClient.HasKey(), obs, log))
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": cfg.App.Version})
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("address", cfg.Server.Address))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLog.Error("server shutdown failed", zap.Error(err))
	}

	zapLog.Info("Server stopped")
}
