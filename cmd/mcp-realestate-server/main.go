package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/cloud-ru/mcp-realestate-go/internal/config"
	"github.com/cloud-ru/mcp-realestate-go/internal/tools"
	"github.com/cloud-ru/mcp-realestate-go/internal/tracing"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ошибка загрузки конфигурации: %v\n", err)
		os.Exit(1)
	}

	if err := tracing.InitTracing(cfg.OTELServiceName, cfg.OTELEndpoint); err != nil {
		fmt.Fprintf(os.Stderr, "ошибка инициализации трейсинга: %v\n", err)
		os.Exit(1)
	}

	handlers := map[string]tools.ToolHandler{
		"estimate_apartment_investment": tools.EstimateApartmentInvestmentHandler(cfg, tracing.Tracer),
		"mortgage_schedule":             tools.MortgageScheduleHandler(cfg, tracing.Tracer),
		"rent_schedule":                 tools.RentScheduleHandler(cfg, tracing.Tracer),
		"compare_with_market":           tools.CompareWithMarketHandler(cfg, tracing.Tracer),
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/tools/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		name := strings.TrimPrefix(r.URL.Path, "/tools/")
		handler, ok := handlers[name]
		if !ok {
			http.Error(w, fmt.Sprintf("unknown tool: %s", name), http.StatusNotFound)
			return
		}

		var params map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
			return
		}

		result, err := handler(r.Context(), params)
		if err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, result)
	})

	fmt.Printf("✅ Сервер запущен на порту %d\n", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.Port), mux); err != nil {
		fmt.Fprintf(os.Stderr, "ошибка сервера: %v\n", err)
		os.Exit(1)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
