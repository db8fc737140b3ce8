package handler

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/wadjakorntonsri/cloud-resume/internal/app"
	"github.com/wadjakorntonsri/cloud-resume/internal/logging"
	httpadapter "github.com/wadjakorntonsri/cloud-resume/pkg/adapters/handler"
	"github.com/wadjakorntonsri/cloud-resume/pkg/config"
)

var (
	once    sync.Once
	mux     http.Handler
	initErr error
)

// Note: on Vercel a file: DATABASE_URL is ephemeral; use libsql://, postgres:// or dynamodb://.
func setup() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	a, err := app.New(context.Background(), cfg, slog.Default())
	if err != nil {
		initErr = err
		slog.Error("failed to initialise", "error", err)
		return
	}
	mux = a.Router(slog.Default())
}

// Handler is the entrypoint for Vercel
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(setup)
	if initErr != nil {
		httpadapter.CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"message":"service unavailable"}`))
		})).ServeHTTP(w, r)
		return
	}
	mux.ServeHTTP(w, r)
}
