package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wadjakorntonsri/cloud-resume/pkg/ports"
)

// NewRouter creates and configures the main application router
func NewRouter(ops *Operations, pinger ports.Pinger, log *slog.Logger) http.Handler {
	h := NewHTTPHandler(ops, pinger)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(CORS)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", h.Health)

	r.Post("/add-visitor", h.AddVisitor)
	r.Get("/get-visitor-count", h.GetVisitorCount)
	r.Post("/send-message", h.SendMessage)

	r.NotFound(h.NotFound)

	return r
}
