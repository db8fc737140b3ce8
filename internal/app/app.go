package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/wadjakorntonsri/cloud-resume/pkg/adapters/handler"
	"github.com/wadjakorntonsri/cloud-resume/pkg/adapters/notifier"
	"github.com/wadjakorntonsri/cloud-resume/pkg/adapters/repository"
	"github.com/wadjakorntonsri/cloud-resume/pkg/config"
	"github.com/wadjakorntonsri/cloud-resume/pkg/core/domain"
	"github.com/wadjakorntonsri/cloud-resume/pkg/core/services"
	"github.com/wadjakorntonsri/cloud-resume/pkg/ports"
)

// App is the wired set of collaborators shared by every entrypoint.
type App struct {
	Store    ports.VisitorStore
	Notifier ports.Notifier
	Visitors *services.VisitorService
	Contact  *services.ContactService
	Ops      *handler.Operations
}

// New opens the store and notifier named in cfg.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	store, err := repository.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	n, err := notifier.New(ctx, cfg)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("init notifier: %w", err)
	}

	return Wire(store, n, cfg.Mailbox(), log), nil
}

// Wire builds services and operations over already-open collaborators.
func Wire(store ports.VisitorStore, n ports.Notifier, mailbox domain.Mailbox, log *slog.Logger) *App {
	visitors := services.NewVisitorService(store, domain.RealClock{})
	contact := services.NewContactService(n, mailbox)
	return &App{
		Store:    store,
		Notifier: n,
		Visitors: visitors,
		Contact:  contact,
		Ops:      handler.NewOperations(visitors, contact, log),
	}
}

// Pinger returns the store as a ports.Pinger, or nil if it cannot ping.
func (a *App) Pinger() ports.Pinger {
	p, _ := a.Store.(ports.Pinger)
	return p
}

// Router is the chi router over a.Ops.
func (a *App) Router(log *slog.Logger) http.Handler {
	return handler.NewRouter(a.Ops, a.Pinger(), log)
}

func (a *App) Close() error {
	return a.Store.Close()
}
