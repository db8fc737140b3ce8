package memory

import (
	"context"
	"sync"

	"github.com/wadjakorntonsri/cloud-resume/pkg/core/domain"
	"github.com/wadjakorntonsri/cloud-resume/pkg/ports"
)

// Repository is a thread-safe in-memory VisitorStore.
type Repository struct {
	mu     sync.RWMutex
	data   map[domain.VisitorKey]domain.VisitorRecord
	closed bool
}

func NewRepository() *Repository {
	return &Repository{
		data: make(map[domain.VisitorKey]domain.VisitorRecord),
	}
}

var _ ports.VisitorStore = (*Repository)(nil)

func (r *Repository) Insert(ctx context.Context, rec domain.VisitorRecord) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return domain.ErrStoreUnavailable
	}
	r.data[rec.Key()] = rec
	return nil
}

func (r *Repository) Scan(ctx context.Context) ([]domain.VisitorRecord, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, domain.ErrStoreUnavailable
	}
	records := make([]domain.VisitorRecord, 0, len(r.data))
	for _, rec := range r.data {
		records = append(records, rec)
	}
	return records, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return domain.ErrStoreUnavailable
	}
	return ctx.Err()
}

func (r *Repository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}
