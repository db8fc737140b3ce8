package services

import (
	"context"

	"github.com/wadjakorntonsri/cloud-resume/pkg/core/domain"
	"github.com/wadjakorntonsri/cloud-resume/pkg/ports"
)

type VisitorService struct {
	store ports.VisitorStore
	clock domain.Clock
}

func NewVisitorService(store ports.VisitorStore, clock domain.Clock) *VisitorService {
	if clock == nil {
		clock = domain.RealClock{}
	}
	return &VisitorService{store: store, clock: clock}
}

// AddVisitor writes one record for sourceAddress stamped with the current
// second. Repeat visits are never deduplicated.
func (s *VisitorService) AddVisitor(ctx context.Context, sourceAddress string) error {
	return s.store.Insert(ctx, domain.NewVisitorRecord(sourceAddress, s.clock.Now()))
}

// GetVisitorCount scans the whole store on every call. Cost grows with the
// number of visits ever recorded.
func (s *VisitorService) GetVisitorCount(ctx context.Context) (domain.VisitorCount, error) {
	records, err := s.store.Scan(ctx)
	if err != nil {
		return domain.VisitorCount{}, err
	}
	return domain.VisitorCount{Count: len(records)}, nil
}

var _ ports.VisitorService = (*VisitorService)(nil)
