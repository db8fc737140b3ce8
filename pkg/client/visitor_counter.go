package client

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/wadjakorntonsri/cloud-resume/pkg/core/domain"
	"github.com/wadjakorntonsri/cloud-resume/pkg/ports"
)

// LoadingPlaceholder is displayed until the first count arrives.
const LoadingPlaceholder = "Loading..."

// VisitorCounter records the current page load and displays the total.
// The fetch is issued once the increment has been handed to the API, but it
// does not wait for the increment to finish, so the fetched count may or may
// not include this visit.
type VisitorCounter struct {
	api ports.VisitorAPI

	mu      sync.Mutex
	started bool
	count   int
	loaded  bool
	g       errgroup.Group
}

func NewVisitorCounter(api ports.VisitorAPI) *VisitorCounter {
	return &VisitorCounter{api: api}
}

// Start fires both requests and returns immediately. It may be called once.
func (c *VisitorCounter) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return domain.ErrAlreadyStarted
	}
	c.started = true

	issued := make(chan struct{})
	c.g.Go(func() error {
		close(issued)
		if err := c.api.AddVisitor(ctx); err != nil {
			slog.WarnContext(ctx, "add visitor", "error", err)
			return err
		}
		return nil
	})
	c.g.Go(func() error {
		<-issued
		n, err := c.api.GetVisitorCount(ctx)
		if err != nil {
			slog.WarnContext(ctx, "get visitor count", "error", err)
			return err
		}
		c.mu.Lock()
		c.count, c.loaded = n, true
		c.mu.Unlock()
		return nil
	})
	return nil
}

// Wait blocks until both requests finished and returns the first failure.
func (c *VisitorCounter) Wait() error {
	return c.g.Wait()
}

// Count returns the fetched count; ok is false until a fetch succeeded.
func (c *VisitorCounter) Count() (n int, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count, c.loaded
}

// Display is the count as text, or LoadingPlaceholder. A failed fetch
// leaves the placeholder in place.
func (c *VisitorCounter) Display() string {
	n, ok := c.Count()
	if !ok {
		return LoadingPlaceholder
	}
	return strconv.Itoa(n)
}
