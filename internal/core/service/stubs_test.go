package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lionscafe/storefront/internal/core/domain"
	"github.com/lionscafe/storefront/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs shared by the service tests
// ---------------------------------------------------------------------------

type stubProvider struct {
	intent *ports.PaymentIntent
	err    error
	calls  []ports.PaymentIntentRequest
}

func (p *stubProvider) CreateIntent(_ context.Context, req ports.PaymentIntentRequest) (*ports.PaymentIntent, error) {
	p.calls = append(p.calls, req)
	if p.err != nil {
		return nil, p.err
	}
	return p.intent, nil
}

type stubDedup struct {
	seen    map[string]bool
	dupErr  error
	markErr error
	marked  []string
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]bool)}
}

func (d *stubDedup) IsDuplicate(_ context.Context, eventID string) (bool, error) {
	if d.dupErr != nil {
		return false, d.dupErr
	}
	return d.seen[eventID], nil
}

func (d *stubDedup) Mark(_ context.Context, eventID string) error {
	if d.markErr != nil {
		return d.markErr
	}
	d.seen[eventID] = true
	d.marked = append(d.marked, eventID)
	return nil
}

type stubAudit struct {
	err      error
	inserted []*domain.PaymentEventRecord
}

func (a *stubAudit) InsertEvent(_ context.Context, rec *domain.PaymentEventRecord) error {
	a.inserted = append(a.inserted, rec)
	return a.err
}

type stubPublisher struct {
	mu        sync.Mutex
	err       error
	published []domain.OrderStatusChange
}

func (p *stubPublisher) PublishOrderStatus(_ context.Context, change domain.OrderStatusChange) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, change)
	return p.err
}

// countingSerializer runs fn inline and records the keys it was asked to lock.
type countingSerializer struct {
	mu   sync.Mutex
	keys []string
	err  error
}

func (s *countingSerializer) Do(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys = append(s.keys, key)
	if s.err != nil {
		return s.err
	}
	return fn(ctx)
}

var errBoom = errors.New("boom")

// labelValues returns every value the named label takes across the series of
// a metric family in the default registry.
func labelValues(t *testing.T, family, label string) map[string]bool {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	values := map[string]bool{}
	for _, mf := range families {
		if mf.GetName() != family {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == label {
					values[lp.GetValue()] = true
				}
			}
		}
	}
	return values
}
