//go:build unit || e2e

package memstore

import (
	"context"
	"sync"

	"hotel-reservation/internal/usecase/shared"
)

// Publisher records published events. A non-nil Err is returned from every
// Publish call after the event is recorded.
type Publisher struct {
	mu     sync.Mutex
	events []shared.ReservationEvent
	Err    error
}

var _ shared.EventPublisher = (*Publisher)(nil)

func (p *Publisher) Publish(_ context.Context, evt shared.ReservationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return p.Err
}

func (p *Publisher) Events() []shared.ReservationEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]shared.ReservationEvent(nil), p.events...)
}

func (p *Publisher) Types() []shared.EventType {
	events := p.Events()
	out := make([]shared.EventType, len(events))
	for i, e := range events {
		out[i] = e.Type
	}
	return out
}
