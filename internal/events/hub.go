// Package events is the in-process fan-out channel for trip mutation
// events. One Hub instance is constructed in main and shared by every
// resolver that publishes or subscribes.
package events

import (
	"context"
	"errors"
	"sync"

	"github.com/BaseMax/travel-planner-graphql/internal/domain"
	"github.com/BaseMax/travel-planner-graphql/internal/metrics"
)

// Event names for the tracked trip mutations.
const (
	NoteAdded         = "noteAdded"
	NoteUpdated       = "noteUpdated"
	NoteRemoved       = "noteRemoved"
	CollaboratorAdded = "collaboratorAdded"
	TripRemoved       = "tripRemoved"
)

type subscriber struct {
	event  string
	tripID string
	ch     chan *domain.Trip
}

// Hub fan-outs published trips to all open subscriptions matching the
// event name and trip id. Delivery is non-blocking: a slow subscriber
// drops events rather than stalling the publisher. There is no replay.
type Hub struct {
	mu     sync.RWMutex
	subs   map[int]*subscriber
	next   int
	closed bool
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]*subscriber)}
}

// Subscribe registers a listener for one event name, filtered to a single
// trip id. The returned channel closes when ctx ends or the hub closes.
func (h *Hub) Subscribe(ctx context.Context, event, tripID string) <-chan *domain.Trip {
	ch := make(chan *domain.Trip, 16)

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		close(ch)
		return ch
	}
	id := h.next
	h.next++
	h.subs[id] = &subscriber{event: event, tripID: tripID, ch: ch}
	h.mu.Unlock()
	metrics.SubscribersActive.Inc()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		if s, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(s.ch)
			metrics.SubscribersActive.Dec()
		}
		h.mu.Unlock()
	}()

	return ch
}

// Publish delivers the trip to every subscriber of this event whose filter
// equals the trip's id.
func (h *Hub) Publish(event string, trip *domain.Trip) {
	if trip == nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}
	metrics.EventsPublishedTotal.WithLabelValues(event).Inc()
	for _, s := range h.subs {
		if s.event != event || s.tripID != trip.ID {
			continue
		}
		select {
		case s.ch <- trip:
		default:
			// Drop when the subscriber is slow to avoid blocking.
		}
	}
}

// Check reports readiness for health probes; a closed hub is not ready.
func (h *Hub) Check(_ context.Context) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return errors.New("event hub closed")
	}
	return nil
}

// Len reports the number of open subscriptions.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close terminates every open subscription. Publish and Subscribe become
// no-ops afterwards.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for id, s := range h.subs {
		delete(h.subs, id)
		close(s.ch)
		metrics.SubscribersActive.Dec()
	}
}
