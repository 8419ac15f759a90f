package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/BaseMax/travel-planner-graphql/internal/domain"
	"github.com/BaseMax/travel-planner-graphql/internal/events"
)

func tripWithID(id string) *domain.Trip {
	return &domain.Trip{ID: id, Destination: "Paris"}
}

func recv(t *testing.T, ch <-chan *domain.Trip) *domain.Trip {
	t.Helper()
	select {
	case trip, ok := <-ch:
		if !ok {
			t.Fatal("channel closed while expecting a trip")
		}
		return trip
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for trip")
	}
	return nil
}

func expectClosed(t *testing.T, ch <-chan *domain.Trip) {
	t.Helper()
	select {
	case trip, ok := <-ch:
		if ok {
			t.Fatalf("expected closed channel, got trip %v", trip)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

func TestPublish_DeliversToMatchingSubscriber(t *testing.T) {
	hub := events.NewHub()
	defer hub.Close()

	ch := hub.Subscribe(context.Background(), events.NoteAdded, "trip-1")
	hub.Publish(events.NoteAdded, tripWithID("trip-1"))

	got := recv(t, ch)
	if got.ID != "trip-1" {
		t.Fatalf("got trip %q, want trip-1", got.ID)
	}
}

func TestPublish_FiltersByTripID(t *testing.T) {
	hub := events.NewHub()
	defer hub.Close()

	ch := hub.Subscribe(context.Background(), events.NoteAdded, "trip-1")
	hub.Publish(events.NoteAdded, tripWithID("trip-2"))
	hub.Publish(events.NoteAdded, tripWithID("trip-1"))

	if got := recv(t, ch); got.ID != "trip-1" {
		t.Fatalf("got trip %q, want trip-1 only", got.ID)
	}
	select {
	case extra := <-ch:
		t.Fatalf("unexpected extra delivery: %v", extra)
	default:
	}
}

func TestPublish_FiltersByEventName(t *testing.T) {
	hub := events.NewHub()
	defer hub.Close()

	added := hub.Subscribe(context.Background(), events.NoteAdded, "trip-1")
	removed := hub.Subscribe(context.Background(), events.NoteRemoved, "trip-1")

	hub.Publish(events.NoteRemoved, tripWithID("trip-1"))

	if got := recv(t, removed); got.ID != "trip-1" {
		t.Fatalf("got trip %q on noteRemoved, want trip-1", got.ID)
	}
	select {
	case extra := <-added:
		t.Fatalf("noteAdded subscriber received noteRemoved event: %v", extra)
	default:
	}
}

func TestSubscribe_NoReplayOfPastEvents(t *testing.T) {
	hub := events.NewHub()
	defer hub.Close()

	hub.Publish(events.TripRemoved, tripWithID("trip-1"))
	ch := hub.Subscribe(context.Background(), events.TripRemoved, "trip-1")

	select {
	case trip := <-ch:
		t.Fatalf("subscriber received event published before subscribing: %v", trip)
	default:
	}
}

func TestSubscribe_FanOutReachesAllSubscribers(t *testing.T) {
	hub := events.NewHub()
	defer hub.Close()

	first := hub.Subscribe(context.Background(), events.CollaboratorAdded, "trip-1")
	second := hub.Subscribe(context.Background(), events.CollaboratorAdded, "trip-1")

	hub.Publish(events.CollaboratorAdded, tripWithID("trip-1"))

	if got := recv(t, first); got.ID != "trip-1" {
		t.Fatalf("first subscriber got %q", got.ID)
	}
	if got := recv(t, second); got.ID != "trip-1" {
		t.Fatalf("second subscriber got %q", got.ID)
	}
}

func TestSubscribe_CancelRemovesOnlyThatSubscriber(t *testing.T) {
	hub := events.NewHub()
	defer hub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancelled := hub.Subscribe(ctx, events.NoteAdded, "trip-1")
	kept := hub.Subscribe(context.Background(), events.NoteAdded, "trip-1")

	cancel()
	expectClosed(t, cancelled)

	waitForLen(t, hub, 1)
	hub.Publish(events.NoteAdded, tripWithID("trip-1"))
	if got := recv(t, kept); got.ID != "trip-1" {
		t.Fatalf("kept subscriber got %q", got.ID)
	}
}

func TestClose_ClosesAllSubscriberChannels(t *testing.T) {
	hub := events.NewHub()

	first := hub.Subscribe(context.Background(), events.NoteAdded, "trip-1")
	second := hub.Subscribe(context.Background(), events.TripRemoved, "trip-2")

	hub.Close()

	expectClosed(t, first)
	expectClosed(t, second)
	if n := hub.Len(); n != 0 {
		t.Fatalf("expected 0 subscriptions after close, got %d", n)
	}

	// Subscribing after close hands back an already-closed channel.
	expectClosed(t, hub.Subscribe(context.Background(), events.NoteAdded, "trip-1"))
}

func TestPublish_SlowSubscriberDoesNotBlock(t *testing.T) {
	hub := events.NewHub()
	defer hub.Close()

	ch := hub.Subscribe(context.Background(), events.NoteAdded, "trip-1")

	// Overfill the buffer; Publish must return rather than block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 64; i++ {
			hub.Publish(events.NoteAdded, tripWithID("trip-1"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
	recv(t, ch)
}

func waitForLen(t *testing.T, hub *events.Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if hub.Len() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("hub never reached %d subscriptions (have %d)", want, hub.Len())
}
