package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BaseMax/travel-planner-graphql/internal/domain"
	"github.com/BaseMax/travel-planner-graphql/internal/infrastructure/memory"
)

func seedTrip(t *testing.T, repo *memory.TripRepository, id string, collaborators ...string) {
	t.Helper()
	trip := &domain.Trip{
		ID:            id,
		Destination:   "Paris",
		FromDate:      time.Now().AddDate(0, 0, 7),
		ToDate:        time.Now().AddDate(0, 0, 14),
		Collaborators: collaborators,
	}
	if err := repo.Create(context.Background(), trip); err != nil {
		t.Fatalf("create trip: %v", err)
	}
}

func TestFindByID_ReturnsClone(t *testing.T) {
	repo := memory.NewTripRepository()
	seedTrip(t, repo, "trip-1", "user-1")

	first, err := repo.FindByID(context.Background(), "trip-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first.Destination = "Mutated"
	first.Collaborators[0] = "intruder"

	second, err := repo.FindByID(context.Background(), "trip-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Destination != "Paris" {
		t.Errorf("stored destination mutated through returned pointer: %q", second.Destination)
	}
	if second.Collaborators[0] != "user-1" {
		t.Errorf("stored collaborators mutated through returned slice: %v", second.Collaborators)
	}
}

func TestAddNote_NonCollaboratorRejected(t *testing.T) {
	repo := memory.NewTripRepository()
	seedTrip(t, repo, "trip-1", "user-1")

	_, err := repo.AddNote(context.Background(), "trip-1", domain.Note{
		ID:             "note-1",
		CollaboratorID: "stranger",
		Content:        "hi",
	})
	if !errors.Is(err, domain.ErrNotCollaborator) {
		t.Fatalf("expected ErrNotCollaborator, got %v", err)
	}

	trip, err := repo.FindByID(context.Background(), "trip-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trip.Notes) != 0 {
		t.Fatalf("note stored despite rejection: %v", trip.Notes)
	}
}

func TestAddCollaborator_KeepsListASet(t *testing.T) {
	repo := memory.NewTripRepository()
	seedTrip(t, repo, "trip-1", "user-1")

	trip, err := repo.AddCollaborator(context.Background(), "trip-1", "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trip.Collaborators) != 1 {
		t.Fatalf("duplicate collaborator appended: %v", trip.Collaborators)
	}
}

func TestIsCollaborator_MissingTripIsFalse(t *testing.T) {
	repo := memory.NewTripRepository()

	ok, err := repo.IsCollaborator(context.Background(), "user-1", "no-such-trip")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected false for missing trip")
	}
}

func TestUpdate_NilFieldsKeepCurrentValues(t *testing.T) {
	repo := memory.NewTripRepository()
	seedTrip(t, repo, "trip-1", "user-1")
	before, _ := repo.FindByID(context.Background(), "trip-1")

	dest := "Lisbon"
	after, err := repo.Update(context.Background(), "trip-1", domain.TripUpdate{Destination: &dest})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after.Destination != "Lisbon" {
		t.Errorf("destination %q, want Lisbon", after.Destination)
	}
	if !after.FromDate.Equal(before.FromDate) || !after.ToDate.Equal(before.ToDate) {
		t.Errorf("dates changed by a destination-only update")
	}
}

func TestFindDeparting_HalfOpenWindow(t *testing.T) {
	repo := memory.NewTripRepository()
	now := time.Now().Truncate(time.Second)

	mk := func(id string, from time.Time) {
		t.Helper()
		err := repo.Create(context.Background(), &domain.Trip{
			ID:            id,
			Destination:   "Paris",
			FromDate:      from,
			ToDate:        from.AddDate(0, 0, 5),
			Collaborators: []string{"user-1"},
		})
		if err != nil {
			t.Fatalf("create trip: %v", err)
		}
	}
	mk("before", now.Add(-time.Hour))
	mk("at-start", now)
	mk("inside", now.Add(12*time.Hour))
	mk("at-end", now.Add(24*time.Hour))

	got, err := repo.FindDeparting(context.Background(), now, now.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected [at-start inside], got %d trips", len(got))
	}
	if got[0].ID != "at-start" || got[1].ID != "inside" {
		t.Fatalf("got %q and %q", got[0].ID, got[1].ID)
	}
}

func TestDelete_ReturnsFinalState(t *testing.T) {
	repo := memory.NewTripRepository()
	seedTrip(t, repo, "trip-1", "user-1")

	removed, err := repo.Delete(context.Background(), "trip-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed.ID != "trip-1" {
		t.Fatalf("removed %q, want trip-1", removed.ID)
	}
	if _, err := repo.FindByID(context.Background(), "trip-1"); !errors.Is(err, domain.ErrTripNotFound) {
		t.Fatalf("expected ErrTripNotFound, got %v", err)
	}
}
