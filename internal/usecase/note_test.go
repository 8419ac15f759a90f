package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BaseMax/travel-planner-graphql/internal/domain"
	"github.com/BaseMax/travel-planner-graphql/internal/events"
	"github.com/BaseMax/travel-planner-graphql/internal/ids"
	"github.com/BaseMax/travel-planner-graphql/internal/infrastructure/memory"
	"github.com/BaseMax/travel-planner-graphql/internal/usecase"
)

type noteFixture struct {
	uc    *usecase.NoteUsecase
	trips *memory.TripRepository
	hub   *events.Hub
}

func newNoteFixture(t *testing.T) *noteFixture {
	t.Helper()
	f := &noteFixture{
		trips: memory.NewTripRepository(),
		hub:   events.NewHub(),
	}
	t.Cleanup(f.hub.Close)
	f.uc = usecase.NewNoteUsecase(f.trips, f.hub)
	return f
}

func (f *noteFixture) addTrip(t *testing.T, collaborators ...string) *domain.Trip {
	t.Helper()
	trip := &domain.Trip{
		ID:            ids.New(),
		Destination:   "Paris",
		FromDate:      time.Now().AddDate(0, 0, 7),
		ToDate:        time.Now().AddDate(0, 0, 14),
		Collaborators: collaborators,
	}
	if err := f.trips.Create(context.Background(), trip); err != nil {
		t.Fatalf("create trip: %v", err)
	}
	return trip
}

// ---- CreateNote ----

func TestCreateNote_AppendsAndPublishes(t *testing.T) {
	f := newNoteFixture(t)
	author := ids.New()
	trip := f.addTrip(t, author)

	ch := f.hub.Subscribe(context.Background(), events.NoteAdded, trip.ID)

	updated, err := f.uc.CreateNote(context.Background(), author, trip.ID, "pack sunscreen")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updated.Notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(updated.Notes))
	}
	note := updated.Notes[0]
	if note.Content != "pack sunscreen" {
		t.Errorf("note content %q", note.Content)
	}
	if note.CollaboratorID != author {
		t.Errorf("note author %q, want %q", note.CollaboratorID, author)
	}
	if !ids.IsValid(note.ID) {
		t.Errorf("note id %q is not a valid id", note.ID)
	}

	got := expectEvent(t, ch, trip.ID)
	if len(got.Notes) != 1 {
		t.Errorf("published trip has %d notes, want 1", len(got.Notes))
	}
}

func TestCreateNote_NonCollaboratorFails(t *testing.T) {
	f := newNoteFixture(t)
	trip := f.addTrip(t, ids.New())

	ch := f.hub.Subscribe(context.Background(), events.NoteAdded, trip.ID)

	_, err := f.uc.CreateNote(context.Background(), ids.New(), trip.ID, "hi")
	if !errors.Is(err, domain.ErrNotCollaborator) {
		t.Fatalf("expected ErrNotCollaborator, got %v", err)
	}
	expectNoEvent(t, ch)
}

func TestCreateNote_UnknownTripFails(t *testing.T) {
	f := newNoteFixture(t)

	_, err := f.uc.CreateNote(context.Background(), ids.New(), ids.New(), "hi")
	if !errors.Is(err, domain.ErrTripNotFound) {
		t.Fatalf("expected ErrTripNotFound, got %v", err)
	}
}

// ---- UpdateNote ----

func TestUpdateNote_ReplacesContentAndPublishes(t *testing.T) {
	f := newNoteFixture(t)
	author := ids.New()
	trip := f.addTrip(t, author)

	created, err := f.uc.CreateNote(context.Background(), author, trip.ID, "old")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	noteID := created.Notes[0].ID

	ch := f.hub.Subscribe(context.Background(), events.NoteUpdated, trip.ID)

	updated, err := f.uc.UpdateNote(context.Background(), trip.ID, noteID, "new")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := updated.NoteByID(noteID)
	if got == nil || got.Content != "new" {
		t.Fatalf("note content not replaced: %v", got)
	}
	if got.CollaboratorID != author {
		t.Errorf("author changed on update: %q", got.CollaboratorID)
	}
	expectEvent(t, ch, trip.ID)
}

func TestUpdateNote_UnknownNoteFails(t *testing.T) {
	f := newNoteFixture(t)
	trip := f.addTrip(t, ids.New())

	_, err := f.uc.UpdateNote(context.Background(), trip.ID, ids.New(), "new")
	if !errors.Is(err, domain.ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

// ---- RemoveNote ----

func TestRemoveNote_RemovesAndPublishes(t *testing.T) {
	f := newNoteFixture(t)
	author := ids.New()
	trip := f.addTrip(t, author)

	created, err := f.uc.CreateNote(context.Background(), author, trip.ID, "bye")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	noteID := created.Notes[0].ID

	ch := f.hub.Subscribe(context.Background(), events.NoteRemoved, trip.ID)

	updated, err := f.uc.RemoveNote(context.Background(), author, trip.ID, noteID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updated.Notes) != 0 {
		t.Fatalf("expected no notes, got %v", updated.Notes)
	}
	got := expectEvent(t, ch, trip.ID)
	if len(got.Notes) != 0 {
		t.Errorf("published trip still has notes: %v", got.Notes)
	}
}

func TestRemoveNote_NonCollaboratorFails(t *testing.T) {
	f := newNoteFixture(t)
	author := ids.New()
	trip := f.addTrip(t, author)

	created, err := f.uc.CreateNote(context.Background(), author, trip.ID, "keep out")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	noteID := created.Notes[0].ID

	_, err = f.uc.RemoveNote(context.Background(), ids.New(), trip.ID, noteID)
	if !errors.Is(err, domain.ErrNotCollaborator) {
		t.Fatalf("expected ErrNotCollaborator, got %v", err)
	}

	// Note survives the rejected removal.
	trip, err = f.trips.FindByID(context.Background(), trip.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trip.NoteByID(noteID) == nil {
		t.Fatal("note removed despite rejection")
	}
}

func TestRemoveNote_UnknownNoteFails(t *testing.T) {
	f := newNoteFixture(t)
	author := ids.New()
	trip := f.addTrip(t, author)

	_, err := f.uc.RemoveNote(context.Background(), author, trip.ID, ids.New())
	if !errors.Is(err, domain.ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}
