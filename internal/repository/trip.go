package repository

import (
	"context"
	"time"

	"github.com/BaseMax/travel-planner-graphql/internal/domain"
)

// TripRepository persists trips with their embedded notes. Methods that
// mutate return the trip as it stands after the mutation. All methods
// return domain.ErrTripNotFound when the referenced trip is missing.
type TripRepository interface {
	Create(ctx context.Context, trip *domain.Trip) error
	FindByID(ctx context.Context, id string) (*domain.Trip, error)
	FindByCollaborator(ctx context.Context, userID string) ([]*domain.Trip, error)
	Search(ctx context.Context, filter domain.TripFilter) ([]*domain.Trip, error)
	// FindDeparting returns trips whose fromDate falls in [from, to).
	FindDeparting(ctx context.Context, from, to time.Time) ([]*domain.Trip, error)
	// DestinationCounts groups all trips by destination, ordered by count
	// descending.
	DestinationCounts(ctx context.Context) ([]domain.DestinationCount, error)

	Update(ctx context.Context, id string, upd domain.TripUpdate) (*domain.Trip, error)
	// Delete removes the trip and returns its final state.
	Delete(ctx context.Context, id string) (*domain.Trip, error)

	AddCollaborator(ctx context.Context, tripID, userID string) (*domain.Trip, error)
	RemoveCollaborator(ctx context.Context, tripID, userID string) (*domain.Trip, error)
	// IsCollaborator reports membership; a missing trip is simply false.
	IsCollaborator(ctx context.Context, userID, tripID string) (bool, error)

	// AddNote appends the note only when note.CollaboratorID is in the
	// trip's collaborator list, folding the membership predicate into the
	// update itself. Returns domain.ErrNotCollaborator otherwise.
	AddNote(ctx context.Context, tripID string, note domain.Note) (*domain.Trip, error)
	// UpdateNote replaces the note's content in place. Returns
	// domain.ErrNoteNotFound when the trip has no such note.
	UpdateNote(ctx context.Context, tripID, noteID, content string) (*domain.Trip, error)
	// RemoveNote removes the note. Returns domain.ErrNoteNotFound when the
	// trip has no such note.
	RemoveNote(ctx context.Context, tripID, noteID string) (*domain.Trip, error)
}
