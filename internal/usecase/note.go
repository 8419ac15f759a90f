package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/BaseMax/travel-planner-graphql/internal/domain"
	"github.com/BaseMax/travel-planner-graphql/internal/events"
	"github.com/BaseMax/travel-planner-graphql/internal/ids"
	"github.com/BaseMax/travel-planner-graphql/internal/repository"
)

type NoteUsecase struct {
	trips repository.TripRepository
	hub   *events.Hub
}

func NewNoteUsecase(trips repository.TripRepository, hub *events.Hub) *NoteUsecase {
	return &NoteUsecase{trips: trips, hub: hub}
}

// CreateNote appends a note authored by the caller to the trip and
// publishes noteAdded with the updated trip. The caller must be a
// collaborator of the trip.
func (u *NoteUsecase) CreateNote(ctx context.Context, authorID, tripID, content string) (*domain.Trip, error) {
	if _, err := u.trips.FindByID(ctx, tripID); err != nil {
		return nil, err
	}
	isCollaborator, err := u.trips.IsCollaborator(ctx, authorID, tripID)
	if err != nil {
		return nil, fmt.Errorf("check collaborator: %w", err)
	}
	if !isCollaborator {
		return nil, domain.ErrNotCollaborator
	}

	note := domain.Note{
		ID:             ids.New(),
		CollaboratorID: authorID,
		Content:        content,
		CreatedAt:      time.Now(),
	}
	updated, err := u.trips.AddNote(ctx, tripID, note)
	if err != nil {
		return nil, err
	}
	u.hub.Publish(events.NoteAdded, updated)
	return updated, nil
}

// UpdateNote replaces the note's content in place and publishes
// noteUpdated. Collaborator membership is not required here, unlike note
// creation and removal.
func (u *NoteUsecase) UpdateNote(ctx context.Context, tripID, noteID, content string) (*domain.Trip, error) {
	trip, err := u.trips.FindByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.NoteByID(noteID) == nil {
		return nil, domain.ErrNoteNotFound
	}

	updated, err := u.trips.UpdateNote(ctx, tripID, noteID, content)
	if err != nil {
		return nil, err
	}
	u.hub.Publish(events.NoteUpdated, updated)
	return updated, nil
}

// RemoveNote removes the note from the trip's embedded list and publishes
// noteRemoved. The caller must be a collaborator of the trip.
func (u *NoteUsecase) RemoveNote(ctx context.Context, callerID, tripID, noteID string) (*domain.Trip, error) {
	trip, err := u.trips.FindByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.NoteByID(noteID) == nil {
		return nil, domain.ErrNoteNotFound
	}
	isCollaborator, err := u.trips.IsCollaborator(ctx, callerID, tripID)
	if err != nil {
		return nil, fmt.Errorf("check collaborator: %w", err)
	}
	if !isCollaborator {
		return nil, domain.ErrNotCollaborator
	}

	updated, err := u.trips.RemoveNote(ctx, tripID, noteID)
	if err != nil {
		return nil, err
	}
	u.hub.Publish(events.NoteRemoved, updated)
	return updated, nil
}
