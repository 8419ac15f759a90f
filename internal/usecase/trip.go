package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/BaseMax/travel-planner-graphql/internal/domain"
	"github.com/BaseMax/travel-planner-graphql/internal/email"
	"github.com/BaseMax/travel-planner-graphql/internal/events"
	"github.com/BaseMax/travel-planner-graphql/internal/ids"
	"github.com/BaseMax/travel-planner-graphql/internal/repository"
)

type TripUsecase struct {
	trips  repository.TripRepository
	users  repository.UserRepository
	hub    *events.Hub
	email  email.Sender
	logger *slog.Logger
}

func NewTripUsecase(trips repository.TripRepository, users repository.UserRepository, hub *events.Hub, emailSender email.Sender, logger *slog.Logger) *TripUsecase {
	return &TripUsecase{
		trips:  trips,
		users:  users,
		hub:    hub,
		email:  emailSender,
		logger: logger.With("component", "trip_usecase"),
	}
}

type CreateTripInput struct {
	Destination   string
	FromDate      time.Time
	ToDate        time.Time
	Collaborators []string
}

// CreateTrip stores a new trip. The creator is always a collaborator,
// whether or not the input listed them.
func (u *TripUsecase) CreateTrip(ctx context.Context, creatorID string, in CreateTripInput) (*domain.Trip, error) {
	collaborators := make([]string, 0, len(in.Collaborators)+1)
	collaborators = append(collaborators, creatorID)
	for _, id := range in.Collaborators {
		if id != creatorID {
			collaborators = append(collaborators, id)
		}
	}

	trip := &domain.Trip{
		ID:            ids.New(),
		Destination:   in.Destination,
		FromDate:      in.FromDate,
		ToDate:        in.ToDate,
		Collaborators: collaborators,
		Notes:         []domain.Note{},
	}
	if err := u.trips.Create(ctx, trip); err != nil {
		return nil, fmt.Errorf("create trip: %w", err)
	}
	return trip, nil
}

func (u *TripUsecase) GetTrip(ctx context.Context, id string) (*domain.Trip, error) {
	return u.trips.FindByID(ctx, id)
}

func (u *TripUsecase) UserTrips(ctx context.Context, userID string) ([]*domain.Trip, error) {
	return u.trips.FindByCollaborator(ctx, userID)
}

func (u *TripUsecase) CollaboratorsInTrip(ctx context.Context, tripID string) ([]string, error) {
	trip, err := u.trips.FindByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return trip.Collaborators, nil
}

func (u *TripUsecase) Search(ctx context.Context, filter domain.TripFilter) ([]*domain.Trip, error) {
	return u.trips.Search(ctx, filter)
}

func (u *TripUsecase) PopularDestinations(ctx context.Context) ([]domain.DestinationCount, error) {
	return u.trips.DestinationCounts(ctx)
}

func (u *TripUsecase) UpdateTrip(ctx context.Context, id string, upd domain.TripUpdate) (*domain.Trip, error) {
	return u.trips.Update(ctx, id, upd)
}

// RemoveTrip deletes the trip and publishes tripRemoved with its final
// state. Trip existence is checked; collaborator membership is not, which
// mirrors the policy this API has always had for removal.
func (u *TripUsecase) RemoveTrip(ctx context.Context, id string) (*domain.Trip, error) {
	if _, err := u.trips.FindByID(ctx, id); err != nil {
		return nil, err
	}
	removed, err := u.trips.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	u.hub.Publish(events.TripRemoved, removed)
	return removed, nil
}

// AddCollaborator appends the user to the trip's collaborator list. Adding
// an existing collaborator succeeds and keeps the list a set. A
// collaboratorAdded event is published and the added user is emailed an
// invite; the email is best-effort.
func (u *TripUsecase) AddCollaborator(ctx context.Context, tripID, userID string) (*domain.Trip, error) {
	trip, err := u.trips.FindByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated, err := u.trips.AddCollaborator(ctx, tripID, userID)
	if err != nil {
		return nil, fmt.Errorf("add collaborator: %w", err)
	}
	u.hub.Publish(events.CollaboratorAdded, updated)

	subject := "You were added to a trip"
	body := fmt.Sprintf("<p>Hi %s, you are now a collaborator on the trip to %s.</p>", user.Name, trip.Destination)
	if err := u.email.Send(ctx, user.Email, subject, body); err != nil {
		u.logger.Warn("send collaborator invite", "trip_id", tripID, "user_id", userID, "error", err)
	}

	return updated, nil
}

func (u *TripUsecase) RemoveCollaborator(ctx context.Context, tripID, userID string) (*domain.Trip, error) {
	if _, err := u.trips.FindByID(ctx, tripID); err != nil {
		return nil, err
	}
	if _, err := u.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return u.trips.RemoveCollaborator(ctx, tripID, userID)
}
