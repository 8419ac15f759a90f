// Package graphql defines the schema surface and the resolvers that
// compose the auth, trip and note usecases into it.
package graphql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/graphql-go/graphql"

	"github.com/BaseMax/travel-planner-graphql/internal/auth"
	"github.com/BaseMax/travel-planner-graphql/internal/domain"
	"github.com/BaseMax/travel-planner-graphql/internal/events"
	"github.com/BaseMax/travel-planner-graphql/internal/usecase"
)

var errInternal = errors.New("internal server error")

// userFacing are the errors surfaced to clients verbatim; anything else
// collapses to errInternal.
var userFacing = []error{
	domain.ErrLoginRequired,
	domain.ErrInvalidToken,
	domain.ErrBadCredentials,
	domain.ErrEmailTaken,
	domain.ErrTripNotFound,
	domain.ErrUserNotFound,
	domain.ErrNoteNotFound,
	domain.ErrNotCollaborator,
	domain.ErrInvalidID,
}

type Resolver struct {
	auths  *usecase.AuthUsecase
	trips  *usecase.TripUsecase
	notes  *usecase.NoteUsecase
	guard  *auth.Guard
	hub    *events.Hub
	logger *slog.Logger
}

func NewResolver(auths *usecase.AuthUsecase, trips *usecase.TripUsecase, notes *usecase.NoteUsecase, guard *auth.Guard, hub *events.Hub, logger *slog.Logger) *Resolver {
	return &Resolver{
		auths:  auths,
		trips:  trips,
		notes:  notes,
		guard:  guard,
		hub:    hub,
		logger: logger.With("component", "graphql"),
	}
}

// fail maps an operation error to its user-facing form, logging anything
// that is not part of the API contract.
func (r *Resolver) fail(ctx context.Context, op string, err error) error {
	for _, known := range userFacing {
		if errors.Is(err, known) {
			return known
		}
	}
	r.logger.ErrorContext(ctx, "graphql operation failed", "op", op, "error", err)
	return errInternal
}

// requireAuth runs the authorization guard for a protected operation.
func (r *Resolver) requireAuth(p graphql.ResolveParams) (domain.Principal, error) {
	_, principal, err := r.guard.Authenticate(p.Context)
	return principal, err
}

// --- auth ---

func (r *Resolver) signup(p graphql.ResolveParams) (interface{}, error) {
	m := objectArg(p.Args, "signupInput")
	in := signupInput{
		Name:            stringField(m, "name"),
		Email:           stringField(m, "email"),
		Password:        stringField(m, "password"),
		ConfirmPassword: stringField(m, "confirmPassword"),
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	result, err := r.auths.Signup(p.Context, usecase.SignupInput{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
	})
	if err != nil {
		return nil, r.fail(p.Context, "signup", err)
	}
	return result, nil
}

func (r *Resolver) login(p graphql.ResolveParams) (interface{}, error) {
	m := objectArg(p.Args, "loginInput")
	in := loginInput{
		Email:    stringField(m, "email"),
		Password: stringField(m, "password"),
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	result, err := r.auths.Login(p.Context, in.Email, in.Password)
	if err != nil {
		return nil, r.fail(p.Context, "login", err)
	}
	return result, nil
}

// --- trips ---

func (r *Resolver) createTrip(p graphql.ResolveParams) (interface{}, error) {
	principal, err := r.requireAuth(p)
	if err != nil {
		return nil, err
	}
	m := objectArg(p.Args, "createTripInput")
	in := createTripInput{
		Destination:   stringField(m, "destination"),
		FromDate:      timeField(m, "fromDate"),
		ToDate:        timeField(m, "toDate"),
		Collaborators: stringSliceField(m, "collaborators"),
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	trip, err := r.trips.CreateTrip(p.Context, principal.ID, usecase.CreateTripInput{
		Destination:   in.Destination,
		FromDate:      in.FromDate,
		ToDate:        in.ToDate,
		Collaborators: in.Collaborators,
	})
	if err != nil {
		return nil, r.fail(p.Context, "createTrip", err)
	}
	return trip, nil
}

func (r *Resolver) updateTrip(p graphql.ResolveParams) (interface{}, error) {
	m := objectArg(p.Args, "updateTripInput")
	in := updateTripInput{
		ID:          stringField(m, "id"),
		Destination: stringPtrField(m, "destination"),
		FromDate:    timePtrField(m, "fromDate"),
		ToDate:      timePtrField(m, "toDate"),
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if in.FromDate != nil && in.ToDate != nil && !in.ToDate.After(*in.FromDate) {
		return nil, errors.New("toDate date isn't correct with fromDate")
	}
	trip, err := r.trips.UpdateTrip(p.Context, in.ID, domain.TripUpdate{
		Destination: in.Destination,
		FromDate:    in.FromDate,
		ToDate:      in.ToDate,
	})
	if err != nil {
		return nil, r.fail(p.Context, "updateTrip", err)
	}
	return trip, nil
}

func (r *Resolver) removeTrip(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAuth(p); err != nil {
		return nil, err
	}
	id, err := idArg(p.Args, "id")
	if err != nil {
		return nil, err
	}
	trip, err := r.trips.RemoveTrip(p.Context, id)
	if err != nil {
		return nil, r.fail(p.Context, "removeTrip", err)
	}
	return trip, nil
}

func (r *Resolver) addCollaborator(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAuth(p); err != nil {
		return nil, err
	}
	tripID, err := idArg(p.Args, "tripId")
	if err != nil {
		return nil, err
	}
	userID, err := idArg(p.Args, "userId")
	if err != nil {
		return nil, err
	}
	trip, err := r.trips.AddCollaborator(p.Context, tripID, userID)
	if err != nil {
		return nil, r.fail(p.Context, "addCollaborator", err)
	}
	return trip, nil
}

func (r *Resolver) removeCollaborator(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAuth(p); err != nil {
		return nil, err
	}
	tripID, err := idArg(p.Args, "tripId")
	if err != nil {
		return nil, err
	}
	userID, err := idArg(p.Args, "userId")
	if err != nil {
		return nil, err
	}
	trip, err := r.trips.RemoveCollaborator(p.Context, tripID, userID)
	if err != nil {
		return nil, r.fail(p.Context, "removeCollaborator", err)
	}
	return trip, nil
}

func (r *Resolver) trip(p graphql.ResolveParams) (interface{}, error) {
	id, err := idArg(p.Args, "id")
	if err != nil {
		return nil, err
	}
	trip, err := r.trips.GetTrip(p.Context, id)
	if err != nil {
		return nil, r.fail(p.Context, "trip", err)
	}
	return trip, nil
}

func (r *Resolver) userTrips(p graphql.ResolveParams) (interface{}, error) {
	principal, err := r.requireAuth(p)
	if err != nil {
		return nil, err
	}
	trips, err := r.trips.UserTrips(p.Context, principal.ID)
	if err != nil {
		return nil, r.fail(p.Context, "userTrips", err)
	}
	return trips, nil
}

func (r *Resolver) collaboratorsInTrip(p graphql.ResolveParams) (interface{}, error) {
	id, err := idArg(p.Args, "id")
	if err != nil {
		return nil, err
	}
	collaborators, err := r.trips.CollaboratorsInTrip(p.Context, id)
	if err != nil {
		return nil, r.fail(p.Context, "collaboratorsInTrip", err)
	}
	return collaborators, nil
}

func (r *Resolver) searchTrip(argName string) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		m := objectArg(p.Args, argName)
		in := searchTripInput{
			Destination: stringPtrField(m, "destination"),
			FromDate:    timePtrField(m, "fromDate"),
			ToDate:      timePtrField(m, "toDate"),
		}
		trips, err := r.trips.Search(p.Context, domain.TripFilter{
			Destination: in.Destination,
			FromDate:    in.FromDate,
			ToDate:      in.ToDate,
		})
		if err != nil {
			return nil, r.fail(p.Context, "searchTrip", err)
		}
		return trips, nil
	}
}

func (r *Resolver) popularDestination(p graphql.ResolveParams) (interface{}, error) {
	counts, err := r.trips.PopularDestinations(p.Context)
	if err != nil {
		return nil, r.fail(p.Context, "PopularDestination", err)
	}
	return counts, nil
}

// --- notes ---

func (r *Resolver) createNote(p graphql.ResolveParams) (interface{}, error) {
	principal, err := r.requireAuth(p)
	if err != nil {
		return nil, err
	}
	m := objectArg(p.Args, "createNoteInput")
	in := createNoteInput{
		TripID:  stringField(m, "tripId"),
		Content: stringField(m, "content"),
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	trip, err := r.notes.CreateNote(p.Context, principal.ID, in.TripID, in.Content)
	if err != nil {
		return nil, r.fail(p.Context, "createNote", err)
	}
	return trip, nil
}

func (r *Resolver) updateNote(p graphql.ResolveParams) (interface{}, error) {
	if _, err := r.requireAuth(p); err != nil {
		return nil, err
	}
	m := objectArg(p.Args, "updateNoteInput")
	in := updateNoteInput{
		TripID:  stringField(m, "tripId"),
		NoteID:  stringField(m, "noteId"),
		Content: stringField(m, "content"),
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	trip, err := r.notes.UpdateNote(p.Context, in.TripID, in.NoteID, in.Content)
	if err != nil {
		return nil, r.fail(p.Context, "updateNote", err)
	}
	return trip, nil
}

func (r *Resolver) removeNote(p graphql.ResolveParams) (interface{}, error) {
	principal, err := r.requireAuth(p)
	if err != nil {
		return nil, err
	}
	tripID, err := idArg(p.Args, "tripId")
	if err != nil {
		return nil, err
	}
	noteID, err := idArg(p.Args, "noteId")
	if err != nil {
		return nil, err
	}
	trip, err := r.notes.RemoveNote(p.Context, principal.ID, tripID, noteID)
	if err != nil {
		return nil, r.fail(p.Context, "removeNote", err)
	}
	return trip, nil
}

// --- subscriptions ---

// subscribeTrips validates the tripId filter and bridges the hub channel
// into the shape the executor expects. The bridging goroutine exits when
// the hub channel closes (ctx cancelled or hub shut down).
func (r *Resolver) subscribeTrips(event string) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		tripID, err := idArg(p.Args, "tripId")
		if err != nil {
			return nil, err
		}
		src := r.hub.Subscribe(p.Context, event, tripID)
		out := make(chan interface{})
		go func() {
			defer close(out)
			for trip := range src {
				select {
				case out <- trip:
				case <-p.Context.Done():
					return
				}
			}
		}()
		return out, nil
	}
}

func resolveSource(p graphql.ResolveParams) (interface{}, error) {
	return p.Source, nil
}
