package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/BaseMax/travel-planner-graphql/internal/domain"
)

type TripRepository struct {
	mu   sync.RWMutex
	byID map[string]domain.Trip
}

func NewTripRepository() *TripRepository {
	return &TripRepository{byID: make(map[string]domain.Trip)}
}

func cloneTrip(t domain.Trip) domain.Trip {
	t.Collaborators = slices.Clone(t.Collaborators)
	t.Notes = slices.Clone(t.Notes)
	return t
}

func (r *TripRepository) Create(_ context.Context, trip *domain.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[trip.ID] = cloneTrip(*trip)
	return nil
}

func (r *TripRepository) FindByID(_ context.Context, id string) (*domain.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.get(id)
}

// get returns a clone; callers must hold the lock.
func (r *TripRepository) get(id string) (*domain.Trip, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrTripNotFound
	}
	copied := cloneTrip(t)
	return &copied, nil
}

func (r *TripRepository) FindByCollaborator(_ context.Context, userID string) ([]*domain.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Trip, 0)
	for _, t := range r.byID {
		if t.HasCollaborator(userID) {
			copied := cloneTrip(t)
			out = append(out, &copied)
		}
	}
	sortTrips(out)
	return out, nil
}

func (r *TripRepository) Search(_ context.Context, filter domain.TripFilter) ([]*domain.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Trip, 0)
	for _, t := range r.byID {
		if filter.Matches(&t) {
			copied := cloneTrip(t)
			out = append(out, &copied)
		}
	}
	sortTrips(out)
	return out, nil
}

func (r *TripRepository) FindDeparting(_ context.Context, from, to time.Time) ([]*domain.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Trip, 0)
	for _, t := range r.byID {
		if !t.FromDate.Before(from) && t.FromDate.Before(to) {
			copied := cloneTrip(t)
			out = append(out, &copied)
		}
	}
	sortTrips(out)
	return out, nil
}

func (r *TripRepository) DestinationCounts(_ context.Context) ([]domain.DestinationCount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := make(map[string]int)
	for _, t := range r.byID {
		counts[t.Destination]++
	}
	out := make([]domain.DestinationCount, 0, len(counts))
	for destination, count := range counts {
		out = append(out, domain.DestinationCount{Destination: destination, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Destination < out[j].Destination
	})
	return out, nil
}

func (r *TripRepository) Update(_ context.Context, id string, upd domain.TripUpdate) (*domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrTripNotFound
	}
	if upd.Destination != nil {
		t.Destination = *upd.Destination
	}
	if upd.FromDate != nil {
		t.FromDate = *upd.FromDate
	}
	if upd.ToDate != nil {
		t.ToDate = *upd.ToDate
	}
	r.byID[id] = t
	return r.get(id)
}

func (r *TripRepository) Delete(_ context.Context, id string) (*domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed, err := r.get(id)
	if err != nil {
		return nil, err
	}
	delete(r.byID, id)
	return removed, nil
}

func (r *TripRepository) AddCollaborator(_ context.Context, tripID, userID string) (*domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[tripID]
	if !ok {
		return nil, domain.ErrTripNotFound
	}
	if !t.HasCollaborator(userID) {
		t.Collaborators = append(slices.Clone(t.Collaborators), userID)
		r.byID[tripID] = t
	}
	return r.get(tripID)
}

func (r *TripRepository) RemoveCollaborator(_ context.Context, tripID, userID string) (*domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[tripID]
	if !ok {
		return nil, domain.ErrTripNotFound
	}
	t.Collaborators = slices.DeleteFunc(slices.Clone(t.Collaborators), func(id string) bool {
		return id == userID
	})
	r.byID[tripID] = t
	return r.get(tripID)
}

func (r *TripRepository) IsCollaborator(_ context.Context, userID, tripID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byID[tripID]
	if !ok {
		return false, nil
	}
	return t.HasCollaborator(userID), nil
}

func (r *TripRepository) AddNote(_ context.Context, tripID string, note domain.Note) (*domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[tripID]
	if !ok {
		return nil, domain.ErrTripNotFound
	}
	if !t.HasCollaborator(note.CollaboratorID) {
		return nil, domain.ErrNotCollaborator
	}
	t.Notes = append(slices.Clone(t.Notes), note)
	r.byID[tripID] = t
	return r.get(tripID)
}

func (r *TripRepository) UpdateNote(_ context.Context, tripID, noteID, content string) (*domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[tripID]
	if !ok {
		return nil, domain.ErrTripNotFound
	}
	notes := slices.Clone(t.Notes)
	idx := slices.IndexFunc(notes, func(n domain.Note) bool { return n.ID == noteID })
	if idx < 0 {
		return nil, domain.ErrNoteNotFound
	}
	notes[idx].Content = content
	t.Notes = notes
	r.byID[tripID] = t
	return r.get(tripID)
}

func (r *TripRepository) RemoveNote(_ context.Context, tripID, noteID string) (*domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byID[tripID]
	if !ok {
		return nil, domain.ErrTripNotFound
	}
	notes := slices.Clone(t.Notes)
	idx := slices.IndexFunc(notes, func(n domain.Note) bool { return n.ID == noteID })
	if idx < 0 {
		return nil, domain.ErrNoteNotFound
	}
	t.Notes = slices.Delete(notes, idx, idx+1)
	r.byID[tripID] = t
	return r.get(tripID)
}

func sortTrips(trips []*domain.Trip) {
	sort.Slice(trips, func(i, j int) bool { return trips[i].ID < trips[j].ID })
}
