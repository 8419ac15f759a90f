package domain

import (
	"slices"
	"time"
)

type Trip struct {
	ID            string    `json:"_id"`
	Destination   string    `json:"destination"`
	FromDate      time.Time `json:"fromDate"`
	ToDate        time.Time `json:"toDate"`
	Collaborators []string  `json:"collaborators"`
	Notes         []Note    `json:"notes"`
}

// Note is embedded within exactly one trip. CollaboratorID is the id of
// the trip collaborator who authored it.
type Note struct {
	ID             string    `json:"_id"`
	CollaboratorID string    `json:"collaboratorId"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
}

// DestinationCount is one row of the popular-destination aggregate.
type DestinationCount struct {
	Destination string `json:"destination"`
	Count       int    `json:"count"`
}

// HasCollaborator reports membership in the trip's collaborator set.
func (t *Trip) HasCollaborator(userID string) bool {
	return slices.Contains(t.Collaborators, userID)
}

// NoteByID returns the embedded note with the given id, or nil.
func (t *Trip) NoteByID(noteID string) *Note {
	for i := range t.Notes {
		if t.Notes[i].ID == noteID {
			return &t.Notes[i]
		}
	}
	return nil
}

// TripFilter is a conjunctive search filter. Nil fields add no clause:
// Destination matches exactly, FromDate keeps trips departing at or after
// it, ToDate keeps trips returning strictly before it.
type TripFilter struct {
	Destination *string
	FromDate    *time.Time
	ToDate      *time.Time
}

// Matches reports whether the trip satisfies every supplied clause.
func (f TripFilter) Matches(t *Trip) bool {
	if f.Destination != nil && t.Destination != *f.Destination {
		return false
	}
	if f.FromDate != nil && t.FromDate.Before(*f.FromDate) {
		return false
	}
	if f.ToDate != nil && !t.ToDate.Before(*f.ToDate) {
		return false
	}
	return true
}

// TripUpdate is a partial update of a trip's own fields. Nil fields are
// left untouched.
type TripUpdate struct {
	Destination *string
	FromDate    *time.Time
	ToDate      *time.Time
}
