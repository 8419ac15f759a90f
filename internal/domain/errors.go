package domain

import "errors"

// Sentinel errors carry the exact user-facing messages. Resolvers surface
// them verbatim in the GraphQL errors array, so the wording here is part of
// the API contract.
var (
	ErrLoginRequired   = errors.New("you must login to get this feather")
	ErrInvalidToken    = errors.New("invalid token")
	ErrBadCredentials  = errors.New("credentials aren't correct")
	ErrEmailTaken      = errors.New("user with this email exists, please try to login")
	ErrTripNotFound    = errors.New("trip with this id doesn't exist")
	ErrUserNotFound    = errors.New("there is no user with this id exists")
	ErrNoteNotFound    = errors.New("there is no note with this id in the trip")
	ErrNotCollaborator = errors.New("you aren't collaborator in this trip")
	ErrInvalidID       = errors.New("id must be a valid objectId")
)
