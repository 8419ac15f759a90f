package domain

import "time"

type User struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Auth is the payload returned by signup and login.
type Auth struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

// Principal is the identity decoded from a verified token and threaded
// through the request context.
type Principal struct {
	ID   string
	Name string
}
