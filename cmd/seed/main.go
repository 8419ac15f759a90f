// seed inserts demo users and trips into the local dev database.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/BaseMax/travel-planner-graphql/internal/auth"
	"github.com/BaseMax/travel-planner-graphql/internal/domain"
	"github.com/BaseMax/travel-planner-graphql/internal/ids"
	"github.com/BaseMax/travel-planner-graphql/internal/infrastructure/postgres"
)

const seedPassword = "password123"

type userSpec struct {
	name  string
	email string
}

var users = []userSpec{
	{"Max Base", "max@test.local"},
	{"Aiperi Sadyrova", "aiperi@test.local"},
	{"Jonas Weber", "jonas@test.local"},
}

type tripSpec struct {
	destination string
	daysOut     int
	length      int
	owner       int // index into users
	extras      []int
}

var trips = []tripSpec{
	{"Paris", 7, 5, 0, []int{1}},
	{"Paris", 30, 10, 1, nil},
	{"Tokyo", 14, 12, 0, []int{1, 2}},
	{"Lisbon", 3, 4, 2, nil},
	{"Reykjavik", 60, 7, 1, []int{0}},
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set — run: direnv allow")
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("schema: %v", err)
	}

	userRepo := postgres.NewUserRepository(pool)
	tripRepo := postgres.NewTripRepository(pool)

	hash, err := auth.HashPassword(seedPassword)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	// Insert users, reuse any that already exist (idempotent re-runs)
	userIDs := make([]string, len(users))
	var created int
	for i, spec := range users {
		u := &domain.User{
			ID:           ids.New(),
			Name:         spec.name,
			Email:        spec.email,
			PasswordHash: hash,
			CreatedAt:    time.Now().UTC(),
		}
		err := userRepo.Create(ctx, u)
		switch {
		case err == nil:
			userIDs[i] = u.ID
			created++
		case errors.Is(err, domain.ErrEmailTaken):
			existing, err := userRepo.FindByEmail(ctx, spec.email)
			if err != nil {
				log.Fatalf("find user %s: %v", spec.email, err)
			}
			userIDs[i] = existing.ID
		default:
			log.Fatalf("insert user %s: %v", spec.email, err)
		}
	}

	now := time.Now().UTC()
	tripIDs := make([]string, 0, len(trips))
	for _, spec := range trips {
		collaborators := []string{userIDs[spec.owner]}
		for _, i := range spec.extras {
			collaborators = append(collaborators, userIDs[i])
		}
		t := &domain.Trip{
			ID:            ids.New(),
			Destination:   spec.destination,
			FromDate:      now.AddDate(0, 0, spec.daysOut),
			ToDate:        now.AddDate(0, 0, spec.daysOut+spec.length),
			Collaborators: collaborators,
		}
		if err := tripRepo.Create(ctx, t); err != nil {
			log.Fatalf("insert trip %s: %v", spec.destination, err)
		}
		tripIDs = append(tripIDs, t.ID)
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  Users created: %d  (reused %d already existing)\n", created, len(users)-created)
	fmt.Printf("  Trips created: %d\n", len(tripIDs))
	fmt.Println()
	fmt.Println("  Accounts (password: " + seedPassword + "):")
	for i, spec := range users {
		fmt.Printf("    %-22s %s\n", spec.email, userIDs[i])
	}
	fmt.Println()
	fmt.Println("  Trip IDs:")
	for i, id := range tripIDs {
		fmt.Printf("    %-12s %s\n", trips[i].destination, id)
	}
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  Step 1 — log in:")
	fmt.Println(`    curl -s localhost:8080/graphql -H 'content-type: application/json' \`)
	fmt.Println(`      -d '{"query":"mutation { login(loginInput: {email: \"max@test.local\", password: \"password123\"}) { token } }"}'`)
	fmt.Println()
	fmt.Println("  Step 2 — list your trips (raw token, no Bearer prefix):")
	fmt.Println(`    curl -s localhost:8080/graphql -H 'content-type: application/json' -H "authorization: $TOKEN" \`)
	fmt.Println(`      -d '{"query":"query { userTrips { _id destination collaborators } }"}'`)
}
