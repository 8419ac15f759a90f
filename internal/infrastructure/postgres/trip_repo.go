package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BaseMax/travel-planner-graphql/internal/domain"
)

const tripColumns = `id, destination, from_date, to_date, collaborators, notes`

type TripRepository struct {
	pool *pgxpool.Pool
}

func NewTripRepository(pool *pgxpool.Pool) *TripRepository {
	return &TripRepository{pool: pool}
}

func (r *TripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	notes, err := json.Marshal(trip.Notes)
	if err != nil {
		return fmt.Errorf("marshal notes: %w", err)
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO trips (id, destination, from_date, to_date, collaborators, notes)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		trip.ID, trip.Destination, trip.FromDate, trip.ToDate, trip.Collaborators, notes,
	)
	if err != nil {
		return fmt.Errorf("insert trip: %w", err)
	}
	return nil
}

func (r *TripRepository) FindByID(ctx context.Context, id string) (*domain.Trip, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+tripColumns+` FROM trips WHERE id = $1`, id)
	return scanTrip(row)
}

func (r *TripRepository) FindByCollaborator(ctx context.Context, userID string) ([]*domain.Trip, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+tripColumns+` FROM trips WHERE $1 = ANY(collaborators) ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("query trips by collaborator: %w", err)
	}
	return collectTrips(rows)
}

func (r *TripRepository) Search(ctx context.Context, filter domain.TripFilter) ([]*domain.Trip, error) {
	var (
		clauses []string
		args    []any
	)
	if filter.Destination != nil {
		args = append(args, *filter.Destination)
		clauses = append(clauses, "destination = $"+strconv.Itoa(len(args)))
	}
	if filter.FromDate != nil {
		args = append(args, *filter.FromDate)
		clauses = append(clauses, "from_date >= $"+strconv.Itoa(len(args)))
	}
	if filter.ToDate != nil {
		args = append(args, *filter.ToDate)
		clauses = append(clauses, "to_date < $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + tripColumns + ` FROM trips`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search trips: %w", err)
	}
	return collectTrips(rows)
}

func (r *TripRepository) FindDeparting(ctx context.Context, from, to time.Time) ([]*domain.Trip, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+tripColumns+` FROM trips WHERE from_date >= $1 AND from_date < $2 ORDER BY id`,
		from, to)
	if err != nil {
		return nil, fmt.Errorf("query departing trips: %w", err)
	}
	return collectTrips(rows)
}

func (r *TripRepository) DestinationCounts(ctx context.Context) ([]domain.DestinationCount, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT destination, COUNT(*) FROM trips GROUP BY destination ORDER BY COUNT(*) DESC, destination`)
	if err != nil {
		return nil, fmt.Errorf("query destination counts: %w", err)
	}
	defer rows.Close()

	out := make([]domain.DestinationCount, 0)
	for rows.Next() {
		var dc domain.DestinationCount
		if err := rows.Scan(&dc.Destination, &dc.Count); err != nil {
			return nil, fmt.Errorf("scan destination count: %w", err)
		}
		out = append(out, dc)
	}
	return out, rows.Err()
}

func (r *TripRepository) Update(ctx context.Context, id string, upd domain.TripUpdate) (*domain.Trip, error) {
	var (
		sets []string
		args []any
	)
	if upd.Destination != nil {
		args = append(args, *upd.Destination)
		sets = append(sets, "destination = $"+strconv.Itoa(len(args)))
	}
	if upd.FromDate != nil {
		args = append(args, *upd.FromDate)
		sets = append(sets, "from_date = $"+strconv.Itoa(len(args)))
	}
	if upd.ToDate != nil {
		args = append(args, *upd.ToDate)
		sets = append(sets, "to_date = $"+strconv.Itoa(len(args)))
	}
	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	args = append(args, id)
	query := `UPDATE trips SET ` + strings.Join(sets, ", ") +
		` WHERE id = $` + strconv.Itoa(len(args)) + ` RETURNING ` + tripColumns

	return scanTrip(r.pool.QueryRow(ctx, query, args...))
}

func (r *TripRepository) Delete(ctx context.Context, id string) (*domain.Trip, error) {
	row := r.pool.QueryRow(ctx,
		`DELETE FROM trips WHERE id = $1 RETURNING `+tripColumns, id)
	return scanTrip(row)
}

func (r *TripRepository) AddCollaborator(ctx context.Context, tripID, userID string) (*domain.Trip, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE trips
		 SET collaborators = CASE
			WHEN $2 = ANY(collaborators) THEN collaborators
			ELSE array_append(collaborators, $2)
		 END
		 WHERE id = $1
		 RETURNING `+tripColumns,
		tripID, userID)
	return scanTrip(row)
}

func (r *TripRepository) RemoveCollaborator(ctx context.Context, tripID, userID string) (*domain.Trip, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE trips SET collaborators = array_remove(collaborators, $2)
		 WHERE id = $1
		 RETURNING `+tripColumns,
		tripID, userID)
	return scanTrip(row)
}

func (r *TripRepository) IsCollaborator(ctx context.Context, userID, tripID string) (bool, error) {
	var is bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM trips WHERE id = $1 AND $2 = ANY(collaborators))`,
		tripID, userID).Scan(&is)
	if err != nil {
		return false, fmt.Errorf("check collaborator: %w", err)
	}
	return is, nil
}

// AddNote folds the collaborator predicate into the update filter so the
// membership check and the append are a single atomic statement.
func (r *TripRepository) AddNote(ctx context.Context, tripID string, note domain.Note) (*domain.Trip, error) {
	encoded, err := json.Marshal(note)
	if err != nil {
		return nil, fmt.Errorf("marshal note: %w", err)
	}

	row := r.pool.QueryRow(ctx,
		`UPDATE trips SET notes = notes || $2::jsonb
		 WHERE id = $1 AND $3 = ANY(collaborators)
		 RETURNING `+tripColumns,
		tripID, encoded, note.CollaboratorID)

	trip, err := scanTrip(row)
	if errors.Is(err, domain.ErrTripNotFound) {
		// No row matched: either the trip is gone or the author lost
		// membership between check and update.
		if _, findErr := r.FindByID(ctx, tripID); findErr != nil {
			return nil, findErr
		}
		return nil, domain.ErrNotCollaborator
	}
	return trip, err
}

func (r *TripRepository) UpdateNote(ctx context.Context, tripID, noteID, content string) (*domain.Trip, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE trips
		 SET notes = (
			SELECT jsonb_agg(
				CASE WHEN n->>'_id' = $2 THEN jsonb_set(n, '{content}', to_jsonb($3::text)) ELSE n END)
			FROM jsonb_array_elements(notes) n)
		 WHERE id = $1 AND notes @> jsonb_build_array(jsonb_build_object('_id', $2::text))
		 RETURNING `+tripColumns,
		tripID, noteID, content)

	trip, err := scanTrip(row)
	if errors.Is(err, domain.ErrTripNotFound) {
		if _, findErr := r.FindByID(ctx, tripID); findErr != nil {
			return nil, findErr
		}
		return nil, domain.ErrNoteNotFound
	}
	return trip, err
}

func (r *TripRepository) RemoveNote(ctx context.Context, tripID, noteID string) (*domain.Trip, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE trips
		 SET notes = COALESCE(
			(SELECT jsonb_agg(n) FROM jsonb_array_elements(notes) n WHERE n->>'_id' <> $2),
			'[]'::jsonb)
		 WHERE id = $1 AND notes @> jsonb_build_array(jsonb_build_object('_id', $2::text))
		 RETURNING `+tripColumns,
		tripID, noteID)

	trip, err := scanTrip(row)
	if errors.Is(err, domain.ErrTripNotFound) {
		if _, findErr := r.FindByID(ctx, tripID); findErr != nil {
			return nil, findErr
		}
		return nil, domain.ErrNoteNotFound
	}
	return trip, err
}

func scanTrip(row pgx.Row) (*domain.Trip, error) {
	var (
		t        domain.Trip
		rawNotes []byte
	)
	err := row.Scan(&t.ID, &t.Destination, &t.FromDate, &t.ToDate, &t.Collaborators, &rawNotes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTripNotFound
		}
		return nil, fmt.Errorf("scan trip: %w", err)
	}
	if err := json.Unmarshal(rawNotes, &t.Notes); err != nil {
		return nil, fmt.Errorf("unmarshal notes: %w", err)
	}
	if t.Notes == nil {
		t.Notes = []domain.Note{}
	}
	return &t, nil
}

func collectTrips(rows pgx.Rows) ([]*domain.Trip, error) {
	defer rows.Close()
	out := make([]*domain.Trip, 0)
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, trip)
	}
	return out, rows.Err()
}
