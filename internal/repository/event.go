package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/vaultpass/passgen-go/internal/model"
)

var ErrInvalidEvent = errors.New("generation event is invalid")

// EventRepository persists generation statistics. Passwords are never stored.
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Record inserts a generation event, assigning an event ID if it has none,
// and sets the generated row ID on the event.
func (r *EventRepository) Record(ctx context.Context, event *model.GenerationEvent) error {
	if err := validateEvent(event); err != nil {
		return err
	}
	if event.EventID == "" {
		event.EventID = uuid.New().String()
	}

	query := `INSERT INTO generation_events (event_id, length, excluded_count, strength, client_fingerprint)
		VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		event.EventID,
		event.Length,
		event.ExcludedCount,
		event.Strength,
		event.ClientFingerprint,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	event.ID = id
	return nil
}

// CountByStrength returns how many events were recorded for each strength score.
func (r *EventRepository) CountByStrength(ctx context.Context) (map[int]int64, error) {
	query := `SELECT strength, COUNT(*) FROM generation_events GROUP BY strength`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int]int64)
	for rows.Next() {
		var strength int
		var n int64
		if err := rows.Scan(&strength, &n); err != nil {
			return nil, err
		}
		counts[strength] = n
	}

	return counts, rows.Err()
}

func validateEvent(event *model.GenerationEvent) error {
	if event == nil || event.Length < 1 || event.ExcludedCount < 0 || event.Strength < 0 {
		return ErrInvalidEvent
	}
	return nil
}
