package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/advisor-calendar/backend/internal/storage/models"
)

// EventRepository provides data access for advisor calendar events.
type EventRepository struct {
	BaseRepository
}

// NewEventRepository creates a new event repository.
func NewEventRepository(db *DB) *EventRepository {
	return &EventRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

const eventColumns = `
	id, advisor_id, title, description, start_at, end_at, all_day,
	color, category, event_type, client_id, client_name, client_email,
	status, created_at, updated_at
`

// Create inserts a new calendar event. The caller may supply a
// client-generated id; an id is assigned otherwise.
func (r *EventRepository) Create(ctx context.Context, ev *models.CalendarEvent) error {
	if ev.ID == "" {
		ev.ID = GenerateID()
	}
	if ev.Status == "" {
		ev.Status = models.EventStatusActive
	}
	ev.CreatedAt = r.Now()
	ev.UpdatedAt = r.Now()

	var clientID, clientName, clientEmail *string
	if ev.Client != nil {
		clientID, clientName, clientEmail = &ev.Client.ID, &ev.Client.Name, &ev.Client.Email
	}

	_, err := r.DB().ExecContext(ctx, `
		INSERT INTO calendar_events (
			id, advisor_id, title, description, start_at, end_at, all_day,
			color, category, event_type, client_id, client_name, client_email,
			status, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		ev.ID, ev.AdvisorID, ev.Title, ev.Description, ev.Start, ev.End, ev.AllDay,
		ev.Color, ev.Category, ev.Type, clientID, clientName, clientEmail,
		ev.Status, ev.CreatedAt, ev.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}

	return nil
}

// GetByID retrieves an event by its ID. Returns nil, nil when not found.
func (r *EventRepository) GetByID(ctx context.Context, id string) (*models.CalendarEvent, error) {
	row := r.DB().QueryRowContext(ctx,
		"SELECT"+eventColumns+"FROM calendar_events WHERE id = ?", id)

	ev, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying event: %w", err)
	}

	return ev, nil
}

// ListByAdvisors retrieves all active events owned by any of the given
// advisors, ordered by start time. The first id is the viewing advisor;
// any extra ids widen the result set for aggregated views.
func (r *EventRepository) ListByAdvisors(ctx context.Context, advisorIDs []string) ([]models.CalendarEvent, error) {
	if len(advisorIDs) == 0 {
		return []models.CalendarEvent{}, nil
	}

	placeholders := strings.Repeat("?,", len(advisorIDs))
	placeholders = placeholders[:len(placeholders)-1]

	args := make([]any, 0, len(advisorIDs)+1)
	for _, id := range advisorIDs {
		args = append(args, id)
	}
	args = append(args, models.EventStatusActive)

	rows, err := r.DB().QueryContext(ctx, `
		SELECT`+eventColumns+`FROM calendar_events
		WHERE advisor_id IN (`+placeholders+`) AND status = ?
		ORDER BY start_at, id
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	events := []models.CalendarEvent{}
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, *ev)
	}

	return events, rows.Err()
}

// Update applies a partial update to an event inside a transaction and
// returns the merged result. Returns nil, nil when the event does not
// exist.
func (r *EventRepository) Update(ctx context.Context, id string, patch models.EventPatch) (*models.CalendarEvent, error) {
	var updated *models.CalendarEvent

	err := r.Transaction(func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx,
			"SELECT"+eventColumns+"FROM calendar_events WHERE id = ?", id)

		ev, err := scanEvent(row)
		if err == sql.ErrNoRows {
			return nil
		}
		if err != nil {
			return fmt.Errorf("querying event: %w", err)
		}

		merged := patch.Apply(*ev)
		merged.UpdatedAt = r.Now()

		var clientID, clientName, clientEmail *string
		if merged.Client != nil {
			clientID, clientName, clientEmail = &merged.Client.ID, &merged.Client.Name, &merged.Client.Email
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE calendar_events SET
				title = ?, description = ?, start_at = ?, end_at = ?, all_day = ?,
				color = ?, category = ?, event_type = ?,
				client_id = ?, client_name = ?, client_email = ?,
				status = ?, updated_at = ?
			WHERE id = ?
		`,
			merged.Title, merged.Description, merged.Start, merged.End, merged.AllDay,
			merged.Color, merged.Category, merged.Type,
			clientID, clientName, clientEmail,
			merged.Status, merged.UpdatedAt, id,
		)
		if err != nil {
			return fmt.Errorf("updating event: %w", err)
		}

		updated = &merged
		return nil
	})

	if err != nil {
		return nil, err
	}

	return updated, nil
}

// SetStatus flips an event's status. Used for soft deletion.
func (r *EventRepository) SetStatus(ctx context.Context, id, status string) error {
	result, err := r.DB().ExecContext(ctx, `
		UPDATE calendar_events SET status = ?, updated_at = ? WHERE id = ?
	`, status, r.Now(), id)
	if err != nil {
		return fmt.Errorf("updating event status: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("event not found: %s", id)
	}

	return nil
}

// ListUpcoming retrieves active events starting within the window
// [from, to). Used by the reminder scheduler.
func (r *EventRepository) ListUpcoming(ctx context.Context, from, to models.Timestamp) ([]models.CalendarEvent, error) {
	rows, err := r.DB().QueryContext(ctx, `
		SELECT`+eventColumns+`FROM calendar_events
		WHERE status = ? AND start_at >= ? AND start_at < ?
		ORDER BY start_at, id
	`, models.EventStatusActive, from, to)
	if err != nil {
		return nil, fmt.Errorf("querying upcoming events: %w", err)
	}
	defer rows.Close()

	events := []models.CalendarEvent{}
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, *ev)
	}

	return events, rows.Err()
}

// scanner matches *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (*models.CalendarEvent, error) {
	var ev models.CalendarEvent
	var clientID, clientName, clientEmail sql.NullString

	err := s.Scan(
		&ev.ID, &ev.AdvisorID, &ev.Title, &ev.Description,
		&ev.Start, &ev.End, &ev.AllDay,
		&ev.Color, &ev.Category, &ev.Type,
		&clientID, &clientName, &clientEmail,
		&ev.Status, &ev.CreatedAt, &ev.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if clientID.Valid {
		ev.Client = &models.EventClient{
			ID:    clientID.String,
			Name:  clientName.String,
			Email: clientEmail.String,
		}
	}

	return &ev, nil
}
