package activity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/courierloop/delivery-notifier/internal/model"
)

// Repository persists the operator-facing activity log.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new activity repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Record writes one activity event. notificationID may be uuid.Nil for
// events not tied to a single notification (e.g. batch runs, skips).
func (r *Repository) Record(ctx context.Context, kind string, notificationID uuid.UUID, detail string) error {
	query := `
		INSERT INTO activity_events (kind, notification_id, detail)
		VALUES ($1, NULLIF($2, '00000000-0000-0000-0000-000000000000'::uuid), $3);
    `

	if _, err := r.db.ExecContext(ctx, query, kind, notificationID, detail); err != nil {
		return fmt.Errorf("failed to record activity event: %w", err)
	}

	return nil
}

// Recent returns the newest events, most recent first.
func (r *Repository) Recent(ctx context.Context, limit int) ([]model.ActivityEvent, error) {
	query := `
		SELECT id, kind, notification_id, detail, created_at
		FROM activity_events
		ORDER BY created_at DESC
		LIMIT $1;
    `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity events: %w", err)
	}
	defer rows.Close()

	var events []model.ActivityEvent
	for rows.Next() {
		var (
			e  model.ActivityEvent
			id uuid.NullUUID
		)
		if err := rows.Scan(&e.ID, &e.Kind, &id, &e.Detail, &e.CreatedAt); err != nil {
			return nil, err
		}

		if id.Valid {
			nid := id.UUID
			e.NotificationID = &nid
		}

		events = append(events, e)
	}

	return events, rows.Err()
}
