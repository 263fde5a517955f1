package conversation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/courierloop/delivery-notifier/internal/model"
)

// Repository persists rescheduling conversation turns. Turns are
// append-only and read back in full on every oracle call.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new conversation repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// AppendTurn stores one conversation turn and returns its ID.
func (r *Repository) AppendTurn(ctx context.Context, notificationID uuid.UUID, role model.TurnRole, body string) (uuid.UUID, error) {
	query := `
		INSERT INTO conversation_turns (notification_id, role, body)
		VALUES ($1, $2, $3)
		RETURNING id;
    `

	var id uuid.UUID
	err := r.db.QueryRowContext(ctx, query, notificationID, string(role), body).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to append conversation turn: %w", err)
	}

	return id, nil
}

// TurnsFor returns the full conversation for a notification, oldest first.
func (r *Repository) TurnsFor(ctx context.Context, notificationID uuid.UUID) ([]model.ConversationTurn, error) {
	query := `
		SELECT id, notification_id, role, body, created_at
		FROM conversation_turns
		WHERE notification_id = $1
		ORDER BY created_at;
    `

	rows, err := r.db.QueryContext(ctx, query, notificationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation turns: %w", err)
	}
	defer rows.Close()

	var turns []model.ConversationTurn
	for rows.Next() {
		var t model.ConversationTurn
		if err := rows.Scan(&t.ID, &t.NotificationID, &t.Role, &t.Body, &t.CreatedAt); err != nil {
			return nil, err
		}

		turns = append(turns, t)
	}

	return turns, rows.Err()
}
