package notification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/courierloop/delivery-notifier/internal/model"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrDuplicateStop        = errors.New("stop already ingested")
)

// Repository provides methods to interact with the notifications table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

const notificationColumns = `
		id, COALESCE(external_id, ''), customer_name, phone, store, address,
		delivery_date, time_window, raw_time, product, driver,
		status, customer_response, conversation_state,
		rescheduled_from, reschedule_count, retries,
		message_id, error_message, sent_at, responded_at, created_at, updated_at`

func scanNotification(row interface{ Scan(...any) error }) (model.Notification, error) {
	var (
		n           model.Notification
		from        uuid.NullUUID
		sentAt      sql.NullTime
		respondedAt sql.NullTime
	)

	err := row.Scan(
		&n.ID, &n.ExternalID, &n.CustomerName, &n.Phone, &n.Store, &n.Address,
		&n.DeliveryDate, &n.TimeWindow, &n.RawTime, &n.Product, &n.Driver,
		&n.Status, &n.CustomerResponse, &n.ConversationState,
		&from, &n.RescheduleCount, &n.Retries,
		&n.MessageID, &n.ErrorMessage, &sentAt, &respondedAt, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return model.Notification{}, err
	}

	if from.Valid {
		id := from.UUID
		n.RescheduledFrom = &id
	}
	if sentAt.Valid {
		t := sentAt.Time
		n.SentAt = &t
	}
	if respondedAt.Valid {
		t := respondedAt.Time
		n.RespondedAt = &t
	}

	return n, nil
}

// Create inserts a new pending notification and returns its ID.
//
// The external identifier, when present, deduplicates ingestion: a repeat
// identifier returns ErrDuplicateStop and leaves the existing row untouched.
func (r *Repository) Create(ctx context.Context, n model.Notification) (uuid.UUID, error) {
	query := `
		INSERT INTO notifications (
		    external_id, customer_name, phone, store, address,
		    delivery_date, time_window, raw_time, product, driver,
		    status, rescheduled_from
		) VALUES (NULLIF($1, ''), $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (external_id) DO NOTHING
		RETURNING id;
    `

	var from uuid.NullUUID
	if n.RescheduledFrom != nil {
		from = uuid.NullUUID{UUID: *n.RescheduledFrom, Valid: true}
	}

	var id uuid.UUID
	err := r.db.QueryRowContext(
		ctx, query,
		n.ExternalID, n.CustomerName, n.Phone, n.Store, n.Address,
		n.DeliveryDate, n.TimeWindow, n.RawTime, n.Product, n.Driver,
		string(model.StatusPending), from,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, ErrDuplicateStop
		}

		return uuid.Nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return id, nil
}

// GetByID retrieves a single notification by its ID.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (model.Notification, error) {
	query := `SELECT` + notificationColumns + `
		FROM notifications
		WHERE id = $1;
    `

	n, err := scanNotification(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Notification{}, ErrNotificationNotFound
		}

		return model.Notification{}, fmt.Errorf("failed to get notification: %w", err)
	}

	return n, nil
}

// GetStatusByID retrieves just the status of a notification.
func (r *Repository) GetStatusByID(ctx context.Context, id uuid.UUID) (string, error) {
	query := `
		SELECT status
		FROM notifications
		WHERE id = $1;
    `

	var status string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotificationNotFound
		}

		return "", fmt.Errorf("failed to get notification status: %w", err)
	}

	return status, nil
}

// LatestSentByPhone returns the most recently sent notification for a phone
// number. Only this row is eligible to receive classified replies.
func (r *Repository) LatestSentByPhone(ctx context.Context, phone string) (model.Notification, error) {
	query := `SELECT` + notificationColumns + `
		FROM notifications
		WHERE phone = $1 AND status = 'sent'
		ORDER BY sent_at DESC
		LIMIT 1;
    `

	n, err := scanNotification(r.db.QueryRowContext(ctx, query, phone))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Notification{}, ErrNotificationNotFound
		}

		return model.Notification{}, fmt.Errorf("failed to get latest sent notification: %w", err)
	}

	return n, nil
}

// ActiveConversationByPhone returns the notification with an in-flight
// rescheduling conversation for a phone number, if any.
func (r *Repository) ActiveConversationByPhone(ctx context.Context, phone string) (model.Notification, error) {
	query := `SELECT` + notificationColumns + `
		FROM notifications
		WHERE phone = $1 AND conversation_state = 'rescheduling'
		ORDER BY updated_at DESC
		LIMIT 1;
    `

	n, err := scanNotification(r.db.QueryRowContext(ctx, query, phone))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Notification{}, ErrNotificationNotFound
		}

		return model.Notification{}, fmt.Errorf("failed to get active conversation: %w", err)
	}

	return n, nil
}

// PendingForDate returns all pending notifications scheduled for the given
// calendar date, oldest first.
func (r *Repository) PendingForDate(ctx context.Context, date time.Time) ([]model.Notification, error) {
	query := `SELECT` + notificationColumns + `
		FROM notifications
		WHERE status = 'pending' AND delivery_date = $1
		ORDER BY created_at;
    `

	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// ListAll retrieves all notifications ordered by delivery date descending.
func (r *Repository) ListAll(ctx context.Context) ([]model.Notification, error) {
	query := `SELECT` + notificationColumns + `
		FROM notifications
		ORDER BY delivery_date DESC, created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// MarkSent transitions a notification to sent with the provider message id.
func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID, messageID string) error {
	query := `
		UPDATE notifications
		SET status = 'sent', message_id = $2, sent_at = NOW(), updated_at = NOW()
		WHERE id = $1;
    `

	return r.exec(ctx, query, id, messageID)
}

// MarkFailed transitions a notification to failed, recording the provider
// error and bumping the retry counter.
func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error {
	query := `
		UPDATE notifications
		SET status = 'failed', error_message = $2, retries = retries + 1, updated_at = NOW()
		WHERE id = $1;
    `

	return r.exec(ctx, query, id, errMsg)
}

// MarkDelivered records a confirmed delivery: status delivered, response yes.
func (r *Repository) MarkDelivered(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE notifications
		SET status = 'delivered', customer_response = 'yes', responded_at = NOW(), updated_at = NOW()
		WHERE id = $1;
    `

	return r.exec(ctx, query, id)
}

// SetResponse records the classified customer reply.
func (r *Repository) SetResponse(ctx context.Context, id uuid.UUID, resp model.Response) error {
	query := `
		UPDATE notifications
		SET customer_response = $2, responded_at = NOW(), updated_at = NOW()
		WHERE id = $1;
    `

	return r.exec(ctx, query, id, string(resp))
}

// SetConversationState moves the rescheduling sub-state machine.
func (r *Repository) SetConversationState(ctx context.Context, id uuid.UUID, state model.ConversationState) error {
	query := `
		UPDATE notifications
		SET conversation_state = $2, updated_at = NOW()
		WHERE id = $1;
    `

	return r.exec(ctx, query, id, string(state))
}

// MarkRescheduled finalizes the original notification of a confirmed
// reschedule and bumps its reschedule counter.
func (r *Repository) MarkRescheduled(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE notifications
		SET conversation_state = 'rescheduled', reschedule_count = reschedule_count + 1, updated_at = NOW()
		WHERE id = $1;
    `

	return r.exec(ctx, query, id)
}

// SummaryForDate aggregates counts for one delivery date.
func (r *Repository) SummaryForDate(ctx context.Context, date time.Time) (model.DaySummary, error) {
	query := `
		SELECT
		    COUNT(*),
		    COUNT(*) FILTER (WHERE customer_response = 'yes'),
		    COUNT(*) FILTER (WHERE customer_response = 'no'),
		    COUNT(*) FILTER (WHERE status = 'sent' AND customer_response = ''),
		    COUNT(*) FILTER (WHERE status = 'pending'),
		    COUNT(*) FILTER (WHERE status = 'failed'),
		    COUNT(*) FILTER (WHERE conversation_state = 'rescheduling')
		FROM notifications
		WHERE delivery_date = $1;
    `

	s := model.DaySummary{Date: date}
	err := r.db.QueryRowContext(ctx, query, date).Scan(
		&s.Total, &s.Confirmed, &s.Declined, &s.NoReply, &s.Pending, &s.Failed, &s.Rescheduling,
	)
	if err != nil {
		return model.DaySummary{}, fmt.Errorf("failed to get day summary: %w", err)
	}

	return s, nil
}

func (r *Repository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}
