package notification

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"

	"github.com/courierloop/delivery-notifier/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

var rowColumns = []string{
	"id", "external_id", "customer_name", "phone", "store", "address",
	"delivery_date", "time_window", "raw_time", "product", "driver",
	"status", "customer_response", "conversation_state",
	"rescheduled_from", "reschedule_count", "retries",
	"message_id", "error_message", "sent_at", "responded_at", "created_at", "updated_at",
}

func notificationRow(id uuid.UUID, status string) []driver.Value {
	now := time.Now()
	return []driver.Value{
		id, "stop-1", "Dana", "+15551234567", "north", "12 Main St",
		time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), "between 9:00 and 11:00 AM", "9:00 AM", "sofa", "Sam",
		status, "", "none",
		nil, 0, 0,
		"", "", nil, nil, now, now,
	}
}

func TestCreate(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	n := model.Notification{
		ExternalID:   "stop-1",
		CustomerName: "Dana",
		Phone:        "+15551234567",
		Store:        "north",
		Address:      "12 Main St",
		DeliveryDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		TimeWindow:   "between 9:00 and 11:00 AM",
		RawTime:      "9:00 AM",
		Product:      "sofa",
		Status:       model.StatusPending,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notifications")).
		WithArgs(
			n.ExternalID, n.CustomerName, n.Phone, n.Store, n.Address,
			n.DeliveryDate, n.TimeWindow, n.RawTime, n.Product, n.Driver,
			string(model.StatusPending), uuid.NullUUID{},
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))

	got, err := repo.Create(context.Background(), n)
	assert.NoError(t, err)
	assert.Equal(t, id, got)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateExternalID(t *testing.T) {
	repo, mock := setupMockDB(t)

	n := model.Notification{ExternalID: "stop-1", Phone: "+15551234567"}

	// ON CONFLICT DO NOTHING returns no row for a duplicate.
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notifications")).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Create(context.Background(), n)
	assert.ErrorIs(t, err, ErrDuplicateStop)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM notifications")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(rowColumns).AddRow(notificationRow(id, "pending")...))

	n, err := repo.GetByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, id, n.ID)
	assert.Equal(t, model.StatusPending, n.Status)
	assert.Nil(t, n.RescheduledFrom)
	assert.Nil(t, n.SentAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM notifications")).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestLatestSentByPhone(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE phone = $1 AND status = 'sent'")).
		WithArgs("+15551234567").
		WillReturnRows(sqlmock.NewRows(rowColumns).AddRow(notificationRow(id, "sent")...))

	n, err := repo.LatestSentByPhone(context.Background(), "+15551234567")
	assert.NoError(t, err)
	assert.Equal(t, id, n.ID)
	assert.Equal(t, model.StatusSent, n.Status)
}

func TestActiveConversationByPhone_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("conversation_state = 'rescheduling'")).
		WithArgs("+15551234567").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.ActiveConversationByPhone(context.Background(), "+15551234567")
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestPendingForDate(t *testing.T) {
	repo, mock := setupMockDB(t)

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(rowColumns).
		AddRow(notificationRow(uuid.New(), "pending")...).
		AddRow(notificationRow(uuid.New(), "pending")...)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE status = 'pending' AND delivery_date = $1")).
		WithArgs(date).
		WillReturnRows(rows)

	got, err := repo.PendingForDate(context.Background(), date)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestMarkSent(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("SET status = 'sent'")).
		WithArgs(id, "mid-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkSent(context.Background(), id, "mid-1")
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkFailed(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("SET status = 'failed'")).
		WithArgs(id, "gateway timeout").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkFailed(context.Background(), id, "gateway timeout")
	assert.NoError(t, err)
}

func TestMarkDelivered(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("SET status = 'delivered', customer_response = 'yes'")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkDelivered(context.Background(), id)
	assert.NoError(t, err)
}

func TestSetConversationState(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("SET conversation_state = $2")).
		WithArgs(id, "rescheduling").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetConversationState(context.Background(), id, model.ConversationRescheduling)
	assert.NoError(t, err)
}

func TestMarkRescheduled(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("reschedule_count = reschedule_count + 1")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkRescheduled(context.Background(), id)
	assert.NoError(t, err)
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("SET status = 'sent'")).
		WithArgs(id, "mid-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkSent(context.Background(), id, "mid-1")
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}

func TestSummaryForDate(t *testing.T) {
	repo, mock := setupMockDB(t)

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"total", "confirmed", "declined", "no_reply", "pending", "failed", "rescheduling"}).
		AddRow(10, 4, 2, 1, 2, 1, 1)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE delivery_date = $1")).
		WithArgs(date).
		WillReturnRows(rows)

	s, err := repo.SummaryForDate(context.Background(), date)
	assert.NoError(t, err)
	assert.Equal(t, date, s.Date)
	assert.Equal(t, 10, s.Total)
	assert.Equal(t, 4, s.Confirmed)
	assert.Equal(t, 2, s.Declined)
}
