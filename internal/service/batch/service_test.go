package batch

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/courierloop/delivery-notifier/internal/mocks/service/batch"
	"github.com/courierloop/delivery-notifier/internal/model"
)

var testNow = time.Date(2026, 9, 7, 17, 0, 0, 0, time.UTC)

var tomorrow = time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)

type testMocks struct {
	repo     *mocks.MocknotificationRepository
	activity *mocks.MockactivityLog
	sender   *mocks.MocksmsSender
	renderer *mocks.MocksummaryRenderer
	cache    *mocks.MockstatusCache
}

func setupService(t *testing.T) (*Service, testMocks) {
	ctrl := gomock.NewController(t)
	m := testMocks{
		repo:     mocks.NewMocknotificationRepository(ctrl),
		activity: mocks.NewMockactivityLog(ctrl),
		sender:   mocks.NewMocksmsSender(ctrl),
		renderer: mocks.NewMocksummaryRenderer(ctrl),
		cache:    mocks.NewMockstatusCache(ctrl),
	}

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	svc := NewService(m.repo, m.activity, m.sender, m.renderer, m.cache, strategy,
		0, []string{"+15550001111"}, time.UTC, func() time.Time { return testNow })
	return svc, m
}

func pendingRow(name string) model.Notification {
	return model.Notification{
		ID:           uuid.New(),
		CustomerName: name,
		Phone:        "+15551234567",
		DeliveryDate: tomorrow,
		TimeWindow:   "between 9:00 and 11:00 AM",
		Product:      "sofa",
		Status:       model.StatusPending,
	}
}

func TestService_SendCustomerBatch_SendsTomorrowsPending(t *testing.T) {
	svc, m := setupService(t)
	n := pendingRow("Dana")

	m.repo.EXPECT().PendingForDate(gomock.Any(), tomorrow).Return([]model.Notification{n}, nil)
	m.sender.EXPECT().Send(gomock.Any(), n.Phone, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, body string) (string, error) {
			assert.Contains(t, body, "Hi Dana!")
			assert.Contains(t, body, "sofa")
			assert.Contains(t, body, "Tuesday, September 8")
			assert.Contains(t, body, "between 9:00 and 11:00 AM")
			assert.Contains(t, body, "Reply YES to confirm, NO to reschedule, or STOP to opt out.")
			return "mid-1", nil
		})
	m.repo.EXPECT().MarkSent(gomock.Any(), n.ID, "mid-1").Return(nil)
	m.cache.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), n.ID.String(), string(model.StatusSent)).Return(nil)
	m.activity.EXPECT().Record(gomock.Any(), "batch", uuid.Nil, gomock.Any()).Return(nil)

	err := svc.SendCustomerBatch(context.Background())
	assert.NoError(t, err)
}

func TestService_SendCustomerBatch_FailureDoesNotAbortBatch(t *testing.T) {
	svc, m := setupService(t)
	bad := pendingRow("Alex")
	good := pendingRow("Dana")

	m.repo.EXPECT().PendingForDate(gomock.Any(), tomorrow).Return([]model.Notification{bad, good}, nil)

	m.sender.EXPECT().Send(gomock.Any(), bad.Phone, gomock.Any()).Return("", assert.AnError)
	m.repo.EXPECT().MarkFailed(gomock.Any(), bad.ID, gomock.Any()).Return(nil)
	m.cache.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), bad.ID.String(), string(model.StatusFailed)).Return(nil)

	m.sender.EXPECT().Send(gomock.Any(), good.Phone, gomock.Any()).Return("mid-2", nil)
	m.repo.EXPECT().MarkSent(gomock.Any(), good.ID, "mid-2").Return(nil)
	m.cache.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), good.ID.String(), string(model.StatusSent)).Return(nil)

	m.activity.EXPECT().Record(gomock.Any(), "batch", uuid.Nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ uuid.UUID, detail string) error {
			assert.Contains(t, detail, "1 sent, 1 failed")
			return nil
		})

	err := svc.SendCustomerBatch(context.Background())
	assert.NoError(t, err)
}

func TestService_SendCustomerBatch_EmptyDay(t *testing.T) {
	svc, m := setupService(t)

	m.repo.EXPECT().PendingForDate(gomock.Any(), tomorrow).Return(nil, nil)
	m.activity.EXPECT().Record(gomock.Any(), "batch", uuid.Nil, gomock.Any()).Return(nil)

	err := svc.SendCustomerBatch(context.Background())
	assert.NoError(t, err)
}

func TestService_ResendOne(t *testing.T) {
	svc, m := setupService(t)
	n := pendingRow("Dana")
	n.Status = model.StatusFailed

	m.repo.EXPECT().GetByID(gomock.Any(), n.ID).Return(n, nil)
	m.sender.EXPECT().Send(gomock.Any(), n.Phone, gomock.Any()).Return("mid-3", nil)
	m.repo.EXPECT().MarkSent(gomock.Any(), n.ID, "mid-3").Return(nil)
	m.cache.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), n.ID.String(), string(model.StatusSent)).Return(nil)

	err := svc.ResendOne(context.Background(), n.ID)
	assert.NoError(t, err)
}

func TestService_ResendOne_FailureReturnsError(t *testing.T) {
	svc, m := setupService(t)
	n := pendingRow("Dana")

	m.repo.EXPECT().GetByID(gomock.Any(), n.ID).Return(n, nil)
	m.sender.EXPECT().Send(gomock.Any(), n.Phone, gomock.Any()).Return("", assert.AnError)
	m.repo.EXPECT().MarkFailed(gomock.Any(), n.ID, gomock.Any()).Return(nil)
	m.cache.EXPECT().SetWithRetry(gomock.Any(), gomock.Any(), n.ID.String(), string(model.StatusFailed)).Return(nil)

	err := svc.ResendOne(context.Background(), n.ID)
	assert.Error(t, err)
}

func TestService_SendStaffSummary_UsesRenderer(t *testing.T) {
	svc, m := setupService(t)

	summary := model.DaySummary{Date: tomorrow, Total: 5, Confirmed: 2, Pending: 3}

	m.repo.EXPECT().SummaryForDate(gomock.Any(), tomorrow).Return(summary, nil)
	m.renderer.EXPECT().RenderSummary(gomock.Any(), summary).Return("5 deliveries tomorrow, 2 confirmed.", nil)
	m.sender.EXPECT().Send(gomock.Any(), "+15550001111", "5 deliveries tomorrow, 2 confirmed.").Return("mid-1", nil)
	m.activity.EXPECT().Record(gomock.Any(), "batch", uuid.Nil, gomock.Any()).Return(nil)

	err := svc.SendStaffSummary(context.Background())
	assert.NoError(t, err)
}

func TestService_SendStaffSummary_RendererFailureFallsBackToTemplate(t *testing.T) {
	svc, m := setupService(t)

	summary := model.DaySummary{Date: tomorrow, Total: 4, Confirmed: 1, Declined: 1, NoReply: 1, Pending: 1}

	m.repo.EXPECT().SummaryForDate(gomock.Any(), tomorrow).Return(summary, nil)
	m.renderer.EXPECT().RenderSummary(gomock.Any(), summary).Return("", assert.AnError)
	m.sender.EXPECT().Send(gomock.Any(), "+15550001111", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, body string) (string, error) {
			assert.Contains(t, body, "4 total")
			assert.Contains(t, body, "Confirmed: 1")
			return "mid-1", nil
		})
	m.activity.EXPECT().Record(gomock.Any(), "batch", uuid.Nil, gomock.Any()).Return(nil)

	err := svc.SendStaffSummary(context.Background())
	assert.NoError(t, err)
}
