package reschedule_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	mocks "github.com/courierloop/delivery-notifier/internal/mocks/service/reschedule"
	"github.com/courierloop/delivery-notifier/internal/model"
	"github.com/courierloop/delivery-notifier/internal/policy"
	"github.com/courierloop/delivery-notifier/internal/service/reschedule"
	"github.com/courierloop/delivery-notifier/pkg/routeplanner"
)

// 2026-09-07 is a Monday.
var testNow = time.Date(2026, 9, 7, 10, 30, 0, 0, time.UTC)

func testPolicies() policy.Set {
	return policy.Set{
		Stores: map[string]policy.Store{
			"north": {
				Days:         []time.Weekday{time.Tuesday, time.Thursday},
				FlexibleDays: []time.Weekday{time.Saturday},
				Blackouts:    []time.Time{time.Date(2026, 9, 24, 0, 0, 0, 0, time.UTC)},
			},
		},
		MinLeadDays: 2,
	}
}

type testMocks struct {
	repo     *mocks.MocknotificationRepository
	convRepo *mocks.MockconversationRepository
	activity *mocks.MockactivityLog
	sender   *mocks.MocksmsSender
	oracle   *mocks.MockDateOracle
	planner  *mocks.MockstopCreator
}

func setupService(t *testing.T) (*reschedule.Service, testMocks) {
	ctrl := gomock.NewController(t)
	m := testMocks{
		repo:     mocks.NewMocknotificationRepository(ctrl),
		convRepo: mocks.NewMockconversationRepository(ctrl),
		activity: mocks.NewMockactivityLog(ctrl),
		sender:   mocks.NewMocksmsSender(ctrl),
		oracle:   mocks.NewMockDateOracle(ctrl),
		planner:  mocks.NewMockstopCreator(ctrl),
	}

	svc := reschedule.NewService(m.repo, m.convRepo, m.activity, m.sender, m.oracle, m.planner,
		testPolicies(), time.UTC, func() time.Time { return testNow })
	return svc, m
}

func northStop() model.Notification {
	return model.Notification{
		ID:           uuid.New(),
		CustomerName: "Dana",
		Phone:        "+15551234567",
		Store:        "north",
		Address:      "12 Main St",
		DeliveryDate: time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
		Status:       model.StatusSent,
	}
}

func TestService_ValidateDate(t *testing.T) {
	svc, _ := setupService(t)
	st := testPolicies().Stores["north"]

	tests := []struct {
		name string
		date time.Time
		ok   bool
	}{
		{"today rejected", time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), false},
		{"past rejected", time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC), false},
		{"under lead time rejected", time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC), false},
		{"wrong weekday rejected", time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), false}, // Monday
		{"blackout rejected", time.Date(2026, 9, 24, 0, 0, 0, 0, time.UTC), false},      // Thursday blackout
		{"valid base day", time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), true},          // Thursday
		{"valid flexible day", time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC), true},      // Saturday
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, ok := svc.ValidateDate(tt.date, st)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				assert.NotEmpty(t, reason)
			}
		})
	}
}

func TestService_Begin_OpensConversation(t *testing.T) {
	svc, m := setupService(t)
	n := northStop()

	m.repo.EXPECT().SetConversationState(gomock.Any(), n.ID, model.ConversationRescheduling).Return(nil)
	m.sender.EXPECT().Send(gomock.Any(), n.Phone, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, body string) (string, error) {
			assert.Contains(t, body, "Tuesday and Thursday")
			return "mid-1", nil
		})
	m.convRepo.EXPECT().AppendTurn(gomock.Any(), n.ID, model.RoleAssistant, gomock.Any()).Return(uuid.New(), nil)
	m.activity.EXPECT().Record(gomock.Any(), "rescheduling", n.ID, gomock.Any()).Return(nil)

	err := svc.Begin(context.Background(), n)
	assert.NoError(t, err)
}

func TestService_Begin_NoPolicyHandsOff(t *testing.T) {
	svc, m := setupService(t)
	n := northStop()
	n.Store = "unknown"

	m.activity.EXPECT().Record(gomock.Any(), "handoff", n.ID, gomock.Any()).Return(nil)
	m.sender.EXPECT().Send(gomock.Any(), n.Phone, reschedule.MsgManualFollowup).Return("mid-1", nil)

	err := svc.Begin(context.Background(), n)
	assert.NoError(t, err)
}

func TestService_HandleTurn_ConfirmBooksNewDate(t *testing.T) {
	svc, m := setupService(t)
	n := northStop()
	newDate := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC) // Thursday

	m.convRepo.EXPECT().AppendTurn(gomock.Any(), n.ID, model.RoleCustomer, "thursday works").Return(uuid.New(), nil)
	m.convRepo.EXPECT().TurnsFor(gomock.Any(), n.ID).Return([]model.ConversationTurn{}, nil)
	m.oracle.EXPECT().ExtractDate(gomock.Any(), gomock.Any()).
		Return(reschedule.OracleResult{Action: reschedule.ActionConfirm, Date: newDate}, nil)

	m.repo.EXPECT().MarkRescheduled(gomock.Any(), n.ID).Return(nil)

	newID := uuid.New()
	m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, row model.Notification) (uuid.UUID, error) {
			assert.Equal(t, newDate, row.DeliveryDate)
			assert.Equal(t, "TBD", row.TimeWindow)
			assert.Equal(t, model.StatusPending, row.Status)
			if assert.NotNil(t, row.RescheduledFrom) {
				assert.Equal(t, n.ID, *row.RescheduledFrom)
			}
			return newID, nil
		})
	m.planner.EXPECT().CreateUnassignedStop(gomock.Any(), gomock.AssignableToTypeOf(routeplanner.UnassignedStop{})).Return(nil)
	m.activity.EXPECT().Record(gomock.Any(), "rescheduled", newID, gomock.Any()).Return(nil)
	m.sender.EXPECT().Send(gomock.Any(), n.Phone, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, body string) (string, error) {
			assert.Contains(t, body, "Thursday, September 10")
			return "mid-1", nil
		})
	m.convRepo.EXPECT().AppendTurn(gomock.Any(), n.ID, model.RoleAssistant, gomock.Any()).Return(uuid.New(), nil)

	err := svc.HandleTurn(context.Background(), n, "thursday works")
	assert.NoError(t, err)
}

func TestService_HandleTurn_InvalidDateKeepsConversationOpen(t *testing.T) {
	svc, m := setupService(t)
	n := northStop()
	badDate := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC) // Monday

	m.convRepo.EXPECT().AppendTurn(gomock.Any(), n.ID, model.RoleCustomer, "monday").Return(uuid.New(), nil)
	m.convRepo.EXPECT().TurnsFor(gomock.Any(), n.ID).Return([]model.ConversationTurn{}, nil)
	m.oracle.EXPECT().ExtractDate(gomock.Any(), gomock.Any()).
		Return(reschedule.OracleResult{Action: reschedule.ActionConfirm, Date: badDate}, nil)

	// Rejected server-side: no MarkRescheduled, no Create, just a reply.
	m.activity.EXPECT().Record(gomock.Any(), "date_rejected", n.ID, gomock.Any()).Return(nil)
	m.sender.EXPECT().Send(gomock.Any(), n.Phone, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, body string) (string, error) {
			assert.Contains(t, body, "Mondays")
			return "mid-1", nil
		})
	m.convRepo.EXPECT().AppendTurn(gomock.Any(), n.ID, model.RoleAssistant, gomock.Any()).Return(uuid.New(), nil)

	err := svc.HandleTurn(context.Background(), n, "monday")
	assert.NoError(t, err)
}

func TestService_HandleTurn_ClarifyRepliesOnly(t *testing.T) {
	svc, m := setupService(t)
	n := northStop()

	m.convRepo.EXPECT().AppendTurn(gomock.Any(), n.ID, model.RoleCustomer, "hmm").Return(uuid.New(), nil)
	m.convRepo.EXPECT().TurnsFor(gomock.Any(), n.ID).Return([]model.ConversationTurn{}, nil)
	m.oracle.EXPECT().ExtractDate(gomock.Any(), gomock.Any()).
		Return(reschedule.OracleResult{Action: reschedule.ActionClarify, Reply: "Which day next week works for you?"}, nil)

	m.sender.EXPECT().Send(gomock.Any(), n.Phone, "Which day next week works for you?").Return("mid-1", nil)
	m.convRepo.EXPECT().AppendTurn(gomock.Any(), n.ID, model.RoleAssistant, gomock.Any()).Return(uuid.New(), nil)

	err := svc.HandleTurn(context.Background(), n, "hmm")
	assert.NoError(t, err)
}

func TestService_HandleTurn_Handoff(t *testing.T) {
	svc, m := setupService(t)
	n := northStop()

	m.convRepo.EXPECT().AppendTurn(gomock.Any(), n.ID, model.RoleCustomer, "call me").Return(uuid.New(), nil)
	m.convRepo.EXPECT().TurnsFor(gomock.Any(), n.ID).Return([]model.ConversationTurn{}, nil)
	m.oracle.EXPECT().ExtractDate(gomock.Any(), gomock.Any()).
		Return(reschedule.OracleResult{Action: reschedule.ActionHandoff, Reply: "A member of our team will call you."}, nil)

	m.repo.EXPECT().SetConversationState(gomock.Any(), n.ID, model.ConversationHandoff).Return(nil)
	m.activity.EXPECT().Record(gomock.Any(), "handoff", n.ID, gomock.Any()).Return(nil)
	m.sender.EXPECT().Send(gomock.Any(), n.Phone, "A member of our team will call you.").Return("mid-1", nil)
	m.convRepo.EXPECT().AppendTurn(gomock.Any(), n.ID, model.RoleAssistant, gomock.Any()).Return(uuid.New(), nil)

	err := svc.HandleTurn(context.Background(), n, "call me")
	assert.NoError(t, err)
}

func TestService_HandleTurn_OracleErrorIsTransient(t *testing.T) {
	svc, m := setupService(t)
	n := northStop()

	m.convRepo.EXPECT().AppendTurn(gomock.Any(), n.ID, model.RoleCustomer, "tuesday").Return(uuid.New(), nil)
	m.convRepo.EXPECT().TurnsFor(gomock.Any(), n.ID).Return([]model.ConversationTurn{}, nil)
	m.oracle.EXPECT().ExtractDate(gomock.Any(), gomock.Any()).Return(reschedule.OracleResult{}, assert.AnError)

	// Conversation stays open: no state change, customer told to retry.
	m.activity.EXPECT().Record(gomock.Any(), "oracle_error", n.ID, gomock.Any()).Return(nil)
	m.sender.EXPECT().Send(gomock.Any(), n.Phone, reschedule.MsgTrouble).Return("mid-1", nil)
	m.convRepo.EXPECT().AppendTurn(gomock.Any(), n.ID, model.RoleAssistant, reschedule.MsgTrouble).Return(uuid.New(), nil)

	err := svc.HandleTurn(context.Background(), n, "tuesday")
	assert.NoError(t, err)
}
