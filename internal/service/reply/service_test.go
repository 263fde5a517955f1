package reply

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	mocks "github.com/courierloop/delivery-notifier/internal/mocks/service/reply"
	"github.com/courierloop/delivery-notifier/internal/model"
	"github.com/courierloop/delivery-notifier/internal/repository/notification"
)

func setupService(t *testing.T) (*Service, *mocks.MocknotificationRepository, *mocks.MockactivityLog, *mocks.MocksmsSender, *mocks.Mockrescheduler) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMocknotificationRepository(ctrl)
	activityMock := mocks.NewMockactivityLog(ctrl)
	senderMock := mocks.NewMocksmsSender(ctrl)
	reschedulerMock := mocks.NewMockrescheduler(ctrl)

	svc := NewService(repoMock, activityMock, senderMock, reschedulerMock, "1")
	return svc, repoMock, activityMock, senderMock, reschedulerMock
}

func TestService_Classify_Yes(t *testing.T) {
	svc, repoMock, activityMock, senderMock, _ := setupService(t)

	n := model.Notification{ID: uuid.New(), Phone: "+15551234567", Status: model.StatusSent}

	repoMock.EXPECT().ActiveConversationByPhone(gomock.Any(), "+15551234567").
		Return(model.Notification{}, notification.ErrNotificationNotFound)
	repoMock.EXPECT().LatestSentByPhone(gomock.Any(), "+15551234567").Return(n, nil)
	repoMock.EXPECT().MarkDelivered(gomock.Any(), n.ID).Return(nil)
	activityMock.EXPECT().Record(gomock.Any(), "reply_yes", n.ID, gomock.Any()).Return(nil)
	senderMock.EXPECT().Send(gomock.Any(), "+15551234567", msgConfirmed).Return("mid-1", nil)

	err := svc.Classify(context.Background(), "5551234567", "  yes ")
	assert.NoError(t, err)
}

func TestService_Classify_No_StartsReschedule(t *testing.T) {
	svc, repoMock, activityMock, _, reschedulerMock := setupService(t)

	n := model.Notification{ID: uuid.New(), Phone: "+15551234567", Status: model.StatusSent}

	repoMock.EXPECT().ActiveConversationByPhone(gomock.Any(), "+15551234567").
		Return(model.Notification{}, notification.ErrNotificationNotFound)
	repoMock.EXPECT().LatestSentByPhone(gomock.Any(), "+15551234567").Return(n, nil)
	repoMock.EXPECT().SetResponse(gomock.Any(), n.ID, model.ResponseNo).Return(nil)
	activityMock.EXPECT().Record(gomock.Any(), "reply_no", n.ID, gomock.Any()).Return(nil)
	reschedulerMock.EXPECT().Begin(gomock.Any(), n).Return(nil)

	err := svc.Classify(context.Background(), "+15551234567", "NO")
	assert.NoError(t, err)
}

func TestService_Classify_Stop(t *testing.T) {
	svc, repoMock, activityMock, senderMock, _ := setupService(t)

	n := model.Notification{ID: uuid.New(), Phone: "+15551234567", Status: model.StatusSent}

	repoMock.EXPECT().ActiveConversationByPhone(gomock.Any(), "+15551234567").
		Return(model.Notification{}, notification.ErrNotificationNotFound)
	repoMock.EXPECT().LatestSentByPhone(gomock.Any(), "+15551234567").Return(n, nil)
	repoMock.EXPECT().SetResponse(gomock.Any(), n.ID, model.ResponseStop).Return(nil)
	activityMock.EXPECT().Record(gomock.Any(), "reply_stop", n.ID, "opt-out").Return(nil)
	senderMock.EXPECT().Send(gomock.Any(), "+15551234567", msgOptedOut).Return("mid-1", nil)

	err := svc.Classify(context.Background(), "+15551234567", "stop")
	assert.NoError(t, err)
}

func TestService_Classify_UnrecognizedKeywordNoStateChange(t *testing.T) {
	svc, repoMock, activityMock, _, _ := setupService(t)

	n := model.Notification{ID: uuid.New(), Phone: "+15551234567", Status: model.StatusSent}

	repoMock.EXPECT().ActiveConversationByPhone(gomock.Any(), "+15551234567").
		Return(model.Notification{}, notification.ErrNotificationNotFound)
	repoMock.EXPECT().LatestSentByPhone(gomock.Any(), "+15551234567").Return(n, nil)
	activityMock.EXPECT().Record(gomock.Any(), "reply_unrecognized", n.ID, "maybe").Return(nil)

	err := svc.Classify(context.Background(), "+15551234567", "maybe")
	assert.NoError(t, err)
}

func TestService_Classify_ActiveConversationConsumesMessage(t *testing.T) {
	svc, repoMock, _, _, reschedulerMock := setupService(t)

	active := model.Notification{
		ID:                uuid.New(),
		Phone:             "+15551234567",
		ConversationState: model.ConversationRescheduling,
	}

	repoMock.EXPECT().ActiveConversationByPhone(gomock.Any(), "+15551234567").Return(active, nil)
	reschedulerMock.EXPECT().HandleTurn(gomock.Any(), active, "how about friday").Return(nil)

	err := svc.Classify(context.Background(), "+15551234567", "how about friday")
	assert.NoError(t, err)
}

func TestService_Classify_StopWinsDuringConversation(t *testing.T) {
	svc, repoMock, activityMock, senderMock, _ := setupService(t)

	active := model.Notification{
		ID:                uuid.New(),
		Phone:             "+15551234567",
		ConversationState: model.ConversationRescheduling,
	}

	repoMock.EXPECT().ActiveConversationByPhone(gomock.Any(), "+15551234567").Return(active, nil)
	repoMock.EXPECT().SetResponse(gomock.Any(), active.ID, model.ResponseStop).Return(nil)
	repoMock.EXPECT().SetConversationState(gomock.Any(), active.ID, model.ConversationNone).Return(nil)
	activityMock.EXPECT().Record(gomock.Any(), "reply_stop", active.ID, "opt-out during rescheduling").Return(nil)
	senderMock.EXPECT().Send(gomock.Any(), "+15551234567", msgOptedOut).Return("mid-1", nil)

	err := svc.Classify(context.Background(), "+15551234567", "STOP")
	assert.NoError(t, err)
}

func TestService_Classify_NoMatchingNotification(t *testing.T) {
	svc, repoMock, activityMock, _, _ := setupService(t)

	repoMock.EXPECT().ActiveConversationByPhone(gomock.Any(), "+15551234567").
		Return(model.Notification{}, notification.ErrNotificationNotFound)
	repoMock.EXPECT().LatestSentByPhone(gomock.Any(), "+15551234567").
		Return(model.Notification{}, notification.ErrNotificationNotFound)
	activityMock.EXPECT().Record(gomock.Any(), "reply_unmatched", uuid.Nil, gomock.Any()).Return(nil)

	err := svc.Classify(context.Background(), "+15551234567", "YES")
	assert.NoError(t, err)
}

func TestService_Classify_UnusableNumberIgnored(t *testing.T) {
	svc, _, _, _, _ := setupService(t)

	err := svc.Classify(context.Background(), "not a number", "YES")
	assert.NoError(t, err)
}

func TestService_Classify_AutoReplyFailureNotRolledBack(t *testing.T) {
	svc, repoMock, activityMock, senderMock, _ := setupService(t)

	n := model.Notification{ID: uuid.New(), Phone: "+15551234567", Status: model.StatusSent}

	repoMock.EXPECT().ActiveConversationByPhone(gomock.Any(), "+15551234567").
		Return(model.Notification{}, notification.ErrNotificationNotFound)
	repoMock.EXPECT().LatestSentByPhone(gomock.Any(), "+15551234567").Return(n, nil)
	repoMock.EXPECT().MarkDelivered(gomock.Any(), n.ID).Return(nil)
	activityMock.EXPECT().Record(gomock.Any(), "reply_yes", n.ID, gomock.Any()).Return(nil)
	senderMock.EXPECT().Send(gomock.Any(), "+15551234567", msgConfirmed).Return("", assert.AnError)

	err := svc.Classify(context.Background(), "+15551234567", "YES")
	assert.NoError(t, err)
}
