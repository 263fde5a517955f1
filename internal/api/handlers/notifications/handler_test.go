package notifications

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	mocks "github.com/courierloop/delivery-notifier/internal/mocks/api/handlers/notifications"
	"github.com/courierloop/delivery-notifier/internal/model"
	"github.com/courierloop/delivery-notifier/internal/repository/notification"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockstatusService) {
	ctrl := gomock.NewController(t)
	serviceMock := mocks.NewMockstatusService(ctrl)
	handler := NewHandler(serviceMock)
	return handler, serviceMock
}

func getContext(t *testing.T, path string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func TestHandler_List(t *testing.T) {
	handler, serviceMock := setupHandler(t)
	c, w := getContext(t, "/notifications")

	serviceMock.EXPECT().ListAll(gomock.Any()).Return([]model.Notification{{Store: "north"}}, nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Get(t *testing.T) {
	handler, serviceMock := setupHandler(t)

	id := uuid.New()
	c, w := getContext(t, "/notifications/"+id.String())
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	serviceMock.EXPECT().GetByID(gomock.Any(), id).Return(model.Notification{ID: id}, nil)

	handler.Get(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Get_NotFound(t *testing.T) {
	handler, serviceMock := setupHandler(t)

	id := uuid.New()
	c, w := getContext(t, "/notifications/"+id.String())
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	serviceMock.EXPECT().GetByID(gomock.Any(), id).
		Return(model.Notification{}, notification.ErrNotificationNotFound)

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_GetStatus(t *testing.T) {
	handler, serviceMock := setupHandler(t)

	id := uuid.New()
	c, w := getContext(t, "/notifications/"+id.String()+"/status")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	serviceMock.EXPECT().GetStatusByID(gomock.Any(), id).Return("sent", nil)

	handler.GetStatus(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_GetStatus_InvalidID(t *testing.T) {
	handler, _ := setupHandler(t)

	c, w := getContext(t, "/notifications/abc/status")
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.GetStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Activity_DefaultLimit(t *testing.T) {
	handler, serviceMock := setupHandler(t)
	c, w := getContext(t, "/activity")

	serviceMock.EXPECT().RecentActivity(gomock.Any(), 100).Return([]model.ActivityEvent{}, nil)

	handler.Activity(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Activity_CustomLimit(t *testing.T) {
	handler, serviceMock := setupHandler(t)
	c, w := getContext(t, "/activity?limit=25")

	serviceMock.EXPECT().RecentActivity(gomock.Any(), 25).Return([]model.ActivityEvent{}, nil)

	handler.Activity(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}
