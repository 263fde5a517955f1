package admin

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/courierloop/delivery-notifier/internal/api/respond"
	"github.com/courierloop/delivery-notifier/internal/repository/notification"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/admin/mock.go -package=mocks
type batchService interface {
	SendCustomerBatch(ctx context.Context) error
	SendStaffSummary(ctx context.Context) error
	ResendOne(ctx context.Context, id uuid.UUID) error
}

// Handler exposes the manual trigger surface. Each endpoint invokes the
// same functions the scheduler does, so operator-triggered and
// time-triggered runs behave identically.
type Handler struct {
	batch batchService
}

// NewHandler creates a new admin handler.
func NewHandler(b batchService) *Handler {
	return &Handler{batch: b}
}

// SendBatch force-fires the customer send batch.
func (h *Handler) SendBatch(c *ginext.Context) {
	if err := h.batch.SendCustomerBatch(c.Request.Context()); err != nil {
		zlog.Logger.Error().Err(err).Msg("manual customer batch failed")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("batch failed"))
		return
	}

	respond.OK(c.Writer, "customer batch completed")
}

// SendSummary force-fires the staff summary batch.
func (h *Handler) SendSummary(c *ginext.Context) {
	if err := h.batch.SendStaffSummary(c.Request.Context()); err != nil {
		zlog.Logger.Error().Err(err).Msg("manual staff summary failed")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("summary failed"))
		return
	}

	respond.OK(c.Writer, "staff summary sent")
}

// Resend force-resends a single notification.
func (h *Handler) Resend(c *ginext.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("idStr", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	if err := h.batch.ResendOne(c.Request.Context(), id); err != nil {
		if errors.Is(err, notification.ErrNotificationNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Interface("id", id).Msg("manual resend failed")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("resend failed"))
		return
	}

	respond.OK(c.Writer, "notification resent")
}
