package delivery

import (
	"context"
	"io"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/courierloop/delivery-notifier/internal/api/dto"
	"github.com/courierloop/delivery-notifier/internal/api/respond"
	"github.com/courierloop/delivery-notifier/internal/service/ingest"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/delivery/mock.go -package=mocks
type ingestService interface {
	HandleEvent(ctx context.Context, ev dto.DeliveryEvent) ingest.Result
}

// Handler receives delivery event pushes from the route-planning provider.
type Handler struct {
	service ingestService
}

// NewHandler creates a new delivery webhook handler.
func NewHandler(s ingestService) *Handler {
	return &Handler{service: s}
}

// Webhook handles POST pushes from the provider.
//
// It always answers 200: a non-2xx here would trigger the provider's
// retry storm, and internal problems are already logged and recorded on
// the activity log.
func (h *Handler) Webhook(c *ginext.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to read delivery webhook body")
		respond.OK(c.Writer, "accepted")
		return
	}

	ev := dto.ParseDeliveryEvent(body)
	res := h.service.HandleEvent(c.Request.Context(), ev)

	respond.OK(c.Writer, res)
}
