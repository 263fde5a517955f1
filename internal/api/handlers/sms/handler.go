package sms

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/courierloop/delivery-notifier/internal/api/dto"
	"github.com/courierloop/delivery-notifier/internal/api/respond"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/sms/mock.go -package=mocks
type replyClassifier interface {
	Classify(ctx context.Context, from, body string) error
}

// Handler receives inbound message webhooks from the SMS gateway.
type Handler struct {
	classifier replyClassifier
	validator  *validator.Validate
}

// NewHandler creates a new SMS webhook handler.
func NewHandler(c replyClassifier, validate *validator.Validate) *Handler {
	return &Handler{classifier: c, validator: validate}
}

// Webhook handles inbound SMS pushes. Unparseable or irrelevant events
// are acknowledged with 200 and ignored; classification errors are
// logged but never surfaced to the gateway.
func (h *Handler) Webhook(c *ginext.Context) {
	var msg dto.InboundSMS
	if err := json.NewDecoder(c.Request.Body).Decode(&msg); err != nil {
		zlog.Logger.Warn().Err(err).Msg("unparseable SMS webhook payload, ignoring")
		respond.OK(c.Writer, "ignored")
		return
	}

	if err := h.validator.Struct(msg); err != nil || !strings.EqualFold(msg.Direction, "incoming") {
		respond.OK(c.Writer, "ignored")
		return
	}

	if err := h.classifier.Classify(c.Request.Context(), msg.From, msg.Body); err != nil {
		zlog.Logger.Error().Err(err).Str("from", msg.From).Msg("failed to classify inbound SMS")
	}

	respond.OK(c.Writer, "accepted")
}
