// Package reply classifies inbound customer SMS against the most recent
// sent notification for the sender's phone number.
package reply

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/courierloop/delivery-notifier/internal/model"
	"github.com/courierloop/delivery-notifier/internal/phone"
	"github.com/courierloop/delivery-notifier/internal/repository/notification"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/reply/mock.go -package=mocks

type notificationRepository interface {
	LatestSentByPhone(ctx context.Context, phone string) (model.Notification, error)
	ActiveConversationByPhone(ctx context.Context, phone string) (model.Notification, error)
	MarkDelivered(ctx context.Context, id uuid.UUID) error
	SetResponse(ctx context.Context, id uuid.UUID, resp model.Response) error
	SetConversationState(ctx context.Context, id uuid.UUID, state model.ConversationState) error
}

type activityLog interface {
	Record(ctx context.Context, kind string, notificationID uuid.UUID, detail string) error
}

type smsSender interface {
	Send(ctx context.Context, to, body string) (string, error)
}

type rescheduler interface {
	Begin(ctx context.Context, n model.Notification) error
	HandleTurn(ctx context.Context, n model.Notification, text string) error
}

const (
	msgConfirmed = "Thanks for confirming! See you then."
	msgOptedOut  = "You've been unsubscribed from delivery updates. Reply to this number if you need anything else."
)

// Service classifies inbound SMS replies and advances notification state.
type Service struct {
	repo        notificationRepository
	activity    activityLog
	sender      smsSender
	rescheduler rescheduler
	countryCode string
}

// NewService creates the reply classifier.
func NewService(
	repo notificationRepository,
	activity activityLog,
	sender smsSender,
	rescheduler rescheduler,
	countryCode string,
) *Service {
	return &Service{
		repo:        repo,
		activity:    activity,
		sender:      sender,
		rescheduler: rescheduler,
		countryCode: countryCode,
	}
}

// Classify handles one inbound SMS. Each classification is a single state
// transition committed before any auto-reply attempt; auto-reply failures
// are logged but never roll the classification back.
func (s *Service) Classify(ctx context.Context, from, body string) error {
	normalized, err := phone.Normalize(from, s.countryCode)
	if err != nil {
		zlog.Logger.Warn().Str("from", from).Msg("inbound SMS from unusable number, ignoring")
		return nil
	}

	text := strings.TrimSpace(body)
	keyword := strings.ToUpper(text)

	// An active rescheduling conversation consumes every message raw,
	// except STOP, which always wins.
	active, err := s.repo.ActiveConversationByPhone(ctx, normalized)
	if err == nil {
		if keyword == "STOP" {
			return s.optOut(ctx, active, "opt-out during rescheduling")
		}
		return s.rescheduler.HandleTurn(ctx, active, text)
	}
	if !errors.Is(err, notification.ErrNotificationNotFound) {
		return fmt.Errorf("lookup active conversation: %w", err)
	}

	n, err := s.repo.LatestSentByPhone(ctx, normalized)
	if err != nil {
		if errors.Is(err, notification.ErrNotificationNotFound) {
			zlog.Logger.Info().Str("phone", normalized).Msg("inbound SMS with no matching sent notification, ignoring")
			s.record(ctx, "reply_unmatched", uuid.Nil, fmt.Sprintf("from %s: %q", normalized, text))
			return nil
		}

		return fmt.Errorf("lookup sent notification: %w", err)
	}

	switch keyword {
	case "YES":
		if err := s.repo.MarkDelivered(ctx, n.ID); err != nil {
			return fmt.Errorf("mark delivered: %w", err)
		}
		s.record(ctx, "reply_yes", n.ID, "customer confirmed")
		s.autoReply(ctx, normalized, msgConfirmed)
		return nil

	case "NO":
		if err := s.repo.SetResponse(ctx, n.ID, model.ResponseNo); err != nil {
			return fmt.Errorf("set response: %w", err)
		}
		s.record(ctx, "reply_no", n.ID, "customer declined, starting reschedule")
		return s.rescheduler.Begin(ctx, n)

	case "STOP":
		return s.optOut(ctx, n, "opt-out")

	default:
		zlog.Logger.Info().Str("id", n.ID.String()).Str("body", text).Msg("unrecognized reply, no state change")
		s.record(ctx, "reply_unrecognized", n.ID, text)
		return nil
	}
}

// optOut records a STOP: response set, any conversation closed, opt-out
// confirmation sent. No further automated messages go to this customer.
func (s *Service) optOut(ctx context.Context, n model.Notification, detail string) error {
	if err := s.repo.SetResponse(ctx, n.ID, model.ResponseStop); err != nil {
		return fmt.Errorf("set stop response: %w", err)
	}

	if n.ConversationState == model.ConversationRescheduling {
		if err := s.repo.SetConversationState(ctx, n.ID, model.ConversationNone); err != nil {
			return fmt.Errorf("reset conversation state: %w", err)
		}
	}

	s.record(ctx, "reply_stop", n.ID, detail)
	s.autoReply(ctx, n.Phone, msgOptedOut)
	return nil
}

func (s *Service) autoReply(ctx context.Context, to, body string) {
	if _, err := s.sender.Send(ctx, to, body); err != nil {
		zlog.Logger.Error().Err(err).Str("to", to).Msg("failed to send auto-reply")
	}
}

func (s *Service) record(ctx context.Context, kind string, id uuid.UUID, detail string) {
	if err := s.activity.Record(ctx, kind, id, detail); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to record activity event")
	}
}
