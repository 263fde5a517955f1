// Package batch implements the two daily batch actions: the next-day
// customer notification send and the staff summary report.
package batch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/courierloop/delivery-notifier/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/batch/mock.go -package=mocks

type notificationRepository interface {
	PendingForDate(ctx context.Context, date time.Time) ([]model.Notification, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.Notification, error)
	MarkSent(ctx context.Context, id uuid.UUID, messageID string) error
	MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error
	SummaryForDate(ctx context.Context, date time.Time) (model.DaySummary, error)
}

type activityLog interface {
	Record(ctx context.Context, kind string, notificationID uuid.UUID, detail string) error
}

type smsSender interface {
	Send(ctx context.Context, to, body string) (string, error)
}

type summaryRenderer interface {
	RenderSummary(ctx context.Context, s model.DaySummary) (string, error)
}

type statusCache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
}

// Service runs the scheduled batches. Both are also reachable through the
// admin endpoints, which call the exact same methods.
type Service struct {
	repo            notificationRepository
	activity        activityLog
	sender          smsSender
	renderer        summaryRenderer
	cache           statusCache
	strategy        retry.Strategy
	sendDelay       time.Duration
	staffRecipients []string
	location        *time.Location
	now             func() time.Time
}

// NewService creates the batch service. now is injectable for tests.
func NewService(
	repo notificationRepository,
	activity activityLog,
	sender smsSender,
	renderer summaryRenderer,
	cache statusCache,
	strategy retry.Strategy,
	sendDelay time.Duration,
	staffRecipients []string,
	location *time.Location,
	now func() time.Time,
) *Service {
	if now == nil {
		now = time.Now
	}

	return &Service{
		repo:            repo,
		activity:        activity,
		sender:          sender,
		renderer:        renderer,
		cache:           cache,
		strategy:        strategy,
		sendDelay:       sendDelay,
		staffRecipients: staffRecipients,
		location:        location,
		now:             now,
	}
}

// SendCustomerBatch sends every pending notification scheduled for
// tomorrow. Sends run sequentially with a fixed delay between them to
// respect the gateway's rate limits; one failure never aborts the batch.
func (s *Service) SendCustomerBatch(ctx context.Context) error {
	date := s.tomorrow()

	pending, err := s.repo.PendingForDate(ctx, date)
	if err != nil {
		return fmt.Errorf("load pending notifications: %w", err)
	}

	zlog.Logger.Info().Int("count", len(pending)).Str("date", date.Format("2006-01-02")).Msg("starting customer batch")

	sent, failed := 0, 0
	for i, n := range pending {
		if i > 0 && s.sendDelay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(s.sendDelay):
			}
		}

		if s.sendOne(ctx, n) {
			sent++
		} else {
			failed++
		}
	}

	s.record(ctx, "batch", uuid.Nil,
		fmt.Sprintf("customer batch for %s: %d sent, %d failed", date.Format("2006-01-02"), sent, failed))

	return nil
}

// ResendOne re-runs the send path for a single notification, regardless of
// how it previously ended. Used by the manual trigger surface.
func (s *Service) ResendOne(ctx context.Context, id uuid.UUID) error {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load notification: %w", err)
	}

	if !s.sendOne(ctx, n) {
		return fmt.Errorf("resend failed for %s", id)
	}

	return nil
}

// sendOne delivers one notification and transitions it to sent or failed.
func (s *Service) sendOne(ctx context.Context, n model.Notification) bool {
	var messageID string
	err := retry.Do(func() error {
		var sendErr error
		messageID, sendErr = s.sender.Send(ctx, n.Phone, s.customerMessage(n))
		return sendErr
	}, s.strategy)

	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to send notification")

		if markErr := s.repo.MarkFailed(ctx, n.ID, err.Error()); markErr != nil {
			zlog.Logger.Error().Err(markErr).Str("id", n.ID.String()).Msg("failed to mark notification failed")
		}
		s.cacheStatus(ctx, n.ID, model.StatusFailed)

		return false
	}

	if markErr := s.repo.MarkSent(ctx, n.ID, messageID); markErr != nil {
		zlog.Logger.Error().Err(markErr).Str("id", n.ID.String()).Msg("failed to mark notification sent")
	}
	s.cacheStatus(ctx, n.ID, model.StatusSent)

	return true
}

// customerMessage builds the outbound notification text.
func (s *Service) customerMessage(n model.Notification) string {
	var b strings.Builder

	name := strings.TrimSpace(n.CustomerName)
	if name != "" {
		fmt.Fprintf(&b, "Hi %s! ", name)
	} else {
		b.WriteString("Hi! ")
	}

	product := strings.TrimSpace(n.Product)
	if product == "" {
		product = "order"
	}

	fmt.Fprintf(&b, "Your %s is scheduled for delivery %s, %s.",
		product, n.DeliveryDate.Format("Monday, January 2"), n.TimeWindow)

	if driver := strings.TrimSpace(n.Driver); driver != "" {
		fmt.Fprintf(&b, " %s will be your driver.", driver)
	}

	b.WriteString(" Reply YES to confirm, NO to reschedule, or STOP to opt out.")

	return b.String()
}

// SendStaffSummary aggregates tomorrow's counts and texts them to the
// configured staff recipients. Per-recipient failures are logged, never
// fatal to the batch.
func (s *Service) SendStaffSummary(ctx context.Context) error {
	date := s.tomorrow()

	summary, err := s.repo.SummaryForDate(ctx, date)
	if err != nil {
		return fmt.Errorf("load day summary: %w", err)
	}

	text := s.renderSummary(ctx, summary)

	for _, to := range s.staffRecipients {
		if _, err := s.sender.Send(ctx, to, text); err != nil {
			zlog.Logger.Error().Err(err).Str("to", to).Msg("failed to send staff summary")
		}
	}

	s.record(ctx, "batch", uuid.Nil,
		fmt.Sprintf("staff summary for %s sent to %d recipients", date.Format("2006-01-02"), len(s.staffRecipients)))

	return nil
}

// renderSummary prefers the natural-language renderer and falls back to a
// fixed deterministic template when it fails or returns nothing.
func (s *Service) renderSummary(ctx context.Context, summary model.DaySummary) string {
	if s.renderer != nil {
		text, err := s.renderer.RenderSummary(ctx, summary)
		if err != nil {
			zlog.Logger.Warn().Err(err).Msg("summary renderer failed, using template")
		} else if strings.TrimSpace(text) != "" {
			return text
		}
	}

	return fmt.Sprintf(
		"Deliveries for %s: %d total. Confirmed: %d, declined: %d, no reply: %d, not yet notified: %d, failed: %d, rescheduling: %d.",
		summary.Date.Format("Mon Jan 2"),
		summary.Total, summary.Confirmed, summary.Declined, summary.NoReply,
		summary.Pending, summary.Failed, summary.Rescheduling,
	)
}

func (s *Service) tomorrow() time.Time {
	now := s.now().In(s.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location).AddDate(0, 0, 1)
}

func (s *Service) cacheStatus(ctx context.Context, id uuid.UUID, status model.Status) {
	if s.cache == nil {
		return
	}

	if err := s.cache.SetWithRetry(ctx, s.strategy, id.String(), string(status)); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache notification status")
	}
}

func (s *Service) record(ctx context.Context, kind string, id uuid.UUID, detail string) {
	if err := s.activity.Record(ctx, kind, id, detail); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to record activity event")
	}
}
