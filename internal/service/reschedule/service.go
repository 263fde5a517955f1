// Package reschedule drives the rescheduling conversation for a declined
// delivery: it negotiates a new date with the customer through an external
// free-text extraction oracle, validates every proposed date server-side,
// and either books the new date or hands the customer off to a human.
package reschedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/courierloop/delivery-notifier/internal/model"
	"github.com/courierloop/delivery-notifier/internal/policy"
	"github.com/courierloop/delivery-notifier/pkg/routeplanner"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/reschedule/mock.go -package=mocks

// OracleAction is one of exactly three structured intents the extraction
// oracle may return.
type OracleAction string

const (
	ActionConfirm OracleAction = "confirm"
	ActionClarify OracleAction = "clarify"
	ActionHandoff OracleAction = "handoff"
)

// OracleRequest carries everything the oracle needs to interpret the
// customer's latest message.
type OracleRequest struct {
	StoreTag     string
	Store        policy.Store
	Today        time.Time
	OriginalDate time.Time
	Address      string
	History      []model.ConversationTurn
}

// OracleResult is the oracle's structured intent. Date is set for
// ActionConfirm; Reply is set for ActionClarify and ActionHandoff.
type OracleResult struct {
	Action OracleAction
	Date   time.Time
	Reply  string
}

// DateOracle turns free-form customer text into a scheduling intent.
// Implementations must return an error for anything that does not map
// cleanly onto one of the three actions; the engine treats oracle errors
// as transient and keeps the conversation open.
type DateOracle interface {
	ExtractDate(ctx context.Context, req OracleRequest) (OracleResult, error)
}

type notificationRepository interface {
	Create(ctx context.Context, n model.Notification) (uuid.UUID, error)
	SetConversationState(ctx context.Context, id uuid.UUID, state model.ConversationState) error
	MarkRescheduled(ctx context.Context, id uuid.UUID) error
}

type conversationRepository interface {
	AppendTurn(ctx context.Context, notificationID uuid.UUID, role model.TurnRole, body string) (uuid.UUID, error)
	TurnsFor(ctx context.Context, notificationID uuid.UUID) ([]model.ConversationTurn, error)
}

type activityLog interface {
	Record(ctx context.Context, kind string, notificationID uuid.UUID, detail string) error
}

type smsSender interface {
	Send(ctx context.Context, to, body string) (string, error)
}

type stopCreator interface {
	CreateUnassignedStop(ctx context.Context, stop routeplanner.UnassignedStop) error
}

const (
	msgManualFollowup = "Thanks for letting us know. A member of our team will reach out to arrange a new delivery date."
	msgTrouble        = "Sorry, we're having trouble on our end. A member of our team will follow up with you shortly."
)

// Service is the rescheduling conversation controller.
type Service struct {
	repo     notificationRepository
	convRepo conversationRepository
	activity activityLog
	sender   smsSender
	oracle   DateOracle
	planner  stopCreator
	policies policy.Set
	location *time.Location
	now      func() time.Time
}

// NewService creates the reschedule engine. now is injectable for tests.
func NewService(
	repo notificationRepository,
	convRepo conversationRepository,
	activity activityLog,
	sender smsSender,
	oracle DateOracle,
	planner stopCreator,
	policies policy.Set,
	location *time.Location,
	now func() time.Time,
) *Service {
	if now == nil {
		now = time.Now
	}

	return &Service{
		repo:     repo,
		convRepo: convRepo,
		activity: activity,
		sender:   sender,
		oracle:   oracle,
		planner:  planner,
		policies: policies,
		location: location,
		now:      now,
	}
}

// Begin starts a rescheduling conversation after a "no" reply.
//
// Stores without a configured day policy go straight to a human: the
// customer gets a follow-up message and conversation_state stays none.
func (s *Service) Begin(ctx context.Context, n model.Notification) error {
	st, ok := s.policies.For(n.Store)
	if !ok || len(st.Days) == 0 {
		zlog.Logger.Info().
			Str("id", n.ID.String()).
			Str("store", n.Store).
			Msg("no delivery-day policy for store, handing off to manual follow-up")
		s.record(ctx, "handoff", n.ID, fmt.Sprintf("no day policy for store %s", n.Store))
		s.send(ctx, n, msgManualFollowup)
		return nil
	}

	if err := s.repo.SetConversationState(ctx, n.ID, model.ConversationRescheduling); err != nil {
		return fmt.Errorf("begin rescheduling: %w", err)
	}

	opening := fmt.Sprintf(
		"No problem, we can find a better day. We deliver to your area on %s. What day works for you?",
		st.DayNames(),
	)

	s.send(ctx, n, opening)
	s.appendTurn(ctx, n.ID, model.RoleAssistant, opening)
	s.record(ctx, "rescheduling", n.ID, "conversation opened")

	return nil
}

// HandleTurn processes one customer message inside an active conversation.
func (s *Service) HandleTurn(ctx context.Context, n model.Notification, text string) error {
	s.appendTurn(ctx, n.ID, model.RoleCustomer, text)

	st, _ := s.policies.For(n.Store)

	history, err := s.convRepo.TurnsFor(ctx, n.ID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to load conversation history")
		s.reply(ctx, n, msgTrouble)
		return nil
	}

	result, err := s.oracle.ExtractDate(ctx, OracleRequest{
		StoreTag:     n.Store,
		Store:        st,
		Today:        s.today(),
		OriginalDate: n.DeliveryDate,
		Address:      n.Address,
		History:      history,
	})
	if err != nil {
		// Transient by definition: the customer may simply try again.
		zlog.Logger.Warn().Err(err).Str("id", n.ID.String()).Msg("date oracle failed, keeping conversation open")
		s.record(ctx, "oracle_error", n.ID, err.Error())
		s.reply(ctx, n, msgTrouble)
		return nil
	}

	switch result.Action {
	case ActionConfirm:
		return s.confirm(ctx, n, st, result.Date)

	case ActionClarify:
		s.reply(ctx, n, result.Reply)
		return nil

	case ActionHandoff:
		if err := s.repo.SetConversationState(ctx, n.ID, model.ConversationHandoff); err != nil {
			return fmt.Errorf("handoff: %w", err)
		}
		s.record(ctx, "handoff", n.ID, "oracle requested human handoff")
		s.reply(ctx, n, result.Reply)
		return nil
	}

	// The oracle interface promises one of three actions; anything else is
	// a bug in the implementation and is treated like a transient failure.
	zlog.Logger.Error().Str("action", string(result.Action)).Str("id", n.ID.String()).Msg("oracle returned unknown action")
	s.reply(ctx, n, msgTrouble)
	return nil
}

// confirm validates the oracle's proposed date and, when it passes, books
// the new delivery as a fresh pending notification.
func (s *Service) confirm(ctx context.Context, n model.Notification, st policy.Store, date time.Time) error {
	if reason, ok := s.ValidateDate(date, st); !ok {
		s.record(ctx, "date_rejected", n.ID, fmt.Sprintf("%s: %s", date.Format("2006-01-02"), reason))
		s.reply(ctx, n, reason)
		return nil
	}

	if err := s.repo.MarkRescheduled(ctx, n.ID); err != nil {
		return fmt.Errorf("mark rescheduled: %w", err)
	}

	newRow := model.Notification{
		CustomerName:    n.CustomerName,
		Phone:           n.Phone,
		Store:           n.Store,
		Address:         n.Address,
		DeliveryDate:    date,
		TimeWindow:      "TBD",
		Product:         n.Product,
		Status:          model.StatusPending,
		RescheduledFrom: &n.ID,
	}

	newID, err := s.repo.Create(ctx, newRow)
	if err != nil {
		return fmt.Errorf("create rescheduled notification: %w", err)
	}

	// Best effort: the pending row above is authoritative regardless.
	if s.planner != nil {
		err := s.planner.CreateUnassignedStop(ctx, routeplanner.UnassignedStop{
			Name:    n.CustomerName,
			Phone:   n.Phone,
			Address: n.Address,
			Date:    date.Format("2006-01-02"),
			Notes:   fmt.Sprintf("rescheduled from %s", n.DeliveryDate.Format("2006-01-02")),
		})
		if err != nil {
			zlog.Logger.Warn().Err(err).Str("id", newID.String()).Msg("failed to push rescheduled stop to route planner")
		}
	}

	s.record(ctx, "rescheduled", newID, fmt.Sprintf("moved from %s to %s",
		n.DeliveryDate.Format("2006-01-02"), date.Format("2006-01-02")))

	confirmation := fmt.Sprintf(
		"You're all set! Your delivery has been moved to %s. We'll text you a time window the day before.",
		date.Format("Monday, January 2"),
	)
	s.reply(ctx, n, confirmation)

	return nil
}

// ValidateDate applies the server-side safety checks to a date the oracle
// claims the customer confirmed. The oracle is never trusted on its own.
// The returned reason is customer-facing.
func (s *Service) ValidateDate(date time.Time, st policy.Store) (string, bool) {
	today := s.today()

	if !date.After(today) {
		return "That date has already passed or is today. Could you pick a date further out?", false
	}

	if s.policies.MinLeadDays > 0 {
		earliest := today.AddDate(0, 0, s.policies.MinLeadDays)
		if date.Before(earliest) {
			return fmt.Sprintf(
				"We need at least %d days' notice to reschedule. The earliest we could do is %s. Would that work?",
				s.policies.MinLeadDays, earliest.Format("Monday, January 2"),
			), false
		}
	}

	if !st.AllowsReschedule(date.Weekday()) {
		return fmt.Sprintf(
			"We don't deliver to your area on %ss. We deliver on %s. Which of those days works for you?",
			date.Weekday(), st.DayNames(),
		), false
	}

	if st.IsBlackout(date) {
		return fmt.Sprintf(
			"We won't be delivering on %s. Could you pick another day?",
			date.Format("Monday, January 2"),
		), false
	}

	return "", true
}

// today returns the current calendar date at midnight in the service
// timezone, so all date comparisons are whole-day comparisons.
func (s *Service) today() time.Time {
	now := s.now().In(s.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
}

// reply sends a message and persists it as an assistant turn.
func (s *Service) reply(ctx context.Context, n model.Notification, body string) {
	s.send(ctx, n, body)
	s.appendTurn(ctx, n.ID, model.RoleAssistant, body)
}

// send delivers an SMS; failures are logged, never propagated, since the
// state transition that preceded the send must stand.
func (s *Service) send(ctx context.Context, n model.Notification, body string) {
	if _, err := s.sender.Send(ctx, n.Phone, body); err != nil {
		zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to send rescheduling message")
	}
}

func (s *Service) appendTurn(ctx context.Context, id uuid.UUID, role model.TurnRole, body string) {
	if _, err := s.convRepo.AppendTurn(ctx, id, role, body); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to append conversation turn")
	}
}

func (s *Service) record(ctx context.Context, kind string, id uuid.UUID, detail string) {
	if err := s.activity.Record(ctx, kind, id, detail); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to record activity event")
	}
}
