package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/courierloop/delivery-notifier/internal/api/dto"
	"github.com/courierloop/delivery-notifier/internal/model"
	"github.com/courierloop/delivery-notifier/internal/phone"
	"github.com/courierloop/delivery-notifier/internal/policy"
	"github.com/courierloop/delivery-notifier/internal/repository/notification"
	"github.com/courierloop/delivery-notifier/internal/timewindow"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/ingest/mock.go -package=mocks

type notificationRepository interface {
	Create(ctx context.Context, n model.Notification) (uuid.UUID, error)
}

type activityLog interface {
	Record(ctx context.Context, kind string, notificationID uuid.UUID, detail string) error
}

type planRegistrar interface {
	RegisterPlan(ctx context.Context, planID string) error
}

// Result summarizes what one inbound event produced.
type Result struct {
	Ingested   int `json:"ingested"`
	Duplicates int `json:"duplicates"`
	Skipped    int `json:"skipped"`
}

// Service converts inbound delivery events into pending notifications.
type Service struct {
	repo           notificationRepository
	activity       activityLog
	planner        planRegistrar
	policies       policy.Set
	classification map[string]string // stop classification key -> store tag
	countryCode    string
	location       *time.Location
}

// NewService creates the ingestion gateway.
func NewService(
	repo notificationRepository,
	activity activityLog,
	planner planRegistrar,
	policies policy.Set,
	classification map[string]string,
	countryCode string,
	location *time.Location,
) *Service {
	return &Service{
		repo:           repo,
		activity:       activity,
		planner:        planner,
		policies:       policies,
		classification: classification,
		countryCode:    countryCode,
		location:       location,
	}
}

var dateLayouts = []string{"2006-01-02", "01/02/2006", time.RFC3339}

// HandleEvent processes one normalized delivery event. Per-stop problems
// never fail the event: bad stops are logged and skipped, duplicates are
// accepted as no-ops.
func (s *Service) HandleEvent(ctx context.Context, ev dto.DeliveryEvent) Result {
	var res Result

	if ev.Shape == dto.ShapeUnrecognized {
		zlog.Logger.Warn().Str("type", ev.Type).Msg("unrecognized delivery event shape, dropping")
		s.record(ctx, "skipped", uuid.Nil, "unrecognized event shape")
		return res
	}

	// Reconciliation hook. The local rows stay authoritative either way.
	if ev.PlanID != "" && s.planner != nil {
		if err := s.planner.RegisterPlan(ctx, ev.PlanID); err != nil {
			zlog.Logger.Warn().Err(err).Str("plan_id", ev.PlanID).Msg("failed to register plan for reconciliation")
		}
	}

	for _, stop := range ev.Stops {
		switch s.ingestStop(ctx, stop) {
		case stopIngested:
			res.Ingested++
		case stopDuplicate:
			res.Duplicates++
		case stopSkipped:
			res.Skipped++
		}
	}

	return res
}

type stopOutcome int

const (
	stopIngested stopOutcome = iota
	stopDuplicate
	stopSkipped
)

func (s *Service) ingestStop(ctx context.Context, stop dto.Stop) stopOutcome {
	normalized, err := phone.Normalize(stop.Phone, s.countryCode)
	if err != nil {
		zlog.Logger.Warn().Str("stop_id", stop.ID).Msg("stop has no usable phone, skipping")
		s.record(ctx, "skipped", uuid.Nil, fmt.Sprintf("stop %s: no usable phone", stop.ID))
		return stopSkipped
	}

	date, err := s.parseDate(stop.ScheduledDate)
	if err != nil {
		zlog.Logger.Warn().Str("stop_id", stop.ID).Str("scheduled_date", stop.ScheduledDate).Msg("stop has no usable delivery date, skipping")
		s.record(ctx, "skipped", uuid.Nil, fmt.Sprintf("stop %s: bad delivery date %q", stop.ID, stop.ScheduledDate))
		return stopSkipped
	}

	store := s.resolveStore(stop.Classification)

	// Stores with a configured policy only deliver on their valid days.
	if st, ok := s.policies.For(store); ok && !st.AllowsDay(date.Weekday()) {
		zlog.Logger.Info().
			Str("stop_id", stop.ID).
			Str("store", store).
			Str("weekday", date.Weekday().String()).
			Msg("stop falls outside valid delivery days, skipping")
		s.record(ctx, "skipped", uuid.Nil,
			fmt.Sprintf("stop %s: %s is not a delivery day for %s", stop.ID, date.Weekday(), store))
		return stopSkipped
	}

	n := model.Notification{
		ExternalID:   stop.ID,
		CustomerName: stop.Name,
		Phone:        normalized,
		Store:        store,
		Address:      stop.Address,
		DeliveryDate: date,
		TimeWindow:   timewindow.FromString(stop.ArrivalTime).Text(),
		RawTime:      stop.ArrivalTime,
		Product:      stop.Product,
		Driver:       stop.Driver,
		Status:       model.StatusPending,
	}

	id, err := s.repo.Create(ctx, n)
	if err != nil {
		if errors.Is(err, notification.ErrDuplicateStop) {
			zlog.Logger.Debug().Str("stop_id", stop.ID).Msg("stop already ingested")
			return stopDuplicate
		}

		zlog.Logger.Error().Err(err).Str("stop_id", stop.ID).Msg("failed to create notification")
		s.record(ctx, "skipped", uuid.Nil, fmt.Sprintf("stop %s: %v", stop.ID, err))
		return stopSkipped
	}

	s.record(ctx, "ingested", id, fmt.Sprintf("stop %s for %s on %s", stop.ID, store, date.Format("2006-01-02")))
	return stopIngested
}

// resolveStore maps the stop's classification key to a store tag. Keys
// without a mapping resolve to "unknown", which has no day policy and is
// handled manually on decline.
func (s *Service) resolveStore(classification string) string {
	if tag, ok := s.classification[classification]; ok {
		return tag
	}
	if _, ok := s.policies.Stores[classification]; ok {
		return classification
	}
	return "unknown"
}

func (s *Service) parseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, s.location); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.location), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", raw)
}

func (s *Service) record(ctx context.Context, kind string, id uuid.UUID, detail string) {
	if err := s.activity.Record(ctx, kind, id, detail); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to record activity event")
	}
}
