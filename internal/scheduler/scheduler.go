// Package scheduler fires the daily batches at configured local times,
// at most once per calendar day each. Firing state is an explicit value
// passed through the polling function, so restart behavior (an eager
// catch-up check at startup) is a pure function of the clock and the
// trigger state.
package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/zlog"
)

const dateLayout = "2006-01-02"

// Trigger is one daily scheduled action: a local time-of-day, the
// weekdays it runs on, and the last calendar date it fired. The zero
// LastFired means it has never fired.
type Trigger struct {
	Name      string
	Hour      int
	Minute    int
	Weekdays  map[time.Weekday]bool
	LastFired string // calendar date, resets implicitly on date rollover
}

// Due reports whether the trigger should fire at the given instant: the
// weekday is valid, the time-of-day threshold has passed, and it has not
// already fired today. Firing any time after the threshold counts —
// that is what makes the startup catch-up check work.
func (t Trigger) Due(now time.Time) bool {
	if !t.Weekdays[now.Weekday()] {
		return false
	}

	if t.LastFired == now.Format(dateLayout) {
		return false
	}

	return now.Hour()*60+now.Minute() >= t.Hour*60+t.Minute
}

// Fired returns the trigger state after firing at the given instant.
func (t Trigger) Fired(now time.Time) Trigger {
	t.LastFired = now.Format(dateLayout)
	return t
}

type batchRunner interface {
	SendCustomerBatch(ctx context.Context) error
	SendStaffSummary(ctx context.Context) error
}

// Poller drives both daily triggers off a single cooperative loop.
type Poller struct {
	batch    batchRunner
	customer Trigger
	staff    Trigger
	interval time.Duration
	location *time.Location
	now      func() time.Time
}

// NewPoller creates the scheduler. now is injectable for tests.
func NewPoller(batch batchRunner, customer, staff Trigger, interval time.Duration, location *time.Location, now func() time.Time) *Poller {
	if interval <= 0 {
		interval = time.Minute
	}
	if now == nil {
		now = time.Now
	}

	return &Poller{
		batch:    batch,
		customer: customer,
		staff:    staff,
		interval: interval,
		location: location,
		now:      now,
	}
}

// Run polls until the context is done. The first check happens
// immediately: a process started after a trigger's threshold fires it
// right away instead of waiting for tomorrow.
func (p *Poller) Run(ctx context.Context) {
	p.Tick(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("scheduler stopped")
			return
		case <-ticker.C:
			p.Tick(ctx)
		}
	}
}

// Tick runs one polling pass. A trigger that fires is marked fired for
// today whether or not its batch succeeded: failed batches are retried by
// operators through the manual surface, never by the next tick.
func (p *Poller) Tick(ctx context.Context) {
	now := p.now().In(p.location)

	if p.customer.Due(now) {
		zlog.Logger.Info().Str("trigger", p.customer.Name).Msg("firing customer batch")
		if err := p.batch.SendCustomerBatch(ctx); err != nil {
			zlog.Logger.Error().Err(err).Msg("customer batch failed")
		}
		p.customer = p.customer.Fired(now)
	}

	if p.staff.Due(now) {
		zlog.Logger.Info().Str("trigger", p.staff.Name).Msg("firing staff summary")
		if err := p.batch.SendStaffSummary(ctx); err != nil {
			zlog.Logger.Error().Err(err).Msg("staff summary failed")
		}
		p.staff = p.staff.Fired(now)
	}
}
