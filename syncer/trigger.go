// Package syncer decides when a reconciliation re-run is warranted. It is
// event-driven — local mutations and explicit refreshes push events — with
// one low-frequency periodic check to catch server-side changes made by a
// doctor or admin. Connectivity is inferred by probing the remote on the
// periodic tick; an offline→online transition fires its own event so
// pending local bookings get flushed promptly.
package syncer

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Reason says why a sync run fired.
type Reason string

const (
	ReasonConnectivity Reason = "connectivity_regained"
	ReasonMutation     Reason = "local_mutation"
	ReasonRefresh      Reason = "user_refresh"
	ReasonPeriodic     Reason = "periodic_check"
)

// Trigger serializes sync runs through a single consumer goroutine, so
// the run callback never executes concurrently with itself.
type Trigger struct {
	events   chan Reason
	run      func(ctx context.Context, reason Reason)
	probe    func(ctx context.Context) error
	schedule string
	log      zerolog.Logger

	online bool // touched only by the consumer goroutine
}

// New builds a trigger. run performs the actual sync work; probe checks
// remote reachability; schedule is a cron spec for the background check.
func New(run func(ctx context.Context, reason Reason), probe func(ctx context.Context) error, schedule string, log zerolog.Logger) *Trigger {
	return &Trigger{
		events:   make(chan Reason, 8),
		run:      run,
		probe:    probe,
		schedule: schedule,
		online:   true,
		log:      log,
	}
}

// Start launches the consumer goroutine and the periodic check. Both stop
// when ctx is cancelled.
func (t *Trigger) Start(ctx context.Context) error {
	c := cron.New()
	if _, err := c.AddFunc(t.schedule, func() { t.Notify(ReasonPeriodic) }); err != nil {
		return err
	}
	c.Start()

	go func() {
		defer c.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case reason := <-t.events:
				t.handle(ctx, reason)
			}
		}
	}()
	return nil
}

// Notify enqueues a sync request. Non-blocking: when the queue is full the
// event is dropped, since a run is already pending that will observe the
// same state.
func (t *Trigger) Notify(reason Reason) {
	select {
	case t.events <- reason:
	default:
		t.log.Debug().Str("reason", string(reason)).Msg("sync queue full, coalescing")
	}
}

func (t *Trigger) handle(ctx context.Context, reason Reason) {
	if reason == ReasonPeriodic && t.probe != nil {
		wasOnline := t.online
		t.online = t.probe(ctx) == nil
		switch {
		case !t.online:
			t.log.Debug().Msg("remote unreachable, skipping periodic sync")
			return
		case !wasOnline:
			reason = ReasonConnectivity
		}
	}
	t.log.Info().Str("reason", string(reason)).Msg("running sync")
	t.run(ctx, reason)
}
