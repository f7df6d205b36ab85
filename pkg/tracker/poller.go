// Package tracker is the ingestion engine: it polls the upstream API,
// normalises what comes back and reconciles it into the snapshot store.
package tracker

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/frotawatch/frotawatch/pkg/snapshot"
	"github.com/frotawatch/frotawatch/pkg/truckscontrol"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"
)

// The upstream enforces minimum polling intervals (30s for messages, 5min
// for the registration lists); both cycles stay above them.
const (
	messageInterval = 35 * time.Second
	refreshInterval = 5 * time.Minute

	stepPause         = 2 * time.Second
	trailerRetryDelay = 5 * time.Second

	emptyVehiclesRetry = 60 * time.Second

	startupTrailerAttempts = 3
	refreshTrailerAttempts = 2
)

type Poller struct {
	client *truckscontrol.Client
	store  *snapshot.Store

	vehiclesTask task
	driversTask  task
	trailersTask task
	messagesTask task
}

// task guards one fetch type against overlapping with itself. Different
// fetch types may interleave freely.
type task struct {
	name     string
	inFlight atomic.Bool
}

func NewPoller(client *truckscontrol.Client, store *snapshot.Store) *Poller {
	return &Poller{
		client: client,
		store:  store,

		vehiclesTask: task{name: "vehicles"},
		driversTask:  task{name: "drivers"},
		trailersTask: task{name: "trailers"},
		messagesTask: task{name: "messages"},
	}
}

func (p *Poller) run(ctx context.Context, t *task, fetch func(context.Context)) {
	if !t.inFlight.CompareAndSwap(false, true) {
		log.Warn().Str("task", t.name).Msg("Previous fetch still in flight, skipping")
		return
	}
	defer t.inFlight.Store(false)

	fetch(ctx)
}

// Run blocks until ctx is cancelled, driving the startup sequence and then
// the two repeating cycles.
func (p *Poller) Run(ctx context.Context) {
	log.Info().Msg("Starting fleet poller")

	var wg conc.WaitGroup

	p.startup(ctx, &wg)

	wg.Go(func() {
		p.loop(ctx, messageInterval, func(ctx context.Context) {
			p.run(ctx, &p.messagesTask, p.fetchMessages)
		})
	})

	wg.Go(func() {
		p.loop(ctx, refreshInterval, func(ctx context.Context) {
			p.refresh(ctx, refreshTrailerAttempts)
		})
	})

	wg.Wait()

	log.Info().Msg("Fleet poller stopped")
}

// startup runs the fetches once, in dependency order, with pauses between
// steps to respect upstream rate limits. If the vehicle table is still
// empty afterwards one delayed retry is scheduled on the caller's wait
// group, so shutdown waits for it like any other cycle.
func (p *Poller) startup(ctx context.Context, wg *conc.WaitGroup) {
	p.run(ctx, &p.vehiclesTask, p.fetchVehicles)
	if !pause(ctx, stepPause) {
		return
	}

	p.run(ctx, &p.driversTask, p.fetchDrivers)
	if !pause(ctx, stepPause) {
		return
	}

	p.run(ctx, &p.trailersTask, func(ctx context.Context) {
		p.fetchTrailers(ctx, startupTrailerAttempts)
	})
	if !pause(ctx, stepPause) {
		return
	}

	p.run(ctx, &p.messagesTask, p.fetchMessages)

	if p.store.VehicleCount() == 0 {
		log.Warn().Msg("Vehicle table empty after startup, retrying in 60s")

		wg.Go(func() {
			if pause(ctx, emptyVehiclesRetry) {
				p.run(ctx, &p.vehiclesTask, p.fetchVehicles)
			}
		})
	}
}

// refresh is the slow cycle body: registration lists then the trailer
// roster, serialised with the same inter-step pauses as startup.
func (p *Poller) refresh(ctx context.Context, trailerAttempts int) {
	p.run(ctx, &p.vehiclesTask, p.fetchVehicles)
	if !pause(ctx, stepPause) {
		return
	}

	p.run(ctx, &p.driversTask, p.fetchDrivers)
	if !pause(ctx, stepPause) {
		return
	}

	p.run(ctx, &p.trailersTask, func(ctx context.Context) {
		p.fetchTrailers(ctx, trailerAttempts)
	})
}

func (p *Poller) loop(ctx context.Context, interval time.Duration, cycle func(context.Context)) {
	for {
		if !pause(ctx, interval) {
			return
		}

		cycle(ctx)
	}
}

// pause waits for the duration unless the context ends first, reporting
// whether the caller should carry on.
func pause(ctx context.Context, duration time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(duration):
		return true
	}
}
