// Package controller owns the mutable simulation state (hour, operating
// mode, history) and drives the clock. All reads and writes go through
// Controller methods; the tick loop and the mode toggle are the only
// writers and both run serially, so a single mutex preserves the
// one-writer-at-a-time discipline.
package controller

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/towersim/towersim/pkg/log"
	"github.com/towersim/towersim/pkg/sim"
	"github.com/towersim/towersim/pkg/types"

	"github.com/levenlabs/go-lflag"
)

// Listener receives the fresh snapshot and the history window after every
// tick (and after a mode change). Listeners are invoked synchronously on the
// tick goroutine and must not block.
type Listener func(types.Snapshot, []types.HistorySample)

// Controller holds the simulation clock and state and recomputes the
// snapshot after every mutation.
type Controller struct {
	mu       sync.Mutex
	hour     int
	mode     types.OperatingMode
	snapshot types.Snapshot
	history  *History

	tickPeriod time.Duration
	listeners  []Listener
}

// Configured initializes the Controller and registers its flags.
func Configured() *Controller {
	c := New(types.ModeAIOptimized)

	tickPeriod := lflag.Duration("tick-period", 2*time.Second, "Period between simulated hour advances")
	startMode := lflag.String("start-mode", string(types.ModeAIOptimized), "Operating mode at startup (ai_optimized or manual)")

	lflag.Do(func() {
		c.tickPeriod = *tickPeriod
		mode, err := types.ParseOperatingMode(*startMode)
		if err != nil {
			panic(fmt.Errorf("invalid start-mode: %w", err))
		}
		c.mu.Lock()
		c.mode = mode
		c.snapshot = ComputeSnapshot(c.hour, mode, time.Now())
		c.mu.Unlock()
	})

	return c
}

// New creates a Controller at hour 0 with an empty history and an initial
// snapshot already computed.
func New(mode types.OperatingMode) *Controller {
	return &Controller{
		mode:       mode,
		snapshot:   ComputeSnapshot(0, mode, time.Now()),
		history:    NewHistory(types.HistoryCapacity),
		tickPeriod: 2 * time.Second,
	}
}

// ComputeSnapshot derives the full per-tick output for the given hour and
// mode. It is a pure function of its inputs apart from the timestamp.
func ComputeSnapshot(hour int, mode types.OperatingMode, now time.Time) types.Snapshot {
	env := sim.Environment(hour)
	load := sim.CoolingLoadKW(env.TemperatureC, env.Peak, env.Daylight, mode)

	return types.Snapshot{
		Timestamp:         now,
		Hour:              hour,
		Mode:              mode,
		TemperatureC:      env.TemperatureC,
		CoolingLoadKW:     load,
		IceLevelPct:       sim.IceLevelPct(hour, env.Peak, mode),
		SolarKW:           sim.SolarKW(hour, env.Daylight),
		WaterRecoveredLPH: sim.WaterRecoveredLPH(load),
		Analysis:          sim.Analyze(hour, env.Daylight, mode),
	}
}

// Listen registers a per-tick callback. Register before Run starts; there is
// no unregister.
func (c *Controller) Listen(fn Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Tick advances the clock one hour (wrapping at 24), recomputes the
// snapshot, and appends one history sample derived from it.
func (c *Controller) Tick() {
	c.mu.Lock()
	c.hour = (c.hour + 1) % 24
	c.snapshot = ComputeSnapshot(c.hour, c.mode, time.Now())
	c.history.Append(types.HistorySample{
		TimeLabel: fmt.Sprintf("%02d:00", c.hour),
		LoadKW:    c.snapshot.CoolingLoadKW,
		SolarKW:   c.snapshot.SolarKW,
	})
	snap := c.snapshot
	samples := c.history.Samples()
	listeners := c.listeners
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(snap, samples)
	}
}

// SetMode switches the operating mode. The snapshot is recomputed
// immediately so the change is visible before the next tick; the history
// window is untouched.
func (c *Controller) SetMode(mode types.OperatingMode) error {
	if !mode.Valid() {
		return fmt.Errorf("unknown operating mode: %q", mode)
	}

	c.mu.Lock()
	c.mode = mode
	c.snapshot = ComputeSnapshot(c.hour, mode, time.Now())
	snap := c.snapshot
	samples := c.history.Samples()
	listeners := c.listeners
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(snap, samples)
	}
	return nil
}

// Mode returns the current operating mode.
func (c *Controller) Mode() types.OperatingMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Hour returns the current simulated hour.
func (c *Controller) Hour() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hour
}

// Snapshot returns the most recently computed snapshot.
func (c *Controller) Snapshot() types.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot
}

// History returns a copy of the chart window, oldest first.
func (c *Controller) History() []types.HistorySample {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.history.Samples()
}

// Run drives the clock on the configured period until the context is
// canceled. Each tick completes fully before the next can fire; cancellation
// never aborts in-flight work.
func (c *Controller) Run(ctx context.Context) error {
	log.Ctx(ctx).InfoContext(ctx, "starting simulation clock",
		slog.Duration("tickPeriod", c.tickPeriod),
		slog.String("mode", string(c.Mode())))

	ticker := time.NewTicker(c.tickPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Ctx(ctx).InfoContext(ctx, "simulation clock stopped", slog.Int("hour", c.Hour()))
			return nil
		case <-ticker.C:
			c.Tick()
		}
	}
}
