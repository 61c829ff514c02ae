package flowerclock

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Driver owns a clock, its scene and the periodic update. Hosts either call
// Step from their own frame loop (ebiten, terminal) or hand control to Run.
// Only one goroutine may use a Driver.
type Driver struct {
	scene    *Scene
	clock    *FlowerClock
	interval time.Duration
	acc      time.Duration
	ticks    int
}

// NewDriver returns a driver updating clock every clock.Options().Interval.
func NewDriver(scene *Scene, clock *FlowerClock) *Driver {
	interval := clock.Options().Interval
	if interval <= 0 {
		interval = time.Second
	}
	return &Driver{scene: scene, clock: clock, interval: interval}
}

// Scene returns the driven scene.
func (d *Driver) Scene() *Scene {
	return d.scene
}

// Clock returns the driven clock.
func (d *Driver) Clock() *FlowerClock {
	return d.clock
}

// Ticks returns how many clock updates have run.
func (d *Driver) Ticks() int {
	return d.ticks
}

// Step advances animations by dt and updates the clock when an interval has
// elapsed. A long stall produces a single update; the remainder is kept so
// the cadence stays aligned.
func (d *Driver) Step(dt time.Duration) {
	d.scene.Advance(dt)
	d.acc += dt
	if d.acc < d.interval {
		return
	}
	d.acc %= d.interval
	d.clock.Update()
	d.ticks++
}

// Update steps the driver by one ebiten tick.
func (d *Driver) Update() {
	d.Step(time.Second / time.Duration(ebiten.TPS()))
}

// Run steps the driver fps times per second until ctx is done, calling frame
// after every step. It returns nil on cancellation or the first frame error.
func (d *Driver) Run(ctx context.Context, fps int, frame func() error) error {
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			d.Step(now.Sub(last))
			last = now
			if frame == nil {
				continue
			}
			if err := frame(); err != nil {
				return err
			}
		}
	}
}
