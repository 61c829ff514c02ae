package flowerclock

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDriverStepCadence(t *testing.T) {
	s, c, _ := newTestClock(t, at(3, 15, 45))
	d := NewDriver(s, c)

	d.Step(500 * time.Millisecond)
	if d.Ticks() != 0 {
		t.Fatalf("Ticks = %d after 500ms, want 0", d.Ticks())
	}
	d.Step(500 * time.Millisecond)
	if d.Ticks() != 1 {
		t.Fatalf("Ticks = %d after 1s, want 1", d.Ticks())
	}
	if s.Elapsed() != time.Second {
		t.Errorf("scene elapsed = %v, want 1s", s.Elapsed())
	}
}

func TestDriverStallFiresOnce(t *testing.T) {
	s, c, _ := newTestClock(t, at(3, 15, 45))
	d := NewDriver(s, c)

	d.Step(2500 * time.Millisecond)
	if d.Ticks() != 1 {
		t.Fatalf("Ticks = %d after a stall, want 1", d.Ticks())
	}
	d.Step(500 * time.Millisecond)
	if d.Ticks() != 2 {
		t.Errorf("Ticks = %d, want 2 once the remainder fills an interval", d.Ticks())
	}
}

func TestDriverUpdatesClock(t *testing.T) {
	s, c, clk := newTestClock(t, at(3, 15, 45))
	d := NewDriver(s, c)

	clk.now = at(3, 15, 46)
	for range 120 {
		d.Step(16 * time.Millisecond)
	}
	if got := c.Sample().Second; got != 46 {
		t.Errorf("Second = %d, want 46", got)
	}
	if got := c.Pins()[2].Rotation; got != 276 {
		t.Errorf("second pin = %v, want 276", got)
	}
}

func TestDriverCustomInterval(t *testing.T) {
	s := NewScene()
	s.Root().AddChild(NewGroup("page").AddClass("flower-clock"))
	opts := DefaultOptions()
	opts.Interval = 250 * time.Millisecond
	d := NewDriver(s, New(s, NewSampler(FixedClock(at(1, 2, 3))), opts))

	d.Step(time.Second)
	d.Step(250 * time.Millisecond)
	if d.Ticks() != 2 {
		t.Errorf("Ticks = %d, want 2", d.Ticks())
	}
}

func TestDriverRunStopsOnCancel(t *testing.T) {
	s, c, _ := newTestClock(t, at(3, 15, 45))
	d := NewDriver(s, c)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	frames := 0
	err := d.Run(ctx, 100, func() error {
		frames++
		return nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if frames == 0 {
		t.Error("no frame ran")
	}
	if s.Elapsed() == 0 {
		t.Error("scene was not advanced")
	}
}

func TestDriverRunFrameError(t *testing.T) {
	s, c, _ := newTestClock(t, at(3, 15, 45))
	d := NewDriver(s, c)

	errStop := errors.New("stop")
	err := d.Run(context.Background(), 100, func() error { return errStop })
	if !errors.Is(err, errStop) {
		t.Errorf("Run = %v, want %v", err, errStop)
	}
}

func TestDriverUpdateStepsOneTick(t *testing.T) {
	s, c, _ := newTestClock(t, at(3, 15, 45))
	d := NewDriver(s, c)

	d.Update()
	if s.Elapsed() <= 0 || s.Elapsed() > time.Second {
		t.Errorf("Elapsed() = %v after one Update", s.Elapsed())
	}
	if d.Ticks() != 0 {
		t.Errorf("Ticks = %d after one frame, want 0", d.Ticks())
	}
}
