package flowerclock

import "time"

// Clock is the wall-clock source the sampler reads.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local system time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// FixedClock returns a Clock stuck at t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// TimeSample is one reading of the clock face.
type TimeSample struct {
	Hour   int // 0..12, see TwelveHours
	Minute int
	Second int
}

// SampleLength is the number of values in a TimeSample.
const SampleLength = 3

// Values returns a fresh [hour, minute, second] slice. Every call allocates,
// so callers may reorder or truncate the result freely.
func (t TimeSample) Values() []float64 {
	return []float64{float64(t.Hour), float64(t.Minute), float64(t.Second)}
}

// PetalData returns the values bound to the petal pair in display order.
// Index 0 is the minute and index 1 the second; the second petal is drawn
// in front of the minute petal.
func (t TimeSample) PetalData() []float64 {
	return []float64{float64(t.Minute), float64(t.Second)}
}

// PinData returns the values bound to the pins: [hour, minute, second].
func (t TimeSample) PinData() []float64 {
	return t.Values()
}

// TwelveHours folds a 0..23 hour onto the clock face. Hours up to and
// including 12 are kept, so midnight is 0 and noon is 12.
func TwelveHours(hours int) int {
	if hours <= 12 {
		return hours
	}
	return hours - 12
}

// Sampler turns wall-clock readings into TimeSamples.
type Sampler struct {
	clock Clock
}

// NewSampler returns a sampler reading from clock, or from SystemClock when
// clock is nil.
func NewSampler(clock Clock) *Sampler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Sampler{clock: clock}
}

// Sample reads the clock once.
func (s *Sampler) Sample() TimeSample {
	return SampleAt(s.clock.Now())
}

// SampleAt converts t (in its own location) to a TimeSample.
func SampleAt(t time.Time) TimeSample {
	return TimeSample{
		Hour:   TwelveHours(t.Hour()),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}
