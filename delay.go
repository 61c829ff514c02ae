package flowerclock

import "time"

// DelayScheduler hands out staggered entrance delays. One scheduler is
// shared by every creation pass of a renderer so that petals and pins enter
// in a single sequence. It is never reset.
type DelayScheduler struct {
	next      time.Duration
	increment time.Duration
	issued    int
}

// NewDelayScheduler returns a scheduler whose first delay is start and which
// advances by increment on every Next.
func NewDelayScheduler(start, increment time.Duration) *DelayScheduler {
	return &DelayScheduler{next: start, increment: increment}
}

// Next returns the current delay and advances the counter.
func (d *DelayScheduler) Next() time.Duration {
	v := d.next
	d.next += d.increment
	d.issued++
	return v
}

// Peek returns the delay the next call to Next will return.
func (d *DelayScheduler) Peek() time.Duration {
	return d.next
}

// Increment returns the step between consecutive delays.
func (d *DelayScheduler) Increment() time.Duration {
	return d.increment
}

// Issued returns how many delays have been handed out.
func (d *DelayScheduler) Issued() int {
	return d.issued
}

// NewDelaySchedulerFor returns the scheduler a clock built with opts uses.
func NewDelaySchedulerFor(opts Options) *DelayScheduler {
	return NewDelayScheduler(opts.EntranceDelay, opts.DelayIncrement())
}
