package flowerclock

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Transition animates numeric attributes of a single node after an optional
// delay. Create one with Scene.Transition, configure it with the chained
// setters, and let Scene.Advance drive it.
//
// Transitions are keyed by (node, name). When a transition starts it
// interrupts every other transition on the same node with the same name,
// leaving the attributes wherever the interrupted one had moved them.
// Start values are read when the delay elapses, not when the transition is
// created.
type Transition struct {
	Name string

	target   *Node
	seq      uint64
	delay    float32 // milliseconds
	duration float32 // milliseconds
	easing   ease.TweenFunc
	attrs    []attrTween

	elapsed float32
	started bool
	Done    bool
}

type attrTween struct {
	attr  Attr
	to    float64
	tween *gween.Tween
}

// Target returns the animated node.
func (t *Transition) Target() *Node {
	return t.target
}

// Duration sets how long the interpolation runs once started.
func (t *Transition) Duration(d time.Duration) *Transition {
	t.duration = millis(d)
	return t
}

// Delay sets how long the transition waits before it starts.
func (t *Transition) Delay(d time.Duration) *Transition {
	t.delay = millis(d)
	return t
}

// Ease sets the easing function. Defaults to ease.Linear.
func (t *Transition) Ease(fn ease.TweenFunc) *Transition {
	if fn != nil {
		t.easing = fn
	}
	return t
}

// Attr adds an attribute to interpolate towards to. Setting the same attribute
// twice keeps the last target.
func (t *Transition) Attr(a Attr, to float64) *Transition {
	for i := range t.attrs {
		if t.attrs[i].attr == a {
			t.attrs[i].to = to
			return t
		}
	}
	t.attrs = append(t.attrs, attrTween{attr: a, to: to})
	return t
}

// Interrupt stops the transition where it is.
func (t *Transition) Interrupt() {
	t.Done = true
}

// Started reports whether the delay has elapsed.
func (t *Transition) Started() bool {
	return t.started
}

// update advances the transition by dt milliseconds. It returns true on the
// call that starts the transition so the scene can interrupt its rivals.
func (t *Transition) update(dt float32) (justStarted bool) {
	if t.Done {
		return false
	}
	if t.target == nil || t.target.IsDisposed() {
		t.Done = true
		return false
	}

	t.elapsed += dt
	step := dt
	if !t.started {
		if t.elapsed < t.delay {
			return false
		}
		t.start()
		justStarted = true
		step = t.elapsed - t.delay
	}

	allDone := true
	for i := range t.attrs {
		at := &t.attrs[i]
		field := t.target.attrField(at.attr)
		if field == nil {
			continue
		}
		if at.tween == nil {
			*field = at.to
			continue
		}
		val, finished := at.tween.Update(step)
		if finished {
			*field = at.to
		} else {
			*field = float64(val)
			allDone = false
		}
	}
	t.Done = allDone
	t.target.MarkDirty()
	return justStarted
}

// start captures the current attribute values as tween origins. Rotations
// turn the short way round; the field still lands on the unwrapped target.
func (t *Transition) start() {
	t.started = true
	for i := range t.attrs {
		at := &t.attrs[i]
		field := t.target.attrField(at.attr)
		if field == nil || t.duration <= 0 {
			continue
		}
		from, to := *field, at.to
		if at.attr == AttrRotation {
			to = from + shortestArc(from, at.to)
		}
		at.tween = gween.New(float32(from), float32(to), t.duration, t.easing)
	}
}

// shortestArc returns the turn in degrees from one angle to another, in
// (-180, 180].
func shortestArc(from, to float64) float64 {
	d := math.Mod(to-from, 360)
	switch {
	case d > 180:
		d -= 360
	case d <= -180:
		d += 360
	}
	return d
}

func millis(d time.Duration) float32 {
	return float32(d) / float32(time.Millisecond)
}

// --- Scene integration ---

// Transition schedules a new transition on node under name and returns it
// for configuration. It does not interrupt anything until it starts.
func (s *Scene) Transition(node *Node, name string) *Transition {
	s.transitionSeq++
	t := &Transition{
		Name:   name,
		target: node,
		seq:    s.transitionSeq,
		easing: ease.Linear,
	}
	s.transitions = append(s.transitions, t)
	return t
}

// Transitions returns the scheduled and running transitions. The returned
// slice MUST NOT be mutated.
func (s *Scene) Transitions() []*Transition {
	return s.transitions
}

// TransitionsOf returns the live transitions targeting node.
func (s *Scene) TransitionsOf(node *Node) []*Transition {
	var out []*Transition
	for _, t := range s.transitions {
		if t.target == node && !t.Done {
			out = append(out, t)
		}
	}
	return out
}

// advanceTransitions steps every transition by dt milliseconds and drops the
// finished ones.
func (s *Scene) advanceTransitions(dt float32) {
	for i := 0; i < len(s.transitions); i++ {
		t := s.transitions[i]
		if t.update(dt) {
			s.interruptRivals(t)
		}
	}

	live := s.transitions[:0]
	for _, t := range s.transitions {
		if !t.Done {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.transitions); i++ {
		s.transitions[i] = nil
	}
	s.transitions = live
}

// interruptRivals ends transitions sharing winner's node and name: running
// ones are frozen in place, older scheduled ones are cancelled.
func (s *Scene) interruptRivals(winner *Transition) {
	for _, t := range s.transitions {
		if t == winner || t.Done || t.target != winner.target || t.Name != winner.Name {
			continue
		}
		if t.started || t.seq < winner.seq {
			t.Done = true
		}
	}
}
