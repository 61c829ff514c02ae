package flowerclock

import "time"

// Scene is the top-level object that owns the node tree, the running
// transitions and callbacks deferred to the next frame.
type Scene struct {
	root  *Node
	debug bool

	transitions   []*Transition
	transitionSeq uint64
	deferred      []func()

	// elapsed is the total time advanced so far.
	elapsed time.Duration
}

// NewScene creates a new scene with a pre-created root group. The root plays
// the part of the host document: mount points are plain children of it.
func NewScene() *Scene {
	return &Scene{root: NewGroup("root")}
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// Select returns the first node under the root matching selector, or nil.
func (s *Scene) Select(selector string) *Node {
	if s.root.Matches(selector) {
		return s.root
	}
	return s.root.Select(selector)
}

// Defer queues fn to run at the start of the next Advance, after the
// current frame's work is done.
func (s *Scene) Defer(fn func()) {
	s.deferred = append(s.deferred, fn)
}

// Advance runs deferred callbacks, steps transitions by dt and refreshes
// world transforms.
func (s *Scene) Advance(dt time.Duration) {
	if len(s.deferred) > 0 {
		pending := s.deferred
		s.deferred = nil
		for _, fn := range pending {
			fn()
		}
	}

	s.elapsed += dt
	s.advanceTransitions(millis(dt))
	updateWorldTransform(s.root, identityTransform, 1.0, false)
}

// Elapsed returns the total time the scene has been advanced.
func (s *Scene) Elapsed() time.Duration {
	return s.elapsed
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and renderer activity is logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// Debug reports whether debug mode is on.
func (s *Scene) Debug() bool {
	return s.debug
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool
