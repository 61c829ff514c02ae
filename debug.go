package flowerclock

import (
	"fmt"
	"io"
	"os"
)

// debugOut is where debug lines go. Tests swap it for a buffer.
var debugOut io.Writer = os.Stderr

// debugf prints a tagged line to stderr when the scene is in debug mode.
func (s *Scene) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[flowerclock] "+format+"\n", args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("flowerclock debug: %s on disposed node %q", op, n.Name))
	}
}
