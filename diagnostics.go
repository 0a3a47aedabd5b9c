package earcut

import (
	"fmt"
	"strings"
)

// DumpRing renders the ring starting at arena index start as a table of
// idx, vi, prev, next, x, y, z columns, in the spirit of earcutr's
// dump/cycle_dump debug helpers (present in original_source, dropped
// from the teacher). earcutLinked calls it on every recovery-pass
// escalation when a debug hook is installed (see options.go
// WithDebugHook); since arena is unexported, this is the only path by
// which code outside this package ever sees its output.
func DumpRing(a *arena, start int) string {
	if start == nullIndex {
		return "<empty ring>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%4s %4s %4s %4s %10s %10s %6s\n", "idx", "vi", "prev", "next", "x", "y", "z")
	p := start
	count := 0
	for {
		n := a.node(p)
		fmt.Fprintf(&b, "%4d %4d %4d %4d %10.4f %10.4f %6d\n", n.idx, n.vi, n.prev, n.next, n.x, n.y, n.z)
		p = n.next
		count++
		if p == start || count > len(a.nodes) {
			break
		}
	}
	return b.String()
}
