package earcut

import "fmt"

// filterPoints walks the ring starting at start, removing every
// non-Steiner node that either coincides with its successor or is
// collinear with both neighbors. end, if non-null, is the terminator the
// scan must return to before stopping; nullIndex means "use start".
//
// Removal restarts the scan at prev(p) (the new end), since removing p
// may have turned prev(p) into a duplicate/collinear point too. The scan
// terminates either when the ring collapses to a single self-loop or
// when it returns to end without performing a removal.
func filterPoints(a *arena, start, end int) int {
	if end == nullIndex {
		end = start
	}
	p := start
	for {
		again := false
		n := a.node(p)
		if a.assertFinite && !finite(n.x, n.y) {
			panic(fmt.Sprintf("earcut: non-finite coordinate at vertex %d: (%g, %g)", n.vi, n.x, n.y))
		}
		if !n.steiner && (equalPoints(n, a.node(n.next)) || area(a.node(n.prev), n, a.node(n.next)) == 0) {
			a.remove(p)
			end = a.node(p).prev
			p = end
			if p == a.node(p).next {
				return p
			}
			again = true
		} else {
			p = n.next
		}
		if !again && p == end {
			return end
		}
	}
}
