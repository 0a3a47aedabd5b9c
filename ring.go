package earcut

// hashThresholdFloats is the total-float-count cutoff below which the
// z-order hash setup cost isn't worth it and the linear-scan ear test
// (isEar) is used instead of the hashed one (isEarHashed). See §4.3/§4.6
// and §9 ("two ear-test implementations, not one").
const hashThresholdFloats = 80

// buildRing constructs a circular doubly linked ring from vertices
// [start, end) in dim-sized strides, winding it so the result matches
// clockwise. It returns the tail node's arena index and the index of the
// ring's leftmost node (minimum x, ties broken by insertion order).
//
// While inserting, if hashing is enabled on a, the arena's running
// bounding box is extended to cover every inserted point. invsize is not
// derived from this accumulated box: computeHashBounds (earcut.go) resets
// the box and recomputes it from the outer ring's coordinates alone.
func buildRing(a *arena, vertices []float64, start, end, dim int, clockwise bool) (tail, leftmost int) {
	last := nullIndex
	contourMinX := false
	var minX float64

	insert := func(i int) {
		x, y := vertices[i], vertices[i+1]
		last = a.insert(i/dim, x, y, last)
		if !contourMinX || x < minX {
			minX = x
			leftmost = last
			contourMinX = true
		}
		if a.useHash {
			if x < a.minx {
				a.minx = x
			}
			if x > a.maxx {
				a.maxx = x
			}
			if y < a.miny {
				a.miny = y
			}
			if y > a.maxy {
				a.maxy = y
			}
		}
	}

	if clockwise == (signedArea(vertices, start, end, dim) > 0) {
		for i := start; i < end; i += dim {
			insert(i)
		}
	} else {
		for i := end - dim; i >= start; i -= dim {
			insert(i)
		}
	}

	if last != nullIndex {
		n := a.node(last)
		if equalPoints(n, a.node(n.next)) {
			a.remove(last)
			last = a.node(last).next
		}
	}
	return last, leftmost
}
