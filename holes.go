package earcut

import (
	"math"
	"sort"
)

// eliminateHoles links every hole contour into the outer ring, producing
// a single ring without holes. Holes are bridged left-to-right by the
// x-coordinate of each hole's leftmost node, matching upstream earcut's
// tie-breaking behavior for nested/adjacent holes.
func eliminateHoles(a *arena, vertices []float64, holeIndices []int, outerNode, dim int) int {
	leftmosts := make([]int, 0, len(holeIndices))
	n := len(holeIndices)
	for i := 0; i < n; i++ {
		start := holeIndices[i] * dim
		var end int
		if i < n-1 {
			end = holeIndices[i+1] * dim
		} else {
			end = len(vertices)
		}
		tail, leftmost := buildRing(a, vertices, start, end, dim, false)
		if tail == a.node(tail).next {
			a.node(tail).steiner = true
		}
		leftmosts = append(leftmosts, leftmost)
	}

	sort.Slice(leftmosts, func(i, j int) bool {
		return a.node(leftmosts[i]).x < a.node(leftmosts[j]).x
	})

	for _, hole := range leftmosts {
		eliminateHole(a, hole, outerNode)
		outerNode = filterPoints(a, outerNode, a.node(outerNode).next)
	}
	return outerNode
}

// eliminateHole finds a bridge vertex on the outer ring for a single hole
// and splices the hole into the outer ring at that bridge.
func eliminateHole(a *arena, hole, outerNode int) {
	bridge := findHoleBridge(a, hole, outerNode)
	if bridge == nullIndex {
		return
	}
	b := splitBridgePolygon(a, bridge, hole)
	filterPoints(a, b, a.node(b).next)
}

// findHoleBridge implements David Eberly's algorithm for finding a
// bridge vertex between a hole's leftmost point and the outer ring.
func findHoleBridge(a *arena, hole, outerNode int) int {
	h := a.node(hole)
	hx, hy := h.x, h.y
	qx := math.Inf(-1)
	m := nullIndex

	p := outerNode
	for {
		pn := a.node(p)
		next := a.node(pn.next)
		if hy <= pn.y && hy >= next.y && next.y != pn.y {
			x := pn.x + (hy-pn.y)*(next.x-pn.x)/(next.y-pn.y)
			if x <= hx && x > qx {
				qx = x
				if x == hx {
					if hy == pn.y {
						return p
					}
					if hy == next.y {
						return pn.next
					}
				}
				if pn.x < next.x {
					m = p
				} else {
					m = pn.next
				}
			}
		}
		p = pn.next
		if p == outerNode {
			break
		}
	}
	if m == nullIndex {
		return nullIndex
	}

	if hx == qx {
		// hole touches an outer segment; pick the lower endpoint.
		return a.node(m).prev
	}

	// Look for points inside the triangle of hole point, segment
	// intersection, and m; if none qualify, m itself is the bridge.
	// Otherwise pick the candidate with the smallest tangent to the ray,
	// ties broken by larger x.
	stop := m
	mNode := a.node(m)
	mx, my := mNode.x, mNode.y
	tanMin := math.Inf(1)

	p = mNode.next
	for p != stop {
		pn := a.node(p)
		var x1, x3 float64
		if hy < my {
			x1, x3 = hx, qx
		} else {
			x1, x3 = qx, hx
		}
		if hx >= pn.x && pn.x >= mx && hx != pn.x &&
			pointInTriangle(x1, hy, mx, my, x3, hy, pn.x, pn.y) {
			tan := math.Abs(hy-pn.y) / (hx - pn.x)
			if (tan < tanMin || (tan == tanMin && pn.x > a.node(m).x)) && locallyInside(a, p, hole) {
				m = p
				tanMin = tan
			}
		}
		p = pn.next
	}

	return m
}

// splitBridgePolygon doubles as "merge two rings" and "split one ring
// into two": it creates two new nodes carrying a's and b's coordinates
// and vi, then rewires the four surrounding links so that a..b forms one
// cycle and the copies c,d close the other. When a and b belong to the
// same ring this splits it in two; when they belong to separate rings
// (outer ring + hole) this merges them into one. Returns d's index.
func splitBridgePolygon(a *arena, aIdx, bIdx int) int {
	an := a.node(aIdx)
	bn := a.node(bIdx)
	cIdx := a.insert(an.vi, an.x, an.y, nullIndex)
	dIdx := a.insert(bn.vi, bn.x, bn.y, nullIndex)

	oldAN := a.node(aIdx).next
	oldBP := a.node(bIdx).prev

	a.node(aIdx).next = bIdx
	a.node(bIdx).prev = aIdx

	a.node(cIdx).next = oldAN
	a.node(oldAN).prev = cIdx

	a.node(dIdx).next = cIdx
	a.node(cIdx).prev = dIdx

	a.node(oldBP).next = dIdx
	a.node(dIdx).prev = oldBP

	return dIdx
}
