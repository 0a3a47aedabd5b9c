package earcut

// locallyInside tests whether a diagonal from a toward b enters the
// polygon interior at a, using a's own convexity to pick which pair of
// half-plane tests applies.
func locallyInside(a *arena, aIdx, bIdx int) bool {
	an := a.node(aIdx)
	bn := a.node(bIdx)
	prevA := a.node(an.prev)
	nextA := a.node(an.next)
	if area(prevA, an, nextA) < 0 {
		return area(an, bn, nextA) >= 0 && area(an, prevA, bn) >= 0
	}
	return area(an, bn, prevA) < 0 || area(an, nextA, bn) < 0
}

// middleInside runs a standard half-open-edge point-in-polygon ray test
// on the midpoint of segment (a,b).
func middleInside(a *arena, aIdx, bIdx int) bool {
	an := a.node(aIdx)
	bn := a.node(bIdx)
	mx := (an.x + bn.x) / 2
	my := (an.y + bn.y) / 2

	inside := false
	p := aIdx
	for {
		pn := a.node(p)
		next := a.node(pn.next)
		if (pn.y > my) != (next.y > my) && next.y != pn.y &&
			mx < (next.x-pn.x)*(my-pn.y)/(next.y-pn.y)+pn.x {
			inside = !inside
		}
		p = pn.next
		if p == aIdx {
			break
		}
	}
	return inside
}

// intersectsPolygon reports whether segment (a,b) pseudo-intersects any
// ring edge whose endpoints are distinct from both a and b by vertex
// index.
func intersectsPolygon(a *arena, aIdx, bIdx int) bool {
	an := a.node(aIdx)
	bn := a.node(bIdx)
	p := aIdx
	for {
		pn := a.node(p)
		next := a.node(pn.next)
		if pn.vi != an.vi && next.vi != an.vi && pn.vi != bn.vi && next.vi != bn.vi &&
			pseudoIntersects(pn, next, an, bn) {
			return true
		}
		p = pn.next
		if p == aIdx {
			break
		}
	}
	return false
}

// isValidDiagonal reports whether (a,b) is a usable diagonal: not an
// edge already in the ring, not crossing any ring edge, locally inside
// the polygon at both endpoints, and passing through the interior at its
// midpoint.
func isValidDiagonal(a *arena, aIdx, bIdx int) bool {
	an := a.node(aIdx)
	bn := a.node(bIdx)
	if a.node(an.next).vi == bn.vi || a.node(an.prev).vi == bn.vi {
		return false
	}
	return !intersectsPolygon(a, aIdx, bIdx) &&
		locallyInside(a, aIdx, bIdx) && locallyInside(a, bIdx, aIdx) &&
		middleInside(a, aIdx, bIdx)
}

// cureLocalIntersections walks the ring looking for a degenerate local
// self-intersection — a,p,next(p),b where segment (a,b) crosses segment
// (p,next(p)) but both a and b stay locally inside toward each other —
// and resolves it by emitting the triangle (a,p,b) and removing p and
// next(p). Reading next(p)'s index off the already-removed p relies on
// the arena leaving a removed node's fields intact.
func cureLocalIntersections(a *arena, start int, triangles *[]int) int {
	p := start
	for {
		pn := a.node(p)
		aIdx := pn.prev
		bIdx := a.node(pn.next).next

		an := a.node(aIdx)
		bn := a.node(bIdx)
		if !equalPoints(an, bn) &&
			pseudoIntersects(an, pn, a.node(pn.next), bn) &&
			locallyInside(a, aIdx, bIdx) && locallyInside(a, bIdx, aIdx) {
			*triangles = append(*triangles, an.vi, pn.vi, bn.vi)

			a.remove(p)
			a.remove(a.node(p).next)

			p = bIdx
			start = bIdx
		}
		p = a.node(p).next
		if p == start {
			break
		}
	}
	return p
}

// splitEarcut looks for a valid diagonal splitting the ring into two,
// splices it, filters the two seams, and recurses earcutLinked on both
// halves at pass 0. If no diagonal is found the polygon is left
// untriangulated; this is the final rung of the recovery ladder and
// silently contributes no triangles for the affected sub-polygon.
func splitEarcut(a *arena, start int, triangles *[]int) {
	aIdx := start
	for {
		an := a.node(aIdx)
		bIdx := a.node(an.next).next
		for bIdx != an.prev {
			bn := a.node(bIdx)
			if an.vi != bn.vi && isValidDiagonal(a, aIdx, bIdx) {
				c := splitBridgePolygon(a, aIdx, bIdx)
				aSeam := a.node(aIdx).next
				cSeam := a.node(c).next
				aIdx = filterPoints(a, aIdx, aSeam)
				c = filterPoints(a, c, cSeam)

				earcutLinked(a, aIdx, triangles, 0)
				earcutLinked(a, c, triangles, 0)
				return
			}
			bIdx = bn.next
		}
		aIdx = an.next
		if aIdx == start {
			return
		}
	}
}
