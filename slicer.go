package earcut

// earcutLinked is the main ear-slicing loop. It walks the ring starting
// at earIdx, clipping an ear whenever it finds one, until either the
// ring shrinks to two nodes or a full revolution finds no ear — at which
// point it escalates through the pass-0 (filter) -> pass-1 (cure) ->
// pass-2 (split) recovery ladder. Skipping the node after a clipped ear
// (advancing to next.next rather than next) produces fewer slivers.
func earcutLinked(a *arena, earIdx int, triangles *[]int, pass int) {
	if earIdx == nullIndex {
		return
	}

	// Index z-order once, at the first pass of each (sub-)ring, exactly
	// as in upstream earcut.js and earcutr; the teacher's Go port gates
	// this on pass != 0, which never indexes the initial ring and is a
	// transcription bug this port does not reproduce.
	if pass == 0 && a.invsize != 0 {
		indexCurve(a, earIdx)
	}

	stop := earIdx
	for a.node(earIdx).prev != a.node(earIdx).next {
		prev := a.node(earIdx).prev
		next := a.node(earIdx).next

		var isEarNow bool
		if a.invsize != 0 {
			isEarNow = isEarHashed(a, earIdx)
		} else {
			isEarNow = isEar(a, earIdx)
		}

		if isEarNow {
			*triangles = append(*triangles, a.node(prev).vi, a.node(earIdx).vi, a.node(next).vi)
			a.remove(earIdx)

			// Skipping the next vertex leads to fewer sliver triangles.
			nextNext := a.node(next).next
			earIdx = nextNext
			stop = nextNext
			continue
		}

		earIdx = next
		if earIdx == stop {
			// A full revolution produced no ear; escalate.
			if a.debugHook != nil {
				a.debugHook(pass+1, DumpRing(a, earIdx))
			}
			switch pass {
			case 0:
				earcutLinked(a, filterPoints(a, earIdx, nullIndex), triangles, 1)
			case 1:
				earIdx = cureLocalIntersections(a, earIdx, triangles)
				earcutLinked(a, earIdx, triangles, 2)
			case 2:
				splitEarcut(a, earIdx, triangles)
			}
			return
		}
	}
}

// isEar reports whether ear forms a convex triangle with its neighbors
// that contains no other reflex ring vertex; the unhashed, O(n)-per-test
// variant used below hashThresholdFloats.
func isEar(a *arena, earIdx int) bool {
	ear := a.node(earIdx)
	pIdx, nIdx := ear.prev, ear.next
	p, n := a.node(pIdx), a.node(nIdx)
	if area(p, ear, n) >= 0 {
		return false
	}

	q := a.node(nIdx).next
	for q != pIdx {
		qn := a.node(q)
		if pointInTriangle(p.x, p.y, ear.x, ear.y, n.x, n.y, qn.x, qn.y) &&
			area(a.node(qn.prev), qn, a.node(qn.next)) >= 0 {
			return false
		}
		q = qn.next
	}
	return true
}

// isEarHashed is the z-order-hashed variant of isEar: it only visits
// candidate points whose z-order code falls within the ear triangle's
// bounding-box z range, walking outward from ear in both z-order
// directions simultaneously, then finishing off whichever side has range
// left. The sentinel's z is temporarily repurposed as a branchless walk
// guard so both loops terminate on nullIndex without an extra check.
func isEarHashed(a *arena, earIdx int) bool {
	ear := a.node(earIdx)
	pIdx, nIdx := ear.prev, ear.next
	p, n := a.node(pIdx), a.node(nIdx)
	if area(p, ear, n) >= 0 {
		return false
	}

	minTX := minOf3(p.x, ear.x, n.x)
	minTY := minOf3(p.y, ear.y, n.y)
	maxTX := maxOf3(p.x, ear.x, n.x)
	maxTY := maxOf3(p.y, ear.y, n.y)

	minZ := zOrder(minTX, minTY, a.invsize)
	maxZ := zOrder(maxTX, maxTY, a.invsize)

	pz := ear.zprev
	nz := ear.znext

	check := func(qIdx int) bool {
		if qIdx == pIdx || qIdx == nIdx {
			return false
		}
		q := a.node(qIdx)
		return pointInTriangle(p.x, p.y, ear.x, ear.y, n.x, n.y, q.x, q.y) &&
			area(a.node(q.prev), q, a.node(q.next)) >= 0
	}

	for pz != nullIndex && a.node(pz).z >= minZ && nz != nullIndex && a.node(nz).z <= maxZ {
		if check(pz) {
			return false
		}
		pz = a.node(pz).zprev
		if check(nz) {
			return false
		}
		nz = a.node(nz).znext
	}

	a.node(nullIndex).z = minZ - 1
	for a.node(pz).z >= minZ {
		if check(pz) {
			return false
		}
		pz = a.node(pz).zprev
	}

	a.node(nullIndex).z = maxZ + 1
	for a.node(nz).z <= maxZ {
		if check(nz) {
			return false
		}
		nz = a.node(nz).znext
	}

	return true
}

func minOf3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func maxOf3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
