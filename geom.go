package earcut

import "math"

// area returns the signed area of the parallelogram spanned by p->q and
// q->r (twice the signed triangle area): positive for clockwise winding
// in the y-down convention used throughout this package, negative for
// counter-clockwise, zero iff the three points are collinear.
func area(p, q, r *node) float64 {
	return (q.y-p.y)*(r.x-q.x) - (q.x-p.x)*(r.y-q.y)
}

// equalPoints reports whether two nodes share the same coordinates.
func equalPoints(p1, p2 *node) bool {
	return p1.x == p2.x && p1.y == p2.y
}

// pointInTriangle reports whether p lies in the closed triangle a,b,c;
// boundary points count as inside.
func pointInTriangle(ax, ay, bx, by, cx, cy, px, py float64) bool {
	return (cx-px)*(ay-py)-(ax-px)*(cy-py) >= 0 &&
		(ax-px)*(by-py)-(bx-px)*(ay-py) >= 0 &&
		(bx-px)*(cy-py)-(cx-px)*(by-py) >= 0
}

// pseudoIntersects tests strict proper crossing of open segments p1-q1
// and p2-q2. Shared endpoints never count as an intersection except when
// the two segments are the same point set, which short-circuits to true.
// Several other predicates in this package (isValidDiagonal,
// cureLocalIntersections) are calibrated against this strict reading; do
// not relax it to treat touching endpoints as intersecting.
func pseudoIntersects(p1, q1, p2, q2 *node) bool {
	if (equalPoints(p1, p2) && equalPoints(q1, q2)) ||
		(equalPoints(p1, q2) && equalPoints(q1, p2)) {
		return true
	}
	return (area(p1, q1, p2) > 0) != (area(p1, q1, q2) > 0) &&
		(area(p2, q2, p1) > 0) != (area(p2, q2, q1) > 0)
}

// zOrder computes the Morton code of (x, y) after scaling into a
// non-negative 15-bit integer range with invsize. Coordinates must
// already be translated so that the arena's bounding-box minimum sits at
// the origin before this is called.
func zOrder(x, y, invsize float64) int32 {
	ix := int32(x * invsize)
	iy := int32(y * invsize)

	ix = (ix | (ix << 8)) & 0x00FF00FF
	ix = (ix | (ix << 4)) & 0x0F0F0F0F
	ix = (ix | (ix << 2)) & 0x33333333
	ix = (ix | (ix << 1)) & 0x55555555

	iy = (iy | (iy << 8)) & 0x00FF00FF
	iy = (iy | (iy << 4)) & 0x0F0F0F0F
	iy = (iy | (iy << 2)) & 0x33333333
	iy = (iy | (iy << 1)) & 0x55555555

	return ix | (iy << 1)
}

// signedArea computes the trapezoid-sum signed area of a contour,
// wrapping last point back to first. Used both to pick ring winding
// direction (ring.go) and to measure polygon/hole area (Deviation in
// earcut.go).
func signedArea(vertices []float64, start, end, dim int) float64 {
	var sum float64
	for i, j := start, end-dim; i < end; i += dim {
		sum += (vertices[j] - vertices[i]) * (vertices[i+1] + vertices[j+1])
		j = i
	}
	return sum
}

// finite reports whether both coordinates of a node are finite. Used only
// by the optional debug assertion (runEarcut's input check and the point
// filter; see options.go).
func finite(x, y float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x) && !math.IsInf(y, 0) && !math.IsNaN(y)
}
