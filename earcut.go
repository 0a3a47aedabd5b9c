// Package earcut triangulates simple 2D polygons, optionally with holes,
// into a flat list of triangle vertex indices using ear clipping with a
// z-order curve hash for fast containment tests.
//
// It is a reimplementation, over an arena of integer-indexed nodes
// rather than pointers, of the algorithm in mapbox/earcut (and its Rust
// port earcutr): build a doubly linked ring per contour, bridge holes
// into the outer ring, then repeatedly clip convex "ear" vertices whose
// triangle contains no other reflex vertex, falling back through three
// degeneracy-recovery passes when the main loop stalls.
package earcut

import (
	"fmt"
	"math"
)

// Earcut triangulates vertices (dims values per vertex) into a flat list
// of triangle vertex indices, three per triangle. holeIndices names the
// starting vertex index of each hole contour, in ascending order; the
// outer ring runs from vertex 0 up to the first hole (or to the end of
// vertices if there are none). dims must be 2; any other value yields an
// empty, non-nil result with no error, matching the historical earcut
// contract that 2D is the only supported dimensionality.
func Earcut(vertices []float64, holeIndices []int, dims int) ([]int, error) {
	if dims != 2 {
		return []int{}, nil
	}
	return runEarcut(vertices, holeIndices, dims, defaultOptions())
}

// runEarcut is the shared core behind Earcut and Triangulate: both
// entry points only differ in dims validation and error reporting.
func runEarcut(vertices []float64, holeIndices []int, dims int, o options) ([]int, error) {
	triangles := []int{}

	if o.assertFinite {
		for i := 0; i+1 < len(vertices); i += dims {
			if !finite(vertices[i], vertices[i+1]) {
				panic(fmt.Sprintf("earcut: non-finite coordinate at vertex %d: (%g, %g)", i/dims, vertices[i], vertices[i+1]))
			}
		}
	}

	hasHoles := len(holeIndices) > 0
	outerLen := len(vertices)
	if hasHoles {
		outerLen = holeIndices[0] * dims
	}

	a := newArena(len(vertices) / dims)
	a.useHash = len(vertices) >= o.hashThreshold
	a.assertFinite = o.assertFinite
	a.debugHook = o.debugHook

	outerNode, _ := buildRing(a, vertices, 0, outerLen, dims, true)
	if outerNode == nullIndex {
		return triangles, nil
	}

	if hasHoles {
		outerNode = eliminateHoles(a, vertices, holeIndices, outerNode, dims)
	}

	if a.useHash {
		computeHashBounds(a, vertices, outerLen, dims)
	}

	earcutLinked(a, outerNode, &triangles, 0)
	return triangles, nil
}

// computeHashBounds measures the outer ring's bounding box, derives
// invsize from it, and translates every arena node so the box's minimum
// sits at the origin — the setup §4.6 requires before z-order codes can
// be assigned.
func computeHashBounds(a *arena, vertices []float64, outerLen, dims int) {
	a.minx, a.miny = math.Inf(1), math.Inf(1)
	a.maxx, a.maxy = math.Inf(-1), math.Inf(-1)
	for i := 0; i < outerLen; i += dims {
		x, y := vertices[i], vertices[i+1]
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
	span := math.Max(a.maxx-a.minx, a.maxy-a.miny)
	if span != 0 {
		a.invsize = 32767 / span
	}
	if a.invsize != 0 {
		for i := 1; i < len(a.nodes); i++ {
			a.nodes[i].x -= a.minx
			a.nodes[i].y -= a.miny
		}
	}
}

// Flatten converts a nested shape-of-rings representation (outer ring
// first, then each hole, each ring a slice of dims-length vertex slices)
// into the flat vertices/holeIndices/dims form Earcut accepts.
func Flatten(nested [][][]float64) (vertices []float64, holeIndices []int, dims int) {
	if len(nested) == 0 || len(nested[0]) == 0 {
		return nil, nil, 0
	}
	dims = len(nested[0][0])
	for _, ring := range nested {
		for _, point := range ring {
			vertices = append(vertices, point...)
		}
	}
	holeIdx := 0
	for i := 0; i < len(nested)-1; i++ {
		holeIdx += len(nested[i])
		holeIndices = append(holeIndices, holeIdx)
	}
	return vertices, holeIndices, dims
}

// Deviation returns the fractional difference between a triangulation's
// total area and the polygon's own signed area (outer ring area minus
// hole areas), used by tests to check correctness. It returns 0 when
// both areas are zero, and NaN if dims isn't 2.
func Deviation(vertices []float64, holeIndices []int, dims int, triangles []int) float64 {
	if dims != 2 {
		return math.NaN()
	}

	hasHoles := len(holeIndices) > 0
	outerLen := len(vertices)
	if hasHoles {
		outerLen = holeIndices[0] * dims
	}

	polygonArea := math.Abs(signedArea(vertices, 0, outerLen, dims))
	if hasHoles {
		n := len(holeIndices)
		for i := 0; i < n; i++ {
			start := holeIndices[i] * dims
			var end int
			if i < n-1 {
				end = holeIndices[i+1] * dims
			} else {
				end = len(vertices)
			}
			polygonArea -= math.Abs(signedArea(vertices, start, end, dims))
		}
	}

	var trianglesArea float64
	for i := 0; i < len(triangles); i += 3 {
		ai := triangles[i] * dims
		bi := triangles[i+1] * dims
		ci := triangles[i+2] * dims
		trianglesArea += math.Abs(
			(vertices[ai]-vertices[ci])*(vertices[bi+1]-vertices[ai+1]) -
				(vertices[ai]-vertices[bi])*(vertices[ci+1]-vertices[ai+1]))
	}

	if polygonArea == 0 && trianglesArea == 0 {
		return 0
	}
	return math.Abs((trianglesArea - polygonArea) / polygonArea)
}
