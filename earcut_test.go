package earcut

import (
	"testing"
)

var epsilon = 1.0e-12

func checkVerts(t *testing.T, expected, actual []int) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Fatalf("expected %d indices, got %d (%v)", len(expected), len(actual), actual)
	}
	for i, exp := range expected {
		if exp != actual[i] {
			t.Fatalf("triangle vertices don't match at %d: expected %v, got %v", i, expected, actual)
		}
	}
}

func TestDegenerateTriangle(t *testing.T) {
	path := []float64{0, 0, 1, 0, 0, 1, 0, 0}
	tri, err := Earcut(path, nil, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(tri) != 3 {
		t.Fatalf("expected 3 vertex indices, got %d", len(tri))
	}
	checkVerts(t, []int{2, 0, 1}, tri)
	if d := Deviation(path, nil, 2, tri); d > epsilon {
		t.Fatalf("deviation %g exceeds epsilon", d)
	}
}

func TestSimplePoly(t *testing.T) {
	path := []float64{
		0.0, 0.0,
		1.0, 0.0,
		1.309, 0.951,
		0.5, 1.539,
		-0.309, 0.951,
		0.0, 0.0,
	}
	tri, err := Earcut(path, nil, 2)
	if err != nil {
		t.Fatal(err)
	}
	checkVerts(t, []int{4, 0, 1, 1, 2, 3, 3, 4, 1}, tri)
	if d := Deviation(path, nil, 2, tri); d > epsilon {
		t.Fatalf("deviation %g exceeds epsilon", d)
	}
}

func TestSimplePolyWithHole(t *testing.T) {
	path := []float64{
		0.0, 0.0,
		1.0, 0.0,
		1.309, 0.951,
		0.5, 1.539,
		-0.309, 0.951,
		0.0, 0.0,
		0.25, 0.25,
		0.30, 0.25,
		0.30, 0.30,
		0.25, 0.30,
		0.25, 0.25,
	}
	holes := []int{6}
	tri, err := Earcut(path, holes, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(tri) != 27 {
		t.Fatalf("expected 27 vertex indices, got %d", len(tri))
	}
	if d := Deviation(path, holes, 2, tri); d > epsilon {
		t.Fatalf("deviation %g exceeds epsilon", d)
	}
}

// The six concrete scenarios enumerated in the specification's testable
// properties section.

func TestScenarioUnitSquare(t *testing.T) {
	path := []float64{0, 0, 1, 0, 1, 1, 0, 1}
	tri, err := Earcut(path, nil, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(tri) != 6 {
		t.Fatalf("expected 6 indices (2 triangles), got %d", len(tri))
	}
	if d := Deviation(path, nil, 2, tri); d > epsilon {
		t.Fatalf("deviation %g exceeds epsilon", d)
	}
}

func TestScenarioDuplicateClosingVertex(t *testing.T) {
	path := []float64{0, 0, 1, 0, 1, 1, 0, 1, 0, 0}
	tri, err := Earcut(path, nil, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(tri) != 6 {
		t.Fatalf("expected 6 indices after duplicate filtering, got %d", len(tri))
	}
	for _, idx := range tri {
		if idx == 4 {
			t.Fatalf("duplicate closing vertex 4 should have been filtered, got indices %v", tri)
		}
	}
}

func TestScenarioIsolatedVertexTreatedAsOuterRing(t *testing.T) {
	path := []float64{0, 0, 2, 0, 2, 2, 0, 2, 1, 1}
	tri, err := Earcut(path, nil, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(tri)/3 != 3 {
		t.Fatalf("expected 3 triangles for the 5-gon, got %d", len(tri)/3)
	}
}

func TestScenarioSquareWithSquareHole(t *testing.T) {
	path := []float64{
		0, 0, 10, 0, 10, 10, 0, 10,
		3, 3, 7, 3, 7, 7, 3, 7,
	}
	holes := []int{4}
	tri, err := Earcut(path, holes, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(tri)/3 != 8 {
		t.Fatalf("expected 8 triangles, got %d", len(tri)/3)
	}
	if d := Deviation(path, holes, 2, tri); d > epsilon {
		t.Fatalf("deviation %g exceeds epsilon", d)
	}
}

func TestScenarioCollinearRun(t *testing.T) {
	path := []float64{0, 0, 1, 0, 2, 0, 2, 1, 0, 1}
	tri, err := Earcut(path, nil, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(tri)/3 != 3 {
		t.Fatalf("expected 3 triangles, got %d", len(tri)/3)
	}
	if d := Deviation(path, nil, 2, tri); d > epsilon {
		t.Fatalf("deviation %g exceeds epsilon", d)
	}
}

func TestScenarioZeroAreaInput(t *testing.T) {
	path := []float64{0, 0, 1, 0, 2, 0}
	tri, err := Earcut(path, nil, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(tri) != 0 {
		t.Fatalf("expected empty output for zero-area input, got %v", tri)
	}
	if d := Deviation(path, nil, 2, tri); d != 0 {
		t.Fatalf("expected deviation 0 for degenerate input, got %g", d)
	}
}

// Additional properties from the testable-properties section.

func TestOutputArityAndProvenance(t *testing.T) {
	path := []float64{
		0, 0, 10, 0, 10, 10, 0, 10,
		3, 3, 7, 3, 7, 7, 3, 7,
	}
	holes := []int{4}
	nVerts := len(path) / 2
	tri, err := Earcut(path, holes, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(tri)%3 != 0 {
		t.Fatalf("triangle index count %d is not a multiple of 3", len(tri))
	}
	for _, idx := range tri {
		if idx < 0 || idx >= nVerts {
			t.Fatalf("index %d out of input vertex range [0,%d)", idx, nVerts)
		}
	}
}

func TestWindingIndependence(t *testing.T) {
	cw := []float64{0, 0, 0, 1, 1, 1, 1, 0}
	ccw := []float64{0, 0, 1, 0, 1, 1, 0, 1}

	triCW, err := Earcut(cw, nil, 2)
	if err != nil {
		t.Fatal(err)
	}
	triCCW, err := Earcut(ccw, nil, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(triCW) != len(triCCW) {
		t.Fatalf("winding should not change triangle count: %d vs %d", len(triCW), len(triCCW))
	}
	devCW := Deviation(cw, nil, 2, triCW)
	devCCW := Deviation(ccw, nil, 2, triCCW)
	if devCW > epsilon || devCCW > epsilon {
		t.Fatalf("winding reversal should still fully cover the polygon: %g, %g", devCW, devCCW)
	}
}

func TestSteinerHoleAbsorbed(t *testing.T) {
	// A one-vertex "hole" degenerates to a self-loop and is marked
	// steiner; it must be absorbed without contributing spurious
	// triangles or breaking the outer triangulation's area.
	path := []float64{
		0, 0, 10, 0, 10, 10, 0, 10,
		5, 5,
	}
	holes := []int{4}
	tri, err := Earcut(path, holes, 2)
	if err != nil {
		t.Fatal(err)
	}
	if d := Deviation(path, holes, 2, tri); d > epsilon {
		t.Fatalf("deviation %g exceeds epsilon for steiner-point hole", d)
	}
}

func TestEmptyInput(t *testing.T) {
	tri, err := Earcut(nil, nil, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(tri) != 0 {
		t.Fatalf("expected empty output for empty input, got %v", tri)
	}
}

func TestUnsupportedDimsReturnsEmpty(t *testing.T) {
	path := []float64{0, 0, 0, 1, 0, 1, 0, 0, 1, 1, 1}
	tri, err := Earcut(path, nil, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(tri) != 0 {
		t.Fatalf("expected empty output for dims != 2, got %v", tri)
	}
}

func TestDeviationDimsMismatchIsNaN(t *testing.T) {
	d := Deviation([]float64{0, 0, 1, 0, 0, 1}, nil, 3, []int{0, 1, 2})
	if d == d { // NaN != NaN
		t.Fatalf("expected NaN for dims mismatch, got %g", d)
	}
}
