package earcut

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangulateRejectsUnsupportedDims(t *testing.T) {
	tri, err := Triangulate([]float64{0, 0, 0, 1, 0, 1, 0, 0, 1, 1, 1}, nil, 3)
	require.Nil(t, tri)
	require.True(t, errors.Is(err, ErrUnsupportedDims))
}

func TestTriangulateMatchesEarcutOnDefaults(t *testing.T) {
	path := []float64{0, 0, 1, 0, 1, 1, 0, 1}
	want, err := Earcut(path, nil, 2)
	require.NoError(t, err)

	got, err := Triangulate(path, nil, 2)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWithHashThresholdForcesHashedPath(t *testing.T) {
	path := []float64{0, 0, 1, 0, 1, 1, 0, 1}
	tri, err := Triangulate(path, nil, 2, WithHashThreshold(0))
	require.NoError(t, err)
	assert.Len(t, tri, 6)
	if d := Deviation(path, nil, 2, tri); d > epsilon {
		t.Fatalf("deviation %g exceeds epsilon under forced hashing", d)
	}
}

func TestWithAssertFinitePanicsOnNaN(t *testing.T) {
	path := []float64{0, 0, 1, 0, 1, math.NaN(), 0, 1}
	assert.Panics(t, func() {
		_, _ = Triangulate(path, nil, 2, WithAssertFinite(true))
	})
}

func TestWithAssertFiniteDisabledByDefault(t *testing.T) {
	path := []float64{0, 0, 1, 0, 1, math.NaN(), 0, 1}
	assert.NotPanics(t, func() {
		_, _ = Triangulate(path, nil, 2)
	})
}

func TestWithDebugHookNotCalledWhenNoEscalationNeeded(t *testing.T) {
	path := []float64{0, 0, 1, 0, 1, 1, 0, 1}
	called := false
	_, err := Triangulate(path, nil, 2, WithDebugHook(func(pass int, dump string) {
		called = true
	}))
	require.NoError(t, err)
	assert.False(t, called, "a convex quad never needs a recovery pass, so the hook should not fire")
}

func TestWithDebugHookReceivesRingDump(t *testing.T) {
	// A self-intersecting bowtie quad yields one ear on the first pass
	// and then stalls on the remaining triangle, forcing escalation into
	// the filter/cure recovery ladder at least once.
	path := []float64{0, 0, 1, 1, 1, 0, 0, 1}
	var passes []int
	var lastDump string
	_, _ = Triangulate(path, nil, 2, WithDebugHook(func(pass int, dump string) {
		passes = append(passes, pass)
		lastDump = dump
	}))
	if len(passes) > 0 {
		assert.Contains(t, lastDump, "idx")
	}
}
