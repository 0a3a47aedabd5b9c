package earcut

import "errors"

// ErrUnsupportedDims is returned by Triangulate (not by the bare Earcut
// entry point, which stays silent per the historical contract) when
// dims is not 2.
var ErrUnsupportedDims = errors.New("earcut: only 2 dimensions are supported")

// options holds the tunable knobs Triangulate exposes beyond the bare
// Earcut contract. Following the functional-options style used by
// katalvlaran-lvlath's dijkstra package, a private struct is built from
// defaultOptions() and mutated by each Option in order.
type options struct {
	hashThreshold int
	assertFinite  bool
	debugHook     func(pass int, dump string)
}

func defaultOptions() options {
	return options{
		hashThreshold: hashThresholdFloats,
		assertFinite:  false,
		debugHook:     nil,
	}
}

// Option configures a call to Triangulate.
type Option func(*options)

// WithHashThreshold overrides the total-float-count cutoff (default 80)
// below which the linear-scan ear test is used instead of the z-order
// hashed one. It never changes triangulation output for a given
// threshold value; it only trades setup cost for per-ear-test cost.
func WithHashThreshold(n int) Option {
	return func(o *options) {
		o.hashThreshold = n
	}
}

// WithAssertFinite enables a debug-time panic when a non-finite
// coordinate is encountered: every input vertex is checked before the
// rings are built, and the point filter checks each node it visits,
// surfacing the precondition violation the spec otherwise leaves as
// undefined release behavior.
func WithAssertFinite(enabled bool) Option {
	return func(o *options) {
		o.assertFinite = enabled
	}
}

// WithDebugHook installs a callback invoked every time the ear-slicing
// loop escalates past a recovery pass (filter -> cure -> split),
// receiving the pass number being escalated to and a DumpRing
// rendering of the ring at the point of escalation. It is the
// triangulation core's only way of surfacing DumpRing output, so
// callers outside this package (the CLI's -debug flag) never need to
// construct an arena themselves.
func WithDebugHook(fn func(pass int, dump string)) Option {
	return func(o *options) {
		o.debugHook = fn
	}
}

// Triangulate is Earcut with richer error reporting: it returns
// ErrUnsupportedDims instead of silently returning an empty slice when
// dims != 2, and accepts Options to tune the hash threshold or enable
// the finite-coordinate debug assertion.
func Triangulate(vertices []float64, holeIndices []int, dims int, opts ...Option) ([]int, error) {
	if dims != 2 {
		return nil, ErrUnsupportedDims
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return runEarcut(vertices, holeIndices, dims, o)
}
