// Package batch runs earcut triangulation over a set of polygons
// described by a YAML configuration file, the way recast's cmd/recast
// drives navmesh builds from a build-settings YAML file.
package batch

import (
	"errors"
	"fmt"
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"

	earcut "github.com/rclancey/polytri"
)

// ErrEmptyVertices is reported by Run, in that polygon's Result.Err,
// when a polygon entry has no vertices to triangulate.
var ErrEmptyVertices = errors.New("batch: polygon has no vertices")

// ErrInvalidHoleIndices is reported by Run, in that polygon's
// Result.Err, when a polygon's hole indices are not a strictly ascending sequence within range of its
// vertex count.
var ErrInvalidHoleIndices = errors.New("batch: hole indices are not a valid ascending sequence")

// Polygon is one triangulation job within a Config.
type Polygon struct {
	Name        string    `yaml:"name"`
	Dims        int       `yaml:"dims"`
	Vertices    []float64 `yaml:"vertices"`
	HoleIndices []int     `yaml:"holeIndices,omitempty"`
}

// Config is the top-level YAML document read by Load.
type Config struct {
	// Tolerance bounds the deviation Run will accept from a
	// triangulation before flagging it failed in the returned Result.
	Tolerance float64   `yaml:"tolerance"`
	Polygons  []Polygon `yaml:"polygons"`
}

// Result is the outcome of triangulating one Config.Polygons entry.
type Result struct {
	Name      string
	Triangles []int
	Deviation float64
	Err       error
}

// Load reads and parses a batch configuration file.
func Load(path string) (*Config, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, fmt.Errorf("batch: parsing %s: %w", path, err)
	}
	if cfg.Tolerance == 0 {
		cfg.Tolerance = 1e-6
	}
	return &cfg, nil
}

// Run triangulates every polygon in cfg, in order, continuing past
// per-polygon failures so one bad entry doesn't abort the whole batch.
// A polygon's Result.Err is set instead of Run returning early. opts is
// forwarded to earcut.Triangulate for every polygon, letting the CLI
// thread its -debug hook and hash-threshold override through the whole
// batch.
func Run(cfg *Config, opts ...earcut.Option) ([]Result, error) {
	if cfg == nil {
		return nil, errors.New("batch: nil config")
	}
	results := make([]Result, 0, len(cfg.Polygons))
	for _, p := range cfg.Polygons {
		results = append(results, runOne(cfg.Tolerance, p, opts...))
	}
	return results, nil
}

func runOne(tolerance float64, p Polygon, opts ...earcut.Option) Result {
	res := Result{Name: p.Name}

	dims := p.Dims
	if dims == 0 {
		dims = 2
	}
	if len(p.Vertices) == 0 {
		res.Err = ErrEmptyVertices
		return res
	}
	if err := validateHoleIndices(p.HoleIndices, len(p.Vertices)/dims); err != nil {
		res.Err = err
		return res
	}

	tri, err := earcut.Triangulate(p.Vertices, p.HoleIndices, dims, opts...)
	if err != nil {
		res.Err = err
		return res
	}
	res.Triangles = tri
	res.Deviation = earcut.Deviation(p.Vertices, p.HoleIndices, dims, tri)
	if res.Deviation > tolerance {
		res.Err = fmt.Errorf("batch: %s: deviation %g exceeds tolerance %g", p.Name, res.Deviation, tolerance)
	}
	return res
}

func validateHoleIndices(holes []int, vertexCount int) error {
	prev := -1
	for _, h := range holes {
		if h <= prev || h >= vertexCount {
			return ErrInvalidHoleIndices
		}
		prev = h
	}
	return nil
}
