package batch

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
tolerance: 1e-9
polygons:
  - name: square
    dims: 2
    vertices: [0, 0, 1, 0, 1, 1, 0, 1]
  - name: square-with-hole
    dims: 2
    vertices: [0, 0, 10, 0, 10, 10, 0, 10, 3, 3, 7, 3, 7, 7, 3, 7]
    holeIndices: [4]
  - name: broken
    dims: 2
    vertices: []
`

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "batch.yml")
	require.NoError(t, ioutil.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadParsesConfig(t *testing.T) {
	path := writeTempConfig(t, sampleYAML)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Polygons, 3)
	assert.Equal(t, "square", cfg.Polygons[0].Name)
	assert.Equal(t, []int{4}, cfg.Polygons[1].HoleIndices)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestRunTriangulatesAndReportsFailures(t *testing.T) {
	path := writeTempConfig(t, sampleYAML)
	cfg, err := Load(path)
	require.NoError(t, err)

	results, err := Run(cfg)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.Len(t, results[0].Triangles, 6)

	assert.NoError(t, results[1].Err)
	assert.Len(t, results[1].Triangles, 24)

	assert.ErrorIs(t, results[2].Err, ErrEmptyVertices)
}

func TestRunNilConfig(t *testing.T) {
	_, err := Run(nil)
	assert.Error(t, err)
}

func TestRunRejectsInvalidHoleIndices(t *testing.T) {
	cfg := &Config{
		Tolerance: 1e-9,
		Polygons: []Polygon{
			{Name: "bad", Dims: 2, Vertices: []float64{0, 0, 1, 0, 1, 1, 0, 1}, HoleIndices: []int{5}},
		},
	}
	results, err := Run(cfg)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, ErrInvalidHoleIndices)
}

func TestRunFlagsDeviationAboveTolerance(t *testing.T) {
	cfg := &Config{
		Tolerance: 0, // defaulted by Load, but Run uses the struct verbatim
		Polygons: []Polygon{
			{Name: "square", Dims: 2, Vertices: []float64{0, 0, 1, 0, 1, 1, 0, 1}},
		},
	}
	cfg.Tolerance = -1 // force every deviation to exceed tolerance
	results, err := Run(cfg)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
}
