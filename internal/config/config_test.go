package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadapsp/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))

	return dir
}

func TestLoad_FromFile(t *testing.T) {
	dir := writeConfig(t, `
log:
  level: debug
graph:
  file: data/AND-region.tmg
  name: andorra
queries:
  - "0 1"
  - "3 7"
workers: 4
print:
  matrix: true
`)
	v, err := config.New(dir)
	require.NoError(t, err)
	c, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "data/AND-region.tmg", c.GraphFile)
	assert.Equal(t, "andorra", c.GraphName)
	assert.Equal(t, []string{"0 1", "3 7"}, c.Queries)
	assert.Equal(t, 4, c.Workers)
	assert.True(t, c.PrintMatrix)
	assert.Equal(t, 1.0, c.Synthetic.MinWeight)
	assert.Equal(t, config.KindRandom, c.Synthetic.Kind)
}

func TestLoad_GeometricKind(t *testing.T) {
	dir := writeConfig(t, `
synthetic:
  kind: geometric
  vertices: 50
  max_meters: 1500
  min_lat: 40.0
  max_lat: 40.1
`)
	v, err := config.New(dir)
	require.NoError(t, err)
	c, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, config.KindGeometric, c.Synthetic.Kind)
	assert.Equal(t, 1500.0, c.Synthetic.MaxMeters)
	assert.Equal(t, 40.1, c.Synthetic.MaxLat)
	assert.Equal(t, 1.41, c.Synthetic.MinLng, "default box longitude")
}

func TestLoad_UnknownKind(t *testing.T) {
	t.Setenv("ROADAPSP_SYNTHETIC_VERTICES", "5")
	t.Setenv("ROADAPSP_SYNTHETIC_KIND", "spiral")

	v, err := config.New(t.TempDir())
	require.NoError(t, err)
	_, err = config.Load(v)
	assert.ErrorIs(t, err, config.ErrUnknownKind)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := writeConfig(t, "graph:\n  file: a.tmg\nlog:\n  level: info\n")
	t.Setenv("ROADAPSP_LOG_LEVEL", "warn")
	t.Setenv("ROADAPSP_DATABASE_URL", "postgres://localhost/roadapsp")

	v, err := config.New(dir)
	require.NoError(t, err)
	c, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, "postgres://localhost/roadapsp", c.DatabaseURL)
}

func TestLoad_SyntheticFromEnvOnly(t *testing.T) {
	t.Setenv("ROADAPSP_SYNTHETIC_VERTICES", "12")
	t.Setenv("ROADAPSP_SYNTHETIC_SEED", "99")

	v, err := config.New(t.TempDir())
	require.NoError(t, err)
	c, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, 12, c.Synthetic.Vertices)
	assert.Equal(t, int64(99), c.Synthetic.Seed)
	assert.Empty(t, c.GraphFile)
}

func TestLoad_Validation(t *testing.T) {
	v, err := config.New(t.TempDir())
	require.NoError(t, err)
	_, err = config.Load(v)
	assert.ErrorIs(t, err, config.ErrNoGraphSource)

	dir := writeConfig(t, "synthetic:\n  vertices: 3\n  min_weight: 5\n  max_weight: 1\n")
	v, err = config.New(dir)
	require.NoError(t, err)
	_, err = config.Load(v)
	assert.Error(t, err)
}

func TestNew_BrokenYAML(t *testing.T) {
	dir := writeConfig(t, "log: [unclosed\n")
	_, err := config.New(dir)
	assert.Error(t, err)
}
