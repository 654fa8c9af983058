package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/kohonen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "kohonen.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad(t *testing.T) {
	p := writeConfig(t, `
dataset:
  source: minio
  endpoint: localhost:9000
  bucket: datasets
  prefix: digits/
  names: [train.json.zst]
training:
  neurons: 4
  learning_rate: 0.5
  competition: soft
  seed: 42
log:
  format: json
`)

	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, SourceMinio, cfg.Dataset.Source)
	assert.Equal(t, "localhost:9000", cfg.Dataset.Endpoint)
	assert.Equal(t, []string{"train.json.zst"}, cfg.Dataset.Names)
	assert.Equal(t, 4, cfg.Training.Neurons)
	assert.Equal(t, float32(0.5), cfg.Training.LearningRate)
	assert.Equal(t, int64(42), cfg.Training.Seed)
	// Unset keys keep their defaults.
	assert.Equal(t, 1000, cfg.Training.Iterations)
	assert.Equal(t, 8, cfg.Dataset.Concurrency)
	assert.Equal(t, "info", cfg.Log.Level)

	tc, err := cfg.Training.TrainingConfig()
	require.NoError(t, err)
	assert.Equal(t, kohonen.TrainingConfig{Neurons: 4, Iterations: 1000, LearningRate: 0.5, Mode: kohonen.Soft}, tc)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "training:\n  neurons: [1\n"))
	assert.ErrorContains(t, err, "parse config")

	_, err = Load(writeConfig(t, "training:\n  neuron: 3\n"))
	assert.ErrorContains(t, err, "parse config")

	_, err = Load(writeConfig(t, "training:\n  neurons: -1\n"))
	assert.ErrorContains(t, err, "training.neurons")
}

func TestLoad_Empty(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	images, neurons, lr, simulate := true, 3, float32(0.9), true
	cfg.ApplyOverrides(Overrides{
		Source:       SourceS3,
		Bucket:       "b",
		Names:        []string{"x.png"},
		Images:       &images,
		Neurons:      &neurons,
		LearningRate: &lr,
		Competition:  "SOFT",
		Simulate:     &simulate,
		Snapshot:     "-",
		LogLevel:     "debug",
	})

	assert.Equal(t, SourceS3, cfg.Dataset.Source)
	assert.Equal(t, "b", cfg.Dataset.Bucket)
	assert.True(t, cfg.Dataset.Images)
	assert.Equal(t, 3, cfg.Training.Neurons)
	assert.Equal(t, 1000, cfg.Training.Iterations)
	assert.Equal(t, float32(0.9), cfg.Training.LearningRate)
	assert.True(t, cfg.Output.Simulate)
	assert.Equal(t, "-", cfg.Output.Snapshot)
	require.NoError(t, cfg.Validate())

	mode, err := cfg.Training.Mode()
	require.NoError(t, err)
	assert.Equal(t, kohonen.Soft, mode)

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestApplyOverrides_ExplicitZero(t *testing.T) {
	cfg := Default()
	cfg.Dataset.Images = true
	cfg.Training.Seed = 9

	iterations, seed, images := 0, int64(0), false
	cfg.ApplyOverrides(Overrides{
		Iterations: &iterations,
		Seed:       &seed,
		Images:     &images,
	})
	assert.Zero(t, cfg.Training.Iterations)
	assert.Zero(t, cfg.Training.Seed)
	assert.False(t, cfg.Dataset.Images)
	require.NoError(t, cfg.Validate())

	neurons := 0
	cfg.ApplyOverrides(Overrides{Neurons: &neurons})
	assert.Error(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
		want string
	}{
		{"Source", func(c *Config) { c.Dataset.Source = "ftp" }, "dataset.source"},
		{"LocalRoot", func(c *Config) { c.Dataset.Root = "" }, "dataset.root"},
		{"S3Bucket", func(c *Config) { c.Dataset.Source = SourceS3 }, "dataset.bucket"},
		{"MinioEndpoint", func(c *Config) { c.Dataset.Source = SourceMinio; c.Dataset.Bucket = "b" }, "dataset.endpoint"},
		{"Concurrency", func(c *Config) { c.Dataset.Concurrency = 0 }, "dataset.concurrency"},
		{"Iterations", func(c *Config) { c.Training.Iterations = -1 }, "training.iterations"},
		{"LearningRate", func(c *Config) { c.Training.LearningRate = 0 }, "training.learning_rate"},
		{"Chunk", func(c *Config) { c.Training.Chunk = 0 }, "training.chunk"},
		{"Competition", func(c *Config) { c.Training.Competition = "winner" }, "training.competition"},
		{"LogLevel", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"LogFormat", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}

	require.NoError(t, Default().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mod(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}

	var nilCfg *Config
	assert.Error(t, nilCfg.Validate())
}

func TestLog_Logger(t *testing.T) {
	l, err := Log{Level: "warn", Format: "json"}.Logger()
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = Log{Level: "nope"}.Logger()
	assert.Error(t, err)
}
