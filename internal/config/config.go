// Package config loads the kohonen CLI configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/hupe1980/kohonen"
	"gopkg.in/yaml.v3"
)

// Dataset sources.
const (
	SourceLocal = "local"
	SourceS3    = "s3"
	SourceMinio = "minio"
)

// Config captures the knobs of one training run.
type Config struct {
	Dataset  Dataset  `yaml:"dataset"`
	Training Training `yaml:"training"`
	Output   Output   `yaml:"output"`
	Log      Log      `yaml:"log"`
}

// Dataset says where patterns come from.
type Dataset struct {
	// Source is one of local, s3 or minio.
	Source string `yaml:"source"`
	// Root is the directory of a local store.
	Root string `yaml:"root"`
	// Bucket and Prefix locate blobs in s3 or minio.
	Bucket string `yaml:"bucket"`
	Prefix string `yaml:"prefix"`
	// Endpoint is the minio host:port.
	Endpoint string `yaml:"endpoint"`
	Secure   bool   `yaml:"secure"`
	// Names lists the blobs to load. Empty means every blob in the store.
	Names []string `yaml:"names"`
	// Images decodes every blob as a PNG or JPEG image.
	Images      bool   `yaml:"images"`
	Codec       string `yaml:"codec"`
	Concurrency int    `yaml:"concurrency"`
}

// Training holds the map parameters.
type Training struct {
	Neurons      int     `yaml:"neurons"`
	Iterations   int     `yaml:"iterations"`
	LearningRate float32 `yaml:"learning_rate"`
	Competition  string  `yaml:"competition"`
	// Seed fixes the random source. Zero seeds from the clock.
	Seed int64 `yaml:"seed"`
	// Chunk is the number of iterations between progress reports.
	Chunk int `yaml:"chunk"`
}

// Output controls what a run produces.
type Output struct {
	// Simulate classifies one random dataset pattern after training.
	Simulate bool `yaml:"simulate"`
	// Snapshot is the path the weight snapshot is written to ("-" for stdout).
	Snapshot string `yaml:"snapshot"`
}

// Log configures the logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Overrides captures CLI supplied values. Empty strings and nil pointers
// leave the config as is; a non-nil pointer wins even when it points to zero.
type Overrides struct {
	Source       string
	Root         string
	Bucket       string
	Prefix       string
	Endpoint     string
	Names        []string
	Images       *bool
	Neurons      *int
	Iterations   *int
	LearningRate *float32
	Competition  string
	Seed         *int64
	Chunk        *int
	Simulate     *bool
	Snapshot     string
	LogLevel     string
	LogFormat    string
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Dataset: Dataset{
			Source:      SourceLocal,
			Root:        ".",
			Codec:       "go-json",
			Concurrency: 8,
		},
		Training: Training{
			Neurons:      10,
			Iterations:   1000,
			LearningRate: 0.1,
			Competition:  "hard",
			Chunk:        100,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a YAML file on top of Default and validates the result.
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides updates cfg using every set override. Values are not checked
// here; call Validate afterwards.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Source != "" {
		c.Dataset.Source = o.Source
	}
	if o.Root != "" {
		c.Dataset.Root = o.Root
	}
	if o.Bucket != "" {
		c.Dataset.Bucket = o.Bucket
	}
	if o.Prefix != "" {
		c.Dataset.Prefix = o.Prefix
	}
	if o.Endpoint != "" {
		c.Dataset.Endpoint = o.Endpoint
	}
	if len(o.Names) > 0 {
		c.Dataset.Names = o.Names
	}
	if o.Images != nil {
		c.Dataset.Images = *o.Images
	}
	if o.Neurons != nil {
		c.Training.Neurons = *o.Neurons
	}
	if o.Iterations != nil {
		c.Training.Iterations = *o.Iterations
	}
	if o.LearningRate != nil {
		c.Training.LearningRate = *o.LearningRate
	}
	if o.Competition != "" {
		c.Training.Competition = o.Competition
	}
	if o.Seed != nil {
		c.Training.Seed = *o.Seed
	}
	if o.Chunk != nil {
		c.Training.Chunk = *o.Chunk
	}
	if o.Simulate != nil {
		c.Output.Simulate = *o.Simulate
	}
	if o.Snapshot != "" {
		c.Output.Snapshot = o.Snapshot
	}
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
	if o.LogFormat != "" {
		c.Log.Format = o.LogFormat
	}
}

// Validate verifies the config is runnable. Training parameters are checked
// again, with typed errors, when the session trains.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	switch c.Dataset.Source {
	case SourceLocal:
		if c.Dataset.Root == "" {
			return errors.New("dataset.root must be set for the local source")
		}
	case SourceS3:
		if c.Dataset.Bucket == "" {
			return errors.New("dataset.bucket must be set for the s3 source")
		}
	case SourceMinio:
		if c.Dataset.Bucket == "" || c.Dataset.Endpoint == "" {
			return errors.New("dataset.bucket and dataset.endpoint must be set for the minio source")
		}
	default:
		return fmt.Errorf("dataset.source must be local, s3 or minio (got %q)", c.Dataset.Source)
	}
	if c.Dataset.Concurrency <= 0 {
		return fmt.Errorf("dataset.concurrency must be > 0 (got %d)", c.Dataset.Concurrency)
	}

	if c.Training.Neurons <= 0 {
		return fmt.Errorf("training.neurons must be > 0 (got %d)", c.Training.Neurons)
	}
	if c.Training.Iterations < 0 {
		return fmt.Errorf("training.iterations must be >= 0 (got %d)", c.Training.Iterations)
	}
	if !(c.Training.LearningRate > 0) {
		return fmt.Errorf("training.learning_rate must be > 0 (got %v)", c.Training.LearningRate)
	}
	if c.Training.Chunk <= 0 {
		return fmt.Errorf("training.chunk must be > 0 (got %d)", c.Training.Chunk)
	}
	if _, err := c.Training.Mode(); err != nil {
		return fmt.Errorf("training.competition: %w", err)
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json (got %q)", c.Log.Format)
	}
	return nil
}

// Mode parses the competition regime.
func (t Training) Mode() (kohonen.Mode, error) {
	return kohonen.ParseMode(t.Competition)
}

// TrainingConfig converts t to the session's training parameters.
func (t Training) TrainingConfig() (kohonen.TrainingConfig, error) {
	mode, err := t.Mode()
	if err != nil {
		return kohonen.TrainingConfig{}, err
	}
	return kohonen.TrainingConfig{
		Neurons:      t.Neurons,
		Iterations:   t.Iterations,
		LearningRate: t.LearningRate,
		Mode:         mode,
	}, nil
}

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (l Log) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, err
	}
	return level, nil
}

// Logger builds the logger described by l.
func (l Log) Logger() (*kohonen.Logger, error) {
	level, err := l.SlogLevel()
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(l.Format, "json") {
		return kohonen.NewJSONLogger(level), nil
	}
	return kohonen.NewTextLogger(level), nil
}
