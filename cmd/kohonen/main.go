// Command kohonen trains a competitive-learning map on a dataset read from a
// local directory, S3 or MinIO, and writes a weight snapshot for rendering.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hupe1980/kohonen"
	"github.com/hupe1980/kohonen/blobstore"
	minioblob "github.com/hupe1980/kohonen/blobstore/minio"
	s3blob "github.com/hupe1980/kohonen/blobstore/s3"
	"github.com/hupe1980/kohonen/codec"
	"github.com/hupe1980/kohonen/dataset"
	"github.com/hupe1980/kohonen/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "kohonen: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("kohonen", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	source := fs.String("dataset-source", "", "Dataset source: local, s3 or minio")
	root := fs.String("dataset-root", "", "Directory of the local dataset store")
	bucket := fs.String("bucket", "", "Bucket holding the dataset (s3, minio)")
	prefix := fs.String("prefix", "", "Key prefix of the dataset (s3, minio)")
	endpoint := fs.String("endpoint", "", "MinIO endpoint host:port")
	images := fs.Bool("images", false, "Decode dataset blobs as PNG/JPEG images")
	neurons := fs.Int("neurons", 0, "Number of neurons")
	iterations := fs.Int("iterations", 0, "Number of training iterations")
	learningRate := fs.Float64("learning-rate", 0, "Learning rate")
	competition := fs.String("competition", "", "Competition mode: hard or soft")
	seed := fs.Int64("seed", 0, "PRNG seed (0 seeds from the clock)")
	chunk := fs.Int("chunk", 0, "Iterations between progress reports")
	simulate := fs.Bool("simulate", false, "Classify one random dataset pattern after training")
	snapshotOut := fs.String("snapshot-out", "", "Write the weight snapshot to this path (- for stdout)")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error")
	logFormat := fs.String("log-format", "", "Log format: text or json")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	overrides := config.Overrides{
		Source:      *source,
		Root:        *root,
		Bucket:      *bucket,
		Prefix:      *prefix,
		Endpoint:    *endpoint,
		Names:       fs.Args(),
		Competition: *competition,
		Snapshot:    *snapshotOut,
		LogLevel:    *logLevel,
		LogFormat:   *logFormat,
	}
	// Numeric and boolean flags override only when given, so an explicit
	// zero such as -iterations 0 still wins over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "images":
			overrides.Images = images
		case "neurons":
			overrides.Neurons = neurons
		case "iterations":
			overrides.Iterations = iterations
		case "learning-rate":
			lr := float32(*learningRate)
			overrides.LearningRate = &lr
		case "seed":
			overrides.Seed = seed
		case "chunk":
			overrides.Chunk = chunk
		case "simulate":
			overrides.Simulate = simulate
		}
	})
	cfg.ApplyOverrides(overrides)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, err := cfg.Log.Logger()
	if err != nil {
		return err
	}

	c, ok := codec.ByName(cfg.Dataset.Codec)
	if !ok {
		return fmt.Errorf("unknown codec %q", cfg.Dataset.Codec)
	}

	store, err := openStore(ctx, cfg.Dataset)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Dataset.Source, err)
	}

	patterns, err := loadPatterns(ctx, store, c, cfg.Dataset)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	logger.InfoContext(ctx, "dataset loaded",
		"source", cfg.Dataset.Source,
		"patterns", len(patterns),
		"dimension", dataset.Dim(patterns),
	)

	tc, err := cfg.Training.TrainingConfig()
	if err != nil {
		return err
	}

	opts := []kohonen.Option{
		kohonen.WithLogger(logger),
		kohonen.WithCodec(c),
	}
	if cfg.Training.Seed != 0 {
		opts = append(opts, kohonen.WithSeed(cfg.Training.Seed))
	}
	session := kohonen.New(opts...)

	stats, err := session.TrainChunked(ctx, patterns, tc, cfg.Training.Chunk, nil)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			return fmt.Errorf("train: %w", err)
		}
		logger.WarnContext(ctx, "training interrupted", "iterations", stats.Iterations)
	}

	if cfg.Output.Simulate {
		res, err := session.Simulate(ctx)
		if err != nil {
			return fmt.Errorf("simulate: %w", err)
		}
		logger.InfoContext(ctx, "simulation",
			"pattern", res.Pattern,
			"winner", res.Winner,
		)
	}

	if cfg.Output.Snapshot != "" {
		if err := writeSnapshot(session, cfg.Output.Snapshot, stdout); err != nil {
			return err
		}
	}
	return nil
}

func openStore(ctx context.Context, ds config.Dataset) (blobstore.BlobStore, error) {
	switch ds.Source {
	case config.SourceS3:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, err
		}
		return s3blob.NewStore(awss3.NewFromConfig(awsCfg), ds.Bucket, ds.Prefix), nil
	case config.SourceMinio:
		client, err := minio.New(ds.Endpoint, &minio.Options{
			Creds:  credentials.NewEnvMinio(),
			Secure: ds.Secure,
		})
		if err != nil {
			return nil, err
		}
		return minioblob.NewStore(client, ds.Bucket, ds.Prefix), nil
	default:
		return blobstore.NewLocalStore(ds.Root), nil
	}
}

func loadPatterns(ctx context.Context, store blobstore.BlobStore, c codec.Codec, ds config.Dataset) ([][]float32, error) {
	loader := dataset.NewLoader(store,
		dataset.WithCodec(c),
		dataset.WithConcurrency(ds.Concurrency),
	)

	names := ds.Names
	if len(names) == 0 {
		if !ds.Images {
			return loader.LoadPrefix(ctx, "")
		}
		all, err := store.List(ctx, "")
		if err != nil {
			return nil, err
		}
		for _, n := range all {
			if dataset.IsImage(n) {
				names = append(names, n)
			}
		}
	}
	if ds.Images {
		return loader.LoadImages(ctx, names...)
	}
	return loader.Load(ctx, names...)
}

func writeSnapshot(s *kohonen.Session, path string, stdout io.Writer) error {
	data, err := s.EncodeSnapshot()
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if path == "-" {
		_, err = fmt.Fprintln(stdout, string(data))
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
