package kohonen

import (
	"context"
	"math"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/time/rate"
)

// TrainingConfig holds the validated scalar parameters of a training run.
type TrainingConfig struct {
	// Neurons is the map size K (> 0).
	Neurons int
	// Iterations is the number of update steps N (>= 0).
	Iterations int
	// LearningRate is the step size η (> 0, typically in (0, 1]).
	LearningRate float32
	// Mode is the competition regime.
	Mode Mode
}

// Validate checks the scalar parameters.
func (c TrainingConfig) Validate() error {
	if c.Neurons <= 0 {
		return &ErrInvalidParameter{Name: "neurons", Value: c.Neurons}
	}
	if c.Iterations < 0 {
		return &ErrInvalidParameter{Name: "iterations", Value: c.Iterations}
	}
	lr := float64(c.LearningRate)
	if lr <= 0 || math.IsNaN(lr) || math.IsInf(lr, 0) {
		return &ErrInvalidParameter{Name: "learning_rate", Value: c.LearningRate}
	}
	if !c.Mode.Valid() {
		return &ErrInvalidParameter{Name: "mode", Value: c.Mode}
	}
	return nil
}

// Classification is the result of a lookup.
type Classification struct {
	// Pattern is the dataset index of the query, or -1 for external queries.
	Pattern int
	// Winner is the index of the closest neuron.
	Winner int
	// Weights is a copy of the winner's weight vector.
	Weights []float32
}

// Progress is reported after each chunk of TrainChunked.
type Progress struct {
	Done  int
	Total int
	Stats TrainStats
}

// Session owns one map: its weight store, the configuration and dataset it was
// last trained with, and the random source, logger and metrics it reports to.
//
// A Session performs no internal locking. Train must not run concurrently with
// any other call on the same session.
type Session struct {
	opts    options
	store   *WeightStore
	cfg     TrainingConfig
	dataset [][]float32
	stats   TrainStats
}

// New creates an empty session. Call Initialize or Train before Classify.
func New(optFns ...Option) *Session {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Session{opts: opts}
}

// Initialize replaces the store with k fresh neurons of dimension dim and
// forgets the previous training configuration and dataset, so Simulate fails
// with ErrEmptyDataset until the next Train. On error the session is unchanged.
func (s *Session) Initialize(k, dim int) error {
	store, err := Initialize(k, dim, s.opts.source)
	if err != nil {
		return err
	}
	s.store = store
	s.cfg, s.dataset, s.stats = TrainingConfig{}, nil, TrainStats{}
	return nil
}

// Train initializes a new store of cfg.Neurons neurons sized to the dataset's
// dimension and trains it for cfg.Iterations steps. Retraining discards the
// previous store rather than resuming it.
//
// Validation happens before anything is replaced: on error the session still
// holds its previous store. ctx is used for logging only; the call is not
// cancellable (see TrainChunked).
func (s *Session) Train(ctx context.Context, dataset [][]float32, cfg TrainingConfig) (TrainStats, error) {
	start := time.Now()
	stats, err := s.train(dataset, cfg)
	s.opts.metricsCollector.RecordTrain(stats.Iterations, time.Since(start), err)
	s.trainLogger(dataset, cfg).LogTrain(ctx, cfg, stats, err)
	return stats, err
}

func (s *Session) train(dataset [][]float32, cfg TrainingConfig) (TrainStats, error) {
	store, err := s.prepare(dataset, cfg)
	if err != nil {
		return TrainStats{}, err
	}

	stats, err := Train(store, dataset, cfg.Iterations, cfg.LearningRate, cfg.Mode, s.opts.source)
	if err != nil {
		return TrainStats{}, err
	}

	s.store, s.cfg, s.dataset, s.stats = store, cfg, dataset, stats
	return stats, nil
}

// prepare validates a training request and returns the fresh store for it.
func (s *Session) prepare(dataset [][]float32, cfg TrainingConfig) (*WeightStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	dim, err := datasetDim(dataset)
	if err != nil {
		return nil, err
	}
	return Initialize(cfg.Neurons, dim, s.opts.source)
}

// TrainChunked trains like Train but in chunks of at most chunk iterations,
// calling fn after each chunk. Between chunks the session already holds the
// partially trained store, so fn may inspect Weights or Snapshot to render
// progress. ctx is checked between chunks; on cancellation or an error from fn
// the session keeps the store trained so far and the error is returned.
//
// With the same source state, the result equals a single Train call.
func (s *Session) TrainChunked(ctx context.Context, dataset [][]float32, cfg TrainingConfig, chunk int, fn func(Progress) error) (TrainStats, error) {
	start := time.Now()
	stats, err := s.trainChunked(ctx, dataset, cfg, chunk, fn)
	s.opts.metricsCollector.RecordTrain(stats.Iterations, time.Since(start), err)
	s.trainLogger(dataset, cfg).LogTrain(ctx, cfg, stats, err)
	return stats, err
}

func (s *Session) trainChunked(ctx context.Context, dataset [][]float32, cfg TrainingConfig, chunk int, fn func(Progress) error) (TrainStats, error) {
	if chunk <= 0 {
		return TrainStats{}, &ErrInvalidParameter{Name: "chunk", Value: chunk}
	}
	store, err := s.prepare(dataset, cfg)
	if err != nil {
		return TrainStats{}, err
	}

	total := TrainStats{WinCounts: make([]int, cfg.Neurons), Winners: roaring.New()}
	s.store, s.cfg, s.dataset, s.stats = store, cfg, dataset, total

	logger := s.logger()
	progressLog := rate.Sometimes{First: 1, Interval: time.Second}
	for done := 0; done < cfg.Iterations; {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		n := min(chunk, cfg.Iterations-done)
		stats, err := Train(store, dataset, n, cfg.LearningRate, cfg.Mode, s.opts.source)
		if err != nil {
			return total, err
		}
		total.Merge(stats)
		s.stats = total
		done += n

		progressLog.Do(func() { logger.LogChunk(ctx, done, cfg.Iterations) })

		if fn != nil {
			if err := fn(Progress{Done: done, Total: cfg.Iterations, Stats: total}); err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// Classify returns the winner for pattern. It never mutates the store.
func (s *Session) Classify(ctx context.Context, pattern []float32) (Classification, error) {
	start := time.Now()
	winner, weights, err := Classify(s.store, pattern)
	s.opts.metricsCollector.RecordClassify(time.Since(start), err)
	s.logger().LogClassify(ctx, winner, err)
	if err != nil {
		return Classification{}, err
	}
	return Classification{Pattern: -1, Winner: winner, Weights: weights}, nil
}

// Simulate classifies a pattern drawn uniformly from the dataset the session
// was last trained with.
func (s *Session) Simulate(ctx context.Context) (Classification, error) {
	if len(s.dataset) == 0 {
		return Classification{}, ErrEmptyDataset
	}
	i := s.opts.source.Intn(len(s.dataset))
	c, err := s.Classify(ctx, s.dataset[i])
	if err != nil {
		return Classification{}, err
	}
	c.Pattern = i
	return c, nil
}

// Neurons returns K, or 0 before initialization.
func (s *Session) Neurons() int { return s.store.Len() }

// Dim returns D, or 0 before initialization.
func (s *Session) Dim() int { return s.store.Dim() }

// Weights returns copies of every weight vector in neuron order.
func (s *Session) Weights() [][]float32 {
	if s.store == nil {
		return nil
	}
	return s.store.All()
}

// Store returns a deep copy of the current store, or nil before initialization.
func (s *Session) Store() *WeightStore { return s.store.Clone() }

// Config returns the configuration of the last successful training call.
func (s *Session) Config() TrainingConfig { return s.cfg }

// Stats returns the statistics of the last training call.
func (s *Session) Stats() TrainStats { return s.stats }

// logger returns the session logger tagged with the current map shape.
func (s *Session) logger() *Logger {
	return s.opts.logger.WithNeurons(s.store.Len()).WithDimension(s.store.Dim())
}

// trainLogger tags the session logger with the requested map shape, which is
// known even when the request is rejected.
func (s *Session) trainLogger(dataset [][]float32, cfg TrainingConfig) *Logger {
	dim := 0
	if len(dataset) > 0 {
		dim = len(dataset[0])
	}
	return s.opts.logger.WithNeurons(cfg.Neurons).WithDimension(dim)
}

// datasetDim returns the shared dimension of every pattern.
func datasetDim(dataset [][]float32) (int, error) {
	if len(dataset) == 0 {
		return 0, ErrEmptyDataset
	}
	dim := len(dataset[0])
	if dim == 0 {
		return 0, &ErrInvalidParameter{Name: "dimension", Value: 0}
	}
	for _, v := range dataset[1:] {
		if len(v) != dim {
			return 0, &ErrDimensionMismatch{Expected: dim, Actual: len(v)}
		}
	}
	return dim, nil
}
