package dataset

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/hupe1980/kohonen/blobstore"
	"github.com/hupe1980/kohonen/codec"
	"github.com/hupe1980/kohonen/internal/compress"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the number of blobs fetched at once.
const DefaultConcurrency = 8

// Loader reads patterns from a blob store.
type Loader struct {
	store       blobstore.BlobStore
	codec       codec.Codec
	concurrency int
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithCodec sets the codec for vector blobs. Default: codec.Default.
func WithCodec(c codec.Codec) LoaderOption {
	return func(l *Loader) {
		if c != nil {
			l.codec = c
		}
	}
}

// WithConcurrency sets how many blobs are fetched in parallel.
func WithConcurrency(n int) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.concurrency = n
		}
	}
}

// NewLoader creates a Loader over store.
func NewLoader(store blobstore.BlobStore, opts ...LoaderOption) *Loader {
	l := &Loader{
		store:       store,
		codec:       codec.Default,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the named vector blobs and concatenates their patterns in the
// order of names. The result is validated.
func (l *Loader) Load(ctx context.Context, names ...string) ([][]float32, error) {
	parts, err := fetchAll(ctx, l, names, l.decodeVectors)
	if err != nil {
		return nil, err
	}

	var patterns [][]float32
	for _, p := range parts {
		patterns = append(patterns, p...)
	}
	if err := Validate(patterns); err != nil {
		return nil, err
	}
	return patterns, nil
}

// LoadImages reads the named image blobs, one pattern per image, in the
// order of names. All images must have the same size.
func (l *Loader) LoadImages(ctx context.Context, names ...string) ([][]float32, error) {
	patterns, err := fetchAll(ctx, l, names, func(_ string, raw []byte) ([]float32, error) {
		return DecodeImage(raw)
	})
	if err != nil {
		return nil, err
	}
	if err := Validate(patterns); err != nil {
		return nil, err
	}
	return patterns, nil
}

// LoadPrefix lists every blob under prefix and loads it. Blobs with an image
// extension are decoded as images, all others as vector blobs; the two kinds
// must not be mixed.
func (l *Loader) LoadPrefix(ctx context.Context, prefix string) ([][]float32, error) {
	names, err := l.store.List(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("dataset: list %q: %w", prefix, err)
	}
	if len(names) == 0 {
		return nil, ErrEmpty
	}

	var images, vectors []string
	for _, n := range names {
		if IsImage(n) {
			images = append(images, n)
		} else {
			vectors = append(vectors, n)
		}
	}
	switch {
	case len(images) > 0 && len(vectors) > 0:
		return nil, fmt.Errorf("dataset: prefix %q mixes %d image and %d vector blobs", prefix, len(images), len(vectors))
	case len(images) > 0:
		return l.LoadImages(ctx, images...)
	default:
		return l.Load(ctx, vectors...)
	}
}

// IsImage reports whether name has a PNG or JPEG extension.
func IsImage(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".png", ".jpg", ".jpeg":
		return true
	default:
		return false
	}
}

func (l *Loader) decodeVectors(name string, raw []byte) ([][]float32, error) {
	typ, _ := compress.FromName(name)
	data, err := compress.Decompress(raw, typ)
	if err != nil {
		return nil, err
	}
	var patterns [][]float32
	if err := l.codec.Unmarshal(data, &patterns); err != nil {
		return nil, fmt.Errorf("decode with %s: %w", l.codec.Name(), err)
	}
	return patterns, nil
}

// fetchAll fetches and decodes every named blob with bounded concurrency,
// keeping results in the order of names.
func fetchAll[T any](ctx context.Context, l *Loader, names []string, decode func(name string, raw []byte) (T, error)) ([]T, error) {
	if len(names) == 0 {
		return nil, ErrEmpty
	}

	out := make([]T, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	for i, name := range names {
		g.Go(func() error {
			raw, err := blobstore.Fetch(ctx, l.store, name)
			if err != nil {
				return fmt.Errorf("dataset: fetch %s: %w", name, err)
			}
			v, err := decode(name, raw)
			if err != nil {
				return fmt.Errorf("dataset: %s: %w", name, err)
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
