package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/kohonen"
	"github.com/hupe1980/kohonen/codec"
	"github.com/hupe1980/kohonen/internal/compress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, dir, name string, patterns [][]float32) {
	t.Helper()
	typ, _ := compress.FromName(name)
	data, err := compress.Compress(codec.MustMarshal(nil, patterns), typ)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

func TestRun_LocalVectors(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "a.json", [][]float32{{0, 0}, {0.1, 0}})
	writeDataset(t, dir, "b.json.zst", [][]float32{{1, 1}, {0.9, 1}})

	var stdout bytes.Buffer
	err := run(context.Background(), []string{
		"-dataset-root", dir,
		"-neurons", "3",
		"-iterations", "200",
		"-learning-rate", "0.5",
		"-competition", "soft",
		"-seed", "7",
		"-chunk", "50",
		"-simulate",
		"-snapshot-out", "-",
		"-log-level", "error",
	}, &stdout)
	require.NoError(t, err)

	var snap kohonen.Snapshot
	require.NoError(t, codec.GoJSON{}.Unmarshal(stdout.Bytes(), &snap))
	assert.Equal(t, []string{"Neuron 1", "Neuron 2", "Neuron 3"}, snap.Labels)
	require.Len(t, snap.Neurons, 3)
	assert.Len(t, snap.Neurons[0], 2)
	assert.Len(t, snap.Data, 6)
}

func TestRun_ConfigFileAndImages(t *testing.T) {
	dir := t.TempDir()
	for i, c := range []color.Gray{{Y: 0}, {Y: 255}} {
		img := image.NewGray(image.Rect(0, 0, 2, 2))
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				img.SetGray(x, y, c)
			}
		}
		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, img))
		require.NoError(t, os.WriteFile(filepath.Join(dir, []string{"dark.png", "light.png"}[i]), buf.Bytes(), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	out := filepath.Join(t.TempDir(), "snapshot.json")
	cfgPath := filepath.Join(t.TempDir(), "kohonen.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
dataset:
  root: `+dir+`
  images: true
training:
  neurons: 2
  iterations: 50
  seed: 3
output:
  snapshot: `+out+`
log:
  level: error
`), 0o644))

	require.NoError(t, run(context.Background(), []string{"-config", cfgPath}, &bytes.Buffer{}))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	var snap kohonen.Snapshot
	require.NoError(t, codec.JSON{}.Unmarshal(raw, &snap))
	require.Len(t, snap.Neurons, 2)
	assert.Len(t, snap.Neurons[0], 16)
}

func TestRun_ExplicitZeroIterations(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "a.json", [][]float32{{0, 0}, {1, 1}})
	cfgPath := filepath.Join(t.TempDir(), "kohonen.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("training:\n  iterations: 50\n"), 0o644))

	var stdout bytes.Buffer
	err := run(context.Background(), []string{
		"-config", cfgPath,
		"-dataset-root", dir,
		"-neurons", "3",
		"-iterations", "0",
		"-seed", "7",
		"-snapshot-out", "-",
		"-log-level", "error",
	}, &stdout)
	require.NoError(t, err)

	// With no iterations the snapshot holds the untouched initial weights.
	want := kohonen.New(kohonen.WithSeed(7))
	require.NoError(t, want.Initialize(3, 2))

	var snap kohonen.Snapshot
	require.NoError(t, codec.GoJSON{}.Unmarshal(stdout.Bytes(), &snap))
	assert.Equal(t, want.Weights(), snap.Neurons)

	err = run(context.Background(), []string{"-dataset-root", dir, "-neurons", "0"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "training.neurons")
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()

	err := run(ctx, []string{"-dataset-source", "ftp"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "invalid config")

	err = run(ctx, []string{"-dataset-root", t.TempDir(), "-log-level", "error"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "load dataset")

	err = run(ctx, []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "load config")

	err = run(ctx, []string{"-unknown-flag"}, &bytes.Buffer{})
	assert.Error(t, err)
}
