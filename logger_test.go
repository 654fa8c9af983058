package kohonen

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.WithNeurons(8).WithDimension(784).Info("ready")
	assert.Contains(t, buf.String(), `"neurons":8`)
	assert.Contains(t, buf.String(), `"dimension":784`)

	buf.Reset()
	l.LogChunk(context.Background(), 50, 200)
	assert.Contains(t, buf.String(), `"done":50`)
	assert.Contains(t, buf.String(), `"total":200`)

	buf.Reset()
	l.LogClassify(context.Background(), -1, errors.New("dimension mismatch"))
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), "dimension mismatch")
}

func TestLogger_Defaults(t *testing.T) {
	assert.NotNil(t, NewLogger(nil).Logger)
	assert.NotNil(t, NewTextLogger(slog.LevelWarn).Logger)
	assert.NotNil(t, NewJSONLogger(slog.LevelDebug).Logger)
	assert.False(t, NoopLogger().Enabled(context.Background(), slog.LevelError))
}
