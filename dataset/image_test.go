package dataset

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 51, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 0, G: 102, B: 0, A: 0})
	return img
}

func TestFromImage(t *testing.T) {
	v, err := FromImage(testImage())
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 0, 0.2, 1, 0, 0.4, 0, 0}, v)
}

func TestFromImage_OffsetBounds(t *testing.T) {
	img := image.NewGray(image.Rect(3, 5, 4, 7))
	img.SetGray(3, 5, color.Gray{Y: 255})

	v, err := FromImage(img)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 1, 1, 1, 0, 0, 0, 1}, v)
}

func TestFromImage_Empty(t *testing.T) {
	_, err := FromImage(image.NewNRGBA(image.Rect(0, 0, 0, 0)))
	assert.ErrorIs(t, err, ErrEmptyImage)
}

func TestDecodeImage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage()))

	v, err := DecodeImage(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 0, 0.2, 1, 0, 0.4, 0, 0}, v)

	_, err = DecodeImage([]byte("not an image"))
	assert.Error(t, err)
}
