package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"

	// Register the formats DecodeImage accepts.
	_ "image/jpeg"
	_ "image/png"
)

// ErrEmptyImage is returned for images without pixels.
var ErrEmptyImage = errors.New("dataset: empty image")

// FromImage flattens img into a pattern of 4*width*height components: the
// non-premultiplied R, G, B and A channels of each pixel in row-major order,
// each divided by 255.
func FromImage(img image.Image) ([]float32, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyImage
	}

	out := make([]float32, 0, 4*width*height)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			out = append(out,
				float32(c.R)/255,
				float32(c.G)/255,
				float32(c.B)/255,
				float32(c.A)/255,
			)
		}
	}
	return out, nil
}

// DecodeImage decodes a PNG or JPEG and flattens it with FromImage.
func DecodeImage(raw []byte) ([]float32, error) {
	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("dataset: decode image: %w", err)
	}
	v, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s image: %w", format, err)
	}
	return v, nil
}
