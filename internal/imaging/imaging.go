package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Sentinel errors for image handling.
var (
	ErrDecodeImage = errors.New("failed to decode image")
	ErrEncodeImage = errors.New("failed to encode image")
	ErrCropBounds  = errors.New("crop range outside image bounds")
)

// Dimensions reads the pixel size of an image without decoding pixel data.
func Dimensions(path string) (width, height int, err error) {
	f, err := os.Open(path) // #nosec G304 -- user-supplied input path
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrDecodeImage, err)
	}
	defer func() { _ = f.Close() }()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s: %v", ErrDecodeImage, path, err)
	}
	return cfg.Width, cfg.Height, nil
}

// Load decodes an image file and flattens any transparency onto a white
// background, so screenshots with alpha channels print cleanly.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path) // #nosec G304 -- user-supplied input path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeImage, err)
	}
	defer func() { _ = f.Close() }()

	return decode(f, path)
}

func decode(r io.Reader, name string) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecodeImage, name, err)
	}
	return Flatten(img), nil
}

// Flatten composites img over an opaque white background. Images that are
// already opaque RGBA are returned unchanged.
func Flatten(img image.Image) image.Image {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Opaque() {
		return rgba
	}
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(out, bounds, img, bounds.Min, draw.Over)
	return out
}

// CropRows returns the horizontal band of img spanning source rows
// [yStart, yEnd) at full width. Rows are relative to the top of the image
// regardless of the image's bounds origin.
func CropRows(img image.Image, yStart, yEnd int) (image.Image, error) {
	bounds := img.Bounds()
	if yStart < 0 || yEnd > bounds.Dy() || yStart >= yEnd {
		return nil, fmt.Errorf("%w: [%d, %d) of height %d", ErrCropBounds, yStart, yEnd, bounds.Dy())
	}
	rect := image.Rect(bounds.Min.X, bounds.Min.Y+yStart, bounds.Max.X, bounds.Min.Y+yEnd)

	type subImager interface {
		SubImage(image.Rectangle) image.Image
	}
	if s, ok := img.(subImager); ok {
		return s.SubImage(rect), nil
	}

	out := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(out, out.Bounds(), img, rect.Min, draw.Src)
	return out, nil
}

// EncodePNG serializes img as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeImage, err)
	}
	return buf.Bytes(), nil
}
