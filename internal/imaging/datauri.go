package imaging

import (
	"encoding/base64"
	"image"
)

// PNGDataURI encodes img as a base64 PNG data URI suitable for an
// <img src> attribute.
func PNGDataURI(img image.Image) (string, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}

// FileDataURI loads an image file, flattens it, and encodes it as a PNG
// data URI.
func FileDataURI(path string) (string, error) {
	img, err := Load(path)
	if err != nil {
		return "", err
	}
	return PNGDataURI(img)
}
