package layout

import "math"

// Slice is one top-to-bottom cropped segment of an image too tall for one
// page. Source rows are pixels in the original image; rendered dimensions
// are in page units. Slices are contiguous and exhaustive: each slice starts
// where the previous one ended, the first starts at row 0 and the last ends
// at the full image height.
type Slice struct {
	SourceYStart int
	SourceYEnd   int

	RenderedWidth  float64
	RenderedHeight float64

	// Index/Total caption the slice as "(i/N)". Index is 1-based.
	Index int
	Total int
}

// SliceImage walks down the width-fit image in page-height increments and
// converts each increment back to source pixel rows. Interior boundaries are
// rounded; the last slice uses the true remaining height so no pixel row is
// dropped or duplicated at the bottom.
//
// scaledW and scaledH are the working (width-fit, unshrunk) dimensions from
// FitImage; w and h are the original pixel dimensions.
func SliceImage(scaledW, scaledH float64, w, h int, pageH float64) []Slice {
	scale := scaledW / float64(w)
	total := int(math.Ceil(scaledH / pageH))

	slices := make([]Slice, 0, total)
	start := 0
	for i := 0; i < total; i++ {
		end := h
		if i < total-1 {
			// Scaled-space boundary converted back to source rows.
			boundary := float64(i+1) * pageH / scale
			end = int(math.Round(boundary))
			if end > h {
				end = h
			}
		}
		slices = append(slices, Slice{
			SourceYStart:   start,
			SourceYEnd:     end,
			RenderedWidth:  scaledW,
			RenderedHeight: float64(end-start) * scale,
			Index:          i + 1,
			Total:          total,
		})
		start = end
	}
	return slices
}
