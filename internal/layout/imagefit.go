package layout

import (
	"errors"
	"fmt"
)

// DefaultShrinkFloor is the minimum acceptable scale below which an image is
// split across pages instead of shrunk further. Up to 20% shrink is visually
// unnoticeable; more makes content illegible.
const DefaultShrinkFloor = 0.8

// ErrBadDimensions indicates a zero or negative image or page dimension.
var ErrBadDimensions = errors.New("layout: dimensions must be positive")

// FitConfig configures image fitting.
type FitConfig struct {
	// PageWidth and PageHeight are the usable page area (page minus
	// margins), in the same linear unit the caller renders in.
	PageWidth  float64
	PageHeight float64
	// ShrinkFloor is the minimum acceptable scale factor. Zero means
	// DefaultShrinkFloor.
	ShrinkFloor float64
}

func (c FitConfig) floor() float64 {
	if c.ShrinkFloor == 0 {
		return DefaultShrinkFloor
	}
	return c.ShrinkFloor
}

// Placement is a single-page image placement: the rendered size in page
// units. The renderer centers it horizontally, flush to the top of the
// usable area.
type Placement struct {
	Width  float64
	Height float64
}

// Plan is the layout decision for one image: either a single-page placement
// (Fits true) or an ordered list of slices.
type Plan struct {
	Fits      bool
	Placement Placement
	Slices    []Slice

	// Working size used for slicing: the width-fit dimensions before any
	// shrink. Populated only when Fits is false.
	ScaledWidth  float64
	ScaledHeight float64
}

// FitImage decides single-page placement or splitting for an image of w x h
// pixels, always preserving aspect ratio.
//
// The image is first scaled to the full usable width. If the resulting
// height fits the page, it is placed as is. If shrinking the whole image by
// no more than the shrink floor would make it fit, that shrink is applied
// and the image fills the page height. Otherwise the image must be sliced;
// the returned plan carries the unshrunk width-fit working size and the
// computed slices.
func FitImage(w, h int, cfg FitConfig) (Plan, error) {
	if w <= 0 || h <= 0 {
		return Plan{}, fmt.Errorf("%w: image %dx%d", ErrBadDimensions, w, h)
	}
	if cfg.PageWidth <= 0 || cfg.PageHeight <= 0 {
		return Plan{}, fmt.Errorf("%w: page %.2fx%.2f", ErrBadDimensions, cfg.PageWidth, cfg.PageHeight)
	}

	scaledW := cfg.PageWidth
	scaledH := float64(h) * cfg.PageWidth / float64(w)

	if scaledH <= cfg.PageHeight {
		return Plan{Fits: true, Placement: Placement{Width: scaledW, Height: scaledH}}, nil
	}

	// Additional shrink, beyond width-fit, needed to also fit the height.
	required := cfg.PageHeight / scaledH
	if required >= cfg.floor() {
		return Plan{
			Fits:      true,
			Placement: Placement{Width: scaledW * required, Height: cfg.PageHeight},
		}, nil
	}

	return Plan{
		Fits:         false,
		ScaledWidth:  scaledW,
		ScaledHeight: scaledH,
		Slices:       SliceImage(scaledW, scaledH, w, h, cfg.PageHeight),
	}, nil
}
