package layout

import (
	"math"
	"testing"
)

func TestSliceImageContiguity(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		pageH      float64
		wantSlices int
	}{
		{"just over one page", 612, 800, 792, 2},
		{"tall screenshot", 3000, 9000, 792, 3},
		{"many pages", 500, 20000, 700, 35},
		{"odd scale factor", 1000, 3333, 777, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scaledW := 612.0
			scaledH := float64(tt.h) * scaledW / float64(tt.w)
			slices := SliceImage(scaledW, scaledH, tt.w, tt.h, tt.pageH)

			if len(slices) != tt.wantSlices {
				t.Fatalf("got %d slices, want %d", len(slices), tt.wantSlices)
			}
			if want := int(math.Ceil(scaledH / tt.pageH)); len(slices) != want {
				t.Fatalf("slice count %d != ceil(%v/%v) = %d", len(slices), scaledH, tt.pageH, want)
			}

			// Contiguous, exhaustive, starting at row 0 and ending at h.
			if slices[0].SourceYStart != 0 {
				t.Errorf("first slice starts at %d, want 0", slices[0].SourceYStart)
			}
			if last := slices[len(slices)-1]; last.SourceYEnd != tt.h {
				t.Errorf("last slice ends at %d, want %d", last.SourceYEnd, tt.h)
			}
			for i := 1; i < len(slices); i++ {
				if slices[i].SourceYStart != slices[i-1].SourceYEnd {
					t.Errorf("slice %d starts at %d, previous ended at %d",
						i+1, slices[i].SourceYStart, slices[i-1].SourceYEnd)
				}
			}

			// Rendered heights reconstruct the scaled height within a pixel.
			var sum float64
			for _, s := range slices {
				if s.SourceYEnd <= s.SourceYStart {
					t.Errorf("slice %d has empty source range [%d,%d)", s.Index, s.SourceYStart, s.SourceYEnd)
				}
				if s.RenderedWidth != scaledW {
					t.Errorf("slice %d width = %v, want %v", s.Index, s.RenderedWidth, scaledW)
				}
				sum += s.RenderedHeight
			}
			if math.Abs(sum-scaledH) > 1 {
				t.Errorf("rendered heights sum to %v, want %v", sum, scaledH)
			}
		})
	}
}

func TestSliceImageNoPageOverflow(t *testing.T) {
	// Every slice but possibly the last renders at (almost exactly) the
	// page height; rounding to whole source rows may add at most the
	// height of one scaled pixel.
	scaledW, pageH := 612.0, 792.0
	w, h := 2480, 14000
	scaledH := float64(h) * scaledW / float64(w)
	pixel := scaledW / float64(w)

	for _, s := range SliceImage(scaledW, scaledH, w, h, pageH) {
		if s.RenderedHeight > pageH+pixel {
			t.Errorf("slice %d renders at %v, over page height %v", s.Index, s.RenderedHeight, pageH)
		}
	}
}
