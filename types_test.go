package bookpress

import (
	"errors"
	"math"
	"testing"
)

func TestGeometryValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		geo     Geometry
		wantErr error
	}{
		{"default", DefaultGeometry(), nil},
		{"a4", Geometry{PageSize: "a4", MarginInches: 1}, nil},
		{"legal uppercase", Geometry{PageSize: "Legal", MarginInches: 0.5}, nil},
		{"unknown size", Geometry{PageSize: "tabloid", MarginInches: 0.5}, ErrInvalidPageSize},
		{"empty size", Geometry{MarginInches: 0.5}, ErrInvalidPageSize},
		{"negative margin", Geometry{PageSize: "letter", MarginInches: -0.1}, ErrInvalidMargin},
		{"margin eats page", Geometry{PageSize: "letter", MarginInches: 4.25}, ErrInvalidMargin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.geo.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGeometryUsableArea(t *testing.T) {
	t.Parallel()

	geo := DefaultGeometry()
	if w := geo.UsableWidthPt(); math.Abs(w-540) > 1e-9 {
		t.Errorf("UsableWidthPt() = %v, want 540", w)
	}
	if h := geo.UsableHeightPt(); math.Abs(h-720) > 1e-9 {
		t.Errorf("UsableHeightPt() = %v, want 720", h)
	}

	legal := Geometry{PageSize: "legal", MarginInches: 1}
	if h := legal.UsableHeightPt(); math.Abs(h-864) > 1e-9 {
		t.Errorf("legal UsableHeightPt() = %v, want 864", h)
	}
}

func TestBudgetValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		budget  Budget
		wantErr bool
	}{
		{"zero value", Budget{}, false},
		{"defaults", DefaultBudget(), false},
		{"partial target only", Budget{Target: 1000}, false},
		{"negative target", Budget{Target: -1}, true},
		{"min above target", Budget{Min: 3000, Target: 2000}, true},
		{"target above max", Budget{Target: 4000, Max: 3000}, true},
		{"overshoot below one", Budget{Overshoot: 0.9}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.budget.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidBudget) {
				t.Errorf("Validate() = %v, want ErrInvalidBudget", err)
			}
		})
	}
}

func TestDefaultBudget(t *testing.T) {
	t.Parallel()

	b := DefaultBudget()
	if b.Target != 2750 || b.Min != 2000 || b.Max != 3500 || b.Overshoot != 1.3 {
		t.Errorf("DefaultBudget() = %+v", b)
	}
}

func TestFooterValidate(t *testing.T) {
	t.Parallel()

	var nilFooter *Footer
	if err := nilFooter.Validate(); err != nil {
		t.Errorf("nil footer Validate() = %v", err)
	}

	for _, pos := range []string{"", "left", "center", "right", "Right"} {
		f := &Footer{Position: pos}
		if err := f.Validate(); err != nil {
			t.Errorf("Validate(position %q) = %v", pos, err)
		}
	}

	f := &Footer{Position: "top"}
	if err := f.Validate(); !errors.Is(err, ErrInvalidFooterPosition) {
		t.Errorf("Validate(top) = %v, want ErrInvalidFooterPosition", err)
	}
}

func TestWithTimeoutPanicsOnNonPositive(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithTimeout(0) did not panic")
		}
	}()
	WithTimeout(0)
}
