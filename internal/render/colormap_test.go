package render

import "testing"

// TestColorScaleExtremes verifies that values equal to min/max map to the
// two extreme colors and that out-of-range values clamp instead of erroring.
func TestColorScaleExtremes(t *testing.T) {
	scale := NewColorScale(Viridis, 10, 20)

	low := Viridis.At(0)
	high := Viridis.At(1)

	if got := scale.At(10); got != low {
		t.Fatalf("expected min value to map to %v, got %v", low, got)
	}
	if got := scale.At(20); got != high {
		t.Fatalf("expected max value to map to %v, got %v", high, got)
	}

	// Clamping, not extrapolation.
	if got := scale.At(-1000); got != low {
		t.Fatalf("expected below-range value to clamp to %v, got %v", low, got)
	}
	if got := scale.At(1000); got != high {
		t.Fatalf("expected above-range value to clamp to %v, got %v", high, got)
	}
}

func TestColorScaleDegenerateBounds(t *testing.T) {
	scale := NewColorScale(Plasma, 5, 5)

	low := Plasma.At(0)
	for _, v := range []float64{-1, 5, 99} {
		if got := scale.At(v); got != low {
			t.Fatalf("expected degenerate scale to map %g to %v, got %v", v, low, got)
		}
	}
}

func TestColorScaleSwappedBounds(t *testing.T) {
	scale := NewColorScale(Viridis, 20, 10)
	min, max := scale.Bounds()
	if min != 10 || max != 20 {
		t.Fatalf("expected bounds to normalize to [10, 20], got [%g, %g]", min, max)
	}
}

func TestColormapByName(t *testing.T) {
	for _, name := range ColormapNames() {
		if _, err := ColormapByName(name); err != nil {
			t.Fatalf("expected colormap %q to resolve: %v", name, err)
		}
	}

	if _, err := ColormapByName("gist_rainbow"); err == nil {
		t.Fatal("expected an error for an unknown colormap")
	}
}
