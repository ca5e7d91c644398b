package render

import "testing"

// TestProjectCorners pins down the corner convention: (90,-180) is the
// top-left pixel and (-90,180) the bottom-right pixel.
func TestProjectCorners(t *testing.T) {
	const width, height = 100, 50

	tests := []struct {
		name     string
		lat, lon float64
		x, y     int
	}{
		{"top-left", 90, -180, 0, 0},
		{"bottom-right", -90, 180, width - 1, height - 1},
		{"top-right", 90, 180, width - 1, 0},
		{"bottom-left", -90, -180, 0, height - 1},
		{"center", 0, 0, 50, 25},
	}

	for _, tc := range tests {
		x, y, ok := Project(tc.lat, tc.lon, width, height)
		if !ok {
			t.Fatalf("%s: expected in-bounds projection for (%g, %g)", tc.name, tc.lat, tc.lon)
		}
		if x != tc.x || y != tc.y {
			t.Fatalf("%s: expected (%d, %d), got (%d, %d)", tc.name, tc.x, tc.y, x, y)
		}
	}
}

func TestProjectOutOfBoundsDropped(t *testing.T) {
	const width, height = 100, 50

	tests := []struct {
		lat, lon float64
	}{
		{0, 200},
		{0, -200},
		{-100, 0},
		{100, 0},
	}

	for _, tc := range tests {
		if _, _, ok := Project(tc.lat, tc.lon, width, height); ok {
			t.Fatalf("expected (%g, %g) to project out of bounds", tc.lat, tc.lon)
		}
	}
}
