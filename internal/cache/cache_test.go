package cache

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/emissions-api/worldmap-creator/internal/emissions"
)

func mustDay(t *testing.T, s string) emissions.Day {
	t.Helper()
	day, err := emissions.ParseDay(s)
	if err != nil {
		t.Fatalf("unexpected error parsing day: %v", err)
	}
	return day
}

func TestDiskCacheRoundtrip(t *testing.T) {
	c, err := NewDiskCache(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	day := mustDay(t, "2020-06-04")
	samples := []emissions.Sample{
		{Latitude: 48.1, Longitude: 11.5, Value: 0.021},
		{Latitude: -33.9, Longitude: 151.2, Value: 0.017},
	}

	if err := c.Save("ozone", day, samples); err != nil {
		t.Fatalf("unexpected error saving: %v", err)
	}

	got, err := c.Load("ozone", day)
	if err != nil {
		t.Fatalf("unexpected error loading: %v", err)
	}
	if len(got) != len(samples) {
		t.Fatalf("expected %d samples, got %d", len(samples), len(got))
	}
	for i := range samples {
		if got[i] != samples[i] {
			t.Fatalf("sample %d mismatch: expected %+v, got %+v", i, samples[i], got[i])
		}
	}
}

func TestDiskCacheMiss(t *testing.T) {
	c, err := NewDiskCache(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := c.Load("ozone", mustDay(t, "2020-06-04")); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected ErrMiss, got %v", err)
	}
}

// TestDiskCacheCorruptEntry verifies that a damaged cache file behaves like
// a miss instead of failing the run.
func TestDiskCacheCorruptEntry(t *testing.T) {
	dir := t.TempDir()
	c, err := NewDiskCache(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	day := mustDay(t, "2020-06-04")
	fn := filepath.Join(dir, "cache-ozone-2020-06-04.json")
	if err := os.WriteFile(fn, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := c.Load("ozone", day); !errors.Is(err, ErrMiss) {
		t.Fatalf("expected ErrMiss for corrupt entry, got %v", err)
	}
}
