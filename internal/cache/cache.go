package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/emissions-api/worldmap-creator/internal/emissions"
)

// ErrMiss is returned when no cached data exists for a given product and day.
var ErrMiss = errors.New("cache miss")

// DiskCache stores downloaded samples as JSON files so repeated runs for the
// same product and day skip the network entirely.
type DiskCache struct {
	dir string
}

// NewDiskCache creates a cache rooted at dir, creating it if needed.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir %s: %w", dir, err)
	}
	return &DiskCache{dir: dir}, nil
}

// Load returns the cached samples for product and day, or ErrMiss. Corrupt
// entries are treated as misses so a damaged cache never breaks a run.
func (c *DiskCache) Load(product string, day emissions.Day) ([]emissions.Sample, error) {
	data, err := os.ReadFile(c.filename(product, day))
	if err != nil {
		return nil, ErrMiss
	}

	var samples []emissions.Sample
	if err := json.Unmarshal(data, &samples); err != nil {
		return nil, ErrMiss
	}
	return samples, nil
}

// Save writes the samples for product and day to the cache.
func (c *DiskCache) Save(product string, day emissions.Day, samples []emissions.Sample) error {
	data, err := json.Marshal(samples)
	if err != nil {
		return err
	}

	fn := c.filename(product, day)
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("writing cache %s: %w", fn, err)
	}
	return nil
}

func (c *DiskCache) filename(product string, day emissions.Day) string {
	return filepath.Join(c.dir, fmt.Sprintf("cache-%s-%s.json", product, day))
}
