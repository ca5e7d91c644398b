package emissions

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/emissions-api/worldmap-creator/internal/logging"
)

// Service orchestrates the cache and the provider. Days in a range are
// fetched sequentially in calendar order so the resulting sample sequence is
// well-defined and reproducible.
type Service struct {
	provider Provider
	cache    Cache
}

// NewService creates a new Service. cache may be nil to disable caching.
func NewService(provider Provider, cache Cache) *Service {
	return &Service{
		provider: provider,
		cache:    cache,
	}
}

// GetSamples returns all samples for the product between begin and end
// (inclusive). Days without data are skipped; if every day is empty the
// result is ErrNoData. Transport failures abort the whole range.
func (s *Service) GetSamples(ctx context.Context, product string, begin, end Day) ([]Sample, error) {
	if s.provider == nil {
		return nil, fmt.Errorf("no emissions provider configured")
	}

	var all []Sample
	for _, day := range DaysBetween(begin, end) {
		samples, err := s.getDay(ctx, product, day)
		if err != nil {
			if errors.Is(err, ErrNoData) {
				log.Printf("INFO: no data for %s on %s; skipping", product, day)
				continue
			}
			return nil, err
		}
		all = append(all, samples...)
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("%w: %s between %s and %s", ErrNoData, product, begin, end)
	}
	return all, nil
}

func (s *Service) getDay(ctx context.Context, product string, day Day) ([]Sample, error) {
	if s.cache != nil {
		samples, err := s.cache.Load(product, day)
		if err == nil {
			logging.Debugf("cache hit for %s %s (%d samples)", product, day, len(samples))
			return samples, nil
		}
	}

	samples, err := s.provider.Fetch(ctx, product, day)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Save(product, day, samples); err != nil {
			// A broken cache must not fail the run.
			log.Printf("ERROR: saving cache for %s %s: %v", product, day, err)
		}
	}
	return samples, nil
}
