package emissions

import (
	"context"
	"errors"
)

var (
	// ErrNoData is returned when the API answered a valid request but has no
	// samples for the given product and day.
	ErrNoData = errors.New("no data for requested product and day")

	// ErrTransport is returned when the request could not complete: network
	// failure, timeout, unexpected status code or an open circuit breaker.
	ErrTransport = errors.New("emissions api request failed")
)

// Provider abstracts an emissions data source.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, product string, day Day) ([]Sample, error)
}

// Cache is the contract for caching downloaded samples between runs.
type Cache interface {
	Load(product string, day Day) ([]Sample, error)
	Save(product string, day Day, samples []Sample) error
}
