package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/emissions-api/worldmap-creator/internal/emissions"
	"github.com/emissions-api/worldmap-creator/internal/logging"
)

// EmissionsAPIProvider implements the emissions.Provider interface against an
// Emissions API v2 instance (https://api.v2.emissions-api.org).
type EmissionsAPIProvider struct {
	name    string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewEmissionsAPIProvider(client *http.Client, baseURL string) *EmissionsAPIProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "emissionsapi",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &EmissionsAPIProvider{
		name:    "emissionsapi",
		baseURL: baseURL,
		client:  client,
		circuit: cb,
	}
}

func (p *EmissionsAPIProvider) Name() string {
	return p.name
}

// Fetch downloads one day of samples for the product as GeoJSON. The API
// takes a half-open [begin, end) day interval.
func (p *EmissionsAPIProvider) Fetch(ctx context.Context, product string, day emissions.Day) ([]emissions.Sample, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("begin", day.String())
		values.Set("end", day.Next().String())

		u := fmt.Sprintf("%s/api/v2/%s/geo.json?%s", p.baseURL, url.PathEscape(product), values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		return req, nil
	}

	resp, err := doRequest(ctx, p.client, p.circuit, buildRequest)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return nil, fmt.Errorf("%w: %s on %s", emissions.ErrNoData, product, day)
		}
		return nil, fmt.Errorf("%w: %v", emissions.ErrTransport, err)
	}
	defer resp.Body.Close()

	var payload featureCollection
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding geo.json: %v", emissions.ErrTransport, err)
	}

	samples := payload.samples()
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: %s on %s", emissions.ErrNoData, product, day)
	}

	log.Printf("INFO: downloaded %d samples for %s %s", len(samples), product, day)
	return samples, nil
}

// featureCollection is the subset of the GeoJSON response this tool needs.
// Coordinates are [lon, lat] per the GeoJSON spec.
type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Type       string   `json:"type"`
	Geometry   geometry `json:"geometry"`
	Properties struct {
		Value float64 `json:"value"`
	} `json:"properties"`
}

type geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// samples converts point features into Samples, preserving response order.
// Malformed or out-of-range features are skipped, not fatal.
func (fc featureCollection) samples() []emissions.Sample {
	samples := make([]emissions.Sample, 0, len(fc.Features))
	for _, f := range fc.Features {
		if f.Geometry.Type != "Point" || len(f.Geometry.Coordinates) < 2 {
			logging.Debugf("skipping feature with geometry %q", f.Geometry.Type)
			continue
		}
		s := emissions.Sample{
			Longitude: f.Geometry.Coordinates[0],
			Latitude:  f.Geometry.Coordinates[1],
			Value:     f.Properties.Value,
		}
		if !s.InBounds() {
			logging.Debugf("skipping out-of-range sample at %f,%f", s.Latitude, s.Longitude)
			continue
		}
		samples = append(samples, s)
	}
	return samples
}
