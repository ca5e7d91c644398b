package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
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

const geoJSONFixture = `{
	"type": "FeatureCollection",
	"features": [
		{
			"type": "Feature",
			"geometry": {"type": "Point", "coordinates": [11.5, 48.1]},
			"properties": {"value": 0.021}
		},
		{
			"type": "Feature",
			"geometry": {"type": "Polygon", "coordinates": []},
			"properties": {"value": 0.5}
		},
		{
			"type": "Feature",
			"geometry": {"type": "Point", "coordinates": [-200.0, 10.0]},
			"properties": {"value": 0.3}
		},
		{
			"type": "Feature",
			"geometry": {"type": "Point", "coordinates": [151.2, -33.9]},
			"properties": {"value": 0.017}
		}
	]
}`

// TestFetchParsesGeoJSON verifies request shape and that point features are
// decoded with GeoJSON's [lon, lat] coordinate order, while non-point and
// out-of-range features are skipped.
func TestFetchParsesGeoJSON(t *testing.T) {
	var gotPath, gotBegin, gotEnd string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBegin = r.URL.Query().Get("begin")
		gotEnd = r.URL.Query().Get("end")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(geoJSONFixture))
	}))
	defer server.Close()

	p := NewEmissionsAPIProvider(server.Client(), server.URL)

	samples, err := p.Fetch(context.Background(), "ozone", mustDay(t, "2020-06-04"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/api/v2/ozone/geo.json" {
		t.Fatalf("unexpected request path %q", gotPath)
	}
	if gotBegin != "2020-06-04" || gotEnd != "2020-06-05" {
		t.Fatalf("expected begin/end 2020-06-04/2020-06-05, got %s/%s", gotBegin, gotEnd)
	}

	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
	first := emissions.Sample{Latitude: 48.1, Longitude: 11.5, Value: 0.021}
	if samples[0] != first {
		t.Fatalf("expected first sample %+v, got %+v", first, samples[0])
	}
}

func TestFetchNoData(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			"404",
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			"empty collection",
			func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"type": "FeatureCollection", "features": []}`))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			p := NewEmissionsAPIProvider(server.Client(), server.URL)
			_, err := p.Fetch(context.Background(), "ozone", mustDay(t, "2020-06-04"))
			if !errors.Is(err, emissions.ErrNoData) {
				t.Fatalf("expected ErrNoData, got %v", err)
			}
		})
	}
}

// TestEmptyDaysDoNotTripBreaker fetches a long run of 404 days through one
// provider instance. Empty days mean the API is healthy, so they must never
// count as breaker failures: every day ends in ErrNoData, and a whole-range
// fetch through the service ends in ErrNoData rather than an open circuit.
func TestEmptyDaysDoNotTripBreaker(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	p := NewEmissionsAPIProvider(server.Client(), server.URL)

	for i, day := range emissions.DaysBetween(mustDay(t, "2020-06-01"), mustDay(t, "2020-06-10")) {
		_, err := p.Fetch(context.Background(), "ozone", day)
		if !errors.Is(err, emissions.ErrNoData) {
			t.Fatalf("day %d (%s): expected ErrNoData, got %v", i+1, day, err)
		}
	}

	svc := emissions.NewService(p, nil)
	_, err := svc.GetSamples(context.Background(), "ozone",
		mustDay(t, "2020-07-01"), mustDay(t, "2020-07-10"))
	if !errors.Is(err, emissions.ErrNoData) {
		t.Fatalf("expected ErrNoData for an all-empty range, got %v", err)
	}
	if errors.Is(err, emissions.ErrTransport) {
		t.Fatalf("expected no transport error for an all-empty range, got %v", err)
	}
}

func TestFetchTransportErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	p := NewEmissionsAPIProvider(server.Client(), server.URL)
	_, err := p.Fetch(context.Background(), "ozone", mustDay(t, "2020-06-04"))
	if !errors.Is(err, emissions.ErrTransport) {
		t.Fatalf("expected ErrTransport for a 500 response, got %v", err)
	}

	// Unreachable server.
	dead := NewEmissionsAPIProvider(&http.Client{}, "http://127.0.0.1:1")
	_, err = dead.Fetch(context.Background(), "ozone", mustDay(t, "2020-06-04"))
	if !errors.Is(err, emissions.ErrTransport) {
		t.Fatalf("expected ErrTransport for an unreachable host, got %v", err)
	}
}
