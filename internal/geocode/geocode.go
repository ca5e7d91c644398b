package geocode

import (
	"fmt"
	"strings"

	"github.com/kelvins/geocoder"
)

// Geocoder resolves a free-form place name ("Berlin" or "Berlin, Germany")
// to geographic coordinates via the Google geocoding API.
type Geocoder struct {
	apiKey string
}

// New creates a Geocoder. apiKey is a Google Maps API key.
func New(apiKey string) *Geocoder {
	return &Geocoder{apiKey: apiKey}
}

// Lookup returns the coordinates of place.
func (g *Geocoder) Lookup(place string) (lat, lon float64, err error) {
	if g.apiKey == "" {
		return 0, 0, fmt.Errorf("geocoding requires GEOCODER_API_KEY to be set")
	}
	geocoder.ApiKey = g.apiKey

	addr := geocoder.Address{City: place}
	if city, country, ok := strings.Cut(place, ","); ok {
		addr = geocoder.Address{
			City:    strings.TrimSpace(city),
			Country: strings.TrimSpace(country),
		}
	}

	loc, err := geocoder.Geocoding(addr)
	if err != nil {
		return 0, 0, fmt.Errorf("geocoding %q: %w", place, err)
	}
	return loc.Latitude, loc.Longitude, nil
}
