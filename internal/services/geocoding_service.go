package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"cityguide/internal/config"
	mem "cityguide/pkg/memcache"
)

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// GeocodingService is best-effort: a nil result means "no coordinates" and
// every failure is logged and swallowed here.
type GeocodingService interface {
	LookupByAddress(ctx context.Context, address string) *Coordinates
	LookupByCityName(ctx context.Context, name string) *Coordinates
}

var errNoResult = errors.New("geocoding: no result")

// HTTPGeocoder resolves addresses with the Google Geocoding API and city
// names with Mapbox Places.
type HTTPGeocoder struct {
	HTTP          *http.Client
	GoogleBaseURL string
	GoogleAPIKey  string
	MapboxBaseURL string
	MapboxToken   string
	CacheTTL      time.Duration

	cache  *mem.TTLCache[string, Coordinates]
	google *gobreaker.CircuitBreaker[*Coordinates]
	mapbox *gobreaker.CircuitBreaker[*Coordinates]
	log    *zap.Logger
}

// NewHTTPGeocoder builds a geocoder that keeps results in cache. The cache
// may be shared and swept by the caller.
func NewHTTPGeocoder(cfg config.GeocodingConfig, cache *mem.TTLCache[string, Coordinates], log *zap.Logger) *HTTPGeocoder {
	g := &HTTPGeocoder{
		HTTP:          &http.Client{Timeout: cfg.Timeout},
		GoogleBaseURL: strings.TrimRight(cfg.GoogleBaseURL, "/"),
		GoogleAPIKey:  cfg.GoogleAPIKey,
		MapboxBaseURL: strings.TrimRight(cfg.MapboxBaseURL, "/"),
		MapboxToken:   cfg.MapboxToken,
		CacheTTL:      cfg.CacheTTL,
		cache:         cache,
		log:           log.Named("geocoding"),
	}
	g.google = g.newBreaker("google-geocode", cfg)
	g.mapbox = g.newBreaker("mapbox-places", cfg)
	return g
}

func (g *HTTPGeocoder) newBreaker(name string, cfg config.GeocodingConfig) *gobreaker.CircuitBreaker[*Coordinates] {
	return gobreaker.NewCircuitBreaker[*Coordinates](gobreaker.Settings{
		Name:    name,
		Timeout: cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		// an empty result set is an answer, not a provider failure
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errNoResult)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			g.log.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
}

func (g *HTTPGeocoder) LookupByAddress(ctx context.Context, address string) *Coordinates {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil
	}
	if g.GoogleAPIKey == "" {
		g.log.Debug("google api key not configured, skipping address lookup")
		return nil
	}
	return g.lookup(ctx, "address:"+strings.ToLower(address), g.google, func() (*Coordinates, error) {
		return g.fetchGoogle(ctx, address)
	})
}

func (g *HTTPGeocoder) LookupByCityName(ctx context.Context, name string) *Coordinates {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	if g.MapboxToken == "" {
		g.log.Debug("mapbox token not configured, skipping city lookup")
		return nil
	}
	return g.lookup(ctx, "city:"+strings.ToLower(name), g.mapbox, func() (*Coordinates, error) {
		return g.fetchMapbox(ctx, name)
	})
}

func (g *HTTPGeocoder) lookup(ctx context.Context, key string, cb *gobreaker.CircuitBreaker[*Coordinates], fetch func() (*Coordinates, error)) *Coordinates {
	if c, ok := g.cache.Get(key); ok {
		return &c
	}

	coords, err := cb.Execute(fetch)
	if err != nil {
		if errors.Is(err, errNoResult) {
			g.log.Info("no geocoding result", zap.String("query", key))
		} else {
			g.log.Warn("geocoding lookup failed", zap.String("query", key), zap.Error(err))
		}
		return nil
	}

	g.cache.Set(key, *coords, g.CacheTTL)
	return coords
}

type googleGeocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (g *HTTPGeocoder) fetchGoogle(ctx context.Context, address string) (*Coordinates, error) {
	q := url.Values{}
	q.Set("address", address)
	q.Set("key", g.GoogleAPIKey)
	endpoint := g.GoogleBaseURL + "/maps/api/geocode/json?" + q.Encode()

	var payload googleGeocodeResponse
	if err := g.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	if len(payload.Results) == 0 {
		return nil, errNoResult
	}
	loc := payload.Results[0].Geometry.Location
	return &Coordinates{Latitude: loc.Lat, Longitude: loc.Lng}, nil
}

type mapboxPlacesResponse struct {
	Features []struct {
		Center []float64 `json:"center"` // [lon, lat]
	} `json:"features"`
}

func (g *HTTPGeocoder) fetchMapbox(ctx context.Context, city string) (*Coordinates, error) {
	q := url.Values{}
	q.Set("access_token", g.MapboxToken)
	endpoint := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json?%s",
		g.MapboxBaseURL, url.PathEscape(city), q.Encode())

	var payload mapboxPlacesResponse
	if err := g.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	if len(payload.Features) == 0 || len(payload.Features[0].Center) < 2 {
		return nil, errNoResult
	}
	center := payload.Features[0].Center
	return &Coordinates{Latitude: center[1], Longitude: center[0]}, nil
}

func (g *HTTPGeocoder) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := g.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// NoopGeocoder never finds anything. It stands in when geocoding is not
// configured and in tests.
type NoopGeocoder struct{}

func (NoopGeocoder) LookupByAddress(context.Context, string) *Coordinates  { return nil }
func (NoopGeocoder) LookupByCityName(context.Context, string) *Coordinates { return nil }
