// Package services implements the external HTTP collaborators: the NASA
// POWER irradiance lookup and Nominatim reverse geocoding. Both are single
// bounded-timeout attempts with no retry policy; callers treat failures as
// "unavailable" rather than as zero readings.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"sync"
	"time"
)

const (
	// DefaultPowerBaseURL is NASA's POWER climatology point endpoint.
	DefaultPowerBaseURL = "https://power.larc.nasa.gov/api/temporal/climatology/point"

	// DefaultRequestTimeout bounds a single service call.
	DefaultRequestTimeout = 15 * time.Second

	// DefaultCacheSize bounds the irradiance cache.
	DefaultCacheSize = 32
)

// irradianceParameter is the all-sky surface shortwave downward irradiance,
// reported by POWER in kWh/m²/day for the RE community.
const irradianceParameter = "ALLSKY_SFC_SW_DWN"

// IrradianceClient fetches the average daily solar irradiance for a
// location. Results are cached by coordinates rounded to 4 decimal places
// (about 11 m), with the oldest entry evicted once the cache is full.
type IrradianceClient struct {
	BaseURL    string
	HTTPClient *http.Client
	CacheSize  int

	mu    sync.Mutex
	cache map[coordKey]float64
	order []coordKey
}

type coordKey struct {
	lon, lat float64
}

// NewIrradianceClient creates a client for the given endpoint. An empty
// baseURL selects the public NASA POWER API; a zero timeout selects the
// default.
func NewIrradianceClient(baseURL string, timeout time.Duration) *IrradianceClient {
	if baseURL == "" {
		baseURL = DefaultPowerBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &IrradianceClient{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
		CacheSize:  DefaultCacheSize,
		cache:      make(map[coordKey]float64),
	}
}

// FetchDailyIrradiance returns the annual-average daily irradiance in
// kWh/m²/day at (lon, lat). Network errors, malformed responses and
// implausible (negative) readings are returned as errors, never as zero.
func (c *IrradianceClient) FetchDailyIrradiance(ctx context.Context, lon, lat float64) (float64, error) {
	key := coordKey{lon: roundCoord(lon), lat: roundCoord(lat)}

	c.mu.Lock()
	if v, ok := c.cache[key]; ok {
		c.mu.Unlock()
		return v, nil
	}
	c.mu.Unlock()

	v, err := c.fetch(ctx, key.lon, key.lat)
	if err != nil {
		return 0, fmt.Errorf("NASA POWER: %w", err)
	}

	c.mu.Lock()
	c.store(key, v)
	c.mu.Unlock()
	return v, nil
}

func (c *IrradianceClient) fetch(ctx context.Context, lon, lat float64) (float64, error) {
	params := url.Values{}
	params.Set("parameters", irradianceParameter)
	params.Set("community", "RE")
	params.Set("longitude", fmt.Sprintf("%.4f", lon))
	params.Set("latitude", fmt.Sprintf("%.4f", lat))
	params.Set("format", "JSON")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var payload struct {
		Properties struct {
			Parameter map[string]map[string]float64 `json:"parameter"`
		} `json:"properties"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("decoding response: %w", err)
	}

	value, ok := payload.Properties.Parameter[irradianceParameter]["ANN"]
	if !ok {
		return 0, fmt.Errorf("response missing %s annual value", irradianceParameter)
	}
	if value < 0 {
		return 0, fmt.Errorf("implausible irradiance value %.2f", value)
	}
	return value, nil
}

// store inserts into the cache, evicting the oldest entry at capacity.
// Callers must hold mu.
func (c *IrradianceClient) store(key coordKey, v float64) {
	size := c.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	if c.cache == nil {
		c.cache = make(map[coordKey]float64)
	}
	if _, ok := c.cache[key]; !ok {
		for len(c.order) >= size {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.cache, oldest)
		}
		c.order = append(c.order, key)
	}
	c.cache[key] = v
}

func roundCoord(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
