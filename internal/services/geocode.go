package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultNominatimBaseURL is the public OpenStreetMap reverse endpoint.
const DefaultNominatimBaseURL = "https://nominatim.openstreetmap.org/reverse"

// userAgent identifies this tool to Nominatim, which rejects anonymous clients.
const userAgent = "SolSense/1.0"

// GeocodeClient resolves coordinates to a human-readable place name.
type GeocodeClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewGeocodeClient creates a client for the given endpoint. An empty baseURL
// selects the public Nominatim instance; a zero timeout selects the default.
func NewGeocodeClient(baseURL string, timeout time.Duration) *GeocodeClient {
	if baseURL == "" {
		baseURL = DefaultNominatimBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &GeocodeClient{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

type nominatimResponse struct {
	DisplayName string            `json:"display_name"`
	Address     map[string]string `json:"address"`
}

// ReverseGeocode returns a display name for (lon, lat). The name is composed
// from street, neighbourhood, city and state parts when available, falling
// back to a truncated display_name. Errors indicate the service was
// unavailable; the name is display-only and never feeds the numeric core.
func (c *GeocodeClient) ReverseGeocode(ctx context.Context, lon, lat float64) (string, error) {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", lat))
	params.Set("lon", fmt.Sprintf("%f", lon))
	params.Set("format", "json")
	params.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocode: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocode: unexpected status %s", resp.Status)
	}

	var data nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("reverse geocode: decoding response: %w", err)
	}

	return formatLocationName(data), nil
}

// formatLocationName builds "street, neighbourhood, city, state" from the
// address parts Nominatim returns, taking the first available alias in each
// group.
func formatLocationName(data nominatimResponse) string {
	addr := data.Address
	var parts []string

	var street []string
	if v, ok := addr["house_number"]; ok {
		street = append(street, v)
	}
	if v, ok := addr["road"]; ok {
		street = append(street, v)
	} else if v, ok := addr["street"]; ok {
		street = append(street, v)
	}
	if len(street) > 0 {
		parts = append(parts, strings.Join(street, " "))
	}

	groups := [][]string{
		{"neighbourhood", "suburb", "quarter", "district"},
		{"city", "town", "village", "municipality"},
		{"state", "province", "region"},
	}
	for _, keys := range groups {
		for _, k := range keys {
			if v, ok := addr[k]; ok {
				parts = append(parts, v)
				break
			}
		}
	}

	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}

	name := data.DisplayName
	if name == "" {
		return "Unknown Location"
	}
	if len(name) > 50 {
		return name[:50] + "..."
	}
	return name
}
