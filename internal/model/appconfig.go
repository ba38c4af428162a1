package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default analysis inputs applied when flags are not given
	DefaultLandWidthM        float64 `json:"default_land_width_m"`
	DefaultLandHeightM       float64 `json:"default_land_height_m"`
	DefaultPanelWidthM       float64 `json:"default_panel_width_m"`
	DefaultPanelHeightM      float64 `json:"default_panel_height_m"`
	DefaultEfficiencyPercent float64 `json:"default_efficiency_percent"`
	DefaultPerformanceRatio  float64 `json:"default_performance_ratio"`

	// External service settings
	PowerBaseURL          string `json:"power_base_url"`     // NASA POWER climatology endpoint
	NominatimBaseURL      string `json:"nominatim_base_url"` // Reverse geocoding endpoint
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
	IrradianceCacheSize   int    `json:"irradiance_cache_size"`
}

// DefaultAppConfig returns an AppConfig populated with the stock defaults:
// a 100x50 m plot, a common 1.65x1.0 m panel at 18% efficiency with a 0.8
// performance ratio, and the public NASA POWER / Nominatim endpoints.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultLandWidthM:        100,
		DefaultLandHeightM:       50,
		DefaultPanelWidthM:       1.65,
		DefaultPanelHeightM:      1.0,
		DefaultEfficiencyPercent: 18,
		DefaultPerformanceRatio:  0.8,
		PowerBaseURL:             "https://power.larc.nasa.gov/api/temporal/climatology/point",
		NominatimBaseURL:         "https://nominatim.openstreetmap.org/reverse",
		RequestTimeoutSeconds:    15,
		IrradianceCacheSize:      32,
	}
}
