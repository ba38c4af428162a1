package model

import (
	"runtime"
	"time"

	"github.com/google/uuid"
)

// Grid represents a decoded digital elevation model. Elevations is row-major
// with row 0 at the northern edge; cells with no measurement hold NaN.
type Grid struct {
	Elevations   [][]float64 `json:"elevations"`
	PixelWidthM  float64     `json:"pixel_width_m"`  // meters per cell, east-west
	PixelHeightM float64     `json:"pixel_height_m"` // meters per cell, north-south
}

func NewGrid(elevations [][]float64, pixelWidthM, pixelHeightM float64) Grid {
	return Grid{
		Elevations:   elevations,
		PixelWidthM:  pixelWidthM,
		PixelHeightM: pixelHeightM,
	}
}

// Rows returns the number of grid rows.
func (g Grid) Rows() int {
	return len(g.Elevations)
}

// Cols returns the number of grid columns.
func (g Grid) Cols() int {
	if len(g.Elevations) == 0 {
		return 0
	}
	return len(g.Elevations[0])
}

// AnalysisSnapshot captures the complete result of one site analysis as an
// immutable value. Pipeline stages produce new snapshots rather than mutating
// shared state, so a snapshot can be exported or compared at any point.
type AnalysisSnapshot struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`

	// Marker location
	Longitude    float64 `json:"longitude"`
	Latitude     float64 `json:"latitude"`
	LocationName string  `json:"location_name"`

	// Terrain at the marker cell
	SlopeDegrees    float64 `json:"slope_degrees"`  // NaN when the cell has no data
	AspectDegrees   float64 `json:"aspect_degrees"` // -1 for flat, NaN when no data
	AspectDirection string  `json:"aspect_direction"`

	// Packing and energy results
	NumPanels       int            `json:"num_panels"`
	LandAreaM2      float64        `json:"land_area_m2"`
	IrradianceKWhM2 float64        `json:"irradiance_kwh_m2"`
	Energy          EnergyEstimate `json:"energy"`
}

// NewAnalysisSnapshot creates a snapshot with a fresh ID and UTC timestamp.
func NewAnalysisSnapshot() AnalysisSnapshot {
	return AnalysisSnapshot{
		ID:           uuid.New().String()[:8],
		Timestamp:    time.Now().UTC(),
		LocationName: "Not Set",
	}
}

// Diagnostics reports the cost of a single computation. It is returned
// alongside results as a side channel so the computations themselves stay
// pure and retain no instrumentation state between calls.
type Diagnostics struct {
	Elapsed          time.Duration `json:"elapsed"`
	MemoryDeltaBytes int64         `json:"memory_delta_bytes"`
}

// Measure runs fn and records wall-clock time and heap growth. The memory
// delta is a heap-allocation snapshot difference and can be negative when a
// collection runs mid-measurement.
func Measure(fn func()) Diagnostics {
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	start := time.Now()
	fn()
	elapsed := time.Since(start)
	runtime.ReadMemStats(&after)
	return Diagnostics{
		Elapsed:          elapsed,
		MemoryDeltaBytes: int64(after.HeapAlloc) - int64(before.HeapAlloc),
	}
}
