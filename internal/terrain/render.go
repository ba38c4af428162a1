package terrain

import (
	"image"
	"math"
)

// Suitability classifies a cell for panel siting.
type Suitability int

const (
	SuitabilityNoData     Suitability = iota // Source elevation was missing
	SuitabilityOptimal                       // Gentle slope facing south
	SuitabilitySuboptimal                    // Gentle slope facing elsewhere
	SuitabilityUnsuitable                    // Too steep
)

func (s Suitability) String() string {
	switch s {
	case SuitabilityOptimal:
		return "Optimal"
	case SuitabilitySuboptimal:
		return "Suboptimal"
	case SuitabilityUnsuitable:
		return "Unsuitable"
	default:
		return "NoData"
	}
}

// Classifier thresholds. These are fixed properties of the suitability
// model, not tunables.
const (
	maxSuitableSlope = 5.0   // degrees
	southFacingMin   = 112.5 // degrees, SE octant start
	southFacingMax   = 247.5 // degrees, SW octant end

	// NoDataSentinel is accepted in slope inputs as an alternative to NaN
	// for callers that pre-substitute missing cells; it is excluded from the
	// grayscale normalization range.
	NoDataSentinel = -9999.0
)

// Classify returns the suitability category for one cell.
func Classify(slopeDeg, aspectDeg float64) Suitability {
	if math.IsNaN(slopeDeg) || slopeDeg == NoDataSentinel {
		return SuitabilityNoData
	}
	if slopeDeg >= maxSuitableSlope {
		return SuitabilityUnsuitable
	}
	if aspectDeg >= southFacingMin && aspectDeg <= southFacingMax {
		return SuitabilityOptimal
	}
	return SuitabilitySuboptimal
}

// RenderSuitability synthesizes the suitability overlay for co-indexed slope
// and aspect grids. The base brightness is the slope min-max normalized over
// valid cells; optimal cells are tinted green, suboptimal cells yellow, steep
// cells stay grayscale, and missing cells are fully transparent. Returns nil
// when no cell holds valid data. A fresh buffer is produced on every call.
func RenderSuitability(slope, aspect [][]float64) *image.NRGBA {
	rows := len(slope)
	if rows == 0 || len(slope[0]) == 0 {
		return nil
	}
	cols := len(slope[0])

	minSlope, maxSlope, valid := validRange(slope)
	if !valid {
		return nil
	}

	img := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			s := slope[i][j]
			o := img.PixOffset(j, i)

			if math.IsNaN(s) || s == NoDataSentinel {
				// Transparent; RGB stays at the zero default.
				img.Pix[o+3] = 0
				continue
			}

			var norm float64
			if maxSlope > minSlope {
				norm = (s - minSlope) / (maxSlope - minSlope)
			}
			gray := norm * 255

			var r, g, b float64
			switch Classify(s, aspect[i][j]) {
			case SuitabilityOptimal:
				r = gray * 0.3
				g = gray*0.7 + 100
				b = gray * 0.3
			case SuitabilitySuboptimal:
				r = gray*0.9 + 100
				g = gray*0.8 + 100
				b = gray * 0.3
			default:
				r, g, b = gray, gray, gray
			}

			img.Pix[o+0] = clampChannel(r)
			img.Pix[o+1] = clampChannel(g)
			img.Pix[o+2] = clampChannel(b)
			img.Pix[o+3] = 255
		}
	}
	return img
}

// validRange scans for the min and max slope across cells that are neither
// NaN nor the no-data sentinel.
func validRange(slope [][]float64) (minVal, maxVal float64, ok bool) {
	minVal = math.Inf(1)
	maxVal = math.Inf(-1)
	for _, row := range slope {
		for _, s := range row {
			if math.IsNaN(s) || s == NoDataSentinel {
				continue
			}
			if s < minVal {
				minVal = s
			}
			if s > maxVal {
				maxVal = s
			}
			ok = true
		}
	}
	return minVal, maxVal, ok
}

func clampChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
