package model

import (
	"fmt"
	"math"
)

// sqmPerHectare is the number of square meters in one hectare.
const sqmPerHectare = 10000.0

// HectaresToPlot converts an area in hectares to the side lengths of an
// equivalent square plot in meters.
func HectaresToPlot(hectares float64) (widthM, heightM float64) {
	side := math.Sqrt(hectares * sqmPerHectare)
	return side, side
}

// LandAreaM2 returns the plot area in square meters.
func LandAreaM2(widthM, heightM float64) float64 {
	return widthM * heightM
}

// FormatArea renders an area for display, switching to hectares at 1 ha.
func FormatArea(areaM2 float64) string {
	if areaM2 >= sqmPerHectare {
		return fmt.Sprintf("%.2f ha (%.0f m²)", areaM2/sqmPerHectare, areaM2)
	}
	return fmt.Sprintf("%.0f m²", areaM2)
}

// FormatEnergy renders an energy value for display, switching to MWh at 1000 kWh.
func FormatEnergy(energyKWh float64) string {
	if energyKWh >= 1000 {
		return fmt.Sprintf("%.1f MWh", energyKWh/1000)
	}
	return fmt.Sprintf("%.0f kWh", energyKWh)
}

// FormatCoordinates renders a lon/lat pair for display at 4 decimal places.
func FormatCoordinates(lon, lat float64) (string, string) {
	return fmt.Sprintf("%.4f°", lon), fmt.Sprintf("%.4f°", lat)
}
