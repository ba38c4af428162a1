package main

import (
	"fmt"
	"math"

	"github.com/piwi3910/solsense/internal/engine"
	"github.com/piwi3910/solsense/internal/model"
	"github.com/piwi3910/solsense/internal/raster"
	"github.com/piwi3910/solsense/internal/terrain"
)

func printValidationErrors(errs []string) {
	fmt.Printf("INVALID INPUT (%d):\n", len(errs))
	for _, e := range errs {
		fmt.Printf("  - %s\n", e)
	}
}

func printSlopeStats(rast *raster.Raster, field terrain.Field, diag model.Diagnostics) {
	minSlope := math.Inf(1)
	maxSlope := math.Inf(-1)
	counts := map[terrain.Suitability]int{}

	for i := range field.Slope {
		for j := range field.Slope[i] {
			s := field.Slope[i][j]
			cat := terrain.Classify(s, field.Aspect[i][j])
			counts[cat]++
			if cat == terrain.SuitabilityNoData {
				continue
			}
			if s < minSlope {
				minSlope = s
			}
			if s > maxSlope {
				maxSlope = s
			}
		}
	}

	total := rast.Rows * rast.Cols
	fmt.Printf("DEM: %d cols x %d rows, cell size %g\n", rast.Cols, rast.Rows, rast.CellSize)
	if counts[terrain.SuitabilityNoData] < total {
		fmt.Printf("Slope range: %.2f° to %.2f°\n", minSlope, maxSlope)
	} else {
		fmt.Println("Slope range: no valid data")
	}
	for _, cat := range []terrain.Suitability{
		terrain.SuitabilityOptimal,
		terrain.SuitabilitySuboptimal,
		terrain.SuitabilityUnsuitable,
		terrain.SuitabilityNoData,
	} {
		n := counts[cat]
		fmt.Printf("  %-10s %8d cells (%.1f%%)\n", cat, n, float64(n)/float64(total)*100)
	}
	fmt.Printf("Computed in %s\n", diag.Elapsed)
}

func printPackResult(result engine.Result, eff engine.EfficiencyReport, diag model.Diagnostics) {
	fmt.Printf("Packed %d panels in %d iterations (%s)\n", len(result.Placements), result.Iterations, diag.Elapsed)
	for i, p := range result.Placements {
		fmt.Printf("  #%-4d x=%8.3f  y=%8.3f  w=%.3f  h=%.3f\n", i+1, p.X, p.Y, p.W, p.H)
	}
	fmt.Printf("Coverage: %.1f%% of %s with %s of panels\n",
		eff.EfficiencyPercent, model.FormatArea(eff.TotalLandAreaM2), model.FormatArea(eff.TotalPanelAreaM2))
}

func printEstimate(est model.EnergyEstimate) {
	fmt.Printf("Daily energy:  %s\n", model.FormatEnergy(est.DailyEnergyKWh))
	fmt.Printf("Annual energy: %s\n", model.FormatEnergy(est.AnnualEnergyKWh))
	fmt.Printf("Panel area:    %s\n", model.FormatArea(est.TotalPanelAreaM2))
}

func printSnapshot(snap model.AnalysisSnapshot, eff engine.EfficiencyReport, terrainDiag, packDiag model.Diagnostics) {
	lonStr, latStr := model.FormatCoordinates(snap.Longitude, snap.Latitude)

	fmt.Printf("Analysis %s at %s\n", snap.ID, snap.Timestamp.Format("2006-01-02 15:04:05 UTC"))
	fmt.Printf("Location:   %s, %s (%s)\n", lonStr, latStr, snap.LocationName)
	if math.IsNaN(snap.SlopeDegrees) {
		fmt.Println("Terrain:    no data at marker")
	} else {
		fmt.Printf("Terrain:    slope %.2f°, aspect %s\n", snap.SlopeDegrees, snap.AspectDirection)
	}
	fmt.Printf("Irradiance: %.2f kWh/m²/day\n", snap.IrradianceKWhM2)
	fmt.Printf("Panels:     %d placed, %.1f%% coverage of %s\n",
		snap.NumPanels, eff.EfficiencyPercent, model.FormatArea(snap.LandAreaM2))
	printEstimate(snap.Energy)
	fmt.Printf("Timing:     terrain %s, packing %s\n", terrainDiag.Elapsed, packDiag.Elapsed)
}
