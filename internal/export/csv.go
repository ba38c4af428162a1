// Package export serializes analysis results to CSV, PDF, XLSX, DXF and PNG.
package export

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/piwi3910/solsense/internal/engine"
	"github.com/piwi3910/solsense/internal/model"
)

// ExportAnalysisCSV writes a single-row summary of an analysis run.
func ExportAnalysisCSV(path string, snap model.AnalysisSnapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"Timestamp",
		"Longitude",
		"Latitude",
		"Location_Name",
		"Slope_Degrees",
		"Aspect_Direction",
		"Num_Panels",
		"Annual_Energy_kWh",
		"Daily_Energy_kWh",
		"Land_Area_m2",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	slope := "NoData"
	if !math.IsNaN(snap.SlopeDegrees) {
		slope = fmt.Sprintf("%.2f", snap.SlopeDegrees)
	}

	row := []string{
		snap.Timestamp.UTC().Format(time.RFC3339),
		fmt.Sprintf("%.6f", snap.Longitude),
		fmt.Sprintf("%.6f", snap.Latitude),
		snap.LocationName,
		slope,
		snap.AspectDirection,
		strconv.Itoa(snap.NumPanels),
		fmt.Sprintf("%.2f", snap.Energy.AnnualEnergyKWh),
		fmt.Sprintf("%.2f", snap.Energy.DailyEnergyKWh),
		fmt.Sprintf("%.2f", snap.LandAreaM2),
	}
	if err := w.Write(row); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}

// ExportPlacementsCSV writes the packed panel coordinates, one row per panel.
func ExportPlacementsCSV(path string, placements []engine.Placement) error {
	if len(placements) == 0 {
		return fmt.Errorf("no placements to export")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Panel_ID", "X_meters", "Y_meters", "Width_meters", "Height_meters"}); err != nil {
		return err
	}
	for i, p := range placements {
		row := []string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("%.3f", p.X),
			fmt.Sprintf("%.3f", p.Y),
			fmt.Sprintf("%.3f", p.W),
			fmt.Sprintf("%.3f", p.H),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
