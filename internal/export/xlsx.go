package export

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/solsense/internal/engine"
	"github.com/piwi3910/solsense/internal/model"
)

// ExportXLSX writes an Excel workbook with a Summary sheet for the analysis
// and a Panels sheet listing every placement.
func ExportXLSX(path string, snap model.AnalysisSnapshot, placements []engine.Placement) error {
	f := excelize.NewFile()
	defer f.Close()

	const summary = "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}

	slope := "NoData"
	if !math.IsNaN(snap.SlopeDegrees) {
		slope = fmt.Sprintf("%.2f", snap.SlopeDegrees)
	}

	rows := [][]interface{}{
		{"Analysis ID", snap.ID},
		{"Timestamp", snap.Timestamp.UTC().Format("2006-01-02 15:04:05 UTC")},
		{"Longitude", snap.Longitude},
		{"Latitude", snap.Latitude},
		{"Location", snap.LocationName},
		{"Slope (degrees)", slope},
		{"Aspect", snap.AspectDirection},
		{"Irradiance (kWh/m2/day)", snap.IrradianceKWhM2},
		{"Panels placed", snap.NumPanels},
		{"Panel area (m2)", snap.Energy.TotalPanelAreaM2},
		{"Daily energy (kWh)", snap.Energy.DailyEnergyKWh},
		{"Annual energy (kWh)", snap.Energy.AnnualEnergyKWh},
		{"Land area (m2)", snap.LandAreaM2},
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(summary, cell, &row); err != nil {
			return fmt.Errorf("writing summary row: %w", err)
		}
	}

	const panels = "Panels"
	if _, err := f.NewSheet(panels); err != nil {
		return fmt.Errorf("creating panels sheet: %w", err)
	}
	header := []interface{}{"Panel_ID", "X_meters", "Y_meters", "Width_meters", "Height_meters"}
	if err := f.SetSheetRow(panels, "A1", &header); err != nil {
		return err
	}
	for i, p := range placements {
		row := []interface{}{i + 1, p.X, p.Y, p.W, p.H}
		if err := f.SetSheetRow(panels, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
