package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/piwi3910/solsense/internal/engine"
	"github.com/piwi3910/solsense/internal/export"
	"github.com/piwi3910/solsense/internal/model"
	"github.com/piwi3910/solsense/internal/raster"
	"github.com/piwi3910/solsense/internal/services"
	"github.com/piwi3910/solsense/internal/terrain"
)

type packOptions struct {
	landWidthM   float64
	landHeightM  float64
	hectares     float64
	panelWidthM  float64
	panelHeightM float64
	maxPanels    int
	csvOut       string
	dxfOut       string
}

type estimateOptions struct {
	numPanels         int
	panelWidthM       float64
	panelHeightM      float64
	efficiencyPercent float64
	performanceRatio  float64
	irradiance        float64
}

type analyzeOptions struct {
	packOptions
	col               int
	row               int
	efficiencyPercent float64
	performanceRatio  float64
	irradiance        float64 // negative = fetch from NASA POWER
	offline           bool
	csvOut            string
	panelsCSVOut      string
	pdfOut            string
	xlsxOut           string
	dxfOut            string
	pngOut            string
}

// landDimensions resolves the plot size, preferring --hectares when given.
func (o packOptions) landDimensions() (float64, float64) {
	if o.hectares > 0 {
		return model.HectaresToPlot(o.hectares)
	}
	return o.landWidthM, o.landHeightM
}

func runSlope(demPath, pngOut string) error {
	rast, err := raster.Load(demPath)
	if err != nil {
		return err
	}

	field, diag := terrain.ComputeSlopeAspect(rast.Elevations)
	printSlopeStats(rast, field, diag)

	if pngOut != "" {
		img := terrain.RenderSuitability(field.Slope, field.Aspect)
		if img == nil {
			return fmt.Errorf("no valid elevation data to render")
		}
		if err := export.ExportPNG(pngOut, img); err != nil {
			return err
		}
		fmt.Printf("Suitability overlay written to %s\n", pngOut)
	}
	return nil
}

func runPack(opts packOptions) error {
	landW, landH := opts.landDimensions()
	if errs := model.ValidatePackingInputs(landW, landH, opts.panelWidthM, opts.panelHeightM, opts.maxPanels); len(errs) > 0 {
		printValidationErrors(errs)
		return fmt.Errorf("invalid inputs")
	}

	req := engine.Request{
		LandWidthM:   landW,
		LandHeightM:  landH,
		PanelWidthM:  opts.panelWidthM,
		PanelHeightM: opts.panelHeightM,
		MaxPanels:    opts.maxPanels,
	}
	result, diag := engine.New().Pack(req)
	if result.HitIterationBound {
		fmt.Fprintln(os.Stderr, "Warning: packing reached the iteration bound; returning panels placed so far")
	}

	eff := engine.CalculateEfficiency(result.Placements, landW, landH, opts.panelWidthM, opts.panelHeightM)
	printPackResult(result, eff, diag)

	if opts.csvOut != "" {
		if err := export.ExportPlacementsCSV(opts.csvOut, result.Placements); err != nil {
			return err
		}
		fmt.Printf("Placements written to %s\n", opts.csvOut)
	}
	if opts.dxfOut != "" {
		if err := export.ExportDXF(opts.dxfOut, req, result.Placements); err != nil {
			return err
		}
		fmt.Printf("Layout written to %s\n", opts.dxfOut)
	}
	return nil
}

func runEstimate(opts estimateOptions) error {
	var errs []string
	if opts.numPanels < 0 {
		errs = append(errs, "Number of panels must not be negative")
	}
	if msg := model.ValidatePositive("Panel width", opts.panelWidthM); msg != "" {
		errs = append(errs, msg)
	}
	if msg := model.ValidatePositive("Panel height", opts.panelHeightM); msg != "" {
		errs = append(errs, msg)
	}
	if opts.irradiance < 0 || math.IsNaN(opts.irradiance) {
		errs = append(errs, "Irradiance must not be negative")
	}
	errs = append(errs, model.ValidateEnergyInputs(opts.efficiencyPercent, opts.performanceRatio)...)
	if len(errs) > 0 {
		printValidationErrors(errs)
		return fmt.Errorf("invalid inputs")
	}

	est := model.EstimateEnergy(
		opts.numPanels,
		opts.panelWidthM*opts.panelHeightM,
		opts.efficiencyPercent/100,
		opts.performanceRatio,
		opts.irradiance,
	)
	printEstimate(est)
	return nil
}

func runAnalyze(config model.AppConfig, demPath string, opts analyzeOptions) error {
	landW, landH := opts.landDimensions()

	// Run every validation before touching the raster so the user sees all
	// field problems at once.
	errs := model.ValidatePackingInputs(landW, landH, opts.panelWidthM, opts.panelHeightM, opts.maxPanels)
	errs = append(errs, model.ValidateEnergyInputs(opts.efficiencyPercent, opts.performanceRatio)...)
	if opts.offline && opts.irradiance < 0 {
		errs = append(errs, "Irradiance is required in offline mode (--irradiance)")
	}
	if len(errs) > 0 {
		printValidationErrors(errs)
		return fmt.Errorf("invalid inputs")
	}

	rast, err := raster.Load(demPath)
	if err != nil {
		return err
	}
	if !rast.InBounds(opts.col, opts.row) {
		return fmt.Errorf("marker (%d, %d) is outside the %dx%d grid", opts.col, opts.row, rast.Cols, rast.Rows)
	}

	field, terrainDiag := terrain.ComputeSlopeAspect(rast.Elevations)
	slope, aspect := field.At(opts.row, opts.col)
	lon, lat := rast.CellLonLat(opts.col, opts.row)

	timeout := time.Duration(config.RequestTimeoutSeconds) * time.Second

	snap := model.NewAnalysisSnapshot()
	snap.Longitude = lon
	snap.Latitude = lat
	snap.SlopeDegrees = slope
	snap.AspectDegrees = aspect
	snap.AspectDirection = terrain.AspectDirection(aspect)
	snap.LandAreaM2 = model.LandAreaM2(landW, landH)

	if !opts.offline {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		name, err := services.NewGeocodeClient(config.NominatimBaseURL, timeout).ReverseGeocode(ctx, lon, lat)
		cancel()
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			name = "Location Unavailable"
		}
		snap.LocationName = name
	}

	irradiance := opts.irradiance
	if irradiance < 0 {
		client := services.NewIrradianceClient(config.PowerBaseURL, timeout)
		if config.IrradianceCacheSize > 0 {
			client.CacheSize = config.IrradianceCacheSize
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		irradiance, err = client.FetchDailyIrradiance(ctx, lon, lat)
		cancel()
		if err != nil {
			// A failed fetch must never be conflated with zero irradiance.
			return fmt.Errorf("solar irradiance unavailable: %w", err)
		}
	}
	snap.IrradianceKWhM2 = irradiance

	req := engine.Request{
		LandWidthM:   landW,
		LandHeightM:  landH,
		PanelWidthM:  opts.panelWidthM,
		PanelHeightM: opts.panelHeightM,
		MaxPanels:    opts.maxPanels,
	}
	result, packDiag := engine.New().Pack(req)
	if result.HitIterationBound {
		fmt.Fprintln(os.Stderr, "Warning: packing reached the iteration bound; returning panels placed so far")
	}

	snap.NumPanels = len(result.Placements)
	snap.Energy = model.EstimateEnergy(
		snap.NumPanels,
		opts.panelWidthM*opts.panelHeightM,
		opts.efficiencyPercent/100,
		opts.performanceRatio,
		irradiance,
	)

	eff := engine.CalculateEfficiency(result.Placements, landW, landH, opts.panelWidthM, opts.panelHeightM)
	printSnapshot(snap, eff, terrainDiag, packDiag)

	return writeAnalysisExports(opts, snap, req, result, field)
}

func writeAnalysisExports(opts analyzeOptions, snap model.AnalysisSnapshot, req engine.Request, result engine.Result, field terrain.Field) error {
	if opts.csvOut != "" {
		if err := export.ExportAnalysisCSV(opts.csvOut, snap); err != nil {
			return err
		}
		fmt.Printf("Analysis summary written to %s\n", opts.csvOut)
	}
	if opts.panelsCSVOut != "" {
		if err := export.ExportPlacementsCSV(opts.panelsCSVOut, result.Placements); err != nil {
			return err
		}
		fmt.Printf("Placements written to %s\n", opts.panelsCSVOut)
	}
	if opts.pdfOut != "" {
		if err := export.ExportPDF(opts.pdfOut, snap, req, result.Placements); err != nil {
			return err
		}
		fmt.Printf("Site report written to %s\n", opts.pdfOut)
	}
	if opts.xlsxOut != "" {
		if err := export.ExportXLSX(opts.xlsxOut, snap, result.Placements); err != nil {
			return err
		}
		fmt.Printf("Workbook written to %s\n", opts.xlsxOut)
	}
	if opts.dxfOut != "" {
		if err := export.ExportDXF(opts.dxfOut, req, result.Placements); err != nil {
			return err
		}
		fmt.Printf("Layout written to %s\n", opts.dxfOut)
	}
	if opts.pngOut != "" {
		img := terrain.RenderSuitability(field.Slope, field.Aspect)
		if img == nil {
			return fmt.Errorf("no valid elevation data to render")
		}
		if err := export.ExportPNG(opts.pngOut, img); err != nil {
			return err
		}
		fmt.Printf("Suitability overlay written to %s\n", opts.pngOut)
	}
	return nil
}
