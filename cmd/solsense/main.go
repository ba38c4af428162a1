// SolSense: terrain-aware solar panel siting and yield estimation.
//
// Loads a DEM, derives slope/aspect suitability, packs panels into a land
// plot and estimates energy yield from NASA POWER irradiance data.
//
// Build:
//
//	go build -o solsense ./cmd/solsense
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/piwi3910/solsense/internal/model"
	"github.com/piwi3910/solsense/internal/project"
)

func main() {
	// Optional .env with SOLSENSE_* overrides; absence is fine.
	_ = godotenv.Load()

	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not read config, using defaults: %v\n", err)
		config = model.DefaultAppConfig()
	}
	config = project.ApplyEnv(config)

	rootCmd := &cobra.Command{
		Use:   "solsense",
		Short: "Solar panel siting analysis from elevation rasters",
	}

	rootCmd.AddCommand(slopeCmd())
	rootCmd.AddCommand(packCmd(config))
	rootCmd.AddCommand(estimateCmd(config))
	rootCmd.AddCommand(analyzeCmd(config))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func slopeCmd() *cobra.Command {
	var pngOut string
	cmd := &cobra.Command{
		Use:   "slope [dem.asc]",
		Short: "Compute slope/aspect statistics for a DEM",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSlope(args[0], pngOut)
		},
	}
	cmd.Flags().StringVar(&pngOut, "png", "", "write the suitability overlay to this PNG file")
	return cmd
}

func packCmd(config model.AppConfig) *cobra.Command {
	opts := defaultPackOptions(config)
	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Pack panels into a land plot",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runPack(opts)
		},
	}
	addPackFlags(cmd, &opts)
	cmd.Flags().StringVar(&opts.csvOut, "csv", "", "write placements to this CSV file")
	cmd.Flags().StringVar(&opts.dxfOut, "dxf", "", "write the layout to this DXF file")
	return cmd
}

func estimateCmd(config model.AppConfig) *cobra.Command {
	opts := estimateOptions{
		panelWidthM:       config.DefaultPanelWidthM,
		panelHeightM:      config.DefaultPanelHeightM,
		efficiencyPercent: config.DefaultEfficiencyPercent,
		performanceRatio:  config.DefaultPerformanceRatio,
	}
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate energy production for a panel count",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runEstimate(opts)
		},
	}
	cmd.Flags().IntVar(&opts.numPanels, "panels", 0, "number of panels")
	cmd.Flags().Float64Var(&opts.panelWidthM, "panel-width", opts.panelWidthM, "panel width in meters")
	cmd.Flags().Float64Var(&opts.panelHeightM, "panel-height", opts.panelHeightM, "panel height in meters")
	cmd.Flags().Float64Var(&opts.efficiencyPercent, "efficiency", opts.efficiencyPercent, "panel efficiency in percent")
	cmd.Flags().Float64Var(&opts.performanceRatio, "performance-ratio", opts.performanceRatio, "system performance ratio (0-1]")
	cmd.Flags().Float64Var(&opts.irradiance, "irradiance", 0, "average daily irradiance in kWh/m²/day")
	return cmd
}

func analyzeCmd(config model.AppConfig) *cobra.Command {
	opts := analyzeOptions{
		packOptions:       defaultPackOptions(config),
		efficiencyPercent: config.DefaultEfficiencyPercent,
		performanceRatio:  config.DefaultPerformanceRatio,
		irradiance:        -1,
	}
	cmd := &cobra.Command{
		Use:   "analyze [dem.asc]",
		Short: "Run the full siting analysis at a marker cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runAnalyze(config, args[0], opts)
		},
	}
	cmd.Flags().IntVar(&opts.col, "col", 0, "marker column in the DEM grid")
	cmd.Flags().IntVar(&opts.row, "row", 0, "marker row in the DEM grid")
	addPackFlags(cmd, &opts.packOptions)
	cmd.Flags().Float64Var(&opts.efficiencyPercent, "efficiency", opts.efficiencyPercent, "panel efficiency in percent")
	cmd.Flags().Float64Var(&opts.performanceRatio, "performance-ratio", opts.performanceRatio, "system performance ratio (0-1]")
	cmd.Flags().Float64Var(&opts.irradiance, "irradiance", -1, "daily irradiance override in kWh/m²/day (skips the NASA POWER call)")
	cmd.Flags().BoolVar(&opts.offline, "offline", false, "skip all network calls; requires --irradiance")
	cmd.Flags().StringVar(&opts.csvOut, "csv", "", "write the analysis summary to this CSV file")
	cmd.Flags().StringVar(&opts.panelsCSVOut, "panels-csv", "", "write placements to this CSV file")
	cmd.Flags().StringVar(&opts.pdfOut, "pdf", "", "write the site report to this PDF file")
	cmd.Flags().StringVar(&opts.xlsxOut, "xlsx", "", "write the workbook to this XLSX file")
	cmd.Flags().StringVar(&opts.dxfOut, "dxf", "", "write the layout to this DXF file")
	cmd.Flags().StringVar(&opts.pngOut, "png", "", "write the suitability overlay to this PNG file")
	return cmd
}

func defaultPackOptions(config model.AppConfig) packOptions {
	return packOptions{
		landWidthM:   config.DefaultLandWidthM,
		landHeightM:  config.DefaultLandHeightM,
		panelWidthM:  config.DefaultPanelWidthM,
		panelHeightM: config.DefaultPanelHeightM,
	}
}

func addPackFlags(cmd *cobra.Command, opts *packOptions) {
	cmd.Flags().Float64Var(&opts.landWidthM, "land-width", opts.landWidthM, "land width in meters")
	cmd.Flags().Float64Var(&opts.landHeightM, "land-height", opts.landHeightM, "land height in meters")
	cmd.Flags().Float64Var(&opts.hectares, "hectares", 0, "land area in hectares; overrides width/height with a square plot")
	cmd.Flags().Float64Var(&opts.panelWidthM, "panel-width", opts.panelWidthM, "panel width in meters")
	cmd.Flags().Float64Var(&opts.panelHeightM, "panel-height", opts.panelHeightM, "panel height in meters")
	cmd.Flags().IntVar(&opts.maxPanels, "max-panels", 0, "cap on placed panels (0 = fill the plot)")
}
