package export

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/solsense/internal/engine"
	"github.com/piwi3910/solsense/internal/model"
)

// panelColor represents an RGB color for a placed panel.
type panelColor struct {
	R, G, B int
}

// panelColors cycles across placed panels in the layout diagram.
var panelColors = []panelColor{
	{R: 33, G: 150, B: 243}, // blue
	{R: 0, G: 188, B: 212},  // cyan
	{R: 63, G: 81, B: 181},  // indigo
	{R: 3, G: 169, B: 244},  // light blue
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	statsHeight  = 26.0
	drawAreaTop  = marginTop + headerHeight + statsHeight
	qrSize       = 24.0 // QR code size in mm
)

// ExportPDF generates a one-page site report: analysis summary, a scaled
// diagram of the land plot with the packed panels, and a QR code linking to
// the site on OpenStreetMap.
func ExportPDF(path string, snap model.AnalysisSnapshot, req engine.Request, placements []engine.Placement) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Solar Site Report: %s", snap.LocationName)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats block
	lonStr, latStr := model.FormatCoordinates(snap.Longitude, snap.Latitude)
	slope := "NoData"
	if !math.IsNaN(snap.SlopeDegrees) {
		slope = fmt.Sprintf("%.2f° (%s)", snap.SlopeDegrees, snap.AspectDirection)
	}
	lines := []string{
		fmt.Sprintf("Location: %s, %s  |  Analyzed: %s", lonStr, latStr, snap.Timestamp.UTC().Format("2006-01-02 15:04 UTC")),
		fmt.Sprintf("Terrain slope: %s  |  Irradiance: %.2f kWh/m²/day", slope, snap.IrradianceKWhM2),
		fmt.Sprintf("Panels: %d (%.1f m² collector area)  |  Land: %s", snap.NumPanels, snap.Energy.TotalPanelAreaM2, model.FormatArea(snap.LandAreaM2)),
		fmt.Sprintf("Estimated output: %s/day, %s/year", model.FormatEnergy(snap.Energy.DailyEnergyKWh), model.FormatEnergy(snap.Energy.AnnualEnergyKWh)),
	}
	pdf.SetFont("Helvetica", "", 10)
	for i, line := range lines {
		pdf.SetXY(marginLeft, marginTop+headerHeight+float64(i)*6)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, line, "", 0, "L", false, 0, "")
	}

	if err := drawLayout(pdf, req, placements); err != nil {
		return err
	}
	if err := drawSiteQR(pdf, snap.Longitude, snap.Latitude); err != nil {
		return err
	}

	return pdf.OutputFileAndClose(path)
}

// drawLayout renders the land plot and packed panels scaled to the page.
func drawLayout(pdf *fpdf.Fpdf, req engine.Request, placements []engine.Placement) error {
	if req.LandWidthM <= 0 || req.LandHeightM <= 0 {
		return fmt.Errorf("land dimensions must be positive to draw layout")
	}

	drawWidth := pageWidth - marginLeft - marginRight - qrSize - 10
	drawHeight := pageHeight - drawAreaTop - marginBottom

	scale := math.Min(drawWidth/req.LandWidthM, drawHeight/req.LandHeightM)
	canvasW := req.LandWidthM * scale
	canvasH := req.LandHeightM * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Land plot background
	pdf.SetFillColor(200, 230, 201)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Panels, drawn at their physical size inside the gap-inclusive cells
	for i, p := range placements {
		col := panelColors[i%len(panelColors)]
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.2)
		pdf.Rect(offsetX+p.X*scale, offsetY+p.Y*scale, req.PanelWidthM*scale, req.PanelHeightM*scale, "FD")
	}

	// Scale note
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(offsetX, offsetY+canvasH+2)
	note := fmt.Sprintf("%.0f x %.0f m plot, %d panels", req.LandWidthM, req.LandHeightM, len(placements))
	pdf.CellFormat(canvasW, 4, note, "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	return nil
}

// drawSiteQR embeds a QR code pointing at the analyzed location on
// OpenStreetMap.
func drawSiteQR(pdf *fpdf.Fpdf, lon, lat float64) error {
	link := fmt.Sprintf("https://www.openstreetmap.org/?mlat=%.6f&mlon=%.6f#map=15/%.6f/%.6f", lat, lon, lat, lon)
	qrPNG, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("site_qr_%.6f_%.6f", lon, lat)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := pageWidth - marginRight - qrSize
	qrY := drawAreaTop
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(qrX, qrY+qrSize+1)
	pdf.CellFormat(qrSize, 3, "View on OpenStreetMap", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	return nil
}
