package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/solsense/internal/engine"
)

// ExportDXF writes the packed layout as a DXF drawing for CAD handoff: the
// land boundary on a LAND layer and each panel outline (physical size, gaps
// excluded) on a PANELS layer. Units are meters, origin at the plot's
// top-left corner with Y increasing south to match the packer's convention.
func ExportDXF(path string, req engine.Request, placements []engine.Placement) error {
	if len(placements) == 0 {
		return fmt.Errorf("no placements to export")
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer("LAND", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("creating LAND layer: %w", err)
	}
	if err := drawRect(d, 0, 0, req.LandWidthM, req.LandHeightM); err != nil {
		return err
	}

	if _, err := d.AddLayer("PANELS", color.Green, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("creating PANELS layer: %w", err)
	}
	for _, p := range placements {
		if err := drawRect(d, p.X, p.Y, req.PanelWidthM, req.PanelHeightM); err != nil {
			return err
		}
	}

	return d.SaveAs(path)
}

// drawRect adds the four edges of an axis-aligned rectangle.
func drawRect(d *drawing.Drawing, x, y, w, h float64) error {
	edges := [][4]float64{
		{x, y, x + w, y},
		{x + w, y, x + w, y + h},
		{x + w, y + h, x, y + h},
		{x, y + h, x, y},
	}
	for _, e := range edges {
		if _, err := d.Line(e[0], e[1], 0, e[2], e[3], 0); err != nil {
			return fmt.Errorf("drawing line: %w", err)
		}
	}
	return nil
}
