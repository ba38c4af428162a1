// Package engine implements the deterministic shelf packer that lays
// rectangular panel footprints into a land plot.
package engine

import (
	"github.com/piwi3910/solsense/internal/model"
)

// Spacing added around every panel before placement. The horizontal gap is
// the physical clearance between frames; the row gap leaves service and
// shading clearance between shelves. Both are fixed properties of the layout
// model, not caller inputs.
const (
	HorizontalGapM = 0.02
	RowGapM        = 1.5
)

// DefaultMaxIterations bounds the placement loop. It is a defense against an
// unexpected non-terminating configuration, not a limit any realistic plot
// reaches.
const DefaultMaxIterations = 1_000_000

// Request describes one packing problem: a rectangular land plot and the
// panel footprint to tile into it. MaxPanels of 0 means fill as many as fit.
type Request struct {
	LandWidthM   float64 `json:"land_width_m"`
	LandHeightM  float64 `json:"land_height_m"`
	PanelWidthM  float64 `json:"panel_width_m"`
	PanelHeightM float64 `json:"panel_height_m"`
	MaxPanels    int     `json:"max_panels,omitempty"`
}

// Placement is one packed rectangle in meters from the plot's top-left
// corner. W and H are the effective gap-inclusive footprint, so consecutive
// placements tile exactly.
type Placement struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Result holds the placements in insertion order plus loop accounting.
// HitIterationBound signals the defensive bound fired; the placements
// recorded up to that point are still valid.
type Result struct {
	Placements        []Placement `json:"placements"`
	Iterations        int         `json:"iterations"`
	HitIterationBound bool        `json:"hit_iteration_bound,omitempty"`
}

// Packer runs the next-fit shelf algorithm. It keeps no state between calls;
// identical requests always produce identical, identically-ordered results.
type Packer struct {
	MaxIterations int
}

func New() *Packer {
	return &Packer{MaxIterations: DefaultMaxIterations}
}

// Pack places gap-padded panel footprints left to right along shelves,
// opening a new shelf when a row fills and stopping when the plot runs out
// of vertical space or MaxPanels is reached. Degenerate requests (a footprint
// with a non-positive side, or one larger than the plot) yield an empty
// result. A cost record is returned alongside the result.
func (p *Packer) Pack(req Request) (Result, model.Diagnostics) {
	var res Result
	diag := model.Measure(func() {
		res = p.pack(req)
	})
	return res, diag
}

func (p *Packer) pack(req Request) Result {
	effW := req.PanelWidthM + HorizontalGapM
	effH := req.PanelHeightM + RowGapM

	var res Result
	if effW <= 0 || effH <= 0 {
		return res
	}
	if effW > req.LandWidthM || effH > req.LandHeightM {
		return res
	}

	maxIter := p.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}

	currentX := 0.0
	shelfBottomY := 0.0

	place := func() {
		res.Placements = append(res.Placements, Placement{
			X: currentX,
			Y: shelfBottomY,
			W: effW,
			H: effH,
		})
		currentX += effW
	}

	iter := 0
	for iter < maxIter {
		iter++

		if req.MaxPanels > 0 && len(res.Placements) >= req.MaxPanels {
			break
		}

		if shelfBottomY+effH > req.LandHeightM {
			break // no more vertical space
		}

		if currentX+effW <= req.LandWidthM {
			place()
			continue
		}

		// Current shelf is full; start the next one.
		currentX = 0
		shelfBottomY += effH
		if shelfBottomY+effH <= req.LandHeightM && currentX+effW <= req.LandWidthM {
			place()
			continue
		}
		break // nothing fits on the new shelf
	}

	res.Iterations = iter
	res.HitIterationBound = iter >= maxIter
	return res
}

// EfficiencyReport summarizes how much of the plot the raw panel area covers.
type EfficiencyReport struct {
	NumPanels         int     `json:"num_panels"`
	TotalLandAreaM2   float64 `json:"total_land_area_m2"`
	TotalPanelAreaM2  float64 `json:"total_panel_area_m2"`
	EfficiencyPercent float64 `json:"efficiency_percent"`
}

// CalculateEfficiency computes coverage using the physical panel dimensions,
// not the gap-inclusive footprints recorded in the placements.
func CalculateEfficiency(placements []Placement, landWidthM, landHeightM, panelWidthM, panelHeightM float64) EfficiencyReport {
	landArea := landWidthM * landHeightM
	panelArea := float64(len(placements)) * panelWidthM * panelHeightM

	var efficiency float64
	if landArea > 0 {
		efficiency = panelArea / landArea * 100
	}

	return EfficiencyReport{
		NumPanels:         len(placements),
		TotalLandAreaM2:   landArea,
		TotalPanelAreaM2:  panelArea,
		EfficiencyPercent: efficiency,
	}
}
