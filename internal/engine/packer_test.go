package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackSingleShelf(t *testing.T) {
	// Effective footprint 1.69 x 4.0: five fit across the 10 m width, and
	// the second shelf at y=4 has no room in a 5 m deep plot.
	res, _ := New().Pack(Request{
		LandWidthM:   10,
		LandHeightM:  5,
		PanelWidthM:  1.67,
		PanelHeightM: 2.5,
	})

	require.Len(t, res.Placements, 5)
	for i, p := range res.Placements {
		assert.InDelta(t, float64(i)*1.69, p.X, 1e-9, "panel %d x", i)
		assert.Equal(t, 0.0, p.Y, "panel %d should stay on the first shelf", i)
		assert.InDelta(t, 1.69, p.W, 1e-9)
		assert.InDelta(t, 4.0, p.H, 1e-9)
	}
	assert.False(t, res.HitIterationBound)
}

func TestPackMultipleShelves(t *testing.T) {
	res, _ := New().Pack(Request{
		LandWidthM:   10,
		LandHeightM:  12,
		PanelWidthM:  1.67,
		PanelHeightM: 2.5,
	})

	require.Len(t, res.Placements, 15)

	shelfYs := map[float64]int{}
	for _, p := range res.Placements {
		shelfYs[p.Y]++
	}
	assert.Equal(t, map[float64]int{0: 5, 4: 5, 8: 5}, shelfYs)
}

func TestPackMaxPanelsIsPrefixOfUnbounded(t *testing.T) {
	req := Request{
		LandWidthM:   10,
		LandHeightM:  12,
		PanelWidthM:  1.67,
		PanelHeightM: 2.5,
	}

	full, _ := New().Pack(req)

	req.MaxPanels = 3
	capped, _ := New().Pack(req)

	require.Len(t, capped.Placements, 3)
	assert.Equal(t, full.Placements[:3], capped.Placements)
}

func TestPackMaxPanelsZeroMeansUnbounded(t *testing.T) {
	req := Request{LandWidthM: 10, LandHeightM: 5, PanelWidthM: 1.67, PanelHeightM: 2.5}
	res, _ := New().Pack(req)
	assert.Len(t, res.Placements, 5)
}

func TestPackDegenerateRequests(t *testing.T) {
	cases := []struct {
		name string
		req  Request
	}{
		{"panel wider than plot", Request{LandWidthM: 1, LandHeightM: 100, PanelWidthM: 2, PanelHeightM: 1}},
		{"footprint taller than plot", Request{LandWidthM: 100, LandHeightM: 2, PanelWidthM: 1, PanelHeightM: 1}},
		{"zero-width panel", Request{LandWidthM: 100, LandHeightM: 100, PanelWidthM: -HorizontalGapM, PanelHeightM: 1}},
		{"empty plot", Request{PanelWidthM: 1, PanelHeightM: 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, _ := New().Pack(c.req)
			assert.Empty(t, res.Placements)
			assert.False(t, res.HitIterationBound)
		})
	}
}

func TestPackDeterministic(t *testing.T) {
	req := Request{LandWidthM: 37.3, LandHeightM: 21.9, PanelWidthM: 1.65, PanelHeightM: 1.0}
	first, _ := New().Pack(req)
	second, _ := New().Pack(req)
	assert.Equal(t, first, second)
}

func TestPackIterationBound(t *testing.T) {
	p := &Packer{MaxIterations: 3}
	res, _ := p.Pack(Request{LandWidthM: 100, LandHeightM: 100, PanelWidthM: 1.65, PanelHeightM: 1.0})

	assert.True(t, res.HitIterationBound)
	assert.Equal(t, 3, res.Iterations)
	assert.Len(t, res.Placements, 3, "placements before the bound fired are kept")
}

func TestPackNoOverlapWithinPlot(t *testing.T) {
	res, _ := New().Pack(Request{LandWidthM: 23.7, LandHeightM: 14.2, PanelWidthM: 1.65, PanelHeightM: 1.0})
	require.NotEmpty(t, res.Placements)

	for i, a := range res.Placements {
		assert.LessOrEqual(t, a.X+a.W, 23.7+1e-9, "panel %d exceeds plot width", i)
		assert.LessOrEqual(t, a.Y+a.H, 14.2+1e-9, "panel %d exceeds plot depth", i)
		for j, b := range res.Placements[i+1:] {
			overlapX := a.X < b.X+b.W && b.X < a.X+a.W
			overlapY := a.Y < b.Y+b.H && b.Y < a.Y+a.H
			assert.False(t, overlapX && overlapY, "panels %d and %d overlap", i, i+1+j)
		}
	}
}

func TestCalculateEfficiency(t *testing.T) {
	placements := make([]Placement, 10)
	rep := CalculateEfficiency(placements, 100, 50, 1.65, 1.0)

	assert.Equal(t, 10, rep.NumPanels)
	assert.Equal(t, 5000.0, rep.TotalLandAreaM2)
	assert.InDelta(t, 16.5, rep.TotalPanelAreaM2, 1e-9)
	assert.InDelta(t, 0.33, rep.EfficiencyPercent, 1e-9)
}

func TestCalculateEfficiencyEmpty(t *testing.T) {
	rep := CalculateEfficiency(nil, 0, 0, 1.65, 1.0)
	assert.Equal(t, 0, rep.NumPanels)
	assert.Equal(t, 0.0, rep.EfficiencyPercent)
}
