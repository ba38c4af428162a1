package model

import (
	"testing"
	"time"
)

func TestNewAnalysisSnapshot(t *testing.T) {
	snap := NewAnalysisSnapshot()

	if len(snap.ID) != 8 {
		t.Errorf("ID = %q, want 8 characters", snap.ID)
	}
	if snap.LocationName != "Not Set" {
		t.Errorf("LocationName = %q, want \"Not Set\"", snap.LocationName)
	}
	if time.Since(snap.Timestamp) > time.Minute || snap.Timestamp.Location() != time.UTC {
		t.Errorf("Timestamp = %v, want a recent UTC time", snap.Timestamp)
	}

	other := NewAnalysisSnapshot()
	if other.ID == snap.ID {
		t.Error("consecutive snapshots should get distinct IDs")
	}
}

func TestGridDims(t *testing.T) {
	g := NewGrid([][]float64{{1, 2, 3}, {4, 5, 6}}, 30, 30)
	if g.Rows() != 2 || g.Cols() != 3 {
		t.Errorf("dims = %dx%d, want 2x3", g.Rows(), g.Cols())
	}

	empty := NewGrid(nil, 30, 30)
	if empty.Rows() != 0 || empty.Cols() != 0 {
		t.Errorf("empty grid dims = %dx%d, want 0x0", empty.Rows(), empty.Cols())
	}
}

func TestMeasure(t *testing.T) {
	var ran bool
	diag := Measure(func() {
		ran = true
		time.Sleep(5 * time.Millisecond)
	})

	if !ran {
		t.Fatal("measured function did not run")
	}
	if diag.Elapsed < 5*time.Millisecond {
		t.Errorf("Elapsed = %v, want at least 5ms", diag.Elapsed)
	}
}
