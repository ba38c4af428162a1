package model

import (
	"math"
	"testing"
)

func TestHectaresToPlotSquare(t *testing.T) {
	w, h := HectaresToPlot(0.5)
	if w != h {
		t.Errorf("expected a square plot, got %.3f x %.3f", w, h)
	}
	// 0.5 ha = 5000 m², side ≈ 70.711 m
	if math.Abs(w-math.Sqrt(5000)) > 1e-9 {
		t.Errorf("expected side %.3f, got %.3f", math.Sqrt(5000), w)
	}
	if math.Abs(LandAreaM2(w, h)-5000) > 1e-6 {
		t.Errorf("round-trip area should be 5000 m², got %.3f", LandAreaM2(w, h))
	}
}

func TestFormatArea(t *testing.T) {
	cases := []struct {
		areaM2 float64
		want   string
	}{
		{500, "500 m²"},
		{9999, "9999 m²"},
		{10000, "1.00 ha (10000 m²)"},
		{25000, "2.50 ha (25000 m²)"},
	}
	for _, c := range cases {
		if got := FormatArea(c.areaM2); got != c.want {
			t.Errorf("FormatArea(%.0f) = %q, want %q", c.areaM2, got, c.want)
		}
	}
}

func TestFormatEnergy(t *testing.T) {
	cases := []struct {
		kwh  float64
		want string
	}{
		{500, "500 kWh"},
		{999, "999 kWh"},
		{1000, "1.0 MWh"},
		{1500000, "1500.0 MWh"},
	}
	for _, c := range cases {
		if got := FormatEnergy(c.kwh); got != c.want {
			t.Errorf("FormatEnergy(%.0f) = %q, want %q", c.kwh, got, c.want)
		}
	}
}

func TestFormatCoordinates(t *testing.T) {
	lon, lat := FormatCoordinates(-122.41942, 37.77493)
	if lon != "-122.4194°" {
		t.Errorf("unexpected longitude format %q", lon)
	}
	if lat != "37.7749°" {
		t.Errorf("unexpected latitude format %q", lat)
	}
}
