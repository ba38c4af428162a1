// Package raster loads digital elevation models from Esri ASCII grid files
// (.asc), the plain-text DEM interchange format. Nodata cells are substituted
// with NaN so downstream terrain math can propagate them arithmetically.
package raster

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/solsense/internal/model"
)

// Raster is a decoded Esri ASCII grid. Elevations is row-major with row 0 at
// the northern edge, matching the file order; nodata cells hold NaN.
type Raster struct {
	Cols, Rows  int
	XLLCorner   float64 // X of the lower-left corner, grid units
	YLLCorner   float64 // Y of the lower-left corner, grid units
	CellSize    float64
	NoDataValue float64
	HasNoData   bool
	Elevations  [][]float64
}

// Grid adapts the raster to the elevation-grid contract consumed by the
// terrain engine. Square cells are assumed, as the format defines a single
// cellsize.
func (r *Raster) Grid() model.Grid {
	return model.NewGrid(r.Elevations, r.CellSize, r.CellSize)
}

// CellLonLat returns the geographic center of the cell at (col, row) for
// grids georeferenced in degrees. Row 0 is the northern edge.
func (r *Raster) CellLonLat(col, row int) (lon, lat float64) {
	lon = r.XLLCorner + (float64(col)+0.5)*r.CellSize
	lat = r.YLLCorner + (float64(r.Rows-row)-0.5)*r.CellSize
	return lon, lat
}

// InBounds reports whether (col, row) addresses a cell of the grid.
func (r *Raster) InBounds(col, row int) bool {
	return col >= 0 && col < r.Cols && row >= 0 && row < r.Rows
}

// Load reads and parses an Esri ASCII grid file.
func Load(path string) (*Raster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening raster: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes an Esri ASCII grid. The header accepts the usual keywords
// (ncols, nrows, xllcorner/xllcenter, yllcorner/yllcenter, cellsize,
// nodata_value) in any case; the body must supply exactly nrows x ncols
// values, north row first.
func Parse(rd io.Reader) (*Raster, error) {
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	r := &Raster{Cols: -1, Rows: -1, CellSize: -1}
	xCenter, yCenter := false, false
	haveX, haveY := false, false

	// Header: keyword/value pairs until the first bare number.
	var pending string
	for sc.Scan() {
		tok := sc.Text()
		if !isHeaderKeyword(tok) {
			pending = tok
			break
		}
		key := strings.ToLower(tok)
		if !sc.Scan() {
			return nil, fmt.Errorf("esri grid: header %q has no value", tok)
		}
		val, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("esri grid: header %q: invalid value %q", tok, sc.Text())
		}
		switch key {
		case "ncols":
			r.Cols = int(val)
		case "nrows":
			r.Rows = int(val)
		case "xllcorner", "xllcenter":
			r.XLLCorner = val
			xCenter = key == "xllcenter"
			haveX = true
		case "yllcorner", "yllcenter":
			r.YLLCorner = val
			yCenter = key == "yllcenter"
			haveY = true
		case "cellsize":
			r.CellSize = val
		case "nodata_value":
			r.NoDataValue = val
			r.HasNoData = true
		default:
			return nil, fmt.Errorf("esri grid: unknown header keyword %q", tok)
		}
	}

	if r.Cols <= 0 || r.Rows <= 0 {
		return nil, fmt.Errorf("esri grid: missing or non-positive ncols/nrows")
	}
	if r.CellSize <= 0 {
		return nil, fmt.Errorf("esri grid: missing or non-positive cellsize")
	}
	if !haveX || !haveY {
		return nil, fmt.Errorf("esri grid: missing xllcorner/yllcorner")
	}
	// Normalize center-referenced origins to the corner convention.
	if xCenter {
		r.XLLCorner -= r.CellSize / 2
	}
	if yCenter {
		r.YLLCorner -= r.CellSize / 2
	}

	r.Elevations = make([][]float64, r.Rows)
	for i := range r.Elevations {
		r.Elevations[i] = make([]float64, r.Cols)
	}

	read := 0
	total := r.Rows * r.Cols
	store := func(tok string) error {
		if read >= total {
			return fmt.Errorf("esri grid: more than %d data values", total)
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return fmt.Errorf("esri grid: invalid data value %q", tok)
		}
		if r.HasNoData && v == r.NoDataValue {
			v = math.NaN()
		}
		r.Elevations[read/r.Cols][read%r.Cols] = v
		read++
		return nil
	}

	if pending != "" {
		if err := store(pending); err != nil {
			return nil, err
		}
	}
	for sc.Scan() {
		if err := store(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("esri grid: %w", err)
	}
	if read != total {
		return nil, fmt.Errorf("esri grid: expected %d data values, got %d", total, read)
	}

	return r, nil
}

// isHeaderKeyword reports whether a token starts a header entry rather than
// the data block. Data values always begin with a digit, sign or dot.
func isHeaderKeyword(tok string) bool {
	if tok == "" {
		return false
	}
	c := tok[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}
