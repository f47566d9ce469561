package hachure

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/arl/go-hachure/engine"
)

// rasterFile is the on-disk shape of a slope/aspect raster pair,
// mirroring engine.Grid's fields directly: the two rasters share one
// header since they must be co-registered anyway.
type rasterFile struct {
	XMin   float64   `json:"x_min"`
	YMax   float64   `json:"y_max"`
	CellW  float64   `json:"cell_w"`
	CellH  float64   `json:"cell_h"`
	Rows   int       `json:"rows"`
	Cols   int       `json:"cols"`
	Slope  []float64 `json:"slope"`
	Aspect []float64 `json:"aspect"`
}

// LoadRasters reads a slope/aspect raster pair from a JSON file.
// Deriving slope and aspect from a DEM is the caller's business; this
// only loads the already-derived grids.
func LoadRasters(path string) (Rasters, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return Rasters{}, err
	}
	var rf rasterFile
	if err := json.Unmarshal(buf, &rf); err != nil {
		return Rasters{}, fmt.Errorf("hachure: decoding raster file %s: %w", path, err)
	}
	if n := rf.Rows * rf.Cols; len(rf.Slope) != n || len(rf.Aspect) != n {
		return Rasters{}, fmt.Errorf("hachure: raster file %s: got %d slope and %d aspect values, want %d (%dx%d)",
			path, len(rf.Slope), len(rf.Aspect), n, rf.Rows, rf.Cols)
	}
	slope := engine.NewGrid(rf.XMin, rf.YMax, rf.CellW, rf.CellH, rf.Rows, rf.Cols, rf.Slope)
	aspect := engine.NewGrid(rf.XMin, rf.YMax, rf.CellW, rf.CellH, rf.Rows, rf.Cols, rf.Aspect)
	return Rasters{Slope: slope, Aspect: aspect}, nil
}

// elevMinProperty is the attribute conventionally carried by filled
// contour polygons for the lower bound of each fill band.
const elevMinProperty = "ELEV_MIN"

// LoadBands reads filled contour polygons from a GeoJSON
// FeatureCollection, one Polygon feature per band, each carrying its
// lower elevation bound in the ELEV_MIN property.
func LoadBands(path string) ([]engine.FilledBand, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(buf)
	if err != nil {
		return nil, fmt.Errorf("hachure: decoding contour file %s: %w", path, err)
	}

	bands := make([]engine.FilledBand, 0, len(fc.Features))
	for i, f := range fc.Features {
		poly, ok := f.Geometry.(orb.Polygon)
		if !ok {
			return nil, fmt.Errorf("hachure: contour file %s: feature geometry is %T, want Polygon", path, f.Geometry)
		}
		elev, err := bandElevation(f.Properties)
		if err != nil {
			return nil, fmt.Errorf("hachure: contour file %s: feature %d: %w", path, i, err)
		}
		bands = append(bands, engine.FilledBand{Elev: elev, Polygon: poly})
	}
	return bands, nil
}

// bandElevation pulls the ELEV_MIN attribute out of a feature's
// properties. Attribute tables frequently carry numbers as free text,
// so a string form is parsed rather than rejected.
func bandElevation(props geojson.Properties) (float64, error) {
	v, ok := props[elevMinProperty]
	if !ok {
		return 0, fmt.Errorf("feature has no %s property", elevMinProperty)
	}
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case string:
		elev, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, fmt.Errorf("unparsable %s value %q", elevMinProperty, t)
		}
		return elev, nil
	default:
		return 0, fmt.Errorf("unsupported %s value of type %T", elevMinProperty, v)
	}
}

// WriteHachuresGeoJSON marshals hachures to a GeoJSON FeatureCollection
// of LineString features, written to path, the CLI's generate output
// format.
func WriteHachuresGeoJSON(path string, hachures []*Hachure) error {
	fc := geojson.NewFeatureCollection()
	for _, h := range hachures {
		feat := geojson.NewFeature(h.Geometry)
		feat.Properties = geojson.Properties{
			"seed_arc_len": h.SeedArcLen,
			"length":       h.Length(),
		}
		fc.Append(feat)
	}
	buf, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("hachure: encoding hachures: %w", err)
	}
	return ioutil.WriteFile(path, buf, 0o644)
}
