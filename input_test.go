package hachure_test

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/arl/go-hachure"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := ioutil.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

const rasterJSON = `{
	"x_min": 0, "y_max": 2, "cell_w": 1, "cell_h": 1, "rows": 2, "cols": 2,
	"slope":  [10, 10, 10, 10],
	"aspect": [90, 90, 90, 90]
}`

const contourGeoJSON = `{
	"type": "FeatureCollection",
	"features": [
		{
			"type": "Feature",
			"properties": {"ELEV_MIN": 0},
			"geometry": {
				"type": "Polygon",
				"coordinates": [[[0,0],[2,0],[2,2],[0,2],[0,0]]]
			}
		}
	]
}`

func TestLoadRasters(t *testing.T) {
	path := writeTempFile(t, "rasters.json", rasterJSON)

	rasters, err := hachure.LoadRasters(path)
	if err != nil {
		t.Fatalf("LoadRasters() error = %v", err)
	}
	if rasters.Slope.Rows != 2 || rasters.Slope.Cols != 2 {
		t.Errorf("got %dx%d slope grid, want 2x2", rasters.Slope.Rows, rasters.Slope.Cols)
	}
	if !rasters.Slope.CoRegistered(rasters.Aspect) {
		t.Error("slope and aspect grids loaded from one raster file should be co-registered")
	}
	if got := rasters.Slope.Sample(orb.Point{0.5, 0.5}); got != 10 {
		t.Errorf("Sample() = %v, want 10", got)
	}
	if got := rasters.Aspect.Sample(orb.Point{0.5, 0.5}); got != 90 {
		t.Errorf("Sample() = %v, want 90", got)
	}
}

func TestLoadBands(t *testing.T) {
	path := writeTempFile(t, "contours.geojson", contourGeoJSON)

	bands, err := hachure.LoadBands(path)
	if err != nil {
		t.Fatalf("LoadBands() error = %v", err)
	}
	if len(bands) != 1 {
		t.Fatalf("got %d bands, want 1", len(bands))
	}
	if bands[0].Elev != 0 {
		t.Errorf("got elev %v, want 0", bands[0].Elev)
	}
	if len(bands[0].Polygon) != 1 || len(bands[0].Polygon[0]) != 5 {
		t.Errorf("got polygon %v, want a single 5-point ring", bands[0].Polygon)
	}
}

func TestLoadBandsStringElevation(t *testing.T) {
	// Attribute tables often carry ELEV_MIN as free text; a parsable
	// string form must load, an unparsable one must error.
	const textElev = `{
	"type": "FeatureCollection",
	"features": [
		{
			"type": "Feature",
			"properties": {"ELEV_MIN": "12.5"},
			"geometry": {
				"type": "Polygon",
				"coordinates": [[[0,0],[2,0],[2,2],[0,2],[0,0]]]
			}
		}
	]
}`
	path := writeTempFile(t, "contours.geojson", textElev)
	bands, err := hachure.LoadBands(path)
	if err != nil {
		t.Fatalf("LoadBands() error = %v", err)
	}
	if len(bands) != 1 || bands[0].Elev != 12.5 {
		t.Errorf("got %v, want one band at elev 12.5", bands)
	}

	bad := writeTempFile(t, "bad.geojson", `{
	"type": "FeatureCollection",
	"features": [
		{
			"type": "Feature",
			"properties": {"ELEV_MIN": "twelve"},
			"geometry": {
				"type": "Polygon",
				"coordinates": [[[0,0],[2,0],[2,2],[0,2],[0,0]]]
			}
		}
	]
}`)
	if _, err := hachure.LoadBands(bad); err == nil {
		t.Error("expected an error for an unparsable ELEV_MIN string")
	}
}

func TestWriteHachuresGeoJSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.geojson")
	hachures := []*hachure.Hachure{
		{Geometry: orb.LineString{{0, 0}, {1, 1}, {2, 2}}, SeedArcLen: 1.5},
	}

	if err := hachure.WriteHachuresGeoJSON(out, hachures); err != nil {
		t.Fatalf("WriteHachuresGeoJSON() error = %v", err)
	}

	buf, err := ioutil.ReadFile(out)
	if err != nil {
		t.Fatalf("reading %s: %v", out, err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(buf)
	if err != nil {
		t.Fatalf("unmarshaling written GeoJSON: %v", err)
	}
	if len(fc.Features) != 1 {
		t.Fatalf("got %d features, want 1", len(fc.Features))
	}
	ls, ok := fc.Features[0].Geometry.(orb.LineString)
	if !ok || len(ls) != 3 {
		t.Errorf("got geometry %v, want a 3-point LineString", fc.Features[0].Geometry)
	}
	if got := fc.Features[0].Properties.MustFloat64("seed_arc_len"); got != 1.5 {
		t.Errorf("seed_arc_len = %v, want 1.5", got)
	}
}
