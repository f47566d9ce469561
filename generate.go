package hachure

import (
	"github.com/arl/go-hachure/engine"
	"github.com/arl/go-hachure/thickness"
)

// Re-exported so callers need only import this package.
type (
	Config    = engine.Config
	Context   = engine.Context
	Grid      = engine.Grid
	Rasters   = engine.Rasters
	Contour   = engine.Contour
	Hachure   = engine.Hachure
	ErrorCode = engine.ErrorCode
)

// Result wraps the spacing engine's output with the optional thickness
// pass, run only when cfg.GenerateThicknessLayer is set.
type Result struct {
	engine.Result
	Thickness []thickness.SubSegment
}

// NewContext, NewGrid, DefaultConfig, LoadConfig, PrepareContours are
// re-exported the same way.
var (
	NewContext      = engine.NewContext
	NewGrid         = engine.NewGrid
	DefaultConfig   = engine.DefaultConfig
	LoadConfig      = engine.LoadConfig
	PrepareContours = engine.PrepareContours
)

// maxDeriverSlope is the steepest slope, in degrees, a slope deriver
// can report.
const maxDeriverSlope = 90

// Generate runs the full pipeline: validates cfg against the slope
// raster, prepares contours from the supplied bands and optional line
// contours, then runs the spacing engine to completion.
func Generate(ctx *Context, cfg Config, rasters Rasters, bands []engine.FilledBand, lines []engine.LineContour) (Result, error) {
	if rasters.Slope.Rows == 0 || rasters.Slope.Cols == 0 {
		return Result{}, engine.ErrNoRasterInput
	}
	if !rasters.Slope.CoRegistered(rasters.Aspect) {
		ctx.Errorf("%s", engine.ErrRastersNotCoRegistered)
		return Result{}, engine.ErrRastersNotCoRegistered
	}
	// SlopeMax is checked against the steepest slope a deriver can
	// report, not the observed raster maximum: gentle terrain (or a
	// plain below SlopeMin everywhere) is a valid input that should run
	// through to the empty-output warning, not be rejected up front.
	// Hosts wanting the stricter check can call Validate with
	// rasters.Slope.MaxValue() themselves.
	if err := cfg.Validate(ctx, maxDeriverSlope, rasters.Slope.AvgPixel()); err != nil {
		return Result{}, err
	}

	ctx.StartTimer(engine.TimerTotal)
	defer ctx.StopTimer(engine.TimerTotal)

	extent := rasters.Slope.Bound()
	contours := engine.PrepareContours(ctx, bands, lines, extent)
	res := Result{Result: engine.Run(ctx, cfg, rasters, contours)}

	if cfg.GenerateThicknessLayer {
		ctx.StartTimer(engine.TimerThickness)
		// min_spacing gives pieces fine enough for per-stroke width
		// variation without the per-vertex noise of sampling at
		// avg_pixel.
		res.Thickness = thickness.Split(res.Hachures, rasters.Slope, rasters.Slope.AvgPixel(), cfg.MinSpacing)
		ctx.StopTimer(engine.TimerThickness)
	}
	return res, nil
}
