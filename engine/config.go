package engine

import (
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"
)

// Config holds every recognized build option. All fields are scalars so
// the whole struct round-trips through YAML unchanged.
type Config struct {
	// MinSpacing and MaxSpacing bound the ideal hachure spacing, in map
	// units. MinSpacing must be positive and <= MaxSpacing.
	MinSpacing float64 `yaml:"min_spacing"`
	MaxSpacing float64 `yaml:"max_spacing"`

	// SlopeMin and SlopeMax bound the slope range hachures are drawn
	// over, in degrees. 0 <= SlopeMin < SlopeMax <= 90.
	SlopeMin float64 `yaml:"slope_min"`
	SlopeMax float64 `yaml:"slope_max"`

	// ContourInterval is the elevation spacing between input bands. If
	// zero, contourInterval derives it from a DEM range as range/100.
	// The pipeline itself does not read it: bands arrive pre-built.
	ContourInterval float64 `yaml:"contour_interval"`

	// StepDistance is the grower's integration step J. If zero, it
	// defaults to 3 * average pixel size of the slope/aspect grids.
	StepDistance float64 `yaml:"step_distance"`

	// GenerateThicknessLayer enables the optional thickness-rendering
	// pass (package thickness) after the spacing loop returns.
	GenerateThicknessLayer bool `yaml:"generate_thickness_layer"`
}

// DefaultConfig returns a Config filled with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		MinSpacing:             2,
		MaxSpacing:             10,
		SlopeMin:               10,
		SlopeMax:               45,
		ContourInterval:        0,
		StepDistance:           0,
		GenerateThicknessLayer: false,
	}
}

// LoadConfig reads and parses a YAML build-settings file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes cfg to path in YAML format.
func (cfg Config) Save(path string) error {
	buf, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, buf, 0o644)
}

// granularityCoarseFactor and granularityFineFactor bound how many
// raster cells should typically separate adjacent hachure crossings.
// Outside this range the slope/aspect raster's resolution cannot
// meaningfully support the configured spacing; these are generous
// bounds rather than a hard cutoff.
const (
	granularityCoarseFactor = 100
	granularityFineFactor   = 1
)

// Validate performs the numbered configuration checks, logging warnings
// through ctx and returning the first fatal error encountered (nil if
// none). maxRasterSlope caps SlopeMax: pass the steepest slope the
// deriver can report, or the observed raster maximum for a stricter
// check. avgPixel is the raster's average cell size, (Cw+Ch)/2, used
// for the spacing-granularity warnings; pass 0 to skip them.
func (cfg Config) Validate(ctx *Context, maxRasterSlope, avgPixel float64) error {
	switch {
	case cfg.MinSpacing <= 0:
		return ErrMinSpacingNonPositve
	case cfg.MaxSpacing <= 0:
		return ErrMaxSpacingNonPositve
	case cfg.MinSpacing > cfg.MaxSpacing:
		return ErrMinSpacingGTMax
	case cfg.SlopeMin < 0:
		return ErrSlopeMinNegative
	case cfg.SlopeMin >= cfg.SlopeMax:
		return ErrSlopeMinGESlopeMax
	case cfg.SlopeMax > maxRasterSlope:
		return ErrSlopeMaxExceedsGrid
	}

	if cfg.SlopeMin == 0 {
		ctx.Warningf("%s", WarnSlopeMinIsZero)
	}

	if avgPixel > 0 {
		if cfg.MaxSpacing > granularityCoarseFactor*avgPixel {
			ctx.Warningf("%s", WarnSpacingCheckCoarse)
		}
		if cfg.MinSpacing < granularityFineFactor*avgPixel {
			ctx.Warningf("%s", WarnSpacingCheckFine)
		}
	}
	return nil
}

// stepDistance returns cfg.StepDistance, defaulting to 3*avgPixel when
// unset.
func (cfg Config) stepDistance(avgPixel float64) float64 {
	if cfg.StepDistance > 0 {
		return cfg.StepDistance
	}
	return 3 * avgPixel
}

// contourInterval returns cfg.ContourInterval, defaulting to
// demRange/100 when unset.
func (cfg Config) contourInterval(demRange float64) float64 {
	if cfg.ContourInterval > 0 {
		return cfg.ContourInterval
	}
	return demRange / 100
}
