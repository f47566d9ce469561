package engine

import "fmt"

// ErrorCode is a numbered configuration error or warning, surfaced to
// the host by number.
type ErrorCode int

// Configuration errors are rejected before any work starts. Configuration
// warnings are logged through a Context and do not stop the build.
// ErrNoHachuresProduced is a terminal warning: the run completed but
// produced an empty result.
const (
	ErrNoRasterInput          ErrorCode = 1
	ErrSlopeMinNegative       ErrorCode = 2
	ErrSlopeMinGESlopeMax     ErrorCode = 3
	ErrSlopeMaxExceedsGrid    ErrorCode = 4
	ErrMinSpacingGTMax        ErrorCode = 5
	ErrMinSpacingNonPositve   ErrorCode = 6
	ErrMaxSpacingNonPositve   ErrorCode = 7
	WarnSlopeMinIsZero        ErrorCode = 8
	WarnSpacingCheckCoarse    ErrorCode = 9
	WarnSpacingCheckFine      ErrorCode = 10
	WarnNoHachuresProduced    ErrorCode = 11
	ErrRastersNotCoRegistered ErrorCode = 12
)

var errorText = map[ErrorCode]string{
	ErrNoRasterInput:          "no raster input",
	ErrSlopeMinNegative:       "slope_min < 0",
	ErrSlopeMinGESlopeMax:     "slope_min >= slope_max",
	ErrSlopeMaxExceedsGrid:    "slope_max exceeds maximum raster slope",
	ErrMinSpacingGTMax:        "min_spacing > max_spacing",
	ErrMinSpacingNonPositve:   "min_spacing <= 0",
	ErrMaxSpacingNonPositve:   "max_spacing <= 0",
	WarnSlopeMinIsZero:        "slope_min == 0",
	WarnSpacingCheckCoarse:    "spacing-check granularity is coarse relative to cell size",
	WarnSpacingCheckFine:      "spacing-check granularity is finer than cell size",
	WarnNoHachuresProduced:    "no hachures produced",
	ErrRastersNotCoRegistered: "slope and aspect rasters are not co-registered",
}

// Error implements the error interface.
func (c ErrorCode) Error() string {
	if text, ok := errorText[c]; ok {
		return fmt.Sprintf("hachure: [%d] %s", int(c), text)
	}
	return fmt.Sprintf("hachure: unspecified condition %d", int(c))
}

var warningCodes = map[ErrorCode]bool{
	WarnSlopeMinIsZero:     true,
	WarnSpacingCheckCoarse: true,
	WarnSpacingCheckFine:   true,
	WarnNoHachuresProduced: true,
}

// IsWarning reports whether c is a configuration warning or the
// end-of-run empty-output warning, as opposed to a fatal configuration
// error.
func (c ErrorCode) IsWarning() bool {
	return warningCodes[c]
}
