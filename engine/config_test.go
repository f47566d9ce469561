package engine

import "testing"

func TestConfigValidate(t *testing.T) {
	validateTests := []struct {
		name    string
		cfg     Config
		wantErr ErrorCode
	}{
		{"ok", Config{MinSpacing: 2, MaxSpacing: 10, SlopeMin: 10, SlopeMax: 45}, 0},
		{"min spacing non-positive", Config{MinSpacing: 0, MaxSpacing: 10, SlopeMin: 10, SlopeMax: 45}, ErrMinSpacingNonPositve},
		{"max spacing non-positive", Config{MinSpacing: 2, MaxSpacing: 0, SlopeMin: 10, SlopeMax: 45}, ErrMaxSpacingNonPositve},
		{"min greater than max", Config{MinSpacing: 20, MaxSpacing: 10, SlopeMin: 10, SlopeMax: 45}, ErrMinSpacingGTMax},
		{"negative slope min", Config{MinSpacing: 2, MaxSpacing: 10, SlopeMin: -1, SlopeMax: 45}, ErrSlopeMinNegative},
		{"slope min >= slope max", Config{MinSpacing: 2, MaxSpacing: 10, SlopeMin: 45, SlopeMax: 45}, ErrSlopeMinGESlopeMax},
		{"slope max exceeds grid", Config{MinSpacing: 2, MaxSpacing: 10, SlopeMin: 10, SlopeMax: 90}, ErrSlopeMaxExceedsGrid},
	}

	for _, tt := range validateTests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewContext(false)
			err := tt.cfg.Validate(ctx, 60, 0)
			if tt.wantErr == 0 {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			code, ok := err.(ErrorCode)
			if !ok || code != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigValidateWarnsOnZeroSlopeMin(t *testing.T) {
	ctx := NewContext(true)
	cfg := Config{MinSpacing: 2, MaxSpacing: 10, SlopeMin: 0, SlopeMax: 45}
	if err := cfg.Validate(ctx, 60, 0); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if ctx.LogCount() != 1 {
		t.Errorf("expected 1 warning logged, got %d", ctx.LogCount())
	}
}

func TestConfigValidateWarnsOnSpacingGranularity(t *testing.T) {
	ctx := NewContext(true)
	// max_spacing of 200 against a 1-unit cell is far coarser than
	// granularityCoarseFactor; min_spacing of 0.5 is finer than the cell
	// size itself.
	cfg := Config{MinSpacing: 0.5, MaxSpacing: 200, SlopeMin: 10, SlopeMax: 45}
	if err := cfg.Validate(ctx, 60, 1); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if ctx.LogCount() != 2 {
		t.Errorf("expected 2 granularity warnings logged, got %d", ctx.LogCount())
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.stepDistance(2); got != 6 {
		t.Errorf("stepDistance(2) = %v, want 6 (3x avgPixel)", got)
	}
	if got := cfg.contourInterval(1000); got != 10 {
		t.Errorf("contourInterval(1000) = %v, want 10 (range/100)", got)
	}

	cfg.StepDistance = 5
	cfg.ContourInterval = 2
	if got := cfg.stepDistance(2); got != 5 {
		t.Errorf("stepDistance() should return the explicit value 5, got %v", got)
	}
	if got := cfg.contourInterval(1000); got != 2 {
		t.Errorf("contourInterval() should return the explicit value 2, got %v", got)
	}
}
