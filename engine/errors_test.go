package engine

import "testing"

func TestErrorCodeIsWarning(t *testing.T) {
	warningTests := []struct {
		code ErrorCode
		want bool
	}{
		{ErrNoRasterInput, false},
		{ErrMaxSpacingNonPositve, false},
		{ErrRastersNotCoRegistered, false},
		{WarnSlopeMinIsZero, true},
		{WarnNoHachuresProduced, true},
	}
	for _, tt := range warningTests {
		if got := tt.code.IsWarning(); got != tt.want {
			t.Errorf("%d.IsWarning() = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestErrorCodeError(t *testing.T) {
	if got := ErrSlopeMinGESlopeMax.Error(); got == "" {
		t.Error("Error() should not be empty")
	}
}
