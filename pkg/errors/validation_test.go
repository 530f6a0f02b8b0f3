package errors

import (
	"math"
	"testing"
)

func TestValidateColumnKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "in", false},
		{"with spaces", "bytes out", false},
		{"unicode", "débit", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 300)), true},
		{"newline", "in\nout", true},
		{"null byte", "in\x00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColumnKey(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColumnKey(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidColumn) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidColumn)
			}
		})
	}
}

func TestValidatePaletteName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"brewer", "Paired", false},
		{"custom", "ops-dashboard", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"control", "a\tb", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePaletteName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePaletteName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOpacity(t *testing.T) {
	for _, v := range []float64{0, 0.25, 1} {
		if err := ValidateOpacity("opacity", v); err != nil {
			t.Errorf("ValidateOpacity(%v) = %v, want nil", v, err)
		}
	}
	for _, v := range []float64{-0.1, 1.01, math.NaN()} {
		if err := ValidateOpacity("opacity", v); err == nil {
			t.Errorf("ValidateOpacity(%v) = nil, want error", v)
		}
	}
}

func TestValidateWidth(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"fractional", 1.5, false},
		{"negative", -1, true},
		{"nan", math.NaN(), true},
		{"positive infinity", math.Inf(1), true},
		{"negative infinity", math.Inf(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWidth("width", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateWidth(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateDasharray(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"solid", "", false},
		{"comma", "4,2", false},
		{"spaces", "4 2 1 2", false},
		{"mixed", " 4, 2.5 ", false},
		{"zero gap", "0,0", false},

		{"blank separators", " , ", true},
		{"negative", "4,-2", true},
		{"infinite", "4,Inf", true},
		{"nan", "NaN", true},
		{"units", "4px", true},
		{"markup", `"/><script>alert(1)</script><x a="`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDasharray("strokeDasharray", tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDasharray(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}
