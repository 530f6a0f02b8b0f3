package errors

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// maxKeyLength bounds column keys and palette names.
const maxKeyLength = 256

// ValidateColumnKey validates a column key.
//
// Keys identify columns across the allocator, static style tables and the
// interaction context, so they must be non-empty (the empty string means
// "unset" in an interaction context) and free of control characters.
func ValidateColumnKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidColumn, "column key cannot be empty")
	}
	if len(key) > maxKeyLength {
		return New(ErrCodeInvalidColumn, "column key too long (max %d characters)", maxKeyLength)
	}
	for _, r := range key {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidColumn, "column key %q contains control characters", key)
		}
	}
	return nil
}

// ValidatePaletteName validates a palette name for registration.
func ValidatePaletteName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidPalette, "palette name cannot be empty")
	}
	if len(name) > maxKeyLength {
		return New(ErrCodeInvalidPalette, "palette name too long (max %d characters)", maxKeyLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPalette, "palette name %q contains control characters", name)
		}
	}
	return nil
}

// ValidateOpacity checks that v is a valid opacity in [0, 1].
func ValidateOpacity(field string, v float64) error {
	if v < 0 || v > 1 || v != v {
		return New(ErrCodeInvalidInput, "%s must be within [0, 1], got %v", field, v)
	}
	return nil
}

// ValidateWidth checks that a stroke width or radius is finite and not negative.
func ValidateWidth(field string, v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite non-negative number, got %v", field, v)
	}
	return nil
}

// ValidateDasharray checks a stroke dash pattern: finite non-negative
// lengths separated by commas or whitespace. The empty pattern draws a
// solid stroke.
func ValidateDasharray(field, s string) error {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
	if len(parts) == 0 && strings.TrimSpace(s) != "" {
		return New(ErrCodeInvalidInput, "%s %q contains no lengths", field, s)
	}
	for _, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return New(ErrCodeInvalidInput, "%s %q: %q is not a non-negative length", field, s, p)
		}
	}
	return nil
}
