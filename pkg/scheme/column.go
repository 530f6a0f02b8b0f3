package scheme

import (
	"github.com/matzehuels/chartstyle/pkg/errors"
	"github.com/matzehuels/chartstyle/pkg/palette"
)

// DefaultWidth is the stroke width used when a column does not set one.
const DefaultWidth = 1.0

// Column describes one data series and its optional style attributes.
type Column struct {
	Key           string        `json:"key" toml:"key"`
	Color         palette.Color `json:"color,omitempty" toml:"color"`                   // overrides palette assignment
	SelectedColor palette.Color `json:"selected_color,omitempty" toml:"selected_color"` // used while selected
	Width         float64       `json:"width,omitempty" toml:"width"`                   // 0 means DefaultWidth
	Dashed        bool          `json:"dashed,omitempty" toml:"dashed"`
}

// StrokeWidth returns the column width, defaulting to [DefaultWidth].
func (c Column) StrokeWidth() float64 {
	if c.Width == 0 {
		return DefaultWidth
	}
	return c.Width
}

// Validate checks the key, width and colors and returns a normalized copy.
func (c Column) Validate() (Column, error) {
	if err := errors.ValidateColumnKey(c.Key); err != nil {
		return c, err
	}
	if err := errors.ValidateWidth("width", c.Width); err != nil {
		return c, errors.Wrap(errors.ErrCodeInvalidColumn, err, "column %q", c.Key)
	}
	var err error
	if c.Color != "" {
		if c.Color, err = palette.ParseColor(string(c.Color)); err != nil {
			return c, errors.Wrap(errors.ErrCodeInvalidColumn, err, "column %q color", c.Key)
		}
	}
	if c.SelectedColor != "" {
		if c.SelectedColor, err = palette.ParseColor(string(c.SelectedColor)); err != nil {
			return c, errors.Wrap(errors.ErrCodeInvalidColumn, err, "column %q selected_color", c.Key)
		}
	}
	return c, nil
}
