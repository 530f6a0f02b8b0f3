package style

import (
	"github.com/matzehuels/chartstyle/pkg/errors"
	"github.com/matzehuels/chartstyle/pkg/palette"
	"github.com/matzehuels/chartstyle/pkg/scheme"
)

// DashPattern is the stroke-dasharray of dashed columns.
const DashPattern = "4,2"

// Opacities per encoding and state.
const (
	lineOpacity      = 1.0
	lineMutedOpacity = 0.4

	areaOpacity      = 0.75
	areaMutedOpacity = 0.25

	barOpacity     = 0.8
	scatterOpacity = 1.0

	// Bars and scatter dots share their non-normal opacities.
	markActiveOpacity = 1.0
	markMutedOpacity  = 0.5

	textOpacity      = 1.0
	textMutedOpacity = 0.4
)

// Theme defaults.
const (
	DefaultLighten       = 0.25
	DefaultMutedColor    = palette.Color("#bdbdbd")
	DefaultTextColor     = palette.Color("#333333")
	DefaultScatterRadius = 3.0
)

// Builder turns an allocated color, the column attributes and a resolved
// state into a property bundle.
type Builder[T any] func(c palette.Color, col scheme.Column, s State) T

// Theme parameterizes the generated styles.
type Theme struct {
	// Lighten is the blend-toward-white ratio applied to highlighted strokes
	// and fills, in [0, 1].
	Lighten float64 `json:"lighten" toml:"lighten"`

	// MutedColor replaces bar and scatter fills while another column is
	// selected.
	MutedColor palette.Color `json:"muted_color" toml:"muted_color"`

	// TextColor is the legend label and value color.
	TextColor palette.Color `json:"text_color" toml:"text_color"`

	// ScatterRadius is the dot radius of scatter series and legend dots.
	ScatterRadius float64 `json:"scatter_radius" toml:"scatter_radius"`
}

// DefaultTheme returns the stock theme.
func DefaultTheme() Theme {
	return Theme{
		Lighten:       DefaultLighten,
		MutedColor:    DefaultMutedColor,
		TextColor:     DefaultTextColor,
		ScatterRadius: DefaultScatterRadius,
	}
}

// WithDefaults fills zero fields from [DefaultTheme]. A zero Lighten is
// kept: it disables the highlight transform.
func (t Theme) WithDefaults() Theme {
	d := DefaultTheme()
	if t.MutedColor == "" {
		t.MutedColor = d.MutedColor
	}
	if t.TextColor == "" {
		t.TextColor = d.TextColor
	}
	if t.ScatterRadius == 0 {
		t.ScatterRadius = d.ScatterRadius
	}
	return t
}

// Validate checks ranges and colors and returns a normalized copy.
func (t Theme) Validate() (Theme, error) {
	if t.Lighten < 0 || t.Lighten > 1 {
		return t, errors.New(errors.ErrCodeInvalidConfig, "theme lighten must be within [0, 1], got %v", t.Lighten)
	}
	if err := errors.ValidateWidth("scatter_radius", t.ScatterRadius); err != nil {
		return t, errors.Wrap(errors.ErrCodeInvalidConfig, err, "theme")
	}
	var err error
	if t.MutedColor, err = palette.ParseColor(string(t.MutedColor)); err != nil {
		return t, errors.Wrap(errors.ErrCodeInvalidConfig, err, "theme muted_color")
	}
	if t.TextColor, err = palette.ParseColor(string(t.TextColor)); err != nil {
		return t, errors.Wrap(errors.ErrCodeInvalidConfig, err, "theme text_color")
	}
	return t, nil
}

// activeColor is the color of a column in state s before encoding-specific
// adjustments: brightened while highlighted, the column's selected color
// while selected.
func (t Theme) activeColor(c palette.Color, col scheme.Column, s State) palette.Color {
	switch s {
	case Highlighted:
		return palette.Lighten(c, t.Lighten)
	case Selected:
		if col.SelectedColor != "" {
			return col.SelectedColor
		}
	}
	return c
}

// Line builds a line series style. Highlighted lines keep their width and
// get a brightened stroke; muted lines fade.
func (t Theme) Line(c palette.Color, col scheme.Column, s State) LineStyle {
	ls := LineStyle{
		Stroke:      t.activeColor(c, col, s),
		Fill:        FillNone,
		StrokeWidth: col.StrokeWidth(),
		Opacity:     lineOpacity,
	}
	if col.Dashed {
		ls.StrokeDasharray = DashPattern
	}
	if s == Muted {
		ls.Opacity = lineMutedOpacity
	}
	return ls
}

// Area builds the outline and fill of an area series.
func (t Theme) Area(c palette.Color, col scheme.Column, s State) AreaStyle {
	fill := FillStyle{Fill: t.activeColor(c, col, s), Opacity: areaOpacity}
	if s == Muted {
		fill.Opacity = areaMutedOpacity
	}
	return AreaStyle{Line: t.Line(c, col, s), Area: fill}
}

// Bar builds a bar style. Muted bars turn neutral grey unless the column
// has its own selected color, in which case they keep their palette color.
func (t Theme) Bar(c palette.Color, col scheme.Column, s State) BarStyle {
	fill, opacity := t.mark(c, col, s)
	if s == Normal {
		opacity = barOpacity
	}
	return BarStyle{Fill: fill, Opacity: opacity}
}

// Scatter builds a scatter dot style, following the bar rules with a fully
// opaque baseline.
func (t Theme) Scatter(c palette.Color, col scheme.Column, s State) ScatterStyle {
	fill, opacity := t.mark(c, col, s)
	if s == Normal {
		opacity = scatterOpacity
	}
	return ScatterStyle{Fill: fill, Opacity: opacity, Radius: t.radius()}
}

// mark implements the fill rules shared by bars and scatter dots for every
// state but Normal.
func (t Theme) mark(c palette.Color, col scheme.Column, s State) (palette.Color, float64) {
	switch s {
	case Muted:
		if col.SelectedColor != "" {
			return c, markMutedOpacity
		}
		return t.mutedColor(), markMutedOpacity
	case Highlighted, Selected:
		return t.activeColor(c, col, s), markActiveOpacity
	}
	return c, 0
}

// Legend returns a builder for legend entries annotating enc. The symbol
// is derived from the chart builder of the same encoding.
func (t Theme) Legend(enc Encoding) Builder[LegendStyle] {
	return func(c palette.Color, col scheme.Column, s State) LegendStyle {
		return LegendStyle{
			Symbol: t.Symbol(enc, c, col, s),
			Label:  t.text(c, col, s),
			Value:  t.text(c, col, s),
		}
	}
}

// Symbol builds the legend glyph for enc.
func (t Theme) Symbol(enc Encoding, c palette.Color, col scheme.Column, s State) SymbolStyle {
	switch enc {
	case EncodingLine:
		return t.Line(c, col, s).Symbol()
	case EncodingArea:
		return t.Area(c, col, s).Symbol()
	case EncodingScatter:
		return t.Scatter(c, col, s).Symbol()
	default:
		return t.Bar(c, col, s).Symbol()
	}
}

// text styles legend labels and values: only color and opacity vary.
func (t Theme) text(c palette.Color, col scheme.Column, s State) TextStyle {
	ts := TextStyle{Color: t.textColor(), Opacity: textOpacity}
	switch s {
	case Selected:
		ts.Color = t.activeColor(c, col, s)
	case Muted:
		ts.Opacity = textMutedOpacity
	}
	return ts
}

// AxisLabel exposes the column color for axis decoration. It does not vary
// with state.
func (t Theme) AxisLabel(c palette.Color, _ scheme.Column, _ State) AxisLabelStyle {
	return AxisLabelStyle{LabelColor: c}
}

func (t Theme) mutedColor() palette.Color {
	if t.MutedColor == "" {
		return DefaultMutedColor
	}
	return t.MutedColor
}

func (t Theme) textColor() palette.Color {
	if t.TextColor == "" {
		return DefaultTextColor
	}
	return t.TextColor
}

func (t Theme) radius() float64 {
	if t.ScatterRadius == 0 {
		return DefaultScatterRadius
	}
	return t.ScatterRadius
}
