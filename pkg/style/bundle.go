package style

import (
	"github.com/matzehuels/chartstyle/pkg/errors"
	"github.com/matzehuels/chartstyle/pkg/palette"
)

// FillNone disables filling of a stroked primitive.
const FillNone = "none"

// Encoding identifies the chart primitive a legend entry annotates.
type Encoding string

const (
	EncodingLine    Encoding = "line"
	EncodingArea    Encoding = "area"
	EncodingBar     Encoding = "bar"
	EncodingScatter Encoding = "scatter"
)

// Encodings lists the supported encodings.
var Encodings = []Encoding{EncodingLine, EncodingArea, EncodingBar, EncodingScatter}

// ParseEncoding validates an encoding name.
func ParseEncoding(s string) (Encoding, error) {
	for _, e := range Encodings {
		if string(e) == s {
			return e, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown chart encoding %q (want line, area, bar or scatter)", s)
}

// LineStyle is the property bundle of a stroked series path.
type LineStyle struct {
	Stroke          palette.Color `json:"stroke" toml:"stroke"`
	Fill            string        `json:"fill" toml:"fill"`
	StrokeWidth     float64       `json:"strokeWidth" toml:"stroke_width"`
	StrokeDasharray string        `json:"strokeDasharray,omitempty" toml:"stroke_dasharray"`
	Opacity         float64       `json:"opacity" toml:"opacity"`
}

// Validate checks colors, width, dash pattern and opacity.
func (s LineStyle) Validate() error {
	if err := validColor("stroke", s.Stroke); err != nil {
		return err
	}
	if s.Fill != "" && s.Fill != FillNone {
		if err := validColor("fill", palette.Color(s.Fill)); err != nil {
			return err
		}
	}
	if err := errors.ValidateWidth("strokeWidth", s.StrokeWidth); err != nil {
		return err
	}
	if err := errors.ValidateDasharray("strokeDasharray", s.StrokeDasharray); err != nil {
		return err
	}
	return errors.ValidateOpacity("opacity", s.Opacity)
}

// Symbol returns the legend glyph drawn for the line.
func (s LineStyle) Symbol() SymbolStyle {
	return SymbolStyle{
		Shape:           EncodingLine,
		Stroke:          s.Stroke,
		StrokeWidth:     s.StrokeWidth,
		StrokeDasharray: s.StrokeDasharray,
		Opacity:         s.Opacity,
	}
}

// FillStyle is a filled region.
type FillStyle struct {
	Fill    palette.Color `json:"fill" toml:"fill"`
	Opacity float64       `json:"opacity" toml:"opacity"`
}

// Validate checks the fill color and opacity.
func (s FillStyle) Validate() error {
	if err := validColor("fill", s.Fill); err != nil {
		return err
	}
	return errors.ValidateOpacity("opacity", s.Opacity)
}

// AreaStyle pairs the outline of an area series with its fill.
type AreaStyle struct {
	Line LineStyle `json:"line" toml:"line"`
	Area FillStyle `json:"area" toml:"area"`
}

// Validate checks both halves.
func (s AreaStyle) Validate() error {
	if err := s.Line.Validate(); err != nil {
		return err
	}
	return s.Area.Validate()
}

// Symbol returns the legend glyph drawn for the area.
func (s AreaStyle) Symbol() SymbolStyle {
	return SymbolStyle{
		Shape:       EncodingArea,
		Fill:        s.Area.Fill,
		Stroke:      s.Line.Stroke,
		StrokeWidth: s.Line.StrokeWidth,
		Opacity:     s.Area.Opacity,
	}
}

// BarStyle is the property bundle of a bar.
type BarStyle struct {
	Fill    palette.Color `json:"fill" toml:"fill"`
	Opacity float64       `json:"opacity" toml:"opacity"`
}

// Validate checks the fill color and opacity.
func (s BarStyle) Validate() error { return FillStyle(s).Validate() }

// Symbol returns the legend glyph drawn for the bar.
func (s BarStyle) Symbol() SymbolStyle {
	return SymbolStyle{Shape: EncodingBar, Fill: s.Fill, Opacity: s.Opacity}
}

// ScatterStyle is the property bundle of a scatter dot.
type ScatterStyle struct {
	Fill    palette.Color `json:"fill" toml:"fill"`
	Opacity float64       `json:"opacity" toml:"opacity"`
	Radius  float64       `json:"radius" toml:"radius"`
}

// Validate checks the fill color, opacity and radius.
func (s ScatterStyle) Validate() error {
	if err := (FillStyle{Fill: s.Fill, Opacity: s.Opacity}).Validate(); err != nil {
		return err
	}
	return errors.ValidateWidth("radius", s.Radius)
}

// Symbol returns the legend glyph drawn for the dot.
func (s ScatterStyle) Symbol() SymbolStyle {
	return SymbolStyle{Shape: EncodingScatter, Fill: s.Fill, Radius: s.Radius, Opacity: s.Opacity}
}

// SymbolStyle is the legend glyph drawn next to a label.
// Shape names the chart primitive it mimics; unused fields are zero.
type SymbolStyle struct {
	Shape           Encoding      `json:"shape" toml:"shape"`
	Fill            palette.Color `json:"fill,omitempty" toml:"fill"`
	Stroke          palette.Color `json:"stroke,omitempty" toml:"stroke"`
	StrokeWidth     float64       `json:"strokeWidth,omitempty" toml:"stroke_width"`
	StrokeDasharray string        `json:"strokeDasharray,omitempty" toml:"stroke_dasharray"`
	Radius          float64       `json:"radius,omitempty" toml:"radius"`
	Opacity         float64       `json:"opacity" toml:"opacity"`
}

// Color returns the glyph's identifying color: the stroke for line symbols,
// the fill otherwise.
func (s SymbolStyle) Color() palette.Color {
	if s.Shape == EncodingLine {
		return s.Stroke
	}
	return s.Fill
}

// Validate checks the glyph's colors, sizes, dash pattern and opacity.
func (s SymbolStyle) Validate() error {
	if err := validColor("symbol", s.Color()); err != nil {
		return err
	}
	if s.Fill != "" {
		if err := validColor("fill", s.Fill); err != nil {
			return err
		}
	}
	if s.Stroke != "" {
		if err := validColor("stroke", s.Stroke); err != nil {
			return err
		}
	}
	if err := errors.ValidateWidth("strokeWidth", s.StrokeWidth); err != nil {
		return err
	}
	if err := errors.ValidateWidth("radius", s.Radius); err != nil {
		return err
	}
	if err := errors.ValidateDasharray("strokeDasharray", s.StrokeDasharray); err != nil {
		return err
	}
	return errors.ValidateOpacity("opacity", s.Opacity)
}

// TextStyle is a legend label or value.
type TextStyle struct {
	Color   palette.Color `json:"color" toml:"color"`
	Opacity float64       `json:"opacity" toml:"opacity"`
}

// Validate checks the text color and opacity.
func (s TextStyle) Validate() error {
	if err := validColor("color", s.Color); err != nil {
		return err
	}
	return errors.ValidateOpacity("opacity", s.Opacity)
}

// LegendStyle is the property bundle of one legend entry.
type LegendStyle struct {
	Symbol SymbolStyle `json:"symbol" toml:"symbol"`
	Label  TextStyle   `json:"label" toml:"label"`
	Value  TextStyle   `json:"value" toml:"value"`
}

// Validate checks every part of the entry.
func (s LegendStyle) Validate() error {
	if err := s.Symbol.Validate(); err != nil {
		return err
	}
	if err := s.Label.Validate(); err != nil {
		return err
	}
	return s.Value.Validate()
}

// AxisLabelStyle decorates an axis bound to a single column.
type AxisLabelStyle struct {
	LabelColor palette.Color `json:"labelColor" toml:"label_color"`
}

// Validate checks the label color.
func (s AxisLabelStyle) Validate() error { return validColor("labelColor", s.LabelColor) }

// validator is implemented by every property bundle in this package and
// may be implemented by caller-defined bundle types.
type validator interface {
	Validate() error
}

func validColor(field string, c palette.Color) error {
	if _, err := palette.ParseColor(string(c)); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidColor, err, "%s", field)
	}
	return nil
}
