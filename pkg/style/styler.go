package style

import (
	"github.com/matzehuels/chartstyle/pkg/scheme"
)

// Styler generates chart, legend and axis styles for one chart
// configuration. It holds no mutable state.
type Styler struct {
	alloc *scheme.Allocator
	theme Theme
}

// StylerOption configures a Styler.
type StylerOption func(*Styler)

// WithTheme overrides the default theme. Zero fields are filled from
// [DefaultTheme].
func WithTheme(t Theme) StylerOption {
	return func(s *Styler) { s.theme = t.WithDefaults() }
}

// NewStyler binds an allocator and theme.
func NewStyler(a *scheme.Allocator, opts ...StylerOption) *Styler {
	s := &Styler{alloc: a, theme: DefaultTheme()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Allocator returns the bound allocator.
func (s *Styler) Allocator() *scheme.Allocator { return s.alloc }

// Theme returns the bound theme.
func (s *Styler) Theme() Theme { return s.theme }

// LineSource returns a scheme source generating line styles.
func (s *Styler) LineSource() Source[LineStyle] { return FromScheme(s.alloc, s.theme.Line) }

// AreaSource returns a scheme source generating area styles.
func (s *Styler) AreaSource() Source[AreaStyle] { return FromScheme(s.alloc, s.theme.Area) }

// BarSource returns a scheme source generating bar styles.
func (s *Styler) BarSource() Source[BarStyle] { return FromScheme(s.alloc, s.theme.Bar) }

// ScatterSource returns a scheme source generating scatter styles.
func (s *Styler) ScatterSource() Source[ScatterStyle] { return FromScheme(s.alloc, s.theme.Scatter) }

// LegendSource returns a scheme source generating legend entries for enc.
func (s *Styler) LegendSource(enc Encoding) Source[LegendStyle] {
	return FromScheme(s.alloc, s.theme.Legend(enc))
}

// AxisLabelSource returns a scheme source generating axis label styles.
func (s *Styler) AxisLabelSource() Source[AxisLabelStyle] {
	return FromScheme(s.alloc, s.theme.AxisLabel)
}

// LineChartStyle resolves the line style of key.
func (s *Styler) LineChartStyle(key string, ix Interaction) (LineStyle, error) {
	return Resolve(s.LineSource(), Request{Key: key, Interaction: ix})
}

// AreaChartStyle resolves the area style of key.
func (s *Styler) AreaChartStyle(key string, ix Interaction) (AreaStyle, error) {
	return Resolve(s.AreaSource(), Request{Key: key, Interaction: ix})
}

// BarChartStyle resolves the bar style of key.
func (s *Styler) BarChartStyle(key string, ix Interaction) (BarStyle, error) {
	return Resolve(s.BarSource(), Request{Key: key, Interaction: ix})
}

// ScatterChartStyle resolves the scatter style of key.
func (s *Styler) ScatterChartStyle(key string, ix Interaction) (ScatterStyle, error) {
	return Resolve(s.ScatterSource(), Request{Key: key, Interaction: ix})
}

// LegendStyle resolves the legend entry of key annotating a chart of
// encoding enc.
func (s *Styler) LegendStyle(key string, enc Encoding, ix Interaction) (LegendStyle, error) {
	return Resolve(s.LegendSource(enc), Request{Key: key, Interaction: ix})
}

// AxisLabelStyle resolves the axis decoration for an axis bound to key.
func (s *Styler) AxisLabelStyle(key string) (AxisLabelStyle, error) {
	return Resolve(s.AxisLabelSource(), Request{Key: key})
}

// Resolved bundles every encoding's style for one column under one
// interaction. Renderers that draw several primitives per column use it to
// resolve once.
type Resolved struct {
	Key     string         `json:"key"`
	State   State          `json:"state"`
	Line    LineStyle      `json:"line"`
	Area    AreaStyle      `json:"area"`
	Bar     BarStyle       `json:"bar"`
	Scatter ScatterStyle   `json:"scatter"`
	Axis    AxisLabelStyle `json:"axis"`
	Legend  LegendStyle    `json:"legend"`
}

// ResolveColumn resolves every encoding for key. The legend entry
// annotates enc.
func (s *Styler) ResolveColumn(key string, enc Encoding, ix Interaction) (Resolved, error) {
	r := Resolved{Key: key, State: ResolveState(key, ix)}
	var err error
	if r.Line, err = s.LineChartStyle(key, ix); err != nil {
		return Resolved{}, err
	}
	if r.Area, err = s.AreaChartStyle(key, ix); err != nil {
		return Resolved{}, err
	}
	if r.Bar, err = s.BarChartStyle(key, ix); err != nil {
		return Resolved{}, err
	}
	if r.Scatter, err = s.ScatterChartStyle(key, ix); err != nil {
		return Resolved{}, err
	}
	if r.Axis, err = s.AxisLabelStyle(key); err != nil {
		return Resolved{}, err
	}
	if r.Legend, err = s.LegendStyle(key, enc, ix); err != nil {
		return Resolved{}, err
	}
	return r, nil
}

// ResolveAllColumns resolves every configured column in order.
func (s *Styler) ResolveAllColumns(enc Encoding, ix Interaction) ([]Resolved, error) {
	out := make([]Resolved, 0, s.alloc.NumColumns())
	for _, key := range s.alloc.Keys() {
		r, err := s.ResolveColumn(key, enc, ix)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// Symbol returns the legend glyph of enc derived from the resolved chart
// bundle, so legends stay consistent with charts fed by any source.
func (r Resolved) Symbol(enc Encoding) SymbolStyle {
	switch enc {
	case EncodingLine:
		return r.Line.Symbol()
	case EncodingArea:
		return r.Area.Symbol()
	case EncodingScatter:
		return r.Scatter.Symbol()
	default:
		return r.Bar.Symbol()
	}
}
