package config

import "github.com/matzehuels/chartstyle/pkg/style"

// Sources holds one style source per chart encoding.
type Sources struct {
	Line    style.Source[style.LineStyle]
	Area    style.Source[style.AreaStyle]
	Bar     style.Source[style.BarStyle]
	Scatter style.Source[style.ScatterStyle]
	Legend  func(style.Encoding) style.Source[style.LegendStyle]
	Axis    style.Source[style.AxisLabelStyle]
}

// Sources returns the sources for s. Encodings with a static table use it;
// the others are generated from the styler's allocator and theme.
func (c *Config) Sources(s *style.Styler) Sources {
	src := Sources{
		Line:    s.LineSource(),
		Area:    s.AreaSource(),
		Bar:     s.BarSource(),
		Scatter: s.ScatterSource(),
		Legend:  s.LegendSource,
		Axis:    s.AxisLabelSource(),
	}
	if len(c.Styles.Line) > 0 {
		src.Line = style.StaticTable(c.Styles.Line)
	}
	if len(c.Styles.Area) > 0 {
		src.Area = style.StaticTable(c.Styles.Area)
	}
	if len(c.Styles.Bar) > 0 {
		src.Bar = style.StaticTable(c.Styles.Bar)
	}
	if len(c.Styles.Scatter) > 0 {
		src.Scatter = style.StaticTable(c.Styles.Scatter)
	}
	return src
}

// Resolve resolves every encoding of key from the sources. The legend
// entry annotates enc and its symbol is taken from the resolved chart
// bundle, so static tables and their legend agree.
func (src Sources) Resolve(key string, enc style.Encoding, ix style.Interaction) (style.Resolved, error) {
	req := style.Request{Key: key, Interaction: ix}
	r := style.Resolved{Key: key, State: style.ResolveState(key, ix)}
	var err error
	if r.Line, err = style.Resolve(src.Line, req); err != nil {
		return style.Resolved{}, err
	}
	if r.Area, err = style.Resolve(src.Area, req); err != nil {
		return style.Resolved{}, err
	}
	if r.Bar, err = style.Resolve(src.Bar, req); err != nil {
		return style.Resolved{}, err
	}
	if r.Scatter, err = style.Resolve(src.Scatter, req); err != nil {
		return style.Resolved{}, err
	}
	if r.Axis, err = style.Resolve(src.Axis, req); err != nil {
		return style.Resolved{}, err
	}
	if r.Legend, err = style.Resolve(src.Legend(enc), req); err != nil {
		return style.Resolved{}, err
	}
	r.Legend.Symbol = r.Symbol(enc)
	return r, nil
}

// ResolveAll resolves every key in order.
func (src Sources) ResolveAll(keys []string, enc style.Encoding, ix style.Interaction) ([]style.Resolved, error) {
	out := make([]style.Resolved, 0, len(keys))
	for _, key := range keys {
		r, err := src.Resolve(key, enc, ix)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
