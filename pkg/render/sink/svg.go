package sink

import (
	"bytes"
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/matzehuels/chartstyle/pkg/style"
)

const (
	defaultWidth       = 640.0
	defaultPanelHeight = 160.0
	defaultPoints      = 8

	margin      = 24.0
	panelGap    = 28.0
	titleHeight = 28.0
	legendRow   = 22.0
	fontSize    = 12.0
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	title       string
	width       float64
	panelHeight float64
	encodings   []style.Encoding
	series      map[string][]float64
}

func WithTitle(s string) SVGOption        { return func(r *svgRenderer) { r.title = s } }
func WithWidth(w float64) SVGOption       { return func(r *svgRenderer) { r.width = w } }
func WithPanelHeight(h float64) SVGOption { return func(r *svgRenderer) { r.panelHeight = h } }
func WithSeries(m map[string][]float64) SVGOption {
	return func(r *svgRenderer) { r.series = m }
}

// WithEncodings selects the panels to draw. The default is every encoding.
func WithEncodings(encs ...style.Encoding) SVGOption {
	return func(r *svgRenderer) { r.encodings = encs }
}

// RenderSVG draws one panel per encoding with every column, followed by a
// legend row per column.
func RenderSVG(cols []style.Resolved, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	data := r.data(cols)

	top := margin
	if r.title != "" {
		top += titleHeight
	}
	panels := float64(len(r.encodings))
	height := top + panels*(r.panelHeight+panelGap) + float64(len(cols))*legendRow + margin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.width, height, r.width, height)
	buf.WriteString(`  <rect width="100%" height="100%" fill="#ffffff"/>` + "\n")
	if r.title != "" {
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="16" fill="#333333">%s</text>`+"\n",
			margin, margin+16, html.EscapeString(r.title))
	}

	y := top
	for _, enc := range r.encodings {
		p := panel{x: margin + 40, y: y, w: r.width - 2*margin - 40, h: r.panelHeight}
		renderPanel(&buf, p, enc, cols, data)
		y += r.panelHeight + panelGap
	}
	renderLegend(&buf, margin, y, cols)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{width: defaultWidth, panelHeight: defaultPanelHeight}
	for _, opt := range opts {
		opt(&r)
	}
	if len(r.encodings) == 0 {
		r.encodings = style.Encodings
	}
	return r
}

// data returns one normalized series in [0, 1] per column.
func (r svgRenderer) data(cols []style.Resolved) [][]float64 {
	out := make([][]float64, len(cols))
	maxV := 0.0
	for i, c := range cols {
		if vs, ok := r.series[c.Key]; ok && len(vs) > 0 {
			out[i] = vs
		} else {
			out[i] = sampleSeries(i, defaultPoints)
		}
		for _, v := range out[i] {
			maxV = math.Max(maxV, v)
		}
	}
	if maxV <= 0 {
		maxV = 1
	}
	for i := range out {
		norm := make([]float64, len(out[i]))
		for j, v := range out[i] {
			norm[j] = math.Max(v, 0) / maxV
		}
		out[i] = norm
	}
	return out
}

// sampleSeries is deterministic so previews are reproducible.
func sampleSeries(column, points int) []float64 {
	vs := make([]float64, points)
	for j := range vs {
		vs[j] = 0.55 + 0.35*math.Sin(float64(j)*0.9+float64(column)*1.7)
	}
	return vs
}

type panel struct{ x, y, w, h float64 }

func (p panel) px(j, n int) float64 {
	if n <= 1 {
		return p.x + p.w/2
	}
	return p.x + p.w*float64(j)/float64(n-1)
}

func (p panel) py(v float64) float64 { return p.y + p.h*(1-v) }

func renderPanel(buf *bytes.Buffer, p panel, enc style.Encoding, cols []style.Resolved, data [][]float64) {
	fmt.Fprintf(buf, `  <g class="panel panel-%s">`+"\n", enc)
	fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#999999" stroke-width="1"/>`+"\n",
		p.x, p.y+p.h, p.x+p.w, p.y+p.h)
	fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#999999" stroke-width="1"/>`+"\n",
		p.x, p.y, p.x, p.y+p.h)
	if len(cols) > 0 {
		// The y axis is bound to the first column.
		fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="%.0f" fill="%s" text-anchor="end" transform="rotate(-90 %.1f %.1f)">%s</text>`+"\n",
			p.x-8, p.y+p.h/2, fontSize, attr(cols[0].Axis.LabelColor), p.x-8, p.y+p.h/2, html.EscapeString(cols[0].Key))
	}

	switch enc {
	case style.EncodingLine:
		for i, c := range cols {
			writeLine(buf, c, p.points(data[i]), c.Line)
		}
	case style.EncodingArea:
		for i, c := range cols {
			pts := p.points(data[i])
			n := len(data[i])
			poly := fmt.Sprintf("%.1f,%.1f %s %.1f,%.1f", p.px(0, n), p.y+p.h, pts, p.px(n-1, n), p.y+p.h)
			fmt.Fprintf(buf, `    <polygon %s points="%s" fill="%s" fill-opacity="%s"/>`+"\n",
				dataAttrs(c), poly, attr(c.Area.Area.Fill), num(c.Area.Area.Opacity))
			writeLine(buf, c, pts, c.Area.Line)
		}
	case style.EncodingBar:
		renderBars(buf, p, cols, data)
	case style.EncodingScatter:
		for i, c := range cols {
			n := len(data[i])
			for j, v := range data[i] {
				fmt.Fprintf(buf, `    <circle %s cx="%.1f" cy="%.1f" r="%s" fill="%s" fill-opacity="%s"/>`+"\n",
					dataAttrs(c), p.px(j, n), p.py(v), num(c.Scatter.Radius), attr(c.Scatter.Fill), num(c.Scatter.Opacity))
			}
		}
	}
	buf.WriteString("  </g>\n")
}

func (p panel) points(vs []float64) string {
	parts := make([]string, len(vs))
	for j, v := range vs {
		parts[j] = fmt.Sprintf("%.1f,%.1f", p.px(j, len(vs)), p.py(v))
	}
	return strings.Join(parts, " ")
}

func writeLine(buf *bytes.Buffer, c style.Resolved, pts string, ls style.LineStyle) {
	fmt.Fprintf(buf, `    <polyline %s points="%s" fill="%s" stroke="%s" stroke-width="%s"%s opacity="%s"/>`+"\n",
		dataAttrs(c), pts, attr(fillAttr(ls.Fill)), attr(ls.Stroke), num(ls.StrokeWidth), dashAttr(ls.StrokeDasharray), num(ls.Opacity))
}

func renderBars(buf *bytes.Buffer, p panel, cols []style.Resolved, data [][]float64) {
	groups := 0
	for _, d := range data {
		groups = max(groups, len(d))
	}
	if groups == 0 || len(cols) == 0 {
		return
	}
	groupW := p.w / float64(groups)
	barW := groupW * 0.8 / float64(len(cols))
	for i, c := range cols {
		for j, v := range data[i] {
			x := p.x + groupW*float64(j) + groupW*0.1 + barW*float64(i)
			fmt.Fprintf(buf, `    <rect %s x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" fill-opacity="%s"/>`+"\n",
				dataAttrs(c), x, p.py(v), barW, p.h*v, attr(c.Bar.Fill), num(c.Bar.Opacity))
		}
	}
}

func renderLegend(buf *bytes.Buffer, x, y float64, cols []style.Resolved) {
	buf.WriteString(`  <g class="legend">` + "\n")
	for i, c := range cols {
		cy := y + float64(i)*legendRow + legendRow/2
		renderSymbol(buf, x, cy, c)
		fmt.Fprintf(buf, `    <text %s x="%.1f" y="%.1f" font-family="sans-serif" font-size="%.0f" fill="%s" opacity="%s">%s</text>`+"\n",
			dataAttrs(c), x+28, cy+4, fontSize, attr(c.Legend.Label.Color), num(c.Legend.Label.Opacity), html.EscapeString(c.Key))
	}
	buf.WriteString("  </g>\n")
}

func renderSymbol(buf *bytes.Buffer, x, cy float64, c style.Resolved) {
	s := c.Legend.Symbol
	switch s.Shape {
	case style.EncodingLine:
		fmt.Fprintf(buf, `    <line %s x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%s"%s opacity="%s"/>`+"\n",
			dataAttrs(c), x, cy, x+20, cy, attr(s.Stroke), num(s.StrokeWidth), dashAttr(s.StrokeDasharray), num(s.Opacity))
	case style.EncodingScatter:
		fmt.Fprintf(buf, `    <circle %s cx="%.1f" cy="%.1f" r="%s" fill="%s" fill-opacity="%s"/>`+"\n",
			dataAttrs(c), x+10, cy, num(s.Radius), attr(s.Fill), num(s.Opacity))
	default:
		stroke := ""
		if s.Stroke != "" {
			stroke = fmt.Sprintf(` stroke="%s" stroke-width="%s"`, attr(s.Stroke), num(s.StrokeWidth))
		}
		fmt.Fprintf(buf, `    <rect %s x="%.1f" y="%.1f" width="20" height="12" fill="%s" fill-opacity="%s"%s/>`+"\n",
			dataAttrs(c), x, cy-6, attr(s.Fill), num(s.Opacity), stroke)
	}
}

func dataAttrs(c style.Resolved) string {
	return fmt.Sprintf(`data-key="%s" data-state="%s"`, attr(c.Key), c.State)
}

func fillAttr(f string) string {
	if f == "" {
		return style.FillNone
	}
	return f
}

func dashAttr(d string) string {
	if d == "" {
		return ""
	}
	return fmt.Sprintf(` stroke-dasharray="%s"`, attr(d))
}

// attr escapes a value for a double-quoted attribute.
func attr[S ~string](s S) string {
	return html.EscapeString(string(s))
}

// num formats without trailing zeros: 0.8, 1, 2.5.
func num(v float64) string {
	return fmt.Sprintf("%g", v)
}
