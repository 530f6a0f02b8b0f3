// Package sink renders resolved chart styles to preview outputs.
//
// # Overview
//
// A sink takes the [style.Resolved] bundles of every column for one
// interaction context and writes them out. Bundles are applied verbatim:
// the sink never adjusts colors, opacities or widths, so a preview shows
// exactly what a chart component would draw.
//
//   - SVG: one panel per chart encoding plus a legend
//   - JSON: the resolved bundles for external tools
//   - PNG, PDF: the SVG converted by rsvg-convert ([ToPNG], [ToPDF])
//
// # SVG Output
//
//	cols, _ := styler.ResolveAllColumns(style.EncodingBar, ix)
//	svg := sink.RenderSVG(cols,
//	    sink.WithTitle("traffic"),
//	    sink.WithEncodings(style.EncodingLine, style.EncodingBar),
//	)
//
// # SVG Options
//
//   - [WithTitle]: Caption drawn above the first panel
//   - [WithWidth]: Frame width in pixels
//   - [WithPanelHeight]: Height of each chart panel
//   - [WithEncodings]: Panels to draw, in order
//   - [WithSeries]: Data per column; deterministic sample data otherwise
//
// # JSON Output
//
// [RenderJSON] writes the bundles together with the interaction context and
// legend encoding they were resolved for.
package sink
