// Package style resolves loosely-typed style inputs into concrete,
// state-qualified property bundles for line, area, bar and scatter charts,
// legends and axis labels.
//
// # Element States
//
// Every drawn element is in exactly one [State]: Normal, Highlighted,
// Selected or Muted. [ResolveState] derives it from the column key and the
// transient [Interaction] context using one precedence rule for every chart
// type and the legend:
//
//  1. the selected column is Selected
//  2. any other column is Muted while a selection exists, even if highlighted
//  3. otherwise the highlighted column is Highlighted
//  4. everything else is Normal
//
// # Style Sources
//
// A [Source] is a tagged variant with three payload shapes:
//
//   - [StaticTable]: caller-authored [StateStyling] per column key. Resolving
//     a key that is missing from the table fails with MISSING_COLUMN_STYLE;
//     there is no generated fallback.
//   - [FromCallback]: a typed function invoked per draw. Its result replaces
//     the generated style entirely; nothing is merged.
//   - [FromScheme]: a [scheme.Allocator] plus a [Builder]; the bundle is
//     generated from the allocated color and the column attributes.
//
// [Resolve] dispatches with a single switch over the tag.
//
// # Builders
//
// Builders are pure functions of (color, column, state). They are methods on
// [Theme], which carries the configurable highlight blend ratio and the
// neutral muted color. Builders never see static tables or callbacks.
//
// # Styler
//
// [Styler] binds one allocator and theme and exposes per-encoding helpers.
// Legend symbols reuse the builder of the chart they annotate, so a legend
// swatch always carries the same color as its bar, line or dot:
//
//	s := style.NewStyler(alloc)
//	bar, _ := s.BarChartStyle("in", style.Interaction{SelectedKey: "in"})
//	leg, _ := s.LegendStyle("in", style.EncodingBar, style.Interaction{SelectedKey: "in"})
//	// leg.Symbol.Fill == bar.Fill
//
// Nothing in this package blocks, performs I/O or retains the interaction
// context, so all of it is safe for concurrent use.
package style
