// Package pkg provides the libraries behind chartstyle, a style resolution
// engine for charts.
//
// # Overview
//
// Chartstyle assigns each data column a stable color from a named palette
// and derives every visual property of the column from that color and the
// current interaction state. Line, area, bar and scatter marks, legend
// entries and axis labels all resolve through the same path, so a legend
// always matches the chart it annotates.
//
// # Architecture
//
// The typical data flow:
//
//	TOML/JSON chart configuration
//	         ↓
//	    [config] package (decode + validate)
//	         ↓
//	    [palette] + [scheme] packages (palette lookup, color per column)
//	         ↓
//	    [style] package (state resolution, style sources, builders)
//	         ↓
//	    [render/sink] package (SVG preview or JSON document)
//
// # Quick Start
//
//	reg := palette.Default()
//	alloc, _ := scheme.New([]scheme.Column{{Key: "in"}, {Key: "out"}},
//	    scheme.WithRegistry(reg), scheme.WithPalette("Paired"))
//	s := style.NewStyler(alloc)
//
//	bar, _ := s.BarChartStyle("in", style.Interaction{SelectedKey: "in"})
//	fmt.Println(bar.Fill, bar.Opacity)
//
// # Main Packages
//
//   - [palette]: named, ordered color lists and the palette registry
//   - [scheme]: column to color allocation
//   - [style]: interaction states, style sources and chart style builders
//   - [config]: configuration files wired into stylers
//   - [render/sink]: SVG and JSON output of resolved styles
//   - [cache]: file and redis caches for the HTTP API
//   - [server]: the HTTP resolve API
//   - [errors]: coded errors shared by all packages
//   - [observability]: hooks for logging and metrics
//   - [buildinfo]: version information
package pkg
