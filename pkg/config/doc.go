// Package config loads chart style configurations from TOML.
//
// A configuration names the palette, lists the columns, optionally
// registers extra palettes, tunes the [style.Theme] and supplies static
// style tables that replace generated styles for an encoding:
//
//	palette = "Set2"
//
//	[theme]
//	lighten = 0.3
//
//	[[palettes]]
//	name = "ops"
//	colors = ["#112233", "#445566"]
//
//	[[columns]]
//	key = "in"
//	selected_color = "#e31a1c"
//
//	[[columns]]
//	key = "out"
//	dashed = true
//
//	[styles.bar.in]
//	normal      = { fill = "#111111", opacity = 0.8 }
//	highlighted = { fill = "#222222", opacity = 1.0 }
//	selected    = { fill = "#333333", opacity = 1.0 }
//	muted       = { fill = "#bdbdbd", opacity = 0.5 }
//
//	[styles.bar.out]
//	normal      = { fill = "#444444", opacity = 0.8 }
//	highlighted = { fill = "#555555", opacity = 1.0 }
//	selected    = { fill = "#666666", opacity = 1.0 }
//	muted       = { fill = "#bdbdbd", opacity = 0.5 }
//
// A static table must cover every configured column.
// Unknown keys, malformed colors and out-of-range numbers are rejected with
// an INVALID_CONFIG error so that typos never silently fall back to
// generated styles.
//
// # Usage
//
//	cfg, err := config.Load("chart.toml")
//	if err != nil {
//	    return err
//	}
//	s, err := cfg.Styler(nil)
//	if err != nil {
//	    return err
//	}
//	src := cfg.Sources(s)
package config
