// Package palette provides named, ordered color tables and the color value
// type shared by the chartstyle engine.
//
// # Colors
//
// [Color] is a normalized lower-case "#rrggbb" string. [ParseColor] accepts
// "#rgb" and "#rrggbb" forms and rejects anything else with an
// INVALID_COLOR error. [Lighten] implements the deterministic
// blend-toward-white transform used for highlighted elements.
//
// # Registry
//
// A [Registry] maps palette names to immutable [Palette] values. The
// process-wide [Default] registry is seeded with every ColorBrewer palette
// (at its largest level count) from go-gg's brewer tables; "Paired" with 12
// entries is the default palette when no name is given:
//
//	p, err := palette.Lookup("Paired")
//	if err != nil {
//	    // UNKNOWN_PALETTE
//	}
//	first := p.At(0) // "#a6cee3"
//
// Additional palettes may be registered by name before first use:
//
//	err := palette.Register("ops", "#112233", "#445566")
//
// Registries are safe for concurrent use; palettes are immutable once
// registered.
package palette
