// Package scheme assigns palette colors to data columns.
//
// An [Allocator] owns an ordered list of [Column] specs and one palette. It
// computes every column's color once, at construction, and never changes it
// afterwards, so repeated lookups for the same column return the same color
// for the lifetime of the allocator and the value may be shared freely
// across goroutines.
//
// Columns are colored by ordinal position. When there are more columns than
// palette entries, later columns wrap around (ordinal modulo palette
// length). A column's explicit color always overrides the palette.
//
//	a, err := scheme.New([]scheme.Column{{Key: "in"}, {Key: "out"}})
//	c, _ := a.ColorFor("out") // "#1f78b4" from "Paired"
package scheme
