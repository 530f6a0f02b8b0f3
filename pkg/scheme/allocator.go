package scheme

import (
	"slices"

	"github.com/matzehuels/chartstyle/pkg/errors"
	"github.com/matzehuels/chartstyle/pkg/palette"
)

// Allocator maps columns to colors from a single palette.
// It is immutable after construction and safe for concurrent use.
type Allocator struct {
	columns []Column
	index   map[string]int
	palette palette.Palette
	colors  []palette.Color // memoized, one per column
}

// Option configures an Allocator.
type Option func(*options)

type options struct {
	registry    *palette.Registry
	paletteName string
}

// WithPalette selects the palette by name (default "Paired").
func WithPalette(name string) Option { return func(o *options) { o.paletteName = name } }

// WithRegistry looks palettes up in r instead of [palette.Default].
func WithRegistry(r *palette.Registry) Option { return func(o *options) { o.registry = r } }

// New builds an allocator for columns. Duplicate keys yield
// DUPLICATE_COLUMN_KEY, unknown palette names UNKNOWN_PALETTE and malformed
// columns INVALID_COLUMN.
func New(columns []Column, opts ...Option) (*Allocator, error) {
	o := options{paletteName: palette.DefaultName}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = palette.Default()
	}

	a := &Allocator{
		columns: make([]Column, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	for _, c := range columns {
		c, err := c.Validate()
		if err != nil {
			return nil, err
		}
		if _, dup := a.index[c.Key]; dup {
			return nil, errors.DuplicateColumnKey(c.Key)
		}
		a.index[c.Key] = len(a.columns)
		a.columns = append(a.columns, c)
	}

	p, err := o.registry.Lookup(o.paletteName)
	if err != nil {
		return nil, err
	}
	a.palette = p

	lookup := a.ColorLookup(len(a.columns))
	a.colors = make([]palette.Color, len(a.columns))
	for i, c := range a.columns {
		if c.Color != "" {
			a.colors[i] = c.Color
			continue
		}
		a.colors[i] = lookup[i%len(lookup)]
	}
	return a, nil
}

// NewWithPalette is shorthand for New(columns, WithPalette(name)).
func NewWithPalette(columns []Column, name string) (*Allocator, error) {
	return New(columns, WithPalette(name))
}

// NumColumns returns the number of configured columns.
func (a *Allocator) NumColumns() int { return len(a.columns) }

// Palette returns the palette colors are drawn from.
func (a *Allocator) Palette() palette.Palette { return a.palette }

// Columns returns a copy of the configured columns in order.
func (a *Allocator) Columns() []Column { return slices.Clone(a.columns) }

// Keys returns the column keys in order.
func (a *Allocator) Keys() []string {
	keys := make([]string, len(a.columns))
	for i, c := range a.columns {
		keys[i] = c.Key
	}
	return keys
}

// Column returns the column configured under key.
func (a *Allocator) Column(key string) (Column, error) {
	i, ok := a.index[key]
	if !ok {
		return Column{}, errors.UnknownColumn(key)
	}
	return a.columns[i], nil
}

// Ordinal returns key's position in the column list.
func (a *Allocator) Ordinal(key string) (int, error) {
	i, ok := a.index[key]
	if !ok {
		return -1, errors.UnknownColumn(key)
	}
	return i, nil
}

// ColorLookup returns count colors from the palette: the first count entries
// when count fits, otherwise the whole palette. Columns past the palette
// length reuse entries by wrapping modulo its length.
func (a *Allocator) ColorLookup(count int) []palette.Color {
	return a.palette.Head(count)
}

// ColorFor returns the column's explicit color if set, else the palette
// color at its ordinal. The result never changes for a given allocator.
func (a *Allocator) ColorFor(key string) (palette.Color, error) {
	i, ok := a.index[key]
	if !ok {
		return "", errors.UnknownColumn(key)
	}
	return a.colors[i], nil
}

// ColorAt returns the color of the column at ordinal i, wrapping modulo the
// column count. It is meant for renderers iterating columns by position.
func (a *Allocator) ColorAt(i int) palette.Color {
	n := len(a.colors)
	if n == 0 {
		return ""
	}
	return a.colors[((i%n)+n)%n]
}
