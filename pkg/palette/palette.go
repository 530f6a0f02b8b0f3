package palette

import (
	"slices"
	"sync"

	"github.com/matzehuels/chartstyle/pkg/errors"
	"github.com/matzehuels/chartstyle/pkg/observability"
)

// DefaultName is the palette used when no name is supplied.
const DefaultName = "Paired"

// Palette is a named, fixed-length ordered color table.
// The zero value is an empty, unnamed palette.
type Palette struct {
	name   string
	colors []Color
}

// New builds a palette, validating and normalizing every color.
func New(name string, colors ...Color) (Palette, error) {
	if err := errors.ValidatePaletteName(name); err != nil {
		return Palette{}, err
	}
	if len(colors) == 0 {
		return Palette{}, errors.New(errors.ErrCodeInvalidPalette, "palette %q has no colors", name)
	}
	norm := make([]Color, len(colors))
	for i, c := range colors {
		pc, err := ParseColor(string(c))
		if err != nil {
			return Palette{}, errors.Wrap(errors.ErrCodeInvalidPalette, err, "palette %q entry %d", name, i)
		}
		norm[i] = pc
	}
	return Palette{name: name, colors: norm}, nil
}

// Name returns the palette's registered name.
func (p Palette) Name() string { return p.name }

// Len returns the number of colors.
func (p Palette) Len() int { return len(p.colors) }

// Colors returns a copy of the ordered color table.
func (p Palette) Colors() []Color { return slices.Clone(p.colors) }

// At returns the color at index i, wrapping modulo the palette length.
// At panics on an empty palette.
func (p Palette) At(i int) Color {
	n := len(p.colors)
	return p.colors[((i%n)+n)%n]
}

// Head returns the first count colors, capped at the palette length.
// Head(0) and negative counts return an empty, non-nil slice.
func (p Palette) Head(count int) []Color {
	count = min(max(count, 0), len(p.colors))
	return slices.Clone(p.colors[:count])
}

// Registry is a set of named palettes. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	palettes map[string]Palette
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{palettes: make(map[string]Palette)}
}

// Register adds a palette under name. Registering a name twice is an
// INVALID_PALETTE error; palettes never change once registered.
func (r *Registry) Register(name string, colors ...Color) error {
	p, err := New(name, colors...)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.palettes[name]; ok {
		return errors.New(errors.ErrCodeInvalidPalette, "palette %q is already registered", name)
	}
	r.palettes[name] = p
	return nil
}

// Lookup returns the palette registered under name. An empty name selects
// [DefaultName]. Unregistered names yield UNKNOWN_PALETTE.
func (r *Registry) Lookup(name string) (Palette, error) {
	if name == "" {
		name = DefaultName
	}
	r.mu.RLock()
	p, ok := r.palettes[name]
	r.mu.RUnlock()

	observability.Style().OnPaletteLookup(name, ok)
	if !ok {
		return Palette{}, errors.UnknownPalette(name)
	}
	return p, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.palettes[name]
	return ok
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.palettes))
	for name := range r.palettes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Clone returns an independent registry holding the same palettes.
// Chart configurations that declare their own palettes register them on a
// clone so the process-wide registry stays untouched.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c := NewRegistry()
	for name, p := range r.palettes {
		c.palettes[name] = p
	}
	return c
}
