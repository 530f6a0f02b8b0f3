package palette

import (
	"sync"

	"github.com/aclements/go-gg/palette/brewer"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry seeded with the builtin
// ColorBrewer palettes.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewBuiltinRegistry()
	})
	return defaultRegistry
}

// Lookup looks up name in the [Default] registry.
func Lookup(name string) (Palette, error) { return Default().Lookup(name) }

// Register adds a palette to the [Default] registry.
func Register(name string, colors ...Color) error { return Default().Register(name, colors...) }

// NewBuiltinRegistry returns a fresh registry holding every ColorBrewer
// palette at its largest level count ("Paired" has 12 entries).
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	for name, levels := range brewer.ByName {
		n := 0
		for k := range levels {
			n = max(n, k)
		}
		colors := make([]Color, 0, n)
		for _, c := range levels[n] {
			colors = append(colors, FromColor(c))
		}
		r.palettes[name] = Palette{name: name, colors: colors}
	}
	return r
}
