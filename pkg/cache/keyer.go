package cache

import "strings"

// Keyer derives cache keys for cached responses.
type Keyer interface {
	// ResolveKey keys a resolve response by request body and options.
	ResolveKey(body []byte, opts ResolveKeyOpts) string

	// PaletteKey keys a palette listing or color lookup.
	PaletteKey(name string, count int) string
}

// ResolveKeyOpts are the request parameters that change a resolve response.
type ResolveKeyOpts struct {
	Format      string `json:"format"`
	Encoding    string `json:"encoding"`
	Selected    string `json:"selected"`
	Highlighted string `json:"highlighted"`
}

// DefaultKeyer hashes request components.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ResolveKey returns "resolve:<sha256>".
func (DefaultKeyer) ResolveKey(body []byte, opts ResolveKeyOpts) string {
	return hashKey("resolve", Hash(body), opts)
}

// PaletteKey returns "palette:<sha256>".
func (DefaultKeyer) PaletteKey(name string, count int) string {
	return hashKey("palette", name, count)
}

// ScopedKeyer prefixes every key of an inner keyer.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer uses
// [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ResolveKey returns the prefixed inner key.
func (k *ScopedKeyer) ResolveKey(body []byte, opts ResolveKeyOpts) string {
	return k.prefix + k.inner.ResolveKey(body, opts)
}

// PaletteKey returns the prefixed inner key.
func (k *ScopedKeyer) PaletteKey(name string, count int) string {
	return k.prefix + k.inner.PaletteKey(name, count)
}

// keyType extracts the key kind ("resolve", "palette") reported to hooks.
func keyType(key string) string {
	parts := strings.Split(key, ":")
	if len(parts) < 2 {
		return "unknown"
	}
	return parts[len(parts)-2]
}
