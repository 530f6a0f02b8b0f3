package style

import (
	"github.com/matzehuels/chartstyle/pkg/errors"
)

// State is the presentation mode of a drawn element.
type State int

const (
	Normal State = iota
	Highlighted
	Selected
	Muted
)

// AllStates lists every state in declaration order.
var AllStates = []State{Normal, Highlighted, Selected, Muted}

var stateNames = [...]string{"normal", "highlighted", "selected", "muted"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(b []byte) error {
	v, err := ParseState(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseState converts a state name back to a State.
func ParseState(name string) (State, error) {
	for i, n := range stateNames {
		if n == name {
			return State(i), nil
		}
	}
	return Normal, errors.New(errors.ErrCodeInvalidInput, "unknown element state %q", name)
}

// Interaction is the transient user interaction context. An empty key means
// unset. Callers create a fresh value per pointer event; the engine never
// retains it.
type Interaction struct {
	SelectedKey    string `json:"selected,omitempty" toml:"selected"`
	HighlightedKey string `json:"highlighted,omitempty" toml:"highlighted"`
}

// IsZero reports whether nothing is selected or highlighted.
func (ix Interaction) IsZero() bool { return ix.SelectedKey == "" && ix.HighlightedKey == "" }

// Select returns a copy with key selected.
func (ix Interaction) Select(key string) Interaction {
	ix.SelectedKey = key
	return ix
}

// Highlight returns a copy with key highlighted.
func (ix Interaction) Highlight(key string) Interaction {
	ix.HighlightedKey = key
	return ix
}

// ResolveState derives the state of column key. Selection dominates
// highlight: while any column is selected every other column is Muted.
func ResolveState(key string, ix Interaction) State {
	switch {
	case ix.SelectedKey != "" && ix.SelectedKey == key:
		return Selected
	case ix.SelectedKey != "":
		return Muted
	case ix.HighlightedKey != "" && ix.HighlightedKey == key:
		return Highlighted
	default:
		return Normal
	}
}

// StateStyling holds one property bundle per element state.
type StateStyling[T any] struct {
	Normal      T `json:"normal" toml:"normal"`
	Highlighted T `json:"highlighted" toml:"highlighted"`
	Selected    T `json:"selected" toml:"selected"`
	Muted       T `json:"muted" toml:"muted"`
}

// Get returns the bundle for s.
func (ss StateStyling[T]) Get(s State) T {
	switch s {
	case Highlighted:
		return ss.Highlighted
	case Selected:
		return ss.Selected
	case Muted:
		return ss.Muted
	default:
		return ss.Normal
	}
}

// Set stores v as the bundle for s.
func (ss *StateStyling[T]) Set(s State, v T) {
	switch s {
	case Highlighted:
		ss.Highlighted = v
	case Selected:
		ss.Selected = v
	case Muted:
		ss.Muted = v
	default:
		ss.Normal = v
	}
}

// Uniform returns a StateStyling with v in every state.
func Uniform[T any](v T) StateStyling[T] {
	return StateStyling[T]{Normal: v, Highlighted: v, Selected: v, Muted: v}
}
