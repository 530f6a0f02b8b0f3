package style

import (
	"fmt"

	"github.com/matzehuels/chartstyle/pkg/errors"
	"github.com/matzehuels/chartstyle/pkg/observability"
	"github.com/matzehuels/chartstyle/pkg/scheme"
)

// Kind tags the payload held by a Source.
type Kind int

const (
	KindStatic Kind = iota + 1
	KindCallback
	KindScheme
)

func (k Kind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindCallback:
		return "callback"
	case KindScheme:
		return "scheme"
	}
	return "invalid"
}

// CallbackContext is handed to style callbacks. Datum is the caller's
// event or data payload and is nil when none was supplied.
type CallbackContext struct {
	Key         string
	Datum       any
	Interaction Interaction
	State       State
}

// Callback computes the complete style of column key for one draw.
type Callback[T any] func(ctx CallbackContext, key string) (T, error)

// Source is a tagged variant over the three ways of obtaining styles.
// The zero value is invalid; build one with [StaticTable], [FromCallback]
// or [FromScheme].
type Source[T any] struct {
	kind     Kind
	table    map[string]StateStyling[T]
	callback Callback[T]
	alloc    *scheme.Allocator
	build    Builder[T]
}

// StaticTable returns a source backed by caller-authored styles per column.
// The map is copied.
func StaticTable[T any](table map[string]StateStyling[T]) Source[T] {
	t := make(map[string]StateStyling[T], len(table))
	for k, v := range table {
		t[k] = v
	}
	return Source[T]{kind: KindStatic, table: t}
}

// FromCallback returns a source that invokes fn on every resolution.
func FromCallback[T any](fn Callback[T]) Source[T] {
	return Source[T]{kind: KindCallback, callback: fn}
}

// FromScheme returns a source generating styles from the allocator's colors
// with build.
func FromScheme[T any](a *scheme.Allocator, build Builder[T]) Source[T] {
	return Source[T]{kind: KindScheme, alloc: a, build: build}
}

// Kind returns the variant tag.
func (s Source[T]) Kind() Kind { return s.kind }

// Request identifies one resolution: a column, the current interaction and
// an optional datum for callbacks.
type Request struct {
	Key         string
	Interaction Interaction
	Datum       any
}

// Resolve returns the property bundle for req.Key from src.
//
// Static tables fail with MISSING_COLUMN_STYLE for unknown keys. Callback
// results are used verbatim after validation; a returned error, a panic or
// a malformed bundle is reported as STYLE_CALLBACK. Scheme sources fail
// with UNKNOWN_COLUMN for keys the allocator does not know.
func Resolve[T any](src Source[T], req Request) (T, error) {
	state := ResolveState(req.Key, req.Interaction)
	v, err := dispatch(src, req, state)
	observability.Style().OnResolve(src.kind.String(), req.Key, state.String(), err)
	return v, err
}

func dispatch[T any](src Source[T], req Request, state State) (T, error) {
	var zero T
	switch src.kind {
	case KindStatic:
		ss, ok := src.table[req.Key]
		if !ok {
			return zero, errors.MissingColumnStyle(req.Key)
		}
		return ss.Get(state), nil

	case KindCallback:
		if src.callback == nil {
			return zero, errors.New(errors.ErrCodeInvalidInput, "callback style source has no function")
		}
		return invoke(src.callback, CallbackContext{
			Key:         req.Key,
			Datum:       req.Datum,
			Interaction: req.Interaction,
			State:       state,
		}, req.Key)

	case KindScheme:
		if src.alloc == nil || src.build == nil {
			return zero, errors.New(errors.ErrCodeInvalidInput, "scheme style source needs an allocator and a builder")
		}
		col, err := src.alloc.Column(req.Key)
		if err != nil {
			return zero, err
		}
		c, err := src.alloc.ColorFor(req.Key)
		if err != nil {
			return zero, err
		}
		return src.build(c, col, state), nil
	}
	return zero, errors.New(errors.ErrCodeInvalidInput, "uninitialized style source")
}

// invoke runs a callback, converting panics and malformed results into
// STYLE_CALLBACK errors.
func invoke[T any](fn Callback[T], ctx CallbackContext, key string) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			v, err = zero, errors.StyleCallback(key, fmt.Errorf("panic: %v", r))
		}
	}()

	v, err = fn(ctx, key)
	if err != nil {
		var zero T
		return zero, errors.StyleCallback(key, err)
	}
	if val, ok := any(v).(validator); ok {
		if verr := val.Validate(); verr != nil {
			var zero T
			return zero, errors.StyleCallback(key, verr)
		}
	}
	return v, nil
}

// ResolveAll resolves every state of key from src. The interaction context
// is synthesized per state so callbacks observe the matching state.
func ResolveAll[T any](src Source[T], key string, datum any) (StateStyling[T], error) {
	var out StateStyling[T]
	for _, s := range AllStates {
		v, err := Resolve(src, Request{Key: key, Interaction: interactionFor(key, s), Datum: datum})
		if err != nil {
			return StateStyling[T]{}, err
		}
		out.Set(s, v)
	}
	return out, nil
}

// interactionFor builds an interaction context that puts key in state s.
func interactionFor(key string, s State) Interaction {
	switch s {
	case Highlighted:
		return Interaction{HighlightedKey: key}
	case Selected:
		return Interaction{SelectedKey: key}
	case Muted:
		// Any other selected key mutes key; "\x00" can never be a column key.
		return Interaction{SelectedKey: "\x00" + key}
	}
	return Interaction{}
}
