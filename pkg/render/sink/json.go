package sink

import (
	"encoding/json"

	"github.com/matzehuels/chartstyle/pkg/style"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	palette     string
	encoding    style.Encoding
	interaction style.Interaction
	indent      bool
}

// WithJSONPalette records the palette name the columns were colored from.
func WithJSONPalette(name string) JSONOption { return func(r *jsonRenderer) { r.palette = name } }

// WithJSONEncoding records the encoding legend entries annotate.
func WithJSONEncoding(enc style.Encoding) JSONOption {
	return func(r *jsonRenderer) { r.encoding = enc }
}

// WithJSONInteraction records the interaction context of the bundles.
func WithJSONInteraction(ix style.Interaction) JSONOption {
	return func(r *jsonRenderer) { r.interaction = ix }
}

// WithJSONIndent pretty-prints the output.
func WithJSONIndent() JSONOption { return func(r *jsonRenderer) { r.indent = true } }

// Document is the JSON output of [RenderJSON].
type Document struct {
	Palette     string            `json:"palette,omitempty"`
	Encoding    style.Encoding    `json:"encoding,omitempty"`
	Interaction style.Interaction `json:"interaction"`
	Columns     []style.Resolved  `json:"columns"`
}

// RenderJSON exports the resolved bundles.
func RenderJSON(cols []style.Resolved, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}
	if cols == nil {
		cols = []style.Resolved{}
	}
	doc := Document{
		Palette:     r.palette,
		Encoding:    r.encoding,
		Interaction: r.interaction,
		Columns:     cols,
	}
	if r.indent {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}
