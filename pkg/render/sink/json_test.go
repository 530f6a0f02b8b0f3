package sink

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/chartstyle/pkg/style"
)

func TestRenderJSON(t *testing.T) {
	ix := style.Interaction{HighlightedKey: "out"}
	cols := resolved(t, style.EncodingLine, ix)

	data, err := RenderJSON(cols,
		WithJSONPalette("Paired"),
		WithJSONEncoding(style.EncodingLine),
		WithJSONInteraction(ix),
	)
	if err != nil {
		t.Fatal(err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Palette != "Paired" || doc.Encoding != style.EncodingLine || doc.Interaction != ix {
		t.Errorf("header = %+v", doc)
	}
	if len(doc.Columns) != 2 {
		t.Fatalf("columns = %d", len(doc.Columns))
	}
	for i := range cols {
		if doc.Columns[i] != cols[i] {
			t.Errorf("column %d = %+v, want %+v", i, doc.Columns[i], cols[i])
		}
	}
	if !strings.Contains(string(data), `"state":"highlighted"`) {
		t.Error("state not encoded as text")
	}
}

func TestRenderJSONEmpty(t *testing.T) {
	data, err := RenderJSON(nil, WithJSONIndent())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"columns": []`) {
		t.Errorf("empty columns not encoded as array: %s", data)
	}
}
