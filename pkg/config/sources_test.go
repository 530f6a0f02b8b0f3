package config

import (
	"strings"
	"testing"

	"github.com/matzehuels/chartstyle/pkg/errors"
	"github.com/matzehuels/chartstyle/pkg/style"
)

var withBarTable = minimal + barEntry("in") + barEntry("out")

func TestSourcesUseStaticTables(t *testing.T) {
	cfg, err := Parse([]byte(withBarTable))
	if err != nil {
		t.Fatal(err)
	}
	s, err := cfg.Styler(nil)
	if err != nil {
		t.Fatal(err)
	}
	src := cfg.Sources(s)
	if src.Bar.Kind() != style.KindStatic {
		t.Errorf("bar source = %s, want static", src.Bar.Kind())
	}
	if src.Line.Kind() != style.KindScheme {
		t.Errorf("line source = %s, want scheme", src.Line.Kind())
	}

	r, err := src.Resolve("in", style.EncodingBar, style.Interaction{SelectedKey: "in"})
	if err != nil {
		t.Fatal(err)
	}
	if r.Bar.Fill != "#333333" {
		t.Errorf("bar fill = %s, want static selected entry", r.Bar.Fill)
	}
	if r.Legend.Symbol.Color() != r.Bar.Fill {
		t.Errorf("legend symbol %s does not match bar %s", r.Legend.Symbol.Color(), r.Bar.Fill)
	}
	if r.Line.Stroke != "#a6cee3" {
		t.Errorf("line stroke = %s, want generated", r.Line.Stroke)
	}
}

func TestSourcesPartialStaticTable(t *testing.T) {
	_, err := Parse([]byte(minimal + barEntry("in")))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("err = %v, want INVALID_CONFIG", err)
	}
	if !strings.Contains(err.Error(), "styles.bar") || !strings.Contains(err.Error(), "out") {
		t.Errorf("error %q does not name the uncovered column", err)
	}
}

func TestSourcesGenerated(t *testing.T) {
	cfg, err := Parse([]byte(minimal))
	if err != nil {
		t.Fatal(err)
	}
	s, _ := cfg.Styler(nil)
	ix := style.Interaction{HighlightedKey: "out"}

	got, err := cfg.Sources(s).ResolveAll(s.Allocator().Keys(), style.EncodingLine, ix)
	if err != nil {
		t.Fatal(err)
	}
	want, err := s.ResolveAllColumns(style.EncodingLine, ix)
	if err != nil {
		t.Fatal(err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("column %s: %+v, want %+v", want[i].Key, got[i], want[i])
		}
	}
}
