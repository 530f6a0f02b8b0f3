package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/chartstyle/pkg/errors"
	"github.com/matzehuels/chartstyle/pkg/palette"
	"github.com/matzehuels/chartstyle/pkg/style"
)

const minimal = `
[[columns]]
key = "in"

[[columns]]
key = "out"
`

func TestParseMinimal(t *testing.T) {
	cfg, err := Parse([]byte(minimal))
	if err != nil {
		t.Fatal(err)
	}
	s, err := cfg.Styler(nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Allocator().Palette().Name(); got != palette.DefaultName {
		t.Errorf("palette = %q, want %q", got, palette.DefaultName)
	}
	if got := cfg.StyleTheme(); got != style.DefaultTheme() {
		t.Errorf("theme = %+v, want defaults", got)
	}
	bar, err := s.BarChartStyle("in", style.Interaction{})
	if err != nil {
		t.Fatal(err)
	}
	if bar.Fill != "#a6cee3" {
		t.Errorf("in fill = %s", bar.Fill)
	}
}

func TestParseFull(t *testing.T) {
	cfg, err := Parse([]byte(`
palette = "ops"

[theme]
lighten = 0
muted_color = "#ABC"

[[palettes]]
name = "ops"
colors = ["#112233", "#445566"]

[[columns]]
key = "in"
color = "#FF0000"
selected_color = "#00ff00"
width = 2
dashed = true

[[columns]]
key = "out"

[[columns]]
key = "err"
`))
	if err != nil {
		t.Fatal(err)
	}

	th := cfg.StyleTheme()
	if th.Lighten != 0 {
		t.Errorf("explicit lighten = 0 not kept: %v", th.Lighten)
	}
	if th.MutedColor != "#aabbcc" {
		t.Errorf("muted color = %s, want normalized #aabbcc", th.MutedColor)
	}
	if cfg.Columns[0].Color != "#ff0000" {
		t.Errorf("column color = %s, want normalized", cfg.Columns[0].Color)
	}

	reg, err := cfg.Registry(nil)
	if err != nil {
		t.Fatal(err)
	}
	if palette.Default().Has("ops") {
		t.Error("custom palette leaked into the default registry")
	}
	a, err := cfg.Allocator(reg)
	if err != nil {
		t.Fatal(err)
	}
	for key, want := range map[string]palette.Color{"in": "#ff0000", "out": "#445566", "err": "#112233"} {
		if got, _ := a.ColorFor(key); got != want {
			t.Errorf("ColorFor(%q) = %s, want %s", key, got, want)
		}
	}
}

func barEntry(key string) string {
	return fmt.Sprintf(`
[styles.bar.%s]
normal      = { fill = "#111111", opacity = 0.8 }
highlighted = { fill = "#222222", opacity = 1.0 }
selected    = { fill = "#333333", opacity = 1.0 }
muted       = { fill = "#444444", opacity = 0.5 }
`, key)
}

func lineEntry(key, dash string) string {
	return fmt.Sprintf(`
[styles.line.%s]
normal      = { stroke = "#111111", fill = "none", stroke_width = 1, stroke_dasharray = %q, opacity = 1 }
highlighted = { stroke = "#222222", fill = "none", stroke_width = 1, opacity = 1 }
selected    = { stroke = "#333333", fill = "none", stroke_width = 1, opacity = 1 }
muted       = { stroke = "#444444", fill = "none", stroke_width = 1, opacity = 0.4 }
`, key, dash)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
		code errors.Code
	}{
		{"bad toml", `columns = [`, errors.ErrCodeInvalidConfig},
		{"unknown key", minimal + "\ncolour = 1\n", errors.ErrCodeInvalidConfig},
		{"no columns", `palette = "Paired"`, errors.ErrCodeInvalidConfig},
		{"duplicate key", minimal + "\n[[columns]]\nkey = \"in\"\n", errors.ErrCodeDuplicateColumnKey},
		{"bad column color", "[[columns]]\nkey = \"in\"\ncolor = \"red\"\n", errors.ErrCodeInvalidConfig},
		{"negative width", "[[columns]]\nkey = \"in\"\nwidth = -1\n", errors.ErrCodeInvalidConfig},
		{"lighten out of range", minimal + "\n[theme]\nlighten = 2\n", errors.ErrCodeInvalidConfig},
		{"empty palette", minimal + "\n[[palettes]]\nname = \"x\"\ncolors = []\n", errors.ErrCodeInvalidConfig},
		{"style for unknown column", minimal + `
[styles.bar.typo]
normal = { fill = "#111111", opacity = 1 }
`, errors.ErrCodeInvalidConfig},
		{"incomplete static entry", minimal + `
[styles.bar.in]
normal = { fill = "#111111", opacity = 1 }
`, errors.ErrCodeInvalidConfig},
		{"static table missing a column", minimal + barEntry("in"), errors.ErrCodeInvalidConfig},
		{"markup in dash pattern", minimal + lineEntry("in", `"/><script>alert(1)</script><x a="`) + lineEntry("out", ""), errors.ErrCodeInvalidConfig},
		{"negative dash length", minimal + lineEntry("in", "4,-2") + lineEntry("out", ""), errors.ErrCodeInvalidConfig},
		{"infinite stroke width", minimal + `
[styles.line.in]
normal      = { stroke = "#111111", stroke_width = inf, opacity = 1 }
highlighted = { stroke = "#111111", stroke_width = 1, opacity = 1 }
selected    = { stroke = "#111111", stroke_width = 1, opacity = 1 }
muted       = { stroke = "#111111", stroke_width = 1, opacity = 1 }
` + lineEntry("out", ""), errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.toml))
			if !errors.Is(err, tt.code) {
				t.Fatalf("err = %v, want %s", err, tt.code)
			}
			if cfg != nil {
				t.Error("config returned alongside error")
			}
		})
	}
}

func TestUnknownPalette(t *testing.T) {
	cfg, err := Parse([]byte(`palette = "Nope"` + minimal))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.Styler(nil); !errors.Is(err, errors.ErrCodeUnknownPalette) {
		t.Errorf("err = %v, want UNKNOWN_PALETTE", err)
	}
}

func TestRegisterExistingPalette(t *testing.T) {
	cfg, err := Parse([]byte(minimal + "\n[[palettes]]\nname = \"Paired\"\ncolors = [\"#000000\"]\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.Registry(nil); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("err = %v, want INVALID_CONFIG", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.toml")
	if err := os.WriteFile(path, []byte(minimal), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Columns) != 2 {
		t.Errorf("columns = %d", len(cfg.Columns))
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file err = %v", err)
	}
}

func TestLoadExamples(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "*.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Skip("no example configurations")
	}
	for _, p := range paths {
		cfg, err := Load(p)
		if err != nil {
			t.Errorf("%s: %v", p, err)
			continue
		}
		if _, err := cfg.Styler(nil); err != nil {
			t.Errorf("%s: %v", p, err)
		}
	}
}

func TestParseJSON(t *testing.T) {
	cfg, err := ParseJSON([]byte(`{"palette":"Set2","theme":{"lighten":0.5},"columns":[{"key":"a"},{"key":"b","dashed":true}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.StyleTheme().Lighten != 0.5 || !cfg.Columns[1].Dashed {
		t.Errorf("decoded %+v", cfg)
	}

	_, err = ParseJSON([]byte(`{"columns":[{"key":"a"}],"extra":true}`))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("unknown field err = %v", err)
	}
	_, err = ParseJSON([]byte(`{"columns":[{"key":"a"},{"key":"a"}]}`))
	if !errors.Is(err, errors.ErrCodeDuplicateColumnKey) {
		t.Errorf("duplicate err = %v", err)
	}
}

func TestStylesEncodings(t *testing.T) {
	cfg, err := Parse([]byte(minimal + `
[styles.line.in]
normal      = { stroke = "#111111", fill = "none", stroke_width = 1, opacity = 1 }
highlighted = { stroke = "#222222", fill = "none", stroke_width = 1, opacity = 1 }
selected    = { stroke = "#333333", fill = "none", stroke_width = 1, opacity = 1 }
muted       = { stroke = "#444444", fill = "none", stroke_width = 1, opacity = 0.4 }
` + lineEntry("out", "2 1")))
	if err != nil {
		t.Fatal(err)
	}
	got := cfg.Styles.Encodings()
	if len(got) != 1 || got[0] != style.EncodingLine {
		t.Errorf("Encodings() = %v", got)
	}
	if !strings.Contains(string(cfg.Styles.Line["in"].Muted.Stroke), "444444") {
		t.Errorf("muted stroke = %s", cfg.Styles.Line["in"].Muted.Stroke)
	}
}
