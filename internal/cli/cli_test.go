package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/chartstyle/pkg/errors"
	"github.com/matzehuels/chartstyle/pkg/palette"
	"github.com/matzehuels/chartstyle/pkg/render/sink"
	"github.com/matzehuels/chartstyle/pkg/style"
)

const exampleChart = "../../examples/chart.toml"

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestResolveCommandJSON(t *testing.T) {
	out, err := execute(t, "resolve", exampleChart, "--select", "in", "--format", "json")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	var doc sink.Document
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if doc.Palette != palette.DefaultName {
		t.Errorf("palette = %q, want %q", doc.Palette, palette.DefaultName)
	}
	if doc.Interaction.SelectedKey != "in" {
		t.Errorf("selected = %q, want in", doc.Interaction.SelectedKey)
	}
	if len(doc.Columns) != 2 {
		t.Fatalf("got %d columns, want 2", len(doc.Columns))
	}

	in, out2 := doc.Columns[0], doc.Columns[1]
	if in.Key != "in" || in.State != style.Selected {
		t.Errorf("columns[0] = %s/%s, want in/selected", in.Key, in.State)
	}
	if out2.Key != "out" || out2.State != style.Muted {
		t.Errorf("columns[1] = %s/%s, want out/muted", out2.Key, out2.State)
	}
	if in.Bar.Fill != "#a6cee3" || in.Bar.Opacity != 1 {
		t.Errorf("in bar = %+v, want #a6cee3 at 1", in.Bar)
	}
	if got := in.Legend.Symbol.Color(); got != in.Bar.Fill {
		t.Errorf("legend symbol %s does not match bar fill %s", got, in.Bar.Fill)
	}
}

func TestResolveCommandTable(t *testing.T) {
	out, err := execute(t, "resolve", exampleChart, "--chart", "line")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	for _, want := range []string{"Column", "in", "out", "#a6cee3"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestResolveCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"unknown column", []string{"resolve", exampleChart, "--select", "nope"}, errors.ErrCodeUnknownColumn},
		{"unknown palette", []string{"resolve", exampleChart, "--palette", "nope"}, errors.ErrCodeUnknownPalette},
		{"missing file", []string{"resolve", "does-not-exist.toml"}, errors.ErrCodeFileNotFound},
		{"bad format", []string{"resolve", exampleChart, "--format", "xml"}, errors.ErrCodeInvalidInput},
		{"bad chart", []string{"resolve", exampleChart, "--chart", "pie"}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestPreviewCommand(t *testing.T) {
	dir := t.TempDir()

	svgPath := filepath.Join(dir, "chart.svg")
	if _, err := execute(t, "preview", exampleChart, "-o", svgPath, "--highlight", "out"); err != nil {
		t.Fatalf("preview svg: %v", err)
	}
	data, err := os.ReadFile(svgPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("<svg")) || !bytes.Contains(data, []byte(`data-state="highlighted"`)) {
		t.Errorf("unexpected svg:\n%.300s", data)
	}

	jsonPath := filepath.Join(dir, "chart.json")
	if _, err := execute(t, "preview", exampleChart, "-o", jsonPath); err != nil {
		t.Fatalf("preview json: %v", err)
	}
	data, err = os.ReadFile(jsonPath)
	if err != nil {
		t.Fatal(err)
	}
	if !json.Valid(data) {
		t.Errorf("invalid json output:\n%s", data)
	}

	_, err = execute(t, "preview", exampleChart, "-o", filepath.Join(dir, "chart.gif"))
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("gif output err = %v, want UNSUPPORTED", err)
	}
}

func TestPalettesCommand(t *testing.T) {
	out, err := execute(t, "palettes")
	if err != nil {
		t.Fatalf("palettes: %v", err)
	}
	if !strings.Contains(out, palette.DefaultName) || !strings.Contains(out, "default") {
		t.Errorf("palette list missing default palette:\n%s", out)
	}

	out, err = execute(t, "palettes", "show", palette.DefaultName, "-n", "2")
	if err != nil {
		t.Fatalf("palettes show: %v", err)
	}
	if !strings.Contains(out, "#a6cee3") || !strings.Contains(out, "#1f78b4") || strings.Contains(out, "#b2df8a") {
		t.Errorf("show -n 2 output:\n%s", out)
	}

	if _, err := execute(t, "palettes", "show", "nope"); !errors.Is(err, errors.ErrCodeUnknownPalette) {
		t.Errorf("show unknown err = %v", err)
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(out, appName) {
		t.Error("bash completion does not mention the command name")
	}
}

func TestClearDir(t *testing.T) {
	dir := t.TempDir()
	for _, p := range []string{"ab/one.json", "ab/two.json", "cd/three.json"} {
		path := filepath.Join(dir, p)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	n, err := clearDir(dir)
	if err != nil {
		t.Fatalf("clearDir: %v", err)
	}
	if n != 3 {
		t.Errorf("removed %d files, want 3", n)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("%d entries left in cache dir", len(entries))
	}

	if n, err := clearDir(filepath.Join(dir, "missing")); err != nil || n != 0 {
		t.Errorf("clearDir(missing) = %d, %v", n, err)
	}
}
