package palette

import (
	"image/color"
	"regexp"
	"testing"

	"github.com/matzehuels/chartstyle/pkg/errors"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#a6cee3", "#a6cee3", false},
		{"#A6CEE3", "#a6cee3", false},
		{"#fff", "#ffffff", false},
		{" #1f78b4 ", "#1f78b4", false},

		{"", "", true},
		{"a6cee3", "", true},
		{"#a6cee", "", true},
		{"#gggggg", "", true},
		{"red", "", true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidColor) {
			t.Errorf("ParseColor(%q) code = %s", tt.in, errors.GetCode(err))
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFromColor(t *testing.T) {
	if got := FromColor(color.RGBA{0xa6, 0xce, 0xe3, 0xff}); got != "#a6cee3" {
		t.Errorf("FromColor = %s, want #a6cee3", got)
	}
	if got := FromColor(color.RGBA{}); got != Black {
		t.Errorf("FromColor(transparent) = %s, want %s", got, Black)
	}
}

func TestRGBA(t *testing.T) {
	if got, want := Color("#1f78b4").RGBA(), (color.RGBA{0x1f, 0x78, 0xb4, 0xff}); got != want {
		t.Errorf("RGBA() = %v, want %v", got, want)
	}
}

func TestLighten(t *testing.T) {
	hex := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	base := Color("#1f78b4")

	if got := Lighten(base, 0); got != base {
		t.Errorf("Lighten(c, 0) = %s, want %s", got, base)
	}
	if got := Lighten(base, 1); got != White {
		t.Errorf("Lighten(c, 1) = %s, want white", got)
	}
	if got := Lighten(base, 7); got != White {
		t.Errorf("Lighten(c, 7) = %s, want clamped to white", got)
	}

	l := Lighten(base, 0.25)
	if !hex.MatchString(string(l)) {
		t.Fatalf("Lighten produced %q", l)
	}
	if l == base {
		t.Error("Lighten(c, 0.25) returned the input color")
	}
	if Lighten(base, 0.25) != l {
		t.Error("Lighten is not deterministic")
	}

	b, lb := base.RGBA(), l.RGBA()
	if lb.R < b.R || lb.G < b.G || lb.B < b.B {
		t.Errorf("Lighten(%s) = %s is darker in some channel", base, l)
	}
}
