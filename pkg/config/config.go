package config

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/chartstyle/pkg/errors"
	"github.com/matzehuels/chartstyle/pkg/palette"
	"github.com/matzehuels/chartstyle/pkg/scheme"
	"github.com/matzehuels/chartstyle/pkg/style"
)

// Config is a chart style configuration.
type Config struct {
	Palette  string          `json:"palette,omitempty" toml:"palette"`
	Theme    Theme           `json:"theme" toml:"theme"`
	Palettes []PaletteDef    `json:"palettes,omitempty" toml:"palettes"`
	Columns  []scheme.Column `json:"columns" toml:"columns"`
	Styles   Styles          `json:"styles" toml:"styles"`
}

// Theme mirrors [style.Theme]. A nil Lighten selects the default ratio;
// an explicit 0 disables the highlight transform.
type Theme struct {
	Lighten       *float64      `json:"lighten,omitempty" toml:"lighten"`
	MutedColor    palette.Color `json:"muted_color,omitempty" toml:"muted_color"`
	TextColor     palette.Color `json:"text_color,omitempty" toml:"text_color"`
	ScatterRadius float64       `json:"scatter_radius,omitempty" toml:"scatter_radius"`
}

// PaletteDef registers an extra palette.
type PaletteDef struct {
	Name   string          `json:"name" toml:"name"`
	Colors []palette.Color `json:"colors" toml:"colors"`
}

// Styles holds optional static style tables per encoding, keyed by column.
type Styles struct {
	Line    map[string]style.StateStyling[style.LineStyle]    `json:"line,omitempty" toml:"line"`
	Area    map[string]style.StateStyling[style.AreaStyle]    `json:"area,omitempty" toml:"area"`
	Bar     map[string]style.StateStyling[style.BarStyle]     `json:"bar,omitempty" toml:"bar"`
	Scatter map[string]style.StateStyling[style.ScatterStyle] `json:"scatter,omitempty" toml:"scatter"`
}

// Encodings returns the encodings that have a static table, in
// [style.Encodings] order.
func (s Styles) Encodings() []style.Encoding {
	var out []style.Encoding
	for _, enc := range style.Encodings {
		if s.tableLen(enc) > 0 {
			out = append(out, enc)
		}
	}
	return out
}

func (s Styles) tableLen(enc style.Encoding) int {
	switch enc {
	case style.EncodingLine:
		return len(s.Line)
	case style.EncodingArea:
		return len(s.Area)
	case style.EncodingBar:
		return len(s.Bar)
	case style.EncodingScatter:
		return len(s.Scatter)
	}
	return 0
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates a TOML configuration.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseJSON decodes and validates a JSON configuration with the same shape.
func ParseJSON(data []byte) (*Config, error) {
	var cfg Config
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode json")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every section and normalizes colors in place.
func (c *Config) Validate() error {
	if c.Palette != "" {
		if err := errors.ValidatePaletteName(c.Palette); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "palette")
		}
	}
	for i := range c.Palettes {
		p, err := palette.New(c.Palettes[i].Name, c.Palettes[i].Colors...)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "palettes[%d]", i)
		}
		c.Palettes[i].Colors = p.Colors()
	}

	if len(c.Columns) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "no columns configured")
	}
	keys := make(map[string]bool, len(c.Columns))
	for i := range c.Columns {
		col, err := c.Columns[i].Validate()
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "columns[%d]", i)
		}
		if keys[col.Key] {
			return errors.DuplicateColumnKey(col.Key)
		}
		keys[col.Key] = true
		c.Columns[i] = col
	}

	th, err := c.Theme.resolve().Validate()
	if err != nil {
		return err
	}
	c.Theme.MutedColor, c.Theme.TextColor = th.MutedColor, th.TextColor

	if err := validateTable("line", c.Styles.Line, keys); err != nil {
		return err
	}
	if err := validateTable("area", c.Styles.Area, keys); err != nil {
		return err
	}
	if err := validateTable("bar", c.Styles.Bar, keys); err != nil {
		return err
	}
	return validateTable("scatter", c.Styles.Scatter, keys)
}

type validator interface{ Validate() error }

// validateTable requires every state of every entry to be a complete bundle
// and a non-empty table to cover exactly the configured columns.
func validateTable[T validator](enc string, table map[string]style.StateStyling[T], columns map[string]bool) error {
	if len(table) == 0 {
		return nil
	}
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var missing []string
	for c := range columns {
		if _, ok := table[c]; !ok {
			missing = append(missing, c)
		}
	}
	sort.Strings(missing)

	for _, key := range keys {
		if !columns[key] {
			return errors.New(errors.ErrCodeInvalidConfig, "styles.%s.%s: %q is not a configured column", enc, key, key)
		}
		ss := table[key]
		for _, s := range style.AllStates {
			if err := ss.Get(s).Validate(); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidConfig, err, "styles.%s.%s.%s", enc, key, s)
			}
		}
	}
	if len(missing) > 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "styles.%s: no entry for column(s) %s", enc, strings.Join(missing, ", "))
	}
	return nil
}

// resolve converts the section into a [style.Theme] with defaults applied.
func (t Theme) resolve() style.Theme {
	th := style.Theme{
		Lighten:       style.DefaultLighten,
		MutedColor:    t.MutedColor,
		TextColor:     t.TextColor,
		ScatterRadius: t.ScatterRadius,
	}
	if t.Lighten != nil {
		th.Lighten = *t.Lighten
	}
	return th.WithDefaults()
}

// StyleTheme returns the configured theme with defaults applied.
func (c *Config) StyleTheme() style.Theme { return c.Theme.resolve() }

// Registry returns a clone of base with the configured palettes registered.
// A nil base uses [palette.Default].
func (c *Config) Registry(base *palette.Registry) (*palette.Registry, error) {
	if base == nil {
		base = palette.Default()
	}
	reg := base.Clone()
	for _, p := range c.Palettes {
		if err := reg.Register(p.Name, p.Colors...); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "register palette %q", p.Name)
		}
	}
	return reg, nil
}

// Allocator builds the column allocator against reg.
func (c *Config) Allocator(reg *palette.Registry) (*scheme.Allocator, error) {
	return scheme.New(c.Columns, scheme.WithRegistry(reg), scheme.WithPalette(c.Palette))
}

// Styler builds the registry, allocator and styler in one step.
func (c *Config) Styler(base *palette.Registry) (*style.Styler, error) {
	reg, err := c.Registry(base)
	if err != nil {
		return nil, err
	}
	a, err := c.Allocator(reg)
	if err != nil {
		return nil, err
	}
	return style.NewStyler(a, style.WithTheme(c.StyleTheme())), nil
}
