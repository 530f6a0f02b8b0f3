// Package cli implements the chartstyle command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartstyle/pkg/buildinfo"
	"github.com/matzehuels/chartstyle/pkg/config"
	"github.com/matzehuels/chartstyle/pkg/observability"
	"github.com/matzehuels/chartstyle/pkg/palette"
	"github.com/matzehuels/chartstyle/pkg/style"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "chartstyle"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Registry is the base palette registry; nil means the builtin one.
	Registry *palette.Registry
}

// New creates a new CLI instance with a default logger. Style engine events
// are forwarded to the logger at debug level.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level)}
	observability.SetStyleHooks(&logHooks{logger: c.Logger})
	observability.SetCacheHooks(&logHooks{logger: c.Logger})
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Chartstyle resolves consistent chart styles from a palette",
		Long:         `Chartstyle assigns palette colors to data columns and resolves line, area, bar, scatter, legend and axis styles for every interaction state, so legends always match the charts they annotate.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.palettesCommand())
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration Loading
// =============================================================================

// chartOpts are the flags shared by commands that load a chart configuration.
type chartOpts struct {
	palette   string
	selected  string
	highlight string
	encoding  string
}

func (o *chartOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.palette, "palette", "p", "", "override the configured palette")
	cmd.Flags().StringVar(&o.selected, "select", "", "column key to select")
	cmd.Flags().StringVar(&o.highlight, "highlight", "", "column key to highlight")
	cmd.Flags().StringVar(&o.encoding, "chart", string(style.EncodingBar), "chart encoding: line, area, bar, scatter")
}

func (o chartOpts) interaction() style.Interaction {
	return style.Interaction{SelectedKey: o.selected, HighlightedKey: o.highlight}
}

// chart is a loaded configuration ready for resolution.
type chart struct {
	cfg     *config.Config
	styler  *style.Styler
	sources config.Sources
}

// loadChart loads path and validates the interaction keys against it.
func (c *CLI) loadChart(path string, o chartOpts) (*chart, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if o.palette != "" {
		cfg.Palette = o.palette
	}
	s, err := cfg.Styler(c.Registry)
	if err != nil {
		return nil, err
	}
	for _, k := range []string{o.selected, o.highlight} {
		if k == "" {
			continue
		}
		if _, err := s.Allocator().Column(k); err != nil {
			return nil, err
		}
	}
	c.Logger.Debug("loaded chart", "path", path, "palette", s.Allocator().Palette().Name(), "columns", s.Allocator().NumColumns())
	return &chart{cfg: cfg, styler: s, sources: cfg.Sources(s)}, nil
}

// resolve resolves every column for ix.
func (ch *chart) resolve(enc style.Encoding, ix style.Interaction) ([]style.Resolved, error) {
	return ch.sources.ResolveAll(ch.styler.Allocator().Keys(), enc, ix)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/chartstyle/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
