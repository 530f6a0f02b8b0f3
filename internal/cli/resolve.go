package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartstyle/pkg/errors"
	"github.com/matzehuels/chartstyle/pkg/palette"
	"github.com/matzehuels/chartstyle/pkg/render/sink"
	"github.com/matzehuels/chartstyle/pkg/style"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatSVG   = "svg"
)

// resolveCommand prints the resolved styles of every column.
func (c *CLI) resolveCommand() *cobra.Command {
	var opts chartOpts
	var format string

	cmd := &cobra.Command{
		Use:   "resolve <config.toml>",
		Short: "Resolve chart styles for an interaction",
		Long: `Resolve loads a chart configuration and prints the style bundle of every
column for the given interaction context.

Examples:
  chartstyle resolve chart.toml
  chartstyle resolve chart.toml --select in --chart line
  chartstyle resolve chart.toml --highlight out --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := style.ParseEncoding(opts.encoding)
			if err != nil {
				return err
			}
			ch, err := c.loadChart(args[0], opts)
			if err != nil {
				return err
			}
			prog := newProgress(c.Logger)
			cols, err := ch.resolve(enc, opts.interaction())
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Resolved %d columns", len(cols)))

			w := cmd.OutOrStdout()
			switch format {
			case formatJSON:
				data, err := sink.RenderJSON(cols,
					sink.WithJSONPalette(ch.styler.Allocator().Palette().Name()),
					sink.WithJSONEncoding(enc),
					sink.WithJSONInteraction(opts.interaction()),
					sink.WithJSONIndent(),
				)
				if err != nil {
					return err
				}
				fmt.Fprintln(w, string(data))
			case formatTable:
				ix := opts.interaction()
				fprintKeyValue(w, "Palette", ch.styler.Allocator().Palette().Name())
				fprintKeyValue(w, "Chart", string(enc))
				fprintKeyValue(w, "Selected", orDash(ix.SelectedKey))
				fprintKeyValue(w, "Highlighted", orDash(ix.HighlightedKey))
				fmt.Fprintln(w)
				writeResolvedTable(w, enc, cols)
			default:
				return errors.New(errors.ErrCodeInvalidInput, "unknown format %q (want table or json)", format)
			}
			return nil
		},
	}
	opts.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, json")
	return cmd
}

// chartColumns returns the primary color, opacity and width of the bundle
// for enc.
func chartColumns(enc style.Encoding, r style.Resolved) (palette.Color, float64, string) {
	switch enc {
	case style.EncodingLine:
		return r.Line.Stroke, r.Line.Opacity, fmt.Sprintf("%g %s", r.Line.StrokeWidth, r.Line.StrokeDasharray)
	case style.EncodingArea:
		return r.Area.Area.Fill, r.Area.Area.Opacity, fmt.Sprintf("%g %s", r.Area.Line.StrokeWidth, r.Area.Line.StrokeDasharray)
	case style.EncodingScatter:
		return r.Scatter.Fill, r.Scatter.Opacity, fmt.Sprintf("r=%g", r.Scatter.Radius)
	default:
		return r.Bar.Fill, r.Bar.Opacity, ""
	}
}

func resolvedRows(enc style.Encoding, cols []style.Resolved) [][]string {
	rows := make([][]string, 0, len(cols))
	for _, r := range cols {
		color, opacity, extra := chartColumns(enc, r)
		rows = append(rows, []string{
			r.Key,
			renderState(r.State),
			swatch(color),
			fmt.Sprintf("%.2f", opacity),
			extra,
			swatch(r.Legend.Symbol.Color()),
			swatch(r.Axis.LabelColor),
		})
	}
	return rows
}

func writeResolvedTable(w io.Writer, enc style.Encoding, cols []style.Resolved) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("Column", "State", string(enc), "Opacity", "Stroke", "Legend", "Axis").
		Rows(resolvedRows(enc, cols)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	fmt.Fprintln(w, t.Render())
}
