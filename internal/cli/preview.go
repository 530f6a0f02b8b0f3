package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartstyle/pkg/errors"
	"github.com/matzehuels/chartstyle/pkg/render/sink"
	"github.com/matzehuels/chartstyle/pkg/style"
)

// previewOpts holds the flags of the preview command.
type previewOpts struct {
	chartOpts
	output string
	title  string
	width  float64
	scale  float64
}

// previewCommand renders a preview of every encoding to SVG or JSON.
func (c *CLI) previewCommand() *cobra.Command {
	var opts previewOpts

	cmd := &cobra.Command{
		Use:   "preview <config.toml>",
		Short: "Render a preview of the resolved styles",
		Long: `Preview draws a line, area, bar and scatter panel plus a legend for every
column of a chart configuration, using the resolved styles verbatim.

The output format follows the extension of --output (.svg, .json, .png or
.pdf). PNG and PDF output require rsvg-convert from librsvg.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := style.ParseEncoding(opts.encoding)
			if err != nil {
				return err
			}
			ch, err := c.loadChart(args[0], opts.chartOpts)
			if err != nil {
				return err
			}
			cols, err := ch.resolve(enc, opts.interaction())
			if err != nil {
				return err
			}

			output := opts.output
			if output == "" {
				output = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0])) + ".svg"
			}
			title := opts.title
			if title == "" {
				title = ch.styler.Allocator().Palette().Name()
			}

			svgOpts := []sink.SVGOption{sink.WithTitle(title), sink.WithWidth(opts.width)}
			var data []byte
			switch strings.ToLower(filepath.Ext(output)) {
			case ".svg":
				data = sink.RenderSVG(cols, svgOpts...)
			case ".json":
				data, err = sink.RenderJSON(cols,
					sink.WithJSONPalette(ch.styler.Allocator().Palette().Name()),
					sink.WithJSONEncoding(enc),
					sink.WithJSONInteraction(opts.interaction()),
					sink.WithJSONIndent(),
				)
				if err != nil {
					return err
				}
			case ".png":
				svg := sink.RenderSVG(cols, svgOpts...)
				if data, err = sink.ToPNG(cmd.Context(), svg, opts.scale); err != nil {
					return err
				}
			case ".pdf":
				svg := sink.RenderSVG(cols, svgOpts...)
				if data, err = sink.ToPDF(cmd.Context(), svg); err != nil {
					return err
				}
			default:
				return errors.New(errors.ErrCodeUnsupported, "unsupported output %q (want .svg, .json, .png or .pdf)", output)
			}

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Rendered %d columns", len(cols))
			printFile(output)
			return nil
		},
	}
	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (.svg, .json, .png, .pdf)")
	cmd.Flags().StringVar(&opts.title, "title", "", "caption (default: palette name)")
	cmd.Flags().Float64Var(&opts.width, "width", 640, "SVG width in pixels")
	cmd.Flags().Float64Var(&opts.scale, "scale", 2, "PNG scale factor")
	return cmd
}
