package cli

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartstyle/pkg/style"
)

// exploreCommand opens the interactive explorer.
func (c *CLI) exploreCommand() *cobra.Command {
	var opts chartOpts

	cmd := &cobra.Command{
		Use:   "explore <config.toml>",
		Short: "Interactively highlight and select columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := style.ParseEncoding(opts.encoding)
			if err != nil {
				return err
			}
			ch, err := c.loadChart(args[0], opts)
			if err != nil {
				return err
			}
			a := ch.styler.Allocator()
			m := NewExplorerModel(ch.sources, a.Keys(), a.Palette().Name())
			m.Encoding = encodingIndex(enc)
			m.Selected = opts.selected
			if i := slices.Index(m.Keys, opts.highlight); i >= 0 {
				m.Cursor = i
			}
			m.resolve()

			_, err = tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithOutput(cmd.OutOrStdout())).Run()
			return err
		},
	}
	opts.register(cmd)
	return cmd
}
