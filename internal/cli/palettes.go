package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartstyle/pkg/palette"
)

func (c *CLI) registry() *palette.Registry {
	if c.Registry != nil {
		return c.Registry
	}
	return palette.Default()
}

// palettesCommand lists registered palettes or shows one of them.
func (c *CLI) palettesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palettes",
		Short: "List registered palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := c.registry()
			rows := [][]string{}
			for _, name := range reg.Names() {
				p, err := reg.Lookup(name)
				if err != nil {
					return err
				}
				marker := ""
				if name == palette.DefaultName {
					marker = "default"
				}
				rows = append(rows, []string{name, fmt.Sprint(p.Len()), swatchStrip(p.Colors()), marker})
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(styleBorder).
				Headers("Palette", "Colors", "", "").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return styleHeader
					}
					if col == 3 {
						return StyleDim
					}
					return lipgloss.NewStyle()
				})
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
	cmd.AddCommand(c.paletteShowCommand())
	return cmd
}

func (c *CLI) paletteShowCommand() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show the colors of a palette",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return c.registry().Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.registry().Lookup(args[0])
			if err != nil {
				return err
			}
			colors := p.Colors()
			if cmd.Flags().Changed("count") {
				colors = p.Head(count)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, StyleTitle.Render(p.Name()))
			for i, col := range colors {
				fmt.Fprintf(w, "%3d  %s\n", i, swatch(col))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "show only the first n colors")
	return cmd
}
