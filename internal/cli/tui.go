package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/chartstyle/pkg/config"
	"github.com/matzehuels/chartstyle/pkg/style"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listErrorStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// ExplorerModel - Interactive style explorer
// =============================================================================

// ExplorerModel is the bubbletea model of the explore command. The cursor
// row is the highlighted column; enter toggles selection of that column.
// Styles are re-resolved after every event.
type ExplorerModel struct {
	Sources  config.Sources
	Keys     []string
	Palette  string
	Cursor   int
	Encoding int
	Selected string

	Resolved []style.Resolved
	Err      error
}

// NewExplorerModel creates an explorer over keys.
func NewExplorerModel(src config.Sources, keys []string, paletteName string) ExplorerModel {
	m := ExplorerModel{Sources: src, Keys: keys, Palette: paletteName, Encoding: encodingIndex(style.EncodingBar)}
	m.resolve()
	return m
}

func encodingIndex(enc style.Encoding) int {
	for i, e := range style.Encodings {
		if e == enc {
			return i
		}
	}
	return 0
}

// Interaction returns the current interaction context.
func (m ExplorerModel) Interaction() style.Interaction {
	ix := style.Interaction{SelectedKey: m.Selected}
	if len(m.Keys) > 0 {
		ix.HighlightedKey = m.Keys[m.Cursor]
	}
	return ix
}

func (m ExplorerModel) encoding() style.Encoding { return style.Encodings[m.Encoding] }

func (m *ExplorerModel) resolve() {
	m.Resolved, m.Err = m.Sources.ResolveAll(m.Keys, m.encoding(), m.Interaction())
}

func (m ExplorerModel) Init() tea.Cmd {
	return nil
}

func (m ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Keys)-1 {
			m.Cursor++
		}
	case "enter", " ":
		if len(m.Keys) == 0 {
			return m, nil
		}
		if k := m.Keys[m.Cursor]; m.Selected == k {
			m.Selected = ""
		} else {
			m.Selected = k
		}
	case "esc":
		m.Selected = ""
	case "tab":
		m.Encoding = (m.Encoding + 1) % len(style.Encodings)
	case "shift+tab":
		m.Encoding = (m.Encoding + len(style.Encodings) - 1) % len(style.Encodings)
	default:
		return m, nil
	}
	m.resolve()
	return m, nil
}

func (m ExplorerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Explore " + m.Palette))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ highlight  ⏎ select  esc clear  tab chart  q quit"))
	b.WriteString("\n\n")

	if m.Err != nil {
		b.WriteString(listErrorStyle.Render(m.Err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	rows := resolvedRows(m.encoding(), m.Resolved)
	for i := range rows {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows[i] = append([]string{cursor}, rows[i]...)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("", "Column", "State", string(m.encoding()), "Opacity", "Stroke", "Legend", "Axis").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if row == m.Cursor && col <= 1 {
				return listSelectedStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	ix := m.Interaction()
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  chart=%s  selected=%s  highlighted=%s",
		m.encoding(), orDash(ix.SelectedKey), orDash(ix.HighlightedKey))))
	b.WriteString("\n")
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
