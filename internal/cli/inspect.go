package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/layouteng/gridsnap/pkg/grid"
)

// inspectCommand creates the inspect command for displaying a layout's
// grid structure.
func (c *CLI) inspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [layout.toml]",
		Short: "Show a layout's grid structure and child placements",
		Long: `Show a layout's grid structure and child placements.

The inspect command loads a layout document and prints the container's grid
lines, declared and effective row/column counts, and a table of every child
with its placement attributes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(args[0])
		},
	}
	return cmd
}

func (c *CLI) runInspect(input string) error {
	container, err := LoadDocument(input)
	if err != nil {
		return err
	}
	s, err := grid.NewModel(container).Snapshot()
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render(container.Type()) + " " + StyleDim.Render(input))
	printNewline()
	printKeyValue("bounds", fmt.Sprintf("%gx%g at (%g, %g)",
		s.Bounds.Width(), s.Bounds.Height(), s.Bounds.Left, s.Bounds.Top))
	printKeyValue("columns", fmt.Sprintf("%d (%d declared)", s.ActualColumns(), s.DeclaredColumns))
	printKeyValue("rows", fmt.Sprintf("%d (%d declared)", s.ActualRows(), s.DeclaredRows))
	printKeyValue("col lines", joinLines(s.ColumnLines))
	printKeyValue("row lines", joinLines(s.RowLines))
	printNewline()

	if len(s.Children) == 0 {
		printInfo("no children")
		return nil
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	rows := make([][]string, 0, len(s.Children))
	for _, ch := range s.Children {
		rows = append(rows, []string{
			ch.Node.Type(),
			strconv.Itoa(ch.Row),
			strconv.Itoa(ch.Column),
			strconv.Itoa(ch.RowSpan),
			strconv.Itoa(ch.ColumnSpan),
			ch.Gravity,
			fmt.Sprintf("%gx%g at (%g, %g)",
				ch.Node.Bounds().Width(), ch.Node.Bounds().Height(),
				ch.Node.Bounds().Left, ch.Node.Bounds().Top),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Type", "Row", "Col", "RSpan", "CSpan", "Gravity", "Bounds").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			if col == 5 || col == 6 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	fmt.Println(t.Render())
	return nil
}
