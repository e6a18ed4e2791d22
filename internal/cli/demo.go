package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/layouteng/gridsnap/pkg/drop"
	"github.com/layouteng/gridsnap/pkg/geom"
	"github.com/layouteng/gridsnap/pkg/match"
	"github.com/layouteng/gridsnap/pkg/tree"
)

// demoCommand creates the demo command: an interactive drag session in
// the terminal.
func (c *CLI) demoCommand() *cobra.Command {
	var (
		configPath    string
		output        string
		elemType      string
		width, height float64
		baseline      float64
		step          float64
		gridMode      bool
	)

	cmd := &cobra.Command{
		Use:   "demo [layout.toml]",
		Short: "Interactively drag an element over a layout",
		Long: `Interactively drag an element over a layout.

The demo command opens a terminal session where a phantom element follows the
arrow keys over the loaded layout. The live match feedback is exactly what
resolve reports; enter commits the drop, s writes the document, q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			opts := cfg.Match
			if gridMode {
				opts.GridMode = true
			}
			container, err := LoadDocument(args[0])
			if err != nil {
				return err
			}
			if output == "" {
				output = args[0]
			}

			m := newDemoModel(container, opts, demoElement{
				typeName: elemType,
				width:    width,
				height:   height,
				baseline: baseline,
			}, step, output)

			final, err := tea.NewProgram(m).Run()
			if err != nil {
				return err
			}
			dm, ok := final.(demoModel)
			if !ok {
				return nil
			}
			if dm.err != nil {
				return dm.err
			}
			if dm.saved {
				printSuccess("Layout saved")
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file path")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file for saving (default: overwrite input)")
	cmd.Flags().StringVarP(&elemType, "type", "t", "button", "element type to drag")
	cmd.Flags().Float64VarP(&width, "width", "w", 48, "element width")
	cmd.Flags().Float64Var(&height, "height", 24, "element height")
	cmd.Flags().Float64Var(&baseline, "baseline", -1, "element baseline offset from its top (-1: none)")
	cmd.Flags().Float64Var(&step, "step", 4, "pixels moved per keypress")
	cmd.Flags().BoolVar(&gridMode, "grid-mode", false, "use discrete cell-based placement")

	return cmd
}

// =============================================================================
// demoModel - Interactive drag session
// =============================================================================

// demoElement describes the phantom element being dragged.
type demoElement struct {
	typeName string
	width    float64
	height   float64
	baseline float64
}

// demoModel is the bubbletea model for the interactive drag session.
type demoModel struct {
	handler *drop.Handler
	elem    demoElement
	rect    geom.Rect
	step    float64
	output  string

	feedback drop.Feedback
	dropped  int
	saved    bool
	err      error
}

func newDemoModel(container tree.Node, opts match.Options, elem demoElement, step float64, output string) demoModel {
	if step <= 0 {
		step = 4
	}
	m := demoModel{
		handler: drop.NewHandler(container, opts, nil),
		elem:    elem,
		rect:    geom.NewRect(container.Bounds().Left, container.Bounds().Top, elem.width, elem.height),
		step:    step,
		output:  output,
	}
	m.recompute()
	return m
}

func (m demoModel) Init() tea.Cmd {
	return nil
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		m.rect = m.rect.Translate(0, -m.step)
		m.recompute()
	case "down", "j":
		m.rect = m.rect.Translate(0, m.step)
		m.recompute()
	case "left", "h":
		m.rect = m.rect.Translate(-m.step, 0)
		m.recompute()
	case "right", "l":
		m.rect = m.rect.Translate(m.step, 0)
		m.recompute()
	case "enter":
		child := tree.New(m.elem.typeName)
		if err := m.handler.Drop(child); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.dropped++
		m.saved = false
		m.recompute()
	case "s":
		if err := SaveDocument(m.output, m.handler.Model().Container()); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.saved = true
	}
	return m, nil
}

func (m *demoModel) recompute() {
	pointer := geom.Point{X: m.rect.CenterX(), Y: m.rect.CenterY()}
	fb, err := m.handler.ComputeMatches(pointer, m.rect, m.elem.baseline)
	if err != nil {
		m.err = err
		return
	}
	m.feedback = fb
}

func (m demoModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Drag " + m.elem.typeName))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓/←/→ move  ⏎ drop  s save  q quit"))
	b.WriteString("\n\n")

	b.WriteString(StyleValue.Render(fmt.Sprintf("  at (%g, %g)  %gx%g",
		m.rect.Left, m.rect.Top, m.rect.Width(), m.rect.Height())))
	b.WriteString("\n\n")

	for _, line := range strings.Split(m.feedback.Tooltip, "\n") {
		b.WriteString("  " + StyleHighlight.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if s, err := m.handler.Model().Snapshot(); err == nil {
		b.WriteString(StyleDim.Render(fmt.Sprintf("  grid %dx%d  columns %s  rows %s",
			s.ActualColumns(), s.ActualRows(),
			joinLines(s.ColumnLines), joinLines(s.RowLines))))
		b.WriteString("\n")
	}

	status := fmt.Sprintf("  %d dropped", m.dropped)
	if m.saved {
		status += "  " + StyleSuccess.Render("saved")
	}
	b.WriteString(StyleDim.Render(status))
	b.WriteString("\n")

	return b.String()
}
