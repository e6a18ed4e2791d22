package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/layouteng/gridsnap/pkg/drop"
	"github.com/layouteng/gridsnap/pkg/geom"
	"github.com/layouteng/gridsnap/pkg/grid"
	"github.com/layouteng/gridsnap/pkg/tree"
)

// resolveParams carries the flags of one resolve invocation.
type resolveParams struct {
	x, y          float64
	width, height float64
	baseline      float64
	elemType      string
	apply         bool
	output        string
	configPath    string
	gridMode      bool
	snapToGrid    bool
}

// resolveCommand creates the resolve command for dry-running and applying
// a drop.
func (c *CLI) resolveCommand() *cobra.Command {
	var p resolveParams

	cmd := &cobra.Command{
		Use:   "resolve [layout.toml]",
		Short: "Resolve where a dragged element would land",
		Long: `Resolve where a dragged element would land in a layout.

The resolve command loads a layout document, places a phantom element of the
given size at the given position, and reports the winning match on each axis
exactly as the editor's drag feedback would. With --apply the drop is
committed: grid lines are inserted as needed, the child is added to the
document, and the result is written back.

Snap tuning comes from ~/.config/gridsnap/gridsnap.toml, overridable with
--config.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runResolve(cmd.Context(), args[0], p)
		},
	}

	cmd.Flags().Float64VarP(&p.x, "x", "x", 0, "element left edge")
	cmd.Flags().Float64VarP(&p.y, "y", "y", 0, "element top edge")
	cmd.Flags().Float64VarP(&p.width, "width", "w", 48, "element width")
	cmd.Flags().Float64Var(&p.height, "height", 24, "element height")
	cmd.Flags().Float64Var(&p.baseline, "baseline", -1, "element baseline offset from its top (-1: none)")
	cmd.Flags().StringVarP(&p.elemType, "type", "t", "button", "element type to insert")
	cmd.Flags().BoolVar(&p.apply, "apply", false, "commit the drop and write the document back")
	cmd.Flags().StringVarP(&p.output, "output", "o", "", "output file for --apply (default: overwrite input)")
	cmd.Flags().StringVar(&p.configPath, "config", "", "config file path")
	cmd.Flags().BoolVar(&p.gridMode, "grid-mode", false, "use discrete cell-based placement")
	cmd.Flags().BoolVar(&p.snapToGrid, "snap-to-grid", false, "quantize the element position before matching")

	return cmd
}

// runResolve resolves the match and optionally applies the drop.
func (c *CLI) runResolve(ctx context.Context, input string, p resolveParams) error {
	cfg, err := LoadConfig(p.configPath)
	if err != nil {
		return err
	}
	opts := cfg.Match
	if p.gridMode {
		opts.GridMode = true
	}
	if p.snapToGrid {
		opts.SnapToGrid = true
	}

	container, err := LoadDocument(input)
	if err != nil {
		return err
	}

	logger := loggerFromContext(ctx)
	h := drop.NewHandler(container, opts, logger)

	elem := geom.NewRect(p.x, p.y, p.width, p.height)
	pointer := geom.Point{X: elem.CenterX(), Y: elem.CenterY()}

	fb, err := h.ComputeMatches(pointer, elem, p.baseline)
	if err != nil {
		return err
	}

	printSuccess("Matches resolved")
	for _, line := range strings.Split(fb.Tooltip, "\n") {
		printDetail("%s", line)
	}

	if !p.apply {
		printNewline()
		printNextStep("Apply", "gridsnap resolve "+input+" --apply")
		return nil
	}

	prog := newProgress(logger)
	child := tree.New(p.elemType)
	if p.baseline >= 0 {
		child.SetAttr(grid.NSEditor, grid.AttrBaseline,
			strconv.FormatFloat(p.baseline, 'g', -1, 64))
	}
	if err := h.Drop(child); err != nil {
		printError("Drop failed")
		return err
	}
	prog.done("Drop applied")

	output := p.output
	if output == "" {
		output = input
	}
	if err := SaveDocument(output, container); err != nil {
		return err
	}

	s, err := h.Model().Snapshot()
	if err != nil {
		return err
	}
	printSuccess("Drop applied")
	printFile(output)
	printGridStats(s.ActualColumns(), s.ActualRows(), len(s.Children))
	printNewline()
	printNextStep("Inspect", "gridsnap inspect "+output)

	return nil
}
