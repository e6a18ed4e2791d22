package match

import (
	"fmt"

	"github.com/layouteng/gridsnap/pkg/geom"
)

// Describe renders a human-readable description of a candidate for drag
// feedback. It is a pure function over the candidate record; resolution
// never touches display text.
func Describe(axis geom.Axis, c Candidate) string {
	noun := "column"
	leading, trailing := "left", "right"
	if axis == geom.AxisRows {
		noun = "row"
		leading, trailing = "top", "bottom"
	}

	switch c.Kind {
	case KindEdge:
		if c.Trailing {
			return fmt.Sprintf("align %s edge with %s line %d", trailing, noun, c.Cell+1)
		}
		return fmt.Sprintf("align %s edge with %s line %d", leading, noun, c.Cell)
	case KindCenter:
		return "center horizontally"
	case KindGapMargin:
		if c.Trailing {
			return fmt.Sprintf("keep %.0fpx margin from container %s edge", c.Gap, trailing)
		}
		return fmt.Sprintf("keep %.0fpx margin from container %s edge", c.Gap, leading)
	case KindGapShort:
		return fmt.Sprintf("place %.0fpx from neighbor", c.Gap)
	case KindGapFlush:
		return "place flush with neighbor"
	case KindBaseline:
		return fmt.Sprintf("align baseline with row %d", c.Cell)
	case KindFallback:
		if c.CreatesCell {
			return fmt.Sprintf("insert %s %d at pointer", noun, c.Cell)
		}
		return fmt.Sprintf("place in %s %d", noun, c.Cell)
	default:
		return ""
	}
}

// DescribeCell renders drag feedback for a grid-mode match.
func DescribeCell(cm CellMatch) string {
	switch {
	case cm.CreatesColumn && cm.CreatesRow:
		return fmt.Sprintf("insert column %d and row %d", cm.Column, cm.Row)
	case cm.CreatesColumn:
		return fmt.Sprintf("insert column %d", cm.Column)
	case cm.CreatesRow:
		return fmt.Sprintf("insert row %d", cm.Row)
	default:
		return fmt.Sprintf("place in row %d, column %d", cm.Row, cm.Column)
	}
}
