// Package grid owns the mutable row/column structure of a grid container:
// an immutable Snapshot re-derived wholesale from the document tree, pure
// geometry queries over it, and the structural edits (line splits, direct
// row/column insertion) the drop handler applies.
//
// The tree is the single source of truth. Every mutation invalidates the
// cached snapshot, and Snapshot() re-derives it on demand, so reading
// stale state after an edit is structurally impossible.
package grid

import (
	"strconv"
	"strings"

	"github.com/layouteng/gridsnap/pkg/errors"
	"github.com/layouteng/gridsnap/pkg/geom"
	"github.com/layouteng/gridsnap/pkg/tree"
)

// ChildCell is the placement of one child inside the grid.
type ChildCell struct {
	Node       tree.Node
	Row        int
	Column     int
	RowSpan    int
	ColumnSpan int
	Gravity    string
}

// Snapshot is an immutable view of a grid container: its bounds, the
// pixel coordinates of its column and row lines (strictly increasing,
// count = cells+1), declared counts, and the placed children.
//
// Snapshots are rebuilt wholesale by Model.Reload; there is no
// incremental diffing.
type Snapshot struct {
	Bounds          geom.Rect
	ColumnLines     []float64
	RowLines        []float64
	DeclaredColumns int // 0 when the attribute is absent
	DeclaredRows    int
	Children        []ChildCell
}

// buildSnapshot derives a Snapshot from the container node.
func buildSnapshot(container tree.Node) (*Snapshot, error) {
	s := &Snapshot{Bounds: container.Bounds()}

	var err error
	s.ColumnLines, err = readLines(container, AttrColumnLines, s.Bounds.Left, s.Bounds.Right)
	if err != nil {
		return nil, err
	}
	s.RowLines, err = readLines(container, AttrRowLines, s.Bounds.Top, s.Bounds.Bottom)
	if err != nil {
		return nil, err
	}

	s.DeclaredColumns = intAttr(container, NSLayout, AttrColumnCount, 0)
	s.DeclaredRows = intAttr(container, NSLayout, AttrRowCount, 0)

	for _, child := range container.Children() {
		cell := ChildCell{
			Node:       child,
			RowSpan:    intAttr(child, NSLayout, AttrRowSpan, 1),
			ColumnSpan: intAttr(child, NSLayout, AttrColumnSpan, 1),
			Gravity:    child.Attr(NSLayout, AttrGravity),
		}
		if cell.RowSpan < 1 {
			cell.RowSpan = 1
		}
		if cell.ColumnSpan < 1 {
			cell.ColumnSpan = 1
		}

		// Explicit placement wins; otherwise the child's measured
		// bounds decide which cell it sits in.
		b := child.Bounds()
		cell.Column = intAttr(child, NSLayout, AttrColumn, s.ColumnAt(b.Left))
		cell.Row = intAttr(child, NSLayout, AttrRow, s.RowAt(b.Top))

		s.Children = append(s.Children, cell)
	}

	return s, nil
}

// Columns returns the number of column cells.
func (s *Snapshot) Columns() int {
	if len(s.ColumnLines) < 2 {
		return 0
	}
	return len(s.ColumnLines) - 1
}

// Rows returns the number of row cells.
func (s *Snapshot) Rows() int {
	if len(s.RowLines) < 2 {
		return 0
	}
	return len(s.RowLines) - 1
}

// ActualColumns returns the effective column count: the maximum of
// column+span over all children, falling back to the declared count,
// never less than 1.
func (s *Snapshot) ActualColumns() int {
	count := s.DeclaredColumns
	for _, c := range s.Children {
		if end := c.Column + c.ColumnSpan; end > count {
			count = end
		}
	}
	if count < 1 {
		count = 1
	}
	return count
}

// ActualRows returns the effective row count, symmetric to ActualColumns.
func (s *Snapshot) ActualRows() int {
	count := s.DeclaredRows
	for _, c := range s.Children {
		if end := c.Row + c.RowSpan; end > count {
			count = end
		}
	}
	if count < 1 {
		count = 1
	}
	return count
}

// readLines parses a line coordinate attribute, defaulting to the two
// container edges when the attribute is absent and the container has
// extent on that axis.
func readLines(container tree.Node, name string, lo, hi float64) ([]float64, error) {
	raw := container.Attr(NSEditor, name)
	if raw == "" {
		if hi <= lo {
			return nil, nil
		}
		return []float64{lo, hi}, nil
	}

	if err := errors.ValidateLineList(raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidGeometry, err, "parse %s", name)
	}

	parts := strings.Split(raw, ",")
	lines := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGeometry, err, "parse %s %q", name, raw)
		}
		lines = append(lines, v)
	}

	for i := 1; i < len(lines); i++ {
		if lines[i] <= lines[i-1] {
			return nil, errors.New(errors.ErrCodeInvalidGeometry,
				"%s not strictly increasing at index %d: %q", name, i, raw)
		}
	}

	return lines, nil
}

// formatLines serializes line coordinates back into attribute form.
func formatLines(lines []float64) string {
	parts := make([]string, len(lines))
	for i, v := range lines {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

// intAttr reads an integer attribute with a default.
func intAttr(n tree.Node, ns, name string, def int) int {
	raw := n.Attr(ns, name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// floatAttr reads a float attribute with a default.
func floatAttr(n tree.Node, ns, name string, def float64) float64 {
	raw := n.Attr(ns, name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}
