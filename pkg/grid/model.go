package grid

import (
	"strconv"

	"github.com/layouteng/gridsnap/pkg/errors"
	"github.com/layouteng/gridsnap/pkg/geom"
	"github.com/layouteng/gridsnap/pkg/tree"
)

// Model owns the grid structure of one container node for the duration
// of a drag session. All reads go through an immutable Snapshot derived
// from the tree; every mutation writes the tree and invalidates the
// snapshot, so the next read re-derives fresh state.
type Model struct {
	container tree.Node
	snap      *Snapshot
}

// Edit describes one structural mutation: where lines were inserted and
// which cell the pending child should occupy afterwards.
type Edit struct {
	Axis   geom.Axis
	Index  int       // slice position of the first inserted coordinate
	Coords []float64 // inserted line coordinates, ascending
	Spacer bool      // the first coordinate is a zero-content margin spacer
	Width  float64   // advisory size of the new cell
	Pixel  bool      // Width is a fixed pixel size
	Cell   int       // cell index the new child occupies on this axis
}

// Inserted returns the number of lines the edit added.
func (e Edit) Inserted() int { return len(e.Coords) }

// NewModel creates a model over the given grid container node.
func NewModel(container tree.Node) *Model {
	return &Model{container: container}
}

// Container returns the underlying container node.
func (m *Model) Container() tree.Node { return m.container }

// Reload re-derives the snapshot from the tree. It is called implicitly
// by Snapshot after a mutation; callers may invoke it directly after
// mutating the tree outside the model.
func (m *Model) Reload() (*Snapshot, error) {
	s, err := buildSnapshot(m.container)
	if err != nil {
		return nil, err
	}
	m.snap = s
	return s, nil
}

// Snapshot returns the current snapshot, re-deriving it from the tree if
// a mutation invalidated the cached one.
func (m *Model) Snapshot() (*Snapshot, error) {
	if m.snap == nil {
		return m.Reload()
	}
	return m.snap, nil
}

func (m *Model) invalidate() { m.snap = nil }

// SplitColumn inserts a new column line at slice position index with
// pixel coordinate px. When insertMarginFirst is set, a zero-content
// spacer line at px-gap is inserted first, preserving the neighbor's
// visual margin instead of collapsing it.
//
// Every child whose column index is >= index shifts right by the number
// of inserted lines; children spanning across the split grow their span
// instead. The declared column count grows by the same amount.
func (m *Model) SplitColumn(index int, insertMarginFirst bool, width, px, gap float64) (Edit, error) {
	return m.split(geom.AxisColumns, index, insertMarginFirst, width, px, gap)
}

// SplitRow is the row-axis counterpart of SplitColumn.
func (m *Model) SplitRow(index int, insertMarginFirst bool, height, py, gap float64) (Edit, error) {
	return m.split(geom.AxisRows, index, insertMarginFirst, height, py, gap)
}

func (m *Model) split(axis geom.Axis, index int, insertMargin bool, width, px, gap float64) (Edit, error) {
	s, err := m.Snapshot()
	if err != nil {
		return Edit{}, err
	}

	lines := s.axisLines(axis)
	n := len(lines)
	if n < 2 {
		return Edit{}, errors.New(errors.ErrCodeInvalidGeometry, "cannot split an empty grid on %s", axis)
	}
	if index < 1 || index > n {
		return Edit{}, errors.New(errors.ErrCodeInvalidGeometry, "split index %d out of range on %s", index, axis)
	}

	coords := []float64{px}
	if insertMargin && gap > 0 {
		coords = []float64{px - gap, px}
	}

	// The inserted coordinates must keep the sequence strictly increasing.
	if coords[0] <= lines[index-1] {
		return Edit{}, errors.New(errors.ErrCodeInvalidGeometry,
			"inserted line %v does not follow line %v", coords[0], lines[index-1])
	}
	if index < n && px >= lines[index] {
		return Edit{}, errors.New(errors.ErrCodeInvalidGeometry,
			"inserted line %v does not precede line %v", px, lines[index])
	}

	newLines := make([]float64, 0, n+len(coords))
	newLines = append(newLines, lines[:index]...)
	newLines = append(newLines, coords...)
	newLines = append(newLines, lines[index:]...)

	edit := Edit{
		Axis:   axis,
		Index:  index,
		Coords: coords,
		Spacer: insertMargin && gap > 0,
		Width:  width,
		Pixel:  true,
	}
	// The pending child occupies the cell whose leading line is px:
	// interior inserts split the cell before index, appended lines
	// become the trailing edge of a brand-new last cell.
	if index < n {
		edit.Cell = index + len(coords) - 1
	} else {
		edit.Cell = index + len(coords) - 2
	}

	m.applyLineInsert(s, axis, newLines, index, len(coords))
	m.invalidate()
	return edit, nil
}

// AddColumn inserts a complete column of the given width at cell index,
// shifting every subsequent line right by width, and places child in the
// new column. Grid-mode counterpart of SplitColumn.
func (m *Model) AddColumn(index int, child tree.Node, width float64, pixel bool, margin float64) (Edit, error) {
	return m.add(geom.AxisColumns, index, child, width, pixel, margin)
}

// AddRow is the row-axis counterpart of AddColumn.
func (m *Model) AddRow(index int, child tree.Node, height float64, pixel bool, margin float64) (Edit, error) {
	return m.add(geom.AxisRows, index, child, height, pixel, margin)
}

// defaultCellPx sizes a grid-mode row/column when the dragged element
// has no measurable extent.
const defaultCellPx = 48

func (m *Model) add(axis geom.Axis, index int, child tree.Node, width float64, pixel bool, margin float64) (Edit, error) {
	s, err := m.Snapshot()
	if err != nil {
		return Edit{}, err
	}

	lines := s.axisLines(axis)
	cells := len(lines) - 1
	if cells < 1 {
		return Edit{}, errors.New(errors.ErrCodeInvalidGeometry, "cannot add to an empty grid on %s", axis)
	}
	if index < 0 || index > cells {
		return Edit{}, errors.New(errors.ErrCodeInvalidGeometry, "add index %d out of range on %s", index, axis)
	}
	if width <= 0 {
		width = defaultCellPx
	}
	if margin > 0 {
		width += margin
	}

	// The new cell starts at the boundary line `index`; everything after
	// it shifts by the new cell's extent.
	newLines := make([]float64, 0, len(lines)+1)
	newLines = append(newLines, lines[:index+1]...)
	newLines = append(newLines, lines[index]+width)
	for _, v := range lines[index+1:] {
		newLines = append(newLines, v+width)
	}

	edit := Edit{
		Axis:   axis,
		Index:  index + 1,
		Coords: []float64{lines[index] + width},
		Width:  width,
		Pixel:  pixel,
		Cell:   index,
	}

	m.applyLineInsert(s, axis, newLines, index, 1)
	if child != nil {
		child.SetAttr(NSLayout, s.axisIndexAttr(axis), strconv.Itoa(index))
	}
	m.invalidate()
	return edit, nil
}

// applyLineInsert writes the new line set to the container and re-indexes
// children: cells at or after shiftFrom move by inserted, children
// spanning across the insertion point grow their span instead.
func (m *Model) applyLineInsert(s *Snapshot, axis geom.Axis, newLines []float64, shiftFrom, inserted int) {
	m.container.SetAttr(NSEditor, s.axisLinesAttr(axis), formatLines(newLines))

	idxAttr := s.axisIndexAttr(axis)
	spanAttr := s.axisSpanAttr(axis)
	for _, c := range s.Children {
		idx, span := c.Column, c.ColumnSpan
		if axis == geom.AxisRows {
			idx, span = c.Row, c.RowSpan
		}
		switch {
		case idx >= shiftFrom:
			c.Node.SetAttr(NSLayout, idxAttr, strconv.Itoa(idx+inserted))
		case idx+span > shiftFrom:
			c.Node.SetAttr(NSLayout, spanAttr, strconv.Itoa(span+inserted))
		}
	}

	count := len(newLines) - 1
	m.container.SetAttr(NSLayout, s.axisCountAttr(axis), strconv.Itoa(count))
}

// Bootstrap seeds an empty container's grid with a single cell covering
// rect, so a first drop has somewhere to land.
func (m *Model) Bootstrap(rect geom.Rect) error {
	if rect.Empty() {
		return errors.New(errors.ErrCodeInvalidGeometry, "cannot bootstrap a grid from an empty rect")
	}
	m.container.SetAttr(NSEditor, AttrColumnLines, formatLines([]float64{rect.Left, rect.Right}))
	m.container.SetAttr(NSEditor, AttrRowLines, formatLines([]float64{rect.Top, rect.Bottom}))
	m.container.SetAttr(NSLayout, AttrColumnCount, "1")
	m.container.SetAttr(NSLayout, AttrRowCount, "1")
	m.invalidate()
	return nil
}

// InsertIndex returns the tree ordinal at which a child placed at
// (row, col) must be inserted to preserve ascending (row, col) traversal
// order, or tree.Append when it belongs at the end.
func (m *Model) InsertIndex(row, col int) (int, error) {
	s, err := m.Snapshot()
	if err != nil {
		return tree.Append, err
	}
	for _, c := range s.Children {
		if c.Row > row || (c.Row == row && c.Column > col) {
			return m.container.IndexOf(c.Node), nil
		}
	}
	return tree.Append, nil
}

// NormalizePlacement writes every child's placement attributes
// explicitly, so that implicit (bounds-derived) positions cannot drift
// when structural edits renumber the grid.
func (m *Model) NormalizePlacement() error {
	s, err := m.Snapshot()
	if err != nil {
		return err
	}
	for _, c := range s.Children {
		WritePlacement(c.Node, c.Row, c.Column, c.RowSpan, c.ColumnSpan)
	}
	return nil
}

// WritePlacement sets a node's placement attributes: row and column
// always, spans only when greater than one.
func WritePlacement(n tree.Node, row, col, rowSpan, colSpan int) {
	n.SetAttr(NSLayout, AttrRow, strconv.Itoa(row))
	n.SetAttr(NSLayout, AttrColumn, strconv.Itoa(col))
	if rowSpan > 1 {
		n.SetAttr(NSLayout, AttrRowSpan, strconv.Itoa(rowSpan))
	} else {
		n.SetAttr(NSLayout, AttrRowSpan, "")
	}
	if colSpan > 1 {
		n.SetAttr(NSLayout, AttrColumnSpan, strconv.Itoa(colSpan))
	} else {
		n.SetAttr(NSLayout, AttrColumnSpan, "")
	}
}

// axis accessors

func (s *Snapshot) axisLines(axis geom.Axis) []float64 {
	if axis == geom.AxisRows {
		return s.RowLines
	}
	return s.ColumnLines
}

func (s *Snapshot) axisLinesAttr(axis geom.Axis) string {
	if axis == geom.AxisRows {
		return AttrRowLines
	}
	return AttrColumnLines
}

func (s *Snapshot) axisIndexAttr(axis geom.Axis) string {
	if axis == geom.AxisRows {
		return AttrRow
	}
	return AttrColumn
}

func (s *Snapshot) axisSpanAttr(axis geom.Axis) string {
	if axis == geom.AxisRows {
		return AttrRowSpan
	}
	return AttrColumnSpan
}

func (s *Snapshot) axisCountAttr(axis geom.Axis) string {
	if axis == geom.AxisRows {
		return AttrRowCount
	}
	return AttrColumnCount
}
