package grid

import (
	"github.com/layouteng/gridsnap/pkg/geom"
)

// Geometry queries. All queries are pure reads over the snapshot.
// Out-of-range coordinates clamp to the nearest valid cell or line; an
// empty grid answers index 0 everywhere.

// ColumnAt returns the index of the column cell containing x, clamped to
// the valid range.
func (s *Snapshot) ColumnAt(x float64) int {
	return cellAt(s.ColumnLines, x)
}

// RowAt returns the index of the row cell containing y, clamped to the
// valid range.
func (s *Snapshot) RowAt(y float64) int {
	return cellAt(s.RowLines, y)
}

// ClosestColumnLine returns the index of the column line nearest to x.
func (s *Snapshot) ClosestColumnLine(x float64) int {
	return closestLine(s.ColumnLines, x)
}

// ClosestRowLine returns the index of the row line nearest to y.
func (s *Snapshot) ClosestRowLine(y float64) int {
	return closestLine(s.RowLines, y)
}

// LineDistance returns the unsigned pixel distance between coord and the
// line at index on the given axis. The index is clamped.
func (s *Snapshot) LineDistance(axis geom.Axis, index int, coord float64) float64 {
	lines := s.ColumnLines
	if axis == geom.AxisRows {
		lines = s.RowLines
	}
	if len(lines) == 0 {
		return 0
	}
	if index < 0 {
		index = 0
	}
	if index >= len(lines) {
		index = len(lines) - 1
	}
	return geom.Dist(lines[index], coord)
}

// ColumnLineX returns the pixel coordinate of the column line at index,
// clamped to the valid range.
func (s *Snapshot) ColumnLineX(index int) float64 {
	return lineCoord(s.ColumnLines, index)
}

// RowLineY returns the pixel coordinate of the row line at index,
// clamped to the valid range.
func (s *Snapshot) RowLineY(index int) float64 {
	return lineCoord(s.RowLines, index)
}

// ColumnWidth returns the pixel width of the column cell at index.
func (s *Snapshot) ColumnWidth(index int) float64 {
	if s.Columns() < 1 {
		return 0
	}
	index = clampCell(index, s.Columns())
	return s.ColumnLines[index+1] - s.ColumnLines[index]
}

// RowHeight returns the pixel height of the row cell at index.
func (s *Snapshot) RowHeight(index int) float64 {
	if s.Rows() < 1 {
		return 0
	}
	index = clampCell(index, s.Rows())
	return s.RowLines[index+1] - s.RowLines[index]
}

// CellRect returns the pixel rectangle of the cell at (row, col), with
// both indices clamped.
func (s *Snapshot) CellRect(row, col int) geom.Rect {
	if s.Columns() < 1 || s.Rows() < 1 {
		return geom.Rect{}
	}
	row = clampCell(row, s.Rows())
	col = clampCell(col, s.Columns())
	return geom.Rect{
		Left:   s.ColumnLines[col],
		Top:    s.RowLines[row],
		Right:  s.ColumnLines[col+1],
		Bottom: s.RowLines[row+1],
	}
}

// IntersectingChildren returns the children whose measured vertical span
// overlaps the open interval (top, bottom). Used to gate whole-row
// center alignment.
func (s *Snapshot) IntersectingChildren(top, bottom float64) []ChildCell {
	var out []ChildCell
	for _, c := range s.Children {
		if c.Node.Bounds().OverlapsVertically(top, bottom) {
			out = append(out, c)
		}
	}
	return out
}

// IntersectingChildrenAcross returns the children whose measured
// horizontal span overlaps the open interval (left, right).
func (s *Snapshot) IntersectingChildrenAcross(left, right float64) []ChildCell {
	var out []ChildCell
	for _, c := range s.Children {
		if c.Node.Bounds().OverlapsHorizontally(left, right) {
			out = append(out, c)
		}
	}
	return out
}

// Baseline returns the baseline offset of the given row, measured from
// the row's top line, derived from the first single-row child in that
// row carrying a measured baseline. The second return is false when the
// row has no baseline.
func (s *Snapshot) Baseline(row int) (float64, bool) {
	if row < 0 || row >= s.Rows() {
		return 0, false
	}
	rowTop := s.RowLines[row]
	for _, c := range s.Children {
		if c.Row != row || c.RowSpan != 1 {
			continue
		}
		raw := c.Node.Attr(NSEditor, AttrBaseline)
		if raw == "" {
			continue
		}
		b := floatAttr(c.Node, NSEditor, AttrBaseline, -1)
		if b < 0 {
			continue
		}
		return c.Node.Bounds().Top + b - rowTop, true
	}
	return 0, false
}

// cellAt returns the index of the cell containing coord: the largest i
// with lines[i] <= coord, clamped to [0, cells-1].
func cellAt(lines []float64, coord float64) int {
	cells := len(lines) - 1
	if cells < 1 {
		return 0
	}
	for i := cells - 1; i >= 0; i-- {
		if coord >= lines[i] {
			return i
		}
	}
	return 0
}

// closestLine returns the index of the line nearest to coord, preferring
// the lower index on ties.
func closestLine(lines []float64, coord float64) int {
	if len(lines) == 0 {
		return 0
	}
	best := 0
	bestDist := geom.Dist(lines[0], coord)
	for i := 1; i < len(lines); i++ {
		if d := geom.Dist(lines[i], coord); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// lineCoord returns the coordinate of the line at index, clamped.
func lineCoord(lines []float64, index int) float64 {
	if len(lines) == 0 {
		return 0
	}
	if index < 0 {
		index = 0
	}
	if index >= len(lines) {
		index = len(lines) - 1
	}
	return lines[index]
}

func clampCell(i, cells int) int {
	if i < 0 {
		return 0
	}
	if i >= cells {
		return cells - 1
	}
	return i
}

// LineInsertPos returns the slice position where a new line at coord
// would be inserted to keep the sequence strictly increasing.
func LineInsertPos(lines []float64, coord float64) int {
	for i, v := range lines {
		if coord < v {
			return i
		}
	}
	return len(lines)
}
