package match

import (
	"github.com/layouteng/gridsnap/pkg/geom"
	"github.com/layouteng/gridsnap/pkg/grid"
)

// CellMatch is the grid-mode resolution result: a discrete target cell
// plus flags describing whether the drop inserts a new row or column.
type CellMatch struct {
	Row    int
	Column int

	// CreatesColumn and CreatesRow report that the pointer fell within
	// the insertion radius of a cell boundary, so the drop adds a whole
	// new column or row at the target index.
	CreatesColumn bool
	CreatesRow    bool

	// MatchLeft and MatchTop distinguish, for display purposes, whether
	// the insertion was triggered at the near edge of the pointed-at
	// cell rather than the far edge.
	MatchLeft bool
	MatchTop  bool
}

// GridCell resolves the grid-mode target for a pointer position. The
// pointed-at cell is the default; within the insertion radius of a cell
// edge the target shifts to inserting a new row/column at that boundary.
// A pointer near the far (right/bottom) edge targets the next index.
func (r *Resolver) GridCell(s *grid.Snapshot, p geom.Point) CellMatch {
	col := s.ColumnAt(p.X)
	row := s.RowAt(p.Y)
	cm := CellMatch{Row: row, Column: col}
	if s.Columns() < 1 || s.Rows() < 1 {
		return cm
	}

	radius := r.opts.InsertionRadius()
	cell := s.CellRect(row, col)

	switch {
	case cell.Right-p.X <= radius:
		cm.Column = col + 1
		cm.CreatesColumn = true
	case p.X-cell.Left <= radius:
		cm.CreatesColumn = true
		cm.MatchLeft = true
	}

	switch {
	case cell.Bottom-p.Y <= radius:
		cm.Row = row + 1
		cm.CreatesRow = true
	case p.Y-cell.Top <= radius:
		cm.CreatesRow = true
		cm.MatchTop = true
	}
	return cm
}
