package match

import (
	"github.com/layouteng/gridsnap/pkg/geom"
	"github.com/layouteng/gridsnap/pkg/grid"
)

// Resolver generates and ranks alignment candidates for one axis at a
// time against a grid snapshot. It holds no mutable state; the same
// inputs always produce the same candidate list in the same order.
type Resolver struct {
	opts Options
}

// NewResolver creates a resolver with the given tuning.
func NewResolver(opts Options) *Resolver {
	return &Resolver{opts: opts}
}

// Options returns the resolver's tuning.
func (r *Resolver) Options() Options { return r.opts }

// ColumnCandidates generates every column-axis candidate for the element
// rectangle, in fixed order: leading edge, trailing edge, center,
// margin gaps, short gap, then the fallback if nothing else matched.
// The returned list is never empty.
func (r *Resolver) ColumnCandidates(s *grid.Snapshot, elem geom.Rect) []Candidate {
	max := r.opts.MaxMatchDistance
	lines := s.ColumnLines
	var cands []Candidate

	if len(lines) >= 2 {
		// Leading edge snaps at the tolerance boundary; trailing edge
		// requires strictly less, so at exactly max distance the leading
		// interpretation wins.
		li := s.ClosestColumnLine(elem.Left)
		if d := geom.Dist(s.ColumnLineX(li), elem.Left); d <= max {
			cands = append(cands, Candidate{
				Kind:     KindEdge,
				Distance: d,
				Coord:    s.ColumnLineX(li),
				Cell:     li,
			})
		}

		ti := s.ClosestColumnLine(elem.Right)
		if d := geom.Dist(s.ColumnLineX(ti), elem.Right); d < max {
			cell := ti - 1
			if cell < 0 {
				cell = 0
			}
			cands = append(cands, Candidate{
				Kind:     KindEdge,
				Trailing: true,
				Distance: d,
				Coord:    s.ColumnLineX(ti),
				Cell:     cell,
			})
		}

		// Whole-row centering only applies when the element's horizontal
		// band is empty; otherwise it would overlap existing children.
		if len(s.IntersectingChildren(elem.Top, elem.Bottom)) == 0 {
			cx := s.Bounds.CenterX()
			if d := geom.Dist(elem.CenterX(), cx); d <= centerToleranceFactor*max {
				cands = append(cands, Candidate{
					Kind:     KindCenter,
					Distance: d,
					Coord:    cx,
					Cell:     0,
				})
			}
		}

		// Margin gaps require the edge to actually sit near the container
		// edge, on either side of it; an element far past the edge falls
		// through to the fallback instead.
		m := r.opts.MarginPx
		nearLeading := m > 0 && geom.Dist(elem.Left, s.Bounds.Left) <= m+max
		nearTrailing := m > 0 && geom.Dist(elem.Right, s.Bounds.Right) <= m+max

		if nearLeading {
			coord := s.Bounds.Left + m
			cell, creates := leadingTarget(lines, coord)
			cands = append(cands, Candidate{
				Kind:        KindGapMargin,
				Distance:    geom.Dist(elem.Left, coord),
				Coord:       coord,
				Cell:        cell,
				CreatesCell: creates,
				Gap:         m,
			})
		}
		if nearTrailing {
			coord := s.Bounds.Right - m
			cell, creates := trailingTarget(lines, coord)
			cands = append(cands, Candidate{
				Kind:        KindGapMargin,
				Trailing:    true,
				Distance:    geom.Dist(elem.Right, coord),
				Coord:       coord,
				Cell:        cell,
				CreatesCell: creates,
				Gap:         m,
			})
		}

		// Away from the container edges, relate to the nearest neighbor
		// instead: a short-gap placement plus a penalized flush variant.
		if !nearLeading && !nearTrailing {
			if edge, ok := nearestLeftNeighbor(s, elem); ok {
				g := r.opts.ShortGapPx()
				coord := edge + g
				if d := geom.Dist(elem.Left, coord); g > 0 && d <= max {
					cell, creates := leadingTarget(lines, coord)
					cands = append(cands, Candidate{
						Kind:        KindGapShort,
						Distance:    d,
						Coord:       coord,
						Cell:        cell,
						CreatesCell: creates,
						Gap:         g,
					})
				}
				if d := geom.Dist(elem.Left, edge) + flushPenaltyPx; d <= max {
					cell, creates := leadingTarget(lines, edge)
					cands = append(cands, Candidate{
						Kind:        KindGapFlush,
						Distance:    d,
						Coord:       edge,
						Cell:        cell,
						CreatesCell: creates,
					})
				}
			}
		}
	}

	if len(cands) == 0 {
		cands = append(cands, fallback(lines, elem.Left))
	}
	return cands
}

// RowCandidates generates every row-axis candidate. baseline is the
// element's own baseline offset from its top, or negative when the
// element has none. The returned list is never empty.
func (r *Resolver) RowCandidates(s *grid.Snapshot, elem geom.Rect, baseline float64) []Candidate {
	max := r.opts.MaxMatchDistance
	lines := s.RowLines
	var cands []Candidate

	if len(lines) >= 2 {
		li := s.ClosestRowLine(elem.Top)
		if d := geom.Dist(s.RowLineY(li), elem.Top); d <= max {
			cands = append(cands, Candidate{
				Kind:     KindEdge,
				Distance: d,
				Coord:    s.RowLineY(li),
				Cell:     li,
			})
		}

		ti := s.ClosestRowLine(elem.Bottom)
		if d := geom.Dist(s.RowLineY(ti), elem.Bottom); d < max {
			cell := ti - 1
			if cell < 0 {
				cell = 0
			}
			cands = append(cands, Candidate{
				Kind:     KindEdge,
				Trailing: true,
				Distance: d,
				Coord:    s.RowLineY(ti),
				Cell:     cell,
			})
		}

		if baseline >= 0 {
			proj := elem.Top + baseline
			for row := 0; row < s.Rows(); row++ {
				b, ok := s.Baseline(row)
				if !ok {
					continue
				}
				target := s.RowLines[row] + b
				if d := geom.Dist(proj, target); d < max {
					cands = append(cands, Candidate{
						Kind:     KindBaseline,
						Distance: d,
						Coord:    target - baseline,
						Cell:     row,
					})
				}
			}
		}

		m := r.opts.MarginPx
		nearLeading := m > 0 && geom.Dist(elem.Top, s.Bounds.Top) <= m+max
		nearTrailing := m > 0 && geom.Dist(elem.Bottom, s.Bounds.Bottom) <= m+max

		if nearLeading {
			coord := s.Bounds.Top + m
			cell, creates := leadingTarget(lines, coord)
			cands = append(cands, Candidate{
				Kind:        KindGapMargin,
				Distance:    geom.Dist(elem.Top, coord),
				Coord:       coord,
				Cell:        cell,
				CreatesCell: creates,
				Gap:         m,
			})
		}
		if nearTrailing {
			coord := s.Bounds.Bottom - m
			cell, creates := trailingTarget(lines, coord)
			cands = append(cands, Candidate{
				Kind:        KindGapMargin,
				Trailing:    true,
				Distance:    geom.Dist(elem.Bottom, coord),
				Coord:       coord,
				Cell:        cell,
				CreatesCell: creates,
				Gap:         m,
			})
		}

		if !nearLeading && !nearTrailing {
			if edge, ok := nearestNeighborAbove(s, elem); ok {
				g := r.opts.ShortGapPx()
				coord := edge + g
				if d := geom.Dist(elem.Top, coord); g > 0 && d <= max {
					cell, creates := leadingTarget(lines, coord)
					cands = append(cands, Candidate{
						Kind:        KindGapShort,
						Distance:    d,
						Coord:       coord,
						Cell:        cell,
						CreatesCell: creates,
						Gap:         g,
					})
				}
				if d := geom.Dist(elem.Top, edge) + flushPenaltyPx; d <= max {
					cell, creates := leadingTarget(lines, edge)
					cands = append(cands, Candidate{
						Kind:        KindGapFlush,
						Distance:    d,
						Coord:       edge,
						Cell:        cell,
						CreatesCell: creates,
					})
				}
			}
		}
	}

	if len(cands) == 0 {
		cands = append(cands, fallback(lines, elem.Top))
	}
	return cands
}

// BestColumn resolves the winning column-axis candidate. The fallback
// guarantees an answer.
func (r *Resolver) BestColumn(s *grid.Snapshot, elem geom.Rect) Candidate {
	best, _ := Best(r.ColumnCandidates(s, elem))
	return best
}

// BestRow resolves the winning row-axis candidate.
func (r *Resolver) BestRow(s *grid.Snapshot, elem geom.Rect, baseline float64) Candidate {
	best, _ := Best(r.RowCandidates(s, elem, baseline))
	return best
}

// fallback places the element at its current leading coordinate,
// inserting a line there when none exists.
func fallback(lines []float64, coord float64) Candidate {
	cell, creates := leadingTarget(lines, coord)
	return Candidate{
		Kind:        KindFallback,
		Coord:       coord,
		Cell:        cell,
		CreatesCell: creates,
	}
}

// leadingTarget maps a leading-edge coordinate to the cell a child
// aligned there occupies, and whether a new line must be inserted. A
// coordinate on the last line yields the cell past the current grid;
// the declared count grows without a structural edit.
func leadingTarget(lines []float64, coord float64) (cell int, creates bool) {
	if len(lines) < 2 {
		return 0, true
	}
	if j, ok := lineNear(lines, coord); ok {
		return j, false
	}
	p := grid.LineInsertPos(lines, coord)
	switch {
	case p == 0:
		return 0, false
	case p == len(lines):
		// Appending: the new line closes a fresh trailing cell.
		return len(lines) - 1, true
	default:
		return p, true
	}
}

// trailingTarget maps a trailing-edge coordinate to the cell a child
// ending there occupies.
func trailingTarget(lines []float64, coord float64) (cell int, creates bool) {
	if len(lines) < 2 {
		return 0, true
	}
	if j, ok := lineNear(lines, coord); ok {
		if j == 0 {
			return 0, false
		}
		return j - 1, false
	}
	p := grid.LineInsertPos(lines, coord)
	switch {
	case p == 0:
		return 0, false
	case p == len(lines):
		return len(lines) - 1, true
	default:
		return p - 1, true
	}
}

// lineNear reports whether coord coincides with an existing line.
func lineNear(lines []float64, coord float64) (int, bool) {
	for i, v := range lines {
		if geom.Dist(v, coord) <= lineCoincidenceEps {
			return i, true
		}
	}
	return 0, false
}

// nearestLeftNeighbor finds the right edge of the closest child that
// sits fully to the element's left within its vertical band.
func nearestLeftNeighbor(s *grid.Snapshot, elem geom.Rect) (float64, bool) {
	found := false
	var edge float64
	for _, c := range s.IntersectingChildren(elem.Top, elem.Bottom) {
		r := c.Node.Bounds().Right
		if r <= elem.Left && (!found || r > edge) {
			edge = r
			found = true
		}
	}
	return edge, found
}

// nearestNeighborAbove finds the bottom edge of the closest child that
// sits fully above the element within its horizontal band.
func nearestNeighborAbove(s *grid.Snapshot, elem geom.Rect) (float64, bool) {
	found := false
	var edge float64
	for _, c := range s.IntersectingChildrenAcross(elem.Left, elem.Right) {
		b := c.Node.Bounds().Bottom
		if b <= elem.Top && (!found || b > edge) {
			edge = b
			found = true
		}
	}
	return edge, found
}
