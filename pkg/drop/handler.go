// Package drop applies resolved drag matches to the layout tree. A
// Handler owns one drag session: the editor feeds it pointer updates
// through ComputeMatches for live feedback, then commits with Drop,
// which performs any structural grid edits and inserts the child.
package drop

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/layouteng/gridsnap/pkg/errors"
	"github.com/layouteng/gridsnap/pkg/geom"
	"github.com/layouteng/gridsnap/pkg/grid"
	"github.com/layouteng/gridsnap/pkg/match"
	"github.com/layouteng/gridsnap/pkg/tree"
)

// edgeEps nudges cell queries off exact line coordinates so a span that
// ends on a line does not count the next cell.
const edgeEps = 0.5

// spacerSlackPx is how much room must remain between a gap match's
// implied spacer line and the previous grid line before a dedicated
// spacer cell is worth inserting. Below it, the existing sliver of cell
// already provides the gap.
const spacerSlackPx = 2

// Feedback is what the editor shows while a drag is in flight.
type Feedback struct {
	// Tooltip is the human-readable description of the pending
	// placement, one line per matched axis.
	Tooltip string
	// Valid reports that both axes resolved to a placement.
	Valid bool
}

// Handler runs one drag-and-drop session over a grid container.
type Handler struct {
	opts  match.Options
	log   *log.Logger
	model *grid.Model
	res   *match.Resolver

	session uuid.UUID

	// State from the last ComputeMatches call, consumed by Drop.
	col      *match.Candidate
	row      *match.Candidate
	cell     *match.CellMatch
	pointer  geom.Point
	elem     geom.Rect
	baseline float64
}

// NewHandler starts a drag session over container. A nil logger
// discards session logs.
func NewHandler(container tree.Node, opts match.Options, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	session := uuid.New()
	return &Handler{
		opts:    opts,
		log:     logger.With("session", shortID(session)),
		model:   grid.NewModel(container),
		res:     match.NewResolver(opts),
		session: session,
	}
}

// Session returns the drag session's unique id.
func (h *Handler) Session() uuid.UUID { return h.session }

// Model returns the session's grid model.
func (h *Handler) Model() *grid.Model { return h.model }

// ComputeMatches resolves the pending placement for the dragged element
// and returns display feedback. elem is the element's rectangle in
// container coordinates; baseline is its baseline offset from its top,
// negative when it has none. The resolved matches are remembered for
// the next Drop.
func (h *Handler) ComputeMatches(pointer geom.Point, elem geom.Rect, baseline float64) (Feedback, error) {
	s, err := h.model.Snapshot()
	if err != nil {
		return Feedback{}, err
	}

	if h.opts.SnapToGrid && !h.opts.GridMode {
		step := h.opts.SnapStepPx()
		elem = elem.At(geom.Point{X: snapTo(elem.Left, step), Y: snapTo(elem.Top, step)})
	}
	h.pointer, h.elem, h.baseline = pointer, elem, baseline

	if h.opts.GridMode {
		cm := h.res.GridCell(s, pointer)
		h.cell = &cm
		h.log.Debug("grid cell resolved", "row", cm.Row, "column", cm.Column,
			"newColumn", cm.CreatesColumn, "newRow", cm.CreatesRow)
		return Feedback{Tooltip: match.DescribeCell(cm), Valid: true}, nil
	}

	col := h.res.BestColumn(s, elem)
	row := h.res.BestRow(s, elem, baseline)
	h.col, h.row = &col, &row
	h.log.Debug("matches resolved",
		"column", col.Kind, "columnCell", col.Cell, "columnDist", col.Distance,
		"row", row.Kind, "rowCell", row.Cell, "rowDist", row.Distance)

	tooltip := match.Describe(geom.AxisColumns, col) + "\n" + match.Describe(geom.AxisRows, row)
	return Feedback{Tooltip: tooltip, Valid: true}, nil
}

// Drop commits the last resolved match: performs any structural grid
// edits, inserts child into the container at the correct tree ordinal,
// and writes its placement attributes. ComputeMatches must have been
// called for the current pointer position.
func (h *Handler) Drop(child tree.Node) error {
	if h.opts.GridMode {
		return h.dropGrid(child)
	}
	return h.dropFreeForm(child)
}

// Cancel discards the session's resolved matches without applying them.
func (h *Handler) Cancel() {
	h.col, h.row, h.cell = nil, nil, nil
}

func (h *Handler) dropFreeForm(child tree.Node) error {
	if h.col == nil || h.row == nil {
		return errors.New(errors.ErrCodeInvalidInput, "drop without a resolved match")
	}
	s, err := h.model.Snapshot()
	if err != nil {
		return err
	}

	// A container that has never hosted a child has no grid yet: seed a
	// single cell from the element and resolve again against it.
	if s.Columns() < 1 || s.Rows() < 1 {
		if err := h.model.Bootstrap(h.elem); err != nil {
			return err
		}
		if _, err := h.ComputeMatches(h.pointer, h.elem, h.baseline); err != nil {
			return err
		}
		if s, err = h.model.Snapshot(); err != nil {
			return err
		}
	}

	col, row := *h.col, *h.row
	elem := h.elem

	// Pin implicit placements before any edit renumbers the grid.
	if err := h.model.NormalizePlacement(); err != nil {
		return err
	}

	var colIdx, colSpan int
	var left float64
	if col.Kind == match.KindCenter {
		colIdx, colSpan = 0, s.ActualColumns()
		left = col.Coord - elem.Width()/2
	} else {
		colIdx, colSpan, left = h.placement(s, geom.AxisColumns, col, elem.Width())
	}
	rowIdx, rowSpan, top := h.placement(s, geom.AxisRows, row, elem.Height())

	if col.CreatesCell {
		if colIdx, err = h.materialize(geom.AxisColumns, col, trackSize(child, elem.Width())); err != nil {
			return err
		}
	}
	if row.CreatesCell {
		if rowIdx, err = h.materialize(geom.AxisRows, row, trackSize(child, elem.Height())); err != nil {
			return err
		}
	}

	at, err := h.model.InsertIndex(rowIdx, colIdx)
	if err != nil {
		return err
	}
	h.model.Container().InsertChild(child, at)
	grid.WritePlacement(child, rowIdx, colIdx, rowSpan, colSpan)
	child.SetBounds(geom.NewRect(left, top, elem.Width(), elem.Height()))
	if g := gravityFor(col, row); g != "" {
		child.SetAttr(grid.NSLayout, grid.AttrGravity, g)
	}
	if err := h.ensureCounts(rowIdx+rowSpan, colIdx+colSpan); err != nil {
		return err
	}

	h.log.Info("drop applied",
		"type", child.Type(), "row", rowIdx, "column", colIdx,
		"rowSpan", rowSpan, "columnSpan", colSpan)
	h.Cancel()
	_, err = h.model.Reload()
	return err
}

func (h *Handler) dropGrid(child tree.Node) error {
	if h.cell == nil {
		return errors.New(errors.ErrCodeInvalidInput, "drop without a resolved match")
	}
	s, err := h.model.Snapshot()
	if err != nil {
		return err
	}

	if s.Columns() < 1 || s.Rows() < 1 {
		if err := h.model.Bootstrap(h.elem); err != nil {
			return err
		}
		if _, err := h.ComputeMatches(h.pointer, h.elem, h.baseline); err != nil {
			return err
		}
	}

	cm := *h.cell
	elem := h.elem

	if err := h.model.NormalizePlacement(); err != nil {
		return err
	}
	if cm.CreatesColumn {
		if _, err := h.model.AddColumn(cm.Column, nil, trackSize(child, elem.Width()), true, h.opts.MarginPx); err != nil {
			return err
		}
	}
	if cm.CreatesRow {
		if _, err := h.model.AddRow(cm.Row, nil, trackSize(child, elem.Height()), true, h.opts.MarginPx); err != nil {
			return err
		}
	}

	at, err := h.model.InsertIndex(cm.Row, cm.Column)
	if err != nil {
		return err
	}
	h.model.Container().InsertChild(child, at)
	grid.WritePlacement(child, cm.Row, cm.Column, 1, 1)

	final, err := h.model.Reload()
	if err != nil {
		return err
	}
	cell := final.CellRect(cm.Row, cm.Column)
	child.SetBounds(geom.NewRect(cell.Left, cell.Top, elem.Width(), elem.Height()))

	h.log.Info("grid drop applied", "type", child.Type(), "row", cm.Row, "column", cm.Column,
		"newColumn", cm.CreatesColumn, "newRow", cm.CreatesRow)
	h.Cancel()
	return nil
}

// placement resolves the element's cell index, span, and leading pixel
// coordinate on one axis from a non-center candidate, before any
// structural edit.
func (h *Handler) placement(s *grid.Snapshot, axis geom.Axis, cand match.Candidate, size float64) (idx, span int, lead float64) {
	switch {
	case cand.Kind == match.KindBaseline:
		return cand.Cell, 1, cand.Coord
	case cand.Trailing:
		lead = cand.Coord - size
	default:
		lead = cand.Coord
	}
	if cand.CreatesCell {
		return cand.Cell, 1, lead
	}

	cells := s.Columns()
	cellOf := s.ColumnAt
	extent := s.ColumnWidth
	if axis == geom.AxisRows {
		cells = s.Rows()
		cellOf = s.RowAt
		extent = s.RowHeight
	}
	// A leading match on the last line targets the cell past the grid;
	// the declared count grows instead of the span.
	if cand.Cell >= cells {
		return cand.Cell, 1, lead
	}

	start, end := cand.Cell, cand.Cell
	if cand.Trailing {
		start = cellOf(lead + edgeEps)
	} else {
		end = cellOf(lead + size - edgeEps)
	}
	span = end - start + 1
	if span < 1 {
		span = 1
	}
	// An element not meaningfully larger than its anchor cell collapses
	// to a single-cell span, anchored at the matched edge.
	if span > 1 && size <= extent(cand.Cell)*h.opts.MaxCellSizeRatio {
		return cand.Cell, 1, lead
	}
	return start, span, lead
}

// materialize inserts the grid line a creating candidate needs and
// returns the cell index the child occupies after the edit.
func (h *Handler) materialize(axis geom.Axis, cand match.Candidate, size float64) (int, error) {
	s, err := h.model.Snapshot()
	if err != nil {
		return 0, err
	}
	lines := s.ColumnLines
	if axis == geom.AxisRows {
		lines = s.RowLines
	}

	pos := grid.LineInsertPos(lines, cand.Coord)
	if pos == 0 {
		return 0, nil
	}

	// Appending for a leading match: the new line closes the cell at
	// the element's far edge, not its near one.
	px := cand.Coord
	if pos == len(lines) && !cand.Trailing {
		px += size
	}

	// A gap match earns a dedicated spacer cell only when the gap does
	// not already fall inside a sliver of the existing cell.
	spacer := !cand.Trailing && cand.Gap > 0 && cand.Coord-cand.Gap-lines[pos-1] > spacerSlackPx

	// The spacer line belongs at the start of the gap even when px was
	// advanced to close an appended cell at the element's far edge.
	gap := cand.Gap
	if spacer {
		gap = px - (cand.Coord - cand.Gap)
	}

	edit, err := h.splitAxis(axis, pos, spacer, size, px, gap)
	if err != nil {
		return 0, err
	}
	if cand.Trailing {
		// The cell ending at the new line keeps its pre-edit index.
		return cand.Cell, nil
	}
	return edit.Cell, nil
}

func (h *Handler) splitAxis(axis geom.Axis, pos int, spacer bool, size, px, gap float64) (grid.Edit, error) {
	if axis == geom.AxisRows {
		return h.model.SplitRow(pos, spacer, size, px, gap)
	}
	return h.model.SplitColumn(pos, spacer, size, px, gap)
}

// ensureCounts grows the container's declared row/column counts when a
// placement lands past them without a structural edit.
func (h *Handler) ensureCounts(rows, cols int) error {
	s, err := h.model.Reload()
	if err != nil {
		return err
	}
	c := h.model.Container()
	if cols > s.DeclaredColumns {
		c.SetAttr(grid.NSLayout, grid.AttrColumnCount, strconv.Itoa(cols))
	}
	if rows > s.DeclaredRows {
		c.SetAttr(grid.NSLayout, grid.AttrRowCount, strconv.Itoa(rows))
	}
	return nil
}

// trackSize is the extent a newly created row or column gets for the
// dropped element: its bounds on that axis, shrunk on both sides by the
// element's declared uniform inset (transparent padding inside its
// bounds). Elements without a usable inset keep their full extent.
func trackSize(child tree.Node, size float64) float64 {
	raw := child.Attr(grid.NSEditor, grid.AttrInset)
	if raw == "" {
		return size
	}
	inset, err := strconv.ParseFloat(raw, 64)
	if err != nil || inset <= 0 || 2*inset >= size {
		return size
	}
	return size - 2*inset
}

func gravityFor(col, row match.Candidate) string {
	var g []string
	switch {
	case col.Kind == match.KindCenter:
		g = append(g, grid.GravityCenterHorizontal)
	case col.Trailing:
		g = append(g, grid.GravityEnd)
	}
	switch {
	case row.Kind == match.KindBaseline:
		g = append(g, grid.GravityBaseline)
	case row.Trailing:
		g = append(g, grid.GravityBottom)
	}
	return strings.Join(g, "|")
}

func snapTo(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Round(v/step) * step
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
