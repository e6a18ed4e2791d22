package match

import "sort"

// Kind identifies how a candidate aligns the dragged element.
type Kind int

const (
	// KindEdge aligns the element's leading or trailing edge with an
	// existing grid line.
	KindEdge Kind = iota
	// KindCenter centers the element horizontally across the whole row.
	KindCenter
	// KindGapMargin places the element one container margin in from the
	// container's edge.
	KindGapMargin
	// KindGapShort places the element a short gap away from the nearest
	// neighbor's far edge.
	KindGapShort
	// KindGapFlush places the element directly against the nearest
	// neighbor's far edge.
	KindGapFlush
	// KindBaseline aligns the element's text baseline with a row's
	// baseline.
	KindBaseline
	// KindFallback is the guaranteed last-resort placement at the
	// element's current position.
	KindFallback
)

func (k Kind) String() string {
	switch k {
	case KindEdge:
		return "edge"
	case KindCenter:
		return "center"
	case KindGapMargin:
		return "margin-gap"
	case KindGapShort:
		return "short-gap"
	case KindGapFlush:
		return "flush"
	case KindBaseline:
		return "baseline"
	case KindFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Candidate is one possible alignment on a single axis. It is a plain
// record: resolution fills it in, ranking orders it, and the drop
// handler consumes it. Display text is derived separately by Describe.
type Candidate struct {
	// Kind is the alignment family this candidate belongs to.
	Kind Kind

	// Trailing is set when the candidate aligns the element's trailing
	// (right/bottom) edge rather than its leading edge.
	Trailing bool

	// Distance is the ranking score in pixels. Smaller wins; penalties
	// are folded in here rather than kept in separate fields.
	Distance float64

	// Coord is the pixel coordinate the aligned edge lands on. For
	// baseline candidates it is the element's resulting top coordinate.
	Coord float64

	// Cell is the cell index the element occupies on this axis after
	// the drop, before any structural edit renumbers the grid.
	Cell int

	// CreatesCell reports that applying this candidate inserts a new
	// grid line.
	CreatesCell bool

	// Gap is the gap size in pixels for margin and short-gap kinds.
	Gap float64
}

// Best returns the lowest-distance candidate. Ranking is a stable sort,
// so generation order breaks ties and resolution stays deterministic.
func Best(cands []Candidate) (Candidate, bool) {
	if len(cands) == 0 {
		return Candidate{}, false
	}
	ranked := make([]Candidate, len(cands))
	copy(ranked, cands)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})
	return ranked[0], true
}
