// Package match generates and ranks candidate alignments for a dragged
// element over a grid container. Candidates are plain data records;
// ranking is an explicit sort by distance, and display strings are a
// separate pure function over the match kind.
package match

// Tuning constants. These are empirically chosen UX heuristics; the
// exact values and their directionality matter.
const (
	// flushPenaltyPx is added to the flush-adjacent candidate's distance
	// so that, at equal raw distance, an edge match on an existing
	// boundary beats inserting a redundant new line at the same visual
	// position.
	flushPenaltyPx = 2

	// centerToleranceFactor widens the acceptance threshold for
	// whole-row center alignment; centering is a coarser gesture than
	// edge snapping.
	centerToleranceFactor = 2

	// lineCoincidenceEps decides whether a proposed coordinate sits on
	// an existing grid line.
	lineCoincidenceEps = 0.5
)

// Options carries every recognized tuning knob for match resolution and
// drop application. Options are explicit per handler, never process-wide
// state, so resolution stays pure given its inputs.
type Options struct {
	// MaxMatchDistance is the snap tolerance in pixels.
	MaxMatchDistance float64 `toml:"max_match_distance"`

	// MarginPx is the container margin size in pixels.
	MarginPx float64 `toml:"margin"`

	// ShortGapDp is the preferred small gap between neighbors, in dp.
	ShortGapDp float64 `toml:"short_gap_dp"`

	// DpScale converts dp to pixels (pixels per dp). Zero means 1.
	DpScale float64 `toml:"dp_scale"`

	// MaxCellSizeRatio bounds how much an element may exceed its target
	// cell before it keeps a multi-cell span.
	MaxCellSizeRatio float64 `toml:"max_cell_size_ratio"`

	// CellInsertionRadius is the grid-mode distance from a cell boundary
	// within which a drop inserts a new row/column.
	CellInsertionRadius float64 `toml:"cell_insertion_radius"`

	// Slop widens the insertion radius to absorb pointer jitter.
	Slop float64 `toml:"slop"`

	// GridMode switches from continuous free-form snapping to discrete
	// cell-based placement.
	GridMode bool `toml:"grid_mode"`

	// SnapToGrid quantizes the dragged element's position before
	// free-form resolution.
	SnapToGrid bool `toml:"snap_to_grid"`
}

// DefaultOptions returns the standard editor tuning.
func DefaultOptions() Options {
	return Options{
		MaxMatchDistance:    16,
		MarginPx:            8,
		ShortGapDp:          8,
		DpScale:             1,
		MaxCellSizeRatio:    1.2,
		CellInsertionRadius: 6,
		Slop:                2,
	}
}

// ShortGapPx returns the short-gap size converted to pixels.
func (o Options) ShortGapPx() float64 {
	scale := o.DpScale
	if scale <= 0 {
		scale = 1
	}
	return o.ShortGapDp * scale
}

// SnapStepPx is the quantization step used when SnapToGrid is enabled.
// It tracks the short-gap size so snapped positions land on gap-friendly
// coordinates.
func (o Options) SnapStepPx() float64 {
	if g := o.ShortGapPx(); g > 0 {
		return g
	}
	return 8
}

// InsertionRadius returns the effective grid-mode insertion radius.
func (o Options) InsertionRadius() float64 {
	return o.CellInsertionRadius + o.Slop
}
