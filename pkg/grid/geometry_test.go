package grid

import (
	"testing"

	"github.com/layouteng/gridsnap/pkg/geom"
	"github.com/layouteng/gridsnap/pkg/tree"
)

// testContainer builds a 2x2 grid: columns [0,100,200], rows [0,50,100].
func testContainer(t *testing.T) tree.Node {
	t.Helper()
	c := tree.New("grid")
	c.SetBounds(geom.NewRect(0, 0, 200, 100))
	c.SetAttr(NSEditor, AttrColumnLines, "0,100,200")
	c.SetAttr(NSEditor, AttrRowLines, "0,50,100")
	c.SetAttr(NSLayout, AttrColumnCount, "2")
	c.SetAttr(NSLayout, AttrRowCount, "2")
	return c
}

func addChild(c tree.Node, typeName string, row, col int, bounds geom.Rect) tree.Node {
	n := c.NewChild(typeName, tree.Append)
	n.SetBounds(bounds)
	WritePlacement(n, row, col, 1, 1)
	return n
}

func snapshotOf(t *testing.T, c tree.Node) *Snapshot {
	t.Helper()
	s, err := NewModel(c).Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}
	return s
}

func TestColumnAt(t *testing.T) {
	s := snapshotOf(t, testContainer(t))

	tests := []struct {
		name string
		x    float64
		want int
	}{
		{name: "first cell", x: 50, want: 0},
		{name: "on interior line", x: 100, want: 1},
		{name: "second cell", x: 150, want: 1},
		{name: "clamped below", x: -10, want: 0},
		{name: "clamped above", x: 250, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.ColumnAt(tt.x); got != tt.want {
				t.Errorf("ColumnAt(%v) = %d, want %d", tt.x, got, tt.want)
			}
		})
	}
}

func TestClosestColumnLine(t *testing.T) {
	s := snapshotOf(t, testContainer(t))

	tests := []struct {
		name string
		x    float64
		want int
	}{
		{name: "near leading edge", x: 3, want: 0},
		{name: "near interior line", x: 98, want: 1},
		{name: "midpoint prefers lower index", x: 50, want: 0},
		{name: "beyond trailing edge", x: 400, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.ClosestColumnLine(tt.x); got != tt.want {
				t.Errorf("ClosestColumnLine(%v) = %d, want %d", tt.x, got, tt.want)
			}
		})
	}
}

func TestLineDistance(t *testing.T) {
	s := snapshotOf(t, testContainer(t))

	if d := s.LineDistance(geom.AxisColumns, 1, 98); d != 2 {
		t.Errorf("LineDistance(columns, 1, 98) = %v, want 2", d)
	}
	if d := s.LineDistance(geom.AxisRows, 1, 48); d != 2 {
		t.Errorf("LineDistance(rows, 1, 48) = %v, want 2", d)
	}
	// Clamped index.
	if d := s.LineDistance(geom.AxisColumns, 99, 200); d != 0 {
		t.Errorf("LineDistance with clamped index = %v, want 0", d)
	}
}

func TestEmptyGridQueries(t *testing.T) {
	c := tree.New("grid")
	s := snapshotOf(t, c)

	if got := s.ColumnAt(123); got != 0 {
		t.Errorf("ColumnAt on empty grid = %d, want 0", got)
	}
	if got := s.RowAt(-5); got != 0 {
		t.Errorf("RowAt on empty grid = %d, want 0", got)
	}
	if got := s.ClosestColumnLine(10); got != 0 {
		t.Errorf("ClosestColumnLine on empty grid = %d, want 0", got)
	}
	if got := s.LineDistance(geom.AxisColumns, 0, 10); got != 0 {
		t.Errorf("LineDistance on empty grid = %v, want 0", got)
	}
}

func TestDefaultLinesFromBounds(t *testing.T) {
	c := tree.New("grid")
	c.SetBounds(geom.NewRect(10, 20, 100, 50))
	s := snapshotOf(t, c)

	if s.Columns() != 1 || s.Rows() != 1 {
		t.Fatalf("Columns=%d Rows=%d, want 1 and 1", s.Columns(), s.Rows())
	}
	if s.ColumnLines[0] != 10 || s.ColumnLines[1] != 110 {
		t.Errorf("ColumnLines = %v, want [10 110]", s.ColumnLines)
	}
}

func TestIntersectingChildren(t *testing.T) {
	c := testContainer(t)
	addChild(c, "button", 0, 0, geom.NewRect(0, 0, 100, 50))
	addChild(c, "label", 1, 1, geom.NewRect(100, 50, 100, 50))
	s := snapshotOf(t, c)

	if got := s.IntersectingChildren(0, 40); len(got) != 1 || got[0].Node.Type() != "button" {
		t.Errorf("IntersectingChildren(0,40) = %d children, want the button only", len(got))
	}
	if got := s.IntersectingChildren(60, 90); len(got) != 1 || got[0].Node.Type() != "label" {
		t.Errorf("IntersectingChildren(60,90) = %d children, want the label only", len(got))
	}
	// Open interval: touching at the boundary does not intersect.
	if got := s.IntersectingChildren(50, 50); len(got) != 0 {
		t.Errorf("IntersectingChildren(50,50) = %d children, want 0", len(got))
	}
}

func TestBaseline(t *testing.T) {
	c := testContainer(t)
	b := addChild(c, "label", 0, 0, geom.NewRect(0, 0, 100, 50))
	b.SetAttr(NSEditor, AttrBaseline, "12")
	spanning := addChild(c, "big", 1, 0, geom.NewRect(0, 50, 100, 50))
	spanning.SetAttr(NSLayout, AttrRowSpan, "2")
	spanning.SetAttr(NSEditor, AttrBaseline, "9")
	s := snapshotOf(t, c)

	got, ok := s.Baseline(0)
	if !ok || got != 12 {
		t.Errorf("Baseline(0) = %v, %v; want 12, true", got, ok)
	}

	// Row 1's only child spans two rows, so it contributes no baseline.
	if _, ok := s.Baseline(1); ok {
		t.Error("Baseline(1) should be absent")
	}

	if _, ok := s.Baseline(7); ok {
		t.Error("Baseline out of range should be absent")
	}
}

func TestActualCounts(t *testing.T) {
	c := testContainer(t)
	s := snapshotOf(t, c)
	if got := s.ActualColumns(); got != 2 {
		t.Errorf("ActualColumns() = %d, want declared 2", got)
	}

	wide := addChild(c, "wide", 0, 1, geom.NewRect(100, 0, 100, 50))
	wide.SetAttr(NSLayout, AttrColumnSpan, "3")
	s = snapshotOf(t, c)
	if got := s.ActualColumns(); got != 4 {
		t.Errorf("ActualColumns() with spanning child = %d, want 4", got)
	}

	// Never zero, even with nothing declared.
	empty := tree.New("grid")
	s = snapshotOf(t, empty)
	if got := s.ActualColumns(); got != 1 {
		t.Errorf("ActualColumns() on empty grid = %d, want 1", got)
	}
}

func TestLineInsertPos(t *testing.T) {
	lines := []float64{0, 100, 200}

	tests := []struct {
		name  string
		coord float64
		want  int
	}{
		{name: "interior", coord: 150, want: 2},
		{name: "first cell", coord: 30, want: 1},
		{name: "past the end", coord: 205, want: 3},
		{name: "before the start", coord: -5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LineInsertPos(lines, tt.coord); got != tt.want {
				t.Errorf("LineInsertPos(%v) = %d, want %d", tt.coord, got, tt.want)
			}
		})
	}
}
