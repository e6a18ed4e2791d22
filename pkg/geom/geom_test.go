package geom

import "testing"

func TestRectDimensions(t *testing.T) {
	tests := []struct {
		name       string
		rect       Rect
		wantWidth  float64
		wantHeight float64
	}{
		{
			name:       "positive extent",
			rect:       Rect{Left: 10, Top: 20, Right: 60, Bottom: 50},
			wantWidth:  50,
			wantHeight: 30,
		},
		{
			name:       "zero area",
			rect:       Rect{Left: 10, Top: 10, Right: 10, Bottom: 10},
			wantWidth:  0,
			wantHeight: 0,
		},
		{
			name:       "from origin",
			rect:       NewRect(0, 0, 100, 40),
			wantWidth:  100,
			wantHeight: 40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Width(); got != tt.wantWidth {
				t.Errorf("Width() = %v, want %v", got, tt.wantWidth)
			}
			if got := tt.rect.Height(); got != tt.wantHeight {
				t.Errorf("Height() = %v, want %v", got, tt.wantHeight)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{Left: 20, Top: 10, Right: 80, Bottom: 50}
	if got := r.CenterX(); got != 50 {
		t.Errorf("CenterX() = %v, want 50", got)
	}
	if got := r.CenterY(); got != 30 {
		t.Errorf("CenterY() = %v, want 30", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 100, 100)

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{name: "interior", p: Point{X: 50, Y: 50}, want: true},
		{name: "edge", p: Point{X: 0, Y: 100}, want: true},
		{name: "outside", p: Point{X: 101, Y: 50}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectOverlapsVertically(t *testing.T) {
	r := Rect{Left: 0, Top: 50, Right: 10, Bottom: 100}

	tests := []struct {
		name        string
		top, bottom float64
		want        bool
	}{
		{name: "full overlap", top: 0, bottom: 200, want: true},
		{name: "partial overlap", top: 90, bottom: 110, want: true},
		{name: "touching is open interval", top: 100, bottom: 150, want: false},
		{name: "disjoint above", top: 0, bottom: 40, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.OverlapsVertically(tt.top, tt.bottom); got != tt.want {
				t.Errorf("OverlapsVertically(%v, %v) = %v, want %v", tt.top, tt.bottom, got, tt.want)
			}
		})
	}
}

func TestRectAt(t *testing.T) {
	r := NewRect(10, 10, 40, 30)
	moved := r.At(Point{X: 100, Y: 200})

	want := Rect{Left: 100, Top: 200, Right: 140, Bottom: 230}
	if moved != want {
		t.Errorf("At() = %+v, want %+v", moved, want)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name       string
		v, lo, hi  float64
		want       float64
	}{
		{name: "below", v: -5, lo: 0, hi: 10, want: 0},
		{name: "inside", v: 5, lo: 0, hi: 10, want: 5},
		{name: "above", v: 15, lo: 0, hi: 10, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}
