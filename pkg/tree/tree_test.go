package tree

import (
	"testing"

	"github.com/layouteng/gridsnap/pkg/geom"
)

func TestAttrRoundTrip(t *testing.T) {
	n := New("grid")

	n.SetAttr("layout", "column", "3")
	if got := n.Attr("layout", "column"); got != "3" {
		t.Errorf("Attr() = %q, want %q", got, "3")
	}

	// Same name in a different namespace is a different attribute.
	n.SetAttr("editor", "column", "other")
	if got := n.Attr("layout", "column"); got != "3" {
		t.Errorf("Attr() after cross-namespace set = %q, want %q", got, "3")
	}

	// Empty value removes.
	n.SetAttr("layout", "column", "")
	if got := n.Attr("layout", "column"); got != "" {
		t.Errorf("Attr() after removal = %q, want empty", got)
	}
}

func TestInsertChildOrdering(t *testing.T) {
	root := New("grid")
	a := root.NewChild("a", Append)
	c := root.NewChild("c", Append)

	b := New("b")
	root.InsertChild(b, 1)

	got := root.Children()
	if len(got) != 3 {
		t.Fatalf("ChildCount = %d, want 3", len(got))
	}
	wantOrder := []string{"a", "b", "c"}
	for i, w := range wantOrder {
		if got[i].Type() != w {
			t.Errorf("child %d = %q, want %q", i, got[i].Type(), w)
		}
	}

	if root.IndexOf(b) != 1 {
		t.Errorf("IndexOf(b) = %d, want 1", root.IndexOf(b))
	}
	if root.IndexOf(a) != 0 || root.IndexOf(c) != 2 {
		t.Errorf("IndexOf(a)=%d IndexOf(c)=%d, want 0 and 2", root.IndexOf(a), root.IndexOf(c))
	}
}

func TestInsertChildAppendSentinel(t *testing.T) {
	root := New("grid")
	root.NewChild("a", Append)

	b := New("b")
	root.InsertChild(b, Append)

	if root.IndexOf(b) != 1 {
		t.Errorf("IndexOf(b) = %d, want 1", root.IndexOf(b))
	}
}

func TestInsertChildReparents(t *testing.T) {
	first := New("grid")
	second := New("grid")

	c := first.NewChild("button", Append)
	second.InsertChild(c, Append)

	if first.ChildCount() != 0 {
		t.Errorf("old parent ChildCount = %d, want 0", first.ChildCount())
	}
	if c.Parent() != second {
		t.Error("Parent() should be the new parent")
	}
}

func TestBounds(t *testing.T) {
	n := New("button")
	r := geom.NewRect(10, 20, 100, 50)
	n.SetBounds(r)
	if n.Bounds() != r {
		t.Errorf("Bounds() = %+v, want %+v", n.Bounds(), r)
	}
}

func TestAttrKeysStableOrder(t *testing.T) {
	n := New("grid")
	n.SetAttr("layout", "row", "1")
	n.SetAttr("editor", "rowLines", "0,50")
	n.SetAttr("layout", "column", "2")

	keys := AttrKeys(n)
	want := []AttrRef{
		{NS: "editor", Name: "rowLines"},
		{NS: "layout", Name: "column"},
		{NS: "layout", Name: "row"},
	}
	if len(keys) != len(want) {
		t.Fatalf("AttrKeys len = %d, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("AttrKeys[%d] = %+v, want %+v", i, keys[i], want[i])
		}
	}
}
