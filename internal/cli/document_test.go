package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/layouteng/gridsnap/pkg/errors"
	"github.com/layouteng/gridsnap/pkg/geom"
	"github.com/layouteng/gridsnap/pkg/grid"
)

const sampleLayout = `
[container]
type = "grid"
bounds = [0.0, 0.0, 200.0, 100.0]
column_lines = [0.0, 100.0, 200.0]
row_lines = [0.0, 50.0, 100.0]
columns = 2
rows = 2

[[children]]
type = "button"
bounds = [0.0, 0.0, 100.0, 50.0]
row = 0
column = 0
baseline = 12.0

[[children]]
type = "label"
bounds = [100.0, 50.0, 100.0, 50.0]
row = 1
column = 1
column_span = 2
gravity = "end"
`

func writeLayout(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDocument(t *testing.T) {
	c, err := LoadDocument(writeLayout(t, sampleLayout))
	if err != nil {
		t.Fatalf("LoadDocument() error: %v", err)
	}

	if c.Type() != "grid" {
		t.Errorf("container type = %q, want grid", c.Type())
	}
	if got, want := c.Bounds(), geom.NewRect(0, 0, 200, 100); got != want {
		t.Errorf("container bounds = %+v, want %+v", got, want)
	}
	if got := c.Attr(grid.NSEditor, grid.AttrColumnLines); got != "0,100,200" {
		t.Errorf("column lines attr = %q, want 0,100,200", got)
	}
	if c.ChildCount() != 2 {
		t.Fatalf("child count = %d, want 2", c.ChildCount())
	}

	button := c.Children()[0]
	if got := button.Attr(grid.NSEditor, grid.AttrBaseline); got != "12" {
		t.Errorf("button baseline = %q, want 12", got)
	}
	label := c.Children()[1]
	if got := label.Attr(grid.NSLayout, grid.AttrColumnSpan); got != "2" {
		t.Errorf("label column span = %q, want 2", got)
	}
	if got := label.Attr(grid.NSLayout, grid.AttrGravity); got != "end" {
		t.Errorf("label gravity = %q, want end", got)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	c, err := LoadDocument(writeLayout(t, sampleLayout))
	if err != nil {
		t.Fatalf("LoadDocument() error: %v", err)
	}

	out := filepath.Join(t.TempDir(), "out.toml")
	if err := SaveDocument(out, c); err != nil {
		t.Fatalf("SaveDocument() error: %v", err)
	}
	reloaded, err := LoadDocument(out)
	if err != nil {
		t.Fatalf("LoadDocument() after save error: %v", err)
	}

	before, err := DocumentFromTree(c)
	if err != nil {
		t.Fatal(err)
	}
	after, err := DocumentFromTree(reloaded)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("document changed across save/load:\n%s", diff)
	}
}

func TestLoadDocumentMissing(t *testing.T) {
	_, err := LoadDocument(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("LoadDocument() error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestBuildTreeRejectsBadBounds(t *testing.T) {
	doc := Document{
		Container: ContainerDoc{Type: "grid", Bounds: []float64{1, 2, 3}},
	}
	_, err := doc.BuildTree()
	if !errors.Is(err, errors.ErrCodeInvalidDocument) {
		t.Errorf("BuildTree() error = %v, want %s", err, errors.ErrCodeInvalidDocument)
	}
}
