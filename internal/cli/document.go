package cli

import (
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/layouteng/gridsnap/pkg/errors"
	"github.com/layouteng/gridsnap/pkg/geom"
	"github.com/layouteng/gridsnap/pkg/grid"
	"github.com/layouteng/gridsnap/pkg/tree"
)

// =============================================================================
// Layout Documents
// =============================================================================

// Document is the TOML form of a layout container and its children.
type Document struct {
	Container ContainerDoc `toml:"container"`
	Children  []ChildDoc   `toml:"children"`
}

// ContainerDoc describes the grid container. Bounds are
// [left, top, width, height]; line coordinates are absolute pixels.
type ContainerDoc struct {
	Type        string    `toml:"type"`
	Bounds      []float64 `toml:"bounds"`
	ColumnLines []float64 `toml:"column_lines,omitempty"`
	RowLines    []float64 `toml:"row_lines,omitempty"`
	Columns     int       `toml:"columns,omitempty"`
	Rows        int       `toml:"rows,omitempty"`
}

// ChildDoc describes one placed child.
type ChildDoc struct {
	Type       string    `toml:"type"`
	Bounds     []float64 `toml:"bounds"`
	Row        int       `toml:"row"`
	Column     int       `toml:"column"`
	RowSpan    int       `toml:"row_span,omitempty"`
	ColumnSpan int       `toml:"column_span,omitempty"`
	Gravity    string    `toml:"gravity,omitempty"`
	Baseline   float64   `toml:"baseline,omitempty"`
}

// LoadDocument reads a layout document and builds its node tree.
func LoadDocument(path string) (tree.Node, error) {
	var doc Document
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "layout file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "parse layout %s", path)
	}
	return doc.BuildTree()
}

// BuildTree converts the document into a container node.
func (d Document) BuildTree() (tree.Node, error) {
	typeName := d.Container.Type
	if typeName == "" {
		typeName = "grid"
	}
	if err := errors.ValidateTypeName(typeName); err != nil {
		return nil, err
	}

	c := tree.New(typeName)
	b, err := rectOf(d.Container.Bounds)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "container bounds")
	}
	c.SetBounds(b)
	if len(d.Container.ColumnLines) > 0 {
		c.SetAttr(grid.NSEditor, grid.AttrColumnLines, joinLines(d.Container.ColumnLines))
	}
	if len(d.Container.RowLines) > 0 {
		c.SetAttr(grid.NSEditor, grid.AttrRowLines, joinLines(d.Container.RowLines))
	}
	if d.Container.Columns > 0 {
		c.SetAttr(grid.NSLayout, grid.AttrColumnCount, strconv.Itoa(d.Container.Columns))
	}
	if d.Container.Rows > 0 {
		c.SetAttr(grid.NSLayout, grid.AttrRowCount, strconv.Itoa(d.Container.Rows))
	}

	for i, ch := range d.Children {
		if err := errors.ValidateTypeName(ch.Type); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "child %d", i)
		}
		n := c.NewChild(ch.Type, tree.Append)
		cb, err := rectOf(ch.Bounds)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "child %d bounds", i)
		}
		n.SetBounds(cb)

		rowSpan, colSpan := ch.RowSpan, ch.ColumnSpan
		if rowSpan < 1 {
			rowSpan = 1
		}
		if colSpan < 1 {
			colSpan = 1
		}
		grid.WritePlacement(n, ch.Row, ch.Column, rowSpan, colSpan)
		if ch.Gravity != "" {
			n.SetAttr(grid.NSLayout, grid.AttrGravity, ch.Gravity)
		}
		if ch.Baseline > 0 {
			n.SetAttr(grid.NSEditor, grid.AttrBaseline, strconv.FormatFloat(ch.Baseline, 'g', -1, 64))
		}
	}
	return c, nil
}

// DocumentFromTree derives the TOML form from a container node. Children
// come out in tree order with their effective placement.
func DocumentFromTree(container tree.Node) (Document, error) {
	s, err := grid.NewModel(container).Snapshot()
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		Container: ContainerDoc{
			Type:        container.Type(),
			Bounds:      boundsOf(container.Bounds()),
			ColumnLines: s.ColumnLines,
			RowLines:    s.RowLines,
			Columns:     s.ActualColumns(),
			Rows:        s.ActualRows(),
		},
	}

	for _, c := range s.Children {
		ch := ChildDoc{
			Type:    c.Node.Type(),
			Bounds:  boundsOf(c.Node.Bounds()),
			Row:     c.Row,
			Column:  c.Column,
			Gravity: c.Gravity,
		}
		if c.RowSpan > 1 {
			ch.RowSpan = c.RowSpan
		}
		if c.ColumnSpan > 1 {
			ch.ColumnSpan = c.ColumnSpan
		}
		if raw := c.Node.Attr(grid.NSEditor, grid.AttrBaseline); raw != "" {
			if b, err := strconv.ParseFloat(raw, 64); err == nil {
				ch.Baseline = b
			}
		}
		doc.Children = append(doc.Children, ch)
	}
	return doc, nil
}

// SaveDocument writes the container's current state to path.
func SaveDocument(path string, container tree.Node) error {
	doc, err := DocumentFromTree(container)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(doc); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode %s", path)
	}
	return nil
}

// =============================================================================
// Helpers
// =============================================================================

func rectOf(v []float64) (geom.Rect, error) {
	if len(v) != 4 {
		return geom.Rect{}, errors.New(errors.ErrCodeInvalidDocument,
			"bounds need 4 values [left top width height], got %d", len(v))
	}
	return geom.NewRect(v[0], v[1], v[2], v[3]), nil
}

func boundsOf(r geom.Rect) []float64 {
	return []float64{r.Left, r.Top, r.Width(), r.Height()}
}

func joinLines(v []float64) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}
