// Package tree defines the abstract mutable ordered tree the layout core
// operates on. The editor owns the real document; the core only needs a
// narrow surface: bounds, namespaced attributes, ordered children, and
// child insertion. The in-memory implementation in this package backs the
// CLI and the tests.
package tree

import "github.com/layouteng/gridsnap/pkg/geom"

// Node is a single element in the layout document tree.
//
// Attribute access is namespaced so that structural placement attributes
// and editor-maintained measurement attributes can live side by side
// without colliding. An unset attribute reads as the empty string.
type Node interface {
	// Type returns the element's type name (e.g. "grid", "button").
	Type() string

	// Bounds returns the element's measured pixel bounds.
	Bounds() geom.Rect

	// SetBounds updates the element's measured pixel bounds.
	SetBounds(r geom.Rect)

	// Attr returns the value of the attribute name in namespace ns,
	// or "" when unset.
	Attr(ns, name string) string

	// SetAttr sets the attribute name in namespace ns. An empty value
	// removes the attribute.
	SetAttr(ns, name, value string)

	// Children returns the ordered child list. The returned slice is a
	// copy; mutating it does not affect the node.
	Children() []Node

	// ChildCount returns the number of children.
	ChildCount() int

	// InsertChild inserts n as a child at position at. An at of -1 (or
	// any position past the end) appends. n is detached from any
	// previous parent first.
	InsertChild(n Node, at int)

	// NewChild creates a child of the given type name at position at
	// (-1 appends) and returns it.
	NewChild(typeName string, at int) Node

	// Parent returns the parent node, or nil for a detached root.
	Parent() Node

	// IndexOf returns the position of child n, or -1 if n is not a
	// direct child.
	IndexOf(n Node) int
}

// Append is a sentinel insertion position accepted by InsertChild and
// NewChild.
const Append = -1
