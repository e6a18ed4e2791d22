package tree

import (
	"sort"

	"github.com/layouteng/gridsnap/pkg/geom"
)

// node is the in-memory Node implementation.
type node struct {
	typeName string
	bounds   geom.Rect
	attrs    map[attrKey]string
	children []*node
	parent   *node
}

type attrKey struct {
	ns   string
	name string
}

// New creates a detached node of the given type name.
func New(typeName string) Node {
	return &node{
		typeName: typeName,
		attrs:    make(map[attrKey]string),
	}
}

func (n *node) Type() string { return n.typeName }

func (n *node) Bounds() geom.Rect     { return n.bounds }
func (n *node) SetBounds(r geom.Rect) { n.bounds = r }

func (n *node) Attr(ns, name string) string {
	return n.attrs[attrKey{ns: ns, name: name}]
}

func (n *node) SetAttr(ns, name, value string) {
	k := attrKey{ns: ns, name: name}
	if value == "" {
		delete(n.attrs, k)
		return
	}
	n.attrs[k] = value
}

func (n *node) Children() []Node {
	out := make([]Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *node) ChildCount() int { return len(n.children) }

func (n *node) InsertChild(c Node, at int) {
	cn, ok := c.(*node)
	if !ok {
		// Foreign implementations are wrapped so the tree stays uniform.
		cn = clone(c)
	}
	if cn.parent != nil {
		cn.parent.remove(cn)
	}
	if at < 0 || at > len(n.children) {
		at = len(n.children)
	}
	n.children = append(n.children, nil)
	copy(n.children[at+1:], n.children[at:])
	n.children[at] = cn
	cn.parent = n
}

func (n *node) NewChild(typeName string, at int) Node {
	c := New(typeName)
	n.InsertChild(c, at)
	return c
}

func (n *node) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *node) IndexOf(c Node) int {
	for i, ch := range n.children {
		if Node(ch) == c {
			return i
		}
	}
	return -1
}

func (n *node) remove(c *node) {
	for i, ch := range n.children {
		if ch == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return
		}
	}
}

// clone deep-copies a foreign Node implementation into a *node.
func clone(src Node) *node {
	dst := New(src.Type()).(*node)
	dst.bounds = src.Bounds()
	for _, k := range AttrKeys(src) {
		dst.SetAttr(k.NS, k.Name, src.Attr(k.NS, k.Name))
	}
	for _, c := range src.Children() {
		dst.InsertChild(clone(c), Append)
	}
	return dst
}

// AttrRef identifies one attribute on a node.
type AttrRef struct {
	NS   string
	Name string
}

// AttrKeys returns the set attributes of a node in a stable order.
// For foreign implementations it returns nil; only the in-memory node
// exposes its attribute set.
func AttrKeys(n Node) []AttrRef {
	mn, ok := n.(*node)
	if !ok {
		return nil
	}
	out := make([]AttrRef, 0, len(mn.attrs))
	for k := range mn.attrs {
		out = append(out, AttrRef{NS: k.ns, Name: k.name})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].NS != out[j].NS {
			return out[i].NS < out[j].NS
		}
		return out[i].Name < out[j].Name
	})
	return out
}
