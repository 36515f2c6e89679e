package syntax

import "errors"

// ErrNilNode is wrapped by the panic raised when a required node argument is nil.
var ErrNilNode = errors.New("nil syntax node")

// Node is an immutable syntax tree element supplied by a front-end.
//
// Parent must return a nil interface (not a typed nil) at the root.
type Node interface {
	Kind() Kind
	Parent() Node
	Children() []Node
}

// Element is an in-memory Node. Trees built from Elements are immutable once
// NewElement returns.
type Element struct {
	kind     Kind
	Text     string
	parent   *Element
	children []*Element
}

// NewElement creates an element of the given kind and adopts children as its
// ordered child list. A child can only be adopted once.
func NewElement(kind Kind, children ...*Element) *Element {
	e := &Element{kind: kind, children: children}
	for _, c := range children {
		if c.parent != nil {
			panic("syntax: element already has a parent")
		}
		c.parent = e
	}
	return e
}

// NewText creates an element labelled with text, typically a leaf.
func NewText(kind Kind, text string, children ...*Element) *Element {
	e := NewElement(kind, children...)
	e.Text = text
	return e
}

// Kind returns the element kind.
func (e *Element) Kind() Kind { return e.kind }

// Parent returns the enclosing element, or nil at the root.
func (e *Element) Parent() Node {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

// Children returns the child elements in source order.
func (e *Element) Children() []Node {
	nodes := make([]Node, len(e.children))
	for i, c := range e.children {
		nodes[i] = c
	}
	return nodes
}

// String returns the element kind and its text label, if any.
func (e *Element) String() string {
	if e.Text == "" {
		return string(e.kind)
	}
	return string(e.kind) + "(" + e.Text + ")"
}
