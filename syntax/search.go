package syntax

import (
	"fmt"
	"iter"
)

func mustNode(n Node, op string) {
	if e, ok := n.(*Element); n == nil || ok && e == nil {
		panic(fmt.Errorf("syntax.%s: %w", op, ErrNilNode))
	}
}

func hasKind(k Kind, kinds []Kind) bool {
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

// FindFirstAncestor returns the nearest strict ancestor of start whose kind is one
// of kinds, or nil if the root is reached without a match.
func FindFirstAncestor(start Node, kinds ...Kind) Node {
	mustNode(start, "FindFirstAncestor")
	return findAncestor(start.Parent(), kinds)
}

// FindFirstAncestorOrSelf is like FindFirstAncestor but checks start itself first.
func FindFirstAncestorOrSelf(start Node, kinds ...Kind) Node {
	mustNode(start, "FindFirstAncestorOrSelf")
	return findAncestor(start, kinds)
}

func findAncestor(n Node, kinds []Kind) Node {
	for ; n != nil; n = n.Parent() {
		if hasKind(n.Kind(), kinds) {
			return n
		}
	}
	return nil
}

// Ancestors yields the strict ancestors of n from the parent up to the root.
func Ancestors(n Node) iter.Seq[Node] {
	mustNode(n, "Ancestors")
	return func(yield func(Node) bool) {
		for p := n.Parent(); p != nil; p = p.Parent() {
			if !yield(p) {
				return
			}
		}
	}
}

// DescendantTypeDeclarations yields the class, struct, interface and record
// declarations below root in pre-order. Members that cannot declare nested types
// (methods, constructors, destructors, delegates, enums, properties, fields,
// interfaces, events) are not descended into; an interface declaration is
// still yielded itself.
func DescendantTypeDeclarations(root Node) iter.Seq[Node] {
	mustNode(root, "DescendantTypeDeclarations")
	return func(yield func(Node) bool) {
		if prunesTypeSearch(root.Kind()) {
			return
		}
		yieldTypeDeclarations(root.Children(), yield)
	}
}

func yieldTypeDeclarations(children []Node, yield func(Node) bool) bool {
	for _, c := range children {
		if IsTypeDeclaration(c.Kind()) && !yield(c) {
			return false
		}
		if prunesTypeSearch(c.Kind()) {
			continue
		}
		if !yieldTypeDeclarations(c.Children(), yield) {
			return false
		}
	}
	return true
}

// IsEmbeddedStatementOwner reports whether n owns a single embedded statement:
// if, else, for, foreach, while, using, do, lock and fixed.
func IsEmbeddedStatementOwner(n Node) bool {
	if n == nil {
		return false
	}
	return isEmbeddedStatementOwnerKind(n.Kind())
}

// SingleStatementFromBlock unwraps a block holding exactly one statement. A
// block with zero or several statements yields (nil, false). Any other node is
// returned unchanged.
func SingleStatementFromBlock(stmt Node) (Node, bool) {
	mustNode(stmt, "SingleStatementFromBlock")
	if stmt.Kind() != KindBlock {
		return stmt, true
	}
	statements := stmt.Children()
	if len(statements) != 1 {
		return nil, false
	}
	return statements[0], true
}
