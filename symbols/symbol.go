// Package symbols provides read-only walks over declared type and member symbols.
package symbols

import "errors"

// ErrNilSymbol is wrapped by the panic raised when a required symbol argument is nil.
var ErrNilSymbol = errors.New("nil symbol")

// Kind identifies what a symbol declares.
type Kind string

const (
	KindClass     Kind = "class"
	KindStruct    Kind = "struct"
	KindInterface Kind = "interface"
	KindEnum      Kind = "enum"
	KindRecord    Kind = "record"
	KindDelegate  Kind = "delegate"

	KindMethod      Kind = "method"
	KindConstructor Kind = "constructor"
	KindDestructor  Kind = "destructor"
	KindOperator    Kind = "operator"

	KindProperty Kind = "property"
	KindField    Kind = "field"
	KindEvent    Kind = "event"
)

// IsTypeKind reports whether k declares a named type.
func IsTypeKind(k Kind) bool {
	switch k {
	case KindClass, KindStruct, KindInterface, KindEnum, KindRecord, KindDelegate:
		return true
	default:
		return false
	}
}

// IsMethodKind reports whether k declares a method-like member.
func IsMethodKind(k Kind) bool {
	switch k {
	case KindMethod, KindConstructor, KindDestructor, KindOperator:
		return true
	default:
		return false
	}
}

// Symbol is a declared type or member supplied by a semantic front-end.
//
// Implementations must be comparable. Base must return a nil interface (not a
// typed nil) when there is no base.
type Symbol interface {
	Name() string
	Kind() Kind
	Base() Symbol
	Members() []Symbol
}

// Decl is an in-memory Symbol.
type Decl struct {
	name       string
	kind       Kind
	base       *Decl
	members    []*Decl
	containing *Decl

	// Modifiers holds declaration modifiers such as "public" or "override".
	Modifiers []string
	// Location is an opaque source reference set by the front-end.
	Location any
}

// NewDecl creates an unattached symbol.
func NewDecl(name string, kind Kind, modifiers ...string) *Decl {
	return &Decl{name: name, kind: kind, Modifiers: modifiers}
}

// AddMember appends m to the members of d and records d as its container.
func (d *Decl) AddMember(m *Decl) *Decl {
	m.containing = d
	d.members = append(d.members, m)
	return m
}

// SetBase links d to its base symbol; nil clears the link.
func (d *Decl) SetBase(base *Decl) {
	d.base = base
}

func (d *Decl) Name() string { return d.name }
func (d *Decl) Kind() Kind   { return d.kind }

// Base returns the base symbol, or nil.
func (d *Decl) Base() Symbol {
	if d.base == nil {
		return nil
	}
	return d.base
}

// Members returns the members in declaration order.
func (d *Decl) Members() []Symbol {
	out := make([]Symbol, len(d.members))
	for i, m := range d.members {
		out[i] = m
	}
	return out
}

// Containing returns the enclosing type, or nil for top-level types.
func (d *Decl) Containing() *Decl {
	return d.containing
}

// QualifiedName joins the names of the containing types and d with dots.
func (d *Decl) QualifiedName() string {
	if d.containing == nil {
		return d.name
	}
	return d.containing.QualifiedName() + "." + d.name
}

// HasModifier reports whether mod is among the declaration modifiers.
func (d *Decl) HasModifier(mod string) bool {
	for _, m := range d.Modifiers {
		if m == mod {
			return true
		}
	}
	return false
}

func (d *Decl) String() string {
	return string(d.kind) + " " + d.QualifiedName()
}
