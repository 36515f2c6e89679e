package symbols

import (
	"fmt"
	"iter"
)

func mustSymbol(s Symbol, op string) {
	if d, ok := s.(*Decl); s == nil || ok && d == nil {
		panic(fmt.Errorf("symbols.%s: %w", op, ErrNilSymbol))
	}
}

// BaseChain yields the base symbols of s from nearest to farthest, preceded by
// s itself when includeSelf is set.
//
// Well-formed C# has no inheritance cycles, but graphs linked from unchecked
// source can. The walk stops at the first symbol it has already yielded.
func BaseChain(s Symbol, includeSelf bool) iter.Seq[Symbol] {
	mustSymbol(s, "BaseChain")
	return func(yield func(Symbol) bool) {
		seen := map[Symbol]bool{s: true}
		if includeSelf && !yield(s) {
			return
		}
		for b := s.Base(); b != nil && !seen[b]; b = b.Base() {
			seen[b] = true
			if !yield(b) {
				return
			}
		}
	}
}

// Methods returns the direct method members of t in declaration order.
func Methods(t Symbol) []Symbol {
	mustSymbol(t, "Methods")
	var methods []Symbol
	for _, m := range t.Members() {
		if IsMethodKind(m.Kind()) {
			methods = append(methods, m)
		}
	}
	return methods
}

// NestedTypes returns the type members of t in declaration order.
func NestedTypes(t Symbol) []Symbol {
	mustSymbol(t, "NestedTypes")
	var types []Symbol
	for _, m := range t.Members() {
		if IsTypeKind(m.Kind()) {
			types = append(types, m)
		}
	}
	return types
}

// AllMethodsIncludingNested returns the methods of t followed by the methods of
// each nested type, depth-first in declaration order.
func AllMethodsIncludingNested(t Symbol) []Symbol {
	mustSymbol(t, "AllMethodsIncludingNested")
	methods := Methods(t)
	for _, nested := range NestedTypes(t) {
		methods = append(methods, AllMethodsIncludingNested(nested)...)
	}
	return methods
}

// FindMember returns the first member of t with the given name and kind, or nil.
func FindMember(t Symbol, name string, kind Kind) Symbol {
	mustSymbol(t, "FindMember")
	for _, m := range t.Members() {
		if m.Name() == name && m.Kind() == kind {
			return m
		}
	}
	return nil
}
