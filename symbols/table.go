package symbols

// Table indexes the type declarations of a compilation by name.
type Table struct {
	types  []*Decl
	byName map[string][]*Decl
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{byName: make(map[string][]*Decl)}
}

// Add registers t and, recursively, its nested types.
func (tb *Table) Add(t *Decl) {
	tb.types = append(tb.types, t)
	tb.byName[t.name] = append(tb.byName[t.name], t)
	tb.byName[t.QualifiedName()] = appendUnique(tb.byName[t.QualifiedName()], t)
	for _, m := range t.members {
		if IsTypeKind(m.kind) {
			tb.Add(m)
		}
	}
}

func appendUnique(list []*Decl, d *Decl) []*Decl {
	for _, x := range list {
		if x == d {
			return list
		}
	}
	return append(list, d)
}

// Types returns every registered type, outer types before their nested types.
func (tb *Table) Types() []*Decl {
	return tb.types
}

// Lookup returns the types declared with the given simple or dotted name.
func (tb *Table) Lookup(name string) []*Decl {
	return tb.byName[name]
}
