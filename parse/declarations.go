package parse

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kacioidarlan/code-cracker/symbols"
)

// typeKinds maps tree-sitter type declarations to symbol kinds.
var typeKinds = map[string]symbols.Kind{
	"class_declaration":         symbols.KindClass,
	"struct_declaration":        symbols.KindStruct,
	"interface_declaration":     symbols.KindInterface,
	"record_declaration":        symbols.KindRecord,
	"record_struct_declaration": symbols.KindRecord,
	"enum_declaration":          symbols.KindEnum,
	"delegate_declaration":      symbols.KindDelegate,
}

// memberKinds maps tree-sitter member declarations to symbol kinds.
var memberKinds = map[string]symbols.Kind{
	"method_declaration":              symbols.KindMethod,
	"constructor_declaration":         symbols.KindConstructor,
	"destructor_declaration":          symbols.KindDestructor,
	"operator_declaration":            symbols.KindOperator,
	"conversion_operator_declaration": symbols.KindOperator,
	"property_declaration":            symbols.KindProperty,
	"indexer_declaration":             symbols.KindProperty,
	"field_declaration":               symbols.KindField,
	"event_declaration":               symbols.KindEvent,
	"event_field_declaration":         symbols.KindEvent,
}

type pendingBase struct {
	decl     *symbols.Decl
	baseName string
}

// BuildSymbols collects the type declarations of files into a symbol table.
//
// Base types are linked by simple name: the first base_list entry of a class
// or record is resolved against declared types of the same kind. Names that do
// not resolve (framework types, interfaces) leave the base unset. Partial
// declarations are not merged.
func BuildSymbols(files ...*ParsedFile) *symbols.Table {
	table := symbols.NewTable()
	var pending []pendingBase

	for _, f := range files {
		var topLevel []*symbols.Decl
		collectDecls(f.Root(), nil, &topLevel, &pending)
		for _, t := range topLevel {
			table.Add(t)
		}
	}

	for _, p := range pending {
		for _, candidate := range table.Lookup(p.baseName) {
			if candidate != p.decl && candidate.Kind() == p.decl.Kind() {
				p.decl.SetBase(candidate)
				break
			}
		}
	}

	return table
}

func collectDecls(node Node, container *symbols.Decl, topLevel *[]*symbols.Decl, pending *[]pendingBase) {
	for _, c := range node.Children() {
		child := c.(Node)
		nodeType := child.Type()

		if kind, ok := typeKinds[nodeType]; ok {
			decl := symbols.NewDecl(child.Name(), kind, child.Modifiers()...)
			decl.Location = child
			if container != nil {
				container.AddMember(decl)
			} else {
				*topLevel = append(*topLevel, decl)
			}
			if kind == symbols.KindClass || kind == symbols.KindRecord {
				if name := child.baseName(); name != "" {
					*pending = append(*pending, pendingBase{decl: decl, baseName: name})
				}
			}
			collectDecls(child, decl, topLevel, pending)
			continue
		}

		if kind, ok := memberKinds[nodeType]; ok {
			// Top-level statements have no containing type.
			if container == nil {
				continue
			}
			mods := child.Modifiers()
			for _, name := range child.memberNames() {
				m := symbols.NewDecl(name, kind, mods...)
				m.Location = child
				container.AddMember(m)
			}
			continue
		}

		switch nodeType {
		case "namespace_declaration", "file_scoped_namespace_declaration", "declaration_list":
			collectDecls(child, container, topLevel, pending)
		}
	}
}

func declName(node *sitter.Node, content []byte) string {
	if name := node.ChildByFieldName("name"); name != nil {
		return name.Content(content)
	}
	switch node.Type() {
	case "operator_declaration", "conversion_operator_declaration":
		return "operator"
	case "indexer_declaration":
		return "this"
	}
	if id := findChildByType(node, "identifier"); id != nil {
		return id.Content(content)
	}
	return ""
}

func declModifiers(node *sitter.Node, content []byte) []string {
	var mods []string
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() == "modifier" {
			mods = append(mods, child.Content(content))
		}
	}
	return mods
}

// memberNames returns one name per declarator for fields and event fields, and
// the declared name for every other member.
func memberNames(node *sitter.Node, content []byte) []string {
	switch node.Type() {
	case "field_declaration", "event_field_declaration":
	default:
		return []string{declName(node, content)}
	}

	varDecl := findChildByType(node, "variable_declaration")
	if varDecl == nil {
		return nil
	}
	var names []string
	for i := 0; i < int(varDecl.NamedChildCount()); i++ {
		declarator := varDecl.NamedChild(i)
		if declarator.Type() != "variable_declarator" {
			continue
		}
		if name := declName(declarator, content); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func firstBaseName(node *sitter.Node, content []byte) string {
	baseList := findChildByType(node, "base_list")
	if baseList == nil {
		return ""
	}
	for i := 0; i < int(baseList.NamedChildCount()); i++ {
		entry := baseList.NamedChild(i)
		if entry.IsExtra() {
			continue
		}
		return simpleTypeName(entry, content)
	}
	return ""
}

// simpleTypeName returns the rightmost identifier of a type reference,
// without namespace qualifiers or type arguments.
func simpleTypeName(node *sitter.Node, content []byte) string {
	switch node.Type() {
	case "identifier":
		return node.Content(content)
	case "generic_name":
		if id := findChildByType(node, "identifier"); id != nil {
			return id.Content(content)
		}
	case "qualified_name", "alias_qualified_name":
		if name := node.ChildByFieldName("name"); name != nil {
			return simpleTypeName(name, content)
		}
		if count := int(node.NamedChildCount()); count > 0 {
			return simpleTypeName(node.NamedChild(count-1), content)
		}
	case "primary_constructor_base_type":
		if node.NamedChildCount() > 0 {
			return simpleTypeName(node.NamedChild(0), content)
		}
	}
	return node.Content(content)
}
