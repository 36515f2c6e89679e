package parse

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/kacioidarlan/code-cracker/syntax"
)

// nodeKinds maps tree-sitter C# node types to syntax kinds.
var nodeKinds = map[string]syntax.Kind{
	"compilation_unit":                  syntax.KindCompilationUnit,
	"namespace_declaration":             syntax.KindNamespaceDeclaration,
	"file_scoped_namespace_declaration": syntax.KindNamespaceDeclaration,
	"class_declaration":                 syntax.KindClassDeclaration,
	"struct_declaration":                syntax.KindStructDeclaration,
	"interface_declaration":             syntax.KindInterfaceDeclaration,
	"record_declaration":                syntax.KindRecordDeclaration,
	"record_struct_declaration":         syntax.KindRecordDeclaration,
	"enum_declaration":                  syntax.KindEnumDeclaration,
	"delegate_declaration":              syntax.KindDelegateDeclaration,
	"method_declaration":                syntax.KindMethodDeclaration,
	"constructor_declaration":           syntax.KindConstructorDeclaration,
	"destructor_declaration":            syntax.KindDestructorDeclaration,
	"operator_declaration":              syntax.KindOperatorDeclaration,
	"conversion_operator_declaration":   syntax.KindOperatorDeclaration,
	"property_declaration":              syntax.KindPropertyDeclaration,
	"indexer_declaration":               syntax.KindIndexerDeclaration,
	"field_declaration":                 syntax.KindFieldDeclaration,
	"event_declaration":                 syntax.KindEventDeclaration,
	"event_field_declaration":           syntax.KindEventFieldDeclaration,
	"declaration_list":                  syntax.KindDeclarationList,
	"base_list":                         syntax.KindBaseList,

	"block":                       syntax.KindBlock,
	"if_statement":                syntax.KindIfStatement,
	"else_clause":                 syntax.KindElseClause,
	"for_statement":               syntax.KindForStatement,
	"foreach_statement":           syntax.KindForEachStatement,
	"for_each_statement":          syntax.KindForEachStatement,
	"while_statement":             syntax.KindWhileStatement,
	"do_statement":                syntax.KindDoStatement,
	"using_statement":             syntax.KindUsingStatement,
	"lock_statement":              syntax.KindLockStatement,
	"fixed_statement":             syntax.KindFixedStatement,
	"expression_statement":        syntax.KindExpressionStatement,
	"return_statement":            syntax.KindReturnStatement,
	"local_declaration_statement": syntax.KindLocalDeclarationStatement,
	"local_function_statement":    syntax.KindLocalFunctionStatement,
	"switch_statement":            syntax.KindSwitchStatement,
	"try_statement":               syntax.KindTryStatement,
	"throw_statement":             syntax.KindThrowStatement,
	"break_statement":             syntax.KindBreakStatement,
	"continue_statement":          syntax.KindContinueStatement,
	"goto_statement":              syntax.KindGotoStatement,
	"yield_statement":             syntax.KindYieldStatement,
	"labeled_statement":           syntax.KindLabeledStatement,
	"checked_statement":           syntax.KindCheckedStatement,
	"unsafe_statement":            syntax.KindUnsafeStatement,
	"empty_statement":             syntax.KindEmptyStatement,

	"identifier":              syntax.KindIdentifierName,
	"invocation_expression":   syntax.KindInvocation,
	"arrow_expression_clause": syntax.KindArrowExpressionBody,
}

// KindOf returns the syntax kind for a tree-sitter node type.
func KindOf(nodeType string) syntax.Kind {
	if k, ok := nodeKinds[nodeType]; ok {
		return k
	}
	return syntax.KindUnknown
}

// Node adapts a tree-sitter node to syntax.Node.
type Node struct {
	n    *sitter.Node
	file *ParsedFile
}

// Kind returns the mapped syntax kind.
func (n Node) Kind() syntax.Kind {
	return KindOf(n.n.Type())
}

// Parent returns the enclosing node, or nil at the compilation unit.
func (n Node) Parent() syntax.Node {
	n.file.mu.Lock()
	p := n.n.Parent()
	n.file.mu.Unlock()
	if p == nil {
		return nil
	}
	return Node{n: p, file: n.file}
}

// Children returns the named children in source order. Tokens, comments and
// other extras are not included.
func (n Node) Children() []syntax.Node {
	n.file.mu.Lock()
	defer n.file.mu.Unlock()

	count := int(n.n.NamedChildCount())
	children := make([]syntax.Node, 0, count)
	for i := 0; i < count; i++ {
		c := n.n.NamedChild(i)
		if c == nil || c.IsExtra() {
			continue
		}
		children = append(children, Node{n: c, file: n.file})
	}
	return children
}

// Type returns the raw tree-sitter node type.
func (n Node) Type() string {
	return n.n.Type()
}

// Text returns the source text of the node.
func (n Node) Text() string {
	return n.n.Content(n.file.Content)
}

// Range returns the source range of the node.
func (n Node) Range() Range {
	return nodeRange(n.n)
}

// File returns the file the node belongs to.
func (n Node) File() *ParsedFile {
	return n.file
}

// Name returns the declared name of a declaration node, or "".
func (n Node) Name() string {
	n.file.mu.Lock()
	defer n.file.mu.Unlock()
	return declName(n.n, n.file.Content)
}

// Modifiers returns the modifier keywords of a declaration node.
func (n Node) Modifiers() []string {
	n.file.mu.Lock()
	defer n.file.mu.Unlock()
	return declModifiers(n.n, n.file.Content)
}

// baseName returns the simple name of the first base_list entry, or "".
func (n Node) baseName() string {
	n.file.mu.Lock()
	defer n.file.mu.Unlock()
	return firstBaseName(n.n, n.file.Content)
}

// memberNames returns the names a member declaration introduces.
func (n Node) memberNames() []string {
	n.file.mu.Lock()
	defer n.file.mu.Unlock()
	return memberNames(n.n, n.file.Content)
}

func (n Node) String() string {
	return n.n.Type() + " " + n.Text()
}

// findChildByType returns the first direct child with the given tree-sitter type.
func findChildByType(node *sitter.Node, nodeType string) *sitter.Node {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child != nil && child.Type() == nodeType {
			return child
		}
	}
	return nil
}
