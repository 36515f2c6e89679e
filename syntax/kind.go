// Package syntax provides read-only search and classification over C# syntax trees.
package syntax

// Kind identifies the structural category of a syntax node.
type Kind string

const (
	KindUnknown Kind = "Unknown"

	// Declarations
	KindCompilationUnit        Kind = "CompilationUnit"
	KindNamespaceDeclaration   Kind = "NamespaceDeclaration"
	KindClassDeclaration       Kind = "ClassDeclaration"
	KindStructDeclaration      Kind = "StructDeclaration"
	KindInterfaceDeclaration   Kind = "InterfaceDeclaration"
	KindRecordDeclaration      Kind = "RecordDeclaration"
	KindEnumDeclaration        Kind = "EnumDeclaration"
	KindDelegateDeclaration    Kind = "DelegateDeclaration"
	KindMethodDeclaration      Kind = "MethodDeclaration"
	KindConstructorDeclaration Kind = "ConstructorDeclaration"
	KindDestructorDeclaration  Kind = "DestructorDeclaration"
	KindOperatorDeclaration    Kind = "OperatorDeclaration"
	KindPropertyDeclaration    Kind = "PropertyDeclaration"
	KindIndexerDeclaration     Kind = "IndexerDeclaration"
	KindFieldDeclaration       Kind = "FieldDeclaration"
	KindEventDeclaration       Kind = "EventDeclaration"
	KindEventFieldDeclaration  Kind = "EventFieldDeclaration"
	KindDeclarationList        Kind = "DeclarationList"
	KindBaseList               Kind = "BaseList"

	// Statements
	KindBlock                     Kind = "Block"
	KindIfStatement               Kind = "IfStatement"
	KindElseClause                Kind = "ElseClause"
	KindForStatement              Kind = "ForStatement"
	KindForEachStatement          Kind = "ForEachStatement"
	KindWhileStatement            Kind = "WhileStatement"
	KindDoStatement               Kind = "DoStatement"
	KindUsingStatement            Kind = "UsingStatement"
	KindLockStatement             Kind = "LockStatement"
	KindFixedStatement            Kind = "FixedStatement"
	KindExpressionStatement       Kind = "ExpressionStatement"
	KindReturnStatement           Kind = "ReturnStatement"
	KindLocalDeclarationStatement Kind = "LocalDeclarationStatement"
	KindLocalFunctionStatement    Kind = "LocalFunctionStatement"
	KindSwitchStatement           Kind = "SwitchStatement"
	KindTryStatement              Kind = "TryStatement"
	KindThrowStatement            Kind = "ThrowStatement"
	KindBreakStatement            Kind = "BreakStatement"
	KindContinueStatement         Kind = "ContinueStatement"
	KindGotoStatement             Kind = "GotoStatement"
	KindYieldStatement            Kind = "YieldStatement"
	KindLabeledStatement          Kind = "LabeledStatement"
	KindCheckedStatement          Kind = "CheckedStatement"
	KindUnsafeStatement           Kind = "UnsafeStatement"
	KindEmptyStatement            Kind = "EmptyStatement"

	// Expressions and names
	KindIdentifierName      Kind = "IdentifierName"
	KindInvocation          Kind = "InvocationExpression"
	KindArrowExpressionBody Kind = "ArrowExpressionClause"
)

// IsTypeDeclaration reports whether k declares a class, struct, interface or record.
// Enum and delegate declarations are not type declarations in this sense.
func IsTypeDeclaration(k Kind) bool {
	switch k {
	case KindClassDeclaration, KindStructDeclaration, KindInterfaceDeclaration, KindRecordDeclaration:
		return true
	default:
		return false
	}
}

// IsStatement reports whether k is a statement kind.
func IsStatement(k Kind) bool {
	switch k {
	case KindBlock,
		KindIfStatement,
		KindForStatement,
		KindForEachStatement,
		KindWhileStatement,
		KindDoStatement,
		KindUsingStatement,
		KindLockStatement,
		KindFixedStatement,
		KindExpressionStatement,
		KindReturnStatement,
		KindLocalDeclarationStatement,
		KindLocalFunctionStatement,
		KindSwitchStatement,
		KindTryStatement,
		KindThrowStatement,
		KindBreakStatement,
		KindContinueStatement,
		KindGotoStatement,
		KindYieldStatement,
		KindLabeledStatement,
		KindCheckedStatement,
		KindUnsafeStatement,
		KindEmptyStatement:
		return true
	default:
		return false
	}
}

// isEmbeddedStatementOwnerKind lists the constructs that own a single embedded statement.
func isEmbeddedStatementOwnerKind(k Kind) bool {
	switch k {
	case KindIfStatement,
		KindElseClause,
		KindForStatement,
		KindForEachStatement,
		KindWhileStatement,
		KindUsingStatement,
		KindDoStatement,
		KindLockStatement,
		KindFixedStatement:
		return true
	default:
		return false
	}
}

// prunesTypeSearch reports whether type declarations are never searched below k.
func prunesTypeSearch(k Kind) bool {
	switch k {
	case KindMethodDeclaration,
		KindConstructorDeclaration,
		KindDestructorDeclaration,
		KindDelegateDeclaration,
		KindEnumDeclaration,
		KindPropertyDeclaration,
		KindFieldDeclaration,
		KindInterfaceDeclaration,
		KindEventDeclaration:
		return true
	default:
		return false
	}
}
