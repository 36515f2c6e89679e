package rules

import (
	"github.com/kacioidarlan/code-cracker/analyzer"
	"github.com/kacioidarlan/code-cracker/syntax"
)

// ExpressionBodiedCandidate flags methods whose body only returns a value.
// Expression-bodied methods need C# 6.
type ExpressionBodiedCandidate struct{}

func (r *ExpressionBodiedCandidate) Descriptor() analyzer.Descriptor {
	return analyzer.Descriptor{
		ID:               "CR1002",
		Title:            "Use expression-bodied method",
		Category:         categoryStyle,
		MessageFormat:    "Method %s can use an expression body",
		DefaultSeverity:  analyzer.SeverityHidden,
		EnabledByDefault: true,
	}
}

func (r *ExpressionBodiedCandidate) Initialize(ctx *analyzer.Context) error {
	ctx.RegisterSyntaxNodeActionForVersionAtLeast(analyzer.CSharp6, r.analyze, syntax.KindMethodDeclaration)
	return nil
}

func (r *ExpressionBodiedCandidate) analyze(nc *analyzer.NodeContext) {
	var body syntax.Node
	for _, c := range nc.Node.Children() {
		if c.Kind() == syntax.KindBlock {
			body = c
			break
		}
	}
	if body == nil {
		return
	}
	stmt, ok := syntax.SingleStatementFromBlock(body)
	if !ok || stmt.Kind() != syntax.KindReturnStatement || len(stmt.Children()) == 0 {
		return
	}
	nc.Report(nc.Node, analyzer.NodeName(nc.Node))
}

// OneTypePerFile flags files declaring more than one top-level type.
type OneTypePerFile struct{}

func (r *OneTypePerFile) Descriptor() analyzer.Descriptor {
	return analyzer.Descriptor{
		ID:               "CR1003",
		Title:            "Declare one type per file",
		Category:         categoryDesign,
		MessageFormat:    "Type %s should be declared in its own file",
		DefaultSeverity:  analyzer.SeverityInfo,
		EnabledByDefault: true,
	}
}

func (r *OneTypePerFile) Initialize(ctx *analyzer.Context) error {
	ctx.RegisterSyntaxNodeAction(r.analyze, syntax.KindCompilationUnit)
	return nil
}

func (r *OneTypePerFile) analyze(nc *analyzer.NodeContext) {
	seen := 0
	for decl := range syntax.DescendantTypeDeclarations(nc.Node) {
		if syntax.FindFirstAncestor(decl,
			syntax.KindClassDeclaration,
			syntax.KindStructDeclaration,
			syntax.KindInterfaceDeclaration,
			syntax.KindRecordDeclaration) != nil {
			continue
		}
		seen++
		if seen > 1 {
			nc.Report(decl, analyzer.NodeName(decl))
		}
	}
}
