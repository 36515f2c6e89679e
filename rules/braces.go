package rules

import (
	"github.com/kacioidarlan/code-cracker/analyzer"
	"github.com/kacioidarlan/code-cracker/syntax"
)

// BracesSingleStatement flags braces around the only statement of an
// embedded statement.
type BracesSingleStatement struct{}

func (r *BracesSingleStatement) Descriptor() analyzer.Descriptor {
	return analyzer.Descriptor{
		ID:               "CR1001",
		Title:            "Braces can be removed",
		Category:         categoryStyle,
		MessageFormat:    "Braces around the single statement of this %s can be removed",
		DefaultSeverity:  analyzer.SeverityHidden,
		EnabledByDefault: true,
	}
}

func (r *BracesSingleStatement) Initialize(ctx *analyzer.Context) error {
	ctx.RegisterSyntaxNodeAction(r.analyze, syntax.KindBlock)
	return nil
}

func (r *BracesSingleStatement) analyze(nc *analyzer.NodeContext) {
	owner := embeddedBlockOwner(nc.Node)
	if owner == nil {
		return
	}
	stmt, ok := syntax.SingleStatementFromBlock(nc.Node)
	if !ok {
		return
	}
	switch stmt.Kind() {
	case syntax.KindLocalDeclarationStatement, syntax.KindLocalFunctionStatement, syntax.KindLabeledStatement:
		// Not allowed as an embedded statement.
		return
	case syntax.KindIfStatement:
		// Unbracing a nested if would let a following else bind to it.
		if owner.Kind() == syntax.KindIfStatement {
			return
		}
	}
	nc.Report(nc.Node, ownerKeywords[owner.Kind()])
}

// EmptyEmbeddedBlock flags empty blocks used as embedded statements.
type EmptyEmbeddedBlock struct{}

func (r *EmptyEmbeddedBlock) Descriptor() analyzer.Descriptor {
	return analyzer.Descriptor{
		ID:               "CR1004",
		Title:            "Empty embedded block",
		Category:         categoryMaintainability,
		MessageFormat:    "The %s statement has an empty block",
		DefaultSeverity:  analyzer.SeverityInfo,
		EnabledByDefault: true,
	}
}

func (r *EmptyEmbeddedBlock) Initialize(ctx *analyzer.Context) error {
	ctx.RegisterSyntaxNodeAction(r.analyze, syntax.KindBlock)
	return nil
}

func (r *EmptyEmbeddedBlock) analyze(nc *analyzer.NodeContext) {
	owner := embeddedBlockOwner(nc.Node)
	if owner == nil || len(nc.Node.Children()) != 0 {
		return
	}
	nc.Report(nc.Node, ownerKeywords[owner.Kind()])
}
