// Package rules provides the built-in analyzer rules.
package rules

import (
	"github.com/kacioidarlan/code-cracker/analyzer"
	"github.com/kacioidarlan/code-cracker/syntax"
)

const (
	categoryStyle           = "Style"
	categoryDesign          = "Design"
	categoryMaintainability = "Maintainability"
)

// All returns every built-in rule.
func All() []analyzer.Rule {
	return []analyzer.Rule{
		&BracesSingleStatement{},
		&ExpressionBodiedCandidate{},
		&OneTypePerFile{},
		&EmptyEmbeddedBlock{},
		&TooManyMethods{},
		&MethodHidesBase{},
	}
}

var ownerKeywords = map[syntax.Kind]string{
	syntax.KindIfStatement:      "if",
	syntax.KindElseClause:       "else",
	syntax.KindForStatement:     "for",
	syntax.KindForEachStatement: "foreach",
	syntax.KindWhileStatement:   "while",
	syntax.KindUsingStatement:   "using",
	syntax.KindDoStatement:      "do",
	syntax.KindLockStatement:    "lock",
	syntax.KindFixedStatement:   "fixed",
}

// embeddedBlockOwner returns the owner of block when block is the embedded
// statement of an if, for, while or similar construct.
func embeddedBlockOwner(block syntax.Node) syntax.Node {
	owner := block.Parent()
	if !syntax.IsEmbeddedStatementOwner(owner) {
		return nil
	}
	return owner
}
