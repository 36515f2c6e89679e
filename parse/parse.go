// Package parse provides Tree-sitter based parsing for C#.
package parse

import (
	"context"
	"fmt"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"
)

// Range represents a source code range (0-based line and column).
type Range struct {
	Start [2]int `json:"start"` // [line, col]
	End   [2]int `json:"end"`   // [line, col]
}

// ParsedFile contains the parsed AST of a single source file.
//
// The tree-sitter tree caches node wrappers in an unsynchronised map, so every
// Node method that moves through the tree holds mu. Callers that use Tree
// directly must not do so while other goroutines traverse the file.
type ParsedFile struct {
	Path    string
	Tree    *sitter.Tree
	Content []byte

	mu sync.Mutex
}

// Parser wraps the Tree-sitter parser configured for C#.
// A Parser is not safe for concurrent use.
type Parser struct {
	csParser *sitter.Parser
}

// NewParser creates a new C# parser.
func NewParser() *Parser {
	csParser := sitter.NewParser()
	csParser.SetLanguage(csharp.GetLanguage())

	return &Parser{
		csParser: csParser,
	}
}

// Parse parses C# source code.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*ParsedFile, error) {
	tree, err := p.csParser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &ParsedFile{
		Path:    path,
		Tree:    tree,
		Content: content,
	}, nil
}

// Root returns the compilation unit as a syntax node.
func (pf *ParsedFile) Root() Node {
	pf.mu.Lock()
	defer pf.mu.Unlock()
	return Node{n: pf.Tree.RootNode(), file: pf}
}

// HasErrors reports whether the parser had to recover from syntax errors.
func (pf *ParsedFile) HasErrors() bool {
	return pf.Root().n.HasError()
}

func nodeRange(node *sitter.Node) Range {
	startPoint := node.StartPoint()
	endPoint := node.EndPoint()

	return Range{
		Start: [2]int{int(startPoint.Row), int(startPoint.Column)},
		End:   [2]int{int(endPoint.Row), int(endPoint.Column)},
	}
}
