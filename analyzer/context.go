package analyzer

import (
	"fmt"
	"log/slog"

	"github.com/kacioidarlan/code-cracker/config"
	"github.com/kacioidarlan/code-cracker/parse"
	"github.com/kacioidarlan/code-cracker/symbols"
	"github.com/kacioidarlan/code-cracker/syntax"
)

// Rule is an analyzer rule. Initialize registers the rule's actions.
type Rule interface {
	Descriptor() Descriptor
	Initialize(ctx *Context) error
}

// NodeAction analyses a syntax node of a registered kind.
type NodeAction func(nc *NodeContext)

// SymbolAction analyses a declared symbol of a registered kind.
type SymbolAction func(sc *SymbolContext)

type nodeRegistration struct {
	rule     Descriptor
	severity Severity
	action   NodeAction
}

type symbolRegistration struct {
	rule     Descriptor
	severity Severity
	action   SymbolAction
}

// Context is passed to Rule.Initialize to register actions.
type Context struct {
	host     *Host
	rule     Descriptor
	severity Severity
}

// LanguageVersion returns the language version being analysed.
func (c *Context) LanguageVersion() LanguageVersion {
	return c.host.version
}

// DecodeOptions decodes the configured options of the rule into out.
func (c *Context) DecodeOptions(out any) error {
	return c.host.cfg.DecodeRuleOptions(c.rule.ID, out)
}

// RegisterSyntaxNodeAction runs action for every node of the given kinds.
func (c *Context) RegisterSyntaxNodeAction(action NodeAction, kinds ...syntax.Kind) {
	for _, k := range kinds {
		c.host.nodeActions[k] = append(c.host.nodeActions[k], nodeRegistration{
			rule:     c.rule,
			severity: c.severity,
			action:   action,
		})
	}
}

// RegisterSyntaxNodeActionForVersionAtLeast registers action only when the
// analysed language version is at least min.
func (c *Context) RegisterSyntaxNodeActionForVersionAtLeast(min LanguageVersion, action NodeAction, kinds ...syntax.Kind) {
	if c.host.version < min {
		c.host.logger.Debug("skipping node action for language version",
			slog.String("rule", c.rule.ID),
			slog.String("requires", min.String()),
			slog.String("version", c.host.version.String()))
		return
	}
	c.RegisterSyntaxNodeAction(action, kinds...)
}

// RegisterSyntaxNodeActionForVersionLowerThan registers action only when the
// analysed language version is lower than max.
func (c *Context) RegisterSyntaxNodeActionForVersionLowerThan(max LanguageVersion, action NodeAction, kinds ...syntax.Kind) {
	if c.host.version >= max {
		c.host.logger.Debug("skipping node action for language version",
			slog.String("rule", c.rule.ID),
			slog.String("below", max.String()),
			slog.String("version", c.host.version.String()))
		return
	}
	c.RegisterSyntaxNodeAction(action, kinds...)
}

// RegisterSymbolAction runs action for every declared symbol of the given kinds.
func (c *Context) RegisterSymbolAction(action SymbolAction, kinds ...symbols.Kind) {
	for _, k := range kinds {
		c.host.symbolActions[k] = append(c.host.symbolActions[k], symbolRegistration{
			rule:     c.rule,
			severity: c.severity,
			action:   action,
		})
	}
}

// NodeContext carries the node under analysis.
type NodeContext struct {
	Node    syntax.Node
	File    *parse.ParsedFile
	Symbols *symbols.Table

	rule     Descriptor
	severity Severity
	sink     *[]Diagnostic
}

// Report records a diagnostic at n, formatting the rule message with args.
func (nc *NodeContext) Report(n syntax.Node, args ...any) {
	*nc.sink = append(*nc.sink, newDiagnostic(nc.rule.ID, nc.severity, n, formatMessage(nc.rule, args)))
}

// SymbolContext carries the symbol under analysis.
type SymbolContext struct {
	Symbol  *symbols.Decl
	Symbols *symbols.Table

	rule     Descriptor
	severity Severity
	sink     *[]Diagnostic
}

// Report records a diagnostic at the declaration of sym.
func (sc *SymbolContext) Report(sym *symbols.Decl, args ...any) {
	at, _ := sym.Location.(syntax.Node)
	*sc.sink = append(*sc.sink, newDiagnostic(sc.rule.ID, sc.severity, at, formatMessage(sc.rule, args)))
}

func formatMessage(d Descriptor, args []any) string {
	if len(args) == 0 {
		return d.MessageFormat
	}
	return fmt.Sprintf(d.MessageFormat, args...)
}

// severityFor applies a configured override to the rule default.
func severityFor(cfg *config.Config, d Descriptor) (Severity, error) {
	override := cfg.RuleSeverity(d.ID)
	if override == "" {
		return d.DefaultSeverity, nil
	}
	return ParseSeverity(override)
}
