package analyzer

import (
	"fmt"

	"github.com/kacioidarlan/code-cracker/fingerprint"
	"github.com/kacioidarlan/code-cracker/parse"
	"github.com/kacioidarlan/code-cracker/syntax"
)

// Severity classifies how serious a diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	SeverityHidden  Severity = "hidden"
)

// ParseSeverity parses a severity name.
func ParseSeverity(s string) (Severity, error) {
	switch sev := Severity(s); sev {
	case SeverityError, SeverityWarning, SeverityInfo, SeverityHidden:
		return sev, nil
	default:
		return "", fmt.Errorf("unknown severity %q", s)
	}
}

// Descriptor describes a rule and the diagnostics it produces.
type Descriptor struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Category         string   `json:"category"`
	MessageFormat    string   `json:"messageFormat"`
	DefaultSeverity  Severity `json:"defaultSeverity"`
	EnabledByDefault bool     `json:"enabledByDefault"`
}

// Diagnostic is a single finding reported by a rule.
type Diagnostic struct {
	RuleID      string      `json:"ruleId"`
	Severity    Severity    `json:"severity"`
	Message     string      `json:"message"`
	Path        string      `json:"path"`
	Range       parse.Range `json:"range"`
	Container   string      `json:"container,omitempty"`
	Fingerprint string      `json:"fingerprint"`
}

// ruleCrashID is reported when a rule panics while analysing a node or symbol.
const ruleCrashID = "AD0001"

var typeDeclarationKinds = []syntax.Kind{
	syntax.KindClassDeclaration,
	syntax.KindStructDeclaration,
	syntax.KindInterfaceDeclaration,
	syntax.KindRecordDeclaration,
}

func newDiagnostic(ruleID string, sev Severity, at syntax.Node, message string) Diagnostic {
	d := Diagnostic{
		RuleID:   ruleID,
		Severity: sev,
		Message:  message,
	}

	if pn, ok := at.(parse.Node); ok {
		d.Path = pn.File().Path
		d.Range = pn.Range()
	}
	if at != nil {
		if container := syntax.FindFirstAncestorOrSelf(at, typeDeclarationKinds...); container != nil {
			d.Container = NodeName(container)
		}
	}

	fp, err := fingerprint.Of("diagnostic", map[string]any{
		"rule":      d.RuleID,
		"path":      d.Path,
		"range":     d.Range,
		"container": d.Container,
		"message":   d.Message,
	})
	if err == nil {
		d.Fingerprint = fp
	}
	return d
}

// NodeName returns the declared name of a declaration node, if the front-end
// exposes one.
func NodeName(n syntax.Node) string {
	switch v := n.(type) {
	case parse.Node:
		return v.Name()
	case *syntax.Element:
		return v.Text
	}
	return ""
}
