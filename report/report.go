// Package report renders analyzer diagnostics for humans and tools.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kacioidarlan/code-cracker/analyzer"
)

// Format selects an output format.
type Format string

const (
	FormatNameText Format = "text"
	FormatNameJSON Format = "json"
)

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatNameText, FormatNameJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text or json)", s)
	}
}

// Render formats diags in the given format.
func Render(f Format, diags []analyzer.Diagnostic) ([]byte, error) {
	switch f {
	case FormatNameJSON:
		return FormatJSON(diags)
	case FormatNameText:
		return []byte(FormatText(diags)), nil
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}
}

// FormatText formats diagnostics as "path:line:col: severity RULE: message"
// lines followed by a summary. Lines and columns are 1-based.
func FormatText(diags []analyzer.Diagnostic) string {
	var sb strings.Builder

	counts := make(map[analyzer.Severity]int)
	for _, d := range diags {
		sb.WriteString(fmt.Sprintf("%s:%d:%d: %s %s: %s\n",
			d.Path, d.Range.Start[0]+1, d.Range.Start[1]+1, d.Severity, d.RuleID, d.Message))
		counts[d.Severity]++
	}

	if len(diags) == 0 {
		sb.WriteString("No issues found.\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("\nSummary: %d %s (%d errors, %d warnings, %d info, %d hidden)\n",
		len(diags), plural(len(diags), "diagnostic"),
		counts[analyzer.SeverityError], counts[analyzer.SeverityWarning],
		counts[analyzer.SeverityInfo], counts[analyzer.SeverityHidden]))
	return sb.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// FormatJSON formats diagnostics as an indented JSON array.
func FormatJSON(diags []analyzer.Diagnostic) ([]byte, error) {
	if diags == nil {
		diags = []analyzer.Diagnostic{}
	}
	return json.MarshalIndent(diags, "", "  ")
}

// FormatRules formats rule descriptors as an aligned table.
func FormatRules(rules []analyzer.Descriptor) string {
	var sb strings.Builder
	for _, d := range rules {
		enabled := "on"
		if !d.EnabledByDefault {
			enabled = "off"
		}
		sb.WriteString(fmt.Sprintf("%-8s %-16s %-8s %-4s %s\n", d.ID, d.Category, d.DefaultSeverity, enabled, d.Title))
	}
	return sb.String()
}
