// Package analyzer runs rules over parsed C# files and collects diagnostics.
package analyzer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/kacioidarlan/code-cracker/config"
	"github.com/kacioidarlan/code-cracker/parse"
	"github.com/kacioidarlan/code-cracker/symbols"
	"github.com/kacioidarlan/code-cracker/syntax"
)

// Host registers rules and dispatches their actions. A Host can be reused
// for several Analyze calls but is not safe for concurrent use.
type Host struct {
	cfg     *config.Config
	version LanguageVersion
	logger  *slog.Logger
	rules   []Descriptor

	nodeActions   map[syntax.Kind][]nodeRegistration
	symbolActions map[symbols.Kind][]symbolRegistration
}

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the logger used for registration and crash reports.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Host) {
		h.logger = logger
	}
}

// WithConfig sets the configuration. Default() is used otherwise.
func WithConfig(cfg *config.Config) Option {
	return func(h *Host) {
		h.cfg = cfg
	}
}

// NewHost initializes every enabled rule against the configured language version.
func NewHost(rules []Rule, opts ...Option) (*Host, error) {
	h := &Host{
		cfg:           config.Default(),
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		nodeActions:   make(map[syntax.Kind][]nodeRegistration),
		symbolActions: make(map[symbols.Kind][]symbolRegistration),
	}
	for _, opt := range opts {
		opt(h)
	}

	version, err := ParseLanguageVersion(h.cfg.LanguageVersion)
	if err != nil {
		return nil, err
	}
	h.version = version

	for _, r := range rules {
		d := r.Descriptor()
		if !h.cfg.RuleEnabled(d.ID, d.EnabledByDefault) {
			h.logger.Debug("rule disabled", slog.String("rule", d.ID))
			continue
		}
		sev, err := severityFor(h.cfg, d)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", d.ID, err)
		}
		if err := r.Initialize(&Context{host: h, rule: d, severity: sev}); err != nil {
			return nil, fmt.Errorf("initializing rule %s: %w", d.ID, err)
		}
		h.rules = append(h.rules, d)
	}

	h.logger.Debug("analyzer ready",
		slog.Int("rules", len(h.rules)),
		slog.String("version", h.version.String()))
	return h, nil
}

// Rules returns the descriptors of the enabled rules.
func (h *Host) Rules() []Descriptor {
	return h.rules
}

// LanguageVersion returns the language version rules were registered against.
func (h *Host) LanguageVersion() LanguageVersion {
	return h.version
}

// LoadFiles reads and parses the given C# files.
func (h *Host) LoadFiles(ctx context.Context, paths []string) ([]*parse.ParsedFile, error) {
	parser := parse.NewParser()
	files := make([]*parse.ParsedFile, 0, len(paths))

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		parsed, err := parser.Parse(ctx, path, content)
		if err != nil {
			return nil, err
		}
		if parsed.HasErrors() {
			h.logger.Warn("file has syntax errors", slog.String("path", path))
		}
		files = append(files, parsed)
	}
	return files, nil
}

// Analyze runs the registered actions over files and returns the diagnostics
// sorted by path and position.
func (h *Host) Analyze(ctx context.Context, files []*parse.ParsedFile) ([]Diagnostic, error) {
	table := parse.BuildSymbols(files...)
	var diags []Diagnostic

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		h.analyzeFile(f, table, &diags)
	}

	if len(h.symbolActions) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, t := range table.Types() {
			h.analyzeSymbol(t, table, &diags)
			for _, m := range t.Members() {
				if !symbols.IsTypeKind(m.Kind()) {
					h.analyzeSymbol(m.(*symbols.Decl), table, &diags)
				}
			}
		}
	}

	SortDiagnostics(diags)
	return diags, nil
}

func (h *Host) analyzeFile(f *parse.ParsedFile, table *symbols.Table, diags *[]Diagnostic) {
	if len(h.nodeActions) == 0 {
		return
	}
	syntax.Walk(f.Root(), func(n syntax.Node) bool {
		for _, reg := range h.nodeActions[n.Kind()] {
			nc := &NodeContext{
				Node:     n,
				File:     f,
				Symbols:  table,
				rule:     reg.rule,
				severity: reg.severity,
				sink:     diags,
			}
			h.run(reg.rule, n, diags, func() { reg.action(nc) })
		}
		return true
	})
}

func (h *Host) analyzeSymbol(sym *symbols.Decl, table *symbols.Table, diags *[]Diagnostic) {
	for _, reg := range h.symbolActions[sym.Kind()] {
		sc := &SymbolContext{
			Symbol:   sym,
			Symbols:  table,
			rule:     reg.rule,
			severity: reg.severity,
			sink:     diags,
		}
		at, _ := sym.Location.(syntax.Node)
		h.run(reg.rule, at, diags, func() { reg.action(sc) })
	}
}

// run invokes an action and turns a panic into an AD0001 diagnostic so one
// faulty rule does not abort the analysis.
func (h *Host) run(rule Descriptor, at syntax.Node, diags *[]Diagnostic, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("rule crashed",
				slog.String("rule", rule.ID),
				slog.Any("panic", r))
			msg := fmt.Sprintf("Rule %s threw an exception: %v", rule.ID, r)
			*diags = append(*diags, newDiagnostic(ruleCrashID, SeverityWarning, at, msg))
		}
	}()
	fn()
}

// SortDiagnostics orders diagnostics by path, start position and rule.
func SortDiagnostics(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		a, b := diags[i], diags[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.Range.Start != b.Range.Start {
			if a.Range.Start[0] != b.Range.Start[0] {
				return a.Range.Start[0] < b.Range.Start[0]
			}
			return a.Range.Start[1] < b.Range.Start[1]
		}
		return a.RuleID < b.RuleID
	})
}

// HasErrors reports whether any diagnostic has error severity.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
