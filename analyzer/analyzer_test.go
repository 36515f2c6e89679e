package analyzer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kacioidarlan/code-cracker/config"
	"github.com/kacioidarlan/code-cracker/parse"
	"github.com/kacioidarlan/code-cracker/symbols"
	"github.com/kacioidarlan/code-cracker/syntax"
)

const hostSource = `namespace App
{
    class Widget
    {
        void Draw() { }
    }

    class Gadget : Widget
    {
        void Spin() { }
    }
}
`

type funcRule struct {
	desc Descriptor
	init func(ctx *Context) error
}

func (r *funcRule) Descriptor() Descriptor        { return r.desc }
func (r *funcRule) Initialize(ctx *Context) error { return r.init(ctx) }

func descriptor(id string) Descriptor {
	return Descriptor{
		ID:               id,
		Title:            "test rule " + id,
		Category:         "Test",
		MessageFormat:    "found %s",
		DefaultSeverity:  SeverityWarning,
		EnabledByDefault: true,
	}
}

// classRule reports every class declaration by name.
func classRule(id string) *funcRule {
	return &funcRule{
		desc: descriptor(id),
		init: func(ctx *Context) error {
			ctx.RegisterSyntaxNodeAction(func(nc *NodeContext) {
				nc.Report(nc.Node, NodeName(nc.Node))
			}, syntax.KindClassDeclaration)
			return nil
		},
	}
}

func parseFiles(t *testing.T, sources map[string]string) []*parse.ParsedFile {
	t.Helper()
	parser := parse.NewParser()
	var files []*parse.ParsedFile
	for path, src := range sources {
		parsed, err := parser.Parse(context.Background(), path, []byte(src))
		if err != nil {
			t.Fatalf("Parse(%s) failed: %v", path, err)
		}
		files = append(files, parsed)
	}
	return files
}

func configWithVersion(version string) *config.Config {
	cfg := config.Default()
	cfg.LanguageVersion = version
	return cfg
}

func TestParseLanguageVersion(t *testing.T) {
	tests := []struct {
		input   string
		want    LanguageVersion
		wantStr string
	}{
		{"1", CSharp1, "C# 1"},
		{"6", CSharp6, "C# 6"},
		{"7.3", CSharp7_3, "C# 7.3"},
		{"10.0", CSharp10, "C# 10"},
		{"Latest", Latest, "C# 12"},
		{"", Latest, "C# 12"},
		{" preview ", Preview, "preview"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLanguageVersion(tt.input)
			if err != nil {
				t.Fatalf("ParseLanguageVersion(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLanguageVersion(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got.String() != tt.wantStr {
				t.Errorf("String() = %q, want %q", got.String(), tt.wantStr)
			}
		})
	}

	if _, err := ParseLanguageVersion("13.5"); !errors.Is(err, ErrUnknownLanguageVersion) {
		t.Errorf("expected ErrUnknownLanguageVersion, got %v", err)
	}
}

func TestParseSeverity(t *testing.T) {
	for _, s := range []string{"error", "warning", "info", "hidden"} {
		if _, err := ParseSeverity(s); err != nil {
			t.Errorf("ParseSeverity(%q) error: %v", s, err)
		}
	}
	if _, err := ParseSeverity("fatal"); err == nil {
		t.Error("expected error for unknown severity")
	}
}

func TestNewHost_UnknownLanguageVersion(t *testing.T) {
	_, err := NewHost(nil, WithConfig(configWithVersion("cobol")))
	if !errors.Is(err, ErrUnknownLanguageVersion) {
		t.Errorf("expected ErrUnknownLanguageVersion, got %v", err)
	}
}

func TestNewHost_InitializeError(t *testing.T) {
	broken := &funcRule{
		desc: descriptor("T0001"),
		init: func(*Context) error { return errors.New("boom") },
	}
	_, err := NewHost([]Rule{broken})
	if err == nil || !strings.Contains(err.Error(), "T0001") {
		t.Errorf("expected error naming the rule, got %v", err)
	}
}

func TestContext_VersionGating(t *testing.T) {
	tests := []struct {
		version       string
		wantAtLeast   bool
		wantLowerThan bool
	}{
		{"6", false, true},
		{"7", true, false},
		{"7.3", true, false},
		{"latest", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			var atLeast, lowerThan bool
			rule := &funcRule{
				desc: descriptor("T0002"),
				init: func(ctx *Context) error {
					ctx.RegisterSyntaxNodeActionForVersionAtLeast(CSharp7, func(*NodeContext) {
						atLeast = true
					}, syntax.KindClassDeclaration)
					ctx.RegisterSyntaxNodeActionForVersionLowerThan(CSharp7, func(*NodeContext) {
						lowerThan = true
					}, syntax.KindClassDeclaration)
					return nil
				},
			}

			host, err := NewHost([]Rule{rule}, WithConfig(configWithVersion(tt.version)))
			if err != nil {
				t.Fatalf("NewHost failed: %v", err)
			}
			if _, err := host.Analyze(context.Background(), parseFiles(t, map[string]string{"App.cs": hostSource})); err != nil {
				t.Fatalf("Analyze failed: %v", err)
			}

			if atLeast != tt.wantAtLeast {
				t.Errorf("at-least action ran = %v, want %v", atLeast, tt.wantAtLeast)
			}
			if lowerThan != tt.wantLowerThan {
				t.Errorf("lower-than action ran = %v, want %v", lowerThan, tt.wantLowerThan)
			}
		})
	}
}

func TestHost_Analyze(t *testing.T) {
	host, err := NewHost([]Rule{classRule("T0003")})
	if err != nil {
		t.Fatalf("NewHost failed: %v", err)
	}

	diags, err := host.Analyze(context.Background(), parseFiles(t, map[string]string{"App.cs": hostSource}))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if len(diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(diags))
	}

	first := diags[0]
	if first.Message != "found Widget" {
		t.Errorf("Message = %q, want %q", first.Message, "found Widget")
	}
	if first.Path != "App.cs" {
		t.Errorf("Path = %q, want App.cs", first.Path)
	}
	if first.Range.Start != [2]int{2, 4} {
		t.Errorf("Range.Start = %v, want [2 4]", first.Range.Start)
	}
	if first.Container != "Widget" {
		t.Errorf("Container = %q, want Widget", first.Container)
	}
	if first.Severity != SeverityWarning {
		t.Errorf("Severity = %q, want warning", first.Severity)
	}
	if len(first.Fingerprint) != 64 {
		t.Errorf("Fingerprint length = %d, want 64", len(first.Fingerprint))
	}
	if diags[1].Message != "found Gadget" {
		t.Errorf("second Message = %q", diags[1].Message)
	}
	if first.Fingerprint == diags[1].Fingerprint {
		t.Error("fingerprints of different findings should differ")
	}
}

func TestHost_FingerprintStable(t *testing.T) {
	run := func() []Diagnostic {
		host, err := NewHost([]Rule{classRule("T0004")})
		if err != nil {
			t.Fatalf("NewHost failed: %v", err)
		}
		diags, err := host.Analyze(context.Background(), parseFiles(t, map[string]string{"App.cs": hostSource}))
		if err != nil {
			t.Fatalf("Analyze failed: %v", err)
		}
		return diags
	}

	a, b := run(), run()
	if len(a) != len(b) || len(a) == 0 {
		t.Fatalf("unexpected diagnostic counts %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Fingerprint != b[i].Fingerprint {
			t.Errorf("fingerprint %d changed between runs: %s vs %s", i, a[i].Fingerprint, b[i].Fingerprint)
		}
	}
}

func TestHost_RuleConfig(t *testing.T) {
	disabled := false
	cfg := config.Default()
	cfg.SetRule("T0005", config.RuleConfig{Enabled: &disabled})
	cfg.SetRule("T0006", config.RuleConfig{Severity: "error"})

	host, err := NewHost([]Rule{classRule("T0005"), classRule("T0006")}, WithConfig(cfg))
	if err != nil {
		t.Fatalf("NewHost failed: %v", err)
	}

	if got := len(host.Rules()); got != 1 {
		t.Fatalf("expected 1 enabled rule, got %d", got)
	}
	if host.Rules()[0].ID != "T0006" {
		t.Errorf("enabled rule = %s, want T0006", host.Rules()[0].ID)
	}

	diags, err := host.Analyze(context.Background(), parseFiles(t, map[string]string{"App.cs": hostSource}))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	for _, d := range diags {
		if d.RuleID != "T0006" {
			t.Errorf("unexpected diagnostic from %s", d.RuleID)
		}
		if d.Severity != SeverityError {
			t.Errorf("Severity = %q, want error", d.Severity)
		}
	}
	if !HasErrors(diags) {
		t.Error("HasErrors should be true")
	}
}

func TestHost_SymbolActions(t *testing.T) {
	var visited []string
	rule := &funcRule{
		desc: descriptor("T0007"),
		init: func(ctx *Context) error {
			ctx.RegisterSymbolAction(func(sc *SymbolContext) {
				visited = append(visited, sc.Symbol.QualifiedName())
				if sc.Symbol.Kind() == symbols.KindMethod {
					sc.Report(sc.Symbol, sc.Symbol.Name())
				}
			}, symbols.KindClass, symbols.KindMethod)
			return nil
		},
	}

	host, err := NewHost([]Rule{rule})
	if err != nil {
		t.Fatalf("NewHost failed: %v", err)
	}
	diags, err := host.Analyze(context.Background(), parseFiles(t, map[string]string{"App.cs": hostSource}))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	want := "Widget,Widget.Draw,Gadget,Gadget.Spin"
	if got := strings.Join(visited, ","); got != want {
		t.Errorf("visited = %s, want %s", got, want)
	}
	if len(diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(diags))
	}
	if diags[0].Message != "found Draw" || diags[0].Container != "Widget" {
		t.Errorf("unexpected diagnostic %+v", diags[0])
	}
}

func TestHost_RecoversPanics(t *testing.T) {
	crashing := &funcRule{
		desc: descriptor("T0008"),
		init: func(ctx *Context) error {
			ctx.RegisterSyntaxNodeAction(func(nc *NodeContext) {
				panic("unexpected node")
			}, syntax.KindClassDeclaration)
			return nil
		},
	}

	host, err := NewHost([]Rule{crashing, classRule("T0009")})
	if err != nil {
		t.Fatalf("NewHost failed: %v", err)
	}
	diags, err := host.Analyze(context.Background(), parseFiles(t, map[string]string{"App.cs": hostSource}))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	var crashes, findings int
	for _, d := range diags {
		switch d.RuleID {
		case ruleCrashID:
			crashes++
			if !strings.Contains(d.Message, "T0008") {
				t.Errorf("crash message should name the rule: %q", d.Message)
			}
			if d.Path != "App.cs" {
				t.Errorf("crash Path = %q, want App.cs", d.Path)
			}
		case "T0009":
			findings++
		}
	}
	if crashes != 2 {
		t.Errorf("expected 2 crash diagnostics, got %d", crashes)
	}
	if findings != 2 {
		t.Errorf("other rules should keep running, got %d findings", findings)
	}
}

func TestHost_AnalyzeCancelled(t *testing.T) {
	host, err := NewHost([]Rule{classRule("T0010")})
	if err != nil {
		t.Fatalf("NewHost failed: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := host.Analyze(ctx, parseFiles(t, map[string]string{"App.cs": hostSource})); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestHost_LoadFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "App.cs")
	if err := os.WriteFile(path, []byte(hostSource), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	host, err := NewHost(nil)
	if err != nil {
		t.Fatalf("NewHost failed: %v", err)
	}

	files, err := host.LoadFiles(context.Background(), []string{path})
	if err != nil {
		t.Fatalf("LoadFiles failed: %v", err)
	}
	if len(files) != 1 || files[0].Path != path {
		t.Fatalf("unexpected files %v", files)
	}

	if _, err := host.LoadFiles(context.Background(), []string{filepath.Join(dir, "Missing.cs")}); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestSortDiagnostics(t *testing.T) {
	diags := []Diagnostic{
		{RuleID: "B", Path: "b.cs", Range: parse.Range{Start: [2]int{1, 0}}},
		{RuleID: "B", Path: "a.cs", Range: parse.Range{Start: [2]int{3, 2}}},
		{RuleID: "A", Path: "a.cs", Range: parse.Range{Start: [2]int{3, 2}}},
		{RuleID: "C", Path: "a.cs", Range: parse.Range{Start: [2]int{3, 0}}},
		{RuleID: "D", Path: "a.cs", Range: parse.Range{Start: [2]int{0, 9}}},
	}
	SortDiagnostics(diags)

	var got []string
	for _, d := range diags {
		got = append(got, d.Path+":"+d.RuleID)
	}
	want := "a.cs:D,a.cs:C,a.cs:A,a.cs:B,b.cs:B"
	if strings.Join(got, ",") != want {
		t.Errorf("order = %v, want %s", got, want)
	}
}

func TestNodeName(t *testing.T) {
	el := syntax.NewText(syntax.KindClassDeclaration, "Widget")
	if got := NodeName(el); got != "Widget" {
		t.Errorf("NodeName(element) = %q, want Widget", got)
	}
	if got := NodeName(nil); got != "" {
		t.Errorf("NodeName(nil) = %q, want empty", got)
	}
}
