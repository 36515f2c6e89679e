package rules

import (
	"fmt"

	"github.com/kacioidarlan/code-cracker/analyzer"
	"github.com/kacioidarlan/code-cracker/symbols"
)

// TooManyMethods flags top-level types whose methods, counted together with
// the methods of their nested types, exceed a limit.
type TooManyMethods struct{}

type tooManyMethodsOptions struct {
	Max int `yaml:"max"`
}

// DefaultMaxMethods is the limit used when no max option is configured.
const DefaultMaxMethods = 20

func (r *TooManyMethods) Descriptor() analyzer.Descriptor {
	return analyzer.Descriptor{
		ID:               "CR2001",
		Title:            "Type has too many methods",
		Category:         categoryMaintainability,
		MessageFormat:    "Type %s declares %d methods including nested types (max %d)",
		DefaultSeverity:  analyzer.SeverityWarning,
		EnabledByDefault: true,
	}
}

func (r *TooManyMethods) Initialize(ctx *analyzer.Context) error {
	opts := tooManyMethodsOptions{Max: DefaultMaxMethods}
	if err := ctx.DecodeOptions(&opts); err != nil {
		return err
	}
	if opts.Max < 0 {
		return fmt.Errorf("max must not be negative, got %d", opts.Max)
	}

	ctx.RegisterSymbolAction(func(sc *analyzer.SymbolContext) {
		r.analyze(sc, opts.Max)
	}, symbols.KindClass, symbols.KindStruct, symbols.KindInterface, symbols.KindRecord)
	return nil
}

func (r *TooManyMethods) analyze(sc *analyzer.SymbolContext, limit int) {
	t := sc.Symbol
	if t.Containing() != nil {
		return
	}
	count := len(symbols.AllMethodsIncludingNested(t))
	if count > limit {
		sc.Report(t, t.Name(), count, limit)
	}
}

// MethodHidesBase flags methods that reuse the name of a base type method
// without override or new.
type MethodHidesBase struct{}

func (r *MethodHidesBase) Descriptor() analyzer.Descriptor {
	return analyzer.Descriptor{
		ID:               "CR2002",
		Title:            "Method hides inherited member",
		Category:         categoryDesign,
		MessageFormat:    "Method %s hides %s.%s; add override or new",
		DefaultSeverity:  analyzer.SeverityWarning,
		EnabledByDefault: true,
	}
}

func (r *MethodHidesBase) Initialize(ctx *analyzer.Context) error {
	ctx.RegisterSymbolAction(r.analyze, symbols.KindClass, symbols.KindRecord)
	return nil
}

func (r *MethodHidesBase) analyze(sc *analyzer.SymbolContext) {
	t := sc.Symbol
	if t.Base() == nil {
		return
	}
	for _, m := range symbols.Methods(t) {
		method := m.(*symbols.Decl)
		if method.Kind() != symbols.KindMethod || method.HasModifier("override") || method.HasModifier("new") {
			continue
		}
		for base := range symbols.BaseChain(t, false) {
			if symbols.FindMember(base, method.Name(), symbols.KindMethod) != nil {
				sc.Report(method, method.Name(), base.Name(), method.Name())
				break
			}
		}
	}
}
