package analyzer

import (
	"github.com/funvibe/typeeval/internal/diagnostics"
	"github.com/funvibe/typeeval/internal/pipeline"
	"github.com/funvibe/typeeval/internal/token"
)

// CheckProcessor loads the modules named by ctx.Paths and runs the checking
// pass over them with a fresh evaluator.
type CheckProcessor struct{}

func (cp *CheckProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Err != nil {
		return ctx
	}
	cfg := ctx.Config

	collector := diagnostics.NewCollector()
	eval, err := New(Options{
		StubPath:    cfg.StubPath(),
		SearchPaths: cfg.ResolvedSearchPaths(),
		Sink:        collector.Sink(),
	})
	if err != nil {
		ctx.Err = err
		return ctx
	}
	ctx.CompilationID = eval.ID
	ctx.Logger.Printf("compilation %s: checking %d module(s)", eval.ID, len(ctx.Paths))

	for _, path := range ctx.Paths {
		mod, err := eval.Compiler().CompileModule(path, "")
		if err != nil {
			collector.Add(diagnostics.NewError(diagnostics.ErrT014, token.Token{File: path}, err.Error()))
			continue
		}
		ctx.Logger.Printf("checking %s (%s)", mod.Name, mod.Path)
		eval.CheckModule(mod)
		ctx.Modules = append(ctx.Modules, mod)
	}

	ctx.TypeMap = eval.TypeMap
	ctx.ResolutionMap = eval.ResolutionMap
	ctx.Errors = append(ctx.Errors, collector.Errors()...)
	ctx.Logger.Printf("compilation %s: %d diagnostic(s)", eval.ID, len(ctx.Errors))
	return ctx
}
