package cache

import (
	"fmt"

	"github.com/funvibe/typeeval/internal/ast"
	"github.com/funvibe/typeeval/internal/pipeline"
)

// StoreProcessor persists the declaration types of every checked module
// when the configuration names a cache database.
type StoreProcessor struct{}

func (sp *StoreProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Err != nil || ctx.Config.Cache == "" {
		return ctx
	}

	store, err := Open(ctx.Config.CachePath())
	if err != nil {
		ctx.Err = err
		return ctx
	}
	defer store.Close()

	for _, mod := range ctx.Modules {
		if err := store.SaveSummary(ctx.CompilationID, mod.Name, Summarize(mod, ctx)); err != nil {
			ctx.Err = fmt.Errorf("caching %s: %w", mod.Name, err)
			return ctx
		}
	}
	if err := store.SaveRun(Run{Compilation: ctx.CompilationID, Modules: len(ctx.Modules), Diagnostics: len(ctx.Errors)}); err != nil {
		ctx.Err = fmt.Errorf("caching run: %w", err)
		return ctx
	}
	ctx.Logger.Printf("cached %d module(s) in %s", len(ctx.Modules), ctx.Config.CachePath())
	return ctx
}

// Summarize renders the computed type of each top-level declaration of mod.
// Declarations the checking pass did not reach are skipped.
func Summarize(mod *ast.Module, ctx *pipeline.PipelineContext) []Entry {
	var out []Entry
	for _, stmt := range mod.Body {
		decl, ok := stmt.(ast.Declaration)
		if !ok {
			continue
		}
		t, ok := ctx.TypeMap[decl]
		if !ok {
			continue
		}
		out = append(out, Entry{Module: mod.Name, Name: decl.DeclName(), Type: t.String()})
	}
	return out
}
