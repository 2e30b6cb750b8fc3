// Package analyzer implements the type evaluator of the checking pass.
//
// An Evaluator is one compilation context: it owns the builtin prelude, the
// per-node type and symbol caches and the resolution stack used to break
// self-referential declarations. Types are computed on demand, memoized per
// node, and every entry point returns a type; problems are reported through
// the registered diagnostics sink.
//
// An Evaluator has a single mutator. Checking modules in parallel needs one
// Evaluator per goroutine or external serialization.
package analyzer

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/funvibe/typeeval/internal/ast"
	"github.com/funvibe/typeeval/internal/config"
	"github.com/funvibe/typeeval/internal/diagnostics"
	"github.com/funvibe/typeeval/internal/modules"
	"github.com/funvibe/typeeval/internal/stubs"
	"github.com/funvibe/typeeval/internal/symbols"
	"github.com/funvibe/typeeval/internal/typesystem"
)

// ModuleCompiler compiles the module an import refers to. importer is the
// file of the importing module and may be empty. Implementations cache.
type ModuleCompiler interface {
	CompileModule(path string, importer string) (*ast.Module, error)
}

// Options configure a new Evaluator.
type Options struct {
	// StubPath is the builtin declarations stub; empty selects the embedded one.
	StubPath string

	// Compiler resolves imports. Defaults to a modules.Loader over the
	// prelude and SearchPaths.
	Compiler ModuleCompiler

	SearchPaths []string

	// Sink receives diagnostics. It can also be set later with SetSink.
	Sink diagnostics.Sink
}

// Evaluator computes and caches types for one compilation.
type Evaluator struct {
	ID uuid.UUID

	TypeMap       map[ast.Node]typesystem.Type // Computed type of every evaluated node
	ResolutionMap map[ast.Node]*symbols.Symbol // Symbol each name / member access resolved to
	Prelude       *ast.Module

	compiler ModuleCompiler
	sink     diagnostics.Sink
	stack    resolutionStack
	builtins *builtinTypes
	shadowed map[ast.Declaration]*symbols.Symbol
}

// New creates an evaluator and loads the builtin stub. A missing stub is the
// only error this returns for otherwise valid options.
func New(opts Options) (*Evaluator, error) {
	prelude, err := stubs.LoadPrelude(opts.StubPath)
	if err != nil {
		return nil, err
	}

	e := &Evaluator{
		ID:            uuid.New(),
		TypeMap:       make(map[ast.Node]typesystem.Type),
		ResolutionMap: make(map[ast.Node]*symbols.Symbol),
		Prelude:       prelude,
		compiler:      opts.Compiler,
		sink:          opts.Sink,
		shadowed:      make(map[ast.Declaration]*symbols.Symbol),
	}
	if e.compiler == nil {
		e.compiler = modules.NewLoader(prelude.Table, opts.SearchPaths...)
	}
	e.builtins = newBuiltinTypes(prelude.Table)

	for _, name := range config.PrefetchedTypeNames {
		if _, ok := e.builtinClass(name); !ok {
			return nil, fmt.Errorf("%s: builtin stub does not declare class %q", prelude.Path, name)
		}
	}
	return e, nil
}

// SetSink registers the diagnostics callback, replacing any previous one.
func (e *Evaluator) SetSink(sink diagnostics.Sink) {
	e.sink = sink
}

// Compiler returns the module compiler imports are resolved with.
func (e *Evaluator) Compiler() ModuleCompiler {
	return e.compiler
}

func (e *Evaluator) report(err *diagnostics.DiagnosticError) {
	if e.sink != nil {
		e.sink(err)
	}
}

func (e *Evaluator) addError(code diagnostics.ErrorCode, node ast.Node, format string, args ...interface{}) {
	e.report(diagnostics.NewError(code, node.GetToken(), fmt.Sprintf(format, args...)))
}

func (e *Evaluator) addWarning(code diagnostics.ErrorCode, node ast.Node, format string, args ...interface{}) {
	e.report(diagnostics.NewWarning(code, node.GetToken(), fmt.Sprintf(format, args...)))
}

// cacheType stores t for node unless a type is already cached, and returns
// the cached value. Cached types are never replaced.
func (e *Evaluator) cacheType(node ast.Node, t typesystem.Type) typesystem.Type {
	if existing, ok := e.TypeMap[node]; ok {
		return existing
	}
	e.TypeMap[node] = t
	return t
}

func (e *Evaluator) recordSymbol(node ast.Node, sym *symbols.Symbol) {
	if _, ok := e.ResolutionMap[node]; !ok {
		e.ResolutionMap[node] = sym
	}
}

// ResolvedSymbol returns the symbol a name or member access resolved to.
func (e *Evaluator) ResolvedSymbol(node ast.Node) (*symbols.Symbol, bool) {
	sym, ok := e.ResolutionMap[node]
	return sym, ok
}
