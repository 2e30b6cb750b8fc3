package pipeline

import (
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/funvibe/typeeval/internal/ast"
	"github.com/funvibe/typeeval/internal/config"
	"github.com/funvibe/typeeval/internal/diagnostics"
	"github.com/funvibe/typeeval/internal/symbols"
	"github.com/funvibe/typeeval/internal/typesystem"
)

// PipelineContext carries the state of one compilation between stages.
type PipelineContext struct {
	Config *config.Config
	Paths  []string // Declaration modules to check

	CompilationID uuid.UUID
	Modules       []*ast.Module
	TypeMap       map[ast.Node]typesystem.Type
	ResolutionMap map[ast.Node]*symbols.Symbol
	Errors        []*diagnostics.DiagnosticError

	// Err is a setup failure that stops the pipeline.
	Err error

	Logger *log.Logger
}

// NewPipelineContext prepares a context for checking paths. A nil cfg
// selects config.Default(); the logger discards unless cfg.Verbose is set.
func NewPipelineContext(cfg *config.Config, paths ...string) *PipelineContext {
	if cfg == nil {
		cfg = config.Default()
	}
	logger := log.New(io.Discard, "", 0)
	if cfg.Verbose {
		logger = log.New(log.Writer(), "typeeval: ", log.LstdFlags)
	}
	return &PipelineContext{
		Config: cfg,
		Paths:  paths,
		Logger: logger,
	}
}

// HasErrors reports whether an error-severity diagnostic was collected.
func (ctx *PipelineContext) HasErrors() bool {
	return diagnostics.HasErrors(ctx.Errors)
}
