package main

import (
	"fmt"
	"io"

	"github.com/funvibe/typeeval/internal/analyzer"
	"github.com/funvibe/typeeval/internal/ast"
	"github.com/funvibe/typeeval/internal/pipeline"
	"github.com/funvibe/typeeval/internal/prettyprinter"
	"github.com/funvibe/typeeval/internal/typesystem"
)

// handleShow prints declaration modules in source form with the computed
// type of every declaration.
func handleShow(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "show needs at least one module")
		return 2
	}
	cfg, err := loadConfig("")
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	ctx := pipeline.New(&analyzer.CheckProcessor{}).Run(pipeline.NewPipelineContext(cfg, args...))
	if ctx.Err != nil {
		fmt.Fprintf(stderr, "%v\n", ctx.Err)
		return 1
	}

	for i, mod := range ctx.Modules {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		p := prettyprinter.NewCodePrinter()
		p.Types = func(node ast.Node) (typesystem.Type, bool) {
			t, ok := ctx.TypeMap[node]
			return t, ok
		}
		p.PrintModule(mod)
		fmt.Fprint(stdout, p.String())
	}
	for _, d := range ctx.Errors {
		fmt.Fprintln(stderr, d.Error())
	}
	if ctx.HasErrors() {
		return 1
	}
	return 0
}
