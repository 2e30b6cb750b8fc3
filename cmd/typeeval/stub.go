package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/funvibe/typeeval/internal/analyzer"
	"github.com/funvibe/typeeval/internal/ast"
	"github.com/funvibe/typeeval/internal/typesystem"
)

// handleStub prints every class of the builtin stub with its MRO.
func handleStub(args []string, stdout, stderr io.Writer) int {
	var path string
	if len(args) > 1 {
		fmt.Fprintln(stderr, "stub takes at most one path")
		return 2
	}
	if len(args) == 1 {
		path = args[0]
	}

	eval, err := analyzer.New(analyzer.Options{StubPath: path})
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	for _, stmt := range eval.Prelude.Body {
		switch decl := stmt.(type) {
		case *ast.ClassDecl:
			cls, ok := eval.TypeOfDeclaration(decl).(typesystem.TClass)
			if !ok {
				continue
			}
			names := make([]string, len(cls.Details.MRO))
			for i, m := range cls.Details.MRO {
				names[i] = m.Details.Name
			}
			fmt.Fprintf(stdout, "%-10s %-8s %s\n", cls.Details.Name, decl.Kind, strings.Join(names, " -> "))
		case *ast.FuncDecl:
			fmt.Fprintf(stdout, "%-10s %-8s %s\n", decl.DeclName(), "def", eval.TypeOfDeclaration(decl))
		}
	}
	return 0
}
