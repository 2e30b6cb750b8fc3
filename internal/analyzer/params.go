package analyzer

import (
	"fmt"
	"strings"

	"github.com/funvibe/typeeval/internal/ast"
	"github.com/funvibe/typeeval/internal/diagnostics"
	"github.com/funvibe/typeeval/internal/typesystem"
)

type ArgumentErrorKind int

const (
	TooManyPositional ArgumentErrorKind = iota
	AlreadyAssigned
	PositionalOnlyByName
	UnexpectedKeyword
)

// ArgumentError is a failure to match one call argument. Binding continues
// with the next argument after one is returned.
type ArgumentError struct {
	Kind  ArgumentErrorKind
	Arg   *ast.Argument
	Param string
}

func (e *ArgumentError) Error() string {
	switch e.Kind {
	case TooManyPositional:
		return "too many positional arguments"
	case AlreadyAssigned:
		return fmt.Sprintf("parameter '%s' is already assigned", e.Param)
	case PositionalOnlyByName:
		return fmt.Sprintf("positional-only parameter '%s' passed as keyword argument", e.Param)
	default:
		return fmt.Sprintf("unexpected keyword argument '%s'", e.Param)
	}
}

// Code returns the diagnostic code the error is reported with.
func (e *ArgumentError) Code() diagnostics.ErrorCode {
	switch e.Kind {
	case TooManyPositional:
		return diagnostics.ErrT001
	case AlreadyAssigned:
		return diagnostics.ErrT002
	case PositionalOnlyByName:
		return diagnostics.ErrT003
	default:
		return diagnostics.ErrT004
	}
}

// ArgumentMatch pairs an argument with the parameter it binds to.
type ArgumentMatch struct {
	Arg   *ast.Argument
	Param typesystem.Parameter
}

// exhausted marks a positional cursor past every positional parameter.
const exhausted = -1

// ParameterBinder matches call arguments against a signature one argument
// at a time. The explicit receiver is not part of the signature it sees.
type ParameterBinder struct {
	params  []typesystem.Parameter
	matched []bool
	cursor  int
	varArg  int
	kwArgs  int
	Matches []ArgumentMatch
}

func NewParameterBinder(fn *typesystem.TFunction) *ParameterBinder {
	params := fn.Params
	if len(params) > 0 && params[0].IsSelf {
		params = params[1:]
	}
	b := &ParameterBinder{
		params:  params,
		matched: make([]bool, len(params)),
		varArg:  -1,
		kwArgs:  -1,
	}
	for i, p := range params {
		switch p.Category {
		case typesystem.ParamVarArg:
			b.varArg = i
		case typesystem.ParamKwargsDict:
			b.kwArgs = i
		}
	}
	return b
}

// Bind matches one argument. Arguments must be bound in call order.
func (b *ParameterBinder) Bind(arg *ast.Argument) *ArgumentError {
	switch arg.Kind {
	case ast.UnpackArgument:
		b.unpackPositional()
		return nil
	case ast.UnpackMapArgument:
		b.unpackNamed()
		return nil
	case ast.NamedArgument:
		return b.bindNamed(arg)
	default:
		return b.bindPositional(arg)
	}
}

func (b *ParameterBinder) bindPositional(arg *ast.Argument) *ArgumentError {
	if b.cursor != exhausted && b.cursor < len(b.params) {
		p := b.params[b.cursor]
		switch p.Kind {
		case ast.VarArgParam:
			b.match(b.cursor, arg)
			return nil
		case ast.PositionalOnlyParam, ast.NormalParam:
			b.match(b.cursor, arg)
			b.cursor++
			return nil
		}
	}
	b.cursor = exhausted
	if b.varArg >= 0 {
		b.match(b.varArg, arg)
		return nil
	}
	return &ArgumentError{Kind: TooManyPositional, Arg: arg}
}

func (b *ParameterBinder) unpackPositional() {
	if b.cursor != exhausted {
		for i := b.cursor; i < len(b.params); i++ {
			switch b.params[i].Kind {
			case ast.PositionalOnlyParam, ast.NormalParam, ast.VarArgParam:
				b.matched[i] = true
			}
		}
	}
	b.cursor = exhausted
}

func (b *ParameterBinder) bindNamed(arg *ast.Argument) *ArgumentError {
	for i, p := range b.params {
		if p.Name != arg.Name {
			continue
		}
		switch p.Kind {
		case ast.PositionalOnlyParam:
			return &ArgumentError{Kind: PositionalOnlyByName, Arg: arg, Param: p.Name}
		case ast.NormalParam, ast.KeywordOnlyParam:
			if b.matched[i] {
				return &ArgumentError{Kind: AlreadyAssigned, Arg: arg, Param: p.Name}
			}
			b.match(i, arg)
			return nil
		}
	}
	if b.kwArgs >= 0 {
		b.match(b.kwArgs, arg)
		return nil
	}
	return &ArgumentError{Kind: UnexpectedKeyword, Arg: arg, Param: arg.Name}
}

func (b *ParameterBinder) unpackNamed() {
	for i, p := range b.params {
		switch p.Kind {
		case ast.NormalParam, ast.KeywordOnlyParam, ast.KwArgParam:
			b.matched[i] = true
		}
	}
}

func (b *ParameterBinder) match(i int, arg *ast.Argument) {
	b.matched[i] = true
	b.Matches = append(b.Matches, ArgumentMatch{Arg: arg, Param: b.params[i]})
}

// Missing returns the required parameters no argument was bound to.
func (b *ParameterBinder) Missing() []typesystem.Parameter {
	var missing []typesystem.Parameter
	for i, p := range b.params {
		if b.matched[i] || p.HasDefault() || p.Category != typesystem.ParamPositional {
			continue
		}
		missing = append(missing, p)
	}
	return missing
}

func missingMessage(missing []typesystem.Parameter) string {
	names := make([]string, len(missing))
	for i, p := range missing {
		names[i] = p.Name
	}
	if len(names) == 1 {
		return "missing required parameter: " + names[0]
	}
	return "missing required parameters: " + strings.Join(names, ", ")
}
