package analyzer

import (
	"github.com/funvibe/typeeval/internal/ast"
	"github.com/funvibe/typeeval/internal/config"
	"github.com/funvibe/typeeval/internal/diagnostics"
	"github.com/funvibe/typeeval/internal/typesystem"
)

// ValidateCallArgs evaluates a call. Calls of functions are bound and type
// checked; calling a class yields an instance without looking at its
// initializer; calling an instance goes through __call__.
func (e *Evaluator) ValidateCallArgs(call *ast.CallExpression) typesystem.Type {
	switch callee := e.GetTypeOfExpression(call.Function).(type) {
	case *typesystem.TFunction:
		return e.validateArgs(call, callee)

	case typesystem.TClass:
		if callee.IsInstantiable() {
			e.evaluateArgs(call)
			return callee.CloneAsInstance()
		}
		if method, ok := e.memberType(callee, config.CallMethod); ok {
			if fn, ok := method.(*typesystem.TFunction); ok {
				return e.validateArgs(call, fn)
			}
		}

	case typesystem.TAny:
		e.evaluateArgs(call)
		return typesystem.Any
	}
	e.evaluateArgs(call)
	return typesystem.Unknown
}

func (e *Evaluator) evaluateArgs(call *ast.CallExpression) {
	for _, arg := range call.Arguments {
		e.GetTypeOfExpression(arg.Value)
	}
}

func (e *Evaluator) validateArgs(call *ast.CallExpression, fn *typesystem.TFunction) typesystem.Type {
	binder := NewParameterBinder(fn)
	for _, arg := range call.Arguments {
		if err := binder.Bind(arg); err != nil {
			e.addError(err.Code(), arg, "%s", err.Error())
		}
	}
	if missing := binder.Missing(); len(missing) > 0 {
		e.addError(diagnostics.ErrT005, call, "%s", missingMessage(missing))
	}

	e.evaluateArgs(call)
	for _, m := range binder.Matches {
		// Union parameters are not checked member-wise, like annotated
		// bindings in the checking pass.
		if m.Param.DeclaredType == nil || isUnion(m.Param.DeclaredType) {
			continue
		}
		argType := e.GetTypeOfExpression(m.Arg.Value)
		if !e.AssignType(argType, m.Param.DeclaredType) {
			e.addError(diagnostics.ErrT006, m.Arg, "argument of type %s is not assignable to parameter '%s' of type %s",
				argType, m.Param.Name, m.Param.DeclaredType)
		}
	}
	return fn.Result()
}
