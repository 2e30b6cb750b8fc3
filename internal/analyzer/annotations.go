package analyzer

import (
	"github.com/funvibe/typeeval/internal/ast"
	"github.com/funvibe/typeeval/internal/config"
	"github.com/funvibe/typeeval/internal/typesystem"
)

// annotationType converts a type annotation into the type of values it
// describes: a class annotation denotes instances of the class.
func (e *Evaluator) annotationType(expr ast.Expression) typesystem.Type {
	switch x := expr.(type) {
	case nil:
		return typesystem.Unknown
	case *ast.ParenExpression:
		return e.annotationType(x.Inner)
	case *ast.Literal:
		if x.Kind == ast.NoneLiteral {
			e.GetTypeOfExpression(x)
			return e.builtinInstance(config.NoneTypeTypeName)
		}
		return typesystem.Unknown
	case *ast.BinaryExpression:
		if x.Operator == "|" {
			return unionOf(e.annotationType(x.Left), e.annotationType(x.Right))
		}
	case *ast.Name:
		if _, ok := x.GetScope().Lookup(x.Value, true); !ok {
			if x.Value == config.NoneName {
				return e.builtinInstance(config.NoneTypeTypeName)
			}
			return specialAnnotation(x.Value)
		}
	}
	return annotationOf(e.GetTypeOfExpression(expr))
}

// specialAnnotation maps names with built-in annotation meaning that are
// not declared by any stub.
func specialAnnotation(name string) typesystem.Type {
	switch name {
	case config.AnyName, config.AnyNameLow:
		return typesystem.Any
	case config.NeverName, config.NoReturn:
		return typesystem.Never
	}
	return typesystem.Unknown
}

func annotationOf(t typesystem.Type) typesystem.Type {
	switch v := t.(type) {
	case typesystem.TClass:
		if v.IsInstantiable() {
			return v.CloneAsInstance()
		}
	case typesystem.TAny:
		return v
	}
	return typesystem.Unknown
}

// unionOf joins two annotation members, flattening a left-nested union.
func unionOf(left, right typesystem.Type) typesystem.Type {
	if u, ok := left.(typesystem.TUnion); ok {
		return typesystem.NewUnion(append(u.Members, right)...)
	}
	return typesystem.NewUnion(left, right)
}
