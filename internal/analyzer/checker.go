package analyzer

import (
	"github.com/funvibe/typeeval/internal/ast"
	"github.com/funvibe/typeeval/internal/config"
	"github.com/funvibe/typeeval/internal/diagnostics"
	"github.com/funvibe/typeeval/internal/symbols"
	"github.com/funvibe/typeeval/internal/typesystem"
)

// Checker walks the statements of a module and evaluates every declaration
// and expression in it, reporting what the evaluator alone does not:
// incompatible assignments and return values.
type Checker struct {
	e *Evaluator

	// Declared return types of the enclosing functions; nil entries are
	// unannotated functions.
	returns []typesystem.Type
}

func NewChecker(e *Evaluator) *Checker {
	return &Checker{e: e}
}

// CheckModule runs the checking pass over mod.
func (e *Evaluator) CheckModule(mod *ast.Module) {
	NewChecker(e).CheckStatements(mod.Body)
}

func (c *Checker) CheckStatements(stmts []ast.Statement) {
	for _, stmt := range stmts {
		stmt.Accept(c)
	}
}

func (c *Checker) VisitExpressionStatement(s *ast.ExpressionStatement) {
	c.e.GetTypeOfExpression(s.Expression)
}

func (c *Checker) VisitAssignment(a *ast.Assignment) {
	e := c.e
	switch target := a.Target.(type) {
	case *ast.Name:
		if a.Annotation != nil {
			declared := e.TypeOfDeclaration(a)
			if a.Value != nil {
				c.checkAssignable(a.Value, declared, "cannot assign %s to '%s' of type %s", target.Value)
			}
			return
		}
		valueType := e.TypeOfDeclaration(a)
		if declared, ok := c.annotatedBinding(a, target); ok && a.Value != nil {
			c.reportIfIncompatible(a.Value, valueType, declared, "cannot assign %s to '%s' of type %s", target.Value)
		}

	case *ast.AttributeExpression:
		memberType := e.GetTypeOfExpression(target)
		if a.Value != nil {
			c.checkAssignable(a.Value, memberType, "cannot assign %s to member '%s' of type %s", target.Member.String())
		}

	default:
		e.GetTypeOfExpression(a.Target)
		e.GetTypeOfExpression(a.Value)
	}
}

// annotatedBinding finds the nearest annotated declaration of name that
// precedes the unannotated assignment a, which may itself be the binding
// the scope holds for name.
func (c *Checker) annotatedBinding(a *ast.Assignment, name *ast.Name) (typesystem.Type, bool) {
	sym, ok := name.GetScope().Lookup(name.Value, true)
	if !ok {
		return nil, false
	}
	decls := sym.Declarations()
	last := len(decls) - 1
	for i, d := range decls {
		if d == symbols.Declaration(a) {
			last = i - 1
			break
		}
	}
	for i := last; i >= 0; i-- {
		switch d := decls[i].(type) {
		case *ast.Assignment:
			if d.Annotation != nil {
				return c.e.TypeOfDeclaration(d), true
			}
		case *ast.FieldDecl:
			if d.Annotation != nil {
				return c.e.TypeOfDeclaration(d), true
			}
		case *ast.Parameter:
			if d.Annotation != nil {
				return c.e.TypeOfDeclaration(d), true
			}
		}
	}
	return nil, false
}

func (c *Checker) VisitReturnStatement(r *ast.ReturnStatement) {
	e := c.e
	var valueType typesystem.Type
	if r.Value != nil {
		valueType = e.GetTypeOfExpression(r.Value)
	} else {
		valueType = e.builtinInstance(config.NoneTypeTypeName)
	}
	if len(c.returns) == 0 {
		return
	}
	declared := c.returns[len(c.returns)-1]
	if declared == nil {
		return
	}
	var at ast.Node = r
	if r.Value != nil {
		at = r.Value
	}
	if !isUnion(declared) && !e.AssignType(valueType, declared) {
		e.addError(diagnostics.ErrT007, at, "return type %s is not assignable to declared return type %s", valueType, declared)
	}
}

func (c *Checker) VisitImportDecl(d *ast.ImportDecl) {
	c.e.TypeOfDeclaration(d)
}

func (c *Checker) VisitClassDecl(d *ast.ClassDecl) {
	c.e.TypeOfDeclaration(d)
	c.CheckStatements(d.Body)
}

func (c *Checker) VisitFuncDecl(d *ast.FuncDecl) {
	fn, _ := c.e.TypeOfDeclaration(d).(*typesystem.TFunction)
	for i, p := range d.Params {
		if p.Default == nil {
			continue
		}
		var declared typesystem.Type = typesystem.Unknown
		if fn != nil && i < len(fn.Params) && fn.Params[i].DeclaredType != nil {
			declared = fn.Params[i].DeclaredType
		}
		c.checkAssignable(p.Default, declared, "default %s is not assignable to parameter '%s' of type %s", p.DeclName())
	}

	var declared typesystem.Type
	if fn != nil {
		declared = fn.ReturnType
	}
	c.returns = append(c.returns, declared)
	c.CheckStatements(d.Body)
	c.returns = c.returns[:len(c.returns)-1]
}

func (c *Checker) VisitFieldDecl(d *ast.FieldDecl) {
	declared := c.e.TypeOfDeclaration(d)
	if d.Annotation != nil && d.Default != nil {
		c.checkAssignable(d.Default, declared, "cannot assign %s to field '%s' of type %s", d.DeclName())
	}
}

// checkAssignable evaluates value and reports T007 when it cannot be
// assigned to declared. format receives the value type, name and declared
// type in that order.
func (c *Checker) checkAssignable(value ast.Expression, declared typesystem.Type, format string, name string) {
	valueType := c.e.GetTypeOfExpression(value)
	c.reportIfIncompatible(value, valueType, declared, format, name)
}

func (c *Checker) reportIfIncompatible(at ast.Node, valueType, declared typesystem.Type, format string, name string) {
	// Unions are not checked member-wise, so any check against one would be
	// a guess.
	if isUnion(declared) {
		return
	}
	if !c.e.AssignType(valueType, declared) {
		c.e.addError(diagnostics.ErrT007, at, format, valueType, name, declared)
	}
}

func isUnion(t typesystem.Type) bool {
	_, ok := t.(typesystem.TUnion)
	return ok
}
