package analyzer

import (
	"github.com/funvibe/typeeval/internal/ast"
	"github.com/funvibe/typeeval/internal/config"
	"github.com/funvibe/typeeval/internal/symbols"
	"github.com/funvibe/typeeval/internal/typesystem"
)

// GetTypeOfExpression returns the type of node, computing it on first use.
// A cached type is returned as is; it is never recomputed.
func (e *Evaluator) GetTypeOfExpression(node ast.Expression) typesystem.Type {
	if node == nil {
		return typesystem.Unknown
	}
	if t, ok := e.TypeMap[node]; ok {
		return t
	}
	r := &expressionTyper{e: e}
	node.Accept(r)
	if r.result == nil {
		r.result = typesystem.Unknown
	}
	return e.cacheType(node, r.result)
}

type expressionTyper struct {
	e      *Evaluator
	result typesystem.Type
}

func (r *expressionTyper) VisitLiteral(n *ast.Literal) {
	switch n.Kind {
	case ast.IntLiteral:
		r.result = r.e.builtinInstance(config.IntTypeName)
	case ast.FloatLiteral:
		r.result = r.e.builtinInstance(config.FloatTypeName)
	case ast.StringLiteral:
		r.result = r.e.builtinInstance(config.StrTypeName)
	case ast.BoolLiteral:
		r.result = r.e.builtinInstance(config.BoolTypeName)
	case ast.NoneLiteral:
		r.result = r.e.builtinInstance(config.NoneTypeTypeName)
	default:
		r.result = typesystem.Unknown
	}
}

func (r *expressionTyper) VisitCollectionLiteral(n *ast.CollectionLiteral) {
	for _, k := range n.Keys {
		r.e.GetTypeOfExpression(k)
	}
	for _, el := range n.Elements {
		r.e.GetTypeOfExpression(el)
	}
	switch n.Kind {
	case ast.TupleCollection:
		r.result = r.e.builtinInstance(config.TupleTypeName)
	case ast.ListCollection:
		r.result = r.e.builtinInstance(config.ListTypeName)
	case ast.DictCollection:
		r.result = r.e.builtinInstance(config.DictTypeName)
	}
}

func (r *expressionTyper) VisitParenExpression(n *ast.ParenExpression) {
	r.result = r.e.GetTypeOfExpression(n.Inner)
}

func (r *expressionTyper) VisitName(n *ast.Name) {
	e := r.e
	scope := n.GetScope()
	sym, found := scope.Lookup(n.Value, true)
	if found {
		e.recordSymbol(n, sym)
	}
	if n.Value == config.SelfName {
		if method := receiverMethod(scope); method != nil {
			r.result = e.ownerInstance(method)
			return
		}
	}
	if !found {
		r.result = typesystem.Unknown
		return
	}
	r.result = e.GetTypeOfSymbol(sym)
}

// receiverMethod returns the non-static method whose body encloses scope,
// looking through nested function scopes.
func receiverMethod(scope *symbols.Scope) *ast.FuncDecl {
	for cur := scope; cur != nil; cur = cur.Outer() {
		switch cur.Kind {
		case symbols.ScopeFunction:
			fn, ok := cur.Owner.(*ast.FuncDecl)
			if !ok || !fn.IsMethod() {
				continue
			}
			if fn.IsStatic {
				return nil
			}
			return fn
		case symbols.ScopeBlock:
			continue
		default:
			return nil
		}
	}
	return nil
}

func (r *expressionTyper) VisitAttributeExpression(n *ast.AttributeExpression) {
	r.result = r.e.getTypeOfMember(n)
}

func (r *expressionTyper) VisitCallExpression(n *ast.CallExpression) {
	r.result = r.e.ValidateCallArgs(n)
}

func (r *expressionTyper) VisitBinaryExpression(n *ast.BinaryExpression) {
	r.result = r.e.validateBinaryOperation(n)
}

func (r *expressionTyper) VisitUnaryExpression(n *ast.UnaryExpression) {
	r.result = r.e.validateUnaryOperation(n)
}
