package analyzer

import (
	"github.com/funvibe/typeeval/internal/ast"
	"github.com/funvibe/typeeval/internal/diagnostics"
	"github.com/funvibe/typeeval/internal/symbols"
	"github.com/funvibe/typeeval/internal/typesystem"
)

// getTypeOfMember resolves object.member. Class objects and instances share
// one lookup; there is no static/instance member distinction.
func (e *Evaluator) getTypeOfMember(node *ast.AttributeExpression) typesystem.Type {
	base := e.GetTypeOfExpression(node.Object)
	name := node.Member.String()

	switch b := base.(type) {
	case typesystem.TModule:
		sym, ok := b.Scope.Lookup(name, false)
		if !ok {
			e.addError(diagnostics.ErrT012, node, "module '%s' has no member '%s'", b.Name, name)
			return typesystem.Unknown
		}
		e.recordSymbol(node, sym)
		return e.GetTypeOfSymbol(sym)

	case typesystem.TClass:
		sym, ok := e.lookUpClassMember(b, name)
		if !ok {
			if !hierarchyIncomplete(b) {
				e.addError(diagnostics.ErrT012, node, "%s has no member '%s'", b, name)
			}
			return typesystem.Unknown
		}
		e.recordSymbol(node, sym)
		return e.GetTypeOfSymbol(sym)

	case typesystem.TAny:
		return typesystem.Any
	}
	return typesystem.Unknown
}

// lookUpClassMember finds name along the MRO of cls.
func (e *Evaluator) lookUpClassMember(cls typesystem.TClass, name string) (*symbols.Symbol, bool) {
	typesystem.ComputeMRO(cls)
	sym, _, ok := cls.LookUpMember(name)
	return sym, ok
}

// memberType returns the type of member name on cls, or false when no
// class in the MRO declares it.
func (e *Evaluator) memberType(cls typesystem.TClass, name string) (typesystem.Type, bool) {
	sym, ok := e.lookUpClassMember(cls, name)
	if !ok {
		return nil, false
	}
	return e.GetTypeOfSymbol(sym), true
}

// hierarchyIncomplete reports whether some class in the MRO had a base that
// could not be resolved, which makes failed lookups inconclusive.
func hierarchyIncomplete(cls typesystem.TClass) bool {
	if cls.Details == nil {
		return true
	}
	if cls.Details.Incomplete {
		return true
	}
	for _, m := range cls.Details.MRO {
		if m.Details.Incomplete {
			return true
		}
	}
	return false
}
