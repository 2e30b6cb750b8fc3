package analyzer

import (
	"github.com/funvibe/typeeval/internal/ast"
	"github.com/funvibe/typeeval/internal/config"
	"github.com/funvibe/typeeval/internal/diagnostics"
	"github.com/funvibe/typeeval/internal/typesystem"
)

// magicMethods is the forward and reflected method of a binary operator.
// Comparisons reflect to their inverse.
type magicMethods struct {
	forward   string
	reflected string
}

var binaryOperatorMap = map[string]magicMethods{
	"+":  {"__add__", "__radd__"},
	"-":  {"__sub__", "__rsub__"},
	"*":  {"__mul__", "__rmul__"},
	"/":  {"__truediv__", "__rtruediv__"},
	"//": {"__floordiv__", "__rfloordiv__"},
	"%":  {"__mod__", "__rmod__"},
	"**": {"__pow__", "__rpow__"},
	"@":  {"__matmul__", "__rmatmul__"},
	"&":  {"__and__", "__rand__"},
	"|":  {"__or__", "__ror__"},
	"^":  {"__xor__", "__rxor__"},
	"<<": {"__lshift__", "__rlshift__"},
	">>": {"__rshift__", "__rrshift__"},
	"==": {"__eq__", "__eq__"},
	"!=": {"__ne__", "__ne__"},
	"<":  {"__lt__", "__gt__"},
	"<=": {"__le__", "__ge__"},
	">":  {"__gt__", "__lt__"},
	">=": {"__ge__", "__le__"},
}

var unaryOperatorMap = map[string]string{
	"-": config.NegMethod,
	"+": config.PosMethod,
	"~": config.InvertMethod,
}

// booleanOperators always produce bool, whatever the operands.
var booleanOperators = map[string]bool{
	"is":     true,
	"is not": true,
	"in":     true,
	"not in": true,
}

func (e *Evaluator) validateBinaryOperation(node *ast.BinaryExpression) typesystem.Type {
	if node.IsGraphOperator() {
		return e.validateGraphOperation(node)
	}

	left := e.GetTypeOfExpression(node.Left)
	right := e.GetTypeOfExpression(node.Right)

	if booleanOperators[node.Operator] {
		return e.builtinInstance(config.BoolTypeName)
	}
	if node.Operator == "and" || node.Operator == "or" {
		if typesystem.Identical(left, right) {
			return left
		}
		return typesystem.NewUnion(left, right)
	}

	methods, ok := binaryOperatorMap[node.Operator]
	if !ok {
		return typesystem.Unknown
	}
	if t, ok := e.tryMagicMethod(left, methods.forward, right); ok {
		return t
	}
	if t, ok := e.tryMagicMethod(right, methods.reflected, left); ok {
		return t
	}
	return typesystem.Unknown
}

// tryMagicMethod looks up a binary magic method on an instance type and
// checks that it accepts arg. It reports false when the method is missing
// or rejects the argument.
func (e *Evaluator) tryMagicMethod(obj typesystem.Type, name string, arg typesystem.Type) (typesystem.Type, bool) {
	cls, ok := obj.(typesystem.TClass)
	if !ok || !cls.IsInstance() {
		return nil, false
	}
	member, ok := e.memberType(cls, name)
	if !ok {
		return nil, false
	}
	fn, ok := member.(*typesystem.TFunction)
	if !ok {
		return nil, false
	}
	params := fn.Params
	if len(params) > 0 && params[0].IsSelf {
		params = params[1:]
	}
	if len(params) == 0 {
		return nil, false
	}
	if declared := params[0].DeclaredType; declared != nil && !e.AssignType(arg, declared) {
		return nil, false
	}
	return fn.Result(), true
}

func (e *Evaluator) validateUnaryOperation(node *ast.UnaryExpression) typesystem.Type {
	operand := e.GetTypeOfExpression(node.Operand)
	if node.Operator == "not" {
		return e.builtinInstance(config.BoolTypeName)
	}
	if _, ok := operand.(typesystem.TAny); ok {
		return typesystem.Any
	}
	name, ok := unaryOperatorMap[node.Operator]
	if !ok {
		return typesystem.Unknown
	}
	cls, ok := operand.(typesystem.TClass)
	if !ok || !cls.IsInstance() {
		return typesystem.Unknown
	}
	if fn, ok := e.methodOf(cls, name); ok {
		return fn.Result()
	}
	return typesystem.Unknown
}

func (e *Evaluator) methodOf(cls typesystem.TClass, name string) (*typesystem.TFunction, bool) {
	member, ok := e.memberType(cls, name)
	if !ok {
		return nil, false
	}
	fn, ok := member.(*typesystem.TFunction)
	return fn, ok
}

// validateGraphOperation checks a ++> b and a del --> b. Both operands must
// be node instances; an edge annotation must name an edge class whose
// fields accept the assigned values.
func (e *Evaluator) validateGraphOperation(node *ast.BinaryExpression) typesystem.Type {
	left := e.GetTypeOfExpression(node.Left)
	right := e.GetTypeOfExpression(node.Right)

	if !e.isNodeLike(left) {
		e.addError(diagnostics.ErrT008, node.Left, "left operand of %s must be a node, got %s", node.Operator, left)
	}
	if !e.isNodeLike(right) {
		e.addError(diagnostics.ErrT008, node.Right, "right operand of %s must be a node, got %s", node.Operator, right)
	}
	if node.Edge != nil {
		e.validateEdgeSpec(node.Edge)
	}

	if node.Operator == ast.ConnectOperator {
		return right
	}
	return typesystem.Unknown
}

func (e *Evaluator) validateEdgeSpec(edge *ast.EdgeSpec) {
	for _, a := range edge.Assignments {
		e.GetTypeOfExpression(a.Value)
	}
	if edge.Type == nil {
		return
	}

	edgeType := e.GetTypeOfExpression(edge.Type)
	if isGradual(edgeType) {
		return
	}
	cls, ok := edgeType.(typesystem.TClass)
	if !ok || !e.derivesFromBuiltin(cls, config.EdgeBaseName) {
		e.addError(diagnostics.ErrT009, edge.Type, "%s is not an edge", edgeType)
		return
	}

	for _, a := range edge.Assignments {
		fieldType, ok := e.memberType(cls, a.Name)
		if !ok {
			if !hierarchyIncomplete(cls) {
				e.addError(diagnostics.ErrT010, a, "edge %s has no field '%s'", cls.Details.Name, a.Name)
			}
			continue
		}
		valueType := e.GetTypeOfExpression(a.Value)
		if !e.AssignType(valueType, fieldType) {
			e.addError(diagnostics.ErrT011, a, "cannot assign %s to field '%s' of type %s", valueType, a.Name, fieldType)
		}
	}
}

// isNodeLike reports whether t is a node instance. Unknown and Any pass.
func (e *Evaluator) isNodeLike(t typesystem.Type) bool {
	if isGradual(t) {
		return true
	}
	cls, ok := t.(typesystem.TClass)
	return ok && cls.IsInstance() && e.derivesFromBuiltin(cls, config.NodeBaseName)
}
