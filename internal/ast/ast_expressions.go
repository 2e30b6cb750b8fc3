package ast

import "strings"

type LiteralKind int

const (
	IntLiteral LiteralKind = iota
	FloatLiteral
	StringLiteral
	BoolLiteral
	NoneLiteral
	EllipsisLiteral
)

// Literal represents a scalar constant: 1, 2.5, "s", True, None, ...
type Literal struct {
	Base
	Kind  LiteralKind
	Value string
}

func (l *Literal) Accept(v ExpressionVisitor) { v.VisitLiteral(l) }
func (l *Literal) expressionNode()            {}

type CollectionKind int

const (
	TupleCollection CollectionKind = iota
	ListCollection
	DictCollection
)

// CollectionLiteral represents (a, b), [a, b] and {k: v}. For dictionaries
// Keys and Elements are parallel.
type CollectionLiteral struct {
	Base
	Kind     CollectionKind
	Keys     []Expression
	Elements []Expression
}

func (c *CollectionLiteral) Accept(v ExpressionVisitor) { v.VisitCollectionLiteral(c) }
func (c *CollectionLiteral) expressionNode()            {}

type ParenExpression struct {
	Base
	Inner Expression
}

func (p *ParenExpression) Accept(v ExpressionVisitor) { v.VisitParenExpression(p) }
func (p *ParenExpression) expressionNode()            {}

// Name is a bare identifier reference.
type Name struct {
	Base
	Value string
}

func (n *Name) Accept(v ExpressionVisitor) { v.VisitName(n) }
func (n *Name) expressionNode()            {}
func (n *Name) String() string {
	if n == nil {
		return ""
	}
	return n.Value
}

// AttributeExpression represents object.member.
type AttributeExpression struct {
	Base
	Object Expression
	Member *Name
}

func (a *AttributeExpression) Accept(v ExpressionVisitor) { v.VisitAttributeExpression(a) }
func (a *AttributeExpression) expressionNode()            {}

type ArgumentKind int

const (
	PositionalArgument ArgumentKind = iota
	NamedArgument                   // name=value
	UnpackArgument                  // *value
	UnpackMapArgument               // **value
)

// Argument is one call-site argument. It is a node so diagnostics can point
// at it, but it is not an expression on its own.
type Argument struct {
	Base
	Kind  ArgumentKind
	Name  string // set for NamedArgument
	Value Expression
}

func (a *Argument) IsPositional() bool {
	return a.Kind == PositionalArgument || a.Kind == UnpackArgument
}

type CallExpression struct {
	Base
	Function  Expression
	Arguments []*Argument
}

func (c *CallExpression) Accept(v ExpressionVisitor) { v.VisitCallExpression(c) }
func (c *CallExpression) expressionNode()            {}

// Graph operators.
const (
	ConnectOperator    = "++>"
	DisconnectOperator = "del -->"
)

// EdgeSpec is the optional edge annotation of a connect/disconnect
// expression: a ++>:Friend:since=2020:++> b.
type EdgeSpec struct {
	Base
	Type        Expression
	Assignments []*Argument // NamedArgument only
}

type BinaryExpression struct {
	Base
	Left     Expression
	Operator string
	Right    Expression
	Edge     *EdgeSpec // connect/disconnect only
}

func (b *BinaryExpression) Accept(v ExpressionVisitor) { v.VisitBinaryExpression(b) }
func (b *BinaryExpression) expressionNode()            {}

func (b *BinaryExpression) IsGraphOperator() bool {
	return b.Operator == ConnectOperator || b.Operator == DisconnectOperator
}

type UnaryExpression struct {
	Base
	Operator string // -, +, ~, not
	Operand  Expression
}

func (u *UnaryExpression) Accept(v ExpressionVisitor) { v.VisitUnaryExpression(u) }
func (u *UnaryExpression) expressionNode()            {}

// DottedName renders a Name/AttributeExpression chain, "" for anything else.
func DottedName(e Expression) string {
	switch n := e.(type) {
	case *Name:
		return n.Value
	case *AttributeExpression:
		base := DottedName(n.Object)
		if base == "" || n.Member == nil {
			return ""
		}
		return base + "." + n.Member.Value
	case *ParenExpression:
		return DottedName(n.Inner)
	}
	return ""
}

// SplitDotted is the inverse of DottedName for plain identifiers.
func SplitDotted(name string) []string {
	return strings.Split(name, ".")
}
