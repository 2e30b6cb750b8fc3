package analyzer

import (
	"testing"

	"github.com/funvibe/typeeval/internal/ast"
	"github.com/funvibe/typeeval/internal/config"
	"github.com/funvibe/typeeval/internal/diagnostics"
	"github.com/funvibe/typeeval/internal/typesystem"
)

const operatorModule = `
module: ops
classes:
  - name: B
  - name: A
    methods:
      - {name: __add__, params: [self, other], returns: B}
  - name: C
  - name: Num
    methods:
      - {name: __lt__, params: [self, "other: Num"], returns: bool}
      - {name: __neg__, params: [self], returns: Num}
variables:
  - "a: A"
  - "c: C"
  - "n: Num"
`

func TestBinaryOperators(t *testing.T) {
	f := newFixture(t, operatorModule)
	intT := f.builtin(config.IntTypeName)
	floatT := f.builtin(config.FloatTypeName)
	boolT := f.builtin(config.BoolTypeName)
	strT := f.builtin(config.StrTypeName)

	tests := []struct {
		name string
		expr ast.Expression
		want typesystem.Type
	}{
		{"int + int", binary(intLit(), "+", intLit()), intT},
		{"int + float reflects", binary(intLit(), "+", floatLit()), floatT},
		{"float + int", binary(floatLit(), "+", intLit()), floatT},
		{"int / int", binary(intLit(), "/", intLit()), floatT},
		{"str + str", binary(strLit(), "+", strLit()), strT},
		{"comparison", binary(intLit(), "<", intLit()), boolT},
		{"forward magic method", binary(f.name("a"), "+", f.name("a")), f.instance("B")},
		{"comparison reflects to inverse", binary(f.name("n"), ">", f.name("n")), boolT},
		{"is", binary(f.name("c"), "is", f.name("a")), boolT},
		{"not in", binary(intLit(), "not in", f.name("c")), boolT},
		{"and of same types", binary(intLit(), "and", intLit()), intT},
		{"or of different types", binary(intLit(), "or", strLit()), typesystem.NewUnion(intT, strT)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectType(t, f.eval(tt.expr), tt.want)
		})
	}
	f.expectCodes()
}

func TestUnresolvedOperatorIsUnknown(t *testing.T) {
	f := newFixture(t, operatorModule)
	exprs := []ast.Expression{
		binary(f.name("c"), "+", f.name("c")),
		binary(f.name("c"), "-", intLit()),
		binary(strLit(), "-", intLit()),
		binary(f.name("a"), "<<", f.name("a")),
		binary(intLit(), "<=>", intLit()),
	}
	for _, expr := range exprs {
		if got := f.eval(expr); !typesystem.IsUnknown(got) {
			t.Errorf("%s = %v, want Unknown", expr.(*ast.BinaryExpression).Operator, got)
		}
	}
	f.expectCodes()
}

func TestIdentityOperatorPrimesBool(t *testing.T) {
	f := newFixture(t, operatorModule)
	delete(f.e.builtins.instances, config.BoolTypeName)
	f.eval(binary(intLit(), "is", intLit()))
	if _, ok := f.e.builtins.instances[config.BoolTypeName]; !ok {
		t.Error("bool instance not cached after an identity comparison")
	}
}

func TestUnaryOperators(t *testing.T) {
	f := newFixture(t, operatorModule)
	unary := func(op string, operand ast.Expression) ast.Expression {
		return &ast.UnaryExpression{Base: base(op), Operator: op, Operand: operand}
	}

	expectType(t, f.eval(unary("-", intLit())), f.builtin(config.IntTypeName))
	expectType(t, f.eval(unary("-", f.name("n"))), f.instance("Num"))
	expectType(t, f.eval(unary("not", f.name("c"))), f.builtin(config.BoolTypeName))
	if got := f.eval(unary("~", f.name("c"))); !typesystem.IsUnknown(got) {
		t.Errorf("~c = %v", got)
	}
	f.expectCodes()
}

const graphModule = `
module: graph
classes:
  - {name: City, kind: node}
  - {name: Road, kind: edge, fields: ["length: float = 0.0"]}
  - name: Plain
variables:
  - "a: City"
  - "b: City"
  - "p: Plain"
`

func connect(left ast.Expression, right ast.Expression, edge *ast.EdgeSpec) *ast.BinaryExpression {
	expr := binary(left, ast.ConnectOperator, right)
	expr.Edge = edge
	return expr
}

func edgeSpec(typ ast.Expression, assignments ...*ast.Argument) *ast.EdgeSpec {
	return &ast.EdgeSpec{Base: base(":"), Type: typ, Assignments: assignments}
}

func TestGraphOperators(t *testing.T) {
	tests := []struct {
		name  string
		build func(f *fixture) ast.Expression
		want  []diagnostics.ErrorCode
	}{
		{"connect nodes", func(f *fixture) ast.Expression {
			return connect(f.name("a"), f.name("b"), nil)
		}, nil},
		{"left not a node", func(f *fixture) ast.Expression {
			return connect(f.name("p"), f.name("b"), nil)
		}, []diagnostics.ErrorCode{diagnostics.ErrT008}},
		{"both not nodes", func(f *fixture) ast.Expression {
			return connect(intLit(), f.name("p"), nil)
		}, []diagnostics.ErrorCode{diagnostics.ErrT008, diagnostics.ErrT008}},
		{"class object is not a node", func(f *fixture) ast.Expression {
			return connect(f.name("City"), f.name("b"), nil)
		}, []diagnostics.ErrorCode{diagnostics.ErrT008}},
		{"typed edge", func(f *fixture) ast.Expression {
			return connect(f.name("a"), f.name("b"), edgeSpec(f.name("Road"), kw("length", intLit())))
		}, nil},
		{"edge field mismatch", func(f *fixture) ast.Expression {
			return connect(f.name("a"), f.name("b"), edgeSpec(f.name("Road"), kw("length", strLit())))
		}, []diagnostics.ErrorCode{diagnostics.ErrT011}},
		{"unknown edge field", func(f *fixture) ast.Expression {
			return connect(f.name("a"), f.name("b"), edgeSpec(f.name("Road"), kw("width", intLit())))
		}, []diagnostics.ErrorCode{diagnostics.ErrT010}},
		{"not an edge", func(f *fixture) ast.Expression {
			return connect(f.name("a"), f.name("b"), edgeSpec(f.name("Plain"), kw("width", intLit())))
		}, []diagnostics.ErrorCode{diagnostics.ErrT009}},
		{"unknown operand", func(f *fixture) ast.Expression {
			return connect(f.name("nowhere"), f.name("b"), edgeSpec(f.name("Unknown")))
		}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, graphModule)
			f.eval(tt.build(f))
			f.expectCodes(tt.want...)
		})
	}
}

func TestGraphOperatorResults(t *testing.T) {
	f := newFixture(t, graphModule)

	expectType(t, f.eval(connect(f.name("a"), f.name("b"), nil)), f.instance("City"))

	disconnect := binary(f.name("a"), ast.DisconnectOperator, f.name("b"))
	if got := f.eval(disconnect); !typesystem.IsUnknown(got) {
		t.Errorf("disconnect = %v", got)
	}
	f.expectCodes()
}
