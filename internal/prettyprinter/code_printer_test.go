package prettyprinter

import (
	"strings"
	"testing"

	"github.com/funvibe/typeeval/internal/ast"
	"github.com/funvibe/typeeval/internal/stubs"
	"github.com/funvibe/typeeval/internal/typesystem"
)

func name(v string) *ast.Name { return &ast.Name{Value: v} }

func bin(l ast.Expression, op string, r ast.Expression) *ast.BinaryExpression {
	return &ast.BinaryExpression{Left: l, Operator: op, Right: r}
}

func TestPrintExpression(t *testing.T) {
	a, b, c := name("a"), name("b"), name("c")
	tests := []struct {
		expr ast.Expression
		want string
	}{
		{bin(bin(a, "+", b), "*", c), "(a + b) * c"},
		{bin(a, "+", bin(b, "*", c)), "a + b * c"},
		{bin(bin(a, "-", b), "-", c), "a - b - c"},
		{bin(a, "-", bin(b, "-", c)), "a - (b - c)"},
		{bin(a, "**", bin(b, "**", c)), "a ** b ** c"},
		{bin(bin(a, "**", b), "**", c), "(a ** b) ** c"},
		{bin(a, "or", bin(b, "and", c)), "a or b and c"},
		{&ast.UnaryExpression{Operator: "not", Operand: bin(a, "is", b)}, "not a is b"},
		{&ast.UnaryExpression{Operator: "-", Operand: bin(a, "+", b)}, "-(a + b)"},
		{&ast.AttributeExpression{Object: bin(a, "+", b), Member: name("real")}, "(a + b).real"},
		{&ast.CallExpression{Function: &ast.AttributeExpression{Object: a, Member: name("f")}, Arguments: []*ast.Argument{
			{Kind: ast.PositionalArgument, Value: b},
			{Kind: ast.NamedArgument, Name: "k", Value: &ast.Literal{Kind: ast.IntLiteral, Value: "1"}},
			{Kind: ast.UnpackArgument, Value: c},
			{Kind: ast.UnpackMapArgument, Value: name("kw")},
		}}, "a.f(b, k=1, *c, **kw)"},
		{&ast.CollectionLiteral{Kind: ast.TupleCollection, Elements: []ast.Expression{a}}, "(a,)"},
		{&ast.CollectionLiteral{Kind: ast.DictCollection, Keys: []ast.Expression{a}, Elements: []ast.Expression{b}}, "{a: b}"},
		{bin(a, ast.ConnectOperator, b), "a ++> b"},
		{&ast.BinaryExpression{Left: a, Operator: ast.ConnectOperator, Right: b, Edge: &ast.EdgeSpec{
			Type:        name("Road"),
			Assignments: []*ast.Argument{{Kind: ast.NamedArgument, Name: "length", Value: &ast.Literal{Kind: ast.IntLiteral, Value: "3"}}},
		}}, "a ++>:Road:length=3:++> b"},
		{&ast.BinaryExpression{Left: a, Operator: ast.DisconnectOperator, Right: b, Edge: &ast.EdgeSpec{Type: name("Road")}},
			"a del -->:Road:--> b"},
	}
	for _, tt := range tests {
		if got := PrintExpression(tt.expr); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

const shapes = `
module: shapes
imports:
  - {path: geometry.yaml, as: geo}
classes:
  - name: Circle
    kind: obj
    bases: [Shape]
    fields: ["radius: float = 1.0"]
    methods:
      - {name: area, params: [self], returns: float}
functions:
  - {name: scale, params: ["s: Shape", "/", "factor: float", "*", "copy: bool = False"], returns: Shape}
  - {name: log, params: ["*args", "**kwargs"]}
variables: ["unit = 1"]
`

func TestPrintModule(t *testing.T) {
	mod, err := stubs.ParseModule([]byte(shapes), "shapes.yaml", nil)
	if err != nil {
		t.Fatal(err)
	}
	want := `# module shapes
import geometry.yaml as geo
obj Circle(Shape):
    has radius: float = 1.0
    def area(self) -> float:
        ...
def scale(s: Shape, /, factor: float, *, copy: bool = False) -> Shape:
    ...
def log(*args, **kwargs):
    ...
unit = 1
`
	if got := Print(mod); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrintTypeComments(t *testing.T) {
	mod, err := stubs.ParseModule([]byte(shapes), "shapes.yaml", nil)
	if err != nil {
		t.Fatal(err)
	}
	p := NewCodePrinter()
	p.Types = func(node ast.Node) (typesystem.Type, bool) {
		if _, ok := node.(*ast.Assignment); ok {
			return typesystem.Any, true
		}
		if _, ok := node.(*ast.ClassDecl); ok {
			return typesystem.Unknown, true
		}
		return nil, false
	}
	p.PrintModule(mod)
	out := p.String()
	if !strings.Contains(out, "unit = 1  # Any\n") {
		t.Errorf("assignment comment missing:\n%s", out)
	}
	if !strings.Contains(out, "obj Circle(Shape):  # Unknown\n") {
		t.Errorf("class comment missing:\n%s", out)
	}
}
