package analyzer

import (
	"testing"

	"github.com/funvibe/typeeval/internal/ast"
	"github.com/funvibe/typeeval/internal/diagnostics"
	"github.com/funvibe/typeeval/internal/stubs"
	"github.com/funvibe/typeeval/internal/symbols"
	"github.com/funvibe/typeeval/internal/token"
	"github.com/funvibe/typeeval/internal/typesystem"
)

// fixture is an evaluator with one declaration module loaded from YAML.
type fixture struct {
	t     *testing.T
	e     *Evaluator
	diags *diagnostics.Collector
	mod   *ast.Module
}

func newFixture(t *testing.T, src string) *fixture {
	t.Helper()
	diags := diagnostics.NewCollector()
	e, err := New(Options{Sink: diags.Sink()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	mod, err := stubs.ParseModule([]byte(src), "test.yaml", e.Prelude.Table)
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}
	return &fixture{t: t, e: e, diags: diags, mod: mod}
}

func (f *fixture) scope() *symbols.Scope {
	return f.mod.Table
}

func (f *fixture) symbol(name string) *symbols.Symbol {
	f.t.Helper()
	sym, ok := f.mod.Table.Lookup(name, true)
	if !ok {
		f.t.Fatalf("no symbol %q", name)
	}
	return sym
}

func (f *fixture) typeOf(name string) typesystem.Type {
	f.t.Helper()
	return f.e.GetTypeOfSymbol(f.symbol(name))
}

func (f *fixture) class(name string) typesystem.TClass {
	f.t.Helper()
	cls, ok := f.typeOf(name).(typesystem.TClass)
	if !ok || !cls.IsInstantiable() {
		f.t.Fatalf("%s is %v, not a class", name, f.typeOf(name))
	}
	return cls
}

func (f *fixture) instance(name string) typesystem.TClass {
	f.t.Helper()
	return f.class(name).CloneAsInstance()
}

func (f *fixture) builtin(name string) typesystem.TClass {
	f.t.Helper()
	cls, ok := f.e.builtinClass(name)
	if !ok {
		f.t.Fatalf("no builtin %q", name)
	}
	return cls.CloneAsInstance()
}

// name builds a reference to name in the module scope.
func (f *fixture) name(value string) *ast.Name {
	return &ast.Name{Base: ast.Base{Token: nextToken(value), Scope: f.mod.Table}, Value: value}
}

func (f *fixture) eval(expr ast.Expression) typesystem.Type {
	return f.e.GetTypeOfExpression(expr)
}

func (f *fixture) codes() []diagnostics.ErrorCode {
	var out []diagnostics.ErrorCode
	for _, d := range f.diags.Errors() {
		out = append(out, d.Code)
	}
	return out
}

// expectCodes checks the reported diagnostic codes, in position order.
func (f *fixture) expectCodes(want ...diagnostics.ErrorCode) {
	f.t.Helper()
	got := f.codes()
	if len(got) != len(want) {
		f.t.Fatalf("diagnostics = %v, want %v\n%s", got, want, f.dump())
	}
	for i := range want {
		if got[i] != want[i] {
			f.t.Fatalf("diagnostics = %v, want %v\n%s", got, want, f.dump())
		}
	}
}

func (f *fixture) dump() string {
	s := ""
	for _, d := range f.diags.Errors() {
		s += "  " + d.Error() + "\n"
	}
	return s
}

func expectType(t *testing.T, got, want typesystem.Type) {
	t.Helper()
	if !typesystem.Identical(got, want) {
		t.Errorf("type = %v, want %v", got, want)
	}
}

var tokenLine int

// nextToken gives every synthesized node a distinct position so diagnostics
// are not merged by the collector.
func nextToken(lexeme string) token.Token {
	tokenLine++
	return token.Token{File: "test.yaml", Line: 1000 + tokenLine, Column: 1, Lexeme: lexeme}
}

func base(lexeme string) ast.Base {
	return ast.Base{Token: nextToken(lexeme)}
}

func lit(kind ast.LiteralKind, value string) *ast.Literal {
	return &ast.Literal{Base: base(value), Kind: kind, Value: value}
}

func intLit() *ast.Literal   { return lit(ast.IntLiteral, "1") }
func floatLit() *ast.Literal { return lit(ast.FloatLiteral, "1.5") }
func strLit() *ast.Literal   { return lit(ast.StringLiteral, `"s"`) }

func pos(value ast.Expression) *ast.Argument {
	return &ast.Argument{Base: base("arg"), Kind: ast.PositionalArgument, Value: value}
}

func kw(name string, value ast.Expression) *ast.Argument {
	return &ast.Argument{Base: base(name), Kind: ast.NamedArgument, Name: name, Value: value}
}

func unpack(value ast.Expression) *ast.Argument {
	return &ast.Argument{Base: base("*"), Kind: ast.UnpackArgument, Value: value}
}

func unpackMap(value ast.Expression) *ast.Argument {
	return &ast.Argument{Base: base("**"), Kind: ast.UnpackMapArgument, Value: value}
}

func call(fn ast.Expression, args ...*ast.Argument) *ast.CallExpression {
	return &ast.CallExpression{Base: base("call"), Function: fn, Arguments: args}
}

func attr(obj ast.Expression, member string) *ast.AttributeExpression {
	return &ast.AttributeExpression{
		Base:   base(member),
		Object: obj,
		Member: &ast.Name{Base: base(member), Value: member},
	}
}

func binary(left ast.Expression, op string, right ast.Expression) *ast.BinaryExpression {
	return &ast.BinaryExpression{Base: base(op), Left: left, Operator: op, Right: right}
}
