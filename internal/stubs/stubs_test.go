package stubs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/funvibe/typeeval/internal/ast"
	"github.com/funvibe/typeeval/internal/config"
	"github.com/funvibe/typeeval/internal/symbols"
)

func TestLoadEmbeddedPrelude(t *testing.T) {
	mod, err := LoadPrelude("")
	if err != nil {
		t.Fatalf("LoadPrelude: %v", err)
	}
	if !mod.Table.IsPrelude() {
		t.Fatalf("builtin module must live in a prelude scope")
	}

	names := append([]string{config.NoneTypeTypeName, config.ListTypeName, config.NodeBaseName, config.EdgeBaseName, config.WalkerBaseName}, config.PrefetchedTypeNames...)
	for _, name := range names {
		sym, ok := mod.Table.Lookup(name, false)
		if !ok {
			t.Errorf("prelude should declare %s", name)
			continue
		}
		if _, isClass := sym.Decl.(*ast.ClassDecl); !isClass {
			t.Errorf("%s should be a class, got %T", name, sym.Decl)
		}
	}

	sym, ok := mod.Table.Lookup("print", false)
	if !ok {
		t.Fatalf("print missing")
	}
	fn := sym.Decl.(*ast.FuncDecl)
	if len(fn.Params) != 3 || fn.Params[0].Kind != ast.VarArgParam || fn.Params[1].Kind != ast.KeywordOnlyParam {
		t.Errorf("unexpected print signature")
	}
}

func TestLoadPreludeMissingFile(t *testing.T) {
	_, err := LoadPrelude(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, ErrStubNotFound) {
		t.Fatalf("expected ErrStubNotFound, got %v", err)
	}
}

func TestLoadPreludeWrongModule(t *testing.T) {
	path := filepath.Join(t.TempDir(), "b.yaml")
	if err := os.WriteFile(path, []byte("module: other\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPrelude(path); err == nil || !strings.Contains(err.Error(), "must declare module") {
		t.Fatalf("expected module name error, got %v", err)
	}
}

func TestParamMarkers(t *testing.T) {
	src := `
module: m
functions:
  - name: f
    params: [a, b, "/", c, "d: int", "*args", e, "**kwargs"]
    returns: int
  - name: g
    params: [x, "*", "y: str = 'hi'"]
`
	mod, err := ParseModule([]byte(src), "m.yaml", nil)
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}

	want := map[string][]ast.ParamKind{
		"f": {ast.PositionalOnlyParam, ast.PositionalOnlyParam, ast.NormalParam, ast.NormalParam, ast.VarArgParam, ast.KeywordOnlyParam, ast.KwArgParam},
		"g": {ast.NormalParam, ast.KeywordOnlyParam},
	}
	for name, kinds := range want {
		sym, ok := mod.Table.Lookup(name, false)
		if !ok {
			t.Fatalf("%s not declared", name)
		}
		fn := sym.Decl.(*ast.FuncDecl)
		if len(fn.Params) != len(kinds) {
			t.Fatalf("%s: got %d params, want %d", name, len(fn.Params), len(kinds))
		}
		for i, k := range kinds {
			if fn.Params[i].Kind != k {
				t.Errorf("%s param %s: kind %s, want %s", name, fn.Params[i].DeclName(), fn.Params[i].Kind, k)
			}
			if _, ok := fn.BodyScope.Lookup(fn.Params[i].DeclName(), false); !ok {
				t.Errorf("%s param %s not defined in the function scope", name, fn.Params[i].DeclName())
			}
		}
	}

	g, _ := mod.Table.Lookup("g", false)
	y := g.Decl.(*ast.FuncDecl).Params[1]
	if lit, ok := y.Default.(*ast.Literal); !ok || lit.Kind != ast.StringLiteral {
		t.Errorf("y default should be a string literal, got %T", y.Default)
	}
}

func TestClassesFieldsAndTypes(t *testing.T) {
	src := `
module: zoo
imports:
  - path: lib/geometry.yaml
    as: geo
classes:
  - name: Animal
    fields: ["name: str", "age: int | None = None"]
  - name: Dog
    kind: node
    bases: [Animal, geo.Shape]
    methods:
      - name: fetch
        params: [self, "what: list[str]"]
        returns: Animal
variables: ["rex: Dog = Dog()", "count = 3"]
`
	prelude := symbols.NewScope(symbols.ScopePrelude, "builtins", nil)
	mod, err := ParseModule([]byte(src), "zoo.yaml", prelude)
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}
	if mod.Table.Outer() != prelude {
		t.Errorf("module scope should enclose the prelude")
	}

	geo, ok := mod.Table.Lookup("geo", false)
	if !ok || geo.Decl.(*ast.ImportDecl).Path != "lib/geometry.yaml" {
		t.Errorf("import alias not declared")
	}

	dogSym, _ := mod.Table.Lookup("Dog", false)
	dog := dogSym.Decl.(*ast.ClassDecl)
	if dog.Kind != ast.NodeArchetype || len(dog.Bases) != 2 {
		t.Fatalf("unexpected Dog declaration")
	}
	if ast.DottedName(dog.Bases[1]) != "geo.Shape" {
		t.Errorf("base = %q", ast.DottedName(dog.Bases[1]))
	}
	fetch, ok := dog.BodyScope.Lookup("fetch", false)
	if !ok || fetch.Decl.(*ast.FuncDecl).Owner() != dog {
		t.Errorf("fetch should be a method of Dog")
	}
	what := fetch.Decl.(*ast.FuncDecl).Params[1]
	if ast.DottedName(what.Annotation) != "list" {
		t.Errorf("generic arguments should be dropped, got %q", ast.DottedName(what.Annotation))
	}

	animalSym, _ := mod.Table.Lookup("Animal", false)
	age, _ := animalSym.Decl.(*ast.ClassDecl).BodyScope.Lookup("age", false)
	ann := age.Decl.(*ast.FieldDecl).Annotation
	union, ok := ann.(*ast.BinaryExpression)
	if !ok || union.Operator != "|" {
		t.Fatalf("age annotation should be a union, got %T", ann)
	}
	if lit, ok := union.Right.(*ast.Literal); !ok || lit.Kind != ast.NoneLiteral {
		t.Errorf("right side of the union should be None")
	}

	rex, _ := mod.Table.Lookup("rex", false)
	if _, ok := rex.Decl.(*ast.Assignment).Value.(*ast.CallExpression); !ok {
		t.Errorf("rex initializer should be a call")
	}
	count, _ := mod.Table.Lookup("count", false)
	if lit, ok := count.Decl.(*ast.Assignment).Value.(*ast.Literal); !ok || lit.Kind != ast.IntLiteral {
		t.Errorf("count initializer should be an int literal")
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"no module", "classes: []", "missing module name"},
		{"bad kind", "module: m\nclasses: [{name: A, kind: trait}]", "unknown kind"},
		{"bad param", "module: m\nfunctions: [{name: f, params: ['1x']}]", "invalid parameter"},
		{"duplicate param", "module: m\nfunctions: [{name: f, params: [a, a]}]", "duplicate parameter"},
		{"misplaced slash", "module: m\nfunctions: [{name: f, params: ['/']}]", "misplaced /"},
		{"vararg default", "module: m\nfunctions: [{name: f, params: ['*a = 1']}]", "cannot have defaults"},
		{"bad type", "module: m\nfunctions: [{name: f, returns: 'a..b'}]", "invalid name"},
		{"untyped variable", "module: m\nvariables: [x]", "needs a type or a value"},
		{"variable not a string", "module: m\nvariables: [{x: 1}]", "must be a string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseModule([]byte(tt.src), "m.yaml", nil)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should contain %q", err.Error(), tt.want)
			}
		})
	}
}

func TestPositionsAreRecorded(t *testing.T) {
	src := "module: m\nclasses:\n  - name: A\n    methods:\n      - name: f\n"
	mod, err := ParseModule([]byte(src), "m.yaml", nil)
	if err != nil {
		t.Fatal(err)
	}
	sym, _ := mod.Table.Lookup("A", false)
	tok := sym.Decl.(*ast.ClassDecl).GetToken()
	if tok.File != "m.yaml" || tok.Line != 3 {
		t.Errorf("class token = %v, want m.yaml line 3", tok)
	}
}
