package stubs

import (
	"fmt"

	"github.com/funvibe/typeeval/internal/ast"
	"github.com/funvibe/typeeval/internal/symbols"
	"github.com/funvibe/typeeval/internal/token"
)

var archetypeKinds = map[string]ast.ArchetypeKind{
	"":       ast.ClassArchetype,
	"class":  ast.ClassArchetype,
	"obj":    ast.ObjArchetype,
	"node":   ast.NodeArchetype,
	"edge":   ast.EdgeArchetype,
	"walker": ast.WalkerArchetype,
}

type builder struct {
	path string
}

func (bd *builder) tok(line, col int, lexeme string) token.Token {
	return token.Token{File: bd.path, Line: line, Column: col, Lexeme: lexeme}
}

func (bd *builder) errorf(line int, format string, args ...interface{}) error {
	return fmt.Errorf("%s:%d: %s", bd.path, line, fmt.Sprintf(format, args...))
}

// Build turns a decoded declaration file into a module whose nodes are all
// linked to their scopes. The module scope has the given kind and outer
// scope: ScopePrelude with no outer for the builtin stub, ScopeModule with
// the prelude as outer for everything else.
func Build(f *File, path string, kind symbols.ScopeKind, outer *symbols.Scope) (*ast.Module, error) {
	bd := &builder{path: path}
	scope := symbols.NewScope(kind, f.Module, outer)
	mod := &ast.Module{Name: f.Module, Path: path, Table: scope}
	mod.Token = bd.tok(1, 1, f.Module)

	for _, imp := range f.Imports {
		if imp.Path == "" {
			return nil, bd.errorf(imp.Line, "import without path")
		}
		decl := &ast.ImportDecl{Path: imp.Path}
		decl.Token = bd.tok(imp.Line, imp.Column, imp.Path)
		decl.Scope = scope
		if imp.As != "" {
			decl.Alias = &ast.Name{Base: ast.Base{Token: decl.Token, Scope: scope}, Value: imp.As}
		}
		scope.Define(decl.DeclName(), decl)
		mod.Body = append(mod.Body, decl)
	}

	for i := range f.Classes {
		cls, err := bd.class(&f.Classes[i], scope)
		if err != nil {
			return nil, err
		}
		mod.Body = append(mod.Body, cls)
	}

	for i := range f.Functions {
		fn, err := bd.function(&f.Functions[i], scope)
		if err != nil {
			return nil, err
		}
		mod.Body = append(mod.Body, fn)
	}

	for _, v := range f.Variables {
		assign, err := bd.variable(v, scope)
		if err != nil {
			return nil, err
		}
		mod.Body = append(mod.Body, assign)
	}

	return mod, nil
}

func (bd *builder) class(c *Class, scope *symbols.Scope) (*ast.ClassDecl, error) {
	if !isIdentifier(c.Name) {
		return nil, bd.errorf(c.Line, "invalid class name %q", c.Name)
	}
	kind, ok := archetypeKinds[c.Kind]
	if !ok {
		return nil, bd.errorf(c.Line, "class %s: unknown kind %q", c.Name, c.Kind)
	}

	tok := bd.tok(c.Line, c.Column, c.Name)
	decl := &ast.ClassDecl{Kind: kind, DataClass: c.DataClass}
	decl.Token = tok
	decl.Scope = scope
	decl.Name = &ast.Name{Base: ast.Base{Token: tok, Scope: scope}, Value: c.Name}
	decl.BodyScope = symbols.NewEnclosedScope(symbols.ScopeClass, decl, scope)

	// Bases are evaluated where the class is declared.
	outer := exprBuilder{tok: tok, scope: scope}
	for _, base := range c.Bases {
		expr, err := outer.dotted(base)
		if err != nil {
			return nil, bd.errorf(c.Line, "class %s: base: %v", c.Name, err)
		}
		decl.Bases = append(decl.Bases, expr)
	}

	for _, f := range c.Fields {
		field, err := bd.field(f, decl.BodyScope)
		if err != nil {
			return nil, bd.errorf(f.Line, "class %s: %v", c.Name, err)
		}
		decl.Body = append(decl.Body, field)
	}
	for i := range c.Methods {
		fn, err := bd.function(&c.Methods[i], decl.BodyScope)
		if err != nil {
			return nil, err
		}
		decl.Body = append(decl.Body, fn)
	}

	scope.Define(c.Name, decl)
	return decl, nil
}

func (bd *builder) function(f *Function, scope *symbols.Scope) (*ast.FuncDecl, error) {
	if !isIdentifier(f.Name) {
		return nil, bd.errorf(f.Line, "invalid function name %q", f.Name)
	}
	tok := bd.tok(f.Line, f.Column, f.Name)
	decl := &ast.FuncDecl{IsStatic: f.Static}
	decl.Token = tok
	decl.Scope = scope
	decl.Name = &ast.Name{Base: ast.Base{Token: tok, Scope: scope}, Value: f.Name}
	decl.BodyScope = symbols.NewEnclosedScope(symbols.ScopeFunction, decl, scope)

	b := exprBuilder{tok: tok, scope: scope}
	params, err := parseParams(f.Params, b, decl.BodyScope)
	if err != nil {
		return nil, bd.errorf(f.Line, "%s: %v", f.Name, err)
	}
	decl.Params = params

	if f.Returns != "" {
		ret, err := b.typeExpr(f.Returns)
		if err != nil {
			return nil, bd.errorf(f.Line, "%s: return type: %v", f.Name, err)
		}
		decl.Returns = ret
	}

	scope.Define(f.Name, decl)
	return decl, nil
}

func (bd *builder) field(v Variable, scope *symbols.Scope) (*ast.FieldDecl, error) {
	name, typ, value := splitDecl(v.Text)
	if !isIdentifier(name) {
		return nil, fmt.Errorf("invalid field %q", v.Text)
	}
	tok := bd.tok(v.Line, v.Column, name)
	b := exprBuilder{tok: tok, scope: scope}

	decl := &ast.FieldDecl{Name: b.name(name)}
	decl.Token = tok
	decl.Scope = scope
	var err error
	if typ != "" {
		if decl.Annotation, err = b.typeExpr(typ); err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
	}
	if value != "" {
		if decl.Default, err = b.value(value); err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
	}
	scope.Define(name, decl)
	return decl, nil
}

func (bd *builder) variable(v Variable, scope *symbols.Scope) (*ast.Assignment, error) {
	name, typ, value := splitDecl(v.Text)
	if !isIdentifier(name) {
		return nil, bd.errorf(v.Line, "invalid variable %q", v.Text)
	}
	if typ == "" && value == "" {
		return nil, bd.errorf(v.Line, "variable %s needs a type or a value", name)
	}
	tok := bd.tok(v.Line, v.Column, name)
	b := exprBuilder{tok: tok, scope: scope}

	assign := &ast.Assignment{Target: b.name(name)}
	assign.Token = tok
	assign.Scope = scope
	var err error
	if typ != "" {
		if assign.Annotation, err = b.typeExpr(typ); err != nil {
			return nil, bd.errorf(v.Line, "variable %s: %v", name, err)
		}
	}
	if value != "" {
		if assign.Value, err = b.value(value); err != nil {
			return nil, bd.errorf(v.Line, "variable %s: %v", name, err)
		}
	}
	scope.Define(name, assign)
	return assign, nil
}
