package ast

import (
	"path"
	"strings"

	"github.com/funvibe/typeeval/internal/symbols"
)

// ImportDecl binds a module reference: import a.b as c.
type ImportDecl struct {
	Base
	Path  string
	Alias *Name // Optional
}

func (d *ImportDecl) Accept(v StatementVisitor)      { v.VisitImportDecl(d) }
func (d *ImportDecl) AcceptDecl(v DeclarationVisitor) { v.DeclareImport(d) }
func (d *ImportDecl) statementNode()                 {}
func (d *ImportDecl) DeclName() string {
	if d.Alias != nil {
		return d.Alias.Value
	}
	base := path.Base(d.Path)
	for _, ext := range []string{".yaml", ".yml"} {
		base = strings.TrimSuffix(base, ext)
	}
	if i := strings.LastIndex(base, "."); i >= 0 {
		return base[i+1:]
	}
	return base
}

type ArchetypeKind int

const (
	ClassArchetype ArchetypeKind = iota
	ObjArchetype
	NodeArchetype
	EdgeArchetype
	WalkerArchetype
)

func (k ArchetypeKind) String() string {
	switch k {
	case ObjArchetype:
		return "obj"
	case NodeArchetype:
		return "node"
	case EdgeArchetype:
		return "edge"
	case WalkerArchetype:
		return "walker"
	}
	return "class"
}

// ClassDecl declares a class or archetype. Members live in BodyScope.
type ClassDecl struct {
	Base
	Name      *Name
	Kind      ArchetypeKind
	Bases     []Expression
	DataClass bool
	Body      []Statement
	BodyScope *symbols.Scope
}

func (d *ClassDecl) Accept(v StatementVisitor)      { v.VisitClassDecl(d) }
func (d *ClassDecl) AcceptDecl(v DeclarationVisitor) { v.DeclareClass(d) }
func (d *ClassDecl) statementNode()                 {}
func (d *ClassDecl) DeclName() string               { return d.Name.String() }

// FuncDecl declares a function, or a method when its scope is a class scope.
type FuncDecl struct {
	Base
	Name      *Name
	Params    []*Parameter
	Returns   Expression // Optional return annotation
	IsStatic  bool
	Body      []Statement
	BodyScope *symbols.Scope
}

func (d *FuncDecl) Accept(v StatementVisitor)      { v.VisitFuncDecl(d) }
func (d *FuncDecl) AcceptDecl(v DeclarationVisitor) { v.DeclareFunction(d) }
func (d *FuncDecl) statementNode()                 {}
func (d *FuncDecl) DeclName() string               { return d.Name.String() }

// Owner returns the class declaring this function as a method.
func (d *FuncDecl) Owner() *ClassDecl {
	if d.Scope == nil || d.Scope.Kind != symbols.ScopeClass {
		return nil
	}
	cls, _ := d.Scope.Owner.(*ClassDecl)
	return cls
}

// IsMethod reports whether the function is declared in a class body.
func (d *FuncDecl) IsMethod() bool {
	return d.Owner() != nil
}

type ParamKind int

const (
	PositionalOnlyParam ParamKind = iota
	NormalParam
	VarArgParam     // *args
	KeywordOnlyParam
	KwArgParam // **kwargs
)

func (k ParamKind) String() string {
	switch k {
	case PositionalOnlyParam:
		return "positional-only"
	case VarArgParam:
		return "vararg"
	case KeywordOnlyParam:
		return "keyword-only"
	case KwArgParam:
		return "kwarg"
	}
	return "normal"
}

// Parameter is a declared parameter. Kind is computed by the binder from
// the / and * markers of the signature.
type Parameter struct {
	Base
	Name       *Name
	Kind       ParamKind
	Annotation Expression // Optional
	Default    Expression // Optional
}

func (p *Parameter) AcceptDecl(v DeclarationVisitor) { v.DeclareParameter(p) }
func (p *Parameter) DeclName() string               { return p.Name.String() }

// FieldDecl is a has-field of an archetype: has x: int = 0.
type FieldDecl struct {
	Base
	Name       *Name
	Annotation Expression // Optional
	Default    Expression // Optional
}

func (d *FieldDecl) Accept(v StatementVisitor)      { v.VisitFieldDecl(d) }
func (d *FieldDecl) AcceptDecl(v DeclarationVisitor) { v.DeclareField(d) }
func (d *FieldDecl) statementNode()                 {}
func (d *FieldDecl) DeclName() string               { return d.Name.String() }
