package typesystem

import (
	"strings"

	"github.com/funvibe/typeeval/internal/ast"
)

type ParamCategory int

const (
	ParamPositional ParamCategory = iota
	ParamVarArg                   // *args
	ParamKwargsDict               // **kwargs
)

// Parameter is one entry of a function signature.
type Parameter struct {
	Name         string
	Category     ParamCategory
	DeclaredType Type // nil when not annotated
	Default      ast.Expression
	IsSelf       bool
	Kind         ast.ParamKind
	Decl         *ast.Parameter
}

// CategoryOf maps a syntactic parameter kind to its matching category.
func CategoryOf(kind ast.ParamKind) ParamCategory {
	switch kind {
	case ast.VarArgParam:
		return ParamVarArg
	case ast.KwArgParam:
		return ParamKwargsDict
	}
	return ParamPositional
}

func (p Parameter) HasDefault() bool {
	return p.Default != nil
}

func (p Parameter) String() string {
	var sb strings.Builder
	switch p.Category {
	case ParamVarArg:
		sb.WriteString("*")
	case ParamKwargsDict:
		sb.WriteString("**")
	}
	sb.WriteString(p.Name)
	if p.DeclaredType != nil {
		sb.WriteString(": ")
		sb.WriteString(p.DeclaredType.String())
	}
	if p.HasDefault() {
		sb.WriteString(" = ...")
	}
	return sb.String()
}

// TFunction is the type of a function or method declaration.
type TFunction struct {
	Name       string
	ReturnType Type // nil when not annotated
	Params     []Parameter
	Decl       *ast.FuncDecl
	IsStatic   bool
}

func (f *TFunction) Category() Category { return CategoryFunction }

func (f *TFunction) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	ret := "Unknown"
	if f.ReturnType != nil {
		ret = f.ReturnType.String()
	}
	return "(" + strings.Join(parts, ", ") + ") -> " + ret
}

// Result returns the declared return type, Unknown when there is none.
func (f *TFunction) Result() Type {
	if f == nil || f.ReturnType == nil {
		return Unknown
	}
	return f.ReturnType
}
