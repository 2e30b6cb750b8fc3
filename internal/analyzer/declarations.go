package analyzer

import (
	"github.com/funvibe/typeeval/internal/ast"
	"github.com/funvibe/typeeval/internal/config"
	"github.com/funvibe/typeeval/internal/diagnostics"
	"github.com/funvibe/typeeval/internal/symbols"
	"github.com/funvibe/typeeval/internal/typesystem"
)

// GetTypeOfSymbol returns the declared type of sym. Declarations are
// evaluated once; a symbol whose evaluation depends on itself evaluates to
// Unknown, as does every symbol still being resolved on the way back up.
func (e *Evaluator) GetTypeOfSymbol(sym *symbols.Symbol) (result typesystem.Type) {
	if sym == nil {
		return typesystem.Unknown
	}
	decl := ast.DeclarationOf(sym)
	if decl == nil {
		return typesystem.Unbound
	}
	if t, ok := e.TypeMap[decl]; ok {
		return t
	}

	entry, ok := e.stack.push(sym)
	if !ok {
		return typesystem.Unknown
	}
	defer func() {
		e.stack.pop(entry)
		if !entry.valid {
			result = typesystem.Unknown
			return
		}
		result = e.cacheType(decl, result)
	}()

	r := &declarationTyper{e: e, entry: entry}
	decl.AcceptDecl(r)
	if r.result == nil {
		return typesystem.Unknown
	}
	return r.result
}

// TypeOfDeclaration evaluates a declaration node directly.
func (e *Evaluator) TypeOfDeclaration(decl ast.Declaration) typesystem.Type {
	return e.GetTypeOfSymbol(e.symbolFor(decl))
}

// symbolFor returns the symbol declared by decl in its scope. A declaration
// shadowed by a later one with the same name gets a private symbol, created
// once so the resolution stack can recognize it.
func (e *Evaluator) symbolFor(decl ast.Declaration) *symbols.Symbol {
	scope := decl.GetScope()
	if sym, ok := scope.Lookup(decl.DeclName(), false); ok && sym.Decl == symbols.Declaration(decl) {
		return sym
	}
	if sym, ok := e.shadowed[decl]; ok {
		return sym
	}
	sym := &symbols.Symbol{Name: decl.DeclName(), Decl: decl, Scope: scope}
	e.shadowed[decl] = sym
	return sym
}

// declarationTyper computes the type of one declaration.
type declarationTyper struct {
	e      *Evaluator
	entry  *stackEntry
	result typesystem.Type
}

func (r *declarationTyper) DeclareImport(d *ast.ImportDecl) {
	mod, err := r.e.compiler.CompileModule(d.Path, d.GetToken().File)
	if err != nil {
		r.e.addWarning(diagnostics.ErrT014, d, "cannot import %s: %v", d.Path, err)
		r.result = typesystem.Unknown
		return
	}
	r.result = typesystem.TModule{Name: mod.Name, Path: mod.Path, Scope: mod.Table}
}

func (r *declarationTyper) DeclareClass(d *ast.ClassDecl) {
	e := r.e
	cls := typesystem.NewClass(d, nil)
	r.entry.partial = cls

	var bases []typesystem.Type
	for _, baseExpr := range d.Bases {
		baseType := e.GetTypeOfExpression(baseExpr)
		if baseClass, ok := baseType.(typesystem.TClass); ok && baseClass.IsInstantiable() {
			bases = append(bases, baseClass)
			continue
		}
		cls.Details.Incomplete = true
		if !typesystem.IsUnknown(baseType) {
			e.addError(diagnostics.ErrT013, baseExpr, "base of class %s must be a class, got %s", d.DeclName(), baseType)
		}
	}

	if implicit, ok := e.archetypeBase(d.Kind); ok && !implicit.SameClass(cls) {
		inherited := false
		for _, b := range bases {
			bc := b.(typesystem.TClass)
			typesystem.ComputeMRO(bc)
			if bc.DerivesFrom(implicit.Details) {
				inherited = true
				break
			}
		}
		if !inherited {
			bases = append(bases, implicit)
		}
	}

	cls.Details.Bases = bases
	typesystem.ComputeMRO(cls)
	r.result = cls
}

func (r *declarationTyper) DeclareFunction(d *ast.FuncDecl) {
	e := r.e
	fn := &typesystem.TFunction{
		Name:     d.DeclName(),
		Decl:     d,
		IsStatic: d.IsStatic,
	}
	for i, p := range d.Params {
		param := typesystem.Parameter{
			Name:     p.DeclName(),
			Category: typesystem.CategoryOf(p.Kind),
			Default:  p.Default,
			IsSelf:   i == 0 && isReceiverParam(d, p),
			Kind:     p.Kind,
			Decl:     p,
		}
		if p.Annotation != nil {
			param.DeclaredType = e.annotationType(p.Annotation)
		} else if param.IsSelf {
			param.DeclaredType = e.ownerInstance(d)
		}
		fn.Params = append(fn.Params, param)
	}
	if d.Returns != nil {
		fn.ReturnType = e.annotationType(d.Returns)
	}
	r.result = fn
}

func (r *declarationTyper) DeclareParameter(p *ast.Parameter) {
	e := r.e
	switch {
	case p.Kind == ast.VarArgParam:
		r.result = e.builtinInstance(config.TupleTypeName)
	case p.Kind == ast.KwArgParam:
		r.result = e.builtinInstance(config.DictTypeName)
	case p.Annotation != nil:
		r.result = e.annotationType(p.Annotation)
	default:
		r.result = typesystem.Unknown
		scope := p.GetScope()
		if scope == nil {
			return
		}
		if fn, ok := scope.Owner.(*ast.FuncDecl); ok && len(fn.Params) > 0 && fn.Params[0] == p && isReceiverParam(fn, p) {
			r.result = e.ownerInstance(fn)
		}
	}
}

func (r *declarationTyper) DeclareAssignment(d *ast.Assignment) {
	r.result = r.e.declaredOrInferred(d.Annotation, d.Value)
}

func (r *declarationTyper) DeclareField(d *ast.FieldDecl) {
	r.result = r.e.declaredOrInferred(d.Annotation, d.Default)
}

func (e *Evaluator) declaredOrInferred(annotation, value ast.Expression) typesystem.Type {
	if annotation != nil {
		return e.annotationType(annotation)
	}
	if value != nil {
		return e.GetTypeOfExpression(value)
	}
	return typesystem.Unknown
}

// isReceiverParam reports whether p is the explicit receiver of method fn.
func isReceiverParam(fn *ast.FuncDecl, p *ast.Parameter) bool {
	return fn.IsMethod() && !fn.IsStatic && p.DeclName() == config.SelfName &&
		(p.Kind == ast.NormalParam || p.Kind == ast.PositionalOnlyParam)
}

// ownerInstance returns an instance of the class declaring method fn.
func (e *Evaluator) ownerInstance(fn *ast.FuncDecl) typesystem.Type {
	owner := fn.Owner()
	if owner == nil {
		return typesystem.Unknown
	}
	cls, ok := e.TypeOfDeclaration(owner).(typesystem.TClass)
	if !ok {
		return typesystem.Unknown
	}
	return cls.CloneAsInstance()
}
