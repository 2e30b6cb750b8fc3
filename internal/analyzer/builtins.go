package analyzer

import (
	"github.com/funvibe/typeeval/internal/ast"
	"github.com/funvibe/typeeval/internal/config"
	"github.com/funvibe/typeeval/internal/symbols"
	"github.com/funvibe/typeeval/internal/typesystem"
)

// builtinTypes caches the class types declared by the prelude, and their
// instance flavors once requested.
type builtinTypes struct {
	prelude   *symbols.Scope
	classes   map[string]typesystem.TClass
	instances map[string]typesystem.TClass
}

func newBuiltinTypes(prelude *symbols.Scope) *builtinTypes {
	return &builtinTypes{
		prelude:   prelude,
		classes:   make(map[string]typesystem.TClass),
		instances: make(map[string]typesystem.TClass),
	}
}

// builtinClass returns the instantiable class a prelude name refers to.
func (e *Evaluator) builtinClass(name string) (typesystem.TClass, bool) {
	if cls, ok := e.builtins.classes[name]; ok {
		return cls, true
	}
	sym, ok := e.builtins.prelude.Lookup(name, false)
	if !ok {
		return typesystem.TClass{}, false
	}
	cls, ok := e.GetTypeOfSymbol(sym).(typesystem.TClass)
	if !ok || !cls.IsInstantiable() {
		return typesystem.TClass{}, false
	}
	e.builtins.classes[name] = cls
	return cls, true
}

// builtinInstance returns an instance of a prelude class, Unknown when the
// stub does not declare it.
func (e *Evaluator) builtinInstance(name string) typesystem.Type {
	if inst, ok := e.builtins.instances[name]; ok {
		return inst
	}
	cls, ok := e.builtinClass(name)
	if !ok {
		return typesystem.Unknown
	}
	inst := cls.CloneAsInstance()
	e.builtins.instances[name] = inst
	return inst
}

// archetypeBase returns the builtin class node, edge and walker archetypes
// inherit implicitly.
func (e *Evaluator) archetypeBase(kind ast.ArchetypeKind) (typesystem.TClass, bool) {
	switch kind {
	case ast.NodeArchetype:
		return e.builtinClass(config.NodeBaseName)
	case ast.EdgeArchetype:
		return e.builtinClass(config.EdgeBaseName)
	case ast.WalkerArchetype:
		return e.builtinClass(config.WalkerBaseName)
	}
	return typesystem.TClass{}, false
}

// derivesFromBuiltin reports whether t is a class (either flavor) whose MRO
// contains the named prelude class.
func (e *Evaluator) derivesFromBuiltin(t typesystem.Type, name string) bool {
	cls, ok := t.(typesystem.TClass)
	if !ok {
		return false
	}
	base, ok := e.builtinClass(name)
	if !ok {
		return false
	}
	return cls.DerivesFrom(base.Details)
}
