package typesystem

import (
	"github.com/funvibe/typeeval/internal/ast"
	"github.com/funvibe/typeeval/internal/symbols"
)

type ClassFlags uint8

const (
	Instantiable ClassFlags = 1 << iota // the class object itself
	Instance                            // a value of the class
)

// ClassDetails is the record shared by every flavor of one class. Two class
// types denote the same class iff they point at the same ClassDetails.
type ClassDetails struct {
	Name      string
	Decl      *ast.ClassDecl
	Scope     *symbols.Scope // Member scope (the class body)
	DeclScope *symbols.Scope // Scope the class is declared in
	Bases     []Type
	MRO       []TClass
	Builtin   bool
	DataClass bool
	Archetype ast.ArchetypeKind

	// Incomplete is set when a base expression did not evaluate to a class,
	// so member lookups that fail cannot be trusted.
	Incomplete bool
}

// TClass is a class or an instance of it, depending on Flags.
type TClass struct {
	Details *ClassDetails
	Flags   ClassFlags
}

// NewClass constructs the instantiable class type of decl with the given
// resolved bases. The MRO is left empty; see ComputeMRO.
func NewClass(decl *ast.ClassDecl, bases []Type) TClass {
	declScope := decl.GetScope()
	details := &ClassDetails{
		Name:      decl.DeclName(),
		Decl:      decl,
		Scope:     decl.BodyScope,
		DeclScope: declScope,
		Bases:     bases,
		Builtin:   declScope.IsPrelude(),
		DataClass: decl.DataClass || decl.Kind == ast.ObjArchetype,
		Archetype: decl.Kind,
	}
	return TClass{Details: details, Flags: Instantiable}
}

func (c TClass) Category() Category { return CategoryClass }

func (c TClass) String() string {
	name := "<class>"
	if c.Details != nil {
		name = c.Details.Name
	}
	if c.IsInstantiable() {
		return "type[" + name + "]"
	}
	return name
}

// CloneAsInstance returns the instance flavor of c. It never mutates c and
// is idempotent.
func (c TClass) CloneAsInstance() TClass {
	return TClass{Details: c.Details, Flags: Instance}
}

// CloneAsInstantiable returns the class-object flavor of c.
func (c TClass) CloneAsInstantiable() TClass {
	return TClass{Details: c.Details, Flags: Instantiable}
}

func (c TClass) IsInstantiable() bool { return c.Flags&Instantiable != 0 }
func (c TClass) IsInstance() bool     { return c.Flags&Instance != 0 }

// IsBuiltin reports whether the class is declared in the builtin prelude,
// optionally also requiring its name to be one of names.
func (c TClass) IsBuiltin(names ...string) bool {
	if c.Details == nil || !c.Details.Builtin {
		return false
	}
	if len(names) == 0 {
		return true
	}
	for _, n := range names {
		if c.Details.Name == n {
			return true
		}
	}
	return false
}

// SameClass compares record identity, ignoring flavor.
func (c TClass) SameClass(other TClass) bool {
	return c.Details != nil && c.Details == other.Details
}

// DerivesFrom reports whether other appears in c's MRO.
func (c TClass) DerivesFrom(other *ClassDetails) bool {
	if c.Details == nil || other == nil {
		return false
	}
	for _, m := range c.Details.MRO {
		if m.Details == other {
			return true
		}
	}
	return c.Details == other
}

// LookUpMember walks the MRO and returns the first declaration of name
// together with the class that declares it.
func (c TClass) LookUpMember(name string) (*symbols.Symbol, TClass, bool) {
	if c.Details == nil {
		return nil, TClass{}, false
	}
	mro := c.Details.MRO
	if len(mro) == 0 {
		mro = []TClass{c.CloneAsInstantiable()}
	}
	for _, cls := range mro {
		if sym, ok := cls.Details.Scope.Lookup(name, false); ok {
			return sym, cls, true
		}
	}
	return nil, TClass{}, false
}

// IsInstantiable reports whether t is the class object of some class.
func IsInstantiable(t Type) bool {
	c, ok := t.(TClass)
	return ok && c.IsInstantiable()
}

// IsInstance reports whether t is a value-flavored type.
func IsInstance(t Type) bool {
	c, ok := t.(TClass)
	return ok && c.IsInstance()
}

func IsClassInstance(t Type) bool {
	return IsInstance(t)
}

func IsInstantiableClass(t Type) bool {
	return IsInstantiable(t)
}
