package typesystem

import (
	"strings"

	"github.com/funvibe/typeeval/internal/symbols"
)

// Category tags the variants of Type.
type Category int

const (
	CategoryUnbound Category = iota
	CategoryUnknown
	CategoryNever
	CategoryAny
	CategoryModule
	CategoryClass
	CategoryFunction
	CategoryUnion
)

func (c Category) String() string {
	switch c {
	case CategoryUnbound:
		return "unbound"
	case CategoryUnknown:
		return "unknown"
	case CategoryNever:
		return "never"
	case CategoryAny:
		return "any"
	case CategoryModule:
		return "module"
	case CategoryClass:
		return "class"
	case CategoryFunction:
		return "function"
	case CategoryUnion:
		return "union"
	}
	return "invalid"
}

// Type is the interface for all types in our system.
type Type interface {
	String() string
	Category() Category
}

// TUnbound is the type of a name that is known but has no usable declaration.
type TUnbound struct{}

func (TUnbound) String() string     { return "Unbound" }
func (TUnbound) Category() Category { return CategoryUnbound }

// TUnknown is the gradual "could not tell" type. It is compatible with
// everything and is what evaluation degrades to.
type TUnknown struct{}

func (TUnknown) String() string     { return "Unknown" }
func (TUnknown) Category() Category { return CategoryUnknown }

type TNever struct{}

func (TNever) String() string     { return "Never" }
func (TNever) Category() Category { return CategoryNever }

type TAny struct{}

func (TAny) String() string     { return "Any" }
func (TAny) Category() Category { return CategoryAny }

var (
	Unbound Type = TUnbound{}
	Unknown Type = TUnknown{}
	Never   Type = TNever{}
	Any     Type = TAny{}
)

// TModule is the type of a module reference.
type TModule struct {
	Name  string
	Path  string
	Scope *symbols.Scope
}

func (m TModule) String() string     { return "module '" + m.Name + "'" }
func (m TModule) Category() Category { return CategoryModule }

// TUnion holds its members as given; no flattening or deduplication happens
// at this layer.
type TUnion struct {
	Members []Type
}

func NewUnion(members ...Type) TUnion {
	return TUnion{Members: append([]Type(nil), members...)}
}

func (u TUnion) String() string {
	parts := make([]string, len(u.Members))
	for i, m := range u.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, " | ")
}

func (u TUnion) Category() Category { return CategoryUnion }

// IsUnknown reports whether t is missing or Unknown.
func IsUnknown(t Type) bool {
	if t == nil {
		return true
	}
	_, ok := t.(TUnknown)
	return ok
}

// Identical reports whether two types denote the same type. Classes are
// identical when they share a record and are the same flavor.
func Identical(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Category() != b.Category() {
		return false
	}
	switch at := a.(type) {
	case TClass:
		bt := b.(TClass)
		return at.Details == bt.Details && at.Flags == bt.Flags
	case *TFunction:
		return at == b.(*TFunction)
	case TModule:
		bt := b.(TModule)
		return at.Scope == bt.Scope && at.Path == bt.Path
	case TUnion:
		bt := b.(TUnion)
		if len(at.Members) != len(bt.Members) {
			return false
		}
		for i := range at.Members {
			if !Identical(at.Members[i], bt.Members[i]) {
				return false
			}
		}
		return true
	}
	// Unbound, Unknown, Never and Any carry no data.
	return true
}
