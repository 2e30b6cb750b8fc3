package symbols

type ScopeKind int

const (
	ScopePrelude  ScopeKind = iota // Built-in declarations loaded from the stub
	ScopeModule                    // Top level of a module
	ScopeClass                     // Class / archetype body
	ScopeFunction                  // Function or method body (parameters live here)
	ScopeBlock
)

func (k ScopeKind) String() string {
	switch k {
	case ScopePrelude:
		return "prelude"
	case ScopeModule:
		return "module"
	case ScopeClass:
		return "class"
	case ScopeFunction:
		return "function"
	case ScopeBlock:
		return "block"
	}
	return "unknown"
}

// Scope is one lexical scope produced by the binder.
type Scope struct {
	Name  string
	Kind  ScopeKind
	Owner Declaration // class or function declaration owning this scope, nil otherwise

	outer *Scope
	store map[string]*Symbol
	order []string
}

func NewScope(kind ScopeKind, name string, outer *Scope) *Scope {
	return &Scope{
		Name:  name,
		Kind:  kind,
		outer: outer,
		store: make(map[string]*Symbol),
	}
}

// NewEnclosedScope creates a scope owned by a class or function declaration.
func NewEnclosedScope(kind ScopeKind, owner Declaration, outer *Scope) *Scope {
	s := NewScope(kind, owner.DeclName(), outer)
	s.Owner = owner
	return s
}

// Outer returns the enclosing scope, nil for the prelude.
func (s *Scope) Outer() *Scope {
	return s.outer
}

func (s *Scope) IsPrelude() bool {
	return s != nil && s.Kind == ScopePrelude
}

// Define binds name to decl in this scope. Redefinition replaces the previous
// binding; the last declaration wins as in the source language, and the
// replaced ones are kept in Previous.
func (s *Scope) Define(name string, decl Declaration) *Symbol {
	sym := &Symbol{Name: name, Decl: decl, Scope: s}
	if prev, exists := s.store[name]; exists {
		sym.Previous = prev.Declarations()
	} else {
		s.order = append(s.order, name)
	}
	s.store[name] = sym
	return sym
}

// Lookup finds the nearest declaration of name. With deep set the search
// continues through enclosing scopes; class scopes are only consulted when
// the search starts in them, so method bodies do not see class members as
// bare names.
func (s *Scope) Lookup(name string, deep bool) (*Symbol, bool) {
	if s == nil {
		return nil, false
	}
	if sym, ok := s.store[name]; ok {
		return sym, true
	}
	if !deep {
		return nil, false
	}
	for cur := s.outer; cur != nil; cur = cur.outer {
		if cur.Kind == ScopeClass {
			continue
		}
		if sym, ok := cur.store[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// Symbols returns the symbols of this scope in definition order.
func (s *Scope) Symbols() []*Symbol {
	out := make([]*Symbol, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.store[name])
	}
	return out
}

// Prelude walks outward to the root scope when it is the prelude.
func (s *Scope) Prelude() *Scope {
	cur := s
	for cur != nil && cur.outer != nil {
		cur = cur.outer
	}
	if cur.IsPrelude() {
		return cur
	}
	return nil
}

// EnclosingFunction returns the nearest function scope, stopping at class
// and module boundaries.
func (s *Scope) EnclosingFunction() *Scope {
	for cur := s; cur != nil; cur = cur.outer {
		switch cur.Kind {
		case ScopeFunction:
			return cur
		case ScopeClass, ScopeModule, ScopePrelude:
			return nil
		}
	}
	return nil
}
