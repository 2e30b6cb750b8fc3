package symbols

// Declaration is the declaring AST node of a symbol. It is declared here
// rather than in ast so that nodes can point at their scope without an
// import cycle.
type Declaration interface {
	DeclName() string
}

// Symbol links a name in a scope to its declaration site.
type Symbol struct {
	Name  string
	Decl  Declaration // nil for names the binder knows but could not attach
	Scope *Scope      // Scope the symbol was defined in

	// Earlier declarations of the name in the same scope, oldest first.
	Previous []Declaration
}

// Declarations returns every declaration of the name in its scope in source
// order, ending with the one in effect.
func (s *Symbol) Declarations() []Declaration {
	decls := make([]Declaration, 0, len(s.Previous)+1)
	decls = append(decls, s.Previous...)
	return append(decls, s.Decl)
}

func (s *Symbol) String() string {
	if s == nil {
		return "<nil>"
	}
	if s.Scope != nil && s.Scope.Name != "" {
		return s.Scope.Name + "." + s.Name
	}
	return s.Name
}
