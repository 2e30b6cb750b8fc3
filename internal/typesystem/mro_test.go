package typesystem

import (
	"testing"

	"github.com/funvibe/typeeval/internal/symbols"
)

func mroNames(c TClass) []string {
	names := make([]string, len(c.Details.MRO))
	for i, m := range c.Details.MRO {
		names[i] = m.Details.Name
	}
	return names
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestComputeMRO(t *testing.T) {
	module := symbols.NewScope(symbols.ScopeModule, "main", nil)
	root := declareClass(module, "Root")
	b1 := declareClass(module, "B1", root)
	b2 := declareClass(module, "B2", root)
	c := declareClass(module, "C", b1, b2)
	leaf := declareClass(module, "Leaf")

	tests := []struct {
		name string
		cls  TClass
		want []string
	}{
		{"no bases", leaf, []string{"Leaf"}},
		{"single base", b1, []string{"B1", "Root"}},
		{"diamond is depth-first", c, []string{"C", "B1", "Root", "B2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mroNames(tt.cls)
			if !equalNames(got, tt.want) {
				t.Errorf("MRO = %v, want %v", got, tt.want)
			}
			if !tt.cls.Details.MRO[0].SameClass(tt.cls) {
				t.Errorf("MRO must start with the class itself")
			}
			seen := map[*ClassDetails]bool{}
			for _, m := range tt.cls.Details.MRO {
				if seen[m.Details] {
					t.Errorf("%s appears twice", m.Details.Name)
				}
				seen[m.Details] = true
			}
		})
	}
}

func TestComputeMROBasesFirstAndIdempotent(t *testing.T) {
	module := symbols.NewScope(symbols.ScopeModule, "main", nil)
	root := declareClass(module, "Root")

	// Build a base whose MRO has not been computed yet.
	mid := NewClass(declareClass(module, "Mid").Details.Decl, []Type{root})
	derived := NewClass(declareClass(module, "Derived").Details.Decl, []Type{mid})

	ComputeMRO(derived)
	if got := mroNames(mid); !equalNames(got, []string{"Mid", "Root"}) {
		t.Errorf("base MRO should be computed first, got %v", got)
	}
	if got := mroNames(derived); !equalNames(got, []string{"Derived", "Mid", "Root"}) {
		t.Errorf("derived MRO = %v", got)
	}

	before := derived.Details.MRO
	ComputeMRO(derived)
	if &before[0] != &derived.Details.MRO[0] {
		t.Errorf("second ComputeMRO should leave the existing order untouched")
	}
}

func TestDerivesFromAndLookUpMember(t *testing.T) {
	module := symbols.NewScope(symbols.ScopeModule, "main", nil)
	animal := declareClass(module, "Animal")
	dog := declareClass(module, "Dog", animal)
	cat := declareClass(module, "Cat", animal)

	animal.Details.Scope.Define("speak", nil)
	dog.Details.Scope.Define("fetch", nil)

	if !dog.DerivesFrom(animal.Details) || dog.DerivesFrom(cat.Details) {
		t.Errorf("DerivesFrom should follow the MRO")
	}

	_, owner, ok := dog.CloneAsInstance().LookUpMember("speak")
	if !ok || !owner.SameClass(animal) {
		t.Errorf("speak should resolve on Animal")
	}
	if _, _, ok := cat.LookUpMember("fetch"); ok {
		t.Errorf("fetch is not visible from Cat")
	}
}
