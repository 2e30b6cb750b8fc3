package analyzer

import (
	"testing"

	"github.com/funvibe/typeeval/internal/config"
	"github.com/funvibe/typeeval/internal/typesystem"
)

func TestAssignType(t *testing.T) {
	f := newFixture(t, zooModule)
	intT := f.builtin(config.IntTypeName)
	floatT := f.builtin(config.FloatTypeName)
	boolT := f.builtin(config.BoolTypeName)
	object := f.builtin(config.ObjectTypeName)
	dog := f.instance("Dog")
	animal := f.instance("Animal")
	rock := f.instance("Rock")

	tests := []struct {
		name      string
		src, dest typesystem.Type
		want      bool
	}{
		{"int to float", intT, floatT, true},
		{"float to int", floatT, intT, false},
		{"bool to int", boolT, intT, true},
		{"bool to float", boolT, floatT, true},
		{"identity", rock, rock, true},
		{"subclass to base", dog, animal, true},
		{"base to subclass", animal, dog, false},
		{"unrelated", rock, animal, false},
		{"anything to object", rock, object, true},
		{"builtin to object", floatT, object, true},
		{"unknown source", typesystem.Unknown, dog, true},
		{"unknown destination", dog, typesystem.Unknown, true},
		{"any", typesystem.Any, intT, true},
		{"class object to instance", f.class("Dog"), animal, false},
		{"instance to class object", dog, f.class("Animal"), false},
		{"union is not checked member-wise", intT, typesystem.NewUnion(intT, floatT), false},
		{"function to instance", f.typeOf("feed"), object, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.e.AssignType(tt.src, tt.dest); got != tt.want {
				t.Errorf("AssignType(%v, %v) = %v, want %v", tt.src, tt.dest, got, tt.want)
			}
		})
	}
}
