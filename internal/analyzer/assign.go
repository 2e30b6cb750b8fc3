package analyzer

import (
	"github.com/funvibe/typeeval/internal/config"
	"github.com/funvibe/typeeval/internal/typesystem"
)

// AssignType reports whether a value of type src can be used where dest is
// expected. Missing information is compatible; only nominal class instance
// relationships are checked.
func (e *Evaluator) AssignType(src, dest typesystem.Type) bool {
	if isGradual(src) || isGradual(dest) {
		return true
	}
	if typesystem.Identical(src, dest) {
		return true
	}
	srcCls, ok := src.(typesystem.TClass)
	if !ok || !srcCls.IsInstance() {
		return false
	}
	destCls, ok := dest.(typesystem.TClass)
	if !ok || !destCls.IsInstance() {
		return false
	}
	typesystem.ComputeMRO(srcCls)
	if srcCls.DerivesFrom(destCls.Details) {
		return true
	}
	if destCls.IsBuiltin(config.ObjectTypeName) {
		return true
	}
	return destCls.IsBuiltin(config.FloatTypeName) && e.derivesFromBuiltin(srcCls, config.IntTypeName)
}

func isGradual(t typesystem.Type) bool {
	if typesystem.IsUnknown(t) {
		return true
	}
	_, ok := t.(typesystem.TAny)
	return ok
}
