package stubs

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/funvibe/typeeval/internal/ast"
	"github.com/funvibe/typeeval/internal/config"
	"github.com/funvibe/typeeval/internal/symbols"
)

//go:embed builtins.yaml
var builtinStub []byte

// EmbeddedPath is the pseudo path reported for the embedded stub.
const EmbeddedPath = "<builtins>"

// ErrStubNotFound is returned when the builtin stub file does not exist.
var ErrStubNotFound = errors.New("builtin stub not found")

// LoadPrelude loads the builtin stub from path, or the embedded stub when
// path is empty, into a prelude scope.
func LoadPrelude(path string) (*ast.Module, error) {
	data := builtinStub
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrStubNotFound, path)
		}
		if err != nil {
			return nil, fmt.Errorf("reading builtin stub: %w", err)
		}
	} else {
		path = EmbeddedPath
	}

	f, err := Parse(data, path)
	if err != nil {
		return nil, err
	}
	if f.Module != config.BuiltinModuleName {
		return nil, fmt.Errorf("%s: builtin stub must declare module %q, got %q", path, config.BuiltinModuleName, f.Module)
	}
	return Build(f, path, symbols.ScopePrelude, nil)
}

// LoadModule loads a declaration module whose names resolve through prelude.
func LoadModule(path string, prelude *symbols.Scope) (*ast.Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data, path)
	if err != nil {
		return nil, err
	}
	return Build(f, path, symbols.ScopeModule, prelude)
}

// ParseModule builds a declaration module from in-memory source.
func ParseModule(data []byte, path string, prelude *symbols.Scope) (*ast.Module, error) {
	f, err := Parse(data, path)
	if err != nil {
		return nil, err
	}
	return Build(f, path, symbols.ScopeModule, prelude)
}
