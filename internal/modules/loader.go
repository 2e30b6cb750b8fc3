package modules

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/funvibe/typeeval/internal/ast"
	"github.com/funvibe/typeeval/internal/config"
	"github.com/funvibe/typeeval/internal/stubs"
	"github.com/funvibe/typeeval/internal/symbols"
)

// ModuleNotFoundError is returned when no candidate file exists for an import.
type ModuleNotFoundError struct {
	Path       string
	Candidates []string
}

func (e *ModuleNotFoundError) Error() string {
	return fmt.Sprintf("module %s not found (tried %s)", e.Path, strings.Join(e.Candidates, ", "))
}

// Loader compiles declaration modules by path and caches the result for the
// lifetime of one compilation.
type Loader struct {
	LoadedModules map[string]*ast.Module // Cache of loaded modules by absolute path
	ModulesByName map[string]*ast.Module // Index by module name for quick lookup
	SearchPaths   []string

	prelude *symbols.Scope
	virtual map[string]*ast.Module
}

func NewLoader(prelude *symbols.Scope, searchPaths ...string) *Loader {
	return &Loader{
		LoadedModules: make(map[string]*ast.Module),
		ModulesByName: make(map[string]*ast.Module),
		SearchPaths:   searchPaths,
		prelude:       prelude,
		virtual:       make(map[string]*ast.Module),
	}
}

// SetPrelude sets the scope newly loaded modules resolve builtins through.
func (l *Loader) SetPrelude(prelude *symbols.Scope) {
	l.prelude = prelude
}

// RegisterVirtual makes an in-memory module importable under path (and
// under its module name).
func (l *Loader) RegisterVirtual(path string, mod *ast.Module) {
	l.virtual[path] = mod
	l.ModulesByName[mod.Name] = mod
}

// GetModuleByName returns an already loaded module by its declared name.
func (l *Loader) GetModuleByName(name string) (*ast.Module, bool) {
	mod, ok := l.ModulesByName[name]
	return mod, ok
}

// CompileModule resolves an import path written in importer (a file path,
// possibly empty) and returns the compiled module.
func (l *Loader) CompileModule(path string, importer string) (*ast.Module, error) {
	if mod, ok := l.virtual[path]; ok {
		return mod, nil
	}

	candidates := l.candidates(path, importer)
	for _, candidate := range candidates {
		absPath, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if mod, ok := l.LoadedModules[absPath]; ok {
			return mod, nil
		}
		info, err := os.Stat(absPath)
		if err != nil || info.IsDir() {
			continue
		}
		mod, err := stubs.LoadModule(absPath, l.prelude)
		if err != nil {
			return nil, err
		}
		l.LoadedModules[absPath] = mod
		l.ModulesByName[mod.Name] = mod
		return mod, nil
	}
	return nil, &ModuleNotFoundError{Path: path, Candidates: candidates}
}

// candidates lists the files an import path may refer to, in lookup order:
// next to the importer, then each search path, then relative to the working
// directory.
func (l *Loader) candidates(path, importer string) []string {
	rel := path
	if !hasDeclExt(rel) {
		rel = filepath.FromSlash(strings.ReplaceAll(rel, ".", "/"))
	}

	var names []string
	if hasDeclExt(rel) {
		names = []string{rel}
	} else {
		for _, ext := range config.DeclFileExtensions {
			names = append(names, rel+ext)
		}
	}

	if filepath.IsAbs(rel) {
		return names
	}

	var dirs []string
	if importer != "" {
		dirs = append(dirs, filepath.Dir(importer))
	}
	dirs = append(dirs, l.SearchPaths...)
	dirs = append(dirs, ".")

	var out []string
	seen := make(map[string]bool)
	for _, dir := range dirs {
		for _, name := range names {
			c := filepath.Join(dir, name)
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}

func hasDeclExt(path string) bool {
	for _, ext := range config.DeclFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// Modules returns every loaded module sorted by path, virtual ones excluded.
func (l *Loader) Modules() []*ast.Module {
	paths := make([]string, 0, len(l.LoadedModules))
	for p := range l.LoadedModules {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	out := make([]*ast.Module, len(paths))
	for i, p := range paths {
		out[i] = l.LoadedModules[p]
	}
	return out
}
