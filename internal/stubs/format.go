// Package stubs loads declaration modules: the builtin prelude stub and
// any other module described as declarations only.
//
// A declaration file is YAML:
//
//	module: shapes
//	imports:
//	  - path: geometry.yaml
//	    as: geo
//	classes:
//	  - name: Circle
//	    kind: obj
//	    bases: [Shape]
//	    fields: ["radius: float = 1.0"]
//	    methods:
//	      - name: area
//	        params: [self]
//	        returns: float
//	functions:
//	  - name: scale
//	    params: ["s: Shape", "/", "factor: float", "*", "copy: bool = False"]
//	    returns: Shape
//	variables: ["unit: Circle = Circle()"]
//
// Parameter entries follow the usual signature syntax: "*args", "**kwargs",
// and the bare "/" and "*" markers. Types are dotted names, None, or unions
// written with "|"; generic arguments in brackets are accepted and ignored.
//
// Values are literals, names, attribute chains and argument-less calls.
// Calls with arguments, operators and function bodies have no declaration
// form; code using them comes from a source parser building the AST directly.
package stubs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// File is the decoded form of a declaration file.
type File struct {
	Module    string     `yaml:"module"`
	Imports   []Import   `yaml:"imports,omitempty"`
	Classes   []Class    `yaml:"classes,omitempty"`
	Functions []Function `yaml:"functions,omitempty"`
	Variables []Variable `yaml:"variables,omitempty"`
}

type Import struct {
	Path string `yaml:"path"`
	As   string `yaml:"as,omitempty"`

	Line, Column int `yaml:"-"`
}

type Class struct {
	Name      string     `yaml:"name"`
	Kind      string     `yaml:"kind,omitempty"` // class (default), obj, node, edge, walker
	Bases     []string   `yaml:"bases,omitempty"`
	DataClass bool       `yaml:"dataclass,omitempty"`
	Fields    []Variable `yaml:"fields,omitempty"`
	Methods   []Function `yaml:"methods,omitempty"`

	Line, Column int `yaml:"-"`
}

type Function struct {
	Name    string   `yaml:"name"`
	Params  []string `yaml:"params,omitempty"`
	Returns string   `yaml:"returns,omitempty"`
	Static  bool     `yaml:"static,omitempty"`

	Line, Column int `yaml:"-"`
}

// Variable is a "name[: type][ = value]" entry.
type Variable struct {
	Text string

	Line, Column int
}

// The position-recording unmarshalers below decode through an alias type so
// the default struct decoding still applies.

func (i *Import) UnmarshalYAML(node *yaml.Node) error {
	type plain Import
	if err := node.Decode((*plain)(i)); err != nil {
		return err
	}
	i.Line, i.Column = node.Line, node.Column
	return nil
}

func (c *Class) UnmarshalYAML(node *yaml.Node) error {
	type plain Class
	if err := node.Decode((*plain)(c)); err != nil {
		return err
	}
	c.Line, c.Column = node.Line, node.Column
	return nil
}

func (f *Function) UnmarshalYAML(node *yaml.Node) error {
	type plain Function
	if err := node.Decode((*plain)(f)); err != nil {
		return err
	}
	f.Line, f.Column = node.Line, node.Column
	return nil
}

func (v *Variable) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: variable must be a string like \"name: type = value\"", node.Line)
	}
	v.Text = node.Value
	v.Line, v.Column = node.Line, node.Column
	return nil
}

// Parse decodes a declaration file. path is only used in error messages.
func Parse(data []byte, path string) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if f.Module == "" {
		return nil, fmt.Errorf("%s: missing module name", path)
	}
	return &f, nil
}
