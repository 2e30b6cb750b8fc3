package config

// DeclFileExt is the extension of declaration modules (and the builtin stub).
const DeclFileExt = ".yaml"

// DeclFileExtensions are all recognized declaration file extensions
var DeclFileExtensions = []string{".yaml", ".yml"}

// ConfigFileName is looked up in the working directory when no -config flag is given.
const ConfigFileName = "typeeval.yaml"

// BuiltinModuleName is the module name of the builtin prelude.
const BuiltinModuleName = "builtins"

// SelfName is the implicit receiver inside non-static methods.
const SelfName = "self"

// Built-in type names prefetched when an evaluator is created
const (
	ObjectTypeName   = "object"
	TypeTypeName     = "type"
	TupleTypeName    = "tuple"
	BoolTypeName     = "bool"
	IntTypeName      = "int"
	FloatTypeName    = "float"
	StrTypeName      = "str"
	DictTypeName     = "dict"
	ListTypeName     = "list"
	NoneTypeTypeName = "NoneType"
)

// PrefetchedTypeNames must all be declared by the builtin stub.
var PrefetchedTypeNames = []string{
	ObjectTypeName,
	TypeTypeName,
	TupleTypeName,
	BoolTypeName,
	IntTypeName,
	FloatTypeName,
	StrTypeName,
	DictTypeName,
}

// Archetype base classes declared by the builtin stub.
const (
	NodeBaseName   = "Node"
	EdgeBaseName   = "Edge"
	WalkerBaseName = "Walker"
)

// Special annotation names
const (
	AnyName      = "Any"
	AnyNameLow   = "any"
	NeverName    = "Never"
	NoReturn     = "NoReturn"
	NoneName     = "None"
	CallMethod   = "__call__"
	NegMethod    = "__neg__"
	PosMethod    = "__pos__"
	InvertMethod = "__invert__"
)
