package diagnostics

// ErrorCode identifies a class of type diagnostic. Codes are stable and are
// what tests and editors match on.
type ErrorCode string

const (
	ErrT001 ErrorCode = "T001" // Too many positional arguments
	ErrT002 ErrorCode = "T002" // Parameter already assigned
	ErrT003 ErrorCode = "T003" // Positional-only parameter passed by keyword
	ErrT004 ErrorCode = "T004" // Unexpected keyword argument
	ErrT005 ErrorCode = "T005" // Missing required parameters
	ErrT006 ErrorCode = "T006" // Argument type mismatch
	ErrT007 ErrorCode = "T007" // Assignment / return type mismatch
	ErrT008 ErrorCode = "T008" // Graph operand is not a node
	ErrT009 ErrorCode = "T009" // Edge annotation is not an edge
	ErrT010 ErrorCode = "T010" // Edge has no such field
	ErrT011 ErrorCode = "T011" // Edge field type mismatch
	ErrT012 ErrorCode = "T012" // Unknown member
	ErrT013 ErrorCode = "T013" // Base is not a class
	ErrT014 ErrorCode = "T014" // Module could not be compiled
)

var codeTitles = map[ErrorCode]string{
	ErrT001: "too many positional arguments",
	ErrT002: "parameter already assigned",
	ErrT003: "positional-only parameter passed by keyword",
	ErrT004: "unexpected keyword argument",
	ErrT005: "missing required parameters",
	ErrT006: "argument type mismatch",
	ErrT007: "incompatible assignment",
	ErrT008: "graph operand is not a node",
	ErrT009: "edge annotation is not an edge",
	ErrT010: "unknown edge field",
	ErrT011: "edge field type mismatch",
	ErrT012: "unknown member",
	ErrT013: "invalid base class",
	ErrT014: "module not found",
}

// Title is a short human name for the code.
func (c ErrorCode) Title() string {
	if t, ok := codeTitles[c]; ok {
		return t
	}
	return "type error"
}
