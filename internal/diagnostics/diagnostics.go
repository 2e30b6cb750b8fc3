package diagnostics

import (
	"fmt"
	"sort"

	"github.com/funvibe/typeeval/internal/token"
)

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	}
	return "error"
}

// DiagnosticError is one reported problem tied to a node position.
type DiagnosticError struct {
	Code     ErrorCode
	Severity Severity
	Token    token.Token
	File     string
	Message  string
}

func NewError(code ErrorCode, tok token.Token, msg string) *DiagnosticError {
	return &DiagnosticError{Code: code, Severity: SeverityError, Token: tok, File: tok.File, Message: msg}
}

func NewWarning(code ErrorCode, tok token.Token, msg string) *DiagnosticError {
	d := NewError(code, tok, msg)
	d.Severity = SeverityWarning
	return d
}

func (e *DiagnosticError) Error() string {
	pos := e.Token
	if pos.File == "" {
		pos.File = e.File
	}
	if pos.IsZero() {
		return fmt.Sprintf("%s[%s]: %s", e.Severity, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s[%s]: %s", pos, e.Severity, e.Code, e.Message)
}

// Sink receives diagnostics as they are reported.
type Sink func(*DiagnosticError)

// Collector is a Sink target that drops duplicates reported at the same
// position with the same code and message.
type Collector struct {
	seen   map[string]bool
	errors []*DiagnosticError
}

func NewCollector() *Collector {
	return &Collector{seen: make(map[string]bool)}
}

func (c *Collector) Add(err *DiagnosticError) {
	key := fmt.Sprintf("%s:%d:%d:%s:%s", err.File, err.Token.Line, err.Token.Column, err.Code, err.Message)
	if c.seen[key] {
		return
	}
	c.seen[key] = true
	c.errors = append(c.errors, err)
}

// Sink returns c.Add as a Sink.
func (c *Collector) Sink() Sink {
	return c.Add
}

// Errors returns the collected diagnostics ordered by position.
func (c *Collector) Errors() []*DiagnosticError {
	out := append([]*DiagnosticError(nil), c.errors...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Token.Line != b.Token.Line {
			return a.Token.Line < b.Token.Line
		}
		return a.Token.Column < b.Token.Column
	})
	return out
}

// HasErrors reports whether any collected diagnostic has error severity.
func HasErrors(errs []*DiagnosticError) bool {
	for _, e := range errs {
		if e.Severity == SeverityError {
			return true
		}
	}
	return false
}
