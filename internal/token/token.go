package token

import "fmt"

// Token is the source anchor of an AST node. The evaluator never inspects
// the lexeme; it is carried for diagnostics only.
type Token struct {
	File   string
	Line   int
	Column int
	Lexeme string
}

func (t Token) String() string {
	if t.File != "" {
		return fmt.Sprintf("%s:%d:%d", t.File, t.Line, t.Column)
	}
	return fmt.Sprintf("%d:%d", t.Line, t.Column)
}

// IsZero reports whether the token carries no position.
func (t Token) IsZero() bool {
	return t.Line == 0 && t.Column == 0 && t.File == ""
}
