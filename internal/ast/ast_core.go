package ast

import (
	"github.com/funvibe/typeeval/internal/symbols"
	"github.com/funvibe/typeeval/internal/token"
)

// TokenProvider is an interface for any AST node that can provide its primary token.
// This is useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all AST nodes. Every node is linked into
// the lexical scope it appears in before type evaluation starts.
type Node interface {
	TokenProvider
	TokenLiteral() string
	GetScope() *symbols.Scope
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
	Accept(v ExpressionVisitor)
}

// Statement is a Node that represents a statement.
type Statement interface {
	Node
	statementNode()
	Accept(v StatementVisitor)
}

// Declaration is a node a symbol can point at.
type Declaration interface {
	Node
	symbols.Declaration
	AcceptDecl(v DeclarationVisitor)
}

// Base carries the fields shared by every node.
type Base struct {
	Token token.Token
	Scope *symbols.Scope
}

func (b *Base) GetToken() token.Token {
	if b == nil {
		return token.Token{}
	}
	return b.Token
}

func (b *Base) GetScope() *symbols.Scope {
	if b == nil {
		return nil
	}
	return b.Scope
}

func (b *Base) TokenLiteral() string {
	if b == nil {
		return ""
	}
	return b.Token.Lexeme
}

// Module is the root node of one compiled source or declaration file.
type Module struct {
	Base
	Name  string
	Path  string
	Body  []Statement
	Table *symbols.Scope // Top-level scope of the module
}

// DeclarationOf returns the declaration a symbol points at, or nil when the
// symbol carries none (or one from a foreign node set).
func DeclarationOf(sym *symbols.Symbol) Declaration {
	if sym == nil || sym.Decl == nil {
		return nil
	}
	d, _ := sym.Decl.(Declaration)
	return d
}
