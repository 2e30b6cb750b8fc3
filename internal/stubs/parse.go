package stubs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/funvibe/typeeval/internal/ast"
	"github.com/funvibe/typeeval/internal/config"
	"github.com/funvibe/typeeval/internal/symbols"
	"github.com/funvibe/typeeval/internal/token"
)

// splitDecl splits "name: type = value" into its three parts.
func splitDecl(text string) (name, typ, value string) {
	if i := strings.Index(text, "="); i >= 0 {
		value = strings.TrimSpace(text[i+1:])
		text = text[:i]
	}
	if i := strings.Index(text, ":"); i >= 0 {
		typ = strings.TrimSpace(text[i+1:])
		text = text[:i]
	}
	return strings.TrimSpace(text), typ, value
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// exprBuilder creates expression nodes anchored at one position and scope.
type exprBuilder struct {
	tok   token.Token
	scope *symbols.Scope
}

func (b exprBuilder) base(lexeme string) ast.Base {
	tok := b.tok
	tok.Lexeme = lexeme
	return ast.Base{Token: tok, Scope: b.scope}
}

func (b exprBuilder) name(value string) *ast.Name {
	return &ast.Name{Base: b.base(value), Value: value}
}

// dotted builds a Name/AttributeExpression chain for a.b.c.
func (b exprBuilder) dotted(text string) (ast.Expression, error) {
	parts := ast.SplitDotted(text)
	for _, p := range parts {
		if !isIdentifier(p) {
			return nil, fmt.Errorf("invalid name %q", text)
		}
	}
	var expr ast.Expression = b.name(parts[0])
	for _, p := range parts[1:] {
		expr = &ast.AttributeExpression{Base: b.base(p), Object: expr, Member: b.name(p)}
	}
	return expr, nil
}

// typeExpr parses a type annotation: dotted names, None and | unions.
func (b exprBuilder) typeExpr(text string) (ast.Expression, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty type")
	}
	parts := splitTopLevel(text, '|')
	var result ast.Expression
	for _, part := range parts {
		part = stripGenericArgs(strings.TrimSpace(part))
		var operand ast.Expression
		switch part {
		case config.NoneName:
			operand = &ast.Literal{Base: b.base(part), Kind: ast.NoneLiteral, Value: part}
		default:
			var err error
			if operand, err = b.dotted(part); err != nil {
				return nil, err
			}
		}
		if result == nil {
			result = operand
			continue
		}
		result = &ast.BinaryExpression{Base: b.base("|"), Left: result, Operator: "|", Right: operand}
	}
	return result, nil
}

// value parses a default or initializer: literals, dotted names and calls
// without arguments.
func (b exprBuilder) value(text string) (ast.Expression, error) {
	text = strings.TrimSpace(text)
	lit := func(kind ast.LiteralKind) ast.Expression {
		return &ast.Literal{Base: b.base(text), Kind: kind, Value: text}
	}
	switch {
	case text == "":
		return nil, fmt.Errorf("empty value")
	case text == "...":
		return lit(ast.EllipsisLiteral), nil
	case text == config.NoneName:
		return lit(ast.NoneLiteral), nil
	case text == "True" || text == "False":
		return lit(ast.BoolLiteral), nil
	case len(text) >= 2 && (text[0] == '"' || text[0] == '\'') && text[len(text)-1] == text[0]:
		return lit(ast.StringLiteral), nil
	case text == "()":
		return &ast.CollectionLiteral{Base: b.base(text), Kind: ast.TupleCollection}, nil
	case text == "[]":
		return &ast.CollectionLiteral{Base: b.base(text), Kind: ast.ListCollection}, nil
	case text == "{}":
		return &ast.CollectionLiteral{Base: b.base(text), Kind: ast.DictCollection}, nil
	}
	if _, err := strconv.ParseInt(text, 0, 64); err == nil {
		return lit(ast.IntLiteral), nil
	}
	if _, err := strconv.ParseFloat(text, 64); err == nil {
		return lit(ast.FloatLiteral), nil
	}
	if strings.HasSuffix(text, "()") {
		callee, err := b.dotted(strings.TrimSuffix(text, "()"))
		if err != nil {
			return nil, err
		}
		return &ast.CallExpression{Base: b.base(text), Function: callee}, nil
	}
	return b.dotted(text)
}

// splitTopLevel splits on sep outside of brackets.
func splitTopLevel(s string, sep rune) []string {
	var parts []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '[', '(':
			depth++
		case ']', ')':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

func stripGenericArgs(s string) string {
	if i := strings.Index(s, "["); i > 0 && strings.HasSuffix(s, "]") {
		return strings.TrimSpace(s[:i])
	}
	return s
}

// parseParams turns signature entries into parameters, resolving the / and
// * markers into parameter kinds. Parameters are defined in fnScope;
// annotations and defaults are evaluated in declScope.
func parseParams(entries []string, b exprBuilder, fnScope *symbols.Scope) ([]*ast.Parameter, error) {
	var params []*ast.Parameter
	keywordOnly := false
	seen := make(map[string]bool)

	for _, raw := range entries {
		entry := strings.TrimSpace(raw)
		switch entry {
		case "/":
			if keywordOnly || len(params) == 0 {
				return nil, fmt.Errorf("misplaced / in parameter list")
			}
			for _, p := range params {
				if p.Kind == ast.NormalParam {
					p.Kind = ast.PositionalOnlyParam
				}
			}
			continue
		case "*":
			if keywordOnly {
				return nil, fmt.Errorf("duplicate * in parameter list")
			}
			keywordOnly = true
			continue
		}

		kind := ast.NormalParam
		if keywordOnly {
			kind = ast.KeywordOnlyParam
		}
		switch {
		case strings.HasPrefix(entry, "**"):
			kind = ast.KwArgParam
			entry = entry[2:]
		case strings.HasPrefix(entry, "*"):
			if keywordOnly {
				return nil, fmt.Errorf("*%s after keyword-only marker", entry[1:])
			}
			kind = ast.VarArgParam
			keywordOnly = true
			entry = entry[1:]
		}

		name, typ, value := splitDecl(entry)
		if !isIdentifier(name) {
			return nil, fmt.Errorf("invalid parameter %q", raw)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate parameter %q", name)
		}
		seen[name] = true

		param := &ast.Parameter{Base: b.base(name), Name: b.name(name), Kind: kind}
		param.Scope = fnScope
		if typ != "" {
			ann, err := b.typeExpr(typ)
			if err != nil {
				return nil, fmt.Errorf("parameter %s: %w", name, err)
			}
			param.Annotation = ann
		}
		if value != "" {
			if kind == ast.VarArgParam || kind == ast.KwArgParam {
				return nil, fmt.Errorf("parameter %s: variadic parameters cannot have defaults", name)
			}
			def, err := b.value(value)
			if err != nil {
				return nil, fmt.Errorf("parameter %s: %w", name, err)
			}
			param.Default = def
		}
		params = append(params, param)
		fnScope.Define(name, param)
	}
	return params, nil
}
