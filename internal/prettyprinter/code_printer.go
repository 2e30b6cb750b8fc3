package prettyprinter

import (
	"bytes"
	"strings"

	"github.com/funvibe/typeeval/internal/ast"
	"github.com/funvibe/typeeval/internal/typesystem"
)

// --- Code Printer (output looks like source code) ---

// Operator precedence (higher = binds tighter)
var operatorPrecedence = map[string]int{
	"or":                   1,
	"and":                  2,
	"not":                  3,
	"in":                   4,
	"not in":               4,
	"is":                   4,
	"is not":               4,
	"==":                   4,
	"!=":                   4,
	"<":                    4,
	">":                    4,
	"<=":                   4,
	">=":                   4,
	ast.ConnectOperator:    4,
	ast.DisconnectOperator: 4,
	"|":                    5,
	"^":                    6,
	"&":                    7,
	"<<":                   8,
	">>":                   8,
	"+":                    9,
	"-":                    9,
	"*":                    10,
	"/":                    10,
	"//":                   10,
	"%":                    10,
	"@":                    10,
	"**":                   12, // Power (right-assoc)
}

// Unary operators other than not bind tighter than * and looser than **.
const unaryPrecedence = 11

func getPrecedence(op string) int {
	if p, ok := operatorPrecedence[op]; ok {
		return p
	}
	return 13 // Default high precedence for unknown ops
}

var rightAssoc = map[string]bool{
	"**": true,
}

// TypeLookup returns the computed type of a declaration, if any.
type TypeLookup func(node ast.Node) (typesystem.Type, bool)

type CodePrinter struct {
	buf    bytes.Buffer
	indent int

	// Types, when set, adds the computed type of every declaration as a
	// trailing comment.
	Types TypeLookup
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *CodePrinter) writeln() {
	p.buf.WriteString("\n")
}

func (p *CodePrinter) writeIndent() {
	p.buf.WriteString(strings.Repeat("    ", p.indent))
}

func (p *CodePrinter) typeComment(node ast.Node) {
	if p.Types == nil {
		return
	}
	if t, ok := p.Types(node); ok {
		p.write("  # " + t.String())
	}
}

// PrintModule renders a whole module.
func (p *CodePrinter) PrintModule(mod *ast.Module) {
	p.write("# module " + mod.Name)
	p.writeln()
	p.printBlock(mod.Body)
}

func (p *CodePrinter) printBlock(stmts []ast.Statement) {
	for _, stmt := range stmts {
		p.writeIndent()
		if stmt == nil {
			p.write("<???>")
		} else {
			stmt.Accept(p)
		}
		p.writeln()
	}
}

func (p *CodePrinter) printBody(owner ast.Node, stmts []ast.Statement) {
	p.write(":")
	p.typeComment(owner)
	p.writeln()
	p.indent++
	if len(stmts) == 0 {
		p.writeIndent()
		p.write("...")
		p.writeln()
	} else {
		p.printBlock(stmts)
	}
	p.indent--
	// printBlock terminates the last line; the caller adds one more.
	p.buf.Truncate(p.buf.Len() - 1)
}

// printExpr prints an expression, adding parentheses only if needed
func (p *CodePrinter) printExpr(expr ast.Expression, parentPrec int, isRight bool) {
	if expr == nil {
		p.write("<???>")
		return
	}
	switch e := expr.(type) {
	case *ast.BinaryExpression:
		prec := getPrecedence(e.Operator)
		needParens := prec < parentPrec
		if prec == parentPrec {
			if isRight && !rightAssoc[e.Operator] {
				needParens = true
			} else if !isRight && rightAssoc[e.Operator] {
				needParens = true
			}
		}
		if needParens {
			p.write("(")
		}
		p.printBinary(e, prec)
		if needParens {
			p.write(")")
		}
	case *ast.UnaryExpression:
		prec := unaryPrecedence
		if e.Operator == "not" {
			prec = getPrecedence("not")
		}
		if prec < parentPrec {
			p.write("(")
			defer p.write(")")
		}
		p.write(e.Operator)
		if e.Operator == "not" {
			p.write(" ")
		}
		p.printExpr(e.Operand, prec, true)
	default:
		expr.Accept(p)
	}
}

func (p *CodePrinter) printBinary(e *ast.BinaryExpression, prec int) {
	p.printExpr(e.Left, prec, false)
	if e.IsGraphOperator() && e.Edge != nil {
		p.write(" ")
		p.printEdge(e)
		p.write(" ")
	} else {
		p.write(" " + e.Operator + " ")
	}
	p.printExpr(e.Right, prec, true)
}

// printEdge renders a typed edge: ++>:Road:length=3:++>
func (p *CodePrinter) printEdge(e *ast.BinaryExpression) {
	arrow := "++>"
	prefix := ""
	if e.Operator == ast.DisconnectOperator {
		arrow = "-->"
		prefix = "del "
	}
	p.write(prefix + arrow + ":")
	if e.Edge.Type != nil {
		p.printExpr(e.Edge.Type, 0, false)
	}
	for _, a := range e.Edge.Assignments {
		p.write(":" + a.Name + "=")
		p.printExpr(a.Value, 0, false)
	}
	p.write(":" + arrow)
}

func (p *CodePrinter) printArgument(arg *ast.Argument) {
	switch arg.Kind {
	case ast.NamedArgument:
		p.write(arg.Name + "=")
	case ast.UnpackArgument:
		p.write("*")
	case ast.UnpackMapArgument:
		p.write("**")
	}
	p.printExpr(arg.Value, 0, false)
}

func (p *CodePrinter) printList(exprs []ast.Expression) {
	for i, e := range exprs {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(e, 0, false)
	}
}

// Expressions

func (p *CodePrinter) VisitLiteral(n *ast.Literal) {
	p.write(n.Value)
}

func (p *CodePrinter) VisitCollectionLiteral(n *ast.CollectionLiteral) {
	switch n.Kind {
	case ast.TupleCollection:
		p.write("(")
		p.printList(n.Elements)
		if len(n.Elements) == 1 {
			p.write(",")
		}
		p.write(")")
	case ast.ListCollection:
		p.write("[")
		p.printList(n.Elements)
		p.write("]")
	case ast.DictCollection:
		p.write("{")
		for i, v := range n.Elements {
			if i > 0 {
				p.write(", ")
			}
			if i < len(n.Keys) {
				p.printExpr(n.Keys[i], 0, false)
				p.write(": ")
			}
			p.printExpr(v, 0, false)
		}
		p.write("}")
	}
}

func (p *CodePrinter) VisitParenExpression(n *ast.ParenExpression) {
	p.write("(")
	p.printExpr(n.Inner, 0, false)
	p.write(")")
}

func (p *CodePrinter) VisitName(n *ast.Name) {
	p.write(n.Value)
}

func (p *CodePrinter) VisitAttributeExpression(n *ast.AttributeExpression) {
	p.printExpr(n.Object, getPrecedence("."), false)
	p.write("." + n.Member.String())
}

func (p *CodePrinter) VisitCallExpression(n *ast.CallExpression) {
	p.printExpr(n.Function, getPrecedence("()"), false)
	p.write("(")
	for i, arg := range n.Arguments {
		if i > 0 {
			p.write(", ")
		}
		p.printArgument(arg)
	}
	p.write(")")
}

func (p *CodePrinter) VisitBinaryExpression(n *ast.BinaryExpression) {
	p.printExpr(n, 0, false)
}

func (p *CodePrinter) VisitUnaryExpression(n *ast.UnaryExpression) {
	p.printExpr(n, 0, false)
}

// Statements

func (p *CodePrinter) VisitExpressionStatement(n *ast.ExpressionStatement) {
	p.printExpr(n.Expression, 0, false)
}

func (p *CodePrinter) VisitAssignment(n *ast.Assignment) {
	p.printExpr(n.Target, 0, false)
	if n.Annotation != nil {
		p.write(": ")
		p.printExpr(n.Annotation, 0, false)
	}
	if n.Value != nil {
		p.write(" = ")
		p.printExpr(n.Value, 0, false)
	}
	p.typeComment(n)
}

func (p *CodePrinter) VisitReturnStatement(n *ast.ReturnStatement) {
	p.write("return")
	if n.Value != nil {
		p.write(" ")
		p.printExpr(n.Value, 0, false)
	}
}

func (p *CodePrinter) VisitImportDecl(n *ast.ImportDecl) {
	p.write("import " + n.Path)
	if n.Alias != nil {
		p.write(" as " + n.Alias.Value)
	}
	p.typeComment(n)
}

func (p *CodePrinter) VisitClassDecl(n *ast.ClassDecl) {
	p.write(n.Kind.String() + " " + n.DeclName())
	if len(n.Bases) > 0 {
		p.write("(")
		p.printList(n.Bases)
		p.write(")")
	}
	p.printBody(n, n.Body)
}

func (p *CodePrinter) VisitFuncDecl(n *ast.FuncDecl) {
	if n.IsStatic {
		p.write("static ")
	}
	p.write("def " + n.DeclName() + "(")
	p.printParams(n.Params)
	p.write(")")
	if n.Returns != nil {
		p.write(" -> ")
		p.printExpr(n.Returns, 0, false)
	}
	p.printBody(n, n.Body)
}

// printParams inserts the / and * markers implied by parameter kinds.
func (p *CodePrinter) printParams(params []*ast.Parameter) {
	first := true
	sep := func() {
		if !first {
			p.write(", ")
		}
		first = false
	}
	starred := false
	for i, param := range params {
		if param.Kind != ast.PositionalOnlyParam && i > 0 && params[i-1].Kind == ast.PositionalOnlyParam {
			sep()
			p.write("/")
		}
		switch param.Kind {
		case ast.VarArgParam:
			starred = true
			sep()
			p.write("*")
		case ast.KeywordOnlyParam:
			if !starred {
				starred = true
				sep()
				p.write("*")
			}
			sep()
		case ast.KwArgParam:
			sep()
			p.write("**")
		default:
			sep()
		}
		p.write(param.DeclName())
		if param.Annotation != nil {
			p.write(": ")
			p.printExpr(param.Annotation, 0, false)
		}
		if param.Default != nil {
			p.write(" = ")
			p.printExpr(param.Default, 0, false)
		}
	}
	if n := len(params); n > 0 && params[n-1].Kind == ast.PositionalOnlyParam {
		sep()
		p.write("/")
	}
}

func (p *CodePrinter) VisitFieldDecl(n *ast.FieldDecl) {
	p.write("has " + n.DeclName())
	if n.Annotation != nil {
		p.write(": ")
		p.printExpr(n.Annotation, 0, false)
	}
	if n.Default != nil {
		p.write(" = ")
		p.printExpr(n.Default, 0, false)
	}
	p.typeComment(n)
}

// Print renders a module without type comments.
func Print(mod *ast.Module) string {
	p := NewCodePrinter()
	p.PrintModule(mod)
	return p.String()
}

// PrintExpression renders a single expression.
func PrintExpression(expr ast.Expression) string {
	p := NewCodePrinter()
	p.printExpr(expr, 0, false)
	return p.String()
}
