package ast

type ExpressionStatement struct {
	Base
	Expression Expression
}

func (es *ExpressionStatement) Accept(v StatementVisitor) { v.VisitExpressionStatement(es) }
func (es *ExpressionStatement) statementNode()            {}

// Assignment represents target[: annotation] [= value]. When the target is a
// bare name the assignment also declares it.
type Assignment struct {
	Base
	Target     Expression
	Annotation Expression // Optional
	Value      Expression // Optional
}

func (a *Assignment) Accept(v StatementVisitor)      { v.VisitAssignment(a) }
func (a *Assignment) AcceptDecl(v DeclarationVisitor) { v.DeclareAssignment(a) }
func (a *Assignment) statementNode()                 {}
func (a *Assignment) DeclName() string {
	if n, ok := a.Target.(*Name); ok {
		return n.Value
	}
	return ""
}

type ReturnStatement struct {
	Base
	Value Expression // Optional
}

func (r *ReturnStatement) Accept(v StatementVisitor) { v.VisitReturnStatement(r) }
func (r *ReturnStatement) statementNode()            {}
