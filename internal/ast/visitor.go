package ast

// ExpressionVisitor is implemented by every consumer that needs to handle all
// expression kinds. Adding a node kind adds a method here, which every
// implementation then has to provide.
type ExpressionVisitor interface {
	VisitLiteral(e *Literal)
	VisitCollectionLiteral(e *CollectionLiteral)
	VisitParenExpression(e *ParenExpression)
	VisitName(e *Name)
	VisitAttributeExpression(e *AttributeExpression)
	VisitCallExpression(e *CallExpression)
	VisitBinaryExpression(e *BinaryExpression)
	VisitUnaryExpression(e *UnaryExpression)
}

type StatementVisitor interface {
	VisitExpressionStatement(s *ExpressionStatement)
	VisitAssignment(s *Assignment)
	VisitReturnStatement(s *ReturnStatement)
	VisitImportDecl(s *ImportDecl)
	VisitClassDecl(s *ClassDecl)
	VisitFuncDecl(s *FuncDecl)
	VisitFieldDecl(s *FieldDecl)
}

// DeclarationVisitor dispatches over everything a symbol can be declared by.
type DeclarationVisitor interface {
	DeclareImport(d *ImportDecl)
	DeclareClass(d *ClassDecl)
	DeclareFunction(d *FuncDecl)
	DeclareParameter(d *Parameter)
	DeclareAssignment(d *Assignment)
	DeclareField(d *FieldDecl)
}
