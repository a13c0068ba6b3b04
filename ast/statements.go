package ast

// Program is the root of every tree this pipeline produces. Hashbang,
// when non-empty, is printed verbatim by the generator before the body.
// The parser does not set it: the hashbang strip/restore code
// transformers keep the cut `#!...` line themselves.
type Program struct {
	Info
	Body     []Statement
	Hashbang string
	SourceType SourceType
}

type SourceType uint8

const (
	SourceScript SourceType = iota
	SourceModule
)

func (n *Program) NodeKind() Kind { return KindProgram }

type ExpressionStatement struct {
	Info
	Expr Expression
}

func (n *ExpressionStatement) NodeKind() Kind    { return KindExpressionStatement }
func (n *ExpressionStatement) statementNode()    {}

type BlockStatement struct {
	Info
	Body []Statement
}

func (n *BlockStatement) NodeKind() Kind { return KindBlockStatement }
func (n *BlockStatement) statementNode() {}

type EmptyStatement struct{ Info }

func (n *EmptyStatement) NodeKind() Kind { return KindEmptyStatement }
func (n *EmptyStatement) statementNode() {}

type DebuggerStatement struct{ Info }

func (n *DebuggerStatement) NodeKind() Kind { return KindDebuggerStatement }
func (n *DebuggerStatement) statementNode() {}

type DeclarationKind uint8

const (
	DeclVar DeclarationKind = iota
	DeclLet
	DeclConst
)

type VariableDeclaration struct {
	Info
	Kind         DeclarationKind
	Declarations []*VariableDeclarator
}

func (n *VariableDeclaration) NodeKind() Kind { return KindVariableDeclaration }
func (n *VariableDeclaration) statementNode() {}

type VariableDeclarator struct {
	Info
	ID   Pattern
	Init Expression // nil if uninitialized
}

func (n *VariableDeclarator) NodeKind() Kind { return KindVariableDeclarator }

type FunctionDeclaration struct {
	Info
	ID        *Identifier // nil for a default-exported anonymous function
	Params    []Pattern
	Body      *BlockStatement
	Generator bool
	Async     bool
}

func (n *FunctionDeclaration) NodeKind() Kind { return KindFunctionDeclaration }
func (n *FunctionDeclaration) statementNode() {}

type ReturnStatement struct {
	Info
	Argument Expression // nil for bare `return;`
}

func (n *ReturnStatement) NodeKind() Kind { return KindReturnStatement }
func (n *ReturnStatement) statementNode() {}

type IfStatement struct {
	Info
	Test       Expression
	Consequent Statement
	Alternate  Statement // nil if there is no else branch
}

func (n *IfStatement) NodeKind() Kind { return KindIfStatement }
func (n *IfStatement) statementNode() {}

type ForStatement struct {
	Info
	Init   Node // *VariableDeclaration, Expression, or nil
	Test   Expression
	Update Expression
	Body   Statement
}

func (n *ForStatement) NodeKind() Kind { return KindForStatement }
func (n *ForStatement) statementNode() {}

type ForInStatement struct {
	Info
	Left  Node // *VariableDeclaration or Pattern
	Right Expression
	Body  Statement
}

func (n *ForInStatement) NodeKind() Kind { return KindForInStatement }
func (n *ForInStatement) statementNode() {}

type ForOfStatement struct {
	Info
	Left  Node
	Right Expression
	Body  Statement
	Await bool
}

func (n *ForOfStatement) NodeKind() Kind { return KindForOfStatement }
func (n *ForOfStatement) statementNode() {}

type WhileStatement struct {
	Info
	Test Expression
	Body Statement
}

func (n *WhileStatement) NodeKind() Kind { return KindWhileStatement }
func (n *WhileStatement) statementNode() {}

type DoWhileStatement struct {
	Info
	Body Statement
	Test Expression
}

func (n *DoWhileStatement) NodeKind() Kind { return KindDoWhileStatement }
func (n *DoWhileStatement) statementNode() {}

type BreakStatement struct {
	Info
	Label *Identifier // nil for a bare break
}

func (n *BreakStatement) NodeKind() Kind { return KindBreakStatement }
func (n *BreakStatement) statementNode() {}

type ContinueStatement struct {
	Info
	Label *Identifier
}

func (n *ContinueStatement) NodeKind() Kind { return KindContinueStatement }
func (n *ContinueStatement) statementNode() {}

type SwitchStatement struct {
	Info
	Discriminant Expression
	Cases        []*SwitchCase
}

func (n *SwitchStatement) NodeKind() Kind { return KindSwitchStatement }
func (n *SwitchStatement) statementNode() {}

// SwitchCase with a nil Test is the default clause.
type SwitchCase struct {
	Info
	Test       Expression
	Consequent []Statement
}

func (n *SwitchCase) NodeKind() Kind { return KindSwitchCase }

type ThrowStatement struct {
	Info
	Argument Expression
}

func (n *ThrowStatement) NodeKind() Kind { return KindThrowStatement }
func (n *ThrowStatement) statementNode() {}

type TryStatement struct {
	Info
	Block     *BlockStatement
	Handler   *CatchClause    // nil if there is no catch
	Finalizer *BlockStatement // nil if there is no finally
}

func (n *TryStatement) NodeKind() Kind { return KindTryStatement }
func (n *TryStatement) statementNode() {}

type CatchClause struct {
	Info
	Param Pattern // nil for a parameterless catch
	Body  *BlockStatement
}

func (n *CatchClause) NodeKind() Kind { return KindCatchClause }

type LabeledStatement struct {
	Info
	Label *Identifier
	Body  Statement
}

func (n *LabeledStatement) NodeKind() Kind { return KindLabeledStatement }
func (n *LabeledStatement) statementNode() {}

type ClassDeclaration struct {
	Info
	ID         *Identifier // nil for a default-exported anonymous class
	SuperClass Expression
	Body       *ClassBody
}

func (n *ClassDeclaration) NodeKind() Kind { return KindClassDeclaration }
func (n *ClassDeclaration) statementNode() {}

type ClassBody struct {
	Info
	Body []Node // *MethodDefinition or *PropertyDefinition
}

func (n *ClassBody) NodeKind() Kind { return KindClassBody }

type MethodKind uint8

const (
	MethodNormal MethodKind = iota
	MethodConstructor
	MethodGet
	MethodSet
)

type MethodDefinition struct {
	Info
	Key       Expression
	Value     *FunctionExpression
	Kind      MethodKind
	Static    bool
	Computed  bool
}

func (n *MethodDefinition) NodeKind() Kind { return KindMethodDefinition }

type PropertyDefinition struct {
	Info
	Key      Expression
	Value    Expression // nil for a declared-but-uninitialized field
	Static   bool
	Computed bool
}

func (n *PropertyDefinition) NodeKind() Kind { return KindPropertyDefinition }
