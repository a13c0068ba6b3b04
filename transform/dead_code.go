package transform

import (
	"jsobfuscate/ast"
	"jsobfuscate/visit"
)

// deadCodeInjection prepends an opaque-predicate guarded junk statement
// to every function body of more than two statements, adapted from the
// teacher's generateJunkStatements in junk_code.go: the "x*x >= 0"
// always-true shape (the only predicate built here), rebuilt directly as *ast.Node
// values instead of go/ast since this pipeline has no source text to
// paste into — injected code is built and attached to the tree, not
// generated as text and re-parsed (that pattern is reserved for
// StringArray, whose decode function genuinely needs a function body
// generated once and reused from many call sites).
type deadCodeInjection struct {
	PrepareFinalizeNoop
	gen *nameGenerator
}

// NewDeadCodeInjection builds the built-in DeadCodeInjection transformer.
func NewDeadCodeInjection() Transformer {
	return &deadCodeInjection{}
}

func (*deadCodeInjection) Name() Name           { return NameDeadCodeInjection }
func (*deadCodeInjection) Dependencies() []Name { return []Name{NameParentification} }

func (t *deadCodeInjection) Prepare(root *ast.Program) error {
	t.gen = newNameGenerator()
	return nil
}

func (t *deadCodeInjection) Visitor(stage NodeStage) *visit.Visitor {
	if stage != NodeStageDeadCodeInjection {
		return nil
	}
	return &visit.Visitor{
		Enter: func(n ast.Node, parent ast.Node) visit.Result {
			if ast.Ignored(n) {
				return visit.Same()
			}
			body := functionBody(n)
			if body == nil {
				return visit.Same()
			}
			if t.shouldSkip(body) {
				return visit.Same()
			}
			junk := t.junkStatement()
			ast.MarkIgnored(junk, true)
			body.Body = append([]ast.Statement{junk}, body.Body...)
			return visit.Same()
		},
	}
}

func functionBody(n ast.Node) *ast.BlockStatement {
	switch f := n.(type) {
	case *ast.FunctionDeclaration:
		return f.Body
	case *ast.FunctionExpression:
		return f.Body
	}
	return nil
}

// shouldSkip mirrors shouldSkipJunkCodeInjection: a body with at most
// two statements is too small to disguise injected junk as ordinary
// code, so it is left alone.
func (t *deadCodeInjection) shouldSkip(body *ast.BlockStatement) bool {
	return len(body.Body) <= 2
}

// junkStatement builds `{ let <v> = 42; if (<v> * <v> >= 0) { <v> = <v> + 1; } }`,
// the first opaque predicate from generateJunkStatements, as a single
// block statement so it can be prepended without touching existing
// statements' positions in the body slice.
func (t *deadCodeInjection) junkStatement() ast.Statement {
	name := t.gen.next()
	id := func() *ast.Identifier { return &ast.Identifier{Name: name} }
	decl := &ast.VariableDeclaration{
		Kind: ast.DeclLet,
		Declarations: []*ast.VariableDeclarator{
			{ID: id(), Init: &ast.NumberLiteral{Value: 42, Raw: "42"}},
		},
	}
	cond := &ast.BinaryExpression{
		Operator: ">=",
		Left: &ast.BinaryExpression{
			Operator: "*",
			Left:     id(),
			Right:    id(),
		},
		Right: &ast.NumberLiteral{Value: 0, Raw: "0"},
	}
	assign := &ast.ExpressionStatement{
		Expr: &ast.AssignmentExpression{
			Operator: "=",
			Left:     id(),
			Right: &ast.BinaryExpression{
				Operator: "+",
				Left:     id(),
				Right:    &ast.NumberLiteral{Value: 1, Raw: "1"},
			},
		},
	}
	ifStmt := &ast.IfStatement{
		Test:       cond,
		Consequent: &ast.BlockStatement{Body: []ast.Statement{assign}},
	}
	return &ast.BlockStatement{Body: []ast.Statement{decl, ifStmt}}
}
