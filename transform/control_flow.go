package transform

import (
	"jsobfuscate/ast"
	"jsobfuscate/visit"
)

// controlFlowFlattening rewrites a straight-line run of simple
// statements inside a block into a state-machine dispatch loop —
// `let state = 0; flattened: while (true) { switch (state) { case 0:
// ...; state = 1; break; ... default: break flattened; } }`, wrapped
// in its own block — the textbook flattening shape referenced by
// SPEC_FULL.md's scenario 5. It only flattens blocks made entirely of
// ExpressionStatement/VariableDeclaration statements: anything
// containing its own control flow (if/for/while/return/break/...) is
// left alone, since reordering those under a synthetic dispatch loop
// would require jump-target analysis this pass does not attempt.
type controlFlowFlattening struct {
	PrepareFinalizeNoop
	gen *nameGenerator
}

// NewControlFlowFlattening builds the built-in ControlFlowFlattening transformer.
func NewControlFlowFlattening() Transformer {
	return &controlFlowFlattening{}
}

func (*controlFlowFlattening) Name() Name           { return NameControlFlowFlattening }
func (*controlFlowFlattening) Dependencies() []Name { return []Name{NameParentification} }

func (t *controlFlowFlattening) Prepare(root *ast.Program) error {
	t.gen = newNameGenerator()
	return nil
}

func (t *controlFlowFlattening) Visitor(stage NodeStage) *visit.Visitor {
	if stage != NodeStageControlFlowFlattening {
		return nil
	}
	return &visit.Visitor{
		Enter: func(n ast.Node, parent ast.Node) visit.Result {
			block, ok := n.(*ast.BlockStatement)
			if !ok || ast.Ignored(n) || len(block.Body) < 3 || !allSimple(block.Body) {
				return visit.Same()
			}
			flattened := t.flatten(block.Body)
			ast.MarkIgnored(flattened, true)
			block.Body = []ast.Statement{flattened}
			return visit.Same()
		},
	}
}

func allSimple(stmts []ast.Statement) bool {
	for _, s := range stmts {
		switch s.(type) {
		case *ast.ExpressionStatement, *ast.VariableDeclaration:
		default:
			return false
		}
	}
	return true
}

// flatten builds the while/switch dispatch loop described above,
// numbering each original statement as one case that falls through to
// `state = n+1; break`, with a final default case that breaks out of
// the loop.
func (t *controlFlowFlattening) flatten(stmts []ast.Statement) ast.Statement {
	state := t.gen.next()
	stateID := func() *ast.Identifier { return &ast.Identifier{Name: state} }

	cases := make([]*ast.SwitchCase, 0, len(stmts)+1)
	for i, s := range stmts {
		body := []ast.Statement{s}
		next := &ast.ExpressionStatement{Expr: &ast.AssignmentExpression{
			Operator: "=",
			Left:     stateID(),
			Right:    &ast.NumberLiteral{Value: float64(i + 1), Raw: itoa(i + 1)},
		}}
		body = append(body, next, &ast.BreakStatement{})
		cases = append(cases, &ast.SwitchCase{
			Test:       &ast.NumberLiteral{Value: float64(i), Raw: itoa(i)},
			Consequent: body,
		})
	}
	cases = append(cases, &ast.SwitchCase{
		Test:       nil, // default
		Consequent: []ast.Statement{&ast.BreakStatement{Label: loopLabel}},
	})

	sw := &ast.SwitchStatement{
		Discriminant: stateID(),
		Cases:        cases,
	}
	loop := &ast.WhileStatement{
		Test: &ast.BooleanLiteral{Value: true},
		Body: &ast.BlockStatement{Body: []ast.Statement{sw}},
	}
	labeled := &ast.LabeledStatement{Label: &ast.Identifier{Name: loopLabelName}, Body: loop}

	init := &ast.VariableDeclaration{
		Kind: ast.DeclLet,
		Declarations: []*ast.VariableDeclarator{
			{ID: stateID(), Init: &ast.NumberLiteral{Value: 0, Raw: "0"}},
		},
	}
	return &ast.BlockStatement{Body: []ast.Statement{init, labeled}}
}

const loopLabelName = "flattened"

var loopLabel = &ast.Identifier{Name: loopLabelName}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
