package transform

import (
	"jsobfuscate/ast"
	"jsobfuscate/visit"
)

// preparing strips stray EmptyStatements (`;;;`) left over in source,
// the NodeStagePreparing participant every run needs so that stage has
// something to schedule and log even when no other transformer uses it.
type preparing struct {
	PrepareFinalizeNoop
}

// NewPreparing builds the built-in Preparing transformer.
func NewPreparing() Transformer { return &preparing{} }

func (*preparing) Name() Name           { return NamePreparing }
func (*preparing) Dependencies() []Name { return []Name{NameParentification} }

func (t *preparing) Visitor(stage NodeStage) *visit.Visitor {
	if stage != NodeStagePreparing {
		return nil
	}
	strip := func(body []ast.Statement) []ast.Statement {
		out := body[:0:0]
		for _, s := range body {
			if _, ok := s.(*ast.EmptyStatement); ok {
				continue
			}
			out = append(out, s)
		}
		return out
	}
	return &visit.Visitor{
		Leave: func(n ast.Node, parent ast.Node) visit.Result {
			switch b := n.(type) {
			case *ast.BlockStatement:
				b.Body = strip(b.Body)
			case *ast.Program:
				b.Body = strip(b.Body)
			}
			return visit.Same()
		},
	}
}

// finalizing flattens a block statement that is itself the sole
// statement of its parent block (or of the program) into its parent —
// the NodeStageFinalizing participant. A block marked Ignored is kept,
// so the wrapper blocks DeadCodeInjection and ControlFlowFlattening
// build are left as they are.
type finalizing struct {
	PrepareFinalizeNoop
}

// NewFinalizing builds the built-in Finalizing transformer.
func NewFinalizing() Transformer { return &finalizing{} }

func (*finalizing) Name() Name           { return NameFinalizing }
func (*finalizing) Dependencies() []Name { return []Name{NameParentification} }

func (t *finalizing) Visitor(stage NodeStage) *visit.Visitor {
	if stage != NodeStageFinalizing {
		return nil
	}
	flatten := func(body []ast.Statement) []ast.Statement {
		out := make([]ast.Statement, 0, len(body))
		for _, s := range body {
			if inner, ok := s.(*ast.BlockStatement); ok && len(body) == 1 && !ast.Ignored(inner) {
				out = append(out, inner.Body...)
				continue
			}
			out = append(out, s)
		}
		return out
	}
	return &visit.Visitor{
		Leave: func(n ast.Node, parent ast.Node) visit.Result {
			switch b := n.(type) {
			case *ast.BlockStatement:
				b.Body = flatten(b.Body)
			case *ast.Program:
				b.Body = flatten(b.Body)
			}
			return visit.Same()
		},
	}
}
