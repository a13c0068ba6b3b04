package transform

import (
	"jsobfuscate/ast"
	"jsobfuscate/visit"
)

// simplifying merges adjacent variable declarations of the same kind
// within a block into a single declaration with multiple declarators —
// `let a = 1; let b = 2;` becomes `let a = 1, b = 2;` — the Simplifying
// stage's cleanup pass, per SPEC_FULL.md scenario 6. StringArray
// prepends its declarations in its Finalize hook, after this stage has
// run, so those are not merged.
type simplifying struct {
	PrepareFinalizeNoop
}

// NewSimplifying builds the built-in Simplifying transformer.
func NewSimplifying() Transformer { return &simplifying{} }

func (*simplifying) Name() Name           { return NameSimplifying }
func (*simplifying) Dependencies() []Name { return []Name{NameParentification} }

func (t *simplifying) Visitor(stage NodeStage) *visit.Visitor {
	if stage != NodeStageSimplifying {
		return nil
	}
	merge := func(body []ast.Statement) []ast.Statement {
		out := make([]ast.Statement, 0, len(body))
		for _, s := range body {
			decl, ok := s.(*ast.VariableDeclaration)
			if ok && len(out) > 0 {
				if prev, ok := out[len(out)-1].(*ast.VariableDeclaration); ok && prev.Kind == decl.Kind {
					prev.Declarations = append(prev.Declarations, decl.Declarations...)
					continue
				}
			}
			out = append(out, s)
		}
		return out
	}
	return &visit.Visitor{
		Leave: func(n ast.Node, parent ast.Node) visit.Result {
			switch b := n.(type) {
			case *ast.BlockStatement:
				b.Body = merge(b.Body)
			case *ast.Program:
				b.Body = merge(b.Body)
			}
			return visit.Same()
		},
	}
}
