package transform

import (
	"jsobfuscate/ast"
	"jsobfuscate/traverse"
	"jsobfuscate/visit"
)

// parentification is the Initializing-stage transformer that repopulates
// ast.Node's non-owning Parent back-reference after any structural
// rewrite a prior call left behind. It has no dependencies; every other
// built-in lists it in Dependencies, and as the only built-in with an
// Initializing visitor it is what that stage runs, matching spec §9's "parent back-references... recomputed
// whenever node identity changes".
type parentification struct {
	PrepareFinalizeNoop
}

// NewParentification builds the built-in Initializing-stage transformer.
func NewParentification() Transformer { return &parentification{} }

func (*parentification) Name() Name            { return NameParentification }
func (*parentification) Dependencies() []Name { return nil }

func (*parentification) Visitor(stage NodeStage) *visit.Visitor {
	if stage != NodeStageInitializing {
		return nil
	}
	return &visit.Visitor{
		Enter: func(n ast.Node, parent ast.Node) visit.Result {
			ast.SetParent(n, parent)
			return visit.Same()
		},
	}
}

// parentifyNow runs the parent-back-reference pass directly, bypassing
// the scheduler, for callers (such as tests) that need an
// up-to-date tree without going through a whole Obfuscate call.
func parentifyNow(root ast.Node) error {
	_, err := traverse.Replace(root, NewParentification().Visitor(NodeStageInitializing))
	return err
}

// Parentify is the exported form of parentifyNow.
func Parentify(root ast.Node) error { return parentifyNow(root) }
