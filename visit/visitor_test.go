package visit_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"jsobfuscate/ast"
	"jsobfuscate/visit"
)

func TestFuseSingleVisitorPassesThrough(t *testing.T) {
	v := &visit.Visitor{Enter: func(n ast.Node, _ ast.Node) visit.Result { return visit.Same() }}
	require.Same(t, v, visit.Fuse([]*visit.Visitor{v}))
}

func TestFuseRunsEachEnterInOrder(t *testing.T) {
	var order []string
	mk := func(name string) *visit.Visitor {
		return &visit.Visitor{Enter: func(n ast.Node, _ ast.Node) visit.Result {
			order = append(order, name)
			return visit.Same()
		}}
	}
	fused := visit.Fuse([]*visit.Visitor{mk("a"), mk("b"), mk("c")})
	fused.Enter(&ast.Identifier{Name: "x"}, nil)
	require.Equal(t, []string{"a", "b", "c"}, order)
}

func TestFuseThreadsReplacementsThroughLaterVisitors(t *testing.T) {
	first := &visit.Visitor{Enter: func(n ast.Node, _ ast.Node) visit.Result {
		return visit.Replace(&ast.Identifier{Name: "replaced"})
	}}
	var seen string
	second := &visit.Visitor{Enter: func(n ast.Node, _ ast.Node) visit.Result {
		seen = n.(*ast.Identifier).Name
		return visit.Same()
	}}
	fused := visit.Fuse([]*visit.Visitor{first, second})
	res := fused.Enter(&ast.Identifier{Name: "original"}, nil)
	require.Equal(t, "replaced", seen)
	require.Equal(t, visit.ActionReplace, res.Action)
	require.Equal(t, "replaced", res.Node.(*ast.Identifier).Name)
}

func TestFuseShortCircuitsOnAbort(t *testing.T) {
	wantErr := errors.New("boom")
	first := &visit.Visitor{Enter: func(n ast.Node, _ ast.Node) visit.Result { return visit.Abort(wantErr) }}
	ranSecond := false
	second := &visit.Visitor{Enter: func(n ast.Node, _ ast.Node) visit.Result {
		ranSecond = true
		return visit.Same()
	}}
	fused := visit.Fuse([]*visit.Visitor{first, second})
	res := fused.Enter(&ast.Identifier{Name: "x"}, nil)
	require.Equal(t, visit.ActionAbort, res.Action)
	require.Equal(t, wantErr, res.Err)
	require.False(t, ranSecond)
}
