package obfuscator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"jsobfuscate/obfuscator"
	"jsobfuscate/schedule"
	"jsobfuscate/transform"
	"jsobfuscate/visit"
)

func TestObfuscateWhitespaceOnlySourceYieldsEmptyCode(t *testing.T) {
	// Whitespace-only input still goes through parse/generate (spec
	// §4.4 step 4 short-circuits the node stages, not the pipeline), so
	// the result is the generator's empty-program output, not the
	// original whitespace echoed back.
	res, err := obfuscator.Obfuscate("   \n\t  ", nil)
	require.NoError(t, err)
	require.Equal(t, "", res.Code)
}

func TestObfuscateCommentOnlySourceAlsoShortCircuits(t *testing.T) {
	// A comment-only program parses to an empty body but is not
	// whitespace — it must hit the same short-circuit as a genuinely
	// empty program, not run the full node-stage pipeline.
	res, err := obfuscator.Obfuscate("// just a comment\n", nil)
	require.NoError(t, err)
	require.Equal(t, "", res.Code)
}

func TestObfuscateDefaultPipelineProducesOutput(t *testing.T) {
	src := "function add(a, b) { return a + b; } var result = add(1, 2);"
	res, err := obfuscator.Obfuscate(src, nil)
	require.NoError(t, err)
	require.NotEmpty(t, res.Code)
	require.Contains(t, res.Code, "add", "top-level function binding must stay stable")
	require.Contains(t, res.Code, "result", "top-level variable binding must stay stable")
}

func TestObfuscateWithNoActiveTransformersPreservesStructure(t *testing.T) {
	src := `function greet(name) { return "hi " + name; }`
	res, err := obfuscator.Obfuscate(src, &obfuscator.Options{Transformers: []transform.Name{}})
	require.NoError(t, err)
	require.Contains(t, res.Code, "function greet(name)")
	require.Contains(t, res.Code, `"hi "`)
}

func TestObfuscateEmitsSourceMapWhenRequested(t *testing.T) {
	res, err := obfuscator.Obfuscate("var x = 1;", &obfuscator.Options{SourceMap: true})
	require.NoError(t, err)
	require.NotEmpty(t, res.Map)
	require.True(t, strings.Contains(res.Map, `"version":3`))
}

func TestObfuscateWrapsParseErrors(t *testing.T) {
	_, err := obfuscator.Obfuscate("function (", nil)
	require.Error(t, err)
	var perr *obfuscator.ParseError
	require.ErrorAs(t, err, &perr)
}

// cyclicA/cyclicB are a minimal pair of transformers with a dependency
// cycle, used to exercise Obfuscate's ScheduleCycleError path without
// pulling in any built-in transformer. Both participate in
// NodeStageSimplifying (an empty, non-nil Visitor is enough — the
// scheduler never looks at what a Visitor does), so they are actually
// co-active in the same stage and the cycle is real, not one the
// per-stage normalization would prune away.
type cyclicA struct{ transform.PrepareFinalizeNoop }

func (cyclicA) Name() transform.Name           { return "CycleA" }
func (cyclicA) Dependencies() []transform.Name { return []transform.Name{"CycleB"} }
func (cyclicA) Visitor(stage transform.NodeStage) *visit.Visitor {
	if stage != transform.NodeStageSimplifying {
		return nil
	}
	return &visit.Visitor{}
}

type cyclicB struct{ transform.PrepareFinalizeNoop }

func (cyclicB) Name() transform.Name           { return "CycleB" }
func (cyclicB) Dependencies() []transform.Name { return []transform.Name{"CycleA"} }
func (cyclicB) Visitor(stage transform.NodeStage) *visit.Visitor {
	if stage != transform.NodeStageSimplifying {
		return nil
	}
	return &visit.Visitor{}
}

func TestObfuscateWrapsScheduleCycleError(t *testing.T) {
	reg := schedule.NewRegistry()
	reg.Register("CycleA", func() transform.Transformer { return &cyclicA{} })
	reg.Register("CycleB", func() transform.Transformer { return &cyclicB{} })

	_, err := obfuscator.Obfuscate("var x = 1;", &obfuscator.Options{
		Transformers: []transform.Name{"CycleA", "CycleB"},
		Registry:     reg,
	})
	require.Error(t, err)
	var cerr *obfuscator.ScheduleCycleError
	require.ErrorAs(t, err, &cerr)
}

// neverCoActiveA and neverCoActiveB depend on each other but never
// share a NodeStage Visitor, so the cycle is soft — spec §9's rule that
// a dependency is only meaningful between transformers actually active
// in the same stage. Obfuscate must not raise ScheduleCycleError here.
type neverCoActiveA struct{ transform.PrepareFinalizeNoop }

func (neverCoActiveA) Name() transform.Name           { return "NeverA" }
func (neverCoActiveA) Dependencies() []transform.Name { return []transform.Name{"NeverB"} }
func (neverCoActiveA) Visitor(stage transform.NodeStage) *visit.Visitor {
	if stage != transform.NodeStageConverting {
		return nil
	}
	return &visit.Visitor{}
}

type neverCoActiveB struct{ transform.PrepareFinalizeNoop }

func (neverCoActiveB) Name() transform.Name           { return "NeverB" }
func (neverCoActiveB) Dependencies() []transform.Name { return []transform.Name{"NeverA"} }
func (neverCoActiveB) Visitor(stage transform.NodeStage) *visit.Visitor {
	if stage != transform.NodeStageSimplifying {
		return nil
	}
	return &visit.Visitor{}
}

func TestObfuscateDoesNotRaiseCycleForTransformersNeverCoActiveInAStage(t *testing.T) {
	reg := schedule.NewRegistry()
	reg.Register("NeverA", func() transform.Transformer { return &neverCoActiveA{} })
	reg.Register("NeverB", func() transform.Transformer { return &neverCoActiveB{} })

	_, err := obfuscator.Obfuscate("var x = 1;", &obfuscator.Options{
		Transformers: []transform.Name{"NeverA", "NeverB"},
		Registry:     reg,
	})
	require.NoError(t, err)
}
