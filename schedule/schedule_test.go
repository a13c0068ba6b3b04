package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jsobfuscate/schedule"
	"jsobfuscate/transform"
	"jsobfuscate/visit"
)

// stubTransformer is a minimal transform.Transformer for exercising the
// registry and scheduler without pulling in any built-in transformer.
type stubTransformer struct {
	transform.PrepareFinalizeNoop
	name transform.Name
	deps []transform.Name
}

func (s *stubTransformer) Name() transform.Name         { return s.name }
func (s *stubTransformer) Dependencies() []transform.Name { return s.deps }
func (s *stubTransformer) Visitor(transform.NodeStage) *visit.Visitor { return nil }

func stub(name transform.Name, deps ...transform.Name) schedule.Factory {
	return func() transform.Transformer { return &stubTransformer{name: name, deps: deps} }
}

func TestRegistryBuildDropsInactiveAndUnregisteredNames(t *testing.T) {
	r := schedule.NewRegistry()
	r.Register("A", stub("A"))
	r.Register("B", stub("B"))

	out := r.Build([]transform.Name{"A", "C"})
	require.Len(t, out, 1)
	require.Equal(t, transform.Name("A"), out[0].Name())
}

func TestRegistryBuildPreservesRegistrationOrder(t *testing.T) {
	r := schedule.NewRegistry()
	r.Register("A", stub("A"))
	r.Register("B", stub("B"))
	r.Register("C", stub("C"))

	out := r.Build([]transform.Name{"C", "A", "B"})
	require.Len(t, out, 3)
	require.Equal(t, []transform.Name{"A", "B", "C"}, []transform.Name{out[0].Name(), out[1].Name(), out[2].Name()})
}

func TestRegistryBuildWorksForNamesOutsideTheBuiltinCatalog(t *testing.T) {
	// A caller registering a custom transformer under a name absent
	// from transform.CatalogNames() must still be able to activate it —
	// Build must never depend on the built-in catalog's name list.
	r := schedule.NewRegistry()
	r.Register("CustomOne", stub("CustomOne"))
	r.Register("CustomTwo", stub("CustomTwo"))

	out := r.Build([]transform.Name{"CustomOne", "CustomTwo"})
	require.Len(t, out, 2)
	require.Equal(t, transform.Name("CustomOne"), out[0].Name())
	require.Equal(t, transform.Name("CustomTwo"), out[1].Name())
}

func TestBuildBatchesRespectsDependencyOrder(t *testing.T) {
	a := &stubTransformer{name: "A"}
	b := &stubTransformer{name: "B", deps: []transform.Name{"A"}}
	c := &stubTransformer{name: "C", deps: []transform.Name{"B"}}

	batches, err := schedule.BuildBatches([]transform.Transformer{a, b, c})
	require.NoError(t, err)
	require.Len(t, batches, 3)
	require.Equal(t, transform.Name("A"), batches[0][0].Name())
	require.Equal(t, transform.Name("B"), batches[1][0].Name())
	require.Equal(t, transform.Name("C"), batches[2][0].Name())
}

func TestBuildBatchesGroupsIndependentTransformersTogether(t *testing.T) {
	a := &stubTransformer{name: "A"}
	b := &stubTransformer{name: "B"}
	batches, err := schedule.BuildBatches([]transform.Transformer{a, b})
	require.NoError(t, err)
	require.Len(t, batches, 1)
	require.Len(t, batches[0], 2)
}

func TestBuildBatchesPrunesSoftDependencies(t *testing.T) {
	a := &stubTransformer{name: "A", deps: []transform.Name{"Ghost"}}
	batches, err := schedule.BuildBatches([]transform.Transformer{a})
	require.NoError(t, err)
	require.Len(t, batches, 1)
	require.Len(t, batches[0], 1)
}

func TestBuildBatchesDetectsCycle(t *testing.T) {
	a := &stubTransformer{name: "A", deps: []transform.Name{"B"}}
	b := &stubTransformer{name: "B", deps: []transform.Name{"A"}}

	_, err := schedule.BuildBatches([]transform.Transformer{a, b})
	require.Error(t, err)
	var cycleErr *schedule.CycleError
	require.ErrorAs(t, err, &cycleErr)
	require.ElementsMatch(t, []transform.Name{"A", "B"}, cycleErr.Remaining)
}
