package schedule

import (
	"fmt"
	"sort"

	"jsobfuscate/transform"
)

// CycleError is spec §4.3's ScheduleCycle: the active set's dependency
// graph, after pruning soft dependencies, still has a cycle and no
// batch order can satisfy it.
type CycleError struct {
	Remaining []transform.Name
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("schedule: dependency cycle among transformers %v", e.Remaining)
}

// Scheduled is the minimal shape the batch scheduler needs: a stable
// Name and the Names it depends on. transform.Transformer (node stages)
// and transform.CodeTransformer (whole-program code stages) both
// satisfy it, so the same scheduler orders both (spec §4.5: "the
// scheduler still builds batches" for code transformers too).
type Scheduled interface {
	Name() transform.Name
	Dependencies() []transform.Name
}

// BuildBatches groups active (already instantiated, in stable catalog
// order — see Registry.Build/CodeRegistry.Build) into dependency-
// respecting batches: every transformer in batch N depends only on
// transformers in batches < N, and within a batch transformers are
// listed in catalog order (spec §4.3's "stable catalog-order
// tie-break"). Soft dependencies — a name in Dependencies() that does
// not correspond to a transformer present in active — are pruned
// before leveling, per spec §4.3/§9's decision that dependencies are
// soft.
func BuildBatches[T Scheduled](active []T) ([][]T, error) {
	index := make(map[transform.Name]int, len(active))
	for i, t := range active {
		index[t.Name()] = i
	}

	// normalize + prune: keep only dependency names that resolve to a
	// transformer actually present in this active set.
	deps := make([][]int, len(active))
	for i, t := range active {
		for _, d := range t.Dependencies() {
			if j, ok := index[d]; ok && j != i {
				deps[i] = append(deps[i], j)
			}
		}
	}

	placed := make([]int, len(active)) // batch index once placed, -1 until then
	for i := range placed {
		placed[i] = -1
	}

	var batches [][]T
	remaining := len(active)
	level := 0
	for remaining > 0 {
		var batchIdx []int
		for i := range active {
			if placed[i] != -1 {
				continue
			}
			ready := true
			for _, d := range deps[i] {
				if placed[d] == -1 {
					ready = false
					break
				}
			}
			if ready {
				batchIdx = append(batchIdx, i)
			}
		}
		if len(batchIdx) == 0 {
			var stuck []transform.Name
			for i, t := range active {
				if placed[i] == -1 {
					stuck = append(stuck, t.Name())
				}
			}
			return nil, &CycleError{Remaining: stuck}
		}
		sort.Ints(batchIdx) // catalog order is index order already
		batch := make([]T, len(batchIdx))
		for k, i := range batchIdx {
			batch[k] = active[i]
			placed[i] = level
		}
		batches = append(batches, batch)
		remaining -= len(batchIdx)
		level++
	}
	return batches, nil
}
