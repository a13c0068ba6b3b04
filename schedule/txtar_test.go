package schedule_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"jsobfuscate/schedule"
	"jsobfuscate/transform"
)

// scenario holds one fixture's input transformer graph and its expected
// batch grouping, both parsed from testdata/batches.txtar.
type scenario struct {
	name string
	in   string
	want string
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	raw, err := os.ReadFile("testdata/batches.txtar")
	require.NoError(t, err)

	arc := txtar.Parse(raw)
	byName := make(map[string]*scenario)
	var order []string
	for _, f := range arc.Files {
		base, suffix, ok := strings.Cut(f.Name, ".")
		require.True(t, ok, "fixture file %q must be named <scenario>.in or <scenario>.want", f.Name)

		s, seen := byName[base]
		if !seen {
			s = &scenario{name: base}
			byName[base] = s
			order = append(order, base)
		}
		switch suffix {
		case "in":
			s.in = string(f.Data)
		case "want":
			s.want = string(f.Data)
		default:
			t.Fatalf("fixture file %q has unknown suffix %q", f.Name, suffix)
		}
	}

	scenarios := make([]scenario, 0, len(order))
	for _, name := range order {
		scenarios = append(scenarios, *byName[name])
	}
	return scenarios
}

// parseGraph turns ".in" lines ("Name" or "Name:Dep1,Dep2") into stub
// transformers in catalog (file) order.
func parseGraph(t *testing.T, in string) []transform.Transformer {
	t.Helper()
	var out []transform.Transformer
	for _, line := range strings.Split(strings.TrimSpace(in), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, depList, _ := strings.Cut(line, ":")
		var deps []transform.Name
		if depList != "" {
			for _, d := range strings.Split(depList, ",") {
				deps = append(deps, transform.Name(d))
			}
		}
		out = append(out, &stubTransformer{name: transform.Name(name), deps: deps})
	}
	return out
}

// parseWant turns ".want" lines ("A,B" per batch) into the expected
// per-batch name groupings.
func parseWant(want string) [][]transform.Name {
	var out [][]transform.Name
	for _, line := range strings.Split(strings.TrimSpace(want), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var batch []transform.Name
		for _, n := range strings.Split(line, ",") {
			batch = append(batch, transform.Name(n))
		}
		out = append(out, batch)
	}
	return out
}

// TestBuildBatchesMatchesTxtarScenarios drives schedule.BuildBatches
// against a table of dependency graphs stored as a golang.org/x/tools/txtar
// archive, covering a linear chain, independent transformers batching
// together, a diamond dependency, and a pruned soft (ghost) dependency.
func TestBuildBatchesMatchesTxtarScenarios(t *testing.T) {
	for _, sc := range loadScenarios(t) {
		sc := sc
		t.Run(sc.name, func(t *testing.T) {
			active := parseGraph(t, sc.in)
			batches, err := schedule.BuildBatches(active)
			require.NoError(t, err)

			want := parseWant(sc.want)
			require.Len(t, batches, len(want))
			for i, wantBatch := range want {
				gotNames := make([]transform.Name, len(batches[i]))
				for j, tr := range batches[i] {
					gotNames[j] = tr.Name()
				}
				require.ElementsMatch(t, wantBatch, gotNames, "batch %d in scenario %q", i, sc.name)
			}
		})
	}
}
