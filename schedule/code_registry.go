package schedule

import "jsobfuscate/transform"

// CodeFactory builds a fresh CodeTransformer instance, mirroring
// Factory for the whole-source passes spec §4.5 runs outside the
// node-stage list.
type CodeFactory func() transform.CodeTransformer

// CodeRegistry is Registry's counterpart for CodeTransformer: name ->
// factory, plus insertion order for the same stable tie-break.
type CodeRegistry struct {
	factories map[transform.Name]CodeFactory
	order     []transform.Name
}

// NewCodeRegistry returns an empty registry.
func NewCodeRegistry() *CodeRegistry {
	return &CodeRegistry{factories: make(map[transform.Name]CodeFactory)}
}

// Register adds or replaces the factory for name.
func (r *CodeRegistry) Register(name transform.Name, f CodeFactory) {
	if _, exists := r.factories[name]; !exists {
		r.order = append(r.order, name)
	}
	r.factories[name] = f
}

// Has reports whether name has a registered factory.
func (r *CodeRegistry) Has(name transform.Name) bool {
	_, ok := r.factories[name]
	return ok
}

// Build instantiates every active name the registry recognizes, in the
// registry's own insertion order. Build returns transformers for every
// CodeStage together; callers filter by Stage() for the stage they are
// currently driving, so a Preparing/Finalizing pair sharing state
// across both stages (hashbangStrip/hashbangRestore) is instantiated
// exactly once per Obfuscate call.
func (r *CodeRegistry) Build(active []transform.Name) []transform.CodeTransformer {
	activeSet := make(map[transform.Name]bool, len(active))
	for _, n := range active {
		activeSet[n] = true
	}
	out := make([]transform.CodeTransformer, 0, len(active))
	for _, name := range r.order {
		if !activeSet[name] {
			continue
		}
		f, ok := r.factories[name]
		if !ok {
			continue
		}
		out = append(out, f())
	}
	return out
}

// ForStage filters active down to the CodeTransformers belonging to stage.
func ForStage(active []transform.CodeTransformer, stage transform.CodeStage) []transform.CodeTransformer {
	out := make([]transform.CodeTransformer, 0, len(active))
	for _, t := range active {
		if t.Stage() == stage {
			out = append(out, t)
		}
	}
	return out
}
