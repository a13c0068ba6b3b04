// Package schedule holds the transformer Registry and the batch
// scheduler spec §4.2/§4.3 describes: normalize the active set, prune
// soft (inactive) dependencies, group into dependency-respecting
// batches by topological level, and detect cycles.
package schedule

import "jsobfuscate/transform"

// Factory builds a fresh Transformer instance; the registry stores
// factories rather than shared instances so two concurrent Obfuscate
// calls (spec §5) never share a stateful transformer's memory.
type Factory func() transform.Transformer

// Registry is name -> factory, plus the order names were registered
// in. Callers build one with NewRegistry and Register every transformer
// they want available, built-in or custom; the registry tracks its own
// insertion order so Build never has to be told what order to use —
// the order a caller registers custom transformers in is the order
// they participate in the stable catalog tie-break, exactly like the
// built-in registry's order matches transform.Catalog's.
type Registry struct {
	factories map[transform.Name]Factory
	order     []transform.Name
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[transform.Name]Factory)}
}

// Register adds or replaces the factory for name. Re-registering an
// already-known name updates its factory without moving its position
// in the registry's order.
func (r *Registry) Register(name transform.Name, f Factory) {
	if _, exists := r.factories[name]; !exists {
		r.order = append(r.order, name)
	}
	r.factories[name] = f
}

// Has reports whether name has a registered factory.
func (r *Registry) Has(name transform.Name) bool {
	_, ok := r.factories[name]
	return ok
}

// Names returns every registered name in insertion order.
func (r *Registry) Names() []transform.Name {
	out := make([]transform.Name, len(r.order))
	copy(out, r.order)
	return out
}

// Build instantiates every active name the registry recognizes, in the
// registry's own stable insertion order — that order becomes the
// scheduler's tie-break when levels contain more than one transformer
// (spec §4.3's "stable catalog-order tie-break"). Names the registry
// has no factory for are silently ignored: spec.md treats an
// unrecognized name in the active set the same as any other soft,
// unsatisfiable reference.
func (r *Registry) Build(active []transform.Name) []transform.Transformer {
	activeSet := make(map[transform.Name]bool, len(active))
	for _, n := range active {
		activeSet[n] = true
	}
	out := make([]transform.Transformer, 0, len(active))
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
