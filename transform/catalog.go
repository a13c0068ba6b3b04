package transform

// Catalog returns the constructor of every built-in
// NodeTransformationStage transformer, in the stable order the
// scheduler falls back to when a batch contains more than one
// transformer (spec §4.3). Callers register these with a
// schedule.Registry; this package does not depend on schedule to keep
// the dependency direction one-way (schedule depends on transform, not
// the reverse).
func Catalog() []func() Transformer {
	return []func() Transformer{
		NewParentification,
		NewPreparing,
		NewDeadCodeInjection,
		NewControlFlowFlattening,
		NewRenameProperties,
		NewConverting,
		NewRenameIdentifiers,
		NewStringArray,
		NewSimplifying,
		NewFinalizing,
	}
}

// CatalogNames returns the Name of every built-in, in the same order
// as Catalog — the default active set a caller passes to
// schedule.Registry.Build when it wants every built-in transformer
// enabled.
func CatalogNames() []Name {
	names := make([]Name, 0, len(Catalog()))
	for _, f := range Catalog() {
		names = append(names, f().Name())
	}
	return names
}
