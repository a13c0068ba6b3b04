// Package obfuscator is the stage driver spec §4.4/§4.5 describes:
// given source text and Options, it runs CodeTransformationStage's
// PreparingTransformers, parses, drives the ten NodeTransformationStage
// phases batch by batch through the traversal engine, finalizes, prints,
// and runs CodeTransformationStage's FinalizingTransformers — the same
// numbered-phase shape the teacher's Run method in pipeline.go walks,
// generalized from "collect/map/copy/apply over a Go source tree" to
// "parse/prepare/transform/finalize/generate over one JS program".
package obfuscator

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"jsobfuscate/ast"
	"jsobfuscate/generate"
	"jsobfuscate/logger"
	"jsobfuscate/parse"
	"jsobfuscate/schedule"
	"jsobfuscate/transform"
	"jsobfuscate/traverse"
	"jsobfuscate/visit"
)

// Version identifies this pipeline in MsgVersion log lines.
const Version = "0.1.0"

// Options configures one Obfuscate call.
type Options struct {
	// Filename is used only for diagnostics and the source map.
	Filename   string
	SourceType ast.SourceType

	// Transformers is the active set, by name, in any order; nil means
	// every built-in transformer in Catalog order. A name the registry
	// has no factory for is silently dropped (spec §9's soft-reference
	// treatment, the same rule schedule.Registry.Build applies).
	Transformers []transform.Name
	// Registry lets a caller supply custom transformers alongside or
	// instead of the built-ins; nil means "built-ins only".
	Registry *schedule.Registry

	// CodeTransformers is the active set of whole-source, CodeStage-level
	// passes, by name; nil means the built-in hashbang strip/restore
	// pair. As with Transformers, a name CodeRegistry has no factory for
	// is silently dropped.
	CodeTransformers []transform.Name
	// CodeRegistry lets a caller supply custom code transformers
	// alongside or instead of the built-in hashbang pair; nil means
	// "built-ins only".
	CodeRegistry *schedule.CodeRegistry

	Logger logger.Logger

	Compact   bool
	Comments  bool
	SourceMap bool
}

// New applies defaults to a nil or zero-value Options, mirroring the
// teacher's Obfuscator constructor: a caller only sets the fields that
// matter to them and gets sensible values for the rest.
func New(opts *Options) *Options {
	var o Options
	if opts != nil {
		o = *opts
	}
	if o.Filename == "" {
		o.Filename = "input.js"
	}
	if o.Transformers == nil {
		o.Transformers = transform.CatalogNames()
	}
	if o.Registry == nil {
		o.Registry = builtinRegistry()
	}
	if o.CodeTransformers == nil {
		o.CodeTransformers = []transform.Name{transform.NameHashbangStrip, transform.NameHashbangRestore}
	}
	if o.CodeRegistry == nil {
		o.CodeRegistry = builtinCodeRegistry()
	}
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
	return &o
}

func builtinRegistry() *schedule.Registry {
	r := schedule.NewRegistry()
	for _, f := range transform.Catalog() {
		r.Register(f().Name(), f)
	}
	return r
}

// builtinCodeRegistry wires the hashbang strip/restore pair. Both sides
// close over the same *hashbangStrip instance so the line stripped in
// CodeStagePreparingTransformers is the one re-prepended in
// CodeStageFinalizingTransformers — CodeRegistry.Build instantiates
// each registered name exactly once per call (see its doc comment), so
// this sharing survives the whole Obfuscate call without any
// transformer-level state bleeding across concurrent calls.
func builtinCodeRegistry() *schedule.CodeRegistry {
	strip := transform.NewHashbangStrip()
	restore := transform.NewHashbangRestore(strip)
	r := schedule.NewCodeRegistry()
	r.Register(transform.NameHashbangStrip, func() transform.CodeTransformer { return strip })
	r.Register(transform.NameHashbangRestore, func() transform.CodeTransformer { return restore })
	return r
}

// Result is what one Obfuscate call produces.
type Result struct {
	Code string
	Map  string
}

// Obfuscate runs the whole pipeline over source and returns the
// rewritten program.
func Obfuscate(source string, opts *Options) (*Result, error) {
	o := New(opts)
	log := o.Logger

	log.Info(logger.MsgVersion, logger.String("version", Version))
	log.Info(logger.MsgObfuscationStarted, logger.String("filename", o.Filename))
	log.Info(logger.MsgRandomGeneratorSeed, logger.Int("seed", randomSeed()))

	active := o.Registry.Build(o.Transformers)
	codeActive := o.CodeRegistry.Build(o.CodeTransformers)

	log.Info(logger.MsgCodeTransformationStage,
		logger.String("stage", transform.CodeStagePreparingTransformers.String()))
	stripped, err := applyCodeStage(codeActive, transform.CodeStagePreparingTransformers, source)
	if err != nil {
		return nil, err
	}

	prog, err := parse.Parse(stripped, parse.Options{Filename: o.Filename, SourceType: o.SourceType})
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	for _, t := range active {
		if err := t.Prepare(prog); err != nil {
			return nil, &TransformerFailureError{Transformer: t.Name(), Err: err}
		}
	}

	for _, stage := range transform.OrderedNodeStages() {
		log.Info(logger.MsgNodeTransformationStage, logger.String("stage", stage.String()))

		stageActive := activeForNodeStage(active, stage)
		batches, err := schedule.BuildBatches(stageActive)
		if err != nil {
			return nil, &ScheduleCycleError{Err: err}
		}
		for _, batch := range batches {
			visitors := make([]*visit.Visitor, len(batch))
			for i, t := range batch {
				visitors[i] = t.Visitor(stage)
			}
			fused := visit.Fuse(visitors)
			newRoot, err := traverse.Replace(prog, fused)
			if err != nil {
				return nil, fmt.Errorf("obfuscator: stage %s: %w", stage, err)
			}
			p, ok := newRoot.(*ast.Program)
			if !ok {
				return nil, fmt.Errorf("obfuscator: stage %s replaced the program root with a non-Program node", stage)
			}
			prog = p
		}

		// spec §4.4 step 4: once Initializing has run, an AST with an
		// empty body and no attached comments short-circuits the
		// remaining node stages — Finalize hooks, generate, and
		// FinalizingTransformers still run below.
		if stage == transform.NodeStageInitializing && programIsEmpty(prog) {
			log.Warn(logger.MsgEmptySourceCode)
			break
		}
	}

	for _, t := range active {
		p, err := t.Finalize(prog)
		if err != nil {
			return nil, &TransformerFailureError{Transformer: t.Name(), Err: err}
		}
		prog = p
	}

	log.Info(logger.MsgCodeTransformationStage,
		logger.String("stage", transform.CodeStageFinalizingTransformers.String()))

	out, err := generate.Generate(prog, generate.Options{
		Compact:       o.Compact,
		Comments:      o.Comments,
		SourceMap:     o.SourceMap,
		SourceContent: source,
		SourceFile:    o.Filename,
	})
	if err != nil {
		return nil, &GenerateError{Err: err}
	}

	code, err := applyCodeStage(codeActive, transform.CodeStageFinalizingTransformers, out.Code)
	if err != nil {
		return nil, err
	}

	log.Success(logger.MsgObfuscationCompleted)
	return &Result{Code: code, Map: out.Map}, nil
}

// activeForNodeStage restricts active to the transformers that
// participate in stage — spec §4.3 step 1's "retain only transformers
// whose visitor for this stage is non-null" normalization, performed
// before scheduling so two transformers never co-active in the same
// stage can't spuriously trip cycle detection over a dependency that
// only matters in some other stage.
func activeForNodeStage(active []transform.Transformer, stage transform.NodeStage) []transform.Transformer {
	out := make([]transform.Transformer, 0, len(active))
	for _, t := range active {
		if t.Visitor(stage) != nil {
			out = append(out, t)
		}
	}
	return out
}

// applyCodeStage restricts codeActive to stage, schedules it, and
// composes each batch's Apply calls left-to-right over source (spec
// §4.5).
func applyCodeStage(codeActive []transform.CodeTransformer, stage transform.CodeStage, source string) (string, error) {
	stageActive := schedule.ForStage(codeActive, stage)
	batches, err := schedule.BuildBatches(stageActive)
	if err != nil {
		return "", &ScheduleCycleError{Err: err}
	}
	code := source
	for _, batch := range batches {
		for _, ct := range batch {
			code, err = ct.Apply(code)
			if err != nil {
				return "", &TransformerFailureError{Transformer: ct.Name(), Err: err}
			}
		}
	}
	return code, nil
}

// programIsEmpty reports whether root has no statements and no
// comments attached directly to the Program node — spec §4.4 step 4's
// and §7's empty-program short-circuit condition.
func programIsEmpty(root *ast.Program) bool {
	return len(root.Body) == 0 &&
		len(ast.LeadingComments(root)) == 0 &&
		len(ast.TrailingComments(root)) == 0
}

func randomSeed() int {
	n, err := rand.Int(rand.Reader, big.NewInt(1<<31-1))
	if err != nil {
		return 0
	}
	return int(n.Int64())
}
