// Package transform defines the Transformer contract, the closed stage
// enumerations the stage driver sequences, and the built-in catalog of
// transformer constructors.
package transform

import (
	"jsobfuscate/ast"
	"jsobfuscate/visit"
)

// Name identifies a transformer, and Dependencies are expressed in
// terms of it. The constants below name the built-ins; the type does
// not restrict values to them, and a schedule.Registry accepts a
// transformer under any other Name as well.
type Name string

const (
	NameParentification       Name = "Parentification"
	NamePreparing             Name = "Preparing"
	NameDeadCodeInjection     Name = "DeadCodeInjection"
	NameControlFlowFlattening Name = "ControlFlowFlattening"
	NameRenameProperties      Name = "RenameProperties"
	NameConverting            Name = "Converting"
	NameRenameIdentifiers     Name = "RenameIdentifiers"
	NameStringArray           Name = "StringArray"
	NameSimplifying           Name = "Simplifying"
	NameFinalizing            Name = "Finalizing"

	NameHashbangStrip   Name = "HashbangStrip"
	NameHashbangRestore Name = "HashbangRestore"
)

// CodeStage identifies one of the two whole-program passes the stage
// driver runs outside the per-node stage list (spec §4.4, §4.5).
type CodeStage uint8

const (
	CodeStagePreparingTransformers CodeStage = iota
	CodeStageFinalizingTransformers
)

func (s CodeStage) String() string {
	switch s {
	case CodeStagePreparingTransformers:
		return "PreparingTransformers"
	case CodeStageFinalizingTransformers:
		return "FinalizingTransformers"
	default:
		return "UnknownCodeStage"
	}
}

// NodeStage identifies one of the ten ordered per-node stages the stage
// driver walks the tree through (spec §4.4/§4.5), in the fixed order
// OrderedNodeStages returns.
type NodeStage uint8

const (
	NodeStageInitializing NodeStage = iota
	NodeStagePreparing
	NodeStageDeadCodeInjection
	NodeStageControlFlowFlattening
	NodeStageRenameProperties
	NodeStageConverting
	NodeStageRenameIdentifiers
	NodeStageStringArray
	NodeStageSimplifying
	NodeStageFinalizing
)

func (s NodeStage) String() string {
	switch s {
	case NodeStageInitializing:
		return "Initializing"
	case NodeStagePreparing:
		return "Preparing"
	case NodeStageDeadCodeInjection:
		return "DeadCodeInjection"
	case NodeStageControlFlowFlattening:
		return "ControlFlowFlattening"
	case NodeStageRenameProperties:
		return "RenameProperties"
	case NodeStageConverting:
		return "Converting"
	case NodeStageRenameIdentifiers:
		return "RenameIdentifiers"
	case NodeStageStringArray:
		return "StringArray"
	case NodeStageSimplifying:
		return "Simplifying"
	case NodeStageFinalizing:
		return "Finalizing"
	default:
		return "UnknownNodeStage"
	}
}

// OrderedNodeStages is the fixed sequence the stage driver walks,
// spec §4.4's ten NodeTransformationStage phases.
func OrderedNodeStages() []NodeStage {
	return []NodeStage{
		NodeStageInitializing,
		NodeStagePreparing,
		NodeStageDeadCodeInjection,
		NodeStageControlFlowFlattening,
		NodeStageRenameProperties,
		NodeStageConverting,
		NodeStageRenameIdentifiers,
		NodeStageStringArray,
		NodeStageSimplifying,
		NodeStageFinalizing,
	}
}

// Transformer is implemented by every obfuscation pass, built-in or
// supplied by a caller. A Transformer may return a nil *visit.Visitor
// for a stage it does not participate in; Prepare/Finalize default to
// no-ops via PrepareFinalizeNoop, embedded by every built-in.
type Transformer interface {
	Name() Name
	Dependencies() []Name
	Visitor(stage NodeStage) *visit.Visitor

	// Prepare runs once per Obfuscate call, before any traversal,
	// letting a stateful transformer (StringArray collecting a key,
	// RenameIdentifiers priming its generator) reset per-call state —
	// spec §9's "stateful transformers reset per call".
	Prepare(root *ast.Program) error
	// Finalize runs once per Obfuscate call, after the last node
	// stage, letting a transformer splice whole-program output (the
	// string array literal StringArray prepends, for example).
	Finalize(root *ast.Program) (*ast.Program, error)
}

// PrepareFinalizeNoop is embedded by transformers that need neither
// hook, so they only have to implement Name/Dependencies/Visitor.
type PrepareFinalizeNoop struct{}

func (PrepareFinalizeNoop) Prepare(*ast.Program) error { return nil }
func (PrepareFinalizeNoop) Finalize(root *ast.Program) (*ast.Program, error) {
	return root, nil
}

// CodeTransformer is implemented by whole-source passes spec §4.5 runs
// outside the node-stage list, grouped by which CodeStage they belong
// to. Dependencies are expressed the same way Transformer's are: the
// scheduler builds batches for code transformers exactly as it does for
// node transformers, composing a batch's Apply calls left-to-right
// (spec §4.5's "applied as a left-to-right function composition").
type CodeTransformer interface {
	Name() Name
	Stage() CodeStage
	Dependencies() []Name
	Apply(source string) (string, error)
}
