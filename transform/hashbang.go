package transform

import "strings"

// hashbangStrip and hashbangRestore are the CodeTransformationStage
// pair spec §4.5 runs around the node-stage pipeline: a leading
// `#!/usr/bin/env node` line is not valid ECMAScript and would fail to
// parse, so it is cut from the source text before parsing
// (PreparingTransformers) and spliced back onto the generated output
// after printing (FinalizingTransformers) — SPEC_FULL.md scenario 3's
// round-trip.
type hashbangStrip struct {
	line string
}

// NewHashbangStrip builds the PreparingTransformers pass. Both ends of
// the pair must share state (the cut line) across the whole Obfuscate
// call, so the driver hands the same *hashbangStrip instance to
// NewHashbangRestore when it builds its code-stage registry, before any
// stage runs — see builtinCodeRegistry in the obfuscator package.
func NewHashbangStrip() *hashbangStrip { return &hashbangStrip{} }

func (*hashbangStrip) Name() Name               { return NameHashbangStrip }
func (*hashbangStrip) Stage() CodeStage         { return CodeStagePreparingTransformers }
func (*hashbangStrip) Dependencies() []Name     { return nil }

func (h *hashbangStrip) Apply(source string) (string, error) {
	if !strings.HasPrefix(source, "#!") {
		return source, nil
	}
	nl := strings.IndexByte(source, '\n')
	if nl == -1 {
		h.line = source
		return "", nil
	}
	h.line = source[:nl]
	return source[nl+1:], nil
}

// hashbangRestore re-prepends the line hashbangStrip cut, or is a
// no-op when there was none.
type hashbangRestore struct {
	strip *hashbangStrip
}

// NewHashbangRestore builds the FinalizingTransformers pass paired with strip.
func NewHashbangRestore(strip *hashbangStrip) *hashbangRestore {
	return &hashbangRestore{strip: strip}
}

func (*hashbangRestore) Name() Name           { return NameHashbangRestore }
func (*hashbangRestore) Stage() CodeStage     { return CodeStageFinalizingTransformers }
func (*hashbangRestore) Dependencies() []Name { return nil }

func (h *hashbangRestore) Apply(source string) (string, error) {
	if h.strip == nil || h.strip.line == "" {
		return source, nil
	}
	return h.strip.line + "\n" + source, nil
}
