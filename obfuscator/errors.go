package obfuscator

import (
	"fmt"

	"jsobfuscate/transform"
)

// ScheduleCycleError wraps a schedule.CycleError so a caller can log or
// report it without reaching into the schedule package directly. It does
// not record the stage in which the cycle was detected; the wrapped
// CycleError names the transformers that could not be scheduled.
type ScheduleCycleError struct {
	Err error
}

func (e *ScheduleCycleError) Error() string {
	return fmt.Sprintf("obfuscator: cannot schedule transformers: %v", e.Err)
}

func (e *ScheduleCycleError) Unwrap() error { return e.Err }

// ParseError wraps a failure from the parse façade.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("obfuscator: parse: %v", e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// GenerateError wraps a failure from the generate façade.
type GenerateError struct {
	Err error
}

func (e *GenerateError) Error() string { return fmt.Sprintf("obfuscator: generate: %v", e.Err) }
func (e *GenerateError) Unwrap() error { return e.Err }

// TransformerFailureError wraps an error returned by a Transformer's
// Prepare or Finalize hook or by a CodeTransformer's Apply, naming which
// transformer failed. An Abort from a visitor during a node stage is not
// wrapped in this type: Obfuscate returns it wrapped with the stage name
// only, without naming a transformer.
type TransformerFailureError struct {
	Transformer transform.Name
	Err         error
}

func (e *TransformerFailureError) Error() string {
	return fmt.Sprintf("obfuscator: transformer %s failed: %v", e.Transformer, e.Err)
}

func (e *TransformerFailureError) Unwrap() error { return e.Err }
