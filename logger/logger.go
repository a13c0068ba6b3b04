// Package logger defines the pipeline's closed logging contract (spec
// §6) and a go.uber.org/zap-backed default implementation: New wraps a
// caller's zap logger, and Nop wraps zap.NewNop().
package logger

import "go.uber.org/zap"

// MsgID is the closed set of message identifiers the pipeline may log
// (spec §6). There is no free-form logging anywhere in this module —
// every call site names one of these.
type MsgID uint8

const (
	MsgVersion MsgID = iota
	MsgObfuscationStarted
	MsgRandomGeneratorSeed
	MsgCodeTransformationStage
	MsgNodeTransformationStage
	MsgEmptySourceCode
	MsgObfuscationCompleted
)

func (id MsgID) String() string {
	switch id {
	case MsgVersion:
		return "version"
	case MsgObfuscationStarted:
		return "obfuscation_started"
	case MsgRandomGeneratorSeed:
		return "random_generator_seed"
	case MsgCodeTransformationStage:
		return "code_transformation_stage"
	case MsgNodeTransformationStage:
		return "node_transformation_stage"
	case MsgEmptySourceCode:
		return "empty_source_code"
	case MsgObfuscationCompleted:
		return "obfuscation_completed"
	default:
		return "unknown"
	}
}

// Field is a structured key/value pair attached to a logged message;
// callers build these with String/Int/... and Logger implementations
// translate them into their own backend's field type.
type Field = zap.Field

// String, Int, and Err mirror zap's field constructors so callers never
// need to import zap directly just to log.
func String(key, val string) Field { return zap.String(key, val) }
func Int(key string, val int) Field { return zap.Int(key, val) }
func Err(err error) Field          { return zap.Error(err) }

// Logger is the closed interface spec §6 describes: three severities,
// each keyed by a MsgID rather than a free-form string.
type Logger interface {
	Info(id MsgID, fields ...Field)
	Warn(id MsgID, fields ...Field)
	Success(id MsgID, fields ...Field)
}

type zapLogger struct {
	z *zap.Logger
}

// New wraps an existing *zap.Logger. Passing nil is equivalent to
// calling Nop.
func New(z *zap.Logger) Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &zapLogger{z: z}
}

// Nop returns a Logger that discards everything, the default when a
// caller of obfuscator.Obfuscate does not supply one.
func Nop() Logger { return New(nil) }

func (l *zapLogger) Info(id MsgID, fields ...Field) {
	l.z.Info(id.String(), fields...)
}

func (l *zapLogger) Warn(id MsgID, fields ...Field) {
	l.z.Warn(id.String(), fields...)
}

func (l *zapLogger) Success(id MsgID, fields ...Field) {
	// zap has no "success" level; this pipeline's notion of success is
	// an Info entry tagged so a structured-log consumer can filter on
	// it, mirroring how esbuild's logger.go keeps a closed MsgKind
	// rather than inventing a new zap level.
	l.z.Info(id.String(), append(fields, zap.Bool("success", true))...)
}
