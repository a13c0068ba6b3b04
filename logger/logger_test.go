package logger_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"jsobfuscate/logger"
)

func TestMsgIDStringCoversEveryID(t *testing.T) {
	ids := []logger.MsgID{
		logger.MsgVersion,
		logger.MsgObfuscationStarted,
		logger.MsgRandomGeneratorSeed,
		logger.MsgCodeTransformationStage,
		logger.MsgNodeTransformationStage,
		logger.MsgEmptySourceCode,
		logger.MsgObfuscationCompleted,
	}
	seen := make(map[string]bool)
	for _, id := range ids {
		s := id.String()
		require.NotEqual(t, "unknown", s)
		require.False(t, seen[s], "duplicate MsgID rendering %q", s)
		seen[s] = true
	}
}

func TestMsgIDStringUnknownFallback(t *testing.T) {
	require.Equal(t, "unknown", logger.MsgID(255).String())
}

func newObserved() (logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	return logger.New(zap.New(core)), logs
}

func TestLoggerInfoLogsAtInfoLevel(t *testing.T) {
	log, logs := newObserved()
	log.Info(logger.MsgObfuscationStarted, logger.String("filename", "a.js"))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.InfoLevel, entries[0].Level)
	require.Equal(t, "obfuscation_started", entries[0].Message)
}

func TestLoggerWarnLogsAtWarnLevel(t *testing.T) {
	log, logs := newObserved()
	log.Warn(logger.MsgEmptySourceCode)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestLoggerSuccessTagsSuccessField(t *testing.T) {
	log, logs := newObserved()
	log.Success(logger.MsgObfuscationCompleted)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.InfoLevel, entries[0].Level)

	ctx := entries[0].ContextMap()
	require.Equal(t, true, ctx["success"])
}

func TestNopLoggerDiscardsEverything(t *testing.T) {
	require.NotPanics(t, func() {
		log := logger.Nop()
		log.Info(logger.MsgVersion)
		log.Warn(logger.MsgVersion)
		log.Success(logger.MsgVersion)
	})
}
