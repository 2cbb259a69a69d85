package logger

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// stripANSI removes ANSI color codes from a string for testing
func stripANSI(str string) string {
	return regexp.MustCompile(`\x1b\[[0-9;]*m`).ReplaceAllString(str, "")
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{verbosity: -1, want: zapcore.WarnLevel},
		{verbosity: 0, want: zapcore.WarnLevel},
		{verbosity: 1, want: zapcore.InfoLevel},
		{verbosity: 2, want: zapcore.DebugLevel},
		{verbosity: 5, want: zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(LevelName(tt.verbosity), func(t *testing.T) {
			assert.Equal(t, tt.want, VerbosityToLevel(tt.verbosity))
		})
	}
}

func TestConsoleEncoderKeepsEveryField(t *testing.T) {
	enc := newConsoleEncoder()
	entry := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Date(2024, 1, 2, 13, 4, 35, 0, time.UTC),
		LoggerName: "typegen",
		Message:    "Wrote artifact",
	}
	fields := []zapcore.Field{
		zap.String("file", "types/protocol.d.ts"),
		zap.Int("bytes", 81234),
		zap.Bool("changed", true),
		zap.Strings("passes", []string{"protocol", "mapping"}),
		zap.Duration("elapsed", 1500*time.Millisecond),
	}

	buf, err := enc.EncodeEntry(entry, fields)
	require.NoError(t, err)
	out := stripANSI(buf.String())

	assert.Contains(t, out, "13:04:35")
	assert.Contains(t, out, "typegen")
	assert.Contains(t, out, "Wrote artifact")
	assert.Contains(t, out, "file=types/protocol.d.ts")
	assert.Contains(t, out, "bytes=81234")
	assert.Contains(t, out, "changed=true")
	assert.Contains(t, out, "passes=")
	assert.Contains(t, out, "elapsed=")
	assert.NotContains(t, out, "WARN")
}

func TestConsoleEncoderLevelLabels(t *testing.T) {
	enc := newConsoleEncoder()

	warn, err := enc.EncodeEntry(zapcore.Entry{Level: zapcore.WarnLevel, Message: "careful"}, nil)
	require.NoError(t, err)
	assert.Contains(t, stripANSI(warn.String()), "WARN  careful")

	fail, err := enc.EncodeEntry(zapcore.Entry{Level: zapcore.ErrorLevel, Message: "broken"}, nil)
	require.NoError(t, err)
	assert.Contains(t, stripANSI(fail.String()), "ERROR  broken")
}

func TestHelpersAreSafeBeforeInitialize(t *testing.T) {
	assert.NotPanics(t, func() {
		Infow("info", "k", "v")
		Warnw("warn")
		Debugw("debug")
		Errorw("error")
		Cleanup()
	})
}

func TestInitializeWithLevel(t *testing.T) {
	t.Cleanup(func() { Logger = zap.NewNop().Sugar() })

	require.NoError(t, InitializeWithLevel(false, "debug"))
	assert.True(t, Logger.Desugar().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, InitializeWithLevel(true, "warn"))
	assert.True(t, JSONOutput)
	assert.False(t, Logger.Desugar().Core().Enabled(zapcore.InfoLevel))

	assert.Error(t, InitializeWithLevel(false, "loud"))
}
