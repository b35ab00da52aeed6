package logging

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLoggerDefaults(t *testing.T) {
	l, err := NewLogger(Config{})
	require.NoError(t, err)
	require.NotNil(t, l)

	// Logging must not panic with an empty configuration.
	l.Info("startup", String("component", "test"))
}

func TestNewLoggerConsoleFormat(t *testing.T) {
	l, err := NewLogger(Config{Format: "console", Level: "debug"})
	require.NoError(t, err)
	require.NotNil(t, l)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"bogus", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), "level %q", tt.in)
	}
}

func TestLoggerEmitsFields(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	l := NewLoggerFromCore(core)

	l.Info("case classified",
		String("case_id", "case-001"),
		Int("keyword_hits", 3),
		Float64("confidence", 0.9),
		Bool("cached", false),
		Duration("elapsed", 5*time.Millisecond),
		Err(errors.New("boom")),
	)

	entries := recorded.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "case classified", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "case-001", fields["case_id"])
	assert.EqualValues(t, 3, fields["keyword_hits"])
	assert.Equal(t, 0.9, fields["confidence"])
	assert.Equal(t, false, fields["cached"])
	assert.Equal(t, "boom", fields["error"])
}

func TestErrNil(t *testing.T) {
	f := Err(nil)
	assert.Equal(t, "error", f.Key)
	assert.Equal(t, "<nil>", f.Value)
}

func TestWithAttachesFields(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	l := NewLoggerFromCore(core).With(String("service", "intake"))

	l.Info("first")
	l.Warn("second")

	for _, e := range recorded.All() {
		assert.Equal(t, "intake", e.ContextMap()["service"])
	}
	assert.Equal(t, 2, recorded.Len())
}

func TestNamedLogger(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	l := NewLoggerFromCore(core).Named("intake").Named("casetriage")

	l.Info("classified")

	entries := recorded.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "intake.casetriage", entries[0].LoggerName)
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	// None of these should panic or emit anything.
	l.Debug("d")
	l.Info("i")
	l.Warn("w")
	l.Error("e")
	assert.Equal(t, l, l.With(String("k", "v")))
	assert.Equal(t, l, l.Named("sub"))
}

func TestDefaultLogger(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	core, recorded := observer.New(zapcore.DebugLevel)
	SetDefault(NewLoggerFromCore(core))

	Default().Info("hello")
	assert.Equal(t, 1, recorded.Len())

	// nil must be ignored, keeping the previous default.
	SetDefault(nil)
	Default().Info("again")
	assert.Equal(t, 2, recorded.Len())
}
