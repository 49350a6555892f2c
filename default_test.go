package tinylog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLogger(t *testing.T) {
	assert.NotNil(t, Default())
	assert.NotEmpty(t, Default().Name())

	old := Default()
	defer SetDefault(old)

	logger, rec := createTestLogger(t, "pkg")
	logger.SetLevel(LevelTrace)
	SetDefault(logger)
	require.Same(t, logger, Default())

	SetDefault(nil)
	require.Same(t, logger, Default(), "nil must not replace the default")

	Trace("t")
	Debug("d")
	Info("i").Str("+")
	Warn("w")
	Error("e")
	Fatal("f")
	Log(LevelInfo, "l")

	expected := "\n[TRACE][pkg] t\n[DEBUG][pkg] d\n[INFO ][pkg] i+\n[WARN ][pkg] w" +
		"\n[ERROR][pkg] e\n[FATAL][pkg] f\n[INFO ][pkg] l"
	assert.Equal(t, expected, rec.String())
}
