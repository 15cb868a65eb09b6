//go:build logger_warning && !logger_error

package logger_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/lvlgeom/logger"
	"github.com/stretchr/testify/assert"
)

// TestWarningBuildCompilesOutLowerLevels runs with -tags logger_warning.
func TestWarningBuildCompilesOutLowerLevels(t *testing.T) {
	assert.Equal(t, logger.LevelWarning, logger.CompiledLevel)
	assert.False(t, logger.DebugEnabled)
	assert.False(t, logger.InfoEnabled)
	assert.True(t, logger.WarningEnabled)
	assert.True(t, logger.ErrorEnabled)
}

// TestWarningBuildSkipsGuardedArguments checks that a statement guarded by an
// excluded level never evaluates its arguments, even with the run-time
// threshold wide open.
func TestWarningBuildSkipsGuardedArguments(t *testing.T) {
	var buf bytes.Buffer
	s := logger.NewStream(&buf, logger.WithFilter(logger.LevelDebug))
	debug := logger.New(logger.LevelDebug, s)
	errs := logger.New(logger.LevelError, s)

	evaluated := 0
	expensive := func() string { evaluated++; return "dump" }

	if logger.DebugEnabled {
		debug.Print(expensive())
	}
	assert.Zero(t, evaluated)
	assert.Empty(t, buf.String())

	if logger.ErrorEnabled {
		errs.Print("fault")
	}
	assert.Equal(t, "fault", buf.String(), "ERROR is never compiled out")
}
