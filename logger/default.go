// SPDX-License-Identifier: MIT

package logger

import (
	"io"
	"os"
	"sync"
)

// The default stream and its four channels are created lazily, exactly once,
// and live for the rest of the process.
var (
	defaultStream = sync.OnceValue(func() *Stream { return NewStream(os.Stderr) })

	debugLogger   = sync.OnceValue(func() *Logger { return New(LevelDebug, Default()) })
	infoLogger    = sync.OnceValue(func() *Logger { return New(LevelInfo, Default()) })
	warningLogger = sync.OnceValue(func() *Logger { return New(LevelWarning, Default()) })
	errorLogger   = sync.OnceValue(func() *Logger { return New(LevelError, Default()) })
)

// Default returns the process-wide stream, writing to os.Stderr until
// SetOutput is called.
func Default() *Stream { return defaultStream() }

// Debug returns the process-wide DEBUG channel.
func Debug() *Logger { return debugLogger() }

// Info returns the process-wide INFO channel.
func Info() *Logger { return infoLogger() }

// Warning returns the process-wide WARNING channel.
func Warning() *Logger { return warningLogger() }

// Error returns the process-wide ERROR channel.
func Error() *Logger { return errorLogger() }

// SetFilter sets the threshold of the default stream.
func SetFilter(l Level) { Default().SetFilter(l) }

// Filter returns the threshold of the default stream.
func Filter() Level { return Default().Filter() }

// SetOutput redirects the default stream.
func SetOutput(w io.Writer) { Default().SetOutput(w) }
