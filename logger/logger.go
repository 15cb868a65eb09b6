// SPDX-License-Identifier: MIT

package logger

// Logger is a channel bound to one severity level and one Stream.
// It holds no other state; the stream's threshold is consulted on every call.
type Logger struct {
	level  Level
	stream *Stream
}

// New binds a channel to level and stream. An invalid level or a nil stream
// panics.
func New(level Level, stream *Stream) *Logger {
	if !level.Valid() {
		panic("logger: New: invalid level " + level.String())
	}
	if stream == nil {
		panic("logger: New: nil stream")
	}

	return &Logger{level: level, stream: stream}
}

// Level returns the level the channel is bound to.
func (l *Logger) Level() Level {
	return l.level
}

// Stream returns the stream the channel writes to.
func (l *Logger) Stream() *Stream {
	return l.stream
}

// Enabled reports whether a Print issued now would reach the stream.
func (l *Logger) Enabled() bool {
	return l.stream.Allows(l.level)
}

// Print streams vs to the medium, in order and as a single write, when the
// channel's level is >= the stream's current threshold. Otherwise it does
// nothing. It returns l so calls can be chained.
// Complexity: O(1) when filtered out, otherwise that of Stream.Append.
func (l *Logger) Print(vs ...any) *Logger {
	if l.stream.Allows(l.level) {
		l.stream.Append(vs...)
	}

	return l
}
