//go:build logger_error

package logger

// CompiledLevel is the lowest level compiled into this build.
const CompiledLevel = LevelError
