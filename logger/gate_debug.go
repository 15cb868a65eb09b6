//go:build !logger_info && !logger_warning && !logger_error

package logger

// CompiledLevel is the lowest level compiled into this build.
const CompiledLevel = LevelDebug
