// SPDX-License-Identifier: MIT

package logger

// Build-time gates. A statement guarded by one of these constants is removed
// by the compiler when CompiledLevel excludes it, independent of any run-time
// threshold.
const (
	DebugEnabled   = CompiledLevel <= LevelDebug
	InfoEnabled    = CompiledLevel <= LevelInfo
	WarningEnabled = CompiledLevel <= LevelWarning
	ErrorEnabled   = CompiledLevel <= LevelError
)
