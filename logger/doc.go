// Package logger is a severity-filtered logging façade over one shared output
// stream.
//
// A Logger is a channel bound to a single Level and to a Stream. Every Print
// compares the channel's level with the stream's filter threshold at call
// time; values reach the stream's writer only when level >= threshold. The
// threshold is live state: changing it with SetFilter affects every existing
// channel on its next Print.
//
// Four process-wide channels, Debug(), Info(), Warning() and Error(), share
// the Default() stream. They are created on first use and never torn down.
//
// Two gates apply, independently:
//
//   - Build time: the constants DebugEnabled .. ErrorEnabled derive from
//     CompiledLevel, selected with the build tags logger_info, logger_warning
//     or logger_error (default: everything compiled in).
//   - Run time: the stream's filter threshold, checked on every Print.
//
// Guard expensive call sites with the build-time constants and the compiler
// drops the whole statement, arguments included:
//
//	if logger.DebugEnabled {
//		logger.Debug().Print("state=", dump(), "\n")
//	}
//
// Values are streamed as-is; no prefix, timestamp or newline is added.
// Here() produces an optional "file.go(42) >> " call-site prefix.
package logger
