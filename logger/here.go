// SPDX-License-Identifier: MIT

package logger

import (
	"path/filepath"
	"runtime"
	"strconv"
)

// Here returns a "file.go(42) >> " prefix naming the caller's source line,
// or "?(0) >> " when the caller cannot be determined.
//
//	logger.Error().Print(logger.Here(), "sensor timeout\n")
func Here() string {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file = "?"
	}

	return filepath.Base(file) + "(" + strconv.Itoa(line) + ") >> "
}
