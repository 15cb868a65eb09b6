// SPDX-License-Identifier: MIT

package logger

import (
	"errors"
	"fmt"
	"strings"
)

// Level is a message severity. Levels are totally ordered:
// LevelDebug < LevelInfo < LevelWarning < LevelError.
type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

// ErrUnknownLevel is returned when parsing a name that is not a Level.
var ErrUnknownLevel = errors.New("logger: unknown level")

var levelNames = [...]string{
	LevelDebug:   "DEBUG",
	LevelInfo:    "INFO",
	LevelWarning: "WARNING",
	LevelError:   "ERROR",
}

// Valid reports whether l is one of the four defined levels.
func (l Level) Valid() bool {
	return l >= LevelDebug && l <= LevelError
}

// String returns the upper-case level name.
func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Level(%d)", int8(l))
	}

	return levelNames[l]
}

// ParseLevel maps a case-insensitive name ("debug", "INFO", "warn", ...) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARNING", "WARN":
		return LevelWarning, nil
	case "ERROR":
		return LevelError, nil
	}

	return LevelDebug, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, int8(l))
	}

	return []byte(levelNames[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so a Level can be used
// directly with flag.TextVar or decoded from configuration files.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed

	return nil
}
