// SPDX-License-Identifier: MIT

package logger

import (
	"fmt"
	"io"
	"strconv"
	"sync"
	"sync/atomic"
)

// maxRetainedBuf bounds the scratch buffer a Stream keeps between appends.
const maxRetainedBuf = 1 << 10

// Stream is the shared output sink: a byte medium plus the live filter
// threshold the channels bound to it compare against.
//
// The threshold is read atomically on every Print and writes to the medium
// are serialised, so a Stream may be shared between goroutines.
type Stream struct {
	filter atomic.Int32

	mu  sync.Mutex
	w   io.Writer
	buf []byte // scratch encoding buffer, guarded by mu
	err error  // first write error, guarded by mu
}

// NewStream returns a Stream writing to w. A nil w discards everything.
func NewStream(w io.Writer, opts ...Option) *Stream {
	o := gatherOptions(opts...)
	s := &Stream{w: w}
	s.filter.Store(int32(o.filter))

	return s
}

// Filter returns the current threshold.
// Complexity: O(1), one atomic load.
func (s *Stream) Filter() Level {
	return Level(s.filter.Load())
}

// SetFilter changes the threshold. Channels bound to s observe the new value
// on their next Print. An invalid level panics.
func (s *Stream) SetFilter(l Level) {
	if !l.Valid() {
		panic("logger: SetFilter: invalid level " + l.String())
	}
	s.filter.Store(int32(l))
}

// Allows reports whether a message at level l passes the current threshold.
func (s *Stream) Allows(l Level) bool {
	return l >= s.Filter()
}

// SetOutput replaces the medium. Pending writes complete on the old one.
func (s *Stream) SetOutput(w io.Writer) {
	s.mu.Lock()
	s.w = w
	s.mu.Unlock()
}

// Err returns the first error reported by the medium, if any.
func (s *Stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

// Write forwards p to the medium unfiltered. It implements io.Writer.
func (s *Stream) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeLocked(p)
}

// Append serialises each value and writes them to the medium as one write,
// unfiltered. Filtering is the channel's job; see Logger.Print.
// Complexity: O(total encoded size); one write to the medium.
func (s *Stream) Append(vs ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.buf[:0]
	for _, v := range vs {
		b = appendValue(b, v)
	}
	_, _ = s.writeLocked(b)

	if cap(b) > maxRetainedBuf {
		s.buf = nil // one oversized message must not pin its buffer
		return
	}
	s.buf = b
}

func (s *Stream) writeLocked(p []byte) (int, error) {
	if s.w == nil || len(p) == 0 {
		return len(p), nil
	}
	n, err := s.w.Write(p)
	if err != nil && s.err == nil {
		s.err = err
	}

	return n, err
}

// appendValue encodes common types without going through fmt. Errors and
// Stringers go through fmt, which turns a nil pointer receiver into "<nil>"
// instead of panicking.
func appendValue(b []byte, v any) []byte {
	switch x := v.(type) {
	case string:
		return append(b, x...)
	case []byte:
		return append(b, x...)
	case byte:
		return strconv.AppendUint(b, uint64(x), 10)
	case rune:
		return strconv.AppendInt(b, int64(x), 10)
	case bool:
		return strconv.AppendBool(b, x)
	case int:
		return strconv.AppendInt(b, int64(x), 10)
	case int8:
		return strconv.AppendInt(b, int64(x), 10)
	case int16:
		return strconv.AppendInt(b, int64(x), 10)
	case int64:
		return strconv.AppendInt(b, x, 10)
	case uint:
		return strconv.AppendUint(b, uint64(x), 10)
	case uint16:
		return strconv.AppendUint(b, uint64(x), 10)
	case uint32:
		return strconv.AppendUint(b, uint64(x), 10)
	case uint64:
		return strconv.AppendUint(b, x, 10)
	case float32:
		return strconv.AppendFloat(b, float64(x), 'g', -1, 32)
	case float64:
		return strconv.AppendFloat(b, x, 'g', -1, 64)
	case nil:
		return append(b, "<nil>"...)
	}

	return fmt.Append(b, v)
}
