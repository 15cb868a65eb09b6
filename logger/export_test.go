package logger

// ScratchCap_TestOnly exposes the retained scratch-buffer capacity.
func (s *Stream) ScratchCap_TestOnly() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cap(s.buf)
}

// MaxRetainedBuf_TestOnly mirrors the unexported retention bound.
const MaxRetainedBuf_TestOnly = maxRetainedBuf
