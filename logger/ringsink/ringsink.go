// Package ringsink provides a memory-mapped circular byte sink for
// logger.Stream. Only the newest Cap() bytes are retained, and because the
// storage is a mapped file the content survives a crash or restart.
//
// File layout (little-endian):
//
//	[0:8)   capacity in bytes
//	[8:16)  total bytes ever written
//	[16:)   ring storage, capacity bytes
//
// A Ring is not safe for concurrent use on its own; logger.Stream serialises
// its writes.
package ringsink

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

const headSize = 16

var (
	// ErrInvalidCapacity is returned when a ring is opened with capacity <= 0.
	ErrInvalidCapacity = errors.New("ringsink: capacity must be > 0")

	// ErrCapacityMismatch is returned when an existing file has another capacity.
	ErrCapacityMismatch = errors.New("ringsink: capacity does not match existing file")

	// ErrCorrupt is returned when an existing file has an inconsistent header.
	ErrCorrupt = errors.New("ringsink: corrupt file")

	// ErrClosed is returned by operations on a closed ring.
	ErrClosed = errors.New("ringsink: closed")
)

// Ring is a fixed-capacity circular buffer backed by a memory-mapped file.
type Ring struct {
	file *os.File
	mem  mmap.MMap
	cap  int
}

// Open maps the ring file at path, creating it when it does not exist.
// An existing file keeps its content and must have been created with the
// same capacity.
func Open(path string, capacity int) (r *Ring, err error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	size := int64(headSize + capacity)

	r = &Ring{cap: capacity}
	created := false

	info, err := os.Stat(path)
	switch {
	case err == nil:
		if info.Size() < headSize {
			return nil, fmt.Errorf("%w: %s is %d bytes", ErrCorrupt, path, info.Size())
		}
		if r.file, err = os.OpenFile(path, os.O_RDWR, 0); err != nil {
			return nil, err
		}
	case os.IsNotExist(err):
		if r.file, err = os.Create(path); err != nil {
			return nil, err
		}
		if err = r.file.Truncate(size); err != nil {
			r.file.Close()
			os.Remove(path)
			return nil, err
		}
		created = true
	default:
		return nil, err
	}

	if r.mem, err = mmap.Map(r.file, mmap.RDWR, 0); err != nil {
		r.file.Close()
		if created {
			os.Remove(path)
		}
		return nil, err
	}

	// An all-zero header on a file of the right size is a ring whose creation
	// was interrupted before the header was written; start it fresh.
	if created || (int64(len(r.mem)) == size && r.headerZero()) {
		binary.LittleEndian.PutUint64(r.mem[0:8], uint64(capacity))
		r.setTotal(0)
		return r, nil
	}

	if err = r.validate(size); err != nil {
		r.release()
		return nil, err
	}

	return r, nil
}

func (r *Ring) validate(size int64) error {
	stored := binary.LittleEndian.Uint64(r.mem[0:8])
	if stored != uint64(r.cap) {
		return fmt.Errorf("%w: file has %d, want %d", ErrCapacityMismatch, stored, r.cap)
	}
	if int64(len(r.mem)) != size {
		return fmt.Errorf("%w: size %d, want %d", ErrCorrupt, len(r.mem), size)
	}

	return nil
}

func (r *Ring) headerZero() bool {
	for _, b := range r.mem[:headSize] {
		if b != 0 {
			return false
		}
	}

	return true
}

func (r *Ring) total() uint64 {
	return binary.LittleEndian.Uint64(r.mem[8:16])
}

func (r *Ring) setTotal(n uint64) {
	binary.LittleEndian.PutUint64(r.mem[8:16], n)
}

func (r *Ring) data() []byte {
	return r.mem[headSize:]
}

// Write appends p, overwriting the oldest bytes once the ring is full.
// It implements io.Writer and always consumes all of p.
func (r *Ring) Write(p []byte) (int, error) {
	if r.mem == nil {
		return 0, ErrClosed
	}
	n := len(p)
	total := r.total()

	// only the tail of an oversized write can survive
	if len(p) > r.cap {
		total += uint64(len(p) - r.cap)
		p = p[len(p)-r.cap:]
	}

	data := r.data()
	for len(p) > 0 {
		off := int(total % uint64(r.cap))
		c := copy(data[off:], p)
		p = p[c:]
		total += uint64(c)
	}
	r.setTotal(total)

	return n, nil
}

// Bytes returns a copy of the retained content, oldest byte first.
func (r *Ring) Bytes() []byte {
	if r.mem == nil {
		return nil
	}
	total := r.total()
	data := r.data()
	if total <= uint64(r.cap) {
		return append([]byte(nil), data[:total]...)
	}

	off := int(total % uint64(r.cap))
	out := make([]byte, 0, r.cap)
	out = append(out, data[off:]...)

	return append(out, data[:off]...)
}

// Len returns the number of retained bytes.
func (r *Ring) Len() int {
	if r.mem == nil {
		return 0
	}

	return int(min(r.total(), uint64(r.cap)))
}

// Cap returns the ring capacity in bytes.
func (r *Ring) Cap() int {
	return r.cap
}

// Total returns the number of bytes written over the lifetime of the file.
func (r *Ring) Total() uint64 {
	if r.mem == nil {
		return 0
	}

	return r.total()
}

// Reset discards the retained content.
func (r *Ring) Reset() {
	if r.mem != nil {
		r.setTotal(0)
	}
}

// Flush synchronises the mapping with the file.
func (r *Ring) Flush() error {
	if r.mem == nil {
		return ErrClosed
	}

	return r.mem.Flush()
}

// Close flushes, unmaps and closes the file. Closing twice returns ErrClosed.
func (r *Ring) Close() error {
	if r.mem == nil {
		return ErrClosed
	}
	err := r.mem.Flush()

	return errors.Join(err, r.release())
}

func (r *Ring) release() error {
	err := r.mem.Unmap()
	r.mem = nil

	return errors.Join(err, r.file.Close())
}
