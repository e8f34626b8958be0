// Package buff provides the wire buffer primitives used by the VanirDB
// protocol codecs.
//
// A Writer assembles outgoing wire frames; a Reader consumes incoming ones.
// All integers on the wire are big-endian (network byte order). Readers do
// not copy: SliceInto re-points a reusable sub-reader at a window of the
// parent's bytes so nested codecs can decode length-prefixed payloads
// without allocation.
package buff

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Buffer errors. Both are wrapped with concrete counts at the call site;
// match with errors.Is.
var (
	ErrInsufficientData = errors.New("insufficient data in buffer")
	ErrTrailingBytes    = errors.New("unexpected trailing bytes in buffer")
)

// Writer is an append-only buffer for assembling wire frames.
// The zero value is ready to use.
type Writer struct {
	buf []byte
}

// NewWriter creates a writer with a small preallocated capacity.
func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, 64)}
}

// WriteUint32 appends v in big-endian order.
func (w *Writer) WriteUint32(v uint32) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, v)
}

// WriteInt32 appends v in big-endian order.
func (w *Writer) WriteInt32(v int32) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, uint32(v))
}

// WriteUint64 appends v in big-endian order.
func (w *Writer) WriteUint64(v uint64) {
	w.buf = binary.BigEndian.AppendUint64(w.buf, v)
}

// WriteBytes appends raw bytes with no framing.
func (w *Writer) WriteBytes(p []byte) {
	w.buf = append(w.buf, p...)
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Unwrap returns the accumulated bytes. The slice aliases the writer's
// internal storage; callers that keep writing must copy first.
func (w *Writer) Unwrap() []byte {
	return w.buf
}

// Reader is a consuming cursor over a received wire frame.
type Reader struct {
	buf []byte
	pos int
}

// NewReader creates a reader over data. The reader does not copy data.
func NewReader(data []byte) *Reader {
	return &Reader{buf: data}
}

// Remaining returns the number of unconsumed bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// ReadUint32 consumes 4 bytes as a big-endian unsigned integer.
func (r *Reader) ReadUint32() (uint32, error) {
	if r.Remaining() < 4 {
		return 0, fmt.Errorf("%w: need 4 bytes, have %d", ErrInsufficientData, r.Remaining())
	}
	v := binary.BigEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

// ReadInt32 consumes 4 bytes as a big-endian signed integer.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadUint64 consumes 8 bytes as a big-endian unsigned integer.
func (r *Reader) ReadUint64() (uint64, error) {
	if r.Remaining() < 8 {
		return 0, fmt.Errorf("%w: need 8 bytes, have %d", ErrInsufficientData, r.Remaining())
	}
	v := binary.BigEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return v, nil
}

// ReadBytes consumes n bytes and returns them. The returned slice aliases
// the reader's underlying storage.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrInsufficientData, n, r.Remaining())
	}
	p := r.buf[r.pos : r.pos+n]
	r.pos += n
	return p, nil
}

// Discard consumes and drops n bytes.
func (r *Reader) Discard(n int) error {
	if n < 0 || r.Remaining() < n {
		return fmt.Errorf("%w: cannot discard %d bytes, have %d", ErrInsufficientData, n, r.Remaining())
	}
	r.pos += n
	return nil
}

// SliceInto re-points sub at the next n bytes of the parent and advances
// the parent past them. The sub-reader may be reused across calls; any
// previous window it held is replaced.
func (r *Reader) SliceInto(sub *Reader, n int) error {
	p, err := r.ReadBytes(n)
	if err != nil {
		return err
	}
	sub.buf = p
	sub.pos = 0
	return nil
}

// Finish verifies the reader was fully consumed and releases its window.
func (r *Reader) Finish() error {
	if rem := r.Remaining(); rem != 0 {
		return fmt.Errorf("%w: %d bytes left", ErrTrailingBytes, rem)
	}
	r.buf = nil
	r.pos = 0
	return nil
}
