package reader

import (
	"context"
	"fmt"

	bferrors "github.com/rmja/buffered-io/pkg/common/errors"
	"github.com/rmja/buffered-io/pkg/stream"
)

// Reader buffers reads from an underlying stream. Small reads are served
// from a caller-supplied fixed-capacity buffer that is refilled with one
// larger read against the underlying stream.
//
// Reader is a single-owner state machine: it performs no locking and must
// not be used from multiple goroutines concurrently.
type Reader struct {
	inner     stream.Reader
	buf       []byte
	offset    int
	available int
}

// New creates a buffered reader over inner using buf as its internal
// buffer. The buffer is borrowed for the lifetime of the reader and must
// not be aliased elsewhere while the reader is in use. Panics if buf is
// empty.
func New(inner stream.Reader, buf []byte) *Reader {
	if len(buf) == 0 {
		panic("reader: empty buffer")
	}
	return &Reader{inner: inner, buf: buf}
}

// NewWithData creates a buffered reader with the first available bytes
// already present in buf at offset. This is useful when a previous, greedy
// consumer of the underlying stream read past its own need and the excess
// bytes must be inherited. Panics if offset+available exceeds len(buf).
func NewWithData(inner stream.Reader, buf []byte, offset, available int) *Reader {
	if offset < 0 || available < 0 || offset+available > len(buf) {
		panic(fmt.Sprintf("reader: data range [%d, %d+%d] exceeds buffer of %d bytes",
			offset, offset, available, len(buf)))
	}
	return &Reader{inner: inner, buf: buf, offset: offset, available: available}
}

// IsEmpty reports whether no buffered bytes are readily available.
func (r *Reader) IsEmpty() bool {
	return r.available == 0
}

// Available returns the number of buffered bytes readily available.
func (r *Reader) Available() int {
	return r.available
}

// Read copies up to len(p) bytes into p and returns the number of bytes
// copied. Buffered bytes are served first. When the buffer is empty and p
// is at least as large as the internal buffer, the read goes directly to
// the underlying stream, skipping the intermediate copy. Otherwise an
// empty buffer is refilled with a single read against the underlying
// stream; partial fills are kept as-is. End of stream is (0, io.EOF).
func (r *Reader) Read(ctx context.Context, p []byte) (int, error) {
	if r.available == 0 {
		if len(p) >= len(r.buf) {
			// Fast path - bypass the local buffer
			return r.inner.Read(ctx, p)
		}
		n, err := r.inner.Read(ctx, r.buf)
		if err != nil {
			return 0, err
		}
		r.offset = 0
		r.available = n
	}

	n := copy(p, r.buf[r.offset:r.offset+r.available])
	if n < r.available {
		r.offset += n
		r.available -= n
	} else {
		r.available = 0
	}
	return n, nil
}

// Peek returns a view of the currently buffered unread bytes, refilling
// from the underlying stream first if the buffer is empty. The view is
// valid until the next operation on the reader; it never discards unread
// bytes. Use Consume to advance past peeked bytes.
func (r *Reader) Peek(ctx context.Context) ([]byte, error) {
	if r.available == 0 {
		n, err := r.inner.Read(ctx, r.buf)
		if err != nil {
			return nil, err
		}
		r.offset = 0
		r.available = n
	}
	return r.buf[r.offset : r.offset+r.available], nil
}

// Consume advances past n previously peeked bytes. Panics if n exceeds
// Available: consuming more than was peeked is a programmer error, not a
// runtime condition, and is never clamped.
func (r *Reader) Consume(n int) {
	if n < 0 || n > r.available {
		panic(fmt.Sprintf("reader: consume %d with %d available", n, r.available))
	}
	r.offset += n
	r.available -= n
}

// Bypass returns the underlying stream for direct use, but only when no
// buffered bytes are pending; otherwise it fails with ErrBypass so that
// buffered-but-unread bytes are never silently lost. This is the escape
// hatch for operations that must talk to the stream directly, such as
// protocol upgrades.
func (r *Reader) Bypass() (stream.Reader, error) {
	if r.available != 0 {
		return nil, bferrors.ErrBypass
	}
	return r.inner, nil
}

// Release discards the buffer and returns the underlying stream
// unconditionally. Any buffered unread bytes are lost. Callers that may
// have pending bytes should use Bypass, which refuses instead of
// discarding.
func (r *Reader) Release() stream.Reader {
	inner := r.inner
	r.inner = nil
	r.buf = nil
	r.offset = 0
	r.available = 0
	return inner
}

// Write passes p through to the underlying stream unbuffered, when the
// stream is also writable. This wrapper only buffers the read direction.
// Returns ErrNotWritable if the underlying stream cannot write.
func (r *Reader) Write(ctx context.Context, p []byte) (int, error) {
	w, ok := r.inner.(stream.Writer)
	if !ok {
		return 0, bferrors.ErrNotWritable
	}
	return w.Write(ctx, p)
}

// WriteAll writes all of p through to the underlying stream unbuffered.
func (r *Reader) WriteAll(ctx context.Context, p []byte) error {
	w, ok := r.inner.(stream.Writer)
	if !ok {
		return bferrors.ErrNotWritable
	}
	return stream.WriteAll(ctx, w, p)
}

// Flush passes through to the underlying stream's flush, when the stream
// is also writable.
func (r *Reader) Flush(ctx context.Context) error {
	w, ok := r.inner.(stream.Writer)
	if !ok {
		return bferrors.ErrNotWritable
	}
	return w.Flush(ctx)
}
