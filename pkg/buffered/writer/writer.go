package writer

import (
	"context"
	"fmt"

	bferrors "github.com/rmja/buffered-io/pkg/common/errors"
	"github.com/rmja/buffered-io/pkg/stream"
)

// Writer buffers writes to an underlying stream. Bytes accumulate in a
// caller-supplied fixed-capacity buffer and are committed to the
// underlying stream only when the buffer fills or on an explicit Flush.
//
// Writer is a single-owner state machine: it performs no locking and must
// not be used from multiple goroutines concurrently.
type Writer struct {
	inner stream.Writer
	buf   []byte
	pos   int
}

// New creates a buffered writer over inner using buf as its internal
// buffer. The buffer is borrowed for the lifetime of the writer and must
// not be aliased elsewhere while the writer is in use. Panics if buf is
// empty.
func New(inner stream.Writer, buf []byte) *Writer {
	if len(buf) == 0 {
		panic("writer: empty buffer")
	}
	return &Writer{inner: inner, buf: buf}
}

// NewWithData creates a buffered writer with the first written bytes of
// buf already accumulated and not yet committed. This is useful when
// taking over a buffer from a previous writer. Panics if written exceeds
// len(buf).
func NewWithData(inner stream.Writer, buf []byte, written int) *Writer {
	if written < 0 || written > len(buf) {
		panic(fmt.Sprintf("writer: %d written bytes exceeds buffer of %d bytes", written, len(buf)))
	}
	return &Writer{inner: inner, buf: buf, pos: written}
}

// IsEmpty reports whether no accumulated bytes are awaiting commit.
func (w *Writer) IsEmpty() bool {
	return w.pos == 0
}

// Written returns the number of accumulated bytes not yet committed to
// the underlying stream.
func (w *Writer) Written() int {
	return w.pos
}

// Clear discards all accumulated bytes without committing them. Use only
// when the pending bytes are known to be unwanted, e.g. after an
// unrecoverable protocol reset.
func (w *Writer) Clear() {
	w.pos = 0
}

// Write accepts up to len(p) bytes and returns the number accepted, which
// may be less than len(p); callers loop or use WriteAll for full
// delivery.
//
// An empty p is a no-op. When the buffer is empty and p is at least as
// large as the internal buffer, p is written directly to the underlying
// stream and its result returned unchanged. Otherwise bytes are copied
// into the buffer; if that fills it exactly, one commit of the full
// buffer is attempted. A partial commit shifts the unwritten tail to the
// start of the buffer, so the just-accepted bytes are retained.
//
// If the commit fails, the error is propagated and the accumulated count
// is left at its pre-call value. The bytes just copied remain physically
// in the buffer but are disowned: the next Write overwrites that region.
// After an error the caller must therefore retry with the same bytes just
// passed (or a prefix of them), never with different data, or the pending
// region is silently corrupted.
func (w *Writer) Write(ctx context.Context, p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if w.pos == 0 && len(p) >= len(w.buf) {
		// Fast path - nothing buffered and p alone fills the buffer
		return w.inner.Write(ctx, p)
	}

	buffered := min(len(p), len(w.buf)-w.pos)
	newPos := w.pos + buffered
	copy(w.buf[w.pos:newPos], p)

	if newPos < len(w.buf) {
		w.pos = newPos
		return buffered, nil
	}

	// The buffer is exactly full; commit it. pos is assigned only after
	// the write is known to have completed.
	n, err := w.inner.Write(ctx, w.buf)
	if err != nil {
		return 0, err
	}
	if n < newPos {
		// Partial commit: keep the unwritten tail
		copy(w.buf, w.buf[n:newPos])
		w.pos = newPos - n
	} else {
		w.pos = 0
	}
	return buffered, nil
}

// WriteAll writes all of p, looping over Write until every byte is
// accepted or an error occurs. The retry contract of Write applies: on
// error, resume with the bytes that were not yet accepted.
func (w *Writer) WriteAll(ctx context.Context, p []byte) error {
	for len(p) > 0 {
		n, err := w.Write(ctx, p)
		if err != nil {
			return err
		}
		if n == 0 {
			return stream.ErrNoProgress
		}
		p = p[n:]
	}
	return nil
}

// Flush commits all accumulated bytes to the underlying stream, retrying
// partial writes until complete, and then flushes the underlying stream
// itself. On failure of the commit the error is propagated, the
// accumulated count is left unchanged (same retry contract as Write), and
// the underlying flush is not attempted.
func (w *Writer) Flush(ctx context.Context) error {
	if w.pos > 0 {
		if err := stream.WriteAll(ctx, w.inner, w.buf[:w.pos]); err != nil {
			return err
		}
		w.pos = 0
	}
	return w.inner.Flush(ctx)
}

// Bypass returns the underlying stream for direct use, but only when no
// accumulated bytes are pending; otherwise it fails with ErrBypass so
// that unflushed bytes are never silently lost.
func (w *Writer) Bypass() (stream.Writer, error) {
	if w.pos != 0 {
		return nil, bferrors.ErrBypass
	}
	return w.inner, nil
}

// BypassWithBuf is Bypass, additionally returning the internal buffer as
// scratch space. The buffer contents may be freely overwritten; the
// writer must not be used until the caller is done with it.
func (w *Writer) BypassWithBuf() (stream.Writer, []byte, error) {
	if w.pos != 0 {
		return nil, nil, bferrors.ErrBypass
	}
	return w.inner, w.buf, nil
}

// Split consumes the writer and returns the underlying stream together
// with the buffer, but only when no accumulated bytes are pending;
// otherwise it fails with ErrBypass and the writer remains usable. On
// success the writer must not be used again.
func (w *Writer) Split() (stream.Writer, []byte, error) {
	if w.pos != 0 {
		return nil, nil, bferrors.ErrBypass
	}
	inner, buf := w.inner, w.buf
	w.inner = nil
	w.buf = nil
	return inner, buf, nil
}

// Release consumes the writer and returns the underlying stream
// unconditionally. Release does not flush: any accumulated bytes that
// were not explicitly flushed are lost. This is deliberate - there is no
// implicit flush-on-destruction anywhere in this package - so always call
// Flush before Release unless the pending bytes are meant to be dropped.
func (w *Writer) Release() stream.Writer {
	inner := w.inner
	w.inner = nil
	w.buf = nil
	w.pos = 0
	return inner
}

// Read passes through to the underlying stream unbuffered, when the
// stream is also readable. This wrapper only buffers the write direction.
// Returns ErrNotReadable if the underlying stream cannot read.
func (w *Writer) Read(ctx context.Context, p []byte) (int, error) {
	r, ok := w.inner.(stream.Reader)
	if !ok {
		return 0, bferrors.ErrNotReadable
	}
	return r.Read(ctx, p)
}
