package stream

import (
	"context"
	"errors"
	"io"
)

// ErrNoProgress is returned by WriteAll when the underlying writer
// repeatedly accepts zero bytes without reporting an error.
var ErrNoProgress = errors.New("stream: writer accepted no bytes")

// Reader is the readable half of a byte-stream capability.
//
// Read transfers up to len(p) bytes into p and returns the number of bytes
// read. A partial read is not an error. End of stream is reported as
// (0, io.EOF). Implementations must not transfer bytes and report an error
// in the same call; FromReader normalizes io.Reader's combined returns.
// Implementations may suspend on the provided context; a blocking call
// site simply passes context.Background().
type Reader interface {
	Read(ctx context.Context, p []byte) (int, error)
}

// Writer is the writable half of a byte-stream capability.
//
// Write transfers up to len(p) bytes from p and returns the number of bytes
// accepted. A partial write is not an error; callers retry with the
// remainder. Flush commits any buffering the stream itself performs.
type Writer interface {
	Write(ctx context.Context, p []byte) (int, error)
	Flush(ctx context.Context) error
}

// Stream is a capability that is both readable and writable.
type Stream interface {
	Reader
	Writer
}

// ReaderFunc adapts a function to the Reader interface.
type ReaderFunc func(ctx context.Context, p []byte) (int, error)

// Read implements Reader.
func (f ReaderFunc) Read(ctx context.Context, p []byte) (int, error) {
	return f(ctx, p)
}

// WriterFunc adapts a function to the Writer interface. Flush is a no-op.
type WriterFunc func(ctx context.Context, p []byte) (int, error)

// Write implements Writer.
func (f WriterFunc) Write(ctx context.Context, p []byte) (int, error) {
	return f(ctx, p)
}

// Flush implements Writer.
func (f WriterFunc) Flush(_ context.Context) error {
	return nil
}

// WriteAll writes all of p to w, retrying partial writes until the whole
// slice is accepted or the writer reports an error. Underlying errors are
// passed through unmodified.
func WriteAll(ctx context.Context, w Writer, p []byte) error {
	for len(p) > 0 {
		n, err := w.Write(ctx, p)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNoProgress
		}
		p = p[n:]
	}
	return nil
}

// ReadFull reads exactly len(p) bytes into p. It returns io.ErrUnexpectedEOF
// if the stream ends after at least one byte was read, and io.EOF if it ends
// before any byte was read.
func ReadFull(ctx context.Context, r Reader, p []byte) error {
	read := 0
	for read < len(p) {
		n, err := r.Read(ctx, p[read:])
		read += n
		if err != nil {
			if err == io.EOF && read > 0 {
				return io.ErrUnexpectedEOF
			}
			return err
		}
	}
	return nil
}
