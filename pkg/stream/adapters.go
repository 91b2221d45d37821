package stream

import (
	"context"
	"io"
)

// flusher is implemented by writers that buffer internally, e.g. *bufio.Writer.
type flusher interface {
	Flush() error
}

type ioReaderAdapter struct {
	r io.Reader
	// err holds an error that arrived together with bytes; it is
	// returned by the next Read instead of consulting r again.
	err error
}

type ioWriterAdapter struct {
	w io.Writer
}

type ioStreamAdapter struct {
	ioReaderAdapter
	ioWriterAdapter
}

// FromReader lifts a blocking io.Reader into the Reader capability.
// When the wrapped reader returns bytes together with an error, the
// bytes are delivered and the error is latched for the following call,
// so it is reported even if the wrapped reader does not repeat it.
// The context is checked before each call into the wrapped reader; an
// in-flight read cannot be interrupted.
func FromReader(r io.Reader) Reader {
	return &ioReaderAdapter{r: r}
}

// FromWriter lifts a blocking io.Writer into the Writer capability.
// Flush is forwarded when the wrapped writer implements Flush() error,
// and is a no-op otherwise.
func FromWriter(w io.Writer) Writer {
	return &ioWriterAdapter{w: w}
}

// FromReadWriter lifts a blocking io.ReadWriter into the Stream capability.
func FromReadWriter(rw io.ReadWriter) Stream {
	return &ioStreamAdapter{
		ioReaderAdapter{r: rw},
		ioWriterAdapter{w: rw},
	}
}

func (a *ioReaderAdapter) Read(ctx context.Context, p []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if a.err != nil {
		err := a.err
		a.err = nil
		return 0, err
	}
	n, err := a.r.Read(p)
	if n > 0 {
		// io.Reader may return bytes together with an error; the
		// capability does not. Deliver the bytes now and latch the
		// error for the next call.
		a.err = err
		return n, nil
	}
	return 0, err
}

func (a *ioWriterAdapter) Write(ctx context.Context, p []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return a.w.Write(p)
}

func (a *ioWriterAdapter) Flush(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if f, ok := a.w.(flusher); ok {
		return f.Flush()
	}
	return nil
}

type blockingReader struct {
	r Reader
}

type blockingWriter struct {
	w Writer
}

// NewIOReader projects a Reader capability back to a plain io.Reader,
// invoking it with a background context.
func NewIOReader(r Reader) io.Reader {
	return &blockingReader{r: r}
}

// NewIOWriter projects a Writer capability back to a plain io.Writer.
func NewIOWriter(w Writer) io.Writer {
	return &blockingWriter{w: w}
}

func (b *blockingReader) Read(p []byte) (int, error) {
	return b.r.Read(context.Background(), p)
}

func (b *blockingWriter) Write(p []byte) (int, error) {
	return b.w.Write(context.Background(), p)
}
