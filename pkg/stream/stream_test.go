package stream

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rmja/buffered-io/internal/testutil"
)

func TestWriteAllRetriesPartialWrites(t *testing.T) {
	inner := testutil.NewScriptedWriter(2, 2, 1)

	err := WriteAll(context.Background(), inner, []byte{1, 2, 3, 4, 5, 6})
	testutil.AssertNoError(t, err)
	testutil.AssertBytes(t, inner.Written(), []byte{1, 2, 3, 4, 5, 6})
	testutil.AssertEqual(t, inner.WriteCount(), 4)
}

func TestWriteAllPropagatesError(t *testing.T) {
	inner := testutil.NewScriptedWriter(2, 0)

	err := WriteAll(context.Background(), inner, []byte{1, 2, 3, 4})
	testutil.AssertErrorIs(t, err, testutil.ErrSimulated)
	testutil.AssertBytes(t, inner.Written(), []byte{1, 2})
}

func TestWriteAllRejectsZeroProgress(t *testing.T) {
	stuck := WriterFunc(func(_ context.Context, _ []byte) (int, error) {
		return 0, nil
	})

	err := WriteAll(context.Background(), stuck, []byte{1})
	testutil.AssertErrorIs(t, err, ErrNoProgress)
}

func TestReadFull(t *testing.T) {
	r := testutil.NewChunkReader([]byte{1, 2}, []byte{3, 4, 5})

	p := make([]byte, 5)
	testutil.AssertNoError(t, ReadFull(context.Background(), r, p))
	testutil.AssertBytes(t, p, []byte{1, 2, 3, 4, 5})
}

func TestReadFullUnexpectedEOF(t *testing.T) {
	r := testutil.NewChunkReader([]byte{1, 2})

	err := ReadFull(context.Background(), r, make([]byte, 5))
	testutil.AssertErrorIs(t, err, io.ErrUnexpectedEOF)

	err = ReadFull(context.Background(), r, make([]byte, 1))
	testutil.AssertErrorIs(t, err, io.EOF)
}

func TestFromReader(t *testing.T) {
	r := FromReader(bytes.NewReader([]byte{1, 2, 3}))

	p := make([]byte, 8)
	n, err := r.Read(context.Background(), p)
	testutil.AssertNoError(t, err)
	testutil.AssertBytes(t, p[:n], []byte{1, 2, 3})
}

// combinedReturnReader delivers its payload together with io.EOF in a
// single call and never re-reports the error, which io.Reader permits.
type combinedReturnReader struct {
	payload []byte
	drained bool
}

func (r *combinedReturnReader) Read(p []byte) (int, error) {
	if r.drained {
		return 0, errors.New("read past end")
	}
	r.drained = true
	return copy(p, r.payload), io.EOF
}

func TestFromReaderLatchesCombinedError(t *testing.T) {
	r := FromReader(&combinedReturnReader{payload: []byte{1, 2, 3}})
	ctx := context.Background()

	p := make([]byte, 8)
	n, err := r.Read(ctx, p)
	testutil.AssertNoError(t, err)
	testutil.AssertBytes(t, p[:n], []byte{1, 2, 3})

	_, err = r.Read(ctx, p)
	testutil.AssertErrorIs(t, err, io.EOF)
}

func TestFromReaderHonorsContext(t *testing.T) {
	r := FromReader(bytes.NewReader([]byte{1}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Read(ctx, make([]byte, 1))
	testutil.AssertErrorIs(t, err, context.Canceled)
}

func TestFromWriterForwardsFlush(t *testing.T) {
	var sink bytes.Buffer
	bw := bufio.NewWriterSize(&sink, 64)
	w := FromWriter(bw)
	ctx := context.Background()

	_, err := w.Write(ctx, []byte("hello"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sink.Len(), 0)

	testutil.AssertNoError(t, w.Flush(ctx))
	testutil.AssertEqual(t, sink.String(), "hello")
}

func TestFromWriterFlushNoopWithoutFlusher(t *testing.T) {
	var sink bytes.Buffer
	w := FromWriter(&sink)

	testutil.AssertNoError(t, w.Flush(context.Background()))
}

func TestFromReadWriter(t *testing.T) {
	var rw bytes.Buffer
	rw.Write([]byte{1, 2})
	s := FromReadWriter(&rw)
	ctx := context.Background()

	p := make([]byte, 2)
	n, err := s.Read(ctx, p)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, n, 2)

	_, err = s.Write(ctx, []byte{3})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rw.Len(), 1)
}

func TestIOProjections(t *testing.T) {
	src := NewIOReader(FromReader(bytes.NewReader([]byte("roundtrip"))))

	var sink bytes.Buffer
	dst := NewIOWriter(FromWriter(&sink))

	_, err := io.Copy(dst, src)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, sink.String(), "roundtrip")
}

func TestReaderFunc(t *testing.T) {
	calls := 0
	r := ReaderFunc(func(_ context.Context, p []byte) (int, error) {
		calls++
		return copy(p, []byte{9}), nil
	})

	p := make([]byte, 1)
	n, err := r.Read(context.Background(), p)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, n, 1)
	testutil.AssertEqual(t, calls, 1)
}
