package testutil

import (
	"context"
	"errors"
	"io"
)

// ErrSimulated is the error injected by scripted streams.
var ErrSimulated = errors.New("simulated error")

// ChunkReader is a test reader that serves one scripted chunk per Read
// call, regardless of how many more would fit in the destination. This
// models an underlying stream whose partial reads are not errors.
type ChunkReader struct {
	chunks    [][]byte
	readCount int
}

// NewChunkReader creates a ChunkReader serving the given chunks in order.
func NewChunkReader(chunks ...[]byte) *ChunkReader {
	return &ChunkReader{chunks: chunks}
}

// Read implements stream.Reader. It copies at most one chunk per call and
// returns io.EOF once all chunks are exhausted.
func (r *ChunkReader) Read(_ context.Context, p []byte) (int, error) {
	r.readCount++
	if len(r.chunks) == 0 {
		return 0, io.EOF
	}
	chunk := r.chunks[0]
	n := copy(p, chunk)
	if n < len(chunk) {
		r.chunks[0] = chunk[n:]
	} else {
		r.chunks = r.chunks[1:]
	}
	return n, nil
}

// ReadCount returns the number of Read calls observed.
func (r *ChunkReader) ReadCount() int {
	return r.readCount
}

// ScriptedWriter is a test writer whose per-call acceptance is scripted:
// each entry is the number of bytes the next Write call accepts, with 0
// meaning the call fails with ErrSimulated. Once the script is exhausted,
// all writes are accepted in full. Accepted bytes are recorded.
type ScriptedWriter struct {
	script     []int
	written    []byte
	writeCount int
	flushCount int
}

// NewScriptedWriter creates a ScriptedWriter with the given acceptance script.
func NewScriptedWriter(script ...int) *ScriptedWriter {
	return &ScriptedWriter{script: script}
}

// Write implements stream.Writer.
func (w *ScriptedWriter) Write(_ context.Context, p []byte) (int, error) {
	w.writeCount++
	if len(w.script) == 0 {
		w.written = append(w.written, p...)
		return len(p), nil
	}
	quota := w.script[0]
	w.script = w.script[1:]
	if quota == 0 {
		return 0, ErrSimulated
	}
	if quota > len(p) {
		quota = len(p)
	}
	w.written = append(w.written, p[:quota]...)
	return quota, nil
}

// Flush implements stream.Writer.
func (w *ScriptedWriter) Flush(_ context.Context) error {
	w.flushCount++
	return nil
}

// Written returns the bytes delivered so far.
func (w *ScriptedWriter) Written() []byte {
	return w.written
}

// WriteCount returns the number of Write calls observed.
func (w *ScriptedWriter) WriteCount() int {
	return w.writeCount
}

// FlushCount returns the number of Flush calls observed.
func (w *ScriptedWriter) FlushCount() int {
	return w.flushCount
}

// RWStream combines a ChunkReader and a ScriptedWriter into a single
// bidirectional stream, for pass-through tests.
type RWStream struct {
	*ChunkReader
	*ScriptedWriter
}

// NewRWStream creates a bidirectional test stream.
func NewRWStream(r *ChunkReader, w *ScriptedWriter) *RWStream {
	return &RWStream{ChunkReader: r, ScriptedWriter: w}
}
