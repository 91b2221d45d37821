/*
Package stream defines the byte-stream capability consumed and exposed by
the buffered wrappers.

The capability is expressed once for both execution modes: every operation
takes a context.Context. Blocking call sites pass context.Background();
cooperative call sites pass their task context and the stream may suspend
at the call. The buffer-manipulation logic built on top of these
interfaces never suspends between calls.

Core Concepts:

  - Reader.Read may return fewer bytes than requested; that is not an
    error. End of stream is (0, io.EOF).
  - Writer.Write may accept fewer bytes than offered; callers retry with
    the remainder, or use WriteAll.
  - Errors from the underlying stream pass through unmodified.

Basic Usage:

	src := stream.FromReader(file)

	buf := make([]byte, 4096)
	n, err := src.Read(ctx, buf)

Adapting arbitrary sinks:

	sink := stream.WriterFunc(func(ctx context.Context, p []byte) (int, error) {
		return len(p), rdb.Append(ctx, "log", string(p)).Err()
	})
	stream.WriteAll(ctx, sink, payload)
*/
package stream
