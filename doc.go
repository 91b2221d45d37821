/*
Package bufferedio provides fixed-capacity read and write buffering over
abstract byte streams, batching small transfers into larger ones.

Stream Capability (pkg/stream):
  - stream: context-aware Reader/Writer/Stream interfaces
  - adapters for io.Reader/io.Writer interop

Buffering (pkg/buffered):
  - reader: buffered reads with peek/consume and a large-read fast path
  - writer: buffered writes with partial-flush recovery
  - instrument: Prometheus-instrumented stream decorator

Example usage:

	import (
		"github.com/rmja/buffered-io/pkg/buffered/writer"
		"github.com/rmja/buffered-io/pkg/stream"
	)

	buf := make([]byte, 4096)
	w := writer.New(stream.FromWriter(conn), buf)

	w.Write(ctx, payload) // accumulated locally
	w.Flush(ctx)          // committed to conn in one write

The wrappers are single-owner state machines: they perform no internal
locking and must not be shared between goroutines without external
synchronization.
*/
package bufferedio
