/*
Package buffered contains fixed-capacity buffering wrappers for byte
streams.

This package provides three components:

  - reader: buffered reads with a peek/consume interface and a
    large-transfer fast path
  - writer: buffered writes with partial-flush recovery and a strict
    error-retry contract
  - instrument: a Prometheus-instrumented stream decorator for observing
    how buffering amortizes underlying operations

Both wrappers borrow their buffer from the caller, never allocate, and
are single-owner: no internal locking is performed and sharing a wrapper
between goroutines without external synchronization is a caller bug.

Basic usage:

	buf := make([]byte, 4096)
	w := writer.New(stream.FromWriter(conn), buf)

	w.Write(ctx, payload)
	w.Flush(ctx)
*/
package buffered
