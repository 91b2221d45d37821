/*
Package writer provides a buffered writer over an abstract byte stream.

Writer accumulates small writes in a caller-supplied fixed-capacity
buffer and commits them to the underlying stream in larger batches,
reducing the number of expensive operations (syscalls, network round
trips, peripheral transactions).

# Quick Start

	buf := make([]byte, 4096)
	w := writer.New(stream.FromWriter(conn), buf)

	w.Write(ctx, header)
	w.Write(ctx, payload)
	w.Flush(ctx) // one write to conn

# Partial Writes

Write returns the number of bytes accepted, which may be less than
offered; loop or use WriteAll. When a buffer-full commit only partially
reaches the underlying stream, the unwritten tail is kept and no bytes
are lost.

# Error Retry Contract

If a commit to the underlying stream fails, the error is returned and the
writer's accumulated count is left exactly as before the failing call.
The caller must retry with the same bytes that were just passed (or a
prefix of them); retrying with different data silently corrupts the
pending buffered region. See Writer.Write.

# No Flush on Release

Release returns the underlying stream without flushing. Unflushed bytes
are lost. This is a deliberate design property: destruction never
performs I/O. Flush explicitly before releasing.
*/
package writer
