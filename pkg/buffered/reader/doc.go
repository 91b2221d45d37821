/*
Package reader provides a buffered reader over an abstract byte stream.

Reader serves small reads from a caller-supplied fixed-capacity buffer
that is refilled with one larger read against the underlying stream,
reducing the number of expensive operations (syscalls, network round
trips, peripheral transactions).

# Quick Start

	buf := make([]byte, 4096)
	r := reader.New(stream.FromReader(conn), buf)

	p := make([]byte, 64)
	n, err := r.Read(ctx, p)

# Fast Path

A read issued while the buffer is empty, with a destination at least as
large as the internal buffer, bypasses the buffer entirely: the bytes are
transferred with exactly one call into the underlying stream and are never
copied twice.

# Peek and Consume

	view, err := r.Peek(ctx) // buffered unread bytes, refill if empty
	header := view[:4]
	r.Consume(4)             // advance past what was used

Peek never discards unread bytes; two Peek calls without an intervening
Consume return the identical view. Consume beyond Available panics.

# Bypass and Release

Bypass returns the underlying stream only when the buffer is empty,
failing with errors.ErrBypass otherwise. Release returns the underlying
stream unconditionally and discards any buffered unread bytes - prefer
Bypass unless the loss is intended.
*/
package reader
