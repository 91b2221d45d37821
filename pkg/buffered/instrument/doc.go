/*
Package instrument provides a Prometheus-instrumented decorator for
stream capabilities.

Wrap the underlying stream before buffering to measure how buffering
amortizes operations:

	raw := stream.FromReadWriter(conn)
	observed := instrument.New(raw, "upstream")

	w := writer.New(observed, make([]byte, 4096))

Exposed counters (namespace bufferedio, subsystem stream): operations,
bytes and errors per direction, short writes, and flushes. Serve them
with promhttp as usual.
*/
package instrument
