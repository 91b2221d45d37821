// Package metrics provides Prometheus instrumentation for buffered-io streams.
//
// Instrumentation is attached at the stream boundary, not inside the
// buffered wrappers: wrap an underlying stream with pkg/buffered/instrument
// and every operation the wrappers issue against it is counted. Comparing
// operation counts with and without buffering shows directly how well a
// buffer amortizes expensive transfers.
//
// # Quick Start
//
// Wrap the underlying stream and expose metrics via HTTP:
//
//	observed := instrument.New(stream.FromReadWriter(conn), "upstream")
//	w := writer.New(observed, make([]byte, 4096))
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Available Metrics
//
//   - bufferedio_stream_operations_total: Operations issued against the underlying stream
//   - bufferedio_stream_bytes_total: Bytes transferred through the underlying stream
//   - bufferedio_stream_errors_total: Errors returned by the underlying stream
//   - bufferedio_stream_short_writes_total: Writes that accepted fewer bytes than offered
//   - bufferedio_stream_flushes_total: Flushes issued against the underlying stream
//
// # Labels
//
//   - operation: "read", "write" or "flush"
//   - stream_name: User-provided name for the stream instance
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	reg := metrics.NewRegistry(registry)
//	observed := instrument.NewWithRegistry(inner, "upstream", reg)
package metrics
