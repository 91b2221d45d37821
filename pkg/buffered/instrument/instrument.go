package instrument

import (
	"context"

	"github.com/rmja/buffered-io/pkg/metrics"
	"github.com/rmja/buffered-io/pkg/stream"
)

// Stream decorates a stream capability with Prometheus counters for
// operations, bytes, short writes and errors against the underlying
// stream. Wrap the underlying stream before handing it to a buffered
// reader or writer to observe how well buffering amortizes operations.
//
// The buffered wrappers themselves report failure only through error
// returns; instrumentation lives in this decorator so the core stays
// diagnostic-free.
type Stream struct {
	inner stream.Stream
	name  string
	reg   *metrics.Registry
}

// New decorates inner with metrics recorded under the given stream name
// in the default registry.
func New(inner stream.Stream, name string) *Stream {
	return NewWithRegistry(inner, name, metrics.DefaultRegistry)
}

// NewWithRegistry decorates inner with metrics recorded in reg.
func NewWithRegistry(inner stream.Stream, name string, reg *metrics.Registry) *Stream {
	return &Stream{inner: inner, name: name, reg: reg}
}

// NewWithConfig decorates inner according to cfg. When cfg.Enabled is
// false the underlying stream is returned unwrapped, so disabling
// metrics costs nothing per operation. A nil cfg.Registry records into
// the default registry; otherwise the metric vectors are registered
// with the provided registerer.
func NewWithConfig(inner stream.Stream, name string, cfg metrics.Config) stream.Stream {
	if !cfg.Enabled {
		return inner
	}
	reg := metrics.DefaultRegistry
	if cfg.Registry != nil {
		reg = metrics.NewRegistry(cfg.Registry)
	}
	return NewWithRegistry(inner, name, reg)
}

// Read implements stream.Reader.
func (s *Stream) Read(ctx context.Context, p []byte) (int, error) {
	n, err := s.inner.Read(ctx, p)
	s.reg.StreamOperations.WithLabelValues("read", s.name).Inc()
	s.reg.StreamBytes.WithLabelValues("read", s.name).Add(float64(n))
	if err != nil {
		s.reg.StreamErrors.WithLabelValues("read", s.name).Inc()
	}
	return n, err
}

// Write implements stream.Writer.
func (s *Stream) Write(ctx context.Context, p []byte) (int, error) {
	n, err := s.inner.Write(ctx, p)
	s.reg.StreamOperations.WithLabelValues("write", s.name).Inc()
	s.reg.StreamBytes.WithLabelValues("write", s.name).Add(float64(n))
	if err != nil {
		s.reg.StreamErrors.WithLabelValues("write", s.name).Inc()
	} else if n < len(p) {
		s.reg.ShortWrites.WithLabelValues(s.name).Inc()
	}
	return n, err
}

// Flush implements stream.Writer.
func (s *Stream) Flush(ctx context.Context) error {
	err := s.inner.Flush(ctx)
	s.reg.Flushes.WithLabelValues(s.name).Inc()
	if err != nil {
		s.reg.StreamErrors.WithLabelValues("flush", s.name).Inc()
	}
	return err
}
