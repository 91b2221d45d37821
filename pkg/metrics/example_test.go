package metrics_test

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/rmja/buffered-io/pkg/metrics"
)

// Example demonstrates creating an isolated metrics registry.
func Example() {
	reg := metrics.NewRegistry(prometheus.NewRegistry())

	reg.StreamOperations.WithLabelValues("write", "demo").Inc()
	reg.StreamBytes.WithLabelValues("write", "demo").Add(4096)

	fmt.Println(promtestutil.ToFloat64(reg.StreamOperations.WithLabelValues("write", "demo")))
	fmt.Println(promtestutil.ToFloat64(reg.StreamBytes.WithLabelValues("write", "demo")))

	// Output:
	// 1
	// 4096
}
