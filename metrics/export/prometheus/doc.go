// Package prometheus renders goRBAC metrics in Prometheus text exposition
// format.
//
// [NewPrometheusExporter] accepts a [goRBAC.Engine] and exposes an
// http.Handler that renders all counters and the check-latency histogram.
// Counter names are prefixed gorbac_*_total; the histogram is
// gorbac_check_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the
//     Handler.
//   - Mutate engine state.
package prometheus
