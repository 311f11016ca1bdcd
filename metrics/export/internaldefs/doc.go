// Package internaldefs holds the metric name/help definitions shared by the
// Prometheus and OpenTelemetry exporters so both expose identical series.
// It is internal plumbing; import the exporter packages instead.
package internaldefs
