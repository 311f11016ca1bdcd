// Package otel exports goRBAC metrics through OpenTelemetry observable
// instruments.
//
// [NewOTelExporter] registers a callback on the provided meter that reads a
// fresh engine snapshot on every collection. Close unregisters the callback.
//
// # What this package must NOT do
//
//   - Own a MeterProvider; the caller supplies the meter and its lifecycle.
//   - Push metrics; collection is entirely reader-driven.
package otel
