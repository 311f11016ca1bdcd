package internaldefs

import (
	goRBAC "github.com/MrEthical07/goRBAC"
)

// CounterDef binds a goRBAC counter to its exported series name.
type CounterDef struct {
	ID   goRBAC.MetricID
	Name string
	Help string
}

// HistogramDef binds a goRBAC histogram to its exported series name.
type HistogramDef struct {
	ID   goRBAC.MetricID
	Name string
	Help string
}

var CounterDefs = []CounterDef{
	{ID: goRBAC.MetricGrant, Name: "gorbac_grant_total", Help: "Role grant operations."},
	{ID: goRBAC.MetricRevoke, Name: "gorbac_revoke_total", Help: "Role revoke operations."},
	{ID: goRBAC.MetricBatchGrant, Name: "gorbac_batch_grant_total", Help: "Principals granted through batch operations."},
	{ID: goRBAC.MetricBatchRevoke, Name: "gorbac_batch_revoke_total", Help: "Principals revoked through batch operations."},
	{ID: goRBAC.MetricCheckAllowed, Name: "gorbac_check_allowed_total", Help: "Enforcement checks that passed."},
	{ID: goRBAC.MetricCheckDenied, Name: "gorbac_check_denied_total", Help: "Enforcement checks that failed."},
	{ID: goRBAC.MetricStoreError, Name: "gorbac_store_error_total", Help: "Operations aborted by role store failures."},
}

var HistogramDefs = []HistogramDef{
	{ID: goRBAC.MetricCheckLatency, Name: "gorbac_check_latency_seconds", Help: "Enforcement check latency histogram."},
}

// HistogramBounds are the upper bounds of the engine's fixed latency buckets,
// in seconds, as rendered in le labels.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix mirrors HistogramBounds with characters legal in
// OpenTelemetry instrument names.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets pads or truncates a raw snapshot slice to the fixed
// bucket count.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts into the cumulative form both
// exposition formats expect.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
