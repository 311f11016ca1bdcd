package goRBAC

import "errors"

// Config groups the engine's tunables. The zero value is not usable; start
// from [DefaultConfig].
//
// Config instances are intended to be configured during initialization and
// then treated as immutable.
type Config struct {
	Store   StoreConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

/*
====================================
STORE CONFIG
====================================
*/

// StoreConfig controls the Redis-backed role store. It is ignored when a
// custom [RoleStore] is injected through [Builder.WithStore].
type StoreConfig struct {
	// RedisPrefix namespaces every role key. The default is derived from a
	// hash of the storage namespace string and must stay stable across
	// releases for existing data to remain addressable; override it only to
	// run several engine instances against one Redis.
	RedisPrefix string
	// WatchRetries bounds the optimistic retry loop of a mutation when the
	// watched key changes underneath it.
	WatchRetries int
}

/*
====================================
AUDIT CONFIG
====================================
*/

// AuditConfig controls the asynchronous audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig controls the in-process metrics counters.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

// DefaultConfig returns the configuration the engine is tested with: audit
// and metrics enabled, audit buffer of 256 events, blocking emit.
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		Store: StoreConfig{
			RedisPrefix:  defaultRedisPrefix(),
			WatchRetries: 4,
		},
		Audit: AuditConfig{
			Enabled:    true,
			BufferSize: 256,
			DropIfFull: false,
		},
		Metrics: MetricsConfig{
			Enabled:                 true,
			EnableLatencyHistograms: false,
		},
	}
}

func cloneConfig(cfg Config) Config {
	// All fields are value types today; the clone exists so Builder and
	// Engine never alias a caller-held Config.
	return cfg
}

// Validate reports configuration errors before Build wires anything.
func (c Config) Validate() error {
	if c.Store.RedisPrefix == "" {
		return errors.New("Store.RedisPrefix must not be empty")
	}
	if c.Store.WatchRetries <= 0 {
		return errors.New("Store.WatchRetries must be > 0")
	}
	if c.Audit.Enabled && c.Audit.BufferSize < 0 {
		return errors.New("Audit.BufferSize must be >= 0")
	}
	return nil
}
