package goRBAC

import "testing"

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Store.RedisPrefix != defaultRedisPrefix() {
		t.Fatalf("RedisPrefix = %s, want %s", cfg.Store.RedisPrefix, defaultRedisPrefix())
	}
	if cfg.Store.WatchRetries != 4 {
		t.Fatalf("WatchRetries = %d, want 4", cfg.Store.WatchRetries)
	}
	if !cfg.Audit.Enabled || cfg.Audit.BufferSize != 256 {
		t.Fatalf("audit defaults = %+v", cfg.Audit)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("metrics must default to enabled")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty prefix", func(c *Config) { c.Store.RedisPrefix = "" }},
		{"zero retries", func(c *Config) { c.Store.WatchRetries = 0 }},
		{"negative retries", func(c *Config) { c.Store.WatchRetries = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCloneConfigDetachesCaller(t *testing.T) {
	cfg := DefaultConfig()
	clone := cloneConfig(cfg)

	cfg.Store.RedisPrefix = "mutated"
	if clone.Store.RedisPrefix == "mutated" {
		t.Fatal("clone must not alias the source config")
	}
}
