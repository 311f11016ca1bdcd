package goRBAC

import (
	"errors"

	"github.com/MrEthical07/goRBAC/role"
	"github.com/redis/go-redis/v9"
)

// Builder assembles an [Engine]. Exactly one storage backend must be
// provided: a Redis client ([Builder.WithRedis]) or a custom [RoleStore]
// ([Builder.WithStore]). A Builder is single-use.
type Builder struct {
	config Config
	redis  *redis.Client
	store  RoleStore

	roleNames []string
	auditSink AuditSink

	built bool
}

// New returns a Builder seeded with [DefaultConfig].
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithRedis selects the Redis-backed role store.
func (b *Builder) WithRedis(client *redis.Client) *Builder {
	b.redis = client
	return b
}

// WithStore injects a custom role store, e.g. [MemoryRoleStore] for tests or
// single-process embedding.
func (b *Builder) WithStore(store RoleStore) *Builder {
	b.store = store
	return b
}

// WithRoleNames registers symbolic role names, assigned bit identifiers in
// the given order. Optional; engines without names use raw [role.Encode]
// values only.
func (b *Builder) WithRoleNames(names ...string) *Builder {
	b.roleNames = names
	return b
}

func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build validates the configuration, wires the store, registry, audit
// dispatcher, and metrics, and returns the ready engine.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if b.redis == nil && b.store == nil {
		return nil, errors.New("redis client or role store required")
	}
	if b.redis != nil && b.store != nil {
		return nil, errors.New("redis client and custom store are mutually exclusive")
	}

	store := b.store
	if store == nil {
		store = newRedisRoleStore(b.redis, cfg.Store)
	}

	var registry *role.Registry
	if len(b.roleNames) > 0 {
		registry = role.NewRegistry()
		for _, name := range b.roleNames {
			if _, err := registry.Register(name); err != nil {
				return nil, err
			}
		}
		registry.Freeze()
	}

	engine := &Engine{
		config:   cfg,
		store:    store,
		registry: registry,
		audit:    newAuditDispatcher(cfg.Audit, b.auditSink),
		metrics:  NewMetrics(cfg.Metrics),
	}

	b.built = true

	return engine, nil
}
