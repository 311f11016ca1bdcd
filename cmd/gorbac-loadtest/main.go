// Command gorbac-loadtest measures goRBAC check and mutation throughput
// against a Redis backend. Without -redis-addr (or REDIS_ADDR) it runs a
// local miniredis, which measures engine overhead rather than network.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	goRBAC "github.com/MrEthical07/goRBAC"
	"github.com/MrEthical07/goRBAC/role"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func main() {
	var (
		principals  = flag.Int("principals", 100000, "number of principals to seed")
		concurrency = flag.Int("concurrency", 256, "number of concurrent workers")
		ops         = flag.Int("ops", 200000, "operations per phase (check + mutate)")
		redisAddr   = flag.String("redis-addr", "", "redis address; if empty, REDIS_ADDR env or miniredis is used")
		prefix      = flag.String("prefix", "", "role key prefix; empty uses the engine default")
	)
	flag.Parse()

	if *principals <= 0 || *concurrency <= 0 || *ops <= 0 {
		fmt.Fprintln(os.Stderr, "principals, concurrency, and ops must be > 0")
		os.Exit(2)
	}

	ctx := context.Background()

	addr := *redisAddr
	if addr == "" {
		addr = os.Getenv("REDIS_ADDR")
	}

	var (
		cleanup func()
		client  *redis.Client
	)
	if addr == "" {
		mr, err := miniredis.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to start miniredis: %v\n", err)
			os.Exit(1)
		}
		addr = mr.Addr()
		client = redis.NewClient(&redis.Options{Addr: addr})
		cleanup = func() {
			_ = client.Close()
			mr.Close()
		}
		fmt.Printf("using miniredis at %s\n", addr)
	} else {
		client = redis.NewClient(&redis.Options{Addr: addr})
		cleanup = func() { _ = client.Close() }
		fmt.Printf("using redis at %s\n", addr)
	}
	defer cleanup()

	cfg := goRBAC.DefaultConfig()
	cfg.Audit.Enabled = false
	if *prefix != "" {
		cfg.Store.RedisPrefix = *prefix
	}

	engine, err := goRBAC.New().
		WithConfig(cfg).
		WithRedis(client).
		WithLatencyHistograms(true).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "engine build failed: %v\n", err)
		os.Exit(1)
	}
	defer engine.Close()

	reader := role.Encode(0)
	writer := role.Encode(1)
	auditor := role.Encode(7)

	ids := make([]string, *principals)
	fmt.Printf("seeding %d principals...\n", *principals)
	startSeed := time.Now()
	for i := 0; i < *principals; i++ {
		ids[i] = uuid.NewString()
		seedRole := reader
		if i%2 == 0 {
			seedRole = role.Combine(reader, writer)
		}
		if err := engine.Grant(ctx, ids[i], seedRole); err != nil {
			fmt.Fprintf(os.Stderr, "seed grant failed: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Printf("seeded in %s\n", time.Since(startSeed).Round(time.Millisecond))

	checkStats := runCheckPhase(ctx, engine, ids, role.Combine(reader, writer), *ops, *concurrency)
	mutateStats := runMutatePhase(ctx, engine, ids, auditor, *ops, *concurrency)

	fmt.Println("---- results ----")
	printStats("check", checkStats)
	printStats("mutate", mutateStats)

	snapshot := engine.MetricsSnapshot()
	fmt.Printf("allowed=%d denied=%d grants=%d revokes=%d store_errors=%d\n",
		snapshot.Counters[goRBAC.MetricCheckAllowed],
		snapshot.Counters[goRBAC.MetricCheckDenied],
		snapshot.Counters[goRBAC.MetricGrant],
		snapshot.Counters[goRBAC.MetricRevoke],
		snapshot.Counters[goRBAC.MetricStoreError],
	)
}

func runCheckPhase(ctx context.Context, engine *goRBAC.Engine, ids []string, required role.Role, ops, concurrency int) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, ops)
		mu        sync.Mutex
	)

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)*7919))
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}
				idx := r.Intn(len(ids))
				t0 := time.Now()
				err := engine.RequireAny(ctx, ids[idx], required)
				d := time.Since(t0)
				if err != nil {
					atomic.AddInt64(&failures, 1)
				}
				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()
	total := time.Since(start)
	return computeStats(total, latencies, failures)
}

func runMutatePhase(ctx context.Context, engine *goRBAC.Engine, ids []string, target role.Role, ops, concurrency int) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, ops)
		mu        sync.Mutex
	)

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)*6151))
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}
				idx := r.Intn(len(ids))

				t0 := time.Now()
				var err error
				if i%2 == 0 {
					err = engine.Grant(ctx, ids[idx], target)
				} else {
					err = engine.Revoke(ctx, ids[idx], target)
				}
				d := time.Since(t0)
				if err != nil {
					atomic.AddInt64(&failures, 1)
				}

				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()
	total := time.Since(start)
	return computeStats(total, latencies, failures)
}

type phaseStats struct {
	total    time.Duration
	ops      int
	failures int64
	p50      time.Duration
	p95      time.Duration
	p99      time.Duration
	opsPerS  float64
}

func computeStats(total time.Duration, samples []time.Duration, failures int64) phaseStats {
	if len(samples) == 0 {
		return phaseStats{total: total}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	return phaseStats{
		total:    total,
		ops:      len(samples),
		failures: failures,
		p50:      percentile(samples, 50),
		p95:      percentile(samples, 95),
		p99:      percentile(samples, 99),
		opsPerS:  float64(len(samples)) / total.Seconds(),
	}
}

func percentile(samples []time.Duration, p int) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	if p <= 0 {
		return samples[0]
	}
	if p >= 100 {
		return samples[len(samples)-1]
	}
	idx := (len(samples) - 1) * p / 100
	return samples[idx]
}

func printStats(name string, s phaseStats) {
	fmt.Printf("%s: ops=%d failures=%d total=%s ops/sec=%.0f p50=%s p95=%s p99=%s\n",
		name,
		s.ops,
		s.failures,
		s.total.Round(time.Millisecond),
		s.opsPerS,
		s.p50.Round(time.Microsecond),
		s.p95.Round(time.Microsecond),
		s.p99.Round(time.Microsecond),
	)
}
