package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"pharmacy-records/internal/infrastructure/metrics"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key layout: reports:<generation>:<report>:<args>
	RedisReportKeyPrefix     = "reports:"
	RedisReportGenerationKey = "reports:generation"

	// Timeout for individual Redis operations
	reportCacheTimeout = 2 * time.Second
)

// ReportCache is a cache-aside layer for report results.
//
// Every committed mutation bumps a generation counter and every cache key
// embeds the generation it was read under, so a write makes all previously
// cached reports unreachable without scanning or deleting keys. Old entries
// age out through their TTL.
//
// A nil Redis client disables the cache: lookups miss and writes are no-ops.
type ReportCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
	metrics     *metrics.Metrics
}

func NewReportCache(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration, m *metrics.Metrics) *ReportCache {
	return &ReportCache{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
		metrics:     m,
	}
}

func (c *ReportCache) Enabled() bool {
	return c != nil && c.redisClient != nil
}

// Invalidate moves every reader to a fresh generation.
func (c *ReportCache) Invalidate(ctx context.Context) error {
	if !c.Enabled() {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, reportCacheTimeout)
	defer cancel()

	if err := c.redisClient.Incr(ctx, RedisReportGenerationKey).Err(); err != nil {
		return fmt.Errorf("bump report generation: %w", err)
	}
	return nil
}

func (c *ReportCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.redisClient.Get(ctx, RedisReportGenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func reportKey(generation int64, report string, args []string) string {
	return fmt.Sprintf("%s%d:%s:%s", RedisReportKeyPrefix, generation, report, strings.Join(args, ":"))
}

// Get loads a cached report into dest. The returned key is where a miss should be stored.
func (c *ReportCache) Get(ctx context.Context, report string, args []string, dest interface{}) (string, bool, error) {
	if !c.Enabled() {
		return "", false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, reportCacheTimeout)
	defer cancel()

	gen, err := c.generation(ctx)
	if err != nil {
		return "", false, fmt.Errorf("read report generation: %w", err)
	}

	key := reportKey(gen, report, args)
	payload, err := c.redisClient.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		c.record(report, false)
		return key, false, nil
	}
	if err != nil {
		return key, false, fmt.Errorf("read report %s: %w", key, err)
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		return key, false, fmt.Errorf("decode report %s: %w", key, err)
	}

	c.record(report, true)
	return key, true, nil
}

// Set stores a report under a key previously returned by Get.
func (c *ReportCache) Set(ctx context.Context, key string, value interface{}) error {
	if !c.Enabled() || key == "" {
		return nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode report %s: %w", key, err)
	}

	ctx, cancel := context.WithTimeout(ctx, reportCacheTimeout)
	defer cancel()

	if err := c.redisClient.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("write report %s: %w", key, err)
	}
	return nil
}

func (c *ReportCache) record(report string, hit bool) {
	if c.metrics != nil {
		c.metrics.RecordCacheLookup(report, hit)
	}
}

// Cached serves a report from the cache, falling back to load on a miss.
// Cache failures are logged and never fail the report.
func Cached[T any](ctx context.Context, c *ReportCache, report string, args []string, load func() (T, error)) (T, error) {
	var cached T
	key, hit, err := c.Get(ctx, report, args, &cached)
	if err != nil {
		c.log.Warnf("Report cache read failed for %s: %+v", report, err)
	}
	if hit {
		return cached, nil
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	if err := c.Set(ctx, key, value); err != nil {
		c.log.Warnf("Report cache write failed for %s: %+v", report, err)
	}
	return value, nil
}
