package telemetry

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/rueidis"
	"go.uber.org/zap"

	"github.com/kailas-cloud/adscout/internal/domain"
)

// RedisConfig holds connection parameters for the Redis recorder.
type RedisConfig struct {
	Addrs     []string
	Password  string
	KeyPrefix string
}

// Redis persists telemetry counters across restarts and instances.
// Every write is best-effort: failures are logged at debug and dropped.
type Redis struct {
	client rueidis.Client
	prefix string
	logger *zap.Logger
}

// NewRedis creates a Redis-backed recorder via rueidis.
func NewRedis(cfg RedisConfig, logger *zap.Logger) (*Redis, error) {
	if len(cfg.Addrs) == 0 {
		return nil, fmt.Errorf("addrs is required")
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  cfg.Addrs,
		Password:     cfg.Password,
		DisableCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &Redis{client: client, prefix: cfg.KeyPrefix, logger: logger}, nil
}

// Close shuts down the client.
func (r *Redis) Close() {
	r.client.Close()
}

// Ping checks connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	cmd := r.client.B().Ping().Build()
	if err := r.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

func (r *Redis) key(suffix string) string { return r.prefix + "telemetry:" + suffix }

// RecordSearch implements Recorder.
func (r *Redis) RecordSearch(ctx context.Context, query string, engine domain.EngineType, latency time.Duration) {
	cmds := []rueidis.Completed{
		r.client.B().Incrby().Key(r.key("searches")).Increment(1).Build(),
		r.client.B().Hincrby().Key(r.key("engines")).Field(string(engine)).Increment(1).Build(),
		r.client.B().Zincrby().Key(r.key("queries")).Increment(1).Member(query).Build(),
		r.client.B().Incrby().Key(r.key("latency_ms_sum")).Increment(latency.Milliseconds()).Build(),
		r.client.B().Incrby().Key(r.key("latency_samples")).Increment(1).Build(),
	}
	for _, resp := range r.client.DoMulti(ctx, cmds...) {
		if err := resp.Error(); err != nil {
			r.logger.Debug("telemetry write dropped", zap.Error(err))
			return
		}
	}
}

// RecordInsight implements Recorder.
func (r *Redis) RecordInsight(ctx context.Context, title, source string) {
	cmds := []rueidis.Completed{
		r.client.B().Hincrby().Key(r.key("insight_sources")).Field(source).Increment(1).Build(),
		r.client.B().Zincrby().Key(r.key("insight_titles")).Increment(1).Member(title).Build(),
	}
	for _, resp := range r.client.DoMulti(ctx, cmds...) {
		if err := resp.Error(); err != nil {
			r.logger.Debug("telemetry write dropped", zap.Error(err))
			return
		}
	}
}

// Summary implements Recorder.
func (r *Redis) Summary(ctx context.Context) (domain.TelemetrySummary, error) {
	var s domain.TelemetrySummary

	total, err := r.getInt(ctx, r.key("searches"))
	if err != nil {
		return s, err
	}
	s.TotalSearches = total

	engines, err := r.client.Do(ctx, r.client.B().Hgetall().Key(r.key("engines")).Build()).AsStrMap()
	if err != nil {
		return s, fmt.Errorf("engine breakdown: %w", err)
	}
	s.EngineBreakdown = make(map[string]int64, len(engines))
	for k, v := range engines {
		n, _ := strconv.ParseInt(v, 10, 64)
		s.EngineBreakdown[k] = n
	}

	top, err := r.client.Do(ctx,
		r.client.B().Zrevrangebyscore().Key(r.key("queries")).Max("+inf").Min("-inf").
			Withscores().Limit(0, topQueryLimit).Build(),
	).AsZScores()
	if err != nil {
		return s, fmt.Errorf("top queries: %w", err)
	}
	s.TopQueries = make([]domain.QueryCount, 0, len(top))
	for _, z := range top {
		s.TopQueries = append(s.TopQueries, domain.QueryCount{Query: z.Member, Count: int64(z.Score)})
	}

	sum, err := r.getInt(ctx, r.key("latency_ms_sum"))
	if err != nil {
		return s, err
	}
	samples, err := r.getInt(ctx, r.key("latency_samples"))
	if err != nil {
		return s, err
	}
	if samples > 0 {
		avg := float64(sum) / float64(samples)
		s.AvgLatencyMS = &avg
	}

	return s, nil
}

func (r *Redis) getInt(ctx context.Context, key string) (int64, error) {
	n, err := r.client.Do(ctx, r.client.B().Get().Key(key).Build()).AsInt64()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("get %s: %w", key, err)
	}
	return n, nil
}
