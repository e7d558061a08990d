package battles

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/pokebattle/battle-api/internal/errors"
	redisclient "github.com/pokebattle/battle-api/internal/redis"
)

const (
	battleKeyPrefix = "battle:"
	battlesByTime   = "battles:by_time"
)

type redisRepository struct {
	client     redisclient.Client
	maxRecords int64
}

// NewRedisRepository creates a Redis-backed battle repository. Each battle is
// stored as JSON under battle:{id} and indexed by time in a sorted set.
// maxRecords trims the oldest battles once exceeded; zero keeps everything.
func NewRedisRepository(client redisclient.Client, maxRecords int) Repository {
	return &redisRepository{
		client:     client,
		maxRecords: int64(maxRecords),
	}
}

func (r *redisRepository) Record(ctx context.Context, input *RecordInput) (*RecordOutput, error) {
	if err := validateRecord(input); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal battle")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, battleKeyPrefix+input.Record.ID, data, 0)
	pipe.ZAdd(ctx, battlesByTime, redis.Z{
		Score:  float64(input.Record.CreatedAt.UnixNano()),
		Member: input.Record.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to record battle")
	}

	if r.maxRecords > 0 {
		r.trim(ctx)
	}

	return &RecordOutput{Record: cloneRecord(input.Record)}, nil
}

func (r *redisRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	limit := int64(listLimit(input))

	ids, err := r.client.ZRevRange(ctx, battlesByTime, 0, limit-1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list battle ids")
	}
	if len(ids) == 0 {
		return &ListOutput{Records: []*Record{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = battleKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get battles")
	}

	records := make([]*Record, 0, len(values))
	for i, v := range values {
		// Index entries whose record is gone are skipped
		s, ok := v.(string)
		if !ok {
			continue
		}

		// Corrupt records are skipped; RepairRedis removes them
		var record Record
		if err := json.Unmarshal([]byte(s), &record); err != nil {
			slog.Warn("Skipping corrupt battle record",
				"battle_id", ids[i],
				"error", err,
			)
			continue
		}
		records = append(records, &record)
	}

	return &ListOutput{Records: records}, nil
}

// trim drops the oldest battles beyond maxRecords. Failures leave extra
// history behind and are only logged.
func (r *redisRepository) trim(ctx context.Context) {
	stale, err := r.client.ZRange(ctx, battlesByTime, 0, -r.maxRecords-1).Result()
	if err != nil {
		slog.Warn("Failed to trim battle history", "error", err)
		return
	}
	if len(stale) == 0 {
		return
	}

	keys := make([]string, len(stale))
	members := make([]interface{}, len(stale))
	for i, id := range stale {
		keys[i] = battleKeyPrefix + id
		members[i] = id
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, keys...)
	pipe.ZRem(ctx, battlesByTime, members...)
	if _, err := pipe.Exec(ctx); err != nil {
		slog.Warn("Failed to trim battle history",
			"stale", len(stale),
			"error", err,
		)
	}
}
