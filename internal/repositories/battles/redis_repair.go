package battles

import (
	"context"
	"encoding/json"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/pokebattle/battle-api/internal/errors"
	redisclient "github.com/pokebattle/battle-api/internal/redis"
)

// RepairReport lists inconsistencies found in the Redis battle history
type RepairReport struct {
	Checked int
	// Corrupted keys hold data that does not decode to a battle
	Corrupted []string
	// Unindexed ids have a stored battle but no entry in the time index
	Unindexed []string
	// Orphaned ids are in the time index without a stored battle
	Orphaned []string
}

// Clean reports whether no inconsistencies were found
func (r *RepairReport) Clean() bool {
	return len(r.Corrupted) == 0 && len(r.Unindexed) == 0 && len(r.Orphaned) == 0
}

// RepairRedis scans the Redis battle history. With apply set, corrupted
// records are deleted, unindexed battles are added back to the time index
// and orphaned index entries are removed.
func RepairRedis(ctx context.Context, client redisclient.Client, apply bool) (*RepairReport, error) {
	report := &RepairReport{}
	indexed := make(map[string]bool)

	iter := client.Scan(ctx, 0, battleKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		report.Checked++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, errors.Wrapf(err, "failed to read %s", key)
		}

		var record Record
		if err := json.Unmarshal([]byte(data), &record); err != nil || record.ID == "" {
			report.Corrupted = append(report.Corrupted, key)
			if apply {
				if err := client.Del(ctx, key).Err(); err != nil {
					return nil, errors.Wrapf(err, "failed to delete %s", key)
				}
			}
			continue
		}

		id := strings.TrimPrefix(key, battleKeyPrefix)
		indexed[id] = true
		if err := client.ZScore(ctx, battlesByTime, id).Err(); err == nil {
			continue
		} else if err != redis.Nil {
			return nil, errors.Wrapf(err, "failed to check index for %s", id)
		}

		report.Unindexed = append(report.Unindexed, id)
		if apply {
			z := redis.Z{Score: float64(record.CreatedAt.UnixNano()), Member: id}
			if err := client.ZAdd(ctx, battlesByTime, z).Err(); err != nil {
				return nil, errors.Wrapf(err, "failed to index %s", id)
			}
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan battles")
	}

	members, err := client.ZRange(ctx, battlesByTime, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read battle index")
	}
	for _, id := range members {
		if !indexed[id] {
			report.Orphaned = append(report.Orphaned, id)
		}
	}
	if apply && len(report.Orphaned) > 0 {
		stale := make([]interface{}, len(report.Orphaned))
		for i, id := range report.Orphaned {
			stale[i] = id
		}
		if err := client.ZRem(ctx, battlesByTime, stale...).Err(); err != nil {
			return nil, errors.Wrap(err, "failed to remove orphaned index entries")
		}
	}

	return report, nil
}
