package battles_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokebattle/battle-api/internal/repositories/battles"
	"github.com/pokebattle/battle-api/internal/testutils"
)

func TestRepairRedis(t *testing.T) {
	client, server, cleanup := testutils.CreateTestRedisServer(t)
	defer cleanup()
	ctx := context.Background()

	repo := battles.NewRedisRepository(client, 0)
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for _, id := range []string{"battle_1", "battle_2"} {
		_, err := repo.Record(ctx, &battles.RecordInput{Record: &battles.Record{
			ID: id, Pokemon1: "pikachu", Pokemon2: "eevee", Winner: "pikachu", Outcome: "knockout",
			CreatedAt: created,
		}})
		require.NoError(t, err)
		created = created.Add(time.Minute)
	}

	require.NoError(t, server.Set("battle:broken", "{not json"))
	_, err := server.ZRem("battles:by_time", "battle_2")
	require.NoError(t, err)
	_, err = server.ZAdd("battles:by_time", 1, "battle_gone")
	require.NoError(t, err)

	report, err := battles.RepairRedis(ctx, client, false)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Checked)
	assert.Equal(t, []string{"battle:broken"}, report.Corrupted)
	assert.Equal(t, []string{"battle_2"}, report.Unindexed)
	assert.Equal(t, []string{"battle_gone"}, report.Orphaned)
	assert.False(t, report.Clean())
	assert.True(t, server.Exists("battle:broken"), "dry run must not change data")

	_, err = battles.RepairRedis(ctx, client, true)
	require.NoError(t, err)

	report, err = battles.RepairRedis(ctx, client, false)
	require.NoError(t, err)
	assert.True(t, report.Clean())
	assert.Equal(t, 2, report.Checked)

	out, err := repo.List(ctx, &battles.ListInput{})
	require.NoError(t, err)
	require.Len(t, out.Records, 2)
	assert.Equal(t, "battle_2", out.Records[0].ID)
}
