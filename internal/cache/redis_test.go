package cache

import (
	"context"
	"testing"
	"time"

	"vitaverse/internal/leaderboard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) *RedisClient {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctr.Terminate(context.Background()) })

	endpoint, err := ctr.Endpoint(ctx, "")
	require.NoError(t, err)

	client, err := NewRedisClient(ctx, "redis://"+endpoint+"/0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestSnapshotRoundTrip(t *testing.T) {
	client := startRedis(t)
	ctx := context.Background()

	score := 42.5
	snap := &leaderboard.Snapshot{
		Users: []leaderboard.RawUser{
			{Address: "0x1111111111111111111111111111111111111111", StreakDays: 3, Score: &score},
			{Address: "0x2222222222222222222222222222222222222222", ExerciseMinutes: 90},
		},
		FetchedAt: time.Now().UTC().Truncate(time.Millisecond),
		Source:    leaderboard.SourceTop,
	}

	_, found, err := client.LoadSnapshot(ctx, leaderboard.SourceTop)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, client.SaveSnapshot(ctx, snap, time.Minute))

	got, found, err := client.LoadSnapshot(ctx, leaderboard.SourceTop)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, snap.FetchedAt.Equal(got.FetchedAt))
	assert.Equal(t, snap.Users, got.Users)

	require.NoError(t, client.InvalidateSnapshots(ctx))
	_, found, err = client.LoadSnapshot(ctx, leaderboard.SourceTop)
	require.NoError(t, err)
	assert.False(t, found)

	status, err := client.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, true, status["connected"])
}

func TestNewRedisClientRejectsBadURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "not a url")
	assert.Error(t, err)
}
