package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/repository"
)

func newRedisStore(t *testing.T) (*repository.RedisStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	store := repository.NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { store.Close() })
	return store, mr
}

func TestRedisStore_PublishWritesSnapshot(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Publish(ctx, "metrics", `{"seq_id":1}`))

	got, err := mr.Get(repository.SnapshotKey("metrics"))
	require.NoError(t, err)
	assert.Equal(t, `{"seq_id":1}`, got)
	assert.True(t, mr.TTL(repository.SnapshotKey("metrics")) > 0)

	snaps, err := store.GetSnapshots(ctx, []string{"metrics", "view"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"metrics": `{"seq_id":1}`}, snaps)
}

func TestRedisStore_GetSnapshotsEmpty(t *testing.T) {
	store, _ := newRedisStore(t)
	snaps, err := store.GetSnapshots(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, snaps)
}

func TestRedisStore_PubSubDelivers(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, store.SubscribeToFeed(ctx, "view"))

	got := make(chan [2]string, 1)
	go store.RunPubSub(ctx, func(topic, payload string) {
		got <- [2]string{topic, payload}
	})

	// subscription confirmation is asynchronous in miniredis
	require.Eventually(t, func() bool {
		return mr.Publish(repository.Channel("view"), `{"view":"pricing"}`) > 0
	}, 2*time.Second, 20*time.Millisecond)

	select {
	case msg := <-got:
		assert.Equal(t, "view", msg[0])
		assert.Equal(t, `{"view":"pricing"}`, msg[1])
	case <-time.After(2 * time.Second):
		t.Fatal("no pubsub message delivered")
	}

	require.NoError(t, store.UnsubscribeFromFeed(ctx, "view"))
}
