package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/protocol"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/testutils"
	"github.com/shubham-shewale/uptip/pkg/config"
)

func TestNewApp_ViewTopicHasSnapshotBeforeNavigation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := &config.Config{}
	cfg.Gateway.Feed = config.FeedLocal
	cfg.Ticker.Interval = time.Second
	cfg.Ticker.Source = "test-shell"

	a, err := newApp(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	defer a.close()

	client := testutils.NewMockClient("c1")
	a.hub.HandleCommand(client, protocol.WSRequest{
		Action:  "subscribe",
		Payload: protocol.RequestPayload{Topics: []string{protocol.TopicView}},
	})

	require.Eventually(t, func() bool {
		for _, raw := range client.Raw() {
			if strings.Contains(raw, `{"view":"landing"}`) {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, "ack", client.LastMsgType())
}
