package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shubham-shewale/uptip/pkg/models"
)

func TestLiveStream_DropsForSlowSubscribers(t *testing.T) {
	l := NewLiveStream()
	ch, release := l.Subscribe()
	defer release()

	for i := 1; i <= 10; i++ {
		assert.NoError(t, l.Publish(context.Background(), models.MetricsTick{SeqID: int64(i)}))
	}
	assert.Len(t, ch, cap(ch))
	assert.Equal(t, int64(1), (<-ch).SeqID)

	release()
	release()
	assert.Equal(t, 0, l.Subscribers())
}
