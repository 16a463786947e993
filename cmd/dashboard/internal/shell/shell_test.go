package shell_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/shell"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/testutils"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/ticker"
	"github.com/shubham-shewale/uptip/pkg/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newShell() (*shell.Shell, *testutils.ManualClock) {
	sh := shell.New(zap.NewNop())
	clock := &testutils.ManualClock{CurrentTime: time.Unix(0, 0)}
	rnd := ticker.NewRealRand(7)
	sh.Attach(ticker.NewTicker(zap.NewNop(), sh, rnd, clock, 3*time.Second, "test"))
	return sh, clock
}

func TestShell_Defaults(t *testing.T) {
	sh := shell.New(zap.NewNop())
	assert.Equal(t, models.ViewLanding, sh.View())
	assert.Equal(t, models.DefaultLiveMetrics(), sh.Metrics())
	assert.False(t, sh.Running())
}

func TestShell_SetViewEveryMember(t *testing.T) {
	sh := shell.New(zap.NewNop())
	for _, v := range models.AllViews() {
		assert.Equal(t, v, sh.SetView(string(v)))
		assert.Equal(t, v, sh.View())
	}
}

func TestShell_NavigationScenario(t *testing.T) {
	sh := shell.New(zap.NewNop())
	require.Equal(t, models.ViewLanding, sh.View())

	sh.SetView("dashboard")
	assert.Equal(t, models.ViewDashboard, sh.View())

	sh.SetView("bogus")
	assert.Equal(t, models.ViewLanding, sh.View())
}

func TestShell_ViewListeners(t *testing.T) {
	sh := shell.New(zap.NewNop())
	var got []string
	sh.OnViewChange(func(requested string, active models.ViewID) {
		got = append(got, requested+"->"+string(active))
	})

	sh.SetView("vessels")
	sh.SetView("nope")
	assert.Equal(t, []string{"vessels->vessels", "nope->landing"}, got)
}

func TestShell_StartCloseLifecycle(t *testing.T) {
	sh, clock := newShell()

	require.NoError(t, sh.Start(context.Background()))
	assert.ErrorIs(t, sh.Start(context.Background()), shell.ErrAlreadyStarted)
	assert.True(t, sh.Running())

	for i := 0; i < 10; i++ {
		require.True(t, clock.Fire(time.Second))
	}
	sh.Close()
	sh.Close()

	m := sh.Metrics()
	assert.Equal(t, 47, m.OMCCount)
	assert.GreaterOrEqual(t, m.VesselCount, 1)
	assert.GreaterOrEqual(t, m.StockLevel, 20.0)
	assert.LessOrEqual(t, m.StockLevel, 100.0)

	// teardown stops the ticker even if time keeps moving
	for i := 0; i < 3; i++ {
		assert.False(t, clock.Fire(20*time.Millisecond))
	}
	assert.Equal(t, m, sh.Metrics())
	assert.False(t, sh.Running())
}

func TestShell_StartWithoutTicker(t *testing.T) {
	sh := shell.New(zap.NewNop())
	assert.Error(t, sh.Start(context.Background()))
}

func TestShell_ConcurrentReadersSingleWriter(t *testing.T) {
	sh, clock := newShell()
	require.NoError(t, sh.Start(context.Background()))
	defer sh.Close()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				snap := sh.Snapshot()
				if !snap.View.Valid() {
					t.Errorf("invalid view %q", snap.View)
				}
				if i%2 == 0 {
					sh.SetView(string(models.AllViews()[j%10]))
				}
			}
		}(i)
	}
	for i := 0; i < 20; i++ {
		clock.Fire(time.Second)
	}
	wg.Wait()
}
