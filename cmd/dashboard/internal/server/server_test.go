package server_test

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/server"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/shell"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/telemetry"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/views"
	"github.com/shubham-shewale/uptip/pkg/models"
)

type fixture struct {
	shell   *shell.Shell
	live    *server.LiveStream
	metrics *telemetry.Registry
	ts      *httptest.Server
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	renderer, err := views.NewRenderer()
	require.NoError(t, err)

	f := &fixture{
		shell:   shell.New(zap.NewNop()),
		live:    server.NewLiveStream(),
		metrics: telemetry.NewRegistry(),
	}
	srv := server.New(f.shell, renderer, server.Options{
		Live:    f.live,
		Metrics: f.metrics,
		Rand:    views.NewRand(1),
		Now:     func() time.Time { return time.Date(2024, 12, 16, 9, 0, 0, 0, time.UTC) },
	}, zap.NewNop())
	f.ts = httptest.NewServer(srv.Handler())
	t.Cleanup(f.ts.Close)
	return f
}

func (f *fixture) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(f.ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestIndex_RendersLanding(t *testing.T) {
	f := newFixture(t)
	resp, body := f.get(t, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, "<h1>UNOC PetroTrade Intelligence Platform</h1>")
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestView_NavigatesAndRenders(t *testing.T) {
	f := newFixture(t)

	resp, body := f.get(t, "/view/dashboard")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "<h1>UPTIP Command Center</h1>")
	assert.Equal(t, models.ViewDashboard, f.shell.View())

	// the active view sticks for /
	_, body = f.get(t, "/")
	assert.Contains(t, body, "<h1>UPTIP Command Center</h1>")
}

func TestView_UnknownFallsBackToLanding(t *testing.T) {
	f := newFixture(t)
	f.shell.SetView("vessels")

	resp, body := f.get(t, "/view/bogus")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "<h1>UNOC PetroTrade Intelligence Platform</h1>")
	assert.Equal(t, models.ViewLanding, f.shell.View())
}

func TestView_EveryViewRenders(t *testing.T) {
	f := newFixture(t)
	for _, v := range models.AllViews() {
		resp, _ := f.get(t, "/view/"+string(v))
		assert.Equal(t, http.StatusOK, resp.StatusCode, "view %s", v)
		assert.Equal(t, v, f.shell.View())
	}
}

func TestView_QueryStateReachesBuilder(t *testing.T) {
	f := newFixture(t)
	_, body := f.get(t, "/view/supply?days=7&product=AGO")
	assert.Contains(t, body, "7-Day Demand Forecast · AGO")
}

func TestAPI_State(t *testing.T) {
	f := newFixture(t)
	resp, body := f.get(t, "/api/state")
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var st shell.State
	require.NoError(t, json.Unmarshal([]byte(body), &st))
	assert.Equal(t, models.ViewLanding, st.View)
	assert.Equal(t, models.DefaultLiveMetrics(), st.Metrics)
}

func TestAPI_SetView(t *testing.T) {
	f := newFixture(t)

	resp, err := http.Post(f.ts.URL+"/api/view", "application/json", strings.NewReader(`{"view":"Vessels"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var st shell.State
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
	assert.Equal(t, models.ViewVessels, st.View)

	bad, err := http.Post(f.ts.URL+"/api/view", "application/json", strings.NewReader(`{"view":`))
	require.NoError(t, err)
	bad.Body.Close()
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)
	assert.Equal(t, models.ViewVessels, f.shell.View())
}

func TestAPI_Views(t *testing.T) {
	f := newFixture(t)
	f.shell.SetView("market")
	_, body := f.get(t, "/api/views")

	var list []struct {
		ID     models.ViewID `json:"id"`
		Title  string        `json:"title"`
		Active bool          `json:"active"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Len(t, list, 10)
	for _, v := range list {
		assert.Equal(t, v.ID == models.ViewMarket, v.Active, v.ID)
	}
}

func TestExport_IsInert(t *testing.T) {
	f := newFixture(t)
	resp, body := f.get(t, "/export/dashboard")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, body)
	assert.Equal(t, models.ViewLanding, f.shell.View())
}

func TestHealthAndMetrics(t *testing.T) {
	f := newFixture(t)
	resp, body := f.get(t, "/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"status":"ok"`)

	f.get(t, "/view/pricing")
	_, body = f.get(t, "/metrics")
	assert.Contains(t, body, `uptip_view_renders_total{view="pricing"} 1`)
}

func TestWS_DisabledWithoutHub(t *testing.T) {
	f := newFixture(t)
	resp, _ := f.get(t, "/ws")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestLive_StreamsSnapshotThenTicks(t *testing.T) {
	f := newFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.ts.URL+"/live", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	next := func() models.MetricsTick {
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if data, ok := strings.CutPrefix(strings.TrimSpace(line), "data: "); ok {
				var tick models.MetricsTick
				require.NoError(t, json.Unmarshal([]byte(data), &tick))
				return tick
			}
		}
	}

	first := next()
	assert.Equal(t, "snapshot", first.Source)
	assert.Equal(t, 4285.0, first.Metrics.Price)

	require.Eventually(t, func() bool { return f.live.Subscribers() == 1 }, time.Second, 10*time.Millisecond)
	want := models.MetricsTick{Source: "test", SeqID: 9, Metrics: models.LiveMetrics{Price: 4290, VesselCount: 2, StockLevel: 70, OMCCount: 47}}
	require.NoError(t, f.live.Publish(context.Background(), want))
	assert.Equal(t, want, next())

	cancel()
	require.Eventually(t, func() bool { return f.live.Subscribers() == 0 }, time.Second, 10*time.Millisecond)
}

func TestShutdown_EndsOpenLiveStreams(t *testing.T) {
	renderer, err := views.NewRenderer()
	require.NoError(t, err)
	live := server.NewLiveStream()
	srv := server.New(shell.New(zap.NewNop()), renderer, server.Options{Live: live}, zap.NewNop())

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	served := make(chan error, 1)
	go func() { served <- srv.Serve(l) }()

	resp, err := http.Get("http://" + l.Addr().String() + "/live")
	require.NoError(t, err)
	defer resp.Body.Close()
	line, err := bufio.NewReader(resp.Body).ReadString('\n')
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(line, "data: "))
	require.Eventually(t, func() bool { return live.Subscribers() == 1 }, time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	start := time.Now()
	require.NoError(t, srv.Shutdown(ctx))
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, 0, live.Subscribers())

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after Shutdown")
	}
}
