package tests

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/websocket" // Using Gorilla for the test CLIENT
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/gateway"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/hub"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/repository"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/server"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/shell"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/views"
	"github.com/shubham-shewale/uptip/pkg/models"
)

type env struct {
	ts    *httptest.Server
	mr    *miniredis.Miniredis
	shell *shell.Shell
	store *repository.RedisStore
}

func startServer(t *testing.T, limiter repository.RateLimiter) *env {
	mr := miniredis.RunT(t)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := repository.NewRedisStore(rdb)

	ctx, cancel := context.WithCancel(context.Background())
	sh := shell.New(zap.NewNop())
	wsHub := hub.NewHub(ctx, store, sh, zap.NewNop())
	sh.OnViewChange(func(_ string, active models.ViewID) {
		_ = wsHub.PublishView(context.Background(), active)
	})

	renderer, err := views.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	srv := server.New(sh, renderer, server.Options{
		Hub:     wsHub,
		Limiter: limiter,
		Rand:    views.NewRand(1),
	}, zap.NewNop())

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		ts.Close()
		cancel()
		store.Close()
	})
	return &env{ts: ts, mr: mr, shell: sh, store: store}
}

func connectWS(t *testing.T, serverURL string) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(serverURL, "http") + "/ws"
	wsConn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Failed to connect to websocket: %v", err)
	}
	return wsConn
}

func readUntil(t *testing.T, conn *websocket.Conn, want string) string {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("Did not receive %q: %v", want, err)
		}
		if strings.Contains(string(msg), want) {
			return string(msg)
		}
	}
}

// readAll waits until every wanted fragment has shown up, in any order.
func readAll(t *testing.T, conn *websocket.Conn, wants ...string) {
	t.Helper()
	pending := make(map[string]bool, len(wants))
	for _, w := range wants {
		pending[w] = true
	}
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for len(pending) > 0 {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("Still waiting for %v: %v", pending, err)
		}
		for w := range pending {
			if strings.Contains(string(msg), w) {
				delete(pending, w)
			}
		}
	}
}

func TestEndToEnd_FullFlow(t *testing.T) {
	e := startServer(t, nil)

	wsConn := connectWS(t, e.ts.URL)
	defer wsConn.Close()

	subMsg := `{"action": "subscribe", "payload": {"topics": ["Metrics"]}, "id": "t1"}`
	wsConn.WriteMessage(websocket.TextMessage, []byte(subMsg))

	_, msg, _ := wsConn.ReadMessage()
	if !strings.Contains(string(msg), "success") {
		t.Errorf("Expected subscription success, got: %s", msg)
	}

	go func() {
		time.Sleep(100 * time.Millisecond)
		e.mr.Publish(repository.Channel("metrics"), `{"source":"shell-a","seq_id":7,"metrics":{"price":4290.5}}`)
	}()

	msgStr := readUntil(t, wsConn, "4290.5")
	if !strings.Contains(msgStr, `"type":"metrics"`) {
		t.Errorf("Expected a metrics frame, got: %s", msgStr)
	}

	unsubMsg := `{"action": "unsubscribe", "payload": {"topics": ["metrics"]}, "id": "t2"}`
	wsConn.WriteMessage(websocket.TextMessage, []byte(unsubMsg))
	readUntil(t, wsConn, "Unsubscribed")
}

func TestEndToEnd_SnapshotOnSubscribe(t *testing.T) {
	e := startServer(t, nil)
	if err := e.store.Publish(context.Background(), "metrics", `{"source":"shell-a","seq_id":3,"metrics":{"price":4281}}`); err != nil {
		t.Fatalf("seed snapshot: %v", err)
	}

	wsConn := connectWS(t, e.ts.URL)
	defer wsConn.Close()

	wsConn.WriteMessage(websocket.TextMessage, []byte(`{"action":"subscribe","payload":{"topics":["metrics"]},"id":"s1"}`))
	readUntil(t, wsConn, `"seq_id":3`)
}

func TestEndToEnd_NavigateDrivesShell(t *testing.T) {
	e := startServer(t, nil)

	wsConn := connectWS(t, e.ts.URL)
	defer wsConn.Close()

	wsConn.WriteMessage(websocket.TextMessage, []byte(`{"action":"subscribe","payload":{"topics":["view"]},"id":"v1"}`))
	readUntil(t, wsConn, "success")

	wsConn.WriteMessage(websocket.TextMessage, []byte(`{"action":"navigate","payload":{"view":"vessels"},"id":"n1"}`))
	// the ack and the echo through the view topic race each other
	readAll(t, wsConn, "View vessels", `"type":"view","data":{"view":"vessels"}`)
	if got := e.shell.View(); got != models.ViewVessels {
		t.Errorf("Expected shell on vessels, got %s", got)
	}

	// HTTP navigation reaches websocket clients too
	resp, err := http.Get(e.ts.URL + "/view/pricing")
	if err != nil {
		t.Fatalf("GET /view/pricing: %v", err)
	}
	resp.Body.Close()
	readUntil(t, wsConn, `"data":{"view":"pricing"}`)
}

func TestEndToEnd_InvalidJSON(t *testing.T) {
	e := startServer(t, nil)

	wsConn := connectWS(t, e.ts.URL)
	defer wsConn.Close()

	wsConn.WriteMessage(websocket.TextMessage, []byte(`{invalid-json}`))

	_, msg, _ := wsConn.ReadMessage()
	msgStr := string(msg)
	if !strings.Contains(msgStr, "Invalid JSON") || !strings.Contains(msgStr, "error") {
		t.Errorf("Expected 'Invalid JSON' error, got: %s", msgStr)
	}
}

func TestEndToEnd_UnknownAction(t *testing.T) {
	e := startServer(t, nil)

	wsConn := connectWS(t, e.ts.URL)
	defer wsConn.Close()

	wsConn.WriteMessage(websocket.TextMessage, []byte(`{"action":"dance","id":"x1"}`))
	readUntil(t, wsConn, "Unknown action: dance")
}

func TestEndToEnd_MaxMessageSize(t *testing.T) {
	e := startServer(t, nil)

	wsConn := connectWS(t, e.ts.URL)
	defer wsConn.Close()

	largePayload := strings.Repeat("a", 513*1024)
	msg := fmt.Sprintf(`{"action": "subscribe", "payload": {"topics": ["%s"]}}`, largePayload)

	err := wsConn.WriteMessage(websocket.TextMessage, []byte(msg))
	if err != nil {
		t.Logf("Write failed immediately (expected): %v", err)
		return
	}

	wsConn.SetReadDeadline(time.Now().Add(1 * time.Second))
	_, _, err = wsConn.ReadMessage()
	if err == nil {
		t.Error("Expected connection to close due to large message, but read succeeded")
	}
}

func TestEndToEnd_UpgradeRateLimited(t *testing.T) {
	e := startServer(t, gateway.NewIPRateLimiter(0.001, 1))

	first := connectWS(t, e.ts.URL)
	defer first.Close()

	url := "ws" + strings.TrimPrefix(e.ts.URL, "http") + "/ws"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("Expected second upgrade to be refused")
	}
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		t.Errorf("Expected 429, got %+v", resp)
	}
}
