package server

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"

	"github.com/gobwas/ws"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/gateway"
	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/views"
	"github.com/shubham-shewale/uptip/pkg/models"
)

// GET / renders whatever view is active.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, s.state.Snapshot().View)
}

// GET /view/{id} navigates first. Unknown ids land on the landing page.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	active := s.state.SetView(mux.Vars(r)["id"])
	s.render(w, r, active)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, view models.ViewID) {
	snap := s.state.Snapshot()
	in := views.Input{
		Metrics: snap.Metrics,
		Query:   r.URL.Query(),
		Now:     s.opts.Now(),
		Rand:    s.opts.Rand,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.Render(w, view, in); err != nil {
		s.logger.Error("Render failed", zap.String("view", string(view)), zap.Error(err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	if s.opts.Metrics != nil {
		s.opts.Metrics.Renders.WithLabelValues(string(view)).Inc()
	}
}

// Export and download controls are placeholders.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.state.Snapshot())
}

type setViewRequest struct {
	View string `json:"view"`
}

func (s *Server) handleSetView(w http.ResponseWriter, r *http.Request) {
	var req setViewRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 4096)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	s.state.SetView(req.View)
	writeJSON(w, http.StatusOK, s.state.Snapshot())
}

type viewInfo struct {
	ID     models.ViewID `json:"id"`
	Title  string        `json:"title"`
	Active bool          `json:"active"`
}

func (s *Server) handleViews(w http.ResponseWriter, r *http.Request) {
	active := s.state.Snapshot().View
	entries := views.Entries()
	out := make([]viewInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, viewInfo{ID: e.ID, Title: e.Title, Active: e.ID == active})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"view":   string(s.state.Snapshot().View),
	})
}

// GET /live streams every tick as an SSE data frame, starting with the
// current metrics.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ticks, release := s.opts.Live.Subscribe()
	defer release()

	first := models.MetricsTick{
		Source:    "snapshot",
		Metrics:   s.state.Snapshot().Metrics,
		Timestamp: s.opts.Now().UnixMicro(),
	}
	if err := writeEvent(w, first); err != nil {
		return
	}
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-s.closing:
			return
		case tick := <-ticks:
			if err := writeEvent(w, tick); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, tick models.MetricsTick) error {
	data, err := json.Marshal(tick)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", data)
	return err
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	if s.opts.Hub == nil {
		http.Error(w, "websocket feed disabled", http.StatusServiceUnavailable)
		return
	}
	if s.opts.Limiter != nil {
		allowed, err := s.opts.Limiter.Allow(remoteIP(r))
		if err != nil {
			s.logger.Warn("Rate limiter error", zap.Error(err))
		}
		if !allowed {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
	}

	conn, _, _, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		s.logger.Debug("Websocket upgrade failed", zap.Error(err))
		return
	}
	gateway.NewClient(conn, s.opts.Hub, s.logger).Start()
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
