// Package shell is the root state container: the active view and the shared
// live metrics, plus ownership of the ticker that perturbs them.
package shell

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/shubham-shewale/uptip/cmd/dashboard/internal/ticker"
	"github.com/shubham-shewale/uptip/pkg/models"
)

var ErrAlreadyStarted = errors.New("shell: ticker already running")

// State is a point-in-time copy of everything the views read.
type State struct {
	View    models.ViewID      `json:"view"`
	Metrics models.LiveMetrics `json:"metrics"`
}

// ViewListener is told about every navigation, including fallbacks to landing.
type ViewListener func(requested string, active models.ViewID)

type Shell struct {
	logger *zap.Logger

	mu      sync.RWMutex
	view    models.ViewID
	metrics models.LiveMetrics

	listenMu  sync.RWMutex
	listeners []ViewListener

	lifeMu sync.Mutex
	ticker *ticker.Ticker
	handle *ticker.Handle
}

// New returns a shell on the landing view with default metrics. The ticker is
// built by the caller from the shell itself, see Attach.
func New(logger *zap.Logger) *Shell {
	return &Shell{
		logger:  logger,
		view:    models.DefaultView,
		metrics: models.DefaultLiveMetrics(),
	}
}

// Attach sets the ticker that Start will run.
func (s *Shell) Attach(t *ticker.Ticker) {
	s.lifeMu.Lock()
	defer s.lifeMu.Unlock()
	s.ticker = t
}

// OnViewChange registers a listener. Listeners run synchronously on the
// caller of SetView, outside the state lock.
func (s *Shell) OnViewChange(fn ViewListener) {
	s.listenMu.Lock()
	defer s.listenMu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// SetView switches the active view. Unknown ids fall back to landing.
func (s *Shell) SetView(id string) models.ViewID {
	active := models.ParseView(id)
	if string(active) != id {
		s.logger.Debug("View id normalised", zap.String("requested", id), zap.String("active", string(active)))
	}

	s.mu.Lock()
	s.view = active
	s.mu.Unlock()

	s.listenMu.RLock()
	listeners := s.listeners
	s.listenMu.RUnlock()
	for _, fn := range listeners {
		fn(id, active)
	}
	return active
}

func (s *Shell) View() models.ViewID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

func (s *Shell) Metrics() models.LiveMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.metrics
}

func (s *Shell) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{View: s.view, Metrics: s.metrics}
}

// Update is the only way metrics change.
func (s *Shell) Update(fn func(models.LiveMetrics) models.LiveMetrics) models.LiveMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics = fn(s.metrics)
	return s.metrics
}

// Start acquires the ticker. Pair every successful Start with Close.
func (s *Shell) Start(ctx context.Context) error {
	s.lifeMu.Lock()
	defer s.lifeMu.Unlock()

	if s.handle != nil {
		return ErrAlreadyStarted
	}
	if s.ticker == nil {
		return errors.New("shell: no ticker attached")
	}
	s.handle = s.ticker.Start(ctx)
	return nil
}

// Running reports whether a ticker handle is held.
func (s *Shell) Running() bool {
	s.lifeMu.Lock()
	defer s.lifeMu.Unlock()
	return s.handle != nil
}

// Close releases the ticker and blocks until it has stopped. Metrics are
// frozen once Close returns.
func (s *Shell) Close() {
	s.lifeMu.Lock()
	h := s.handle
	s.handle = nil
	s.lifeMu.Unlock()

	if h != nil {
		h.Stop()
		s.logger.Info("Shell closed", zap.String("view", string(s.View())))
	}
}
