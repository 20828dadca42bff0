package cart

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	cartdomain "sandwich-storefront/internal/domain/cart"
	"sandwich-storefront/internal/pkg/clock"

	"golang.org/x/sync/singleflight"
)

var ErrInvalidSession = errors.New("cart session id is required")

type SessionsConfig struct {
	IdleTTL time.Duration
	Pricing cartdomain.Pricing
}

type sessionEntry struct {
	engine   *Engine
	lastUsed time.Time
}

// Sessions hands out one Engine per shopper session. The first Open of a
// session restores it from the store; idle engines are dropped from memory
// and restored again on their next Open.
type Sessions struct {
	stores   StoreFactory
	lookup   PromoLookup
	handoff  OrderHandoff
	notifier Notifier
	observer Observer
	clock    clock.Clock
	logger   *slog.Logger
	cfg      SessionsConfig

	mu      sync.Mutex
	engines map[string]*sessionEntry
	group   singleflight.Group
}

func NewSessions(
	stores StoreFactory,
	lookup PromoLookup,
	handoff OrderHandoff,
	notifier Notifier,
	observer Observer,
	clk clock.Clock,
	logger *slog.Logger,
	cfg SessionsConfig,
) *Sessions {
	if observer == nil {
		observer = NopObserver{}
	}
	if clk == nil {
		clk = clock.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Sessions{
		stores:   stores,
		lookup:   lookup,
		handoff:  handoff,
		notifier: notifier,
		observer: observer,
		clock:    clk,
		logger:   logger,
		cfg:      cfg,
		engines:  make(map[string]*sessionEntry),
	}
}

func (s *Sessions) Open(ctx context.Context, sessionID string) (*Engine, error) {
	if sessionID == "" {
		return nil, ErrInvalidSession
	}
	if e := s.touch(sessionID); e != nil {
		return e, nil
	}

	v, err, _ := s.group.Do(sessionID, func() (any, error) {
		if e := s.touch(sessionID); e != nil {
			return e, nil
		}
		e := NewEngine(sessionID, Deps{
			Store:    s.stores.ForSession(sessionID),
			Lookup:   s.lookup,
			Handoff:  s.handoff,
			Notifier: s.notifier,
			Observer: s.observer,
			Clock:    s.clock,
			Pricing:  s.cfg.Pricing,
			Logger:   s.logger,
		})
		// restore must not be cut short by the request that happened to trigger it
		if err := e.Restore(context.WithoutCancel(ctx)); err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.engines[sessionID] = &sessionEntry{engine: e, lastUsed: s.clock.Now()}
		n := len(s.engines)
		s.mu.Unlock()
		s.observer.SessionsActive(n)
		return e, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Engine), nil
}

// Evict drops engines idle for longer than the configured TTL.
func (s *Sessions) Evict() int {
	if s.cfg.IdleTTL <= 0 {
		return 0
	}
	cutoff := s.clock.Now().Add(-s.cfg.IdleTTL)

	s.mu.Lock()
	evicted := 0
	for id, entry := range s.engines {
		if entry.lastUsed.Before(cutoff) {
			delete(s.engines, id)
			evicted++
		}
	}
	n := len(s.engines)
	s.mu.Unlock()

	if evicted > 0 {
		s.logger.Debug("evicted idle cart sessions", "count", evicted, "active", n)
		s.observer.SessionsActive(n)
	}
	return evicted
}

// Run evicts idle engines every interval until ctx is done.
func (s *Sessions) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Evict()
		}
	}
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.engines)
}

func (s *Sessions) touch(sessionID string) *Engine {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.engines[sessionID]
	if !ok {
		return nil
	}
	entry.lastUsed = s.clock.Now()
	return entry.engine
}
