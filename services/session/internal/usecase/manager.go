package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"abstract-main/pkg/logger"
	"abstract-main/pkg/reactive"
)

// ChangeSink receives the changes of every session. Publish runs on the
// session goroutine and must not block.
type ChangeSink interface {
	Publish(sessionID string, change reactive.Change, entityID string)
}

type ManagerConfig struct {
	SeedDemo bool
	// DemoSeed fixes the demo data generator; zero picks a random seed.
	DemoSeed uint64
	Sink     ChangeSink
	// IdleTimeout ends sessions that have not been used for that long.
	// Zero keeps sessions until they are ended explicitly.
	IdleTimeout time.Duration
	// ReapInterval defaults to a quarter of IdleTimeout.
	ReapInterval time.Duration
}

// Manager keeps the live sessions. It is safe for concurrent use; the
// sessions it hands out serialize their own store access.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	cfg      ManagerConfig
	logger   *logger.Logger

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewManager(cfg ManagerConfig, log *logger.Logger) *Manager {
	m := &Manager{
		sessions: make(map[string]*Session),
		cfg:      cfg,
		logger:   log,
		stop:     make(chan struct{}),
	}
	if cfg.IdleTimeout > 0 {
		interval := cfg.ReapInterval
		if interval <= 0 {
			interval = cfg.IdleTimeout / 4
		}
		m.wg.Add(1)
		go m.reapLoop(interval)
	}
	return m
}

func (m *Manager) reapLoop(interval time.Duration) {
	defer m.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			if n := m.reap(now); n > 0 {
				m.logger.Info("[SESSION] Reaped %d idle sessions", n)
			}
		case <-m.stop:
			return
		}
	}
}

// reap ends every session whose last use is older than IdleTimeout at now.
func (m *Manager) reap(now time.Time) int {
	var idle []string
	m.mu.RLock()
	for id, s := range m.sessions {
		if now.Sub(s.LastUsed()) > m.cfg.IdleTimeout {
			idle = append(idle, id)
		}
	}
	m.mu.RUnlock()

	n := 0
	for _, id := range idle {
		if err := m.End(id); err == nil {
			n++
		}
	}
	return n
}

func (m *Manager) seed() Seed {
	if !m.cfg.SeedDemo {
		return Seed{}
	}
	s := m.cfg.DemoSeed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	return DemoSeed(rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15)))
}

func (m *Manager) Create(handle string) (*Session, error) {
	s, err := NewSession(handle, m.seed())
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if sink := m.cfg.Sink; sink != nil {
		id := s.ID
		if err := s.Do(context.Background(), func() error {
			s.subscribe(func(e Event) { sink.Publish(id, e.Change, e.EntityID) })
			return nil
		}); err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to attach change sink: %w", err)
		}
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.logger.Info("[SESSION] Started session %s for %s", s.ID, handle)
	return s, nil
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (m *Manager) End(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	s.Close()
	m.logger.Info("[SESSION] Ended session %s", id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// CloseAll stops the idle reaper and ends every session.
func (m *Manager) CloseAll() {
	m.stopOnce.Do(func() { close(m.stop) })
	m.wg.Wait()

	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
	m.logger.Info("[SESSION] Closed %d sessions", len(sessions))
}
