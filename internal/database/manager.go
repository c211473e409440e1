package database

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrNotConnected is returned when store access is requested while the
// connection is down. Callers surface it through the generic error path.
var ErrNotConnected = errors.New("NOT_CONNECTED")

// State describes the connection lifecycle.
type State int32

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
)

// String implements fmt.Stringer for log output.
func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "disconnected"
	}
}

// Conn is an established store connection.
type Conn interface {
	Ping(ctx context.Context) error
	Disconnect(ctx context.Context) error
	Store() *Store
}

// Dialer establishes a connection, failing within the configured timeouts.
type Dialer func(ctx context.Context) (Conn, error)

// ManagerConfig configures a Manager.
type ManagerConfig struct {
	// Dial establishes connections. Injectable for tests.
	Dial Dialer
	// RetryDelay is the fixed delay between connection attempts.
	// There is no maximum attempt count and no backoff growth.
	RetryDelay time.Duration
	// HeartbeatInterval is how often an established connection is pinged
	// to detect drops.
	HeartbeatInterval time.Duration
	// PingTimeout bounds each heartbeat ping.
	PingTimeout time.Duration
	// OnFirstConnect runs exactly once per process lifetime, after the
	// first successful connection.
	OnFirstConnect func(context.Context)
}

// Manager owns the lifecycle of the store connection. It retries failed
// connection attempts indefinitely with a fixed delay, re-enters the same
// retry loop when an established connection drops, and guarantees release
// of the connection on shutdown. It is the only component that mutates
// connection state; everything else reads the current Store through it.
type Manager struct {
	dial        Dialer
	retryDelay  time.Duration
	heartbeat   time.Duration
	pingTimeout time.Duration
	onFirst     func(context.Context)
	firstOnce   sync.Once

	mu    sync.RWMutex
	state State
	conn  Conn

	done chan struct{}
}

// NewManager creates a Manager. It does not connect; call Start.
func NewManager(cfg ManagerConfig) *Manager {
	m := &Manager{
		dial:        cfg.Dial,
		retryDelay:  cfg.RetryDelay,
		heartbeat:   cfg.HeartbeatInterval,
		pingTimeout: cfg.PingTimeout,
		onFirst:     cfg.OnFirstConnect,
		done:        make(chan struct{}),
	}
	if m.retryDelay <= 0 {
		m.retryDelay = 5 * time.Second
	}
	if m.heartbeat <= 0 {
		m.heartbeat = 10 * time.Second
	}
	if m.pingTimeout <= 0 {
		m.pingTimeout = 5 * time.Second
	}
	return m
}

// Start launches the connect/retry loop. It returns immediately; the HTTP
// surface starts independently of connection progress.
func (m *Manager) Start(ctx context.Context) {
	go m.run(ctx)
}

// State returns the current connection state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// GetStore returns the store of the current connection, or ErrNotConnected.
func (m *Manager) GetStore() (*Store, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state != StateConnected || m.conn == nil {
		return nil, ErrNotConnected
	}
	return m.conn.Store(), nil
}

// Done is closed when the connect loop has fully stopped.
func (m *Manager) Done() <-chan struct{} {
	return m.done
}

// Shutdown releases the current connection if one exists. It is safe to call
// from any state and is the guaranteed-close path on process termination.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	conn := m.conn
	m.conn = nil
	m.state = StateDisconnected
	m.mu.Unlock()

	if conn == nil {
		return nil
	}
	if err := conn.Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to release store connection")
		return err
	}
	log.Info().Msg("Store connection released")
	return nil
}

// run is the connect/retry loop. A failed attempt schedules a retry after
// the fixed delay; a drop of an established connection re-enters the loop
// from the top. Context cancellation stops the loop wherever it is,
// including a pending retry timer.
func (m *Manager) run(ctx context.Context) {
	defer close(m.done)

	for {
		m.setState(StateConnecting)
		log.Info().Msg("Connecting to store")

		conn, err := m.dial(ctx)
		if err != nil {
			m.setState(StateDisconnected)
			log.Error().Err(err).Dur("retry_in", m.retryDelay).Msg("Store connection failed")
			if !m.sleep(ctx) {
				return
			}
			continue
		}

		m.adopt(conn)
		log.Info().Msg("Store connected")
		m.firstOnce.Do(func() {
			if m.onFirst != nil {
				m.onFirst(ctx)
			}
		})

		if !m.watch(ctx, conn) {
			// Shutdown path: the connection is released by Shutdown.
			return
		}

		// Drop observed: release the dead connection and retry from the top.
		m.drop(conn)
		log.Warn().Dur("retry_in", m.retryDelay).Msg("Store connection dropped, reconnecting")
		if !m.sleep(ctx) {
			return
		}
	}
}

// watch pings the connection on the heartbeat interval. It returns true when
// a drop is detected and false when the context is canceled.
func (m *Manager) watch(ctx context.Context, conn Conn) bool {
	ticker := time.NewTicker(m.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, m.pingTimeout)
			err := conn.Ping(pctx)
			cancel()
			if err != nil {
				return true
			}
		case <-ctx.Done():
			return false
		}
	}
}

// sleep waits out the retry delay. It returns false if the context is
// canceled first, so a clean shutdown never races a scheduled retry.
func (m *Manager) sleep(ctx context.Context) bool {
	timer := time.NewTimer(m.retryDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

func (m *Manager) adopt(conn Conn) {
	m.mu.Lock()
	m.conn = conn
	m.state = StateConnected
	m.mu.Unlock()
}

func (m *Manager) drop(conn Conn) {
	m.mu.Lock()
	if m.conn == conn {
		m.conn = nil
	}
	m.state = StateDisconnected
	m.mu.Unlock()

	dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := conn.Disconnect(dctx); err != nil {
		log.Error().Err(err).Msg("Failed to close dropped connection")
	}
}
