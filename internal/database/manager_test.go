package database

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConn is a Conn whose ping can be failed on demand to simulate a drop.
type fakeConn struct {
	pingErr      atomic.Value
	disconnected atomic.Bool
}

func (c *fakeConn) Ping(context.Context) error {
	if err, ok := c.pingErr.Load().(error); ok && err != nil {
		return err
	}
	return nil
}

func (c *fakeConn) Disconnect(context.Context) error {
	c.disconnected.Store(true)
	return nil
}

func (c *fakeConn) Store() *Store { return nil }

func (c *fakeConn) fail() {
	c.pingErr.Store(errors.New("connection lost"))
}

// fakeDialer fails a fixed number of attempts before succeeding, recording
// every attempt and every connection it hands out.
type fakeDialer struct {
	mu       sync.Mutex
	failures int
	attempts int
	conns    []*fakeConn
}

func (d *fakeDialer) dial(context.Context) (Conn, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.attempts++
	if d.attempts <= d.failures {
		return nil, errors.New("no reachable servers")
	}
	conn := &fakeConn{}
	d.conns = append(d.conns, conn)
	return conn, nil
}

func (d *fakeDialer) attemptCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.attempts
}

func (d *fakeDialer) connCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.conns)
}

func (d *fakeDialer) conn(i int) *fakeConn {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.conns[i]
}

func newTestManager(dialer *fakeDialer, onFirst func(context.Context)) *Manager {
	return NewManager(ManagerConfig{
		Dial:              dialer.dial,
		RetryDelay:        5 * time.Millisecond,
		HeartbeatInterval: 5 * time.Millisecond,
		PingTimeout:       20 * time.Millisecond,
		OnFirstConnect:    onFirst,
	})
}

func TestManagerConvergesAfterFailedAttempts(t *testing.T) {
	const failures = 3
	dialer := &fakeDialer{failures: failures}

	var firstConnects atomic.Int32
	mgr := newTestManager(dialer, func(context.Context) { firstConnects.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	mgr.Start(ctx)

	require.Eventually(t, func() bool {
		return mgr.State() == StateConnected
	}, time.Second, time.Millisecond)

	assert.Equal(t, failures+1, dialer.attemptCount())
	assert.Equal(t, int32(1), firstConnects.Load())
}

func TestManagerReconnectsOnDropWithoutRetriggeringBootstrap(t *testing.T) {
	dialer := &fakeDialer{}

	var firstConnects atomic.Int32
	mgr := newTestManager(dialer, func(context.Context) { firstConnects.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	mgr.Start(ctx)

	require.Eventually(t, func() bool {
		return mgr.State() == StateConnected
	}, time.Second, time.Millisecond)
	require.Equal(t, 1, dialer.connCount())

	// Drop the established connection; the manager must close it and dial
	// a fresh one.
	dialer.conn(0).fail()

	require.Eventually(t, func() bool {
		return dialer.connCount() == 2 && mgr.State() == StateConnected
	}, time.Second, time.Millisecond)

	assert.True(t, dialer.conn(0).disconnected.Load(), "dropped connection must be released")
	assert.Equal(t, int32(1), firstConnects.Load(), "bootstrap must fire exactly once")
}

func TestManagerStopsRetryingOnCancel(t *testing.T) {
	// A dialer that never succeeds keeps the manager in the retry loop.
	dialer := &fakeDialer{failures: int(^uint(0) >> 1)}
	mgr := newTestManager(dialer, nil)

	ctx, cancel := context.WithCancel(context.Background())
	mgr.Start(ctx)

	require.Eventually(t, func() bool {
		return dialer.attemptCount() >= 2
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case <-mgr.Done():
	case <-time.After(time.Second):
		t.Fatal("connect loop did not stop after cancel")
	}

	attempts := dialer.attemptCount()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, attempts, dialer.attemptCount(), "no retries after shutdown")
}

func TestManagerShutdownReleasesConnection(t *testing.T) {
	dialer := &fakeDialer{}
	mgr := newTestManager(dialer, nil)

	ctx, cancel := context.WithCancel(context.Background())
	mgr.Start(ctx)

	require.Eventually(t, func() bool {
		return mgr.State() == StateConnected
	}, time.Second, time.Millisecond)

	cancel()
	require.NoError(t, mgr.Shutdown(context.Background()))
	assert.True(t, dialer.conn(0).disconnected.Load())
	assert.Equal(t, StateDisconnected, mgr.State())

	_, err := mgr.GetStore()
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestGetStoreBeforeConnect(t *testing.T) {
	mgr := NewManager(ManagerConfig{Dial: (&fakeDialer{}).dial})
	_, err := mgr.GetStore()
	assert.ErrorIs(t, err, ErrNotConnected)
	assert.Equal(t, StateDisconnected, mgr.State())
}
