package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRefresher counts refresh cycles
type mockRefresher struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (m *mockRefresher) Refresh(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return 3, m.err
}

func (m *mockRefresher) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func TestRefreshWorker_RefreshesImmediately(t *testing.T) {
	refresher := &mockRefresher{}
	worker := NewRefreshWorker(refresher, nil, WorkerConfig{Interval: time.Hour})

	require.NoError(t, worker.Start())
	defer worker.Stop()

	assert.Eventually(t, func() bool { return refresher.count() == 1 }, time.Second, 5*time.Millisecond)
}

func TestRefreshWorker_RefreshesEveryInterval(t *testing.T) {
	refresher := &mockRefresher{}
	worker := NewRefreshWorker(refresher, nil, WorkerConfig{Interval: 10 * time.Millisecond})

	require.NoError(t, worker.Start())
	assert.Eventually(t, func() bool { return refresher.count() >= 3 }, time.Second, 5*time.Millisecond)
	require.NoError(t, worker.Stop())

	stopped := refresher.count()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, refresher.count())
}

func TestRefreshWorker_ErrorsAreNotFatal(t *testing.T) {
	refresher := &mockRefresher{err: errors.New("calendar down")}
	worker := NewRefreshWorker(refresher, nil, WorkerConfig{Interval: 10 * time.Millisecond})

	require.NoError(t, worker.Start())
	defer worker.Stop()

	assert.Eventually(t, func() bool { return refresher.count() >= 2 }, time.Second, 5*time.Millisecond)
	assert.True(t, worker.Running())
}

func TestRefreshWorker_StartStopIdempotent(t *testing.T) {
	worker := NewRefreshWorker(&mockRefresher{}, nil, WorkerConfig{Interval: time.Hour})

	assert.NoError(t, worker.Stop())
	assert.NoError(t, worker.Start())
	assert.NoError(t, worker.Start())
	assert.True(t, worker.Running())
	assert.NoError(t, worker.Stop())
	assert.NoError(t, worker.Stop())
	assert.False(t, worker.Running())

	assert.NoError(t, worker.Start())
	assert.NoError(t, worker.Stop())
}

func TestRefreshWorker_NoRefresher(t *testing.T) {
	worker := NewRefreshWorker(nil, nil, WorkerConfig{})

	assert.Equal(t, ErrNoRefresher, worker.Start())
	assert.False(t, worker.Running())
}

func TestDefaultWorkerConfig(t *testing.T) {
	worker := NewRefreshWorker(&mockRefresher{}, nil, WorkerConfig{})

	assert.Equal(t, DefaultWorkerConfig().Interval, worker.interval)
	assert.Equal(t, DefaultWorkerConfig().Timeout, worker.timeout)
}
