package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBaseWorker_Sleep(t *testing.T) {
	w := NewBaseWorker("test", "", zap.NewNop())
	assert.True(t, w.Sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, w.Sleep(ctx, time.Hour))

	assert.NoError(t, w.Stop())
	assert.True(t, w.IsStopped())
	assert.False(t, w.Sleep(context.Background(), time.Hour))
}

type blockingWorker struct {
	*BaseWorker
}

func (w *blockingWorker) Start(ctx context.Context) error {
	select {
	case <-w.StopChan():
	case <-ctx.Done():
	}
	return nil
}

func TestWorkerManager_StartStop(t *testing.T) {
	m := NewWorkerManager(zap.NewNop())
	m.Register(&blockingWorker{NewBaseWorker("a", "", zap.NewNop())})
	m.Register(&blockingWorker{NewBaseWorker("b", "", zap.NewNop())})

	assert.NoError(t, m.Start(context.Background()))
	assert.NoError(t, m.Stop())
}

type stuckWorker struct {
	*BaseWorker
	release chan struct{}
}

func (w *stuckWorker) Start(context.Context) error {
	<-w.release
	return nil
}

func TestWorkerManager_StopTimeout(t *testing.T) {
	m := NewWorkerManager(zap.NewNop())
	m.SetShutdownTimeout(20 * time.Millisecond)

	w := &stuckWorker{BaseWorker: NewBaseWorker("stuck", "", zap.NewNop()), release: make(chan struct{})}
	defer close(w.release)
	m.Register(w)

	assert.NoError(t, m.Start(context.Background()))
	assert.Error(t, m.Stop())
}

type failingWorker struct {
	*BaseWorker
}

func (w *failingWorker) Start(context.Context) error {
	return errors.New("consumer group: connection refused")
}

func TestWorkerManager_Failed(t *testing.T) {
	m := NewWorkerManager(zap.NewNop())
	m.Register(&failingWorker{NewBaseWorker("broken", "g", zap.NewNop())})
	m.Register(&blockingWorker{NewBaseWorker("ok", "", zap.NewNop())})

	require.NoError(t, m.Start(context.Background()))

	assert.Eventually(t, func() bool {
		_, ok := m.Failed()["broken"]
		return ok
	}, time.Second, 5*time.Millisecond)

	assert.NoError(t, m.Stop())
	assert.NotContains(t, m.Failed(), "ok")
}

func TestWorkerManager_NoWorkers(t *testing.T) {
	m := NewWorkerManager(zap.NewNop())
	assert.Error(t, m.Start(context.Background()))
}
