package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// shutdownTimeout - сколько Stop ждёт завершения текущих импортов
const shutdownTimeout = 30 * time.Second

// WorkerManager запускает воркеры importer-а и останавливает их вместе
type WorkerManager struct {
	mu      sync.Mutex
	workers []Worker
	failed  map[string]error

	wg              sync.WaitGroup
	logger          *zap.Logger
	shutdownTimeout time.Duration
}

func NewWorkerManager(logger *zap.Logger) *WorkerManager {
	return &WorkerManager{
		failed:          make(map[string]error),
		logger:          logger,
		shutdownTimeout: shutdownTimeout,
	}
}

// SetShutdownTimeout меняет время ожидания воркеров в Stop
func (m *WorkerManager) SetShutdownTimeout(d time.Duration) {
	m.shutdownTimeout = d
}

// Register добавляет воркер; вызывается до Start
func (m *WorkerManager) Register(w Worker) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.workers = append(m.workers, w)
	m.logger.Info("Worker registered", zap.String("name", w.Name()))
}

func (m *WorkerManager) snapshot() []Worker {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Worker(nil), m.workers...)
}

// Start запускает каждый воркер в своей горутине и сразу возвращается.
// Ошибка воркера не останавливает остальные, она доступна через Failed.
func (m *WorkerManager) Start(ctx context.Context) error {
	workers := m.snapshot()
	if len(workers) == 0 {
		return fmt.Errorf("no workers registered")
	}

	m.logger.Info("Starting workers", zap.Int("count", len(workers)))

	for _, w := range workers {
		m.wg.Add(1)
		go func() {
			defer m.wg.Done()

			if err := w.Start(ctx); err != nil && ctx.Err() == nil {
				m.logger.Error("Worker failed", zap.String("name", w.Name()), zap.Error(err))
				m.mu.Lock()
				m.failed[w.Name()] = err
				m.mu.Unlock()
				return
			}
			m.logger.Info("Worker finished", zap.String("name", w.Name()))
		}()
	}

	return nil
}

// Failed возвращает ошибки завершившихся с ошибкой воркеров по имени
func (m *WorkerManager) Failed() map[string]error {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]error, len(m.failed))
	for name, err := range m.failed {
		out[name] = err
	}
	return out
}

// Stop сигнализирует всем воркерам и ждёт их не дольше shutdownTimeout
func (m *WorkerManager) Stop() error {
	workers := m.snapshot()
	m.logger.Info("Stopping workers", zap.Int("count", len(workers)))

	for _, w := range workers {
		if err := w.Stop(); err != nil {
			m.logger.Error("Failed to stop worker", zap.String("name", w.Name()), zap.Error(err))
		}
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		m.logger.Info("All workers stopped")
		return nil
	case <-time.After(m.shutdownTimeout):
		m.logger.Warn("Workers shutdown timed out, an import may be interrupted",
			zap.Duration("timeout", m.shutdownTimeout))
		return fmt.Errorf("workers shutdown timed out after %v", m.shutdownTimeout)
	}
}
