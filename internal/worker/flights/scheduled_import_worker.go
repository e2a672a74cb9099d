package flights

import (
	"context"
	"time"

	"github.com/airport-tracker/internal/domain"
	"github.com/airport-tracker/internal/worker"
	"go.uber.org/zap"
)

// BulkImporter импортирует рейсы для набора аэропортов
type BulkImporter interface {
	ImportAll(ctx context.Context, hours, limit int) ([]*domain.ImportResult, int, error)
}

// ScheduledImportWorker периодически обновляет рейсы первых airportLimit аэропортов
type ScheduledImportWorker struct {
	*worker.BaseWorker
	importer     BulkImporter
	interval     time.Duration
	hours        int
	airportLimit int
}

func NewScheduledImportWorker(
	importer BulkImporter,
	interval time.Duration,
	hours, airportLimit int,
	logger *zap.Logger,
) *ScheduledImportWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &ScheduledImportWorker{
		BaseWorker:   worker.NewBaseWorker("flight-import-scheduled", "", logger),
		importer:     importer,
		interval:     interval,
		hours:        hours,
		airportLimit: airportLimit,
	}
}

// Start выполняет импорт сразу и затем раз в interval
func (w *ScheduledImportWorker) Start(ctx context.Context) error {
	w.Logger().Info("Starting ScheduledImportWorker",
		zap.Duration("interval", w.interval),
		zap.Int("hours", w.hours),
		zap.Int("airport_limit", w.airportLimit))

	for {
		w.RunOnce(ctx)

		if !w.Sleep(ctx, w.interval) {
			w.Logger().Info("Worker stopped")
			return nil
		}
	}
}

// RunOnce выполняет один проход импорта
func (w *ScheduledImportWorker) RunOnce(ctx context.Context) {
	start := time.Now()

	results, failed, err := w.importer.ImportAll(ctx, w.hours, w.airportLimit)
	if err != nil {
		w.Logger().Error("Scheduled import failed", zap.Error(err))
		return
	}

	var departures, arrivals int
	for _, r := range results {
		departures += r.Departures
		arrivals += r.Arrivals
	}

	w.Logger().Info("Scheduled import finished",
		zap.Int("airports", len(results)),
		zap.Int("failed", failed),
		zap.Int("departures", departures),
		zap.Int("arrivals", arrivals),
		zap.Duration("took", time.Since(start)))
}
