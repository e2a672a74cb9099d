package flights

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/airport-tracker/internal/domain"
	"github.com/airport-tracker/internal/domain/repository"
	"github.com/airport-tracker/internal/worker"
	"go.uber.org/zap"
)

const (
	maxBatchSize   = 10
	errorPause     = time.Second
	defaultBlockMs = 5000
)

// AirportImporter импортирует рейсы одного аэропорта
type AirportImporter interface {
	ImportAirport(ctx context.Context, code string, hours int) (*domain.ImportResult, error)
}

// ImportRequestWorker обрабатывает запросы из stream:flights:import
type ImportRequestWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	importer     AirportImporter
	consumerName string
	readTimeout  time.Duration
}

// NewImportRequestWorker создает новый ImportRequestWorker
func NewImportRequestWorker(
	streamRepo repository.StreamRepository,
	importer AirportImporter,
	consumerGroup string,
	readTimeout time.Duration,
	logger *zap.Logger,
) *ImportRequestWorker {
	hostname, _ := os.Hostname()
	if readTimeout <= 0 {
		readTimeout = defaultBlockMs * time.Millisecond
	}

	return &ImportRequestWorker{
		BaseWorker:   worker.NewBaseWorker("flight-import-requests", consumerGroup, logger),
		streamRepo:   streamRepo,
		importer:     importer,
		consumerName: fmt.Sprintf("%s-%d", hostname, os.Getpid()),
		readTimeout:  readTimeout,
	}
}

// Start запускает воркер
func (w *ImportRequestWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting ImportRequestWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_batch_size", maxBatchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamFlightImport, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()
		default:
		}

		if _, err := w.ProcessBatch(ctx); err != nil {
			logger.Error("Failed to process batch", zap.Error(err))
			w.Sleep(ctx, errorPause)
		}
	}
}

type importKey struct {
	icao  string
	hours int
}

// ProcessBatch читает и обрабатывает одну пачку сообщений, возвращает число прочитанных.
// Одинаковые запросы в пачке выполняются один раз. Сообщения подтверждаются
// после попытки импорта, в том числе неудачной.
func (w *ImportRequestWorker) ProcessBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamFlightImport,
		w.ConsumerGroup(),
		w.consumerName,
		maxBatchSize,
		w.readTimeout,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}
	if len(messages) == 0 {
		return 0, nil
	}

	logger.Debug("Processing import requests", zap.Int("message_count", len(messages)))

	done := make(map[importKey]bool, len(messages))
	for _, msg := range messages {
		event, err := parseImportRequest(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			w.ack(ctx, msg.ID)
			continue
		}

		key := importKey{icao: event.ICAO, hours: event.LookbackHours}
		if !done[key] {
			done[key] = true
			result, err := w.importer.ImportAirport(ctx, event.ICAO, event.LookbackHours)
			if err != nil {
				logger.Warn("Import request failed",
					zap.String("request_id", event.RequestID.String()),
					zap.String("icao", event.ICAO),
					zap.Error(err))
			} else {
				logger.Info("Import request completed",
					zap.String("request_id", event.RequestID.String()),
					zap.String("icao", result.ICAO),
					zap.Int("departures", result.Departures),
					zap.Int("arrivals", result.Arrivals),
					zap.Int("failed", result.Failed))
			}
		}

		w.ack(ctx, msg.ID)
	}

	return len(messages), nil
}

func (w *ImportRequestWorker) ack(ctx context.Context, id string) {
	if err := w.streamRepo.AckMessage(ctx, domain.StreamFlightImport, w.ConsumerGroup(), id); err != nil {
		// Не критично - сообщение будет прочитано повторно после перезапуска
		w.Logger().Error("Failed to ack message", zap.String("message_id", id), zap.Error(err))
	}
}

func parseImportRequest(msg domain.StreamMessage) (*domain.ImportRequestEvent, error) {
	var event domain.ImportRequestEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	event.ICAO = domain.NormalizeCode(event.ICAO)
	if !event.Validate() {
		return nil, fmt.Errorf("invalid event: icao=%q lookback_hours=%d", event.ICAO, event.LookbackHours)
	}
	return &event, nil
}
