package usecase

import (
	"context"

	"github.com/airport-tracker/internal/domain"
	"github.com/airport-tracker/internal/domain/repository"
	"github.com/airport-tracker/internal/pkg/errors"
	"go.uber.org/zap"
)

// ImportRequestUseCase ставит запросы на импорт рейсов в очередь импортёра
type ImportRequestUseCase struct {
	streamRepo           repository.StreamRepository
	logger               *zap.Logger
	defaultLookbackHours int
}

// NewImportRequestUseCase создаёт use case. streamRepo == nil - очередь не настроена.
func NewImportRequestUseCase(
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
	defaultLookbackHours int,
) *ImportRequestUseCase {
	if defaultLookbackHours <= 0 {
		defaultLookbackHours = 24
	}
	return &ImportRequestUseCase{
		streamRepo:           streamRepo,
		logger:               logger,
		defaultLookbackHours: defaultLookbackHours,
	}
}

// Enqueue публикует ImportRequestEvent; lookbackHours <= 0 - значение по умолчанию
func (uc *ImportRequestUseCase) Enqueue(
	ctx context.Context,
	code string,
	lookbackHours int,
) (*domain.ImportRequestEvent, error) {
	if uc.streamRepo == nil {
		return nil, errors.ErrImportQueueUnavailable
	}
	if lookbackHours <= 0 {
		lookbackHours = uc.defaultLookbackHours
	}

	event := domain.NewImportRequestEvent(code, lookbackHours)
	if !event.Validate() {
		return nil, errors.ErrInvalidAirportCode
	}

	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamFlightImport, event); err != nil {
		uc.logger.Error("Failed to enqueue import request", zap.String("icao", event.ICAO), zap.Error(err))
		return nil, errors.ErrCacheError.Wrap(err)
	}

	uc.logger.Info("Import request enqueued",
		zap.String("icao", event.ICAO),
		zap.String("request_id", event.RequestID.String()),
		zap.Int("lookback_hours", lookbackHours))

	return event, nil
}
