package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamFlightImport = "stream:flights:import"
)

// ImportRequestEvent - запрос на импорт рейсов аэропорта из внешнего провайдера
type ImportRequestEvent struct {
	RequestID     uuid.UUID `json:"request_id"`
	ICAO          string    `json:"icao"`
	LookbackHours int       `json:"lookback_hours"`
	RequestedAt   time.Time `json:"requested_at"`
}

// NewImportRequestEvent создаёт событие с новым request_id
func NewImportRequestEvent(icao string, lookbackHours int) *ImportRequestEvent {
	return &ImportRequestEvent{
		RequestID:     uuid.New(),
		ICAO:          NormalizeCode(icao),
		LookbackHours: lookbackHours,
		RequestedAt:   time.Now().UTC(),
	}
}

// Validate проверяет обязательные поля события
func (e *ImportRequestEvent) Validate() bool {
	return e.ICAO != "" && e.LookbackHours > 0
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}

// ImportResult - итог импорта рейсов одного аэропорта
type ImportResult struct {
	ICAO       string `json:"icao"`
	Departures int    `json:"departures"`
	Arrivals   int    `json:"arrivals"`
	Skipped    int    `json:"skipped"`
	Failed     int    `json:"failed"`
}
