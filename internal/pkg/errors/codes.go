package errors

import "net/http"

const CodeInvalidInput = "INVALID_INPUT"

var (
	ErrInvalidInput = New(
		CodeInvalidInput,
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidAirportCode = New(
		"INVALID_AIRPORT_CODE",
		"Airport code is required",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Radius must be a positive finite number of kilometers",
		http.StatusBadRequest,
	)

	ErrAirportNotFound = New(
		"AIRPORT_NOT_FOUND",
		"Airport not found",
		http.StatusNotFound,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	// ErrProviderUnavailable - внешний провайдер рейсов недоступен.
	// В отчёте не возвращается клиенту, только логируется.
	ErrProviderUnavailable = New(
		"PROVIDER_UNAVAILABLE",
		"Flight data provider unavailable",
		http.StatusBadGateway,
	)

	ErrImportQueueUnavailable = New(
		"IMPORT_QUEUE_UNAVAILABLE",
		"Flight import queue is not configured",
		http.StatusServiceUnavailable,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
