package handler

import (
	"time"

	"github.com/airport-tracker/internal/pkg/utils"
	"github.com/airport-tracker/internal/pkg/validator"
	"github.com/airport-tracker/internal/usecase"
	"github.com/airport-tracker/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AirportHandler - обработчик запросов по аэропортам
type AirportHandler struct {
	airportUC *usecase.AirportUseCase
	logger    *zap.Logger
}

// NewAirportHandler - создание нового AirportHandler
func NewAirportHandler(airportUC *usecase.AirportUseCase, logger *zap.Logger) *AirportHandler {
	return &AirportHandler{
		airportUC: airportUC,
		logger:    logger,
	}
}

// GetByCode godoc
// @Summary Аэропорт по ICAO коду
// @Tags Airports
// @Produce json
// @Param code path string true "ICAO код (без учёта регистра)"
// @Success 200 {object} utils.SuccessResponse{data=dto.AirportDTO}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/airports/{code} [get]
func (h *AirportHandler) GetByCode(c *fiber.Ctx) error {
	airport, err := h.airportUC.GetByCode(c.Context(), c.Params("code"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.NewAirportDTO(airport), nil)
}

// Autocomplete godoc
// @Summary Автодополнение аэропортов
// @Description Поиск по началу ICAO/IATA кода, названию или городу. Запрос короче 2 символов возвращает пустой список.
// @Tags Airports
// @Produce json
// @Param q query string true "Поисковый запрос"
// @Param limit query int false "Максимум результатов (до 50)" default(10)
// @Success 200 {object} utils.SuccessResponse{data=[]dto.AutocompleteItem}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/airports/autocomplete [get]
func (h *AirportHandler) Autocomplete(c *fiber.Ctx) error {
	var req dto.AutocompleteRequest
	req.Query = c.Query("q")
	req.Limit = c.QueryInt("limit", 10)

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	airports, err := h.airportUC.Autocomplete(c.Context(), req.Query, req.Limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	items := dto.NewAutocompleteItems(airports)
	return utils.SendSuccess(c, items, &utils.Meta{Total: len(items)})
}

// InRadius godoc
// @Summary Аэропорты в радиусе
// @Description Аэропорты в радиусе radius_km от центрального (сам центр не входит), ближние первыми
// @Tags Airports
// @Produce json
// @Param code path string true "ICAO код центра"
// @Param radius_km query number true "Радиус, км"
// @Success 200 {object} utils.SuccessResponse{data=dto.AirportRadiusResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/airports/{code}/radius [get]
func (h *AirportHandler) InRadius(c *fiber.Ctx) error {
	start := time.Now()

	var req dto.AirportRadiusRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errInvalidQuery(err))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	center, results, err := h.airportUC.InRadius(c.Context(), c.Params("code"), req.RadiusKm)
	if err != nil {
		return utils.SendError(c, err)
	}

	resp := dto.AirportRadiusResponse{
		CenterAirport:    dto.NewAirportDTO(center),
		RadiusKm:         req.RadiusKm,
		AirportsInRadius: dto.NewAirportsInRadius(results),
		Total:            len(results),
	}
	return utils.SendSuccess(c, resp, &utils.Meta{
		Total:    resp.Total,
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	})
}
