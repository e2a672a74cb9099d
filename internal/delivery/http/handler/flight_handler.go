package handler

import (
	"github.com/airport-tracker/internal/pkg/utils"
	"github.com/airport-tracker/internal/pkg/validator"
	"github.com/airport-tracker/internal/usecase"
	"github.com/airport-tracker/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// FlightHandler - обработчик отчётов о рейсах и запросов на импорт
type FlightHandler struct {
	reportUC *usecase.FlightReportUseCase
	importUC *usecase.ImportRequestUseCase
	logger   *zap.Logger
}

// NewFlightHandler - создание нового FlightHandler
func NewFlightHandler(
	reportUC *usecase.FlightReportUseCase,
	importUC *usecase.ImportRequestUseCase,
	logger *zap.Logger,
) *FlightHandler {
	return &FlightHandler{
		reportUC: reportUC,
		importUC: importUC,
		logger:   logger,
	}
}

// Report godoc
// @Summary Отчёт об активности рейсов
// @Description Рейсы между аэропортом и аэропортами в радиусе. Если в базе рейсов нет, возвращаются синтетические (source=mock).
// @Tags Flights
// @Produce json
// @Param icao query string true "ICAO код центрального аэропорта"
// @Param radius_km query number true "Радиус, км"
// @Success 200 {object} dto.FlightReportResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/flights/report [get]
func (h *FlightHandler) Report(c *fiber.Ctx) error {
	var req dto.FlightReportRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errInvalidQuery(err))
	}
	return h.report(c, &req)
}

// ReportPOST godoc
// @Summary Отчёт об активности рейсов (POST)
// @Tags Flights
// @Accept json
// @Produce json
// @Param request body dto.FlightReportRequest true "Центр и радиус"
// @Success 200 {object} dto.FlightReportResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/flights/report [post]
func (h *FlightHandler) ReportPOST(c *fiber.Ctx) error {
	var req dto.FlightReportRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errInvalidBody(err))
	}
	return h.report(c, &req)
}

func (h *FlightHandler) report(c *fiber.Ctx, req *dto.FlightReportRequest) error {
	if err := validator.Validate(req); err != nil {
		return utils.SendError(c, err)
	}

	report, err := h.reportUC.BuildReport(c.Context(), req.ICAO, req.RadiusKm)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(dto.NewFlightReportResponse(report))
}

// RequestImport godoc
// @Summary Поставить импорт рейсов в очередь
// @Description Публикует запрос в stream:flights:import, импорт выполняет процесс importer
// @Tags Flights
// @Accept json
// @Produce json
// @Param request body dto.ImportRequest true "Аэропорт и окно в часах"
// @Success 202 {object} utils.SuccessResponse{data=dto.ImportAcceptedResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/flights/import [post]
func (h *FlightHandler) RequestImport(c *fiber.Ctx) error {
	var req dto.ImportRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errInvalidBody(err))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	event, err := h.importUC.Enqueue(c.Context(), req.ICAO, req.LookbackHours)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusAccepted)
	return utils.SendSuccess(c, dto.ImportAcceptedResponse{
		RequestID: event.RequestID.String(),
		ICAO:      event.ICAO,
	}, nil)
}
