package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/recognition-api/internal/application/dto"
	"github.com/tu-usuario/recognition-api/internal/application/recognition"
	"github.com/tu-usuario/recognition-api/internal/domain"
	"github.com/tu-usuario/recognition-api/internal/domain/entity"
)

// CycleHandler maneja el ciclo de vida de los ciclos mensuales (rutas de admin,
// salvo el ciclo activo que es visible para todos).
type CycleHandler struct {
	lifecycle *recognition.LifecycleUseCase
	results   *recognition.ResultsUseCase
}

// NewCycleHandler construye el handler de ciclos.
func NewCycleHandler(lifecycle *recognition.LifecycleUseCase, results *recognition.ResultsUseCase) *CycleHandler {
	return &CycleHandler{lifecycle: lifecycle, results: results}
}

// Create godoc
// @Summary      Crear ciclo mensual
// @Tags         cycles
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCycleRequest  true  "month (0-11), year, windows opcionales"
// @Success      201   {object}  dto.CycleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cycles [post]
func (h *CycleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCycleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cycle, err := h.lifecycle.CreateCycle(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cycle)
}

// List godoc
// @Summary      Listar ciclos
// @Tags         cycles
// @Produce      json
// @Success      200  {array}  dto.CycleResponse
// @Router       /api/cycles [get]
func (h *CycleHandler) List(c *fiber.Ctx) error {
	cycles, err := h.lifecycle.ListCycles()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(cycles)
}

// Active godoc
// @Summary      Ciclo activo (NOMINATION > VOTING > último CLOSED)
// @Tags         cycles
// @Produce      json
// @Success      200  {object}  dto.CycleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cycles/active [get]
func (h *CycleHandler) Active(c *fiber.Ctx) error {
	cycle, err := h.lifecycle.ActiveCycle()
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no hay ciclos creados"})
		}
		return respondDomainError(c, err)
	}
	return c.JSON(cycle)
}

// AdvanceStatus godoc
// @Summary      Avanzar estado del ciclo (solo hacia adelante)
// @Tags         cycles
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "cycle id"
// @Param        body  body  dto.AdvanceCycleRequest  true  "status destino, force opcional"
// @Success      200   {object}  dto.CycleResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/cycles/{id}/status [patch]
func (h *CycleHandler) AdvanceStatus(c *fiber.Ctx) error {
	var in dto.AdvanceCycleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cycle, err := h.lifecycle.AdvanceStatus(c.Params("id"), in.Status, in.Force)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(cycle)
}

// DeclareWinner godoc
// @Summary      Declarar ganador y cerrar el ciclo
// @Tags         cycles
// @Produce      json
// @Param        id  path  string  true  "cycle id"
// @Success      200  {object}  dto.CycleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/cycles/{id}/winner [post]
func (h *CycleHandler) DeclareWinner(c *fiber.Ctx) error {
	cycle, err := h.lifecycle.DeclareWinner(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(cycle)
}

// Stats godoc
// @Summary      Leaderboard del ciclo
// @Tags         results
// @Produce      json
// @Param        id  path  string  true  "cycle id"
// @Success      200  {array}  dto.CycleStatsResponse
// @Router       /api/cycles/{id}/stats [get]
func (h *CycleHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.results.ComputeStats(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(recognition.StatsToResponse(stats))
}

// Leader godoc
// @Summary      Líder actual del ciclo
// @Tags         results
// @Produce      json
// @Param        id  path  string  true  "cycle id"
// @Success      200  {object}  dto.CycleStatsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cycles/{id}/leader [get]
func (h *CycleHandler) Leader(c *fiber.Ctx) error {
	leader, err := h.results.ComputeLeader(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if leader == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el ciclo no tiene participación todavía"})
	}
	return c.JSON(recognition.StatsToResponse([]entity.CycleStats{*leader})[0])
}
