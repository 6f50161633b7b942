package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/recognition-api/internal/application/dto"
	"github.com/tu-usuario/recognition-api/internal/application/recognition"
)

// NominationHandler maneja el ledger de nominaciones.
type NominationHandler struct {
	uc *recognition.NominationUseCase
}

// NewNominationHandler construye el handler de nominaciones.
func NewNominationHandler(uc *recognition.NominationUseCase) *NominationHandler {
	return &NominationHandler{uc: uc}
}

// Submit godoc
// @Summary      Nominar a un colega en el ciclo actual
// @Tags         nominations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitNominationRequest  true  "cycle_id, nominee_id, reason"
// @Success      201   {object}  dto.NominationResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/nominations [post]
func (h *NominationHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitNominationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CycleID == "" || in.NomineeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cycle_id y nominee_id son requeridos"})
	}
	// El nominador siempre sale del token, nunca del body.
	nomination, err := h.uc.Submit(GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(nomination)
}

// Mine godoc
// @Summary      Mi nominación en un ciclo
// @Tags         nominations
// @Produce      json
// @Param        cycle_id  query  string  true  "cycle id"
// @Success      200  {object}  dto.NominationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/nominations/mine [get]
func (h *NominationHandler) Mine(c *fiber.Ctx) error {
	cycleID := c.Query("cycle_id")
	if cycleID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cycle_id es requerido"})
	}
	nomination, err := h.uc.GetByNominator(GetUserID(c), cycleID)
	if err != nil {
		return respondDomainError(c, err)
	}
	if nomination == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "aún no has nominado en este ciclo"})
	}
	return c.JSON(nomination)
}

// ListForCycle godoc
// @Summary      Nominaciones de un ciclo (admin)
// @Tags         nominations
// @Produce      json
// @Param        id  path  string  true  "cycle id"
// @Success      200  {array}  dto.NominationResponse
// @Router       /api/cycles/{id}/nominations [get]
func (h *NominationHandler) ListForCycle(c *fiber.Ctx) error {
	nominations, err := h.uc.ListForCycle(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(nominations)
}
