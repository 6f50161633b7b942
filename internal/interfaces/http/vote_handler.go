package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/recognition-api/internal/application/dto"
	"github.com/tu-usuario/recognition-api/internal/application/recognition"
)

// VoteHandler maneja el ledger de votos y la lista de candidatos.
type VoteHandler struct {
	uc *recognition.VoteUseCase
}

// NewVoteHandler construye el handler de votación.
func NewVoteHandler(uc *recognition.VoteUseCase) *VoteHandler {
	return &VoteHandler{uc: uc}
}

// Submit godoc
// @Summary      Votar por un candidato del ciclo
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitVoteRequest  true  "cycle_id, nominee_id"
// @Success      201   {object}  dto.VoteResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/votes [post]
func (h *VoteHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitVoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CycleID == "" || in.NomineeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cycle_id y nominee_id son requeridos"})
	}
	// El votante siempre sale del token, nunca del body.
	vote, err := h.uc.Submit(GetUserID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(vote)
}

// Mine godoc
// @Summary      Mi voto en un ciclo
// @Tags         votes
// @Produce      json
// @Param        cycle_id  query  string  true  "cycle id"
// @Success      200  {object}  dto.VoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/votes/mine [get]
func (h *VoteHandler) Mine(c *fiber.Ctx) error {
	cycleID := c.Query("cycle_id")
	if cycleID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cycle_id es requerido"})
	}
	vote, err := h.uc.GetByVoter(GetUserID(c), cycleID)
	if err != nil {
		return respondDomainError(c, err)
	}
	if vote == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "aún no has votado en este ciclo"})
	}
	return c.JSON(vote)
}

// Candidates godoc
// @Summary      Candidatos elegibles del ciclo (nominados distintos)
// @Tags         votes
// @Produce      json
// @Param        id  path  string  true  "cycle id"
// @Success      200  {array}  dto.CandidateResponse
// @Router       /api/cycles/{id}/candidates [get]
func (h *VoteHandler) Candidates(c *fiber.Ctx) error {
	candidates, err := h.uc.Candidates(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(candidates)
}

// ListForCycle godoc
// @Summary      Votos de un ciclo (admin)
// @Tags         votes
// @Produce      json
// @Param        id  path  string  true  "cycle id"
// @Success      200  {array}  dto.VoteResponse
// @Router       /api/cycles/{id}/votes [get]
func (h *VoteHandler) ListForCycle(c *fiber.Ctx) error {
	votes, err := h.uc.ListForCycle(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(votes)
}
