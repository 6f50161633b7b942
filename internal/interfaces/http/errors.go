package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/recognition-api/internal/application/dto"
	"github.com/tu-usuario/recognition-api/internal/domain"
)

// respondDomainError traduce errores de dominio a respuestas HTTP. Cualquier
// error no reconocido se trata como falla de infraestructura (503), para que
// el caller distinga "tu acción es inválida" de "el sistema no respondió".
func respondDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrDuplicateSubmission):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "DUPLICATE_SUBMISSION", Message: "ya participaste en este ciclo"})
	case errors.Is(err, domain.ErrPhaseClosed):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code: "PHASE_CLOSED", Message: "la fase del ciclo no admite esta acción"})
	case errors.Is(err, domain.ErrCycleAlreadyActive):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "CYCLE_ALREADY_ACTIVE", Message: "ya existe un ciclo activo; ciérralo antes de crear otro"})
	case errors.Is(err, domain.ErrInvalidPeriod):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PERIOD", Message: "periodo o ventanas de fase inválidos"})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code: "INVALID_TRANSITION", Message: "el estado del ciclo solo avanza hacia adelante"})
	case errors.Is(err, domain.ErrNoVotesRecorded):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code: "NO_VOTES_RECORDED", Message: "no hay votos en el ciclo, no se puede declarar ganador"})
	case errors.Is(err, domain.ErrInvalidCandidate):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code: "INVALID_CANDIDATE", Message: "el nominado no es un candidato válido en este ciclo"})
	case errors.Is(err, domain.ErrSelfNomination):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code: "SELF_NOMINATION", Message: "no puedes nominarte a ti mismo"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "entrada inválida"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code: "FORBIDDEN", Message: "acceso denegado"})
	default:
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code: "UNAVAILABLE", Message: "el sistema no pudo procesar la petición, intenta de nuevo"})
	}
}
