package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/recognition-api/internal/application/dto"
	"github.com/tu-usuario/recognition-api/internal/application/recognition"
)

// UserHandler administración del directorio de empleados e historiales.
type UserHandler struct {
	users   *recognition.UserUseCase
	results *recognition.ResultsUseCase
}

// NewUserHandler construye el handler del directorio.
func NewUserHandler(users *recognition.UserUseCase, results *recognition.ResultsUseCase) *UserHandler {
	return &UserHandler{users: users, results: results}
}

// List godoc
// @Summary      Listar usuarios (admin)
// @Tags         users
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.users.List()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(users)
}

// ListEmployees godoc
// @Summary      Listar empleados nominables
// @Tags         users
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/employees [get]
func (h *UserHandler) ListEmployees(c *fiber.Ctx) error {
	users, err := h.users.ListEmployees()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(users)
}

// Create godoc
// @Summary      Alta de usuario (admin)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "name, email, password, department, role"
// @Success      201   {object}  dto.UserResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email y password son requeridos"})
	}
	user, err := h.users.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Update godoc
// @Summary      Editar usuario (admin)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "user id"
// @Param        body  body  dto.UpdateUserRequest  true  "name, email, department, role"
// @Success      200   {object}  dto.UserResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y email son requeridos"})
	}
	user, err := h.users.Update(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(user)
}

// SetStatus godoc
// @Summary      Activar/desactivar usuario (admin)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "user id"
// @Param        body  body  dto.SetUserStatusRequest  true  "ACTIVE | INACTIVE"
// @Success      200   {object}  dto.UserResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id}/status [patch]
func (h *UserHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.SetUserStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.users.SetStatus(c.Params("id"), in.Status)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(user)
}

// History godoc
// @Summary      Historial de participación de un usuario (admin)
// @Tags         users
// @Produce      json
// @Param        id  path  string  true  "user id"
// @Success      200  {array}  dto.HistoryEntryResponse
// @Router       /api/users/{id}/history [get]
func (h *UserHandler) History(c *fiber.Ctx) error {
	history, err := h.results.ComputeEmployeeHistory(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(recognition.HistoryToResponse(history))
}

// MyHistory godoc
// @Summary      Mi historial de participación
// @Tags         users
// @Produce      json
// @Success      200  {array}  dto.HistoryEntryResponse
// @Router       /api/me/history [get]
func (h *UserHandler) MyHistory(c *fiber.Ctx) error {
	history, err := h.results.ComputeEmployeeHistory(GetUserID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(recognition.HistoryToResponse(history))
}
