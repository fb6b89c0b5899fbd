package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/tienda-pro/internal/application/auth"
	"github.com/tu-usuario/tienda-pro/internal/application/dto"
	"github.com/tu-usuario/tienda-pro/internal/application/usecase"
	"github.com/tu-usuario/tienda-pro/internal/domain"
	"github.com/tu-usuario/tienda-pro/internal/domain/entity"
	"github.com/tu-usuario/tienda-pro/pkg/logger"
)

// UserHandler maneja las peticiones HTTP de usuarios.
type UserHandler struct {
	authUC *auth.AuthUseCase
	userUC *usecase.UserUseCase
	log    *logger.Logger
}

// NewUserHandler construye el handler.
func NewUserHandler(authUC *auth.AuthUseCase, userUC *usecase.UserUseCase, log *logger.Logger) *UserHandler {
	return &UserHandler{authUC: authUC, userUC: userUC, log: log}
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.authUC.CreateUser(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username, password y rol válido son requeridos"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el username ya existe"})
		case errors.Is(err, domain.ErrSystemBusy):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "BUSY", Message: domain.ErrSystemBusy.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Security     BearerAuth
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.userUC.List()
	if err != nil {
		// Las lecturas de listado degradan a vacío, nunca a 500.
		h.log.Error().Err(err).Msg("Error listando usuarios")
		return c.JSON([]dto.UserResponse{})
	}
	return c.JSON(out)
}

// Birthdays godoc
// @Summary      Clientes que cumplen años hoy
// @Tags         users
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Security     BearerAuth
// @Router       /api/users/birthdays [get]
func (h *UserHandler) Birthdays(c *fiber.Ctx) error {
	out, err := h.userUC.BirthdayClients(time.Now())
	if err != nil {
		h.log.Error().Err(err).Msg("Error listando cumpleañeros")
		return c.JSON([]dto.UserResponse{})
	}
	return c.JSON(out)
}

// UpdateImage godoc
// @Summary      Actualizar imagen de perfil
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID del usuario"
// @Param        body  body  dto.UpdateUserImageRequest true  "Imagen"
// @Success      200   {object}  dto.UserResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/users/{id}/image [put]
func (h *UserHandler) UpdateImage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	// Un cliente sólo puede cambiar su propia imagen.
	if GetRole(c) == entity.RoleCliente && GetUserID(c) != int64(id) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sólo puede modificar su propia imagen"})
	}
	var in dto.UpdateUserImageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.authUC.UpdateUserImage(int64(id), in.Image)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		case errors.Is(err, domain.ErrSystemBusy):
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "BUSY", Message: domain.ErrSystemBusy.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}
