package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/simulador-reforma/internal/application/usecase"
)

// UserHandler administración de perfiles del tenant.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List GET /api/users
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetTenantID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Confirm PUT /api/users/:id/confirm. Habilita el login del usuario.
func (h *UserHandler) Confirm(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "MISSING_ID", "id es requerido")
	}
	out, err := h.uc.Confirm(c.UserContext(), GetTenantID(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
