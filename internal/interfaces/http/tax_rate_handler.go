package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/simulador-reforma/internal/application/dto"
	"github.com/jhoicas/simulador-reforma/internal/application/usecase"
)

// TaxRateHandler tabla de alícuotas de transición.
type TaxRateHandler struct {
	uc *usecase.TaxRateUseCase
}

// NewTaxRateHandler construye el handler.
func NewTaxRateHandler(uc *usecase.TaxRateUseCase) *TaxRateHandler {
	return &TaxRateHandler{uc: uc}
}

// List godoc
// @Summary      Cronograma de alícuotas (tabla o cronograma por defecto)
// @Tags         tax-rates
// @Produce      json
// @Success      200  {object}  dto.TaxRateListResponse
// @Router       /api/tax-rates [get]
func (h *TaxRateHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Upsert godoc
// @Summary      Crear o actualizar las alícuotas de un año
// @Tags         tax-rates
// @Accept       json
// @Produce      json
// @Param        year  path  int                 true  "Año"
// @Param        body  body  dto.TaxRateRequest  true  "porcentajes"
// @Success      200   {object}  dto.TaxRateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tax-rates/{year} [put]
func (h *TaxRateHandler) Upsert(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return badRequest(c, "VALIDATION", "year debe ser numérico")
	}
	var in dto.TaxRateRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Upsert(c.UserContext(), year, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
