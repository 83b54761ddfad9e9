package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockit-api/internal/application/dto"
	"github.com/jhoicas/stockit-api/internal/application/stock"
)

// MovementHandler expone el libro de movimientos (solo gerentes).
type MovementHandler struct {
	uc *stock.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *stock.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// List godoc
// @Summary      Listar movimientos de stock de la empresa
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MovementResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/stock-movement [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByCompany(GetCompanyID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
