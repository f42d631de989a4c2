package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-api/internal/application/dto"
	"github.com/tu-usuario/stock-api/internal/application/stock"
)

// StockHandler expone el motor de reconciliación de stock.
type StockHandler struct {
	uc *stock.UpdateStockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.UpdateStockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// UpdateStock godoc
// @Summary      Reconciliar stock
// @Description  Aplica un lote de retiros {supplier_id, quantity} sobre los proveedores
//               de un producto, en orden, dentro de una transacción, y recalcula el
//               total del producto como la suma de todos sus proveedores.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateStockRequest  true  "product_id y stock_updates ordenados"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /update-stock [post]
func (h *StockHandler) UpdateStock(c *fiber.Ctx) error {
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadBody(c)
	}
	out, err := h.uc.UpdateStock(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "Stock actualizado correctamente", out)
}
