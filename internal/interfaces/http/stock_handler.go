package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	appstock "github.com/jhoicas/stockmaster-api/internal/application/stock"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// StockHandler maneja las consultas de saldos y del libro de movimientos.
type StockHandler struct {
	uc *appstock.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *appstock.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Balance godoc
// @Summary      Saldo de un producto (tripleta exacta, por bodega o total)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string  true   "ID del producto"
// @Param        warehouse_id  query  string  false  "Bodega"
// @Param        location_id   query  string  false  "Ubicación (requiere warehouse_id)"
// @Success      200  {object}  dto.BalanceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) Balance(c *fiber.Ctx) error {
	balance, err := h.uc.Balance(c.Query("product_id"), c.Query("warehouse_id"), c.Query("location_id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(balance)
}

// ByProduct godoc
// @Summary      Desglose de saldo de un producto por bodega y ubicación
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {array}  dto.StockByLocationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [get]
func (h *StockHandler) ByProduct(c *fiber.Ctx) error {
	rows, err := h.uc.ByProduct(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(toStockRows(rows))
}

// ByWarehouse godoc
// @Summary      Saldos de una bodega por producto y ubicación
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la bodega"
// @Success      200  {array}  dto.StockByLocationResponse
// @Router       /api/warehouses/{id}/stock [get]
func (h *StockHandler) ByWarehouse(c *fiber.Ctx) error {
	rows, err := h.uc.ByWarehouse(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(toStockRows(rows))
}

func toStockRows(rows []*entity.StockByLocation) []dto.StockByLocationResponse {
	out := make([]dto.StockByLocationResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StockByLocationResponse{
			WarehouseID:   r.WarehouseID,
			WarehouseName: r.WarehouseName,
			LocationID:    r.LocationID,
			LocationName:  r.LocationName,
			Quantity:      r.Quantity,
		})
	}
	return out
}

// Movements godoc
// @Summary      Libro de movimientos (timestamp descendente)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id     query  string  false  "Producto"
// @Param        warehouse_id   query  string  false  "Bodega (contexto o destino de transfer)"
// @Param        movement_type  query  string  false  "receipt, delivery, transfer, adjustment"
// @Param        start          query  string  false  "Desde (RFC3339)"
// @Param        end            query  string  false  "Hasta (RFC3339)"
// @Param        limit          query  int     false  "Tamaño de página (máx 100)"
// @Param        offset         query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *StockHandler) Movements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	filter := repository.MovementFilter{
		ProductID:    c.Query("product_id"),
		WarehouseID:  c.Query("warehouse_id"),
		MovementType: entity.MovementType(c.Query("movement_type")),
	}
	if s := c.Query("start"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "start debe ser RFC3339"})
		}
		filter.From = &t
	}
	if s := c.Query("end"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "end debe ser RFC3339"})
		}
		filter.To = &t
	}
	list, err := h.uc.Movements(filter, page)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(list)
}

// Replay godoc
// @Summary      Reconstruir saldos reproduciendo el libro completo
// @Description  Verificación operativa: las tripletas devueltas deben coincidir con la tabla de saldos.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BalanceResponse
// @Router       /api/stock/replay [get]
func (h *StockHandler) Replay(c *fiber.Ctx) error {
	balances, err := h.uc.ReplayLedger()
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(balances)
}
