package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/stock"
)

// DocketHandler maneja las peticiones HTTP para remitos (protegido).
type DocketHandler struct {
	uc *stock.DocketUseCase
}

// NewDocketHandler construye el handler.
func NewDocketHandler(uc *stock.DocketUseCase) *DocketHandler {
	return &DocketHandler{uc: uc}
}

// Create godoc
// @Summary      Crear remito
// @Description  Registra un remito IMPORT o EXPORT con sus líneas. Nace en estado NEW.
// @Tags         dockets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDocketRequest  true  "Datos del remito"
// @Success      201   {object}  dto.DocketResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/dockets [post]
func (h *DocketHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDocketRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateDocket(c.Context(), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener remito por ID
// @Tags         dockets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del remito"
// @Success      200  {object}  dto.DocketResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dockets/{id} [get]
func (h *DocketHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetDocket(c.Context(), id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar remitos
// @Tags         dockets
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Param        limit         query  int     false  "Límite"   default(20)
// @Param        offset        query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.DocketListResponse
// @Router       /api/dockets [get]
func (h *DocketHandler) List(c *fiber.Ctx) error {
	warehouseID := c.Query("warehouse_id")
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.ListDockets(c.Context(), warehouseID, limit, offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// AdvanceStatus godoc
// @Summary      Avanzar estado del remito
// @Description  El estado solo avanza: NEW -> PROCESSING -> COMPLETED (se permite saltar a COMPLETED).
// @Tags         dockets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del remito"
// @Param        body  body  dto.AdvanceStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.DocketResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/dockets/{id}/status [patch]
func (h *DocketHandler) AdvanceStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.AdvanceStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AdvanceDocketStatus(c.Context(), id, in.Status)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// UpdateItems godoc
// @Summary      Reemplazar líneas del remito
// @Description  Solo permitido mientras el remito está en NEW.
// @Tags         dockets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID del remito"
// @Param        body  body  dto.UpdateDocketItemsRequest  true  "Líneas nuevas"
// @Success      200   {object}  dto.DocketResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/dockets/{id}/items [put]
func (h *DocketHandler) UpdateItems(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateDocketItemsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateDocketItems(c.Context(), id, in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar remito
// @Description  Un remito COMPLETED no se puede eliminar.
// @Tags         dockets
// @Security     Bearer
// @Param        id   path  string  true  "ID del remito"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/dockets/{id} [delete]
func (h *DocketHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.DeleteDocket(c.Context(), id); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
