package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
)

// ReasonHandler maneja las peticiones HTTP para motivos de remito (protegido).
type ReasonHandler struct {
	uc *usecase.ReasonUseCase
}

// NewReasonHandler construye el handler.
func NewReasonHandler(uc *usecase.ReasonUseCase) *ReasonHandler {
	return &ReasonHandler{uc: uc}
}

// Create godoc
// @Summary      Crear motivo
// @Tags         reasons
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReasonRequest  true  "Datos del motivo"
// @Success      201   {object}  dto.ReasonResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reasons [post]
func (h *ReasonHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReasonRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener motivo por ID
// @Tags         reasons
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del motivo"
// @Success      200  {object}  dto.ReasonResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reasons/{id} [get]
func (h *ReasonHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar motivos
// @Tags         reasons
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.ReasonResponse
// @Router       /api/reasons [get]
func (h *ReasonHandler) List(c *fiber.Ctx) error {
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
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
