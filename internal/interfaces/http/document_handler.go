package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmaster-api/internal/application/documents"
	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// DocumentHandler maneja las peticiones HTTP de documentos de inventario.
// Se registra una vez por tipo (receipts, deliveries, transfers, adjustments):
// el tipo viene fijado por la ruta y el caso de uso es compartido.
type DocumentHandler struct {
	uc      *documents.DocumentUseCase
	docType entity.DocumentType
}

// NewDocumentHandler construye el handler para un tipo de documento.
func NewDocumentHandler(uc *documents.DocumentUseCase, docType entity.DocumentType) *DocumentHandler {
	return &DocumentHandler{uc: uc, docType: docType}
}

// Create godoc
// @Summary      Crear documento en draft (referencia asignada al crear)
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDocumentRequest  true  "campos según el tipo de la ruta"
// @Success      201   {object}  dto.DocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/{docType} [post]
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	doc, err := h.uc.Create(h.docType, in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// GetByID godoc
// @Summary      Obtener documento con líneas
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  dto.DocumentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/{docType}/{id} [get]
func (h *DocumentHandler) GetByID(c *fiber.Ctx) error {
	doc, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	if doc.Type != string(h.docType) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	}
	return c.JSON(doc)
}

// List godoc
// @Summary      Listar documentos del tipo (fecha descendente)
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        status        query  string  false  "draft, waiting, ready, done, canceled"
// @Param        warehouse_id  query  string  false  "Bodega (en transfers matchea origen o destino)"
// @Param        limit         query  int     false  "Tamaño de página (máx 100)"
// @Param        offset        query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.DocumentListResponse
// @Router       /api/{docType} [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	list, err := h.uc.List(h.docType, c.Query("status"), c.Query("warehouse_id"), page)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(list)
}

// Update godoc
// @Summary      Actualizar documento (solo pre-done)
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del documento"
// @Param        body  body  dto.UpdateDocumentRequest  true  "campos opcionales; lines reemplaza completas"
// @Success      200   {object}  dto.DocumentResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/{docType}/{id} [put]
func (h *DocumentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	doc, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(doc)
}

// Delete godoc
// @Summary      Eliminar documento (solo en draft)
// @Tags         documents
// @Security     Bearer
// @Param        id  path  string  true  "ID del documento"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/{docType}/{id} [delete]
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return handleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Transition godoc
// @Summary      Transicionar estado; la transición a done confirma el stock atómicamente
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del documento"
// @Param        body  body  dto.TransitionRequest  true  "status destino"
// @Success      200   {object}  dto.DocumentResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/{docType}/{id}/transition [post]
func (h *DocumentHandler) Transition(c *fiber.Ctx) error {
	var in dto.TransitionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	doc, err := h.uc.Transition(c.Context(), c.Params("id"), in.Status, GetUserID(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(doc)
}

// DeliveryNotePDF godoc
// @Summary      Remisión de entrega en PDF (solo deliveries)
// @Tags         documents
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la entrega"
// @Success      200  {file}  byte
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/deliveries/{id}/pdf [get]
func (h *DocumentHandler) DeliveryNotePDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.DeliveryNotePDF(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdfBytes)
}
