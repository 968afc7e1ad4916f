package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// TagHandler maneja las peticiones HTTP para Tag (protegido).
type TagHandler struct {
	uc *usecase.TagUseCase
}

// NewTagHandler construye el handler.
func NewTagHandler(uc *usecase.TagUseCase) *TagHandler {
	return &TagHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tag
// @Tags         tags
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TagRequest  true  "Nombre del tag"
// @Success      201   {object}  dto.TagResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tags [post]
func (h *TagHandler) Create(c *fiber.Ctx) error {
	var in dto.TagRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if stop, err := validateBody(c, in); stop {
		return err
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener tag por ID
// @Tags         tags
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tag"
// @Success      200  {object}  dto.TagResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tags/{id} [get]
func (h *TagHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tag no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar tags
// @Tags         tags
// @Security     Bearer
// @Produce      json
// @Param        includeDeleted  query  bool    false  "Incluir eliminados"
// @Param        productId       query  string  false  "Filtrar por producto"
// @Success      200  {array}  dto.TagResponse
// @Router       /api/tags [get]
func (h *TagHandler) List(c *fiber.Ctx) error {
	if productID := c.Query("productId"); productID != "" {
		out, err := h.uc.ListByProduct(productID)
		if err != nil {
			return domainError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.List(c.QueryBool("includeDeleted", false))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ListDeleted godoc
// @Summary      Listar tags eliminados
// @Tags         tags
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TagResponse
// @Router       /api/tags/deleted [get]
func (h *TagHandler) ListDeleted(c *fiber.Ctx) error {
	out, err := h.uc.ListDeleted()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Rename godoc
// @Summary      Renombrar tag
// @Tags         tags
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del tag"
// @Param        body  body  dto.TagRequest  true  "Nuevo nombre"
// @Success      200   {object}  dto.TagResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tags/{id}/name [put]
func (h *TagHandler) Rename(c *fiber.Ctx) error {
	var in dto.TagRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if stop, err := validateBody(c, in); stop {
		return err
	}
	out, err := h.uc.Rename(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// AssignToProduct godoc
// @Summary      Asignar tag a un producto
// @Tags         tags
// @Security     Bearer
// @Produce      json
// @Param        id         path  string  true  "ID del tag"
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.TagResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tags/{id}/product/{productId} [put]
func (h *TagHandler) AssignToProduct(c *fiber.Ctx) error {
	out, err := h.uc.AssignToProduct(GetUserID(c), c.Params("id"), c.Params("productId"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tag (soft delete)
// @Tags         tags
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tag"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/tags/{id} [delete]
func (h *TagHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "tag eliminado"})
}

// Restore godoc
// @Summary      Restaurar tag eliminado
// @Tags         tags
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tag"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/tags/{id}/restore [post]
func (h *TagHandler) Restore(c *fiber.Ctx) error {
	if err := h.uc.Restore(GetUserID(c), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "tag restaurado"})
}
