package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/shopspring/decimal"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
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
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return domainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        includeDeleted  query  bool    false  "Incluir eliminados"
// @Param        categoryId      query  string  false  "Filtrar por categoría"
// @Param        active          query  bool    false  "Filtrar por estado activo"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	if categoryID := c.Query("categoryId"); categoryID != "" {
		out, err := h.uc.ListByCategory(categoryID)
		if err != nil {
			return domainError(c, err)
		}
		return c.JSON(out)
	}
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "active debe ser true o false"})
		}
		out, err := h.uc.ListByActive(active)
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
// @Summary      Listar productos eliminados
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products/deleted [get]
func (h *ProductHandler) ListDeleted(c *fiber.Ctx) error {
	out, err := h.uc.ListDeleted()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar productos con filtros, orden y paginación
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        term            query  string  false  "Texto en nombre o descripción"
// @Param        categoryId      query  string  false  "Categoría exacta"
// @Param        minPrice        query  number  false  "Precio mínimo (inclusivo)"
// @Param        maxPrice        query  number  false  "Precio máximo (inclusivo)"
// @Param        active          query  bool    false  "Estado activo"
// @Param        tags            query  string  false  "Tags separados por coma (basta coincidir uno)"
// @Param        sortBy          query  string  false  "name, price o date"
// @Param        sortDescending  query  bool    false  "Orden descendente"
// @Param        page            query  int     false  "Página (desde 1)"   default(1)
// @Param        pageSize        query  int     false  "Tamaño de página"   default(20)
// @Success      200  {object}  dto.ProductSearchResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products/search [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	in, err := parseSearchRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if stop, verr := validateBody(c, *in); stop {
		return verr
	}
	out, err := h.uc.Search(*in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// parseSearchRequest arma el DTO de búsqueda desde la query string. Los
// precios se parsean como decimales exactos y se exige min ≤ max.
func parseSearchRequest(c *fiber.Ctx) (*dto.ProductSearchRequest, error) {
	in := dto.ProductSearchRequest{
		Term:           c.Query("term"),
		CategoryID:     c.Query("categoryId"),
		SortBy:         c.Query("sortBy"),
		SortDescending: c.QueryBool("sortDescending", false),
		Page:           c.QueryInt("page", 1),
		PageSize:       c.QueryInt("pageSize", 20),
	}

	if raw := c.Query("minPrice"); raw != "" {
		p, err := decimal.NewFromString(raw)
		if err != nil || p.IsNegative() {
			return nil, fiber.NewError(fiber.StatusBadRequest, "minPrice debe ser un número no negativo")
		}
		in.MinPrice = &p
	}
	if raw := c.Query("maxPrice"); raw != "" {
		p, err := decimal.NewFromString(raw)
		if err != nil || p.IsNegative() {
			return nil, fiber.NewError(fiber.StatusBadRequest, "maxPrice debe ser un número no negativo")
		}
		in.MaxPrice = &p
	}
	if in.MinPrice != nil && in.MaxPrice != nil && in.MinPrice.GreaterThan(*in.MaxPrice) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "minPrice no puede ser mayor que maxPrice")
	}
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "active debe ser true o false")
		}
		in.Active = &active
	}
	if raw := c.Query("tags"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				in.Tags = append(in.Tags, t)
			}
		}
	}
	return &in, nil
}

// Rename godoc
// @Summary      Renombrar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.RenameProductRequest  true  "Nuevo nombre"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/name [put]
func (h *ProductHandler) Rename(c *fiber.Ctx) error {
	var in dto.RenameProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if stop, err := validateBody(c, in); stop {
		return err
	}
	out, err := h.uc.Rename(GetUserID(c), c.Params("id"), in.Name)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Redescribe godoc
// @Summary      Cambiar descripción del producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.RedescribeProductRequest  true  "Nueva descripción"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/description [put]
func (h *ProductHandler) Redescribe(c *fiber.Ctx) error {
	var in dto.RedescribeProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if stop, err := validateBody(c, in); stop {
		return err
	}
	out, err := h.uc.Redescribe(GetUserID(c), c.Params("id"), in.Description)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Reprice godoc
// @Summary      Cambiar precio del producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.RepriceProductRequest  true  "Nuevo precio"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/price [put]
func (h *ProductHandler) Reprice(c *fiber.Ctx) error {
	var in dto.RepriceProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Reprice(GetUserID(c), c.Params("id"), in.Price)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Activate godoc
// @Summary      Activar producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/activate [post]
func (h *ProductHandler) Activate(c *fiber.Ctx) error {
	out, err := h.uc.Activate(GetUserID(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Desactivar producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/deactivate [post]
func (h *ProductHandler) Deactivate(c *fiber.Ctx) error {
	out, err := h.uc.Deactivate(GetUserID(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ChangeCategory godoc
// @Summary      Recategorizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.ChangeCategoryRequest  true  "Nueva categoría"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/category [put]
func (h *ProductHandler) ChangeCategory(c *fiber.Ctx) error {
	var in dto.ChangeCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if stop, err := validateBody(c, in); stop {
		return err
	}
	out, err := h.uc.ChangeCategory(GetUserID(c), c.Params("id"), in.CategoryID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// AddTag godoc
// @Summary      Agregar tag al producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id     path  string  true  "ID del producto"
// @Param        tagId  path  string  true  "ID del tag"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/tags/{tagId} [post]
func (h *ProductHandler) AddTag(c *fiber.Ctx) error {
	out, err := h.uc.AddTag(GetUserID(c), c.Params("id"), c.Params("tagId"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// RemoveTag godoc
// @Summary      Quitar tag del producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id     path  string  true  "ID del producto"
// @Param        tagId  path  string  true  "ID del tag"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/tags/{tagId} [delete]
func (h *ProductHandler) RemoveTag(c *fiber.Ctx) error {
	out, err := h.uc.RemoveTag(GetUserID(c), c.Params("id"), c.Params("tagId"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ClearTags godoc
// @Summary      Quitar todos los tags del producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/tags [delete]
func (h *ProductHandler) ClearTags(c *fiber.Ctx) error {
	out, err := h.uc.ClearTags(GetUserID(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto (soft delete)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producto eliminado"})
}

// Restore godoc
// @Summary      Restaurar producto eliminado
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/restore [post]
func (h *ProductHandler) Restore(c *fiber.Ctx) error {
	if err := h.uc.Restore(GetUserID(c), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producto restaurado"})
}
