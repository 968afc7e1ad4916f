package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/importer"
)

// ImportHandler dispara el job de importación desde el catálogo externo.
type ImportHandler struct {
	uc *importer.ImportUseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *importer.ImportUseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// Run godoc
// @Summary      Importar productos desde el catálogo externo
// @Tags         imports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ImportResult
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/imports/products [post]
func (h *ImportHandler) Run(c *fiber.Ctx) error {
	out, err := h.uc.Run(c.UserContext(), GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
