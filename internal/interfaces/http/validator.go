package http

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
)

// validate instancia compartida; los tags viven en los DTOs.
var validate = validator.New()

// validateBody valida un DTO ya parseado y responde 400 con el detalle de
// los campos inválidos. Devuelve true si la petición debe cortarse.
func validateBody(c *fiber.Ctx, in any) (bool, error) {
	err := validate.Struct(in)
	if err == nil {
		return false, nil
	}
	var verrs validator.ValidationErrors
	fields := make([]string, 0, 4)
	if ok := errors.As(err, &verrs); ok {
		for _, fe := range verrs {
			fields = append(fields, fe.Field()+":"+fe.Tag())
		}
	}
	msg := "cuerpo inválido"
	if len(fields) > 0 {
		msg = "campos inválidos: " + strings.Join(fields, ", ")
	}
	return true, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
}
