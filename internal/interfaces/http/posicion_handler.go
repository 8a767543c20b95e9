package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ligaspequenas/liga-api/internal/application/dto"
	"github.com/ligaspequenas/liga-api/internal/application/usecase"
)

// PosicionHandler maneja la lectura del catálogo de posiciones (protegido).
type PosicionHandler struct {
	uc *usecase.PosicionUseCase
}

// NewPosicionHandler construye el handler.
func NewPosicionHandler(uc *usecase.PosicionUseCase) *PosicionHandler {
	return &PosicionHandler{uc: uc}
}

// List godoc
// @Summary      Listar posiciones de juego
// @Tags         posiciones
// @Security     Bearer
// @Produce      json
// @Param        obligatorias  query  bool  false  "Solo posiciones titulares"
// @Success      200  {array}  dto.PosicionResponse
// @Router       /api/posiciones [get]
func (h *PosicionHandler) List(c *fiber.Ctx) error {
	soloObligatorias := c.QueryBool("obligatorias", false)
	out, err := h.uc.Listar(c.UserContext(), soloObligatorias)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
