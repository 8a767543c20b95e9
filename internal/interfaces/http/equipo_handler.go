package http

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/ligaspequenas/liga-api/internal/application/dto"
	"github.com/ligaspequenas/liga-api/internal/application/usecase"
	"github.com/ligaspequenas/liga-api/internal/domain"
	"github.com/ligaspequenas/liga-api/internal/domain/entity"
	"github.com/ligaspequenas/liga-api/internal/domain/repository"
)

// RosterGenerator genera el PDF del roster de un equipo.
type RosterGenerator interface {
	GenerateRosterPDF(ctx context.Context, equipo *entity.EquipoInterno, jugadores []*entity.Jugador) ([]byte, error)
}

// EquipoHandler maneja las peticiones HTTP para equipos internos (protegido).
type EquipoHandler struct {
	uc          *usecase.EquipoUseCase
	equipoRepo  repository.EquipoRepository
	jugadorRepo repository.JugadorRepository
	roster      RosterGenerator
}

// NewEquipoHandler construye el handler.
func NewEquipoHandler(uc *usecase.EquipoUseCase, equipoRepo repository.EquipoRepository, jugadorRepo repository.JugadorRepository, roster RosterGenerator) *EquipoHandler {
	return &EquipoHandler{uc: uc, equipoRepo: equipoRepo, jugadorRepo: jugadorRepo, roster: roster}
}

// Create godoc
// @Summary      Crear equipo interno
// @Tags         equipos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEquipoRequest  true  "Datos del equipo"
// @Success      201   {object}  dto.EquipoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/equipos [post]
func (h *EquipoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEquipoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" || in.CategoriaID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre y categoria_id son requeridos"})
	}
	out, err := h.uc.Crear(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la categoría no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar equipos activos
// @Tags         equipos
// @Security     Bearer
// @Produce      json
// @Param        categoria_id  query  int  false  "Filtrar por categoría"
// @Success      200  {array}  dto.EquipoResponse
// @Router       /api/equipos [get]
func (h *EquipoHandler) List(c *fiber.Ctx) error {
	categoriaID := c.QueryInt("categoria_id", 0)
	out, err := h.uc.Listar(c.UserContext(), int64(categoriaID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener equipo por ID
// @Tags         equipos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del equipo"
// @Success      200  {object}  dto.EquipoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/equipos/{id} [get]
func (h *EquipoHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	out, err := h.uc.GetByID(c.UserContext(), int64(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "equipo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar equipo
// @Tags         equipos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del equipo"
// @Param        body  body  dto.UpdateEquipoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.EquipoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/equipos/{id} [put]
func (h *EquipoHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	var in dto.UpdateEquipoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(c.UserContext(), int64(id), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "equipo no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la categoría no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Desactivar equipo (soft delete)
// @Tags         equipos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del equipo"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/equipos/{id} [delete]
func (h *EquipoHandler) Deactivate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	if err := h.uc.Desactivar(c.UserContext(), int64(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "equipo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Roster godoc
// @Summary      Descargar roster del equipo en PDF
// @Tags         equipos
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del equipo"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/equipos/{id}/roster.pdf [get]
func (h *EquipoHandler) Roster(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	equipo, err := h.equipoRepo.GetByID(int64(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if equipo == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "equipo no encontrado"})
	}
	jugadores, err := h.jugadorRepo.ListByEquipo(equipo.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	pdfBytes, err := h.roster.GenerateRosterPDF(c.UserContext(), equipo, jugadores)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_ERROR", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="roster-%d.pdf"`, equipo.ID))
	return c.Send(pdfBytes)
}
