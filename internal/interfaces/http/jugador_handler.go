package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/ligaspequenas/liga-api/internal/application/dto"
	"github.com/ligaspequenas/liga-api/internal/application/usecase"
	"github.com/ligaspequenas/liga-api/internal/domain"
)

// JugadorHandler maneja las peticiones HTTP para jugadores (protegido).
type JugadorHandler struct {
	uc *usecase.JugadorUseCase
}

// NewJugadorHandler construye el handler.
func NewJugadorHandler(uc *usecase.JugadorUseCase) *JugadorHandler {
	return &JugadorHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar jugador
// @Tags         jugadores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateJugadorRequest  true  "Datos del jugador"
// @Success      201   {object}  dto.JugadorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/jugadores [post]
func (h *JugadorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateJugadorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" || in.ApellidoPaterno == "" || in.FechaNacimiento == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre, apellido_paterno y fecha_nacimiento son requeridos"})
	}
	out, err := h.uc.Crear(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida o el equipo no pertenece a la categoría"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar jugadores activos
// @Tags         jugadores
// @Security     Bearer
// @Produce      json
// @Param        equipo_id     query  int     false  "Filtrar por equipo"
// @Param        categoria_id  query  int     false  "Filtrar por categoría"
// @Param        q             query  string  false  "Búsqueda por nombre o apellidos"
// @Success      200  {array}  dto.JugadorResponse
// @Router       /api/jugadores [get]
func (h *JugadorHandler) List(c *fiber.Ctx) error {
	if q := c.Query("q"); q != "" {
		out, err := h.uc.Buscar(c.UserContext(), q)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(out)
	}
	equipoID := c.QueryInt("equipo_id", 0)
	categoriaID := c.QueryInt("categoria_id", 0)
	out, err := h.uc.Listar(c.UserContext(), int64(equipoID), int64(categoriaID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener jugador por ID
// @Tags         jugadores
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del jugador"
// @Success      200  {object}  dto.JugadorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/jugadores/{id} [get]
func (h *JugadorHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	out, err := h.uc.GetByID(c.UserContext(), int64(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "jugador no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar jugador
// @Tags         jugadores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del jugador"
// @Param        body  body  dto.UpdateJugadorRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.JugadorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/jugadores/{id} [put]
func (h *JugadorHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	var in dto.UpdateJugadorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(c.UserContext(), int64(id), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "jugador no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida o el equipo no pertenece a la categoría"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Desactivar jugador (soft delete)
// @Tags         jugadores
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del jugador"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/jugadores/{id} [delete]
func (h *JugadorHandler) Deactivate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	if err := h.uc.Desactivar(c.UserContext(), int64(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "jugador no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
