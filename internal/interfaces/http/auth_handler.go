package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ligaspequenas/liga-api/internal/application/auth"
	"github.com/ligaspequenas/liga-api/internal/application/dto"
	"github.com/ligaspequenas/liga-api/internal/metrics"
)

// AuthHandler maneja login, registro, logout y sesión actual. Las operaciones
// de sesión pasan por el SessionStore, que es el único escritor de la
// identidad del proceso y devuelve siempre un Resultado (nunca propaga panic).
// /me no toca el SessionStore: responde con los claims del token de la
// petición, porque la identidad del proceso es compartida y no identifica al
// llamador.
type AuthHandler struct {
	store    *auth.SessionStore
	gate     auth.RoleGate
	metricas *metrics.Collector
}

// NewAuthHandler construye el handler de auth. metricas puede ser nil.
func NewAuthHandler(store *auth.SessionStore, gate auth.RoleGate, metricas *metrics.Collector) *AuthHandler {
	return &AuthHandler{store: store, gate: gate, metricas: metricas}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  auth.Resultado
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out := h.store.SignIn(c.UserContext(), in.Email, in.Password)
	if h.metricas != nil {
		h.metricas.RecordLogin(out.OK)
	}
	if !out.OK {
		return c.Status(fiber.StatusUnauthorized).JSON(out)
	}
	return c.JSON(out)
}

// SignUp godoc
// @Summary      Registrar usuario (solo SuperAdministrador)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignUpRequest  true  "Datos de la cuenta"
// @Success      201   {object}  auth.Resultado
// @Failure      403   {object}  auth.Resultado
// @Router       /api/auth/signup [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var in dto.SignUpRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 8 caracteres"})
	}
	out := h.store.SignUp(c.UserContext(), in.Email, in.Password, auth.Perfil{
		Nombre:          in.Nombre,
		ApellidoPaterno: in.ApellidoPaterno,
		ApellidoMaterno: in.ApellidoMaterno,
		Telefono:        in.Telefono,
	})
	if !out.OK {
		if h.metricas != nil {
			h.metricas.RecordSignupDenegado()
		}
		return c.Status(fiber.StatusForbidden).JSON(out)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  auth.Resultado
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	// La identidad local se limpia aunque el proveedor falle.
	out := h.store.SignOut(c.UserContext())
	return c.JSON(out)
}

// Me godoc
// @Summary      Identidad del token de la petición
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.SesionActualResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	email := GetEmail(c)
	return c.JSON(dto.SesionActualResponse{
		ID:           GetUserID(c),
		Email:        email,
		EsSuperAdmin: h.gate.EsSuperAdmin(email),
	})
}
