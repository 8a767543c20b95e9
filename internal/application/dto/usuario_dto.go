package dto

import "time"

// CreateUsuarioRequest entrada para aprovisionar un usuario con su rol.
// El rol viaja como código (admin_liga, admin_categoria, admin_equipo,
// padre_tutor); el acotamiento por categoría/equipo depende del rol.
type CreateUsuarioRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	Nombre          string `json:"nombre" validate:"required"`
	ApellidoPaterno string `json:"apellido_paterno" validate:"required"`
	ApellidoMaterno string `json:"apellido_materno"`
	Telefono        string `json:"telefono"`
	Rol             string `json:"rol" validate:"required"`
	CategoriaID     *int64 `json:"categoria_id"`
	EquipoInternoID *int64 `json:"equipo_interno_id"`
}

// UpdateUsuarioRequest entrada para actualizar un usuario. Los campos de ficha
// reemplazan los vigentes; Password y Rol vacíos significan "sin cambio".
type UpdateUsuarioRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Nombre          string `json:"nombre" validate:"required"`
	ApellidoPaterno string `json:"apellido_paterno" validate:"required"`
	ApellidoMaterno string `json:"apellido_materno"`
	Telefono        string `json:"telefono"`
	Password        string `json:"password"`
	Rol             string `json:"rol"`
	CategoriaID     *int64 `json:"categoria_id"`
	EquipoInternoID *int64 `json:"equipo_interno_id"`
}

// UsuarioResponse salida de un usuario (sin material de contraseña), con la
// vista desnormalizada de su asignación de rol activa.
type UsuarioResponse struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	Nombre          string     `json:"nombre"`
	ApellidoPaterno string     `json:"apellido_paterno"`
	ApellidoMaterno string     `json:"apellido_materno,omitempty"`
	Telefono        string     `json:"telefono,omitempty"`
	Activo          bool       `json:"activo"`
	EmailVerificado bool       `json:"email_verificado"`
	UltimoAcceso    *time.Time `json:"ultimo_acceso,omitempty"`
	Rol             string     `json:"rol,omitempty"`
	CategoriaNombre string     `json:"categoria_nombre,omitempty"`
	EquipoNombre    string     `json:"equipo_nombre,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignUpRequest entrada para registro (solo SuperAdministrador).
type SignUpRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	Nombre          string `json:"nombre" validate:"required"`
	ApellidoPaterno string `json:"apellido_paterno" validate:"required"`
	ApellidoMaterno string `json:"apellido_materno"`
	Telefono        string `json:"telefono"`
}

// SesionActualResponse identidad derivada del token de la petición.
type SesionActualResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	EsSuperAdmin bool   `json:"es_superadmin"`
}
