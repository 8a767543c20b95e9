package entity

import "time"

// Códigos de rol válidos para asignaciones (valores que viajan en la API).
const (
	RolAdminLiga      = "admin_liga"
	RolAdminCategoria = "admin_categoria"
	RolAdminEquipo    = "admin_equipo"
	RolPadreTutor     = "padre_tutor"
)

// RolUsuario representa un rol del sistema (tabla roles_usuario).
type RolUsuario struct {
	ID            int64
	Nombre        string // nombre de despliegue: "Administrador de Liga", ...
	Descripcion   string
	NivelPermisos int
	Activo        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// UsuarioRol representa una asignación de rol a un usuario (tabla usuario_roles),
// opcionalmente acotada a una categoría o a un equipo según el rol.
// Invariante del servicio de usuarios: a lo sumo una asignación activa por usuario;
// al cambiar de rol las anteriores se desactivan, no se eliminan.
type UsuarioRol struct {
	ID              int64
	UsuarioID       string
	RolID           int64
	CategoriaID     *int64
	EquipoInternoID *int64
	Activo          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
