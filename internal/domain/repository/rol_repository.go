package repository

import "github.com/ligaspequenas/liga-api/internal/domain/entity"

// RolRepository define el puerto de persistencia para RolUsuario.
type RolRepository interface {
	// ListActivos devuelve los roles activos ordenados por nivel_permisos.
	ListActivos() ([]*entity.RolUsuario, error)
	// GetByNombre obtiene un rol por su nombre de despliegue exacto
	// ("Administrador de Liga", "Padre de Familia", ...). nil si no existe.
	GetByNombre(nombre string) (*entity.RolUsuario, error)
}

// UsuarioRolRepository define el puerto de persistencia para asignaciones de rol.
type UsuarioRolRepository interface {
	Create(ur *entity.UsuarioRol) error
	// ListActivosByUsuario devuelve las asignaciones activas de un usuario.
	ListActivosByUsuario(usuarioID string) ([]*entity.UsuarioRol, error)
	// DesactivarByUsuario marca inactivas TODAS las asignaciones del usuario.
	DesactivarByUsuario(usuarioID string) error
}
