package repository

import "github.com/ligaspequenas/liga-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
type UsuarioRepository interface {
	Create(u *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
	// UpdateCampos actualiza los campos de ficha (nombre, apellidos, teléfono, email).
	UpdateCampos(u *entity.Usuario) error
	// ListActivosConRol devuelve usuarios activos con su asignación de rol activa
	// desnormalizada (rol, categoría y equipo de la primera asignación activa).
	ListActivosConRol() ([]*entity.UsuarioConRol, error)
	// Desactivar marca activo=false (soft delete). No toca usuario_roles.
	Desactivar(id string) error
	RegistrarAcceso(id string) error
}
