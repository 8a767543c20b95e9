package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUsuarioNotFound    = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// ErrSesionFaltante indica que no hay sesión activa. Es una condición normal
	// durante el arranque y no debe registrarse como error.
	ErrSesionFaltante = errors.New("no hay sesión activa")

	// ErrCredenciales indica email/password incorrectos.
	ErrCredenciales = errors.New("credenciales inválidas")

	// ErrRolDesconocido indica un código de rol no reconocido en crear/actualizar
	// usuario; la operación falla antes de escribir cualquier fila.
	ErrRolDesconocido = errors.New("rol desconocido")
)
