package entity

import "time"

// Usuario representa la ficha de un usuario del sistema (tabla usuarios).
// El ID coincide con el ID de la cuenta del proveedor de autenticación.
// No guarda material de contraseña; las credenciales viven en cuentas_auth.
type Usuario struct {
	ID              string
	Email           string
	Nombre          string
	ApellidoPaterno string
	ApellidoMaterno string // opcional
	Telefono        string // opcional
	Activo          bool   // soft delete
	EmailVerificado bool
	UltimoAcceso    *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// UsuarioConRol vista desnormalizada de un usuario con su asignación de rol activa.
// Rol, CategoriaNombre y EquipoNombre provienen de la primera asignación activa.
type UsuarioConRol struct {
	Usuario
	Rol             string // nombre del rol ("Administrador de Liga", ...) o "Sin rol"
	CategoriaNombre string
	EquipoNombre    string
}
