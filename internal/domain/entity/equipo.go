package entity

import "time"

// EquipoInterno representa un equipo interno de la liga (tabla equipos_internos).
type EquipoInterno struct {
	ID                  int64
	Nombre              string
	CategoriaID         int64
	ColorUniforme       string
	EntrenadorPrincipal string
	EntrenadorAsistente string
	TelefonoContacto    string
	EmailContacto       string
	Activo              bool // soft delete
	FechaCreacion       time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// Campos de lectura poblados por el join con categorias.
	CategoriaNombre string
	EdadMinima      int
	EdadMaxima      int
}
