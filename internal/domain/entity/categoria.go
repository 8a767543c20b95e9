package entity

import "time"

// Categoria representa una categoría de edad de la liga (tabla categorias).
type Categoria struct {
	ID          int64
	Nombre      string
	EdadMinima  int
	EdadMaxima  int
	Descripcion string
	Activa      bool // soft delete
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
