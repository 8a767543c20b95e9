package dto

import "time"

// CreateCategoriaRequest entrada para crear una categoría.
type CreateCategoriaRequest struct {
	Nombre      string `json:"nombre" validate:"required"`
	EdadMinima  int    `json:"edad_minima" validate:"required,min=3"`
	EdadMaxima  int    `json:"edad_maxima" validate:"required"`
	Descripcion string `json:"descripcion"`
}

// UpdateCategoriaRequest entrada para actualizar una categoría.
type UpdateCategoriaRequest struct {
	Nombre      string `json:"nombre" validate:"required"`
	EdadMinima  int    `json:"edad_minima" validate:"required,min=3"`
	EdadMaxima  int    `json:"edad_maxima" validate:"required"`
	Descripcion string `json:"descripcion"`
}

// CategoriaResponse salida de una categoría.
type CategoriaResponse struct {
	ID          int64     `json:"id"`
	Nombre      string    `json:"nombre"`
	EdadMinima  int       `json:"edad_minima"`
	EdadMaxima  int       `json:"edad_maxima"`
	Descripcion string    `json:"descripcion,omitempty"`
	Activa      bool      `json:"activa"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
