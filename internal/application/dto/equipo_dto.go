package dto

import "time"

// CreateEquipoRequest entrada para crear un equipo interno.
type CreateEquipoRequest struct {
	Nombre              string `json:"nombre" validate:"required"`
	CategoriaID         int64  `json:"categoria_id" validate:"required"`
	ColorUniforme       string `json:"color_uniforme"`
	EntrenadorPrincipal string `json:"entrenador_principal"`
	EntrenadorAsistente string `json:"entrenador_asistente"`
	TelefonoContacto    string `json:"telefono_contacto"`
	EmailContacto       string `json:"email_contacto"`
}

// UpdateEquipoRequest entrada para actualizar un equipo interno.
type UpdateEquipoRequest = CreateEquipoRequest

// EquipoResponse salida de un equipo interno con su categoría.
type EquipoResponse struct {
	ID                  int64     `json:"id"`
	Nombre              string    `json:"nombre"`
	CategoriaID         int64     `json:"categoria_id"`
	CategoriaNombre     string    `json:"categoria_nombre"`
	EdadMinima          int       `json:"edad_minima"`
	EdadMaxima          int       `json:"edad_maxima"`
	ColorUniforme       string    `json:"color_uniforme,omitempty"`
	EntrenadorPrincipal string    `json:"entrenador_principal,omitempty"`
	EntrenadorAsistente string    `json:"entrenador_asistente,omitempty"`
	TelefonoContacto    string    `json:"telefono_contacto,omitempty"`
	EmailContacto       string    `json:"email_contacto,omitempty"`
	Activo              bool      `json:"activo"`
	FechaCreacion       time.Time `json:"fecha_creacion"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
