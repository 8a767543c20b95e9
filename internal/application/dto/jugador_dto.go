package dto

import "time"

// CreateJugadorRequest entrada para registrar un jugador.
type CreateJugadorRequest struct {
	Nombre             string `json:"nombre" validate:"required"`
	ApellidoPaterno    string `json:"apellido_paterno" validate:"required"`
	ApellidoMaterno    string `json:"apellido_materno"`
	FechaNacimiento    string `json:"fecha_nacimiento" validate:"required"` // YYYY-MM-DD
	NumeroPlayera      int    `json:"numero_playera" validate:"required"`
	EquipoInternoID    int64  `json:"equipo_interno_id" validate:"required"`
	CategoriaID        int64  `json:"categoria_id" validate:"required"`
	NombrePadreTutor   string `json:"nombre_padre_tutor"`
	NombreMadreTutora  string `json:"nombre_madre_tutora"`
	TelefonoEmergencia string `json:"telefono_emergencia"`
	Alergias           string `json:"alergias"`
	Medicamentos       string `json:"medicamentos"`
	CondicionesMedicas string `json:"condiciones_medicas"`
	FotografiaURL      string `json:"fotografia_url"`
}

// UpdateJugadorRequest entrada para actualizar un jugador.
type UpdateJugadorRequest = CreateJugadorRequest

// JugadorResponse salida de un jugador con su equipo y categoría.
type JugadorResponse struct {
	ID                 int64     `json:"id"`
	Nombre             string    `json:"nombre"`
	ApellidoPaterno    string    `json:"apellido_paterno"`
	ApellidoMaterno    string    `json:"apellido_materno,omitempty"`
	FechaNacimiento    string    `json:"fecha_nacimiento"`
	Edad               int       `json:"edad"`
	NumeroPlayera      int       `json:"numero_playera"`
	EquipoInternoID    int64     `json:"equipo_interno_id"`
	EquipoNombre       string    `json:"equipo_nombre"`
	ColorUniforme      string    `json:"color_uniforme,omitempty"`
	CategoriaID        int64     `json:"categoria_id"`
	CategoriaNombre    string    `json:"categoria_nombre"`
	NombrePadreTutor   string    `json:"nombre_padre_tutor,omitempty"`
	NombreMadreTutora  string    `json:"nombre_madre_tutora,omitempty"`
	TelefonoEmergencia string    `json:"telefono_emergencia,omitempty"`
	Alergias           string    `json:"alergias,omitempty"`
	Medicamentos       string    `json:"medicamentos,omitempty"`
	CondicionesMedicas string    `json:"condiciones_medicas,omitempty"`
	FotografiaURL      string    `json:"fotografia_url,omitempty"`
	Activo             bool      `json:"activo"`
	FechaRegistro      time.Time `json:"fecha_registro"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
