package entity

import "time"

// Jugador representa un jugador registrado en la liga (tabla jugadores).
// Edad se calcula en el SELECT a partir de fecha_nacimiento.
type Jugador struct {
	ID                 int64
	Nombre             string
	ApellidoPaterno    string
	ApellidoMaterno    string // opcional
	FechaNacimiento    time.Time
	Edad               int
	NumeroPlayera      int
	EquipoInternoID    int64
	CategoriaID        int64
	NombrePadreTutor   string
	NombreMadreTutora  string
	TelefonoEmergencia string
	Alergias           string
	Medicamentos       string
	CondicionesMedicas string
	FotografiaURL      string
	Activo             bool // soft delete
	FechaRegistro      time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Campos de lectura poblados por joins.
	EquipoNombre    string
	ColorUniforme   string
	CategoriaNombre string
}
