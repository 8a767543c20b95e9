package entity

import "time"

// Posicion representa una posición de juego (tabla posiciones). Solo lectura.
type Posicion struct {
	ID            int64
	Nombre        string
	Codigo        string
	Descripcion   string
	EsObligatoria bool
	OrdenCampo    int
	Activa        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
