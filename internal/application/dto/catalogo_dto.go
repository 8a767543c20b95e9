package dto

// RolResponse salida de un rol disponible para asignación.
type RolResponse struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
}

// PosicionResponse salida de una posición de juego.
type PosicionResponse struct {
	ID            int64  `json:"id"`
	Nombre        string `json:"nombre"`
	Codigo        string `json:"codigo"`
	Descripcion   string `json:"descripcion,omitempty"`
	EsObligatoria bool   `json:"es_obligatoria"`
	OrdenCampo    int    `json:"orden_campo"`
}
