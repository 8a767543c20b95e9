package repository

import "github.com/ligaspequenas/liga-api/internal/domain/entity"

// JugadorRepository define el puerto de persistencia para Jugador.
type JugadorRepository interface {
	Create(j *entity.Jugador) (*entity.Jugador, error)
	GetByID(id int64) (*entity.Jugador, error)
	// ListActivos devuelve jugadores activos con equipo y categoría,
	// ordenados por apellido_paterno.
	ListActivos() ([]*entity.Jugador, error)
	ListByEquipo(equipoID int64) ([]*entity.Jugador, error)
	ListByCategoria(categoriaID int64) ([]*entity.Jugador, error)
	Update(j *entity.Jugador) error
	// Desactivar marca activo=false (soft delete).
	Desactivar(id int64) error
}

// PosicionRepository define el puerto de lectura para Posicion.
type PosicionRepository interface {
	// ListActivas devuelve posiciones activas ordenadas por orden_campo.
	ListActivas() ([]*entity.Posicion, error)
	// ListObligatorias devuelve las posiciones activas marcadas obligatorias.
	ListObligatorias() ([]*entity.Posicion, error)
}
