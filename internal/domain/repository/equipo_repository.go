package repository

import "github.com/ligaspequenas/liga-api/internal/domain/entity"

// EquipoRepository define el puerto de persistencia para EquipoInterno.
type EquipoRepository interface {
	Create(e *entity.EquipoInterno) error
	GetByID(id int64) (*entity.EquipoInterno, error)
	// ListActivos devuelve los equipos activos con su categoría, ordenados por nombre.
	ListActivos() ([]*entity.EquipoInterno, error)
	// ListByCategoria devuelve los equipos activos de una categoría.
	ListByCategoria(categoriaID int64) ([]*entity.EquipoInterno, error)
	Update(e *entity.EquipoInterno) error
	// Desactivar marca activo=false (soft delete).
	Desactivar(id int64) error
}
