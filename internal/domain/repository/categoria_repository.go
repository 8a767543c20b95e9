package repository

import "github.com/ligaspequenas/liga-api/internal/domain/entity"

// CategoriaRepository define el puerto de persistencia para Categoria.
type CategoriaRepository interface {
	Create(c *entity.Categoria) error
	GetByID(id int64) (*entity.Categoria, error)
	// ListActivas devuelve las categorías activas ordenadas por edad_minima.
	ListActivas() ([]*entity.Categoria, error)
	Update(c *entity.Categoria) error
	// Desactivar marca activa=false (soft delete).
	Desactivar(id int64) error
}
