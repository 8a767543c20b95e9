package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ligaspequenas/liga-api/internal/domain/entity"
	"github.com/ligaspequenas/liga-api/internal/domain/repository"
)

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementación del puerto CategoriaRepository sobre PostgreSQL.
type CategoriaRepo struct {
	pool *pgxpool.Pool
}

// NewCategoriaRepository construye el adaptador de persistencia para categorías.
func NewCategoriaRepository(pool *pgxpool.Pool) *CategoriaRepo {
	return &CategoriaRepo{pool: pool}
}

// Create persiste una nueva categoría.
func (r *CategoriaRepo) Create(c *entity.Categoria) error {
	query := `
		INSERT INTO categorias (nombre, edad_minima, edad_maxima, descripcion, activa, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(context.Background(), query,
		c.Nombre, c.EdadMinima, c.EdadMaxima, c.Descripcion, c.Activa,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID. nil si no existe.
func (r *CategoriaRepo) GetByID(id int64) (*entity.Categoria, error) {
	query := `
		SELECT id, nombre, edad_minima, edad_maxima, descripcion, activa, created_at, updated_at
		FROM categorias WHERE id = $1`
	var c entity.Categoria
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Nombre, &c.EdadMinima, &c.EdadMaxima, &c.Descripcion, &c.Activa, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

// ListActivas devuelve las categorías activas ordenadas por edad mínima.
func (r *CategoriaRepo) ListActivas() ([]*entity.Categoria, error) {
	query := `
		SELECT id, nombre, edad_minima, edad_maxima, descripcion, activa, created_at, updated_at
		FROM categorias WHERE activa ORDER BY edad_minima`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()

	var list []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.Nombre, &c.EdadMinima, &c.EdadMaxima, &c.Descripcion, &c.Activa, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una categoría existente.
func (r *CategoriaRepo) Update(c *entity.Categoria) error {
	query := `
		UPDATE categorias SET nombre = $2, edad_minima = $3, edad_maxima = $4, descripcion = $5, updated_at = now()
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		c.ID, c.Nombre, c.EdadMinima, c.EdadMaxima, c.Descripcion,
	)
	if err != nil {
		return fmt.Errorf("update categoria: %w", err)
	}
	return nil
}

// Desactivar marca la categoría como inactiva (soft delete).
func (r *CategoriaRepo) Desactivar(id int64) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE categorias SET activa = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("desactivar categoria: %w", err)
	}
	return nil
}
