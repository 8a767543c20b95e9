package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ligaspequenas/liga-api/internal/domain/entity"
	"github.com/ligaspequenas/liga-api/internal/domain/repository"
)

var _ repository.EquipoRepository = (*EquipoRepo)(nil)

// EquipoRepo implementación del puerto EquipoRepository sobre PostgreSQL.
type EquipoRepo struct {
	pool *pgxpool.Pool
}

// NewEquipoRepository construye el adaptador de persistencia para equipos.
func NewEquipoRepository(pool *pgxpool.Pool) *EquipoRepo {
	return &EquipoRepo{pool: pool}
}

const equipoSelect = `
	SELECT e.id, e.nombre, e.categoria_id, e.color_uniforme, e.entrenador_principal,
	       e.entrenador_asistente, e.telefono_contacto, e.email_contacto,
	       e.activo, e.fecha_creacion, e.created_at, e.updated_at,
	       c.nombre, c.edad_minima, c.edad_maxima
	FROM equipos_internos e
	JOIN categorias c ON c.id = e.categoria_id`

func scanEquipo(row interface{ Scan(...any) error }) (*entity.EquipoInterno, error) {
	var e entity.EquipoInterno
	err := row.Scan(
		&e.ID, &e.Nombre, &e.CategoriaID, &e.ColorUniforme, &e.EntrenadorPrincipal,
		&e.EntrenadorAsistente, &e.TelefonoContacto, &e.EmailContacto,
		&e.Activo, &e.FechaCreacion, &e.CreatedAt, &e.UpdatedAt,
		&e.CategoriaNombre, &e.EdadMinima, &e.EdadMaxima,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create persiste un nuevo equipo.
func (r *EquipoRepo) Create(e *entity.EquipoInterno) error {
	query := `
		INSERT INTO equipos_internos (nombre, categoria_id, color_uniforme, entrenador_principal, entrenador_asistente, telefono_contacto, email_contacto, activo, fecha_creacion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now(), now())
		RETURNING id, fecha_creacion, created_at, updated_at`
	err := r.pool.QueryRow(context.Background(), query,
		e.Nombre, e.CategoriaID, e.ColorUniforme, e.EntrenadorPrincipal,
		e.EntrenadorAsistente, e.TelefonoContacto, e.EmailContacto, e.Activo,
	).Scan(&e.ID, &e.FechaCreacion, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert equipo: %w", err)
	}
	return nil
}

// GetByID obtiene un equipo con su categoría. nil si no existe.
func (r *EquipoRepo) GetByID(id int64) (*entity.EquipoInterno, error) {
	row := r.pool.QueryRow(context.Background(), equipoSelect+` WHERE e.id = $1`, id)
	e, err := scanEquipo(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipo: %w", err)
	}
	return e, nil
}

// ListActivos devuelve los equipos activos con su categoría, por nombre.
func (r *EquipoRepo) ListActivos() ([]*entity.EquipoInterno, error) {
	return r.list(equipoSelect + ` WHERE e.activo ORDER BY e.nombre`)
}

// ListByCategoria devuelve los equipos activos de una categoría.
func (r *EquipoRepo) ListByCategoria(categoriaID int64) ([]*entity.EquipoInterno, error) {
	return r.list(equipoSelect+` WHERE e.activo AND e.categoria_id = $1 ORDER BY e.nombre`, categoriaID)
}

func (r *EquipoRepo) list(query string, args ...any) ([]*entity.EquipoInterno, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list equipos: %w", err)
	}
	defer rows.Close()

	var list []*entity.EquipoInterno
	for rows.Next() {
		e, err := scanEquipo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan equipo: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Update actualiza un equipo existente.
func (r *EquipoRepo) Update(e *entity.EquipoInterno) error {
	query := `
		UPDATE equipos_internos SET nombre = $2, categoria_id = $3, color_uniforme = $4, entrenador_principal = $5, entrenador_asistente = $6, telefono_contacto = $7, email_contacto = $8, updated_at = now()
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		e.ID, e.Nombre, e.CategoriaID, e.ColorUniforme, e.EntrenadorPrincipal,
		e.EntrenadorAsistente, e.TelefonoContacto, e.EmailContacto,
	)
	if err != nil {
		return fmt.Errorf("update equipo: %w", err)
	}
	return nil
}

// Desactivar marca el equipo como inactivo (soft delete).
func (r *EquipoRepo) Desactivar(id int64) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE equipos_internos SET activo = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("desactivar equipo: %w", err)
	}
	return nil
}
