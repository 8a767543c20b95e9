package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ligaspequenas/liga-api/internal/domain/entity"
	"github.com/ligaspequenas/liga-api/internal/domain/repository"
)

var _ repository.JugadorRepository = (*JugadorRepo)(nil)

// JugadorRepo implementación del puerto JugadorRepository sobre PostgreSQL.
// La edad se calcula en el SELECT a partir de fecha_nacimiento.
type JugadorRepo struct {
	pool *pgxpool.Pool
}

// NewJugadorRepository construye el adaptador de persistencia para jugadores.
func NewJugadorRepository(pool *pgxpool.Pool) *JugadorRepo {
	return &JugadorRepo{pool: pool}
}

const jugadorSelect = `
	SELECT j.id, j.nombre, j.apellido_paterno, j.apellido_materno, j.fecha_nacimiento,
	       date_part('year', age(j.fecha_nacimiento))::int AS edad,
	       j.numero_playera, j.equipo_interno_id, j.categoria_id,
	       j.nombre_padre_tutor, j.nombre_madre_tutora, j.telefono_emergencia,
	       j.alergias, j.medicamentos, j.condiciones_medicas, j.fotografia_url,
	       j.activo, j.fecha_registro, j.created_at, j.updated_at,
	       e.nombre, e.color_uniforme, c.nombre
	FROM jugadores j
	JOIN equipos_internos e ON e.id = j.equipo_interno_id
	JOIN categorias c ON c.id = j.categoria_id`

func scanJugador(row interface{ Scan(...any) error }) (*entity.Jugador, error) {
	var j entity.Jugador
	err := row.Scan(
		&j.ID, &j.Nombre, &j.ApellidoPaterno, &j.ApellidoMaterno, &j.FechaNacimiento,
		&j.Edad, &j.NumeroPlayera, &j.EquipoInternoID, &j.CategoriaID,
		&j.NombrePadreTutor, &j.NombreMadreTutora, &j.TelefonoEmergencia,
		&j.Alergias, &j.Medicamentos, &j.CondicionesMedicas, &j.FotografiaURL,
		&j.Activo, &j.FechaRegistro, &j.CreatedAt, &j.UpdatedAt,
		&j.EquipoNombre, &j.ColorUniforme, &j.CategoriaNombre,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// Create persiste un nuevo jugador y devuelve la fila completa (con edad).
func (r *JugadorRepo) Create(j *entity.Jugador) (*entity.Jugador, error) {
	query := `
		INSERT INTO jugadores (nombre, apellido_paterno, apellido_materno, fecha_nacimiento, numero_playera, equipo_interno_id, categoria_id, nombre_padre_tutor, nombre_madre_tutora, telefono_emergencia, alergias, medicamentos, condiciones_medicas, fotografia_url, activo, fecha_registro, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, now(), now(), now())
		RETURNING id`
	var id int64
	err := r.pool.QueryRow(context.Background(), query,
		j.Nombre, j.ApellidoPaterno, j.ApellidoMaterno, j.FechaNacimiento, j.NumeroPlayera,
		j.EquipoInternoID, j.CategoriaID, j.NombrePadreTutor, j.NombreMadreTutora,
		j.TelefonoEmergencia, j.Alergias, j.Medicamentos, j.CondicionesMedicas,
		j.FotografiaURL, j.Activo,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert jugador: %w", err)
	}
	return r.GetByID(id)
}

// GetByID obtiene un jugador con equipo y categoría. nil si no existe.
func (r *JugadorRepo) GetByID(id int64) (*entity.Jugador, error) {
	row := r.pool.QueryRow(context.Background(), jugadorSelect+` WHERE j.id = $1`, id)
	j, err := scanJugador(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get jugador: %w", err)
	}
	return j, nil
}

// ListActivos devuelve los jugadores activos ordenados por apellido paterno.
func (r *JugadorRepo) ListActivos() ([]*entity.Jugador, error) {
	return r.list(jugadorSelect + ` WHERE j.activo ORDER BY j.apellido_paterno`)
}

// ListByEquipo devuelve los jugadores activos de un equipo.
func (r *JugadorRepo) ListByEquipo(equipoID int64) ([]*entity.Jugador, error) {
	return r.list(jugadorSelect+` WHERE j.activo AND j.equipo_interno_id = $1 ORDER BY j.numero_playera`, equipoID)
}

// ListByCategoria devuelve los jugadores activos de una categoría.
func (r *JugadorRepo) ListByCategoria(categoriaID int64) ([]*entity.Jugador, error) {
	return r.list(jugadorSelect+` WHERE j.activo AND j.categoria_id = $1 ORDER BY j.apellido_paterno`, categoriaID)
}

func (r *JugadorRepo) list(query string, args ...any) ([]*entity.Jugador, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list jugadores: %w", err)
	}
	defer rows.Close()

	var list []*entity.Jugador
	for rows.Next() {
		j, err := scanJugador(rows)
		if err != nil {
			return nil, fmt.Errorf("scan jugador: %w", err)
		}
		list = append(list, j)
	}
	return list, rows.Err()
}

// Update actualiza un jugador existente.
func (r *JugadorRepo) Update(j *entity.Jugador) error {
	query := `
		UPDATE jugadores SET nombre = $2, apellido_paterno = $3, apellido_materno = $4, fecha_nacimiento = $5, numero_playera = $6, equipo_interno_id = $7, categoria_id = $8, nombre_padre_tutor = $9, nombre_madre_tutora = $10, telefono_emergencia = $11, alergias = $12, medicamentos = $13, condiciones_medicas = $14, fotografia_url = $15, updated_at = now()
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		j.ID, j.Nombre, j.ApellidoPaterno, j.ApellidoMaterno, j.FechaNacimiento,
		j.NumeroPlayera, j.EquipoInternoID, j.CategoriaID, j.NombrePadreTutor,
		j.NombreMadreTutora, j.TelefonoEmergencia, j.Alergias, j.Medicamentos,
		j.CondicionesMedicas, j.FotografiaURL,
	)
	if err != nil {
		return fmt.Errorf("update jugador: %w", err)
	}
	return nil
}

// Desactivar marca el jugador como inactivo (soft delete).
func (r *JugadorRepo) Desactivar(id int64) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE jugadores SET activo = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("desactivar jugador: %w", err)
	}
	return nil
}
