package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ligaspequenas/liga-api/internal/domain/entity"
	"github.com/ligaspequenas/liga-api/internal/domain/repository"
)

var _ repository.RolRepository = (*RolRepo)(nil)
var _ repository.UsuarioRolRepository = (*UsuarioRolRepo)(nil)

// RolRepo implementación del puerto RolRepository sobre PostgreSQL.
type RolRepo struct {
	pool *pgxpool.Pool
}

// NewRolRepository construye el adaptador de persistencia para roles.
func NewRolRepository(pool *pgxpool.Pool) *RolRepo {
	return &RolRepo{pool: pool}
}

// ListActivos devuelve los roles activos ordenados por nivel_permisos.
func (r *RolRepo) ListActivos() ([]*entity.RolUsuario, error) {
	query := `
		SELECT id, nombre, descripcion, nivel_permisos, activo, created_at, updated_at
		FROM roles_usuario WHERE activo ORDER BY nivel_permisos`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	var list []*entity.RolUsuario
	for rows.Next() {
		var rol entity.RolUsuario
		if err := rows.Scan(&rol.ID, &rol.Nombre, &rol.Descripcion, &rol.NivelPermisos, &rol.Activo, &rol.CreatedAt, &rol.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan rol: %w", err)
		}
		list = append(list, &rol)
	}
	return list, rows.Err()
}

// GetByNombre obtiene un rol por nombre de despliegue exacto. nil si no existe.
func (r *RolRepo) GetByNombre(nombre string) (*entity.RolUsuario, error) {
	query := `
		SELECT id, nombre, descripcion, nivel_permisos, activo, created_at, updated_at
		FROM roles_usuario WHERE nombre = $1`
	var rol entity.RolUsuario
	err := r.pool.QueryRow(context.Background(), query, nombre).Scan(
		&rol.ID, &rol.Nombre, &rol.Descripcion, &rol.NivelPermisos, &rol.Activo, &rol.CreatedAt, &rol.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rol by nombre: %w", err)
	}
	return &rol, nil
}

// UsuarioRolRepo implementación del puerto UsuarioRolRepository sobre PostgreSQL.
type UsuarioRolRepo struct {
	pool *pgxpool.Pool
}

// NewUsuarioRolRepository construye el adaptador de persistencia para asignaciones.
func NewUsuarioRolRepository(pool *pgxpool.Pool) *UsuarioRolRepo {
	return &UsuarioRolRepo{pool: pool}
}

// Create persiste una nueva asignación de rol.
func (r *UsuarioRolRepo) Create(ur *entity.UsuarioRol) error {
	query := `
		INSERT INTO usuario_roles (usuario_id, rol_id, categoria_id, equipo_interno_id, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		ur.UsuarioID, ur.RolID, ur.CategoriaID, ur.EquipoInternoID, ur.Activo,
	).Scan(&ur.ID)
	if err != nil {
		return fmt.Errorf("insert usuario_rol: %w", err)
	}
	return nil
}

// ListActivosByUsuario devuelve las asignaciones activas de un usuario.
func (r *UsuarioRolRepo) ListActivosByUsuario(usuarioID string) ([]*entity.UsuarioRol, error) {
	query := `
		SELECT id, usuario_id, rol_id, categoria_id, equipo_interno_id, activo, created_at, updated_at
		FROM usuario_roles WHERE usuario_id = $1 AND activo`
	rows, err := r.pool.Query(context.Background(), query, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("list usuario_roles: %w", err)
	}
	defer rows.Close()

	var list []*entity.UsuarioRol
	for rows.Next() {
		var ur entity.UsuarioRol
		if err := rows.Scan(&ur.ID, &ur.UsuarioID, &ur.RolID, &ur.CategoriaID, &ur.EquipoInternoID, &ur.Activo, &ur.CreatedAt, &ur.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan usuario_rol: %w", err)
		}
		list = append(list, &ur)
	}
	return list, rows.Err()
}

// DesactivarByUsuario marca inactivas TODAS las asignaciones del usuario.
// Las asignaciones se desactivan, nunca se eliminan.
func (r *UsuarioRolRepo) DesactivarByUsuario(usuarioID string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE usuario_roles SET activo = false, updated_at = now() WHERE usuario_id = $1`, usuarioID)
	if err != nil {
		return fmt.Errorf("desactivar usuario_roles: %w", err)
	}
	return nil
}
