package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ligaspequenas/liga-api/internal/domain/entity"
	"github.com/ligaspequenas/liga-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepo {
	return &UsuarioRepo{pool: pool}
}

// Create persiste una nueva ficha de usuario.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, email, nombre, apellido_paterno, apellido_materno, telefono, activo, email_verificado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		u.ID, u.Email, u.Nombre, u.ApellidoPaterno, u.ApellidoMaterno, u.Telefono,
		u.Activo, u.EmailVerificado, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert usuario %s: email duplicado: %w", u.ID, err)
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene una ficha por ID. nil si no existe.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	query := `
		SELECT id, email, nombre, apellido_paterno, apellido_materno, telefono, activo, email_verificado, ultimo_acceso, created_at, updated_at
		FROM usuarios WHERE id = $1`
	var u entity.Usuario
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.Email, &u.Nombre, &u.ApellidoPaterno, &u.ApellidoMaterno, &u.Telefono,
		&u.Activo, &u.EmailVerificado, &u.UltimoAcceso, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by id: %w", err)
	}
	return &u, nil
}

// GetByEmail obtiene una ficha por email. nil si no existe.
func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	query := `
		SELECT id, email, nombre, apellido_paterno, apellido_materno, telefono, activo, email_verificado, ultimo_acceso, created_at, updated_at
		FROM usuarios WHERE email = $1 LIMIT 1`
	var u entity.Usuario
	err := r.pool.QueryRow(context.Background(), query, email).Scan(
		&u.ID, &u.Email, &u.Nombre, &u.ApellidoPaterno, &u.ApellidoMaterno, &u.Telefono,
		&u.Activo, &u.EmailVerificado, &u.UltimoAcceso, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by email: %w", err)
	}
	return &u, nil
}

// UpdateCampos actualiza los campos de ficha (no toca activo ni roles).
func (r *UsuarioRepo) UpdateCampos(u *entity.Usuario) error {
	query := `
		UPDATE usuarios SET email = $2, nombre = $3, apellido_paterno = $4, apellido_materno = $5, telefono = $6, updated_at = now()
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		u.ID, u.Email, u.Nombre, u.ApellidoPaterno, u.ApellidoMaterno, u.Telefono,
	)
	if err != nil {
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// ListActivosConRol devuelve los usuarios activos con su primera asignación de
// rol activa desnormalizada (rol, categoría y equipo). Un usuario sin
// asignación activa aparece con rol "Sin rol".
func (r *UsuarioRepo) ListActivosConRol() ([]*entity.UsuarioConRol, error) {
	query := `
		SELECT u.id, u.email, u.nombre, u.apellido_paterno, u.apellido_materno, u.telefono,
		       u.activo, u.email_verificado, u.ultimo_acceso, u.created_at, u.updated_at,
		       COALESCE(rol.nombre, 'Sin rol'), COALESCE(cat.nombre, ''), COALESCE(eq.nombre, '')
		FROM usuarios u
		LEFT JOIN LATERAL (
			SELECT ur.rol_id, ur.categoria_id, ur.equipo_interno_id
			FROM usuario_roles ur
			WHERE ur.usuario_id = u.id AND ur.activo
			ORDER BY ur.id
			LIMIT 1
		) asign ON true
		LEFT JOIN roles_usuario rol ON rol.id = asign.rol_id
		LEFT JOIN categorias cat ON cat.id = asign.categoria_id
		LEFT JOIN equipos_internos eq ON eq.id = asign.equipo_interno_id
		WHERE u.activo`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()

	var list []*entity.UsuarioConRol
	for rows.Next() {
		var u entity.UsuarioConRol
		if err := rows.Scan(
			&u.ID, &u.Email, &u.Nombre, &u.ApellidoPaterno, &u.ApellidoMaterno, &u.Telefono,
			&u.Activo, &u.EmailVerificado, &u.UltimoAcceso, &u.CreatedAt, &u.UpdatedAt,
			&u.Rol, &u.CategoriaNombre, &u.EquipoNombre,
		); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Desactivar marca la ficha como inactiva (soft delete). No toca usuario_roles.
func (r *UsuarioRepo) Desactivar(id string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE usuarios SET activo = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("desactivar usuario: %w", err)
	}
	return nil
}

// RegistrarAcceso actualiza la marca de último acceso.
func (r *UsuarioRepo) RegistrarAcceso(id string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE usuarios SET ultimo_acceso = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("registrar acceso: %w", err)
	}
	return nil
}
