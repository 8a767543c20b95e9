package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ligaspequenas/liga-api/internal/domain/entity"
	"github.com/ligaspequenas/liga-api/internal/domain/repository"
)

var _ repository.PosicionRepository = (*PosicionRepo)(nil)

// PosicionRepo implementación del puerto PosicionRepository sobre PostgreSQL.
type PosicionRepo struct {
	pool *pgxpool.Pool
}

// NewPosicionRepository construye el adaptador de lectura para posiciones.
func NewPosicionRepository(pool *pgxpool.Pool) *PosicionRepo {
	return &PosicionRepo{pool: pool}
}

// ListActivas devuelve las posiciones activas ordenadas por orden de campo.
func (r *PosicionRepo) ListActivas() ([]*entity.Posicion, error) {
	return r.list(`WHERE activa ORDER BY orden_campo`)
}

// ListObligatorias devuelve las posiciones activas obligatorias.
func (r *PosicionRepo) ListObligatorias() ([]*entity.Posicion, error) {
	return r.list(`WHERE activa AND es_obligatoria ORDER BY orden_campo`)
}

func (r *PosicionRepo) list(where string) ([]*entity.Posicion, error) {
	query := `
		SELECT id, nombre, codigo, descripcion, es_obligatoria, orden_campo, activa, created_at, updated_at
		FROM posiciones ` + where
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list posiciones: %w", err)
	}
	defer rows.Close()

	var list []*entity.Posicion
	for rows.Next() {
		var p entity.Posicion
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Codigo, &p.Descripcion, &p.EsObligatoria, &p.OrdenCampo, &p.Activa, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan posicion: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
