package usecase

import (
	"context"

	"github.com/ligaspequenas/liga-api/internal/application/dto"
	"github.com/ligaspequenas/liga-api/internal/domain/entity"
	"github.com/ligaspequenas/liga-api/internal/domain/repository"
)

// PosicionUseCase lectura del catálogo de posiciones de juego.
type PosicionUseCase struct {
	repo repository.PosicionRepository
}

// NewPosicionUseCase construye el caso de uso.
func NewPosicionUseCase(repo repository.PosicionRepository) *PosicionUseCase {
	return &PosicionUseCase{repo: repo}
}

// Listar devuelve las posiciones activas en orden de campo. Con soloObligatorias
// limita a las nueve posiciones titulares.
func (uc *PosicionUseCase) Listar(ctx context.Context, soloObligatorias bool) ([]*dto.PosicionResponse, error) {
	var (
		posiciones []*entity.Posicion
		err        error
	)
	if soloObligatorias {
		posiciones, err = uc.repo.ListObligatorias()
	} else {
		posiciones, err = uc.repo.ListActivas()
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PosicionResponse, 0, len(posiciones))
	for _, p := range posiciones {
		out = append(out, &dto.PosicionResponse{
			ID:            p.ID,
			Nombre:        p.Nombre,
			Codigo:        p.Codigo,
			Descripcion:   p.Descripcion,
			EsObligatoria: p.EsObligatoria,
			OrdenCampo:    p.OrdenCampo,
		})
	}
	return out, nil
}
