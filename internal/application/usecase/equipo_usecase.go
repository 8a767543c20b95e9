package usecase

import (
	"context"
	"time"

	"github.com/ligaspequenas/liga-api/internal/application/dto"
	"github.com/ligaspequenas/liga-api/internal/domain"
	"github.com/ligaspequenas/liga-api/internal/domain/entity"
	"github.com/ligaspequenas/liga-api/internal/domain/repository"
)

// EquipoUseCase casos de uso CRUD para equipos internos.
type EquipoUseCase struct {
	repo          repository.EquipoRepository
	categoriaRepo repository.CategoriaRepository
}

// NewEquipoUseCase construye el caso de uso.
func NewEquipoUseCase(repo repository.EquipoRepository, categoriaRepo repository.CategoriaRepository) *EquipoUseCase {
	return &EquipoUseCase{repo: repo, categoriaRepo: categoriaRepo}
}

// Crear crea un equipo interno dentro de una categoría existente.
func (uc *EquipoUseCase) Crear(ctx context.Context, in dto.CreateEquipoRequest) (*dto.EquipoResponse, error) {
	categoria, err := uc.categoriaRepo.GetByID(in.CategoriaID)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	e := &entity.EquipoInterno{
		Nombre:              in.Nombre,
		CategoriaID:         in.CategoriaID,
		ColorUniforme:       in.ColorUniforme,
		EntrenadorPrincipal: in.EntrenadorPrincipal,
		EntrenadorAsistente: in.EntrenadorAsistente,
		TelefonoContacto:    in.TelefonoContacto,
		EmailContacto:       in.EmailContacto,
		Activo:              true,
		FechaCreacion:       now,
		CreatedAt:           now,
		UpdatedAt:           now,
		CategoriaNombre:     categoria.Nombre,
		EdadMinima:          categoria.EdadMinima,
		EdadMaxima:          categoria.EdadMaxima,
	}
	if err := uc.repo.Create(e); err != nil {
		return nil, err
	}
	return toEquipoResponse(e), nil
}

// GetByID obtiene un equipo con su categoría.
func (uc *EquipoUseCase) GetByID(ctx context.Context, id int64) (*dto.EquipoResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return toEquipoResponse(e), nil
}

// Listar devuelve los equipos activos. Con categoriaID > 0 filtra por categoría.
func (uc *EquipoUseCase) Listar(ctx context.Context, categoriaID int64) ([]*dto.EquipoResponse, error) {
	var (
		equipos []*entity.EquipoInterno
		err     error
	)
	if categoriaID > 0 {
		equipos, err = uc.repo.ListByCategoria(categoriaID)
	} else {
		equipos, err = uc.repo.ListActivos()
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EquipoResponse, 0, len(equipos))
	for _, e := range equipos {
		out = append(out, toEquipoResponse(e))
	}
	return out, nil
}

// Actualizar modifica un equipo existente.
func (uc *EquipoUseCase) Actualizar(ctx context.Context, id int64, in dto.UpdateEquipoRequest) (*dto.EquipoResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if in.CategoriaID != e.CategoriaID {
		categoria, err := uc.categoriaRepo.GetByID(in.CategoriaID)
		if err != nil {
			return nil, err
		}
		if categoria == nil {
			return nil, domain.ErrInvalidInput
		}
		e.CategoriaID = in.CategoriaID
		e.CategoriaNombre = categoria.Nombre
		e.EdadMinima = categoria.EdadMinima
		e.EdadMaxima = categoria.EdadMaxima
	}
	e.Nombre = in.Nombre
	e.ColorUniforme = in.ColorUniforme
	e.EntrenadorPrincipal = in.EntrenadorPrincipal
	e.EntrenadorAsistente = in.EntrenadorAsistente
	e.TelefonoContacto = in.TelefonoContacto
	e.EmailContacto = in.EmailContacto
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(e); err != nil {
		return nil, err
	}
	return toEquipoResponse(e), nil
}

// Desactivar marca el equipo inactivo (soft delete); la fila se conserva.
func (uc *EquipoUseCase) Desactivar(ctx context.Context, id int64) error {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Desactivar(id)
}

func toEquipoResponse(e *entity.EquipoInterno) *dto.EquipoResponse {
	return &dto.EquipoResponse{
		ID:                  e.ID,
		Nombre:              e.Nombre,
		CategoriaID:         e.CategoriaID,
		CategoriaNombre:     e.CategoriaNombre,
		EdadMinima:          e.EdadMinima,
		EdadMaxima:          e.EdadMaxima,
		ColorUniforme:       e.ColorUniforme,
		EntrenadorPrincipal: e.EntrenadorPrincipal,
		EntrenadorAsistente: e.EntrenadorAsistente,
		TelefonoContacto:    e.TelefonoContacto,
		EmailContacto:       e.EmailContacto,
		Activo:              e.Activo,
		FechaCreacion:       e.FechaCreacion,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}
