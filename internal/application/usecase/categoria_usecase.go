package usecase

import (
	"context"
	"time"

	"github.com/ligaspequenas/liga-api/internal/application/dto"
	"github.com/ligaspequenas/liga-api/internal/domain"
	"github.com/ligaspequenas/liga-api/internal/domain/entity"
	"github.com/ligaspequenas/liga-api/internal/domain/repository"
)

// CategoriaUseCase casos de uso CRUD para categorías de edad.
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

// Crear crea una categoría. El rango de edades debe ser coherente.
func (uc *CategoriaUseCase) Crear(ctx context.Context, in dto.CreateCategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.EdadMinima > in.EdadMaxima {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	c := &entity.Categoria{
		Nombre:      in.Nombre,
		EdadMinima:  in.EdadMinima,
		EdadMaxima:  in.EdadMaxima,
		Descripcion: in.Descripcion,
		Activa:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toCategoriaResponse(c), nil
}

// GetByID obtiene una categoría.
func (uc *CategoriaUseCase) GetByID(ctx context.Context, id int64) (*dto.CategoriaResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toCategoriaResponse(c), nil
}

// Listar devuelve las categorías activas ordenadas por edad mínima.
func (uc *CategoriaUseCase) Listar(ctx context.Context) ([]*dto.CategoriaResponse, error) {
	categorias, err := uc.repo.ListActivas()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, toCategoriaResponse(c))
	}
	return out, nil
}

// Actualizar modifica una categoría existente.
func (uc *CategoriaUseCase) Actualizar(ctx context.Context, id int64, in dto.UpdateCategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.EdadMinima > in.EdadMaxima {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	c.Nombre = in.Nombre
	c.EdadMinima = in.EdadMinima
	c.EdadMaxima = in.EdadMaxima
	c.Descripcion = in.Descripcion
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return toCategoriaResponse(c), nil
}

// Desactivar marca la categoría inactiva (soft delete); la fila se conserva.
func (uc *CategoriaUseCase) Desactivar(ctx context.Context, id int64) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Desactivar(id)
}

func toCategoriaResponse(c *entity.Categoria) *dto.CategoriaResponse {
	return &dto.CategoriaResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		EdadMinima:  c.EdadMinima,
		EdadMaxima:  c.EdadMaxima,
		Descripcion: c.Descripcion,
		Activa:      c.Activa,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
