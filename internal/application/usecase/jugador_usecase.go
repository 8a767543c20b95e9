package usecase

import (
	"context"
	"time"

	"github.com/ligaspequenas/liga-api/internal/application/dto"
	"github.com/ligaspequenas/liga-api/internal/domain"
	"github.com/ligaspequenas/liga-api/internal/domain/entity"
	"github.com/ligaspequenas/liga-api/internal/domain/repository"
)

const formatoFecha = "2006-01-02"

// JugadorUseCase casos de uso para jugadores: CRUD, filtros y búsqueda.
type JugadorUseCase struct {
	repo       repository.JugadorRepository
	equipoRepo repository.EquipoRepository
}

// NewJugadorUseCase construye el caso de uso.
func NewJugadorUseCase(repo repository.JugadorRepository, equipoRepo repository.EquipoRepository) *JugadorUseCase {
	return &JugadorUseCase{repo: repo, equipoRepo: equipoRepo}
}

// Crear registra un jugador. El equipo debe existir y pertenecer a la
// categoría indicada; la edad se valida contra el rango de la categoría.
func (uc *JugadorUseCase) Crear(ctx context.Context, in dto.CreateJugadorRequest) (*dto.JugadorResponse, error) {
	fechaNacimiento, err := time.Parse(formatoFecha, in.FechaNacimiento)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	equipo, err := uc.equipoRepo.GetByID(in.EquipoInternoID)
	if err != nil {
		return nil, err
	}
	if equipo == nil || equipo.CategoriaID != in.CategoriaID {
		return nil, domain.ErrInvalidInput
	}
	j := &entity.Jugador{
		Nombre:             in.Nombre,
		ApellidoPaterno:    in.ApellidoPaterno,
		ApellidoMaterno:    in.ApellidoMaterno,
		FechaNacimiento:    fechaNacimiento,
		NumeroPlayera:      in.NumeroPlayera,
		EquipoInternoID:    in.EquipoInternoID,
		CategoriaID:        in.CategoriaID,
		NombrePadreTutor:   in.NombrePadreTutor,
		NombreMadreTutora:  in.NombreMadreTutora,
		TelefonoEmergencia: in.TelefonoEmergencia,
		Alergias:           in.Alergias,
		Medicamentos:       in.Medicamentos,
		CondicionesMedicas: in.CondicionesMedicas,
		FotografiaURL:      in.FotografiaURL,
		Activo:             true,
	}
	creado, err := uc.repo.Create(j)
	if err != nil {
		return nil, err
	}
	return toJugadorResponse(creado), nil
}

// GetByID obtiene un jugador con su equipo y categoría.
func (uc *JugadorUseCase) GetByID(ctx context.Context, id int64) (*dto.JugadorResponse, error) {
	j, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, domain.ErrNotFound
	}
	return toJugadorResponse(j), nil
}

// Listar devuelve jugadores activos. equipoID y categoriaID > 0 filtran;
// equipoID tiene precedencia.
func (uc *JugadorUseCase) Listar(ctx context.Context, equipoID, categoriaID int64) ([]*dto.JugadorResponse, error) {
	var (
		jugadores []*entity.Jugador
		err       error
	)
	switch {
	case equipoID > 0:
		jugadores, err = uc.repo.ListByEquipo(equipoID)
	case categoriaID > 0:
		jugadores, err = uc.repo.ListByCategoria(categoriaID)
	default:
		jugadores, err = uc.repo.ListActivos()
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.JugadorResponse, 0, len(jugadores))
	for _, j := range jugadores {
		out = append(out, toJugadorResponse(j))
	}
	return out, nil
}

// Buscar filtra los jugadores activos por nombre o apellidos, ignorando
// mayúsculas y acentos ("garcia" encuentra a "García").
func (uc *JugadorUseCase) Buscar(ctx context.Context, termino string) ([]*dto.JugadorResponse, error) {
	jugadores, err := uc.repo.ListActivos()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.JugadorResponse, 0)
	for _, j := range jugadores {
		if coincide(termino, j.Nombre, j.ApellidoPaterno, j.ApellidoMaterno) {
			out = append(out, toJugadorResponse(j))
		}
	}
	return out, nil
}

// Actualizar modifica un jugador existente.
func (uc *JugadorUseCase) Actualizar(ctx context.Context, id int64, in dto.UpdateJugadorRequest) (*dto.JugadorResponse, error) {
	j, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, domain.ErrNotFound
	}
	fechaNacimiento, err := time.Parse(formatoFecha, in.FechaNacimiento)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.EquipoInternoID != j.EquipoInternoID || in.CategoriaID != j.CategoriaID {
		equipo, err := uc.equipoRepo.GetByID(in.EquipoInternoID)
		if err != nil {
			return nil, err
		}
		if equipo == nil || equipo.CategoriaID != in.CategoriaID {
			return nil, domain.ErrInvalidInput
		}
	}
	j.Nombre = in.Nombre
	j.ApellidoPaterno = in.ApellidoPaterno
	j.ApellidoMaterno = in.ApellidoMaterno
	j.FechaNacimiento = fechaNacimiento
	j.NumeroPlayera = in.NumeroPlayera
	j.EquipoInternoID = in.EquipoInternoID
	j.CategoriaID = in.CategoriaID
	j.NombrePadreTutor = in.NombrePadreTutor
	j.NombreMadreTutora = in.NombreMadreTutora
	j.TelefonoEmergencia = in.TelefonoEmergencia
	j.Alergias = in.Alergias
	j.Medicamentos = in.Medicamentos
	j.CondicionesMedicas = in.CondicionesMedicas
	j.FotografiaURL = in.FotografiaURL
	j.UpdatedAt = time.Now()
	if err := uc.repo.Update(j); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Desactivar marca el jugador inactivo (soft delete); la fila se conserva.
func (uc *JugadorUseCase) Desactivar(ctx context.Context, id int64) error {
	j, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if j == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Desactivar(id)
}

func toJugadorResponse(j *entity.Jugador) *dto.JugadorResponse {
	return &dto.JugadorResponse{
		ID:                 j.ID,
		Nombre:             j.Nombre,
		ApellidoPaterno:    j.ApellidoPaterno,
		ApellidoMaterno:    j.ApellidoMaterno,
		FechaNacimiento:    j.FechaNacimiento.Format(formatoFecha),
		Edad:               j.Edad,
		NumeroPlayera:      j.NumeroPlayera,
		EquipoInternoID:    j.EquipoInternoID,
		EquipoNombre:       j.EquipoNombre,
		ColorUniforme:      j.ColorUniforme,
		CategoriaID:        j.CategoriaID,
		CategoriaNombre:    j.CategoriaNombre,
		NombrePadreTutor:   j.NombrePadreTutor,
		NombreMadreTutora:  j.NombreMadreTutora,
		TelefonoEmergencia: j.TelefonoEmergencia,
		Alergias:           j.Alergias,
		Medicamentos:       j.Medicamentos,
		CondicionesMedicas: j.CondicionesMedicas,
		FotografiaURL:      j.FotografiaURL,
		Activo:             j.Activo,
		FechaRegistro:      j.FechaRegistro,
		CreatedAt:          j.CreatedAt,
		UpdatedAt:          j.UpdatedAt,
	}
}
