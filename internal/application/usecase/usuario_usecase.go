package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ligaspequenas/liga-api/internal/application/auth"
	"github.com/ligaspequenas/liga-api/internal/application/dto"
	"github.com/ligaspequenas/liga-api/internal/domain"
	"github.com/ligaspequenas/liga-api/internal/domain/entity"
	"github.com/ligaspequenas/liga-api/internal/domain/repository"
	"github.com/ligaspequenas/liga-api/pkg/logger"
)

// nombreDeRol traduce el código de rol de la API al nombre de despliegue con
// el que está sembrado en roles_usuario. El código padre_tutor mapea a
// "Padre de Familia" (el nombre sembrado), no a la etiqueta "Padre/Tutor"
// que muestran las pantallas.
var nombreDeRol = map[string]string{
	entity.RolAdminLiga:      "Administrador de Liga",
	entity.RolAdminCategoria: "Administrador de Categoría",
	entity.RolAdminEquipo:    "Administrador de Equipo",
	entity.RolPadreTutor:     "Padre de Familia",
}

// NombreDeRol devuelve el nombre de despliegue de un código de rol.
func NombreDeRol(codigo string) (string, bool) {
	nombre, ok := nombreDeRol[codigo]
	return nombre, ok
}

// MetricasAprovisionamiento registra el resultado de los aprovisionamientos.
// La implementa metrics.Collector; puede ser nil.
type MetricasAprovisionamiento interface {
	RecordUsuarioCreado()
	RecordFalloParcial(paso string)
}

// UsuarioUseCase orquesta el aprovisionamiento de usuarios: cuenta en el
// proveedor de identidad, ficha en usuarios y asignación en usuario_roles.
//
// Los pasos son escrituras independientes SIN transacción ni compensación:
// si un paso intermedio falla, los anteriores quedan aplicados (p. ej. una
// cuenta de autenticación sin ficha). El llamador debe saber que el error
// puede dejar estado parcial.
type UsuarioUseCase struct {
	gw             auth.Gateway
	usuarioRepo    repository.UsuarioRepository
	rolRepo        repository.RolRepository
	usuarioRolRepo repository.UsuarioRolRepository
	log            *logger.Logger
	metricas       MetricasAprovisionamiento
}

// NewUsuarioUseCase construye el caso de uso. metricas puede ser nil.
func NewUsuarioUseCase(gw auth.Gateway, usuarioRepo repository.UsuarioRepository, rolRepo repository.RolRepository, usuarioRolRepo repository.UsuarioRolRepository, log *logger.Logger, metricas MetricasAprovisionamiento) *UsuarioUseCase {
	return &UsuarioUseCase{
		gw:             gw,
		usuarioRepo:    usuarioRepo,
		rolRepo:        rolRepo,
		usuarioRolRepo: usuarioRolRepo,
		log:            log,
		metricas:       metricas,
	}
}

func (uc *UsuarioUseCase) falloParcial(paso string) {
	if uc.metricas != nil {
		uc.metricas.RecordFalloParcial(paso)
	}
}

// resolverRol traduce el código de rol a su fila en roles_usuario.
// Devuelve ErrRolDesconocido si el código no está en el mapa o el nombre
// no existe en la tabla.
func (uc *UsuarioUseCase) resolverRol(codigo string) (*entity.RolUsuario, error) {
	nombre, ok := nombreDeRol[codigo]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrRolDesconocido, codigo)
	}
	rol, err := uc.rolRepo.GetByNombre(nombre)
	if err != nil {
		return nil, err
	}
	if rol == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrRolDesconocido, nombre)
	}
	return rol, nil
}

// Crear aprovisiona un usuario en cuatro pasos: (1) cuenta en el proveedor,
// (2) resolución del rol, (3) ficha en usuarios, (4) asignación en
// usuario_roles. Un fallo en cualquier paso aborta sin revertir los
// anteriores.
func (uc *UsuarioUseCase) Crear(ctx context.Context, in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	// Paso 1: cuenta en el proveedor de identidad.
	identidad, err := uc.gw.CrearUsuario(ctx, in.Email, in.Password, auth.Perfil{
		Nombre:          in.Nombre,
		ApellidoPaterno: in.ApellidoPaterno,
		ApellidoMaterno: in.ApellidoMaterno,
		Telefono:        in.Telefono,
	})
	if err != nil {
		uc.falloParcial("cuenta")
		return nil, err
	}

	// Paso 2: resolución del rol. Si el código es desconocido la cuenta del
	// paso 1 ya existe y queda huérfana.
	rol, err := uc.resolverRol(in.Rol)
	if err != nil {
		uc.log.Warn().Str("usuario_id", identidad.ID).Str("rol", in.Rol).
			Msg("rol no resuelto tras crear la cuenta; la cuenta queda sin ficha")
		uc.falloParcial("rol")
		return nil, err
	}

	// Paso 3: ficha.
	now := time.Now()
	usuario := &entity.Usuario{
		ID:              identidad.ID,
		Email:           in.Email,
		Nombre:          in.Nombre,
		ApellidoPaterno: in.ApellidoPaterno,
		ApellidoMaterno: in.ApellidoMaterno,
		Telefono:        in.Telefono,
		Activo:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.usuarioRepo.Create(usuario); err != nil {
		uc.log.Warn().Str("usuario_id", identidad.ID).
			Msg("fallo al crear la ficha; la cuenta queda sin ficha")
		uc.falloParcial("ficha")
		return nil, err
	}

	// Paso 4: asignación de rol.
	asignacion := &entity.UsuarioRol{
		UsuarioID:       identidad.ID,
		RolID:           rol.ID,
		CategoriaID:     in.CategoriaID,
		EquipoInternoID: in.EquipoInternoID,
		Activo:          true,
	}
	if err := uc.usuarioRolRepo.Create(asignacion); err != nil {
		uc.log.Warn().Str("usuario_id", identidad.ID).
			Msg("fallo al asignar el rol; el usuario queda sin rol")
		uc.falloParcial("asignacion")
		return nil, err
	}

	if uc.metricas != nil {
		uc.metricas.RecordUsuarioCreado()
	}
	resp := toUsuarioResponse(&entity.UsuarioConRol{Usuario: *usuario, Rol: rol.Nombre})
	return resp, nil
}

// Actualizar modifica la ficha y, de forma independiente, la credencial y el
// rol cuando vienen en la petición. Cada bloque es una escritura aparte: un
// fallo posterior no revierte los cambios ya aplicados.
func (uc *UsuarioUseCase) Actualizar(ctx context.Context, id string, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	usuario, err := uc.usuarioRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNotFound
	}

	usuario.Email = in.Email
	usuario.Nombre = in.Nombre
	usuario.ApellidoPaterno = in.ApellidoPaterno
	usuario.ApellidoMaterno = in.ApellidoMaterno
	usuario.Telefono = in.Telefono
	usuario.UpdatedAt = time.Now()
	if err := uc.usuarioRepo.UpdateCampos(usuario); err != nil {
		return nil, err
	}

	// Cambio de credencial: independiente de la ficha, que ya quedó guardada.
	if in.Password != "" {
		if err := uc.gw.ActualizarCredencial(ctx, id, in.Password); err != nil {
			uc.log.Warn().Str("usuario_id", id).
				Msg("fallo al actualizar la credencial; la ficha ya fue guardada")
			return nil, err
		}
	}

	rolNombre := ""
	// Cambio de rol: se desactivan TODAS las asignaciones vigentes y se
	// inserta una nueva activa. Entre ambas escrituras el usuario puede no
	// tener asignación activa.
	if in.Rol != "" {
		rol, err := uc.resolverRol(in.Rol)
		if err != nil {
			return nil, err
		}
		if err := uc.usuarioRolRepo.DesactivarByUsuario(id); err != nil {
			return nil, err
		}
		asignacion := &entity.UsuarioRol{
			UsuarioID:       id,
			RolID:           rol.ID,
			CategoriaID:     in.CategoriaID,
			EquipoInternoID: in.EquipoInternoID,
			Activo:          true,
		}
		if err := uc.usuarioRolRepo.Create(asignacion); err != nil {
			uc.log.Warn().Str("usuario_id", id).
				Msg("fallo al insertar la nueva asignación; el usuario queda sin rol activo")
			return nil, err
		}
		rolNombre = rol.Nombre
	}

	return toUsuarioResponse(&entity.UsuarioConRol{Usuario: *usuario, Rol: rolNombre}), nil
}

// Desactivar marca el usuario inactivo y después desactiva sus asignaciones
// de rol, en dos escrituras independientes. La cuenta del proveedor no se
// toca: la credencial sigue siendo válida pero el login la rechaza por la
// ficha inactiva.
func (uc *UsuarioUseCase) Desactivar(ctx context.Context, id string) error {
	if err := uc.usuarioRepo.Desactivar(id); err != nil {
		return err
	}
	if err := uc.usuarioRolRepo.DesactivarByUsuario(id); err != nil {
		uc.log.Warn().Str("usuario_id", id).
			Msg("usuario desactivado pero sus asignaciones siguen activas")
		return err
	}
	return nil
}

// GetByID obtiene la ficha de un usuario.
func (uc *UsuarioUseCase) GetByID(ctx context.Context, id string) (*dto.UsuarioResponse, error) {
	usuario, err := uc.usuarioRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNotFound
	}
	conRol := &entity.UsuarioConRol{Usuario: *usuario}
	asignaciones, err := uc.usuarioRolRepo.ListActivosByUsuario(id)
	if err != nil {
		return nil, err
	}
	if len(asignaciones) > 0 {
		roles, err := uc.rolRepo.ListActivos()
		if err != nil {
			return nil, err
		}
		for _, r := range roles {
			if r.ID == asignaciones[0].RolID {
				conRol.Rol = r.Nombre
				break
			}
		}
	}
	return toUsuarioResponse(conRol), nil
}

// Listar devuelve los usuarios activos con su rol desnormalizado.
func (uc *UsuarioUseCase) Listar(ctx context.Context) ([]*dto.UsuarioResponse, error) {
	usuarios, err := uc.usuarioRepo.ListActivosConRol()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, toUsuarioResponse(u))
	}
	return out, nil
}

// Roles devuelve los roles activos disponibles para asignación.
func (uc *UsuarioUseCase) Roles(ctx context.Context) ([]*dto.RolResponse, error) {
	roles, err := uc.rolRepo.ListActivos()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.RolResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, &dto.RolResponse{ID: r.ID, Nombre: r.Nombre, Descripcion: r.Descripcion})
	}
	return out, nil
}

func toUsuarioResponse(u *entity.UsuarioConRol) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:              u.ID,
		Email:           u.Email,
		Nombre:          u.Nombre,
		ApellidoPaterno: u.ApellidoPaterno,
		ApellidoMaterno: u.ApellidoMaterno,
		Telefono:        u.Telefono,
		Activo:          u.Activo,
		EmailVerificado: u.EmailVerificado,
		UltimoAcceso:    u.UltimoAcceso,
		Rol:             u.Rol,
		CategoriaNombre: u.CategoriaNombre,
		EquipoNombre:    u.EquipoNombre,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}
