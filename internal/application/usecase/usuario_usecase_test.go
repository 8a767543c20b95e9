package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ligaspequenas/liga-api/internal/application/auth"
	"github.com/ligaspequenas/liga-api/internal/application/dto"
	"github.com/ligaspequenas/liga-api/internal/application/usecase"
	"github.com/ligaspequenas/liga-api/internal/domain"
	"github.com/ligaspequenas/liga-api/internal/domain/entity"
	"github.com/ligaspequenas/liga-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeGateway struct {
	auth.Gateway // las operaciones no usadas hacen panic si se llaman

	crearErr          error
	credencialErr     error
	cuentasCreadas    []string
	credencialesCalls int
}

func (g *fakeGateway) CrearUsuario(ctx context.Context, email, password string, perfil auth.Perfil) (*auth.Identidad, error) {
	if g.crearErr != nil {
		return nil, g.crearErr
	}
	g.cuentasCreadas = append(g.cuentasCreadas, email)
	return &auth.Identidad{ID: "uid-" + email, Email: email}, nil
}

func (g *fakeGateway) ActualizarCredencial(ctx context.Context, id, password string) error {
	g.credencialesCalls++
	return g.credencialErr
}

type fakeUsuarioRepo struct {
	createErr error
	usuarios  map[string]*entity.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: make(map[string]*entity.Usuario)}
}

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	if r.createErr != nil {
		return r.createErr
	}
	copia := *u
	r.usuarios[u.ID] = &copia
	return nil
}

func (r *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, nil
	}
	copia := *u
	return &copia, nil
}

func (r *fakeUsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			copia := *u
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) UpdateCampos(u *entity.Usuario) error {
	copia := *u
	r.usuarios[u.ID] = &copia
	return nil
}

func (r *fakeUsuarioRepo) ListActivosConRol() ([]*entity.UsuarioConRol, error) {
	out := make([]*entity.UsuarioConRol, 0)
	for _, u := range r.usuarios {
		if u.Activo {
			out = append(out, &entity.UsuarioConRol{Usuario: *u, Rol: "Sin rol"})
		}
	}
	return out, nil
}

func (r *fakeUsuarioRepo) Desactivar(id string) error {
	u, ok := r.usuarios[id]
	if !ok {
		return domain.ErrUsuarioNotFound
	}
	u.Activo = false
	return nil
}

func (r *fakeUsuarioRepo) RegistrarAcceso(id string) error { return nil }

type fakeRolRepo struct {
	roles map[string]*entity.RolUsuario
}

func newFakeRolRepo() *fakeRolRepo {
	return &fakeRolRepo{roles: map[string]*entity.RolUsuario{
		"Administrador de Liga":      {ID: 1, Nombre: "Administrador de Liga", Activo: true},
		"Administrador de Categoría": {ID: 2, Nombre: "Administrador de Categoría", Activo: true},
		"Administrador de Equipo":    {ID: 3, Nombre: "Administrador de Equipo", Activo: true},
		"Padre de Familia":           {ID: 4, Nombre: "Padre de Familia", Activo: true},
	}}
}

func (r *fakeRolRepo) ListActivos() ([]*entity.RolUsuario, error) {
	out := make([]*entity.RolUsuario, 0, len(r.roles))
	for _, rol := range r.roles {
		out = append(out, rol)
	}
	return out, nil
}

func (r *fakeRolRepo) GetByNombre(nombre string) (*entity.RolUsuario, error) {
	return r.roles[nombre], nil
}

type fakeUsuarioRolRepo struct {
	createErr     error
	desactivarErr error
	asignaciones  []*entity.UsuarioRol
}

func (r *fakeUsuarioRolRepo) Create(ur *entity.UsuarioRol) error {
	if r.createErr != nil {
		return r.createErr
	}
	copia := *ur
	copia.ID = int64(len(r.asignaciones) + 1)
	r.asignaciones = append(r.asignaciones, &copia)
	return nil
}

func (r *fakeUsuarioRolRepo) ListActivosByUsuario(usuarioID string) ([]*entity.UsuarioRol, error) {
	out := make([]*entity.UsuarioRol, 0)
	for _, a := range r.asignaciones {
		if a.UsuarioID == usuarioID && a.Activo {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeUsuarioRolRepo) DesactivarByUsuario(usuarioID string) error {
	if r.desactivarErr != nil {
		return r.desactivarErr
	}
	for _, a := range r.asignaciones {
		if a.UsuarioID == usuarioID {
			a.Activo = false
		}
	}
	return nil
}

type fixture struct {
	gw      *fakeGateway
	users   *fakeUsuarioRepo
	roles   *fakeRolRepo
	asigs   *fakeUsuarioRolRepo
	usecase *usecase.UsuarioUseCase
}

func newFixture() *fixture {
	f := &fixture{
		gw:    &fakeGateway{},
		users: newFakeUsuarioRepo(),
		roles: newFakeRolRepo(),
		asigs: &fakeUsuarioRolRepo{},
	}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	f.usecase = usecase.NewUsuarioUseCase(f.gw, f.users, f.roles, f.asigs, log, nil)
	return f
}

func crearRequest(rol string) dto.CreateUsuarioRequest {
	return dto.CreateUsuarioRequest{
		Email:           "coach@liga.com",
		Password:        "secreta123",
		Nombre:          "Ana",
		ApellidoPaterno: "García",
		Rol:             rol,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear
// ──────────────────────────────────────────────────────────────────────────────

func TestCrear_CompletaLosCuatroPasos(t *testing.T) {
	f := newFixture()

	out, err := f.usecase.Crear(context.Background(), crearRequest("admin_equipo"))

	require.NoError(t, err)
	assert.Equal(t, "uid-coach@liga.com", out.ID)
	assert.Equal(t, "Administrador de Equipo", out.Rol)
	assert.Len(t, f.gw.cuentasCreadas, 1)
	require.Contains(t, f.users.usuarios, "uid-coach@liga.com")
	require.Len(t, f.asigs.asignaciones, 1)
	assert.Equal(t, int64(3), f.asigs.asignaciones[0].RolID)
	assert.True(t, f.asigs.asignaciones[0].Activo)
}

// El código padre_tutor mapea al nombre sembrado "Padre de Familia".
func TestCrear_PadreTutorMapeaAPadreDeFamilia(t *testing.T) {
	f := newFixture()

	out, err := f.usecase.Crear(context.Background(), crearRequest("padre_tutor"))

	require.NoError(t, err)
	assert.Equal(t, "Padre de Familia", out.Rol)
	require.Len(t, f.asigs.asignaciones, 1)
	assert.Equal(t, int64(4), f.asigs.asignaciones[0].RolID)
}

// Rol desconocido: la cuenta del paso 1 ya existe y queda huérfana; no se
// escribe ficha ni asignación.
func TestCrear_RolDesconocido_DejaCuentaHuerfana(t *testing.T) {
	f := newFixture()

	_, err := f.usecase.Crear(context.Background(), crearRequest("arbitro"))

	require.ErrorIs(t, err, domain.ErrRolDesconocido)
	assert.Len(t, f.gw.cuentasCreadas, 1, "la cuenta ya fue creada en el paso 1")
	assert.Empty(t, f.users.usuarios, "no debe escribirse ficha")
	assert.Empty(t, f.asigs.asignaciones, "no debe escribirse asignación")
}

// Fallo del paso 1: no hay ningún efecto posterior.
func TestCrear_FalloDeCuenta_NoEscribeNada(t *testing.T) {
	f := newFixture()
	f.gw.crearErr = domain.ErrEmailAlreadyExists

	_, err := f.usecase.Crear(context.Background(), crearRequest("admin_liga"))

	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Empty(t, f.users.usuarios)
	assert.Empty(t, f.asigs.asignaciones)
}

// Fallo del paso 3: la cuenta queda, la asignación no se intenta.
func TestCrear_FalloDeFicha_NoRevierteNiContinua(t *testing.T) {
	f := newFixture()
	f.users.createErr = errors.New("deadlock")

	_, err := f.usecase.Crear(context.Background(), crearRequest("admin_liga"))

	require.Error(t, err)
	assert.Len(t, f.gw.cuentasCreadas, 1, "la cuenta no se revierte")
	assert.Empty(t, f.asigs.asignaciones)
}

// Fallo del paso 4: cuenta y ficha quedan; el usuario queda sin rol.
func TestCrear_FalloDeAsignacion_FichaYaEscrita(t *testing.T) {
	f := newFixture()
	f.asigs.createErr = errors.New("conexión perdida")

	_, err := f.usecase.Crear(context.Background(), crearRequest("admin_liga"))

	require.Error(t, err)
	assert.Len(t, f.gw.cuentasCreadas, 1)
	assert.Len(t, f.users.usuarios, 1, "la ficha no se revierte")
	assert.Empty(t, f.asigs.asignaciones)
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualizar
// ──────────────────────────────────────────────────────────────────────────────

func seedUsuario(f *fixture, t *testing.T) string {
	t.Helper()
	out, err := f.usecase.Crear(context.Background(), crearRequest("admin_equipo"))
	require.NoError(t, err)
	return out.ID
}

func TestActualizar_UsuarioInexistente(t *testing.T) {
	f := newFixture()

	_, err := f.usecase.Actualizar(context.Background(), "no-existe", dto.UpdateUsuarioRequest{
		Email:  "x@y.com",
		Nombre: "X",
	})

	assert.ErrorIs(t, err, domain.ErrUsuarioNotFound)
}

// Password vacío significa "sin cambio": no debe llegar al proveedor.
func TestActualizar_SinPassword_NoTocaCredencial(t *testing.T) {
	f := newFixture()
	id := seedUsuario(f, t)

	_, err := f.usecase.Actualizar(context.Background(), id, dto.UpdateUsuarioRequest{
		Email:           "coach@liga.com",
		Nombre:          "Ana María",
		ApellidoPaterno: "García",
	})

	require.NoError(t, err)
	assert.Equal(t, 0, f.gw.credencialesCalls)
	assert.Equal(t, "Ana María", f.users.usuarios[id].Nombre)
}

// Un fallo de credencial no revierte la ficha ya guardada.
func TestActualizar_FalloDeCredencial_FichaYaGuardada(t *testing.T) {
	f := newFixture()
	id := seedUsuario(f, t)
	f.gw.credencialErr = errors.New("proveedor caído")

	_, err := f.usecase.Actualizar(context.Background(), id, dto.UpdateUsuarioRequest{
		Email:           "coach@liga.com",
		Nombre:          "Ana María",
		ApellidoPaterno: "García",
		Password:        "nueva-clave-1",
	})

	require.Error(t, err)
	assert.Equal(t, "Ana María", f.users.usuarios[id].Nombre,
		"la ficha quedó actualizada pese al fallo posterior")
}

// El cambio de rol desactiva todas las asignaciones y deja exactamente una activa.
func TestActualizar_CambioDeRol_DejaUnaSolaAsignacionActiva(t *testing.T) {
	f := newFixture()
	id := seedUsuario(f, t)

	_, err := f.usecase.Actualizar(context.Background(), id, dto.UpdateUsuarioRequest{
		Email:           "coach@liga.com",
		Nombre:          "Ana",
		ApellidoPaterno: "García",
		Rol:             "admin_categoria",
	})

	require.NoError(t, err)
	activas, err := f.asigs.ListActivosByUsuario(id)
	require.NoError(t, err)
	require.Len(t, activas, 1, "a lo sumo una asignación activa")
	assert.Equal(t, int64(2), activas[0].RolID)
	assert.Len(t, f.asigs.asignaciones, 2, "la anterior se desactiva, no se elimina")
}

// Rol desconocido en actualización: no se desactivan las asignaciones vigentes.
func TestActualizar_RolDesconocido_NoDesactivaVigentes(t *testing.T) {
	f := newFixture()
	id := seedUsuario(f, t)

	_, err := f.usecase.Actualizar(context.Background(), id, dto.UpdateUsuarioRequest{
		Email:           "coach@liga.com",
		Nombre:          "Ana",
		ApellidoPaterno: "García",
		Rol:             "arbitro",
	})

	require.ErrorIs(t, err, domain.ErrRolDesconocido)
	activas, _ := f.asigs.ListActivosByUsuario(id)
	assert.Len(t, activas, 1, "la asignación original sigue activa")
}

// Ventana del supersede: si el insert nuevo falla, el usuario queda sin rol activo.
func TestActualizar_FalloTrasDesactivar_UsuarioSinRolActivo(t *testing.T) {
	f := newFixture()
	id := seedUsuario(f, t)
	f.asigs.createErr = errors.New("conexión perdida")

	_, err := f.usecase.Actualizar(context.Background(), id, dto.UpdateUsuarioRequest{
		Email:           "coach@liga.com",
		Nombre:          "Ana",
		ApellidoPaterno: "García",
		Rol:             "admin_categoria",
	})

	require.Error(t, err)
	activas, _ := f.asigs.ListActivosByUsuario(id)
	assert.Empty(t, activas, "las vigentes ya fueron desactivadas y la nueva no entró")
}

// ──────────────────────────────────────────────────────────────────────────────
// Desactivar
// ──────────────────────────────────────────────────────────────────────────────

func TestDesactivar_UsuarioYAsignaciones(t *testing.T) {
	f := newFixture()
	id := seedUsuario(f, t)

	require.NoError(t, f.usecase.Desactivar(context.Background(), id))

	assert.False(t, f.users.usuarios[id].Activo)
	activas, _ := f.asigs.ListActivosByUsuario(id)
	assert.Empty(t, activas)
}

// Las dos escrituras son independientes: si la segunda falla, el usuario ya
// quedó inactivo y sus asignaciones siguen activas.
func TestDesactivar_FalloEnAsignaciones_UsuarioYaInactivo(t *testing.T) {
	f := newFixture()
	id := seedUsuario(f, t)
	f.asigs.desactivarErr = errors.New("timeout")

	err := f.usecase.Desactivar(context.Background(), id)

	require.Error(t, err)
	assert.False(t, f.users.usuarios[id].Activo)
	activas, _ := f.asigs.ListActivosByUsuario(id)
	assert.Len(t, activas, 1, "las asignaciones no alcanzaron a desactivarse")
}
