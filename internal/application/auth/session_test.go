package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ligaspequenas/liga-api/internal/application/auth"
	"github.com/ligaspequenas/liga-api/internal/domain"
	"github.com/ligaspequenas/liga-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake Gateway
// ──────────────────────────────────────────────────────────────────────────────

const superAdminEmail = "superadmin@ligaspequenas.com"

// fakeGateway implementa auth.Gateway en memoria y cuenta las llamadas, para
// verificar qué operaciones llegan (o no llegan) al proveedor.
type fakeGateway struct {
	usuarioActualErr error
	signInSesion     *auth.Sesion
	signInErr        error
	signUpIdentidad  *auth.Identidad
	signUpErr        error
	signOutErr       error

	signInCalls  int
	signUpCalls  int
	signOutCalls int

	cb auth.Callback
}

type fakeSub struct{ cancelado *bool }

func (s fakeSub) Cancelar() { *s.cancelado = true }

func (g *fakeGateway) UsuarioActual(ctx context.Context, token string) (*auth.Identidad, error) {
	if g.usuarioActualErr != nil {
		return nil, g.usuarioActualErr
	}
	return &auth.Identidad{ID: "id-1", Email: "x@y.com"}, nil
}

func (g *fakeGateway) SignInConPassword(ctx context.Context, email, password string) (*auth.Sesion, error) {
	g.signInCalls++
	if g.signInErr != nil {
		return nil, g.signInErr
	}
	return g.signInSesion, nil
}

func (g *fakeGateway) SignUp(ctx context.Context, email, password string, perfil auth.Perfil) (*auth.Identidad, error) {
	g.signUpCalls++
	if g.signUpErr != nil {
		return nil, g.signUpErr
	}
	return g.signUpIdentidad, nil
}

func (g *fakeGateway) SignOut(ctx context.Context, token string) error {
	g.signOutCalls++
	return g.signOutErr
}

func (g *fakeGateway) OnAuthStateChange(cb auth.Callback) auth.Suscripcion {
	g.cb = cb
	cancelado := false
	return fakeSub{cancelado: &cancelado}
}

func (g *fakeGateway) CrearUsuario(ctx context.Context, email, password string, perfil auth.Perfil) (*auth.Identidad, error) {
	return &auth.Identidad{ID: "nuevo", Email: email}, nil
}

func (g *fakeGateway) ActualizarCredencial(ctx context.Context, id, password string) error {
	return nil
}

func newStore(gw *fakeGateway) *auth.SessionStore {
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	gate := auth.NewRoleGate(superAdminEmail)
	return auth.NewSessionStore(gw, gate, log)
}

// ──────────────────────────────────────────────────────────────────────────────
// Inicializar
// ──────────────────────────────────────────────────────────────────────────────

// Sin sesión activa el arranque termina en anónima, sin error visible.
func TestInicializar_SinSesion_TerminaAnonimaSilenciosamente(t *testing.T) {
	gw := &fakeGateway{usuarioActualErr: domain.ErrSesionFaltante}
	s := newStore(gw)
	defer s.Cerrar()

	s.Inicializar(context.Background())

	assert.Nil(t, s.Identidad(), "sin sesión no debe haber identidad")
	assert.False(t, s.EsSuperAdmin())
	assert.False(t, s.Cargando(), "el flag de carga debe limpiarse siempre")
	assert.Equal(t, auth.EstadoAnonima, s.Estado())
}

// Un fallo distinto a "sin sesión" también termina en anónima y limpia carga.
func TestInicializar_ErrorInesperado_TerminaAnonima(t *testing.T) {
	gw := &fakeGateway{usuarioActualErr: errors.New("red caída")}
	s := newStore(gw)
	defer s.Cerrar()

	s.Inicializar(context.Background())

	assert.Nil(t, s.Identidad())
	assert.False(t, s.Cargando())
	assert.Equal(t, auth.EstadoAnonima, s.Estado())
}

// ──────────────────────────────────────────────────────────────────────────────
// SignIn
// ──────────────────────────────────────────────────────────────────────────────

func TestSignIn_Exitoso_ReemplazaIdentidadYRecalculaFlag(t *testing.T) {
	gw := &fakeGateway{signInSesion: &auth.Sesion{
		Identidad: auth.Identidad{ID: "id-sa", Email: superAdminEmail},
		Token:     "tok",
	}}
	s := newStore(gw)
	defer s.Cerrar()

	out := s.SignIn(context.Background(), superAdminEmail, "secreta123")

	require.True(t, out.OK)
	require.NotNil(t, s.Identidad())
	assert.Equal(t, superAdminEmail, s.Identidad().Email)
	assert.True(t, s.EsSuperAdmin(), "el flag se recalcula con la identidad nueva")
	assert.Equal(t, auth.EstadoAutenticada, s.Estado())
}

// Un fallo de login deja la identidad previa intacta.
func TestSignIn_Fallido_NoTocaIdentidadPrevia(t *testing.T) {
	gw := &fakeGateway{signInSesion: &auth.Sesion{
		Identidad: auth.Identidad{ID: "id-1", Email: "coach@liga.com"},
		Token:     "tok",
	}}
	s := newStore(gw)
	defer s.Cerrar()

	require.True(t, s.SignIn(context.Background(), "coach@liga.com", "buena").OK)

	gw.signInErr = domain.ErrCredenciales
	out := s.SignIn(context.Background(), "coach@liga.com", "mala")

	assert.False(t, out.OK)
	assert.NotEmpty(t, out.Error)
	require.NotNil(t, s.Identidad(), "la sesión previa debe sobrevivir al fallo")
	assert.Equal(t, "coach@liga.com", s.Identidad().Email)
}

// El flag de rol usa igualdad exacta: otra capitalización no privilegia.
func TestSignIn_EmailConOtraCapitalizacion_NoEsSuperAdmin(t *testing.T) {
	gw := &fakeGateway{signInSesion: &auth.Sesion{
		Identidad: auth.Identidad{ID: "id-2", Email: "SuperAdmin@LigasPequenas.com"},
		Token:     "tok",
	}}
	s := newStore(gw)
	defer s.Cerrar()

	require.True(t, s.SignIn(context.Background(), "SuperAdmin@LigasPequenas.com", "x").OK)
	assert.False(t, s.EsSuperAdmin(), "la comparación es sensible a mayúsculas")
}

// ──────────────────────────────────────────────────────────────────────────────
// SignUp
// ──────────────────────────────────────────────────────────────────────────────

// Sin privilegio el registro falla de inmediato, sin llamada al proveedor.
func TestSignUp_SinPrivilegio_NoLlamaAlProveedor(t *testing.T) {
	gw := &fakeGateway{signInSesion: &auth.Sesion{
		Identidad: auth.Identidad{ID: "id-1", Email: "coach@liga.com"},
		Token:     "tok",
	}}
	s := newStore(gw)
	defer s.Cerrar()

	require.True(t, s.SignIn(context.Background(), "coach@liga.com", "x").OK)

	out := s.SignUp(context.Background(), "nuevo@liga.com", "secreta123", auth.Perfil{})

	assert.False(t, out.OK)
	assert.Contains(t, out.Error, "SuperAdministrador")
	assert.Equal(t, 0, gw.signUpCalls, "no debe llegar ninguna llamada al proveedor")
}

// Con privilegio el registro procede y NO reemplaza la sesión vigente.
func TestSignUp_ConPrivilegio_NoAdoptaLaIdentidadCreada(t *testing.T) {
	gw := &fakeGateway{
		signInSesion: &auth.Sesion{
			Identidad: auth.Identidad{ID: "id-sa", Email: superAdminEmail},
			Token:     "tok",
		},
		signUpIdentidad: &auth.Identidad{ID: "id-nuevo", Email: "nuevo@liga.com"},
	}
	s := newStore(gw)
	defer s.Cerrar()

	require.True(t, s.SignIn(context.Background(), superAdminEmail, "x").OK)

	out := s.SignUp(context.Background(), "nuevo@liga.com", "secreta123", auth.Perfil{Nombre: "Nuevo"})

	require.True(t, out.OK)
	assert.Equal(t, 1, gw.signUpCalls)
	assert.Equal(t, "id-nuevo", out.Identidad.ID)
	assert.Equal(t, superAdminEmail, s.Identidad().Email,
		"la sesión vigente sigue siendo la del SuperAdministrador")
}

// ──────────────────────────────────────────────────────────────────────────────
// SignOut
// ──────────────────────────────────────────────────────────────────────────────

// Aunque el proveedor falle, la identidad local se limpia.
func TestSignOut_FalloRemoto_LimpiaIdentidadIgual(t *testing.T) {
	gw := &fakeGateway{
		signInSesion: &auth.Sesion{
			Identidad: auth.Identidad{ID: "id-1", Email: "coach@liga.com"},
			Token:     "tok",
		},
		signOutErr: errors.New("timeout del proveedor"),
	}
	s := newStore(gw)
	defer s.Cerrar()

	require.True(t, s.SignIn(context.Background(), "coach@liga.com", "x").OK)

	out := s.SignOut(context.Background())

	assert.False(t, out.OK, "el fallo remoto se reporta")
	assert.Nil(t, s.Identidad(), "pero la sesión local queda cerrada")
	assert.False(t, s.EsSuperAdmin())
	assert.Equal(t, auth.EstadoAnonima, s.Estado())
}

// ──────────────────────────────────────────────────────────────────────────────
// Eventos del Gateway
// ──────────────────────────────────────────────────────────────────────────────

// Un evento de registro de cuenta nueva no toca la sesión vigente.
func TestEventos_RegistroNoTocaSesion(t *testing.T) {
	gw := &fakeGateway{signInSesion: &auth.Sesion{
		Identidad: auth.Identidad{ID: "id-sa", Email: superAdminEmail},
		Token:     "tok",
	}}
	s := newStore(gw)
	defer s.Cerrar()

	require.True(t, s.SignIn(context.Background(), superAdminEmail, "x").OK)

	gw.cb(auth.EventoRegistro, &auth.Sesion{
		Identidad: auth.Identidad{ID: "otro", Email: "otro@liga.com"},
	})

	assert.Equal(t, superAdminEmail, s.Identidad().Email)
}

// Un evento de logout limpia identidad y flag.
func TestEventos_LogoutLimpiaIdentidad(t *testing.T) {
	gw := &fakeGateway{signInSesion: &auth.Sesion{
		Identidad: auth.Identidad{ID: "id-sa", Email: superAdminEmail},
		Token:     "tok",
	}}
	s := newStore(gw)
	defer s.Cerrar()

	require.True(t, s.SignIn(context.Background(), superAdminEmail, "x").OK)
	require.True(t, s.EsSuperAdmin())

	gw.cb(auth.EventoLogout, nil)

	assert.Nil(t, s.Identidad())
	assert.False(t, s.EsSuperAdmin())
}

// Los observadores reciben cada cambio con el flag ya recomputado.
func TestObservadores_RecibenCadaCambio(t *testing.T) {
	gw := &fakeGateway{signInSesion: &auth.Sesion{
		Identidad: auth.Identidad{ID: "id-sa", Email: superAdminEmail},
		Token:     "tok",
	}}
	s := newStore(gw)
	defer s.Cerrar()

	type cambio struct {
		email        string
		esSuperAdmin bool
	}
	var cambios []cambio
	s.Observar(func(identidad *auth.Identidad, esSuperAdmin bool) {
		email := ""
		if identidad != nil {
			email = identidad.Email
		}
		cambios = append(cambios, cambio{email: email, esSuperAdmin: esSuperAdmin})
	})

	require.True(t, s.SignIn(context.Background(), superAdminEmail, "x").OK)
	s.SignOut(context.Background())

	require.Len(t, cambios, 2)
	assert.Equal(t, cambio{email: superAdminEmail, esSuperAdmin: true}, cambios[0])
	assert.Equal(t, cambio{email: "", esSuperAdmin: false}, cambios[1])
}
