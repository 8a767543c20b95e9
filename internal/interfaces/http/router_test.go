package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ligaspequenas/liga-api/internal/application/auth"
	apphttp "github.com/ligaspequenas/liga-api/internal/interfaces/http"
	pkgjwt "github.com/ligaspequenas/liga-api/pkg/jwt"
	"github.com/ligaspequenas/liga-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake Gateway para las rutas de auth
// ──────────────────────────────────────────────────────────────────────────────

// routerGateway implementa auth.Gateway en memoria y cuenta las llamadas de
// registro, para verificar qué peticiones HTTP llegan al proveedor.
type routerGateway struct {
	signUpCalls int
}

type routerSub struct{}

func (routerSub) Cancelar() {}

func (g *routerGateway) UsuarioActual(ctx context.Context, token string) (*auth.Identidad, error) {
	return nil, nil
}

func (g *routerGateway) SignInConPassword(ctx context.Context, email, password string) (*auth.Sesion, error) {
	return &auth.Sesion{
		Identidad: auth.Identidad{ID: testUserID, Email: email},
		Token:     "token-" + email,
	}, nil
}

func (g *routerGateway) SignUp(ctx context.Context, email, password string, perfil auth.Perfil) (*auth.Identidad, error) {
	g.signUpCalls++
	return &auth.Identidad{ID: "nuevo", Email: email}, nil
}

func (g *routerGateway) SignOut(ctx context.Context, token string) error { return nil }

func (g *routerGateway) OnAuthStateChange(cb auth.Callback) auth.Suscripcion { return routerSub{} }

func (g *routerGateway) CrearUsuario(ctx context.Context, email, password string, perfil auth.Perfil) (*auth.Identidad, error) {
	return &auth.Identidad{ID: "nuevo", Email: email}, nil
}

func (g *routerGateway) ActualizarCredencial(ctx context.Context, id, password string) error {
	return nil
}

// buildRouterApp monta el router completo con un SessionStore real sobre el
// fake. Los use cases de entidades quedan nil: estas pruebas solo tocan /auth.
func buildRouterApp(t *testing.T, gw *routerGateway) (*fiber.App, *auth.SessionStore) {
	t.Helper()
	gate := auth.NewRoleGate(testSuperEmail)
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	store := auth.NewSessionStore(gw, gate, log)
	t.Cleanup(store.Cerrar)

	rl := apphttp.NewRateLimiter(apphttp.DefaultRateLimiterConfig())
	t.Cleanup(rl.Stop)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		SessionStore: store,
		RoleGate:     gate,
		RateLimiter:  rl,
		JWTSecret:    testJWTSecret,
	})
	return app, store
}

// tokenPara genera un JWT con id y email arbitrarios.
func tokenPara(t *testing.T, id, email string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, id, email, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func postSignup(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	body, err := json.Marshal(fiber.Map{
		"email":            "nuevo@ligaspequenas.com",
		"password":         "password-larga",
		"nombre":           "Nuevo",
		"apellido_paterno": "Usuario",
	})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func getMe(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// /api/auth/signup — autorización por token, no por la sesión del proceso
// ──────────────────────────────────────────────────────────────────────────────

// Aunque el SuperAdministrador haya iniciado sesión en el proceso, una petición
// anónima no puede registrar cuentas: la ruta exige Bearer Token.
func TestSignup_AnonimoRechazadoConSesionPrivilegiadaEnProceso(t *testing.T) {
	gw := &routerGateway{}
	app, store := buildRouterApp(t, gw)

	out := store.SignIn(context.Background(), testSuperEmail, "clave")
	require.True(t, out.OK)
	require.True(t, store.EsSuperAdmin(), "el flag del proceso queda privilegiado")

	resp := postSignup(t, app, "")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 0, gw.signUpCalls, "el registro no debe llegar al proveedor")
}

// Un token válido de un usuario que no es SuperAdministrador recibe 403.
func TestSignup_TokenNoPrivilegiadoBloqueado(t *testing.T) {
	gw := &routerGateway{}
	app, store := buildRouterApp(t, gw)

	out := store.SignIn(context.Background(), testSuperEmail, "clave")
	require.True(t, out.OK)

	resp := postSignup(t, app, tokenPara(t, "otro-id", "coach@ligaspequenas.com"))

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, 0, gw.signUpCalls)
}

// El SuperAdministrador autenticado con su token sí registra la cuenta.
func TestSignup_SuperAdminConTokenRegistra(t *testing.T) {
	gw := &routerGateway{}
	app, store := buildRouterApp(t, gw)

	out := store.SignIn(context.Background(), testSuperEmail, "clave")
	require.True(t, out.OK)

	resp := postSignup(t, app, tokenForEmail(t, testSuperEmail))

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 1, gw.signUpCalls)
}

// ──────────────────────────────────────────────────────────────────────────────
// /api/auth/me — identidad del token, no la identidad compartida del proceso
// ──────────────────────────────────────────────────────────────────────────────

// Sin token /me no revela la identidad de la sesión del proceso.
func TestMe_SinTokenRetorna401(t *testing.T) {
	gw := &routerGateway{}
	app, store := buildRouterApp(t, gw)

	out := store.SignIn(context.Background(), testSuperEmail, "clave")
	require.True(t, out.OK)

	resp := getMe(t, app, "")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Dos llamadores con tokens distintos ven cada uno su propia identidad.
func TestMe_CadaTokenVeSuPropiaIdentidad(t *testing.T) {
	gw := &routerGateway{}
	app, _ := buildRouterApp(t, gw)

	casos := []struct {
		id, email    string
		esSuperAdmin bool
	}{
		{"id-super", testSuperEmail, true},
		{"id-coach", "coach@ligaspequenas.com", false},
	}
	for _, c := range casos {
		resp := getMe(t, app, tokenPara(t, c.id, c.email))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			ID           string `json:"id"`
			Email        string `json:"email"`
			EsSuperAdmin bool   `json:"es_superadmin"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		resp.Body.Close()

		assert.Equal(t, c.id, body.ID)
		assert.Equal(t, c.email, body.Email)
		assert.Equal(t, c.esSuperAdmin, body.EsSuperAdmin)
	}
}
