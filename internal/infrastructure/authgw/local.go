// Package authgw implementa el puerto auth.Gateway sobre PostgreSQL: las
// credenciales viven en la tabla cuentas_auth (separada de la ficha usuarios,
// que pertenece al directorio) y las sesiones son tokens JWT sin estado.
package authgw

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/ligaspequenas/liga-api/internal/application/auth"
	"github.com/ligaspequenas/liga-api/internal/domain"
	"github.com/ligaspequenas/liga-api/pkg/jwt"
)

// JWTConfig configuración para emisión de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

var _ auth.Gateway = (*LocalGateway)(nil)

// LocalGateway proveedor de identidad local. Emite eventos de cambio de
// autenticación a los suscriptores en cada login/logout/registro.
type LocalGateway struct {
	pool   *pgxpool.Pool
	jwtCfg JWTConfig

	mu      sync.Mutex
	subs    map[int]auth.Callback
	nextSub int
}

// NewLocalGateway construye el gateway sobre el pool.
func NewLocalGateway(pool *pgxpool.Pool, jwtCfg JWTConfig) *LocalGateway {
	return &LocalGateway{
		pool:   pool,
		jwtCfg: jwtCfg,
		subs:   make(map[int]auth.Callback),
	}
}

// UsuarioActual valida el token portador y devuelve la identidad de la sesión.
// Token vacío o inválido es "no hay sesión", no un error de sistema.
func (g *LocalGateway) UsuarioActual(ctx context.Context, token string) (*auth.Identidad, error) {
	if token == "" {
		return nil, domain.ErrSesionFaltante
	}
	userID, email, err := jwt.Parse(g.jwtCfg.Secret, token)
	if err != nil {
		return nil, domain.ErrSesionFaltante
	}

	var existe bool
	err = g.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM cuentas_auth WHERE id = $1)`, userID).Scan(&existe)
	if err != nil {
		return nil, fmt.Errorf("verificar cuenta: %w", err)
	}
	if !existe {
		return nil, domain.ErrUsuarioNotFound
	}
	return &auth.Identidad{ID: userID, Email: email}, nil
}

// SignInConPassword verifica las credenciales contra cuentas_auth, emite un
// token y publica el evento de login.
func (g *LocalGateway) SignInConPassword(ctx context.Context, email, password string) (*auth.Sesion, error) {
	var id, hash string
	err := g.pool.QueryRow(ctx,
		`SELECT id, password_hash FROM cuentas_auth WHERE email = $1`, email,
	).Scan(&id, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCredenciales
		}
		return nil, fmt.Errorf("buscar cuenta: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, domain.ErrCredenciales
	}

	// Una ficha desactivada bloquea el acceso aunque la cuenta exista.
	var activo bool
	err = g.pool.QueryRow(ctx, `SELECT activo FROM usuarios WHERE id = $1`, id).Scan(&activo)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("verificar ficha: %w", err)
	}
	if err == nil && !activo {
		return nil, domain.ErrForbidden
	}

	token, err := jwt.Generate(g.jwtCfg.Secret, id, email, g.jwtCfg.Issuer, g.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	// Mejor esfuerzo: el último acceso no condiciona el login.
	_, _ = g.pool.Exec(ctx, `UPDATE usuarios SET ultimo_acceso = now() WHERE id = $1`, id)

	sesion := &auth.Sesion{Identidad: auth.Identidad{ID: id, Email: email}, Token: token}
	g.emitir(auth.EventoLogin, sesion)
	return sesion, nil
}

// SignUp crea una cuenta nueva y publica el evento de registro. No emite token:
// la sesión del llamador no se convierte en la identidad creada.
func (g *LocalGateway) SignUp(ctx context.Context, email, password string, perfil auth.Perfil) (*auth.Identidad, error) {
	identidad, err := g.crearCuenta(ctx, email, password, perfil)
	if err != nil {
		return nil, err
	}
	g.emitir(auth.EventoRegistro, &auth.Sesion{Identidad: *identidad})
	return identidad, nil
}

// SignOut publica el evento de logout. Los tokens son sin estado, así que no
// hay nada que revocar server-side; sin sesión vigente la llamada falla.
func (g *LocalGateway) SignOut(_ context.Context, token string) error {
	if token == "" {
		return domain.ErrSesionFaltante
	}
	g.emitir(auth.EventoLogout, nil)
	return nil
}

// CrearUsuario crea una cuenta por vía administrativa (sin evento de registro
// de sesión: lo invoca el directorio de usuarios, no un flujo de login).
func (g *LocalGateway) CrearUsuario(ctx context.Context, email, password string, perfil auth.Perfil) (*auth.Identidad, error) {
	return g.crearCuenta(ctx, email, password, perfil)
}

// ActualizarCredencial reemplaza la contraseña de la cuenta.
func (g *LocalGateway) ActualizarCredencial(ctx context.Context, id, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	cmd, err := g.pool.Exec(ctx,
		`UPDATE cuentas_auth SET password_hash = $2, updated_at = now() WHERE id = $1`,
		id, string(hash),
	)
	if err != nil {
		return fmt.Errorf("actualizar credencial: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUsuarioNotFound
	}
	return nil
}

// OnAuthStateChange registra un callback; el handle devuelto lo libera.
func (g *LocalGateway) OnAuthStateChange(cb auth.Callback) auth.Suscripcion {
	g.mu.Lock()
	id := g.nextSub
	g.nextSub++
	g.subs[id] = cb
	g.mu.Unlock()
	return &suscripcion{gw: g, id: id}
}

func (g *LocalGateway) crearCuenta(ctx context.Context, email, password string, perfil auth.Perfil) (*auth.Identidad, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	id := uuid.New().String()
	now := time.Now()
	_, err = g.pool.Exec(ctx, `
		INSERT INTO cuentas_auth (id, email, password_hash, nombre, apellido_paterno, apellido_materno, telefono, email_confirmado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, true, $8, $8)`,
		id, email, string(hash),
		perfil.Nombre, perfil.ApellidoPaterno, perfil.ApellidoMaterno, perfil.Telefono,
		now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("insert cuenta: %w", err)
	}
	return &auth.Identidad{ID: id, Email: email}, nil
}

func (g *LocalGateway) emitir(evento auth.Evento, sesion *auth.Sesion) {
	g.mu.Lock()
	cbs := make([]auth.Callback, 0, len(g.subs))
	for _, cb := range g.subs {
		cbs = append(cbs, cb)
	}
	g.mu.Unlock()
	for _, cb := range cbs {
		cb(evento, sesion)
	}
}

type suscripcion struct {
	gw *LocalGateway
	id int
}

func (s *suscripcion) Cancelar() {
	s.gw.mu.Lock()
	delete(s.gw.subs, s.id)
	s.gw.mu.Unlock()
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return false
}
