package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/ligaspequenas/liga-api/internal/domain"
	"github.com/ligaspequenas/liga-api/pkg/logger"
)

// Estado de la sesión. La máquina arranca en Cargando y vuelve a pasar por
// Cargando brevemente durante cualquier operación asíncrona.
type Estado int

const (
	EstadoCargando Estado = iota
	EstadoAutenticada
	EstadoAnonima
)

// Resultado es la forma uniforme de respuesta de las operaciones de sesión:
// nunca se propaga un panic ni un error crudo al llamador.
type Resultado struct {
	OK        bool       `json:"success"`
	Identidad *Identidad `json:"identidad,omitempty"`
	Token     string     `json:"token,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// Observador recibe cada cambio de identidad con el flag de rol ya recomputado.
type Observador func(identidad *Identidad, esSuperAdmin bool)

// SessionStore es la única fuente de verdad de "quién tiene sesión" y "es
// privilegiado". Es el único escritor de la identidad compartida; el resto de
// componentes solo la leen. Se inyecta por constructor (nada de estado global)
// y notifica cambios a una lista explícita de observadores.
type SessionStore struct {
	gw   Gateway
	gate RoleGate
	log  *logger.Logger

	mu           sync.RWMutex
	identidad    *Identidad
	token        string
	esSuperAdmin bool
	cargando     bool
	estado       Estado
	observadores []Observador

	sub Suscripcion
}

// NewSessionStore construye el almacén y se suscribe a los eventos de cambio
// de autenticación del Gateway. La suscripción se libera en Cerrar.
func NewSessionStore(gw Gateway, gate RoleGate, log *logger.Logger) *SessionStore {
	s := &SessionStore{
		gw:       gw,
		gate:     gate,
		log:      log,
		cargando: true,
		estado:   EstadoCargando,
	}
	s.sub = gw.OnAuthStateChange(s.onAuthStateChange)
	return s
}

// Cerrar libera la suscripción a eventos. Idempotente.
func (s *SessionStore) Cerrar() {
	if s.sub != nil {
		s.sub.Cancelar()
		s.sub = nil
	}
}

// Inicializar consulta la sesión vigente al arrancar. "No hay sesión" es una
// transición silenciosa a Anónima; cualquier otro fallo se registra pero
// igualmente termina en Anónima. El flag de carga se limpia siempre.
func (s *SessionStore) Inicializar(ctx context.Context) {
	s.setCargando(true)
	defer s.setCargando(false)

	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	identidad, err := s.gw.UsuarioActual(ctx, token)
	if err != nil {
		if !errors.Is(err, domain.ErrSesionFaltante) {
			s.log.Error().Err(err).Msg("obtener usuario actual")
		}
		s.reemplazar(nil, "")
		return
	}
	s.reemplazar(identidad, token)
}

// SignIn delega en el Gateway. En éxito reemplaza la identidad y recomputa el
// flag de rol; en fallo la identidad previa queda intacta. Nunca lanza.
func (s *SessionStore) SignIn(ctx context.Context, email, password string) Resultado {
	s.setCargando(true)
	defer s.setCargando(false)

	sesion, err := s.gw.SignInConPassword(ctx, email, password)
	if err != nil {
		return Resultado{OK: false, Error: err.Error()}
	}
	s.reemplazar(&sesion.Identidad, sesion.Token)
	return Resultado{OK: true, Identidad: &sesion.Identidad, Token: sesion.Token}
}

// SignUp solo está permitido al SuperAdministrador: si el flag de rol vigente
// no es privilegiado falla de inmediato, sin llamada de red. La sesión actual
// no se reemplaza por la identidad creada.
func (s *SessionStore) SignUp(ctx context.Context, email, password string, perfil Perfil) Resultado {
	s.mu.RLock()
	privilegiado := s.esSuperAdmin
	s.mu.RUnlock()
	if !privilegiado {
		return Resultado{OK: false, Error: "solo el SuperAdministrador puede registrar usuarios"}
	}

	s.setCargando(true)
	defer s.setCargando(false)

	identidad, err := s.gw.SignUp(ctx, email, password, perfil)
	if err != nil {
		return Resultado{OK: false, Error: err.Error()}
	}
	return Resultado{OK: true, Identidad: identidad}
}

// SignOut delega en el Gateway y limpia identidad y flag incondicionalmente,
// aunque la llamada falle: un fallo remoto no debe dejar la sesión "pegada".
func (s *SessionStore) SignOut(ctx context.Context) Resultado {
	s.setCargando(true)
	defer s.setCargando(false)

	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	err := s.gw.SignOut(ctx, token)
	s.reemplazar(nil, "")
	if err != nil {
		return Resultado{OK: false, Error: err.Error()}
	}
	return Resultado{OK: true}
}

// Observar registra un observador de cambios de identidad.
func (s *SessionStore) Observar(obs Observador) {
	s.mu.Lock()
	s.observadores = append(s.observadores, obs)
	s.mu.Unlock()
}

// Identidad devuelve la identidad vigente (nil si anónima).
func (s *SessionStore) Identidad() *Identidad {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identidad
}

// EsSuperAdmin devuelve el flag de rol vigente.
func (s *SessionStore) EsSuperAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.esSuperAdmin
}

// Cargando informa si hay una operación en vuelo.
func (s *SessionStore) Cargando() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cargando
}

// Estado devuelve el estado vigente de la máquina.
func (s *SessionStore) Estado() Estado {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cargando {
		return EstadoCargando
	}
	return s.estado
}

// onAuthStateChange procesa cada evento del Gateway: reemplaza (o limpia) la
// identidad, recomputa el flag y limpia el flag de carga. Los eventos de
// registro de cuentas nuevas no tocan la sesión vigente.
func (s *SessionStore) onAuthStateChange(evento Evento, sesion *Sesion) {
	if evento == EventoRegistro {
		return
	}
	if sesion == nil {
		s.reemplazar(nil, "")
	} else {
		s.reemplazar(&sesion.Identidad, sesion.Token)
	}
	s.setCargando(false)
}

// reemplazar sustituye la identidad, recomputa el flag de rol y notifica a los
// observadores fuera del lock.
func (s *SessionStore) reemplazar(identidad *Identidad, token string) {
	s.mu.Lock()
	s.identidad = identidad
	s.token = token
	if identidad == nil {
		s.esSuperAdmin = false
		s.estado = EstadoAnonima
	} else {
		s.esSuperAdmin = s.gate.EsSuperAdmin(identidad.Email)
		s.estado = EstadoAutenticada
	}
	esSuperAdmin := s.esSuperAdmin
	observadores := make([]Observador, len(s.observadores))
	copy(observadores, s.observadores)
	s.mu.Unlock()

	for _, obs := range observadores {
		obs(identidad, esSuperAdmin)
	}
}

func (s *SessionStore) setCargando(v bool) {
	s.mu.Lock()
	s.cargando = v
	s.mu.Unlock()
}
