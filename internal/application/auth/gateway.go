// Package auth contiene el núcleo de sesión y autorización: el puerto del
// proveedor de identidad (Gateway), el almacén de sesión (SessionStore) y el
// predicado de SuperAdministrador (RoleGate).
package auth

import "context"

// Identidad es el principal autenticado tal como lo conoce el proveedor:
// id opaco + email. Sin material de contraseña.
type Identidad struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Perfil metadatos de registro de una cuenta.
type Perfil struct {
	Nombre          string `json:"nombre"`
	ApellidoPaterno string `json:"apellido_paterno"`
	ApellidoMaterno string `json:"apellido_materno,omitempty"`
	Telefono        string `json:"telefono,omitempty"`
}

// Sesion es el resultado de una autenticación: identidad + token portador.
type Sesion struct {
	Identidad Identidad
	Token     string
}

// Evento de cambio de estado de autenticación emitido por el Gateway.
type Evento string

const (
	EventoLogin    Evento = "SIGNED_IN"
	EventoLogout   Evento = "SIGNED_OUT"
	EventoRegistro Evento = "USER_CREATED"
)

// Suscripcion es el handle de una suscripción a eventos; Cancelar la libera.
// La liberación debe estar garantizada al desmontar al suscriptor.
type Suscripcion interface {
	Cancelar()
}

// Callback recibe cada evento de autenticación. sesion es nil en logout.
type Callback func(evento Evento, sesion *Sesion)

// Gateway es el contrato del proveedor de identidad externo (emite y valida
// credenciales, administra cuentas). CrearUsuario y ActualizarCredencial son
// operaciones privilegiadas de administración.
type Gateway interface {
	// UsuarioActual valida el token y devuelve la identidad de la sesión.
	// Devuelve domain.ErrSesionFaltante si no hay sesión activa (condición
	// normal, no debe registrarse como error).
	UsuarioActual(ctx context.Context, token string) (*Identidad, error)
	SignInConPassword(ctx context.Context, email, password string) (*Sesion, error)
	// SignUp crea una cuenta nueva. No autentica la sesión del llamador como
	// la identidad creada.
	SignUp(ctx context.Context, email, password string, perfil Perfil) (*Identidad, error)
	SignOut(ctx context.Context, token string) error
	OnAuthStateChange(cb Callback) Suscripcion

	// Solo administración.
	CrearUsuario(ctx context.Context, email, password string, perfil Perfil) (*Identidad, error)
	ActualizarCredencial(ctx context.Context, id, password string) error
}
