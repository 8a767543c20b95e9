package auth

// RoleGate deriva "es privilegiado" de la identidad. Es un predicado puro:
// se reevalúa en cada cambio de identidad y nunca se muta por separado.
//
// El modelo es deliberadamente mínimo: un único correo configurado porta todos
// los privilegios de SuperAdministrador. La comparación es igualdad exacta de
// strings, sensible a mayúsculas y sin recorte de espacios.
type RoleGate struct {
	superAdminEmail string
}

// NewRoleGate construye el gate con el correo privilegiado configurado.
func NewRoleGate(superAdminEmail string) RoleGate {
	return RoleGate{superAdminEmail: superAdminEmail}
}

// EsSuperAdmin informa si el email corresponde al SuperAdministrador.
// Un gate sin correo configurado no privilegia a nadie.
func (g RoleGate) EsSuperAdmin(email string) bool {
	return g.superAdminEmail != "" && email == g.superAdminEmail
}
