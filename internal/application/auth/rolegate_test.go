package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ligaspequenas/liga-api/internal/application/auth"
)

func TestRoleGate_IgualdadExacta(t *testing.T) {
	gate := auth.NewRoleGate("superadmin@ligaspequenas.com")

	assert.True(t, gate.EsSuperAdmin("superadmin@ligaspequenas.com"))
	assert.False(t, gate.EsSuperAdmin("SuperAdmin@ligaspequenas.com"), "sensible a mayúsculas")
	assert.False(t, gate.EsSuperAdmin(" superadmin@ligaspequenas.com"), "sin recorte de espacios")
	assert.False(t, gate.EsSuperAdmin("otro@ligaspequenas.com"))
	assert.False(t, gate.EsSuperAdmin(""))
}

func TestRoleGate_SinCorreoConfigurado_NoPrivilegiaANadie(t *testing.T) {
	gate := auth.NewRoleGate("")

	assert.False(t, gate.EsSuperAdmin(""))
	assert.False(t, gate.EsSuperAdmin("superadmin@ligaspequenas.com"))
}
