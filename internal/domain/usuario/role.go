package usuario

import (
	"strings"

	"github.com/instaguera/turnos-api/internal/httperr"
)

// ===============================
// Usuario Role
// ===============================

type Role string

const (
	RoleCliente Role = "CLIENTE"
	RoleDueno   Role = "DUENO"
)

// ParseRole acepta el nombre del rol sin distinguir mayúsculas.
func ParseRole(raw string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(RoleCliente):
		return RoleCliente, nil
	case string(RoleDueno):
		return RoleDueno, nil
	default:
		return "", httperr.ErrBusiness("invalid_role")
	}
}

func IsValidRole(raw string) bool {
	_, err := ParseRole(raw)
	return err == nil
}
