package validators

import (
	"net"
	"strings"
)

// NormalizeEmail deja el email en la forma canónica que se guarda y
// se compara: minúsculas y sin espacios alrededor.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmailDomainValid chequea que el dominio del email resuelva (MX o A).
// Es un chequeo best-effort para el registro, no una validación RFC.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
