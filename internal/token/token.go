package token

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/instaguera/turnos-api/internal/httperr"
)

// Claims es lo que viaja dentro del bearer token: el email como subject,
// el rol, y la ventana de expiración. No hay estado del lado del servidor.
type Claims struct {
	Email string
	Role  string
}

type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

func (m *Manager) Issue(email, role string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(m.ttl)

	claims := jwt.MapClaims{
		"sub":  email,
		"role": role,
		"exp":  exp.Unix(),
		"iat":  now.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Verify valida firma y expiración y devuelve los claims.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return m.secret, nil
	})
	if err != nil || !t.Valid {
		return nil, httperr.ErrBusiness("invalid_token")
	}

	mapClaims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_token_claims")
	}

	email, _ := mapClaims["sub"].(string)
	role, _ := mapClaims["role"].(string)
	if email == "" {
		return nil, httperr.ErrBusiness("invalid_token_claims")
	}

	return &Claims{Email: email, Role: role}, nil
}

// FromAuthorizationHeader extrae el token de un header "Bearer <token>".
func FromAuthorizationHeader(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
