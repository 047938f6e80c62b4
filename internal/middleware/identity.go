package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/instaguera/turnos-api/internal/token"
)

const (
	ContextEmail = "authEmail"
	ContextRole  = "authRole"
)

// Identity es el guard de autorización, y es deliberadamente permisivo:
// ninguna ruta exige token. Si viene un bearer válido, deja la identidad
// en el contexto para quien la quiera; si no viene o es inválido, la
// request sigue igual. Replica el permitAll() de la configuración de
// seguridad original como decisión visible, no como omisión.
func Identity(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		raw, ok := token.FromAuthorizationHeader(authHeader)
		if !ok {
			c.Next()
			return
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}
