package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/instaguera/turnos-api/internal/httperr"
)

// LoginRateLimit frena fuerza bruta contra /auth/login por IP. Contador
// atómico en redis con ventana fija; si redis no está o falla, se abre
// (la API nunca se cae por el limiter). Con rdb nil queda desactivado.
func LoginRateLimit(rdb *redis.Client, max int, window time.Duration) gin.HandlerFunc {
	if rdb == nil || max <= 0 || window <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		key := "rl:login:" + ip

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(ctx, key, window)
		}

		if count > int64(max) {
			httperr.Write(
				c,
				http.StatusTooManyRequests,
				"too_many_attempts",
				"Demasiados intentos de login, probá de nuevo en un rato.",
			)
			c.Abort()
			return
		}

		c.Next()
	}
}
