package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Message responde el body de texto plano que el frontend original espera
// ("Usuario registrado con éxito", "Usuario eliminado").
func Message(c *gin.Context, msg string) {
	c.String(http.StatusOK, msg)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
