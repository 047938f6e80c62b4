package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/instaguera/turnos-api/internal/domain/usuario"
	"github.com/instaguera/turnos-api/internal/models"
)

func TestListClientesEndpoint(t *testing.T) {
	r, store := newTestRouter(t)
	seedUsuario(t, store, "tattoo_master", "dueno@instaguera.com", domain.RoleDueno)
	seedUsuario(t, store, "juanito", "cliente1@instaguera.com", domain.RoleCliente)
	seedUsuario(t, store, "pedrito", "cliente2@instaguera.com", domain.RoleCliente)

	w := doJSON(t, r, http.MethodGet, "/usuarios/clientes", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var clientes []models.Usuario
	decodeJSON(t, w, &clientes)

	require.Len(t, clientes, 2)
	for _, u := range clientes {
		assert.Equal(t, string(domain.RoleCliente), u.Role)
	}
}

func TestCreateUsuarioEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/usuarios", gin.H{
		"nombre":   "Carlos",
		"apellido": "Gómez",
		"username": "tattoo_master",
		"password": "secreto123",
		"email":    "dueno@instaguera.com",
		"role":     "DUENO",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var u models.Usuario
	decodeJSON(t, w, &u)
	assert.NotZero(t, u.ID)
	assert.Equal(t, "DUENO", u.Role)

	// Rol fuera del conjunto cerrado.
	w = doJSON(t, r, http.MethodPost, "/usuarios", gin.H{
		"username": "otro",
		"password": "secreto123",
		"email":    "otro@instaguera.com",
		"role":     "ADMIN",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_role", errorCode(t, w))
}

func TestUpdateUsuarioEndpoint(t *testing.T) {
	r, store := newTestRouter(t)
	id := seedUsuario(t, store, "juanito", "juan@instaguera.com", domain.RoleCliente)
	store.usuarios[id].Nombre = "Juan"
	store.usuarios[id].Celular = "1199887766"

	// Sólo el celular: nombre, username y email quedan como estaban.
	w := doJSON(t, r, http.MethodPatch, fmt.Sprintf("/usuarios/%d", id), gin.H{
		"celular": "1133445566",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var u models.Usuario
	decodeJSON(t, w, &u)
	assert.Equal(t, "1133445566", u.Celular)
	assert.Equal(t, "Juan", u.Nombre)
	assert.Equal(t, "juanito", u.Username)
	assert.Equal(t, "juan@instaguera.com", u.Email)
}

func TestUpdateUsuarioEndpointNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/usuarios/99", gin.H{"nombre": "Nadie"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "usuario_not_found", errorCode(t, w))
}

func TestUpdateUsuarioEndpointBadID(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/usuarios/abc", gin.H{"nombre": "X"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_id", errorCode(t, w))
}

func TestDeleteUsuarioEndpointCascade(t *testing.T) {
	r, store := newTestRouter(t)
	duenoID := seedUsuario(t, store, "tattoo_master", "dueno@instaguera.com", domain.RoleDueno)
	clienteID := seedUsuario(t, store, "juanito", "cliente@instaguera.com", domain.RoleCliente)

	// Un turno colgado del cliente.
	store.turnoSeq++
	store.turnos[store.turnoSeq] = &models.Turno{
		ID:        store.turnoSeq,
		Estado:    "SOLICITADO",
		ClienteID: clienteID,
		DuenoID:   duenoID,
	}

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/usuarios/%d", clienteID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Usuario eliminado", w.Body.String())

	// El turno se fue con el usuario.
	assert.Empty(t, store.turnos)

	// Borrar de nuevo: ya no está.
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/usuarios/%d", clienteID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "usuario_not_found", errorCode(t, w))
}
