package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	domain "github.com/instaguera/turnos-api/internal/domain/usuario"
	"github.com/instaguera/turnos-api/internal/httperr"
	"github.com/instaguera/turnos-api/internal/httpresp"
	ucusuario "github.com/instaguera/turnos-api/internal/usecase/usuario"
)

// ======================================================
// HANDLER
// ======================================================

type UsuarioHandler struct {
	listUC       *ucusuario.ListUsuarios
	listByRoleUC *ucusuario.ListUsuariosByRole
	createUC     *ucusuario.CreateUsuario
	updateUC     *ucusuario.UpdateUsuario
	deleteUC     *ucusuario.DeleteUsuario
	log          *logrus.Logger
}

func NewUsuarioHandler(
	listUC *ucusuario.ListUsuarios,
	listByRoleUC *ucusuario.ListUsuariosByRole,
	createUC *ucusuario.CreateUsuario,
	updateUC *ucusuario.UpdateUsuario,
	deleteUC *ucusuario.DeleteUsuario,
	log *logrus.Logger,
) *UsuarioHandler {
	return &UsuarioHandler{
		listUC:       listUC,
		listByRoleUC: listByRoleUC,
		createUC:     createUC,
		updateUC:     updateUC,
		deleteUC:     deleteUC,
		log:          log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateUsuarioRequest struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Celular  string `json:"celular"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"required"`
}

type UpdateUsuarioRequest struct {
	Nombre   *string `json:"nombre,omitempty"`
	Apellido *string `json:"apellido,omitempty"`
	Celular  *string `json:"celular,omitempty"`
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *UsuarioHandler) List(c *gin.Context) {
	usuarios, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("failed to list usuarios")
		httperr.Internal(c, "failed_to_list_usuarios", "Error al listar usuarios.")
		return
	}

	httpresp.OK(c, usuarios)
}

// ListClientes devuelve sólo las cuentas con rol CLIENTE; lo usa el
// panel del dueño para elegir a quién asignarle un turno.
func (h *UsuarioHandler) ListClientes(c *gin.Context) {
	clientes, err := h.listByRoleUC.Execute(c.Request.Context(), domain.RoleCliente)
	if err != nil {
		h.log.WithError(err).Error("failed to list clientes")
		httperr.Internal(c, "failed_to_list_usuarios", "Error al listar clientes.")
		return
	}

	httpresp.OK(c, clientes)
}

func (h *UsuarioHandler) Create(c *gin.Context) {
	var req CreateUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	u, err := h.createUC.Execute(c.Request.Context(), ucusuario.CreateUsuarioInput{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Celular:  req.Celular,
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Role:     req.Role,
	})
	if err != nil {
		if httperr.IsBusiness(err, "invalid_role") {
			httperr.BadRequest(c, "invalid_role", "Rol inválido: debe ser CLIENTE o DUENO.")
			return
		}
		h.log.WithError(err).Error("failed to create usuario")
		httperr.Internal(c, "failed_to_create_usuario", "Error al crear usuario.")
		return
	}

	httpresp.OK(c, u)
}

func (h *UsuarioHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	u, err := h.updateUC.Execute(c.Request.Context(), id, ucusuario.UpdateUsuarioInput{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Celular:  req.Celular,
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		if httperr.IsBusiness(err, "usuario_not_found") {
			httperr.NotFound(c, "usuario_not_found", "Usuario no encontrado.")
			return
		}
		h.log.WithError(err).Error("failed to update usuario")
		httperr.Internal(c, "failed_to_update_usuario", "Error al actualizar usuario.")
		return
	}

	httpresp.OK(c, u)
}

func (h *UsuarioHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		if httperr.IsBusiness(err, "usuario_not_found") {
			httperr.NotFound(c, "usuario_not_found", "Usuario no encontrado.")
			return
		}
		h.log.WithError(err).Error("failed to delete usuario")
		httperr.Internal(c, "failed_to_delete_usuario", "Error al eliminar usuario.")
		return
	}

	httpresp.Message(c, "Usuario eliminado")
}

// ======================================================
// HELPERS
// ======================================================

func parseID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Id inválido.")
		return 0, false
	}
	return uint(id), true
}
