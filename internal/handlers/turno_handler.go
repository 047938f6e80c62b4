package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/instaguera/turnos-api/internal/httperr"
	"github.com/instaguera/turnos-api/internal/httpresp"
	ucturno "github.com/instaguera/turnos-api/internal/usecase/turno"
)

// ======================================================
// HANDLER
// ======================================================

type TurnoHandler struct {
	listUC   *ucturno.ListTurnos
	getUC    *ucturno.GetTurno
	createUC *ucturno.CreateTurno
	updateUC *ucturno.UpdateTurno
	deleteUC *ucturno.DeleteTurno
	log      *logrus.Logger
}

func NewTurnoHandler(
	listUC *ucturno.ListTurnos,
	getUC *ucturno.GetTurno,
	createUC *ucturno.CreateTurno,
	updateUC *ucturno.UpdateTurno,
	deleteUC *ucturno.DeleteTurno,
	log *logrus.Logger,
) *TurnoHandler {
	return &TurnoHandler{
		listUC:   listUC,
		getUC:    getUC,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		log:      log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// UsuarioRef es la forma en que el frontend referencia cliente y dueño:
// un objeto anidado con sólo el id ({"cliente": {"id": 3}}).
type UsuarioRef struct {
	ID uint `json:"id" binding:"required"`
}

type CreateTurnoRequest struct {
	FechaHora   time.Time   `json:"fechaHora" binding:"required"`
	Estado      *string     `json:"estado"`
	Descripcion string      `json:"descripcion"`
	Cliente     *UsuarioRef `json:"cliente" binding:"required"`
	Dueno       *UsuarioRef `json:"dueno" binding:"required"`
}

type UpdateTurnoRequest struct {
	FechaHora   *time.Time  `json:"fechaHora,omitempty"`
	Estado      *string     `json:"estado,omitempty"`
	Descripcion *string     `json:"descripcion,omitempty"`
	Cliente     *UsuarioRef `json:"cliente,omitempty"`
	Dueno       *UsuarioRef `json:"dueno,omitempty"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *TurnoHandler) List(c *gin.Context) {
	turnos, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("failed to list turnos")
		httperr.Internal(c, "failed_to_list_turnos", "Error al listar turnos.")
		return
	}

	httpresp.OK(c, turnos)
}

func (h *TurnoHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	t, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		if httperr.IsBusiness(err, "turno_not_found") {
			httperr.NotFound(c, "turno_not_found", "Turno no encontrado.")
			return
		}
		h.log.WithError(err).Error("failed to get turno")
		httperr.Internal(c, "failed_to_get_turno", "Error al buscar turno.")
		return
	}

	httpresp.OK(c, t)
}

func (h *TurnoHandler) Create(c *gin.Context) {
	var req CreateTurnoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	t, err := h.createUC.Execute(c.Request.Context(), ucturno.CreateTurnoInput{
		FechaHora:   req.FechaHora,
		Descripcion: req.Descripcion,
		ClienteID:   req.Cliente.ID,
		DuenoID:     req.Dueno.ID,
		Estado:      req.Estado,
	})
	if err != nil {
		h.writeTurnoError(c, err, "failed_to_create_turno", "Error al crear turno.")
		return
	}

	httpresp.OK(c, t)
}

func (h *TurnoHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateTurnoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	in := ucturno.UpdateTurnoInput{
		FechaHora:   req.FechaHora,
		Estado:      req.Estado,
		Descripcion: req.Descripcion,
	}
	if req.Cliente != nil {
		in.ClienteID = &req.Cliente.ID
	}
	if req.Dueno != nil {
		in.DuenoID = &req.Dueno.ID
	}

	t, err := h.updateUC.Execute(c.Request.Context(), id, in)
	if err != nil {
		h.writeTurnoError(c, err, "failed_to_update_turno", "Error al actualizar turno.")
		return
	}

	httpresp.OK(c, t)
}

func (h *TurnoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		if httperr.IsBusiness(err, "turno_not_found") {
			httperr.NotFound(c, "turno_not_found", "Turno no encontrado.")
			return
		}
		h.log.WithError(err).Error("failed to delete turno")
		httperr.Internal(c, "failed_to_delete_turno", "Error al eliminar turno.")
		return
	}

	httpresp.NoContent(c)
}

// ======================================================
// HELPERS
// ======================================================

func (h *TurnoHandler) writeTurnoError(c *gin.Context, err error, code, msg string) {
	switch {
	case httperr.IsBusiness(err, "turno_not_found"):
		httperr.NotFound(c, "turno_not_found", "Turno no encontrado.")
	case httperr.IsBusiness(err, "invalid_estado"):
		httperr.BadRequest(c, "invalid_estado", "Estado inválido.")
	case httperr.IsBusiness(err, "descripcion_too_long"):
		httperr.BadRequest(c, "descripcion_too_long", "La descripción supera los 500 caracteres.")
	case httperr.IsBusiness(err, "usuario_ref_invalid"):
		httperr.BadRequest(c, "usuario_ref_invalid", "El cliente o el dueño referenciado no existe.")
	default:
		h.log.WithError(err).Error(code)
		httperr.Internal(c, code, msg)
	}
}
