package turno

import (
	"strings"

	"github.com/instaguera/turnos-api/internal/httperr"
)

// ===============================
// Turno Estado
// ===============================

type Estado string

const (
	EstadoSolicitado Estado = "SOLICITADO"
	EstadoConfirmado Estado = "CONFIRMADO"
	EstadoCancelado  Estado = "CANCELADO"
	EstadoCompletado Estado = "COMPLETADO"
)

// No hay workflow de transiciones: cualquier estado puede pasar a cualquier
// otro vía update. Sólo se valida la pertenencia al conjunto cerrado.
func ParseEstado(raw string) (Estado, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(EstadoSolicitado):
		return EstadoSolicitado, nil
	case string(EstadoConfirmado):
		return EstadoConfirmado, nil
	case string(EstadoCancelado):
		return EstadoCancelado, nil
	case string(EstadoCompletado):
		return EstadoCompletado, nil
	default:
		return "", httperr.ErrBusiness("invalid_estado")
	}
}

// InitialEstado es el estado asignado cuando la creación no trae uno.
func InitialEstado() Estado {
	return EstadoSolicitado
}

// MaxDescripcionLen limita la descripción libre de un turno, contada en
// caracteres (varchar(500)), no en bytes.
const MaxDescripcionLen = 500
