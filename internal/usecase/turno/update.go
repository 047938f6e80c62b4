package turno

import (
	"context"
	"time"
	"unicode/utf8"

	domain "github.com/instaguera/turnos-api/internal/domain/turno"
	"github.com/instaguera/turnos-api/internal/httperr"
	"github.com/instaguera/turnos-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// Cada campo se pisa sólo si viene no-nil; lo omitido queda intacto.
type UpdateTurnoInput struct {
	FechaHora   *time.Time
	Estado      *string
	Descripcion *string
	ClienteID   *uint
	DuenoID     *uint
}

// ======================================================
// USE CASE
// ======================================================

type UpdateTurno struct {
	repo domain.Repository
}

func NewUpdateTurno(repo domain.Repository) *UpdateTurno {
	return &UpdateTurno{repo: repo}
}

func (uc *UpdateTurno) Execute(
	ctx context.Context,
	id uint,
	in UpdateTurnoInput,
) (*models.Turno, error) {

	t, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.FechaHora != nil {
		t.FechaHora = *in.FechaHora
	}

	if in.Estado != nil {
		// Cualquier estado del conjunto cerrado es alcanzable desde
		// cualquier otro; no hay workflow de transiciones.
		estado, err := domain.ParseEstado(*in.Estado)
		if err != nil {
			return nil, err
		}
		t.Estado = string(estado)
	}

	if in.Descripcion != nil {
		if utf8.RuneCountInString(*in.Descripcion) > domain.MaxDescripcionLen {
			return nil, httperr.ErrBusiness("descripcion_too_long")
		}
		t.Descripcion = *in.Descripcion
	}

	if in.ClienteID != nil {
		if err := uc.assertUsuario(ctx, *in.ClienteID); err != nil {
			return nil, err
		}
		t.ClienteID = *in.ClienteID
	}

	if in.DuenoID != nil {
		if err := uc.assertUsuario(ctx, *in.DuenoID); err != nil {
			return nil, err
		}
		t.DuenoID = *in.DuenoID
	}

	if err := uc.repo.Save(ctx, t); err != nil {
		return nil, err
	}

	return uc.repo.GetByID(ctx, t.ID)
}

func (uc *UpdateTurno) assertUsuario(ctx context.Context, id uint) error {
	exists, err := uc.repo.UsuarioExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return httperr.ErrBusiness("usuario_ref_invalid")
	}
	return nil
}
