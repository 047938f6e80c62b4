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

type CreateTurnoInput struct {
	FechaHora   time.Time
	Descripcion string
	ClienteID   uint
	DuenoID     uint

	// Estado opcional; si viene nil el turno nace SOLICITADO.
	Estado *string
}

// ======================================================
// USE CASE
// ======================================================

type CreateTurno struct {
	repo domain.Repository
}

func NewCreateTurno(repo domain.Repository) *CreateTurno {
	return &CreateTurno{repo: repo}
}

func (uc *CreateTurno) Execute(
	ctx context.Context,
	in CreateTurnoInput,
) (*models.Turno, error) {

	estado := domain.InitialEstado()
	if in.Estado != nil {
		parsed, err := domain.ParseEstado(*in.Estado)
		if err != nil {
			return nil, err
		}
		estado = parsed
	}

	// El límite es en caracteres, no en bytes: las descripciones con
	// acentos no deben pagar por el multibyte de UTF-8.
	if utf8.RuneCountInString(in.Descripcion) > domain.MaxDescripcionLen {
		return nil, httperr.ErrBusiness("descripcion_too_long")
	}

	// Ambas referencias deben resolver a usuarios existentes al momento
	// de escribir. No hay chequeo de solapamiento de horarios.
	if err := uc.assertUsuario(ctx, in.ClienteID); err != nil {
		return nil, err
	}
	if err := uc.assertUsuario(ctx, in.DuenoID); err != nil {
		return nil, err
	}

	t := &models.Turno{
		FechaHora:   in.FechaHora,
		Estado:      string(estado),
		Descripcion: in.Descripcion,
		ClienteID:   in.ClienteID,
		DuenoID:     in.DuenoID,
	}

	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	// Recarga con cliente y dueño anidados para la respuesta.
	return uc.repo.GetByID(ctx, t.ID)
}

func (uc *CreateTurno) assertUsuario(ctx context.Context, id uint) error {
	exists, err := uc.repo.UsuarioExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return httperr.ErrBusiness("usuario_ref_invalid")
	}
	return nil
}
