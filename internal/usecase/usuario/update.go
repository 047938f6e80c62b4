package usuario

import (
	"context"

	domain "github.com/instaguera/turnos-api/internal/domain/usuario"
	"github.com/instaguera/turnos-api/internal/models"
	"github.com/instaguera/turnos-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

// Punteros nil significan "campo omitido": el valor guardado no se toca.
// Password y role no son mutables por esta vía.
type UpdateUsuarioInput struct {
	Nombre   *string
	Apellido *string
	Celular  *string
	Username *string
	Email    *string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateUsuario struct {
	repo domain.Repository
}

func NewUpdateUsuario(repo domain.Repository) *UpdateUsuario {
	return &UpdateUsuario{repo: repo}
}

func (uc *UpdateUsuario) Execute(
	ctx context.Context,
	id uint,
	in UpdateUsuarioInput,
) (*models.Usuario, error) {

	u, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Nombre != nil {
		u.Nombre = *in.Nombre
	}
	if in.Apellido != nil {
		u.Apellido = *in.Apellido
	}
	if in.Celular != nil {
		u.Celular = *in.Celular
	}
	if in.Username != nil {
		u.Username = *in.Username
	}
	if in.Email != nil {
		u.Email = validators.NormalizeEmail(*in.Email)
	}

	if err := uc.repo.Save(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}
