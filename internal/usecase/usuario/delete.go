package usuario

import (
	"context"

	domain "github.com/instaguera/turnos-api/internal/domain/usuario"
)

// DeleteUsuario borra la cuenta y, en la misma transacción, todos los
// turnos que la referencian como cliente o como dueño.
type DeleteUsuario struct {
	repo domain.Repository
}

func NewDeleteUsuario(repo domain.Repository) *DeleteUsuario {
	return &DeleteUsuario{repo: repo}
}

func (uc *DeleteUsuario) Execute(
	ctx context.Context,
	id uint,
) error {
	return uc.repo.DeleteWithTurnos(ctx, id)
}
