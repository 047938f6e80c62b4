package turno

import (
	"context"

	domain "github.com/instaguera/turnos-api/internal/domain/turno"
)

type DeleteTurno struct {
	repo domain.Repository
}

func NewDeleteTurno(repo domain.Repository) *DeleteTurno {
	return &DeleteTurno{repo: repo}
}

func (uc *DeleteTurno) Execute(
	ctx context.Context,
	id uint,
) error {
	return uc.repo.Delete(ctx, id)
}
