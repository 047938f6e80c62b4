package turno

import (
	"context"

	domain "github.com/instaguera/turnos-api/internal/domain/turno"
	"github.com/instaguera/turnos-api/internal/models"
)

type GetTurno struct {
	repo domain.Repository
}

func NewGetTurno(repo domain.Repository) *GetTurno {
	return &GetTurno{repo: repo}
}

func (uc *GetTurno) Execute(
	ctx context.Context,
	id uint,
) (*models.Turno, error) {
	return uc.repo.GetByID(ctx, id)
}
