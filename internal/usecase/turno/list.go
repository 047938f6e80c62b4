package turno

import (
	"context"

	domain "github.com/instaguera/turnos-api/internal/domain/turno"
	"github.com/instaguera/turnos-api/internal/models"
)

type ListTurnos struct {
	repo domain.Repository
}

func NewListTurnos(repo domain.Repository) *ListTurnos {
	return &ListTurnos{repo: repo}
}

func (uc *ListTurnos) Execute(
	ctx context.Context,
) ([]models.Turno, error) {
	return uc.repo.List(ctx)
}
