package usuario

import (
	"context"

	domain "github.com/instaguera/turnos-api/internal/domain/usuario"
	"github.com/instaguera/turnos-api/internal/models"
)

type ListUsuarios struct {
	repo domain.Repository
}

func NewListUsuarios(repo domain.Repository) *ListUsuarios {
	return &ListUsuarios{repo: repo}
}

func (uc *ListUsuarios) Execute(
	ctx context.Context,
) ([]models.Usuario, error) {
	return uc.repo.List(ctx)
}
