package usuario

import (
	"context"

	domain "github.com/instaguera/turnos-api/internal/domain/usuario"
	"github.com/instaguera/turnos-api/internal/models"
)

type ListUsuariosByRole struct {
	repo domain.Repository
}

func NewListUsuariosByRole(repo domain.Repository) *ListUsuariosByRole {
	return &ListUsuariosByRole{repo: repo}
}

func (uc *ListUsuariosByRole) Execute(
	ctx context.Context,
	role domain.Role,
) ([]models.Usuario, error) {
	return uc.repo.ListByRole(ctx, role)
}
