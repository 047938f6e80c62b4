package turno

import (
	"context"

	"github.com/instaguera/turnos-api/internal/models"
)

type Repository interface {
	// -------- Turno --------
	List(
		ctx context.Context,
	) ([]models.Turno, error)

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Turno, error)

	Create(
		ctx context.Context,
		t *models.Turno,
	) error

	Save(
		ctx context.Context,
		t *models.Turno,
	) error

	Delete(
		ctx context.Context,
		id uint,
	) error

	// -------- Referencias --------
	UsuarioExists(
		ctx context.Context,
		id uint,
	) (bool, error)
}
