package usuario

import (
	"context"

	"github.com/instaguera/turnos-api/internal/models"
)

type Repository interface {
	// -------- Lookups --------
	FindByID(
		ctx context.Context,
		id uint,
	) (*models.Usuario, error)

	FindByEmail(
		ctx context.Context,
		email string,
	) (*models.Usuario, error)

	EmailExists(
		ctx context.Context,
		email string,
	) (bool, error)

	// -------- Listing --------
	List(
		ctx context.Context,
	) ([]models.Usuario, error)

	ListByRole(
		ctx context.Context,
		role Role,
	) ([]models.Usuario, error)

	// -------- Writes --------
	Create(
		ctx context.Context,
		u *models.Usuario,
	) error

	Save(
		ctx context.Context,
		u *models.Usuario,
	) error

	// DeleteWithTurnos borra primero los turnos donde el usuario participa
	// (como cliente o como dueño) y después el usuario, en una transacción.
	DeleteWithTurnos(
		ctx context.Context,
		id uint,
	) error
}
