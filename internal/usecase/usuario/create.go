package usuario

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/instaguera/turnos-api/internal/domain/usuario"
	"github.com/instaguera/turnos-api/internal/models"
	"github.com/instaguera/turnos-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateUsuarioInput struct {
	Nombre   string
	Apellido string
	Celular  string
	Username string
	Password string
	Email    string
	Role     string
}

// ======================================================
// USE CASE
// ======================================================

// CreateUsuario es el alta directa (sin pre-chequeo de email duplicado,
// que queda en manos del índice único). El registro público pasa por
// usecase/auth.Register.
type CreateUsuario struct {
	repo domain.Repository
}

func NewCreateUsuario(repo domain.Repository) *CreateUsuario {
	return &CreateUsuario{repo: repo}
}

func (uc *CreateUsuario) Execute(
	ctx context.Context,
	in CreateUsuarioInput,
) (*models.Usuario, error) {

	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword(
		[]byte(in.Password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	u := &models.Usuario{
		Nombre:       in.Nombre,
		Apellido:     in.Apellido,
		Celular:      in.Celular,
		Username:     in.Username,
		Email:        validators.NormalizeEmail(in.Email),
		PasswordHash: string(hashed),
		Role:         string(role),
	}

	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}
