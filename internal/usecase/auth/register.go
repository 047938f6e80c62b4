package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/instaguera/turnos-api/internal/domain/usuario"
	"github.com/instaguera/turnos-api/internal/httperr"
	"github.com/instaguera/turnos-api/internal/models"
	"github.com/instaguera/turnos-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type RegisterInput struct {
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

type Register struct {
	repo          domain.Repository
	verifyDomains bool
}

func NewRegister(repo domain.Repository, verifyDomains bool) *Register {
	return &Register{repo: repo, verifyDomains: verifyDomains}
}

func (uc *Register) Execute(
	ctx context.Context,
	in RegisterInput,
) (*models.Usuario, error) {

	email := validators.NormalizeEmail(in.Email)

	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}

	if uc.verifyDomains && !validators.IsEmailDomainValid(email) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}

	exists, err := uc.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusiness("email_already_registered")
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
		Email:        email,
		PasswordHash: string(hashed),
		Role:         string(role),
	}

	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}
