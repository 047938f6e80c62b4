package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/instaguera/turnos-api/internal/domain/usuario"
	"github.com/instaguera/turnos-api/internal/httperr"
	"github.com/instaguera/turnos-api/internal/models"
	"github.com/instaguera/turnos-api/internal/token"
	"github.com/instaguera/turnos-api/internal/validators"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	Token   string
	Expiry  time.Time
	Usuario *models.Usuario
}

// ======================================================
// USE CASE
// ======================================================

type Login struct {
	repo   domain.Repository
	tokens *token.Manager
}

func NewLogin(repo domain.Repository, tokens *token.Manager) *Login {
	return &Login{repo: repo, tokens: tokens}
}

func (uc *Login) Execute(
	ctx context.Context,
	in LoginInput,
) (*LoginOutput, error) {

	email := validators.NormalizeEmail(in.Email)

	// El login es por email; el username es sólo un handle visible.
	u, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		if httperr.IsBusiness(err, "usuario_not_found") {
			// No revelamos si el email existe o no.
			return nil, httperr.ErrBusiness("invalid_credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(u.PasswordHash),
		[]byte(in.Password),
	); err != nil {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	tok, exp, err := uc.tokens.Issue(u.Email, u.Role)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Token:   tok,
		Expiry:  exp,
		Usuario: u,
	}, nil
}
