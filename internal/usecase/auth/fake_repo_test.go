package auth

import (
	"context"

	domain "github.com/instaguera/turnos-api/internal/domain/usuario"
	"github.com/instaguera/turnos-api/internal/httperr"
	"github.com/instaguera/turnos-api/internal/models"
)

// fakeUsuarioRepo guarda usuarios en memoria, indexados por email.
type fakeUsuarioRepo struct {
	seq      uint
	usuarios map[string]*models.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: map[string]*models.Usuario{}}
}

func (f *fakeUsuarioRepo) FindByID(ctx context.Context, id uint) (*models.Usuario, error) {
	for _, u := range f.usuarios {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, httperr.ErrBusiness("usuario_not_found")
}

func (f *fakeUsuarioRepo) FindByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	if u, ok := f.usuarios[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, httperr.ErrBusiness("usuario_not_found")
}

func (f *fakeUsuarioRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, ok := f.usuarios[email]
	return ok, nil
}

func (f *fakeUsuarioRepo) List(ctx context.Context) ([]models.Usuario, error) {
	var out []models.Usuario
	for _, u := range f.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUsuarioRepo) ListByRole(ctx context.Context, role domain.Role) ([]models.Usuario, error) {
	var out []models.Usuario
	for _, u := range f.usuarios {
		if u.Role == string(role) {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUsuarioRepo) Create(ctx context.Context, u *models.Usuario) error {
	f.seq++
	u.ID = f.seq
	cp := *u
	f.usuarios[u.Email] = &cp
	return nil
}

func (f *fakeUsuarioRepo) Save(ctx context.Context, u *models.Usuario) error {
	cp := *u
	f.usuarios[u.Email] = &cp
	return nil
}

func (f *fakeUsuarioRepo) DeleteWithTurnos(ctx context.Context, id uint) error {
	for email, u := range f.usuarios {
		if u.ID == id {
			delete(f.usuarios, email)
			return nil
		}
	}
	return httperr.ErrBusiness("usuario_not_found")
}

var _ domain.Repository = (*fakeUsuarioRepo)(nil)
