package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/instaguera/turnos-api/internal/domain/usuario"
	"github.com/instaguera/turnos-api/internal/httperr"
	"github.com/instaguera/turnos-api/internal/models"
)

type UsuarioGormRepository struct {
	db *gorm.DB
}

func NewUsuarioGormRepository(db *gorm.DB) *UsuarioGormRepository {
	return &UsuarioGormRepository{db: db}
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *UsuarioGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Usuario, error) {

	var u models.Usuario
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("usuario_not_found")
		}
		return nil, err
	}
	return &u, nil
}

func (r *UsuarioGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.Usuario, error) {

	var u models.Usuario
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("usuario_not_found")
		}
		return nil, err
	}
	return &u, nil
}

func (r *UsuarioGormRepository) EmailExists(
	ctx context.Context,
	email string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Usuario{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *UsuarioGormRepository) List(
	ctx context.Context,
) ([]models.Usuario, error) {

	var usuarios []models.Usuario
	if err := r.db.WithContext(ctx).Find(&usuarios).Error; err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (r *UsuarioGormRepository) ListByRole(
	ctx context.Context,
	role domain.Role,
) ([]models.Usuario, error) {

	var usuarios []models.Usuario
	if err := r.db.WithContext(ctx).
		Where("role = ?", string(role)).
		Find(&usuarios).Error; err != nil {
		return nil, err
	}
	return usuarios, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *UsuarioGormRepository) Create(
	ctx context.Context,
	u *models.Usuario,
) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UsuarioGormRepository) Save(
	ctx context.Context,
	u *models.Usuario,
) error {
	return r.db.WithContext(ctx).Save(u).Error
}

// DeleteWithTurnos borra dependientes y después el padre, explícitamente,
// dentro de una transacción: un turno nunca debe quedar apuntando a un
// usuario borrado.
func (r *UsuarioGormRepository) DeleteWithTurnos(
	ctx context.Context,
	id uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("cliente_id = ? OR dueno_id = ?", id, id).
			Delete(&models.Turno{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&models.Usuario{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return httperr.ErrBusiness("usuario_not_found")
		}
		return nil
	})
}

// Compile-time check
var _ domain.Repository = (*UsuarioGormRepository)(nil)
