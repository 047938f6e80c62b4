package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/instaguera/turnos-api/internal/domain/turno"
	"github.com/instaguera/turnos-api/internal/httperr"
	"github.com/instaguera/turnos-api/internal/models"
)

type TurnoGormRepository struct {
	db *gorm.DB
}

func NewTurnoGormRepository(db *gorm.DB) *TurnoGormRepository {
	return &TurnoGormRepository{db: db}
}

// --------------------------------------------------
// Turno
// --------------------------------------------------

func (r *TurnoGormRepository) List(
	ctx context.Context,
) ([]models.Turno, error) {

	var turnos []models.Turno
	if err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Dueno").
		Find(&turnos).Error; err != nil {
		return nil, err
	}
	return turnos, nil
}

func (r *TurnoGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Turno, error) {

	var t models.Turno
	if err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Dueno").
		First(&t, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("turno_not_found")
		}
		return nil, err
	}
	return &t, nil
}

func (r *TurnoGormRepository) Create(
	ctx context.Context,
	t *models.Turno,
) error {
	// Omit evita que gorm intente escribir los usuarios anidados.
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(t).Error
}

func (r *TurnoGormRepository) Save(
	ctx context.Context,
	t *models.Turno,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(t).Error
}

func (r *TurnoGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Turno{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("turno_not_found")
	}
	return nil
}

// --------------------------------------------------
// Referencias
// --------------------------------------------------

func (r *TurnoGormRepository) UsuarioExists(
	ctx context.Context,
	id uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Usuario{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Compile-time check
var _ domain.Repository = (*TurnoGormRepository)(nil)
