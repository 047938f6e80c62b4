package seed

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	domainturno "github.com/instaguera/turnos-api/internal/domain/turno"
	domainusuario "github.com/instaguera/turnos-api/internal/domain/usuario"
	"github.com/instaguera/turnos-api/internal/models"
)

// Run inserta los datos de demo (un dueño, un cliente y un turno de
// prueba) sólo cuando la tabla usuario está vacía. El turno se agenda
// en el reloj local del estudio.
func Run(db *gorm.DB, log *logrus.Logger, loc *time.Location) error {
	var count int64
	if err := db.Model(&models.Usuario{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("seed: la base ya contiene datos, no se insertaron nuevos")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	dueno := models.Usuario{
		Nombre:       "Carlos",
		Apellido:     "Gómez",
		Celular:      "1122334455",
		Username:     "tattoo_master",
		Email:        "dueno@instaguera.com",
		PasswordHash: string(hash),
		Role:         string(domainusuario.RoleDueno),
	}

	cliente := models.Usuario{
		Nombre:       "Juan",
		Apellido:     "Pérez",
		Celular:      "1199887766",
		Username:     "juanito",
		Email:        "cliente@instaguera.com",
		PasswordHash: string(hash),
		Role:         string(domainusuario.RoleCliente),
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&dueno).Error; err != nil {
			return err
		}
		if err := tx.Create(&cliente).Error; err != nil {
			return err
		}

		turno := models.Turno{
			FechaHora:   time.Now().In(loc).Add(48 * time.Hour),
			Estado:      string(domainturno.EstadoSolicitado),
			Descripcion: "Tatuaje de dragón en el brazo",
			ClienteID:   cliente.ID,
			DuenoID:     dueno.ID,
		}
		if err := tx.Create(&turno).Error; err != nil {
			return err
		}

		log.Info("seed: datos de prueba insertados")
		return nil
	})
}
