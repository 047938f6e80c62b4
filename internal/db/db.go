package db

import (
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/instaguera/turnos-api/internal/config"
	"github.com/instaguera/turnos-api/internal/models"
)

func NewDB(cfg *config.Config, log *logrus.Logger) *gorm.DB {
	connCfg, err := pgx.ParseConfig(cfg.DBUrl)
	if err != nil {
		log.Fatalf("invalid DATABASE_URL: %v", err)
	}

	sqlDB := stdlib.OpenDB(*connCfg)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Usuario{},
		&models.Turno{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
