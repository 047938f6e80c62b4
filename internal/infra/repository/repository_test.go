package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupMockDB abre gorm contra una conexión sqlmock; los tests de este
// paquete validan el SQL emitido sin tocar un postgres real.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gdb, mock
}

func usuarioColumns() []string {
	return []string{
		"id", "nombre", "apellido", "celular",
		"username", "email", "password_hash", "role",
		"created_at", "updated_at",
	}
}

func usuarioRow(rows *sqlmock.Rows, id int64, email, role string) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(
		id, "Juan", "Pérez", "1199887766",
		"juanito", email, "$2a$04$hash", role,
		now, now,
	)
}
