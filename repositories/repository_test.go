package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const dbError = "db error"

// setupTest abre o GORM sobre um sql.DB simulado.
// No fim do teste todas as expectativas precisam ter sido cumpridas.
func setupTest(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err, "Error mocking DB")

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), NewGormConfig())
	require.NoError(t, err, "Error opening gorm")

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet(), "Expectations were not met")
		sqlDB.Close()
	})
	return db, mock
}
