package repositories

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase abre o pool de conexões com o MySQL.
// O esquema já existe: não rodamos AutoMigrate aqui.
// Requisições além de poolSize esperam por uma conexão livre.
func NewDatabase(dsn string, poolSize int) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), NewGormConfig())
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(poolSize)
	sqlDB.SetMaxIdleConns(poolSize)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// NewGormConfig é a configuração compartilhada com os testes.
// TranslateError converte o erro 1062 do MySQL em gorm.ErrDuplicatedKey.
func NewGormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	}
}
