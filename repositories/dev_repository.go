package repositories

import (
	"context"

	"github.com/Gisely-Aguiar/backend-vousher/domain"
	"gorm.io/gorm"
)

// DevRepository reúne as operações destrutivas de desenvolvimento
type DevRepository interface {
	Reset(ctx context.Context, seeds []domain.SystemUser) error
}

type devRepository struct {
	db *gorm.DB
}

// NewDevRepository cria o repositório de bootstrap
func NewDevRepository(db *gorm.DB) DevRepository {
	return &devRepository{db: db}
}

// Reset apaga clientes e operadores e recria as contas fixas.
// Tudo numa transação: ou o banco fica semeado ou nada muda.
func (r *devRepository) Reset(ctx context.Context, seeds []domain.SystemUser) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Clientes primeiro (referenciam system_users)
		if err := tx.Exec("DELETE FROM voucher_users").Error; err != nil {
			return err
		}

		// 2. Operadores
		if err := tx.Exec("DELETE FROM system_users").Error; err != nil {
			return err
		}

		// 3. Contas padrão
		return tx.Create(&seeds).Error
	})
}
