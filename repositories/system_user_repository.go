package repositories

import (
	"context"
	"errors"

	"github.com/Gisely-Aguiar/backend-vousher/domain"
	"gorm.io/gorm"
)

// SystemUserRepository define as operações sobre system_users
type SystemUserRepository interface {
	FindActiveByUsername(ctx context.Context, username string) (*domain.SystemUser, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, user *domain.SystemUser) error
	List(ctx context.Context) ([]domain.SystemUser, error)
	Count(ctx context.Context) (int64, error)
}

// systemUserRepository é a implementação com GORM
type systemUserRepository struct {
	db *gorm.DB
}

// NewSystemUserRepository cria o repositório sobre o pool de conexões
func NewSystemUserRepository(db *gorm.DB) SystemUserRepository {
	return &systemUserRepository{db: db}
}

// FindActiveByUsername busca o operador ativo usado no login
// SELECT * FROM system_users WHERE username = ? AND is_active = true
func (r *systemUserRepository) FindActiveByUsername(ctx context.Context, username string) (*domain.SystemUser, error) {
	var user domain.SystemUser
	err := r.db.WithContext(ctx).
		Where("username = ? AND is_active = ?", username, true).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ExistsByUsername verifica se o username já está em uso (ativo ou não)
func (r *systemUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.SystemUser{}).
		Where("username = ?", username).
		Count(&count).Error
	return count > 0, err
}

// Create insere o operador; o ID gerado é preenchido em user.ID
func (r *systemUserRepository) Create(ctx context.Context, user *domain.SystemUser) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

// List devolve todos os operadores (usado só pela rota de debug)
func (r *systemUserRepository) List(ctx context.Context) ([]domain.SystemUser, error) {
	var users []domain.SystemUser
	err := r.db.WithContext(ctx).Order("id").Find(&users).Error
	return users, err
}

// Count conta os operadores cadastrados
func (r *systemUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.SystemUser{}).Count(&count).Error
	return count, err
}
