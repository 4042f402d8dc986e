package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gisely-Aguiar/backend-vousher/apperrors"
	"github.com/Gisely-Aguiar/backend-vousher/domain"
	"github.com/Gisely-Aguiar/backend-vousher/dto"
	"github.com/Gisely-Aguiar/backend-vousher/repositories"
	"github.com/Gisely-Aguiar/backend-vousher/utils"
	"github.com/rs/zerolog/log"
)

// SystemUserService cria operadores (apenas para o master)
type SystemUserService interface {
	CreateSystemUser(ctx context.Context, actor domain.Identity, req dto.CreateSystemUserRequest) (*dto.SystemUserProfile, error)
}

type systemUserService struct {
	repo      repositories.SystemUserRepository
	passwords utils.PasswordChecker
}

// NewSystemUserService cria o serviço de gestão de operadores
func NewSystemUserService(repo repositories.SystemUserRepository, passwords utils.PasswordChecker) SystemUserService {
	return &systemUserService{repo: repo, passwords: passwords}
}

// CreateSystemUser cria um administrador ou funcionário em nome do master autenticado.
// Todas as validações acontecem antes de qualquer escrita.
func (s *systemUserService) CreateSystemUser(ctx context.Context, actor domain.Identity, req dto.CreateSystemUserRequest) (*dto.SystemUserProfile, error) {
	// 1. Só o master cria usuários
	if !actor.IsMaster() {
		return nil, apperrors.ErrForbidden
	}

	// 2. Campos obrigatórios
	if err := validate.Struct(req); err != nil {
		return nil, apperrors.ErrMissingUserField
	}

	// 3. Master não pode ser criado por aqui
	userType := domain.UserType(req.UserType)
	if !domain.CreatableUserType(userType) {
		return nil, apperrors.ErrInvalidUserType
	}

	// 4. Username livre? (não é atômico com o INSERT: o índice único cobre a corrida)
	exists, err := s.repo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	if exists {
		return nil, apperrors.ErrUsernameTaken
	}

	// 5. Prepara a senha para gravação
	password, err := s.passwords.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	createdBy := actor.ID
	user := &domain.SystemUser{
		Username:  req.Username,
		Password:  password,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		UserType:  userType,
		IsActive:  true,
		CreatedBy: &createdBy,
	}

	// 6. Grava
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, apperrors.Store(err)
	}

	log.Info().
		Uint("id", user.ID).
		Str("username", user.Username).
		Str("user_type", string(user.UserType)).
		Uint("created_by", actor.ID).
		Msg("system user created")

	profile := dto.NewSystemUserProfile(user)
	return &profile, nil
}
