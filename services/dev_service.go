package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Gisely-Aguiar/backend-vousher/apperrors"
	"github.com/Gisely-Aguiar/backend-vousher/domain"
	"github.com/Gisely-Aguiar/backend-vousher/dto"
	"github.com/Gisely-Aguiar/backend-vousher/repositories"
	"github.com/Gisely-Aguiar/backend-vousher/utils"
	"github.com/rs/zerolog/log"
)

// defaultAccount é uma das contas fixas do ambiente de desenvolvimento
type defaultAccount struct {
	username string
	password string
	name     string
	email    string
	userType domain.UserType
}

var defaultAccounts = []defaultAccount{
	{"master", "Master@123", "Administrador Master", "master@empresa.com", domain.UserTypeMaster},
	{"admin", "admin123", "Administrador", "admin@empresa.com", domain.UserTypeAdministrador},
	{"funcionario", "func123", "Funcionário", "funcionario@empresa.com", domain.UserTypeFuncionario},
}

// DevService reúne as rotas de bootstrap e inspeção.
// Só é montado com APP_ENV=development.
type DevService interface {
	ResetDatabase(ctx context.Context) (*dto.ResetResponse, error)
	ListSystemUsers(ctx context.Context) ([]dto.DevSystemUser, error)
	Status(ctx context.Context) (*dto.StatusResponse, error)
}

type devService struct {
	dev       repositories.DevRepository
	users     repositories.SystemUserRepository
	vouchers  repositories.VoucherUserRepository
	cache     repositories.VoucherCache
	passwords utils.PasswordChecker
}

// NewDevService cria o serviço de desenvolvimento
func NewDevService(
	dev repositories.DevRepository,
	users repositories.SystemUserRepository,
	vouchers repositories.VoucherUserRepository,
	cache repositories.VoucherCache,
	passwords utils.PasswordChecker,
) DevService {
	return &devService{dev: dev, users: users, vouchers: vouchers, cache: cache, passwords: passwords}
}

// ResetDatabase apaga tudo e recria master, admin e funcionario
func (s *devService) ResetDatabase(ctx context.Context) (*dto.ResetResponse, error) {
	seeds := make([]domain.SystemUser, 0, len(defaultAccounts))
	created := make([]dto.SeededUser, 0, len(defaultAccounts))

	for _, acc := range defaultAccounts {
		password, err := s.passwords.Hash(acc.password)
		if err != nil {
			return nil, fmt.Errorf("hash seed password: %w", err)
		}
		seeds = append(seeds, domain.SystemUser{
			Username: acc.username,
			Password: password,
			Name:     acc.name,
			Email:    acc.email,
			UserType: acc.userType,
			IsActive: true,
		})
		created = append(created, dto.SeededUser{Username: acc.username, Password: acc.password, Tipo: acc.userType})
	}

	if err := s.dev.Reset(ctx, seeds); err != nil {
		return nil, apperrors.Store(err)
	}
	s.cache.Flush()

	log.Warn().Int("seeded", len(seeds)).Msg("database reset")

	return &dto.ResetResponse{
		Success:         true,
		Message:         "Banco de dados resetado",
		UsuariosCriados: created,
	}, nil
}

// ListSystemUsers devolve os operadores com a senha como está gravada
func (s *devService) ListSystemUsers(ctx context.Context) ([]dto.DevSystemUser, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.Store(err)
	}

	out := make([]dto.DevSystemUser, 0, len(users))
	for _, u := range users {
		out = append(out, dto.DevSystemUser{
			ID:       u.ID,
			Username: u.Username,
			Password: u.Password,
			Name:     u.Name,
			UserType: u.UserType,
		})
	}
	return out, nil
}

// Status conta operadores e clientes
func (s *devService) Status(ctx context.Context) (*dto.StatusResponse, error) {
	systemUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	voucherUsers, err := s.vouchers.Count(ctx)
	if err != nil {
		return nil, apperrors.Store(err)
	}

	return &dto.StatusResponse{
		Success:      true,
		SystemUsers:  systemUsers,
		VoucherUsers: voucherUsers,
		Timestamp:    time.Now(),
	}, nil
}
