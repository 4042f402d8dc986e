package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gisely-Aguiar/backend-vousher/apperrors"
	"github.com/Gisely-Aguiar/backend-vousher/dto"
	"github.com/Gisely-Aguiar/backend-vousher/repositories"
	"github.com/Gisely-Aguiar/backend-vousher/utils"
	"github.com/rs/zerolog/log"
)

// AuthService autentica operadores e emite o token de sessão
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	repo      repositories.SystemUserRepository
	tokens    utils.TokenService
	passwords utils.PasswordChecker
}

// NewAuthService cria o serviço com o repositório, o emissor de tokens
// e a estratégia de comparação de senha
func NewAuthService(repo repositories.SystemUserRepository, tokens utils.TokenService, passwords utils.PasswordChecker) AuthService {
	return &authService{repo: repo, tokens: tokens, passwords: passwords}
}

// Login valida usuário e senha e devolve o token com o perfil público
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	// 1. Usuário e senha são obrigatórios
	if err := validate.Struct(req); err != nil {
		return nil, apperrors.ErrMissingCredentials
	}

	// 2. Só operadores ativos podem entrar
	user, err := s.repo.FindActiveByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			log.Info().Str("username", req.Username).Msg("login: user not found")
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Store(err)
	}

	// 3. Compara a senha (bcrypt ou texto puro, conforme a configuração)
	if !s.passwords.Compare(user.Password, req.Password) {
		log.Info().Str("username", req.Username).Msg("login: wrong password")
		return nil, apperrors.ErrInvalidPassword
	}

	// 4. Emite o token com a identidade do operador
	token, err := s.tokens.Issue(user.Identity())
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	log.Info().Str("username", user.Username).Str("user_type", string(user.UserType)).Msg("login succeeded")

	return &dto.LoginResponse{
		Success: true,
		Token:   token,
		User:    dto.NewSystemUserProfile(user),
	}, nil
}
