package services

import (
	"context"
	"errors"

	"github.com/Gisely-Aguiar/backend-vousher/apperrors"
	"github.com/Gisely-Aguiar/backend-vousher/domain"
	"github.com/Gisely-Aguiar/backend-vousher/dto"
	"github.com/Gisely-Aguiar/backend-vousher/events"
	"github.com/Gisely-Aguiar/backend-vousher/repositories"
	"github.com/rs/zerolog/log"
)

// VoucherUserService cadastra e consulta clientes com voucher
type VoucherUserService interface {
	CreateVoucherUser(ctx context.Context, actor domain.Identity, req dto.CreateVoucherUserRequest) (*dto.CreatedVoucherUser, error)
	FindByVoucherID(ctx context.Context, voucherID string) (*domain.VoucherUserView, error)
	ListVoucherUsers(ctx context.Context, search string) ([]domain.VoucherUserView, error)
}

type voucherUserService struct {
	repo      repositories.VoucherUserRepository
	cache     repositories.VoucherCache
	publisher events.Publisher
}

// NewVoucherUserService cria o serviço de clientes
func NewVoucherUserService(repo repositories.VoucherUserRepository, cache repositories.VoucherCache, publisher events.Publisher) VoucherUserService {
	return &voucherUserService{repo: repo, cache: cache, publisher: publisher}
}

// CreateVoucherUser cadastra o cliente em nome do operador autenticado
func (s *voucherUserService) CreateVoucherUser(ctx context.Context, actor domain.Identity, req dto.CreateVoucherUserRequest) (*dto.CreatedVoucherUser, error) {
	if err := validate.Struct(req); err != nil {
		return nil, apperrors.ErrMissingVoucherField
	}

	voucher := &domain.VoucherUser{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		VoucherID:       req.VoucherID,
		VoucherPassword: req.VoucherPassword,
		Notes:           req.Notes,
		RegisteredBy:    actor.ID,
	}

	if err := s.repo.Create(ctx, voucher); err != nil {
		return nil, apperrors.Store(err)
	}

	s.cache.Delete(voucher.VoucherID)

	// Evento é melhor-esforço: falha na fila não desfaz o cadastro
	if err := s.publisher.PublishVoucherCreated(ctx, voucher); err != nil {
		log.Warn().Err(err).Uint("voucher_user_id", voucher.ID).Msg("publish voucher event failed")
	}

	log.Info().Uint("id", voucher.ID).Uint("registered_by", actor.ID).Msg("voucher user created")

	created := dto.NewCreatedVoucherUser(voucher)
	return &created, nil
}

// FindByVoucherID busca pelo código exato (primeiro registro se houver duplicados)
func (s *voucherUserService) FindByVoucherID(ctx context.Context, voucherID string) (*domain.VoucherUserView, error) {
	if view, ok := s.cache.Get(voucherID); ok {
		return view, nil
	}

	view, err := s.repo.FindByVoucherID(ctx, voucherID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrVoucherNotFound
		}
		return nil, apperrors.Store(err)
	}

	s.cache.Set(voucherID, view)
	return view, nil
}

// ListVoucherUsers lista todos (search vazio) ou filtra por substring
func (s *voucherUserService) ListVoucherUsers(ctx context.Context, search string) ([]domain.VoucherUserView, error) {
	views, err := s.repo.List(ctx, search)
	if err != nil {
		return nil, apperrors.Store(err)
	}
	return views, nil
}
