package repositories

import (
	"context"
	"strings"

	"github.com/Gisely-Aguiar/backend-vousher/domain"
	"gorm.io/gorm"
)

// VoucherUserRepository define as operações sobre voucher_users
type VoucherUserRepository interface {
	Create(ctx context.Context, voucher *domain.VoucherUser) error
	FindByVoucherID(ctx context.Context, voucherID string) (*domain.VoucherUserView, error)
	List(ctx context.Context, search string) ([]domain.VoucherUserView, error)
	Count(ctx context.Context) (int64, error)
}

type voucherUserRepository struct {
	db *gorm.DB
}

// NewVoucherUserRepository cria o repositório sobre o pool de conexões
func NewVoucherUserRepository(db *gorm.DB) VoucherUserRepository {
	return &voucherUserRepository{db: db}
}

// Create insere o cliente; registered_at fica por conta do autoCreateTime
func (r *voucherUserRepository) Create(ctx context.Context, voucher *domain.VoucherUser) error {
	return r.db.WithContext(ctx).Create(voucher).Error
}

// withRegisteredBy monta o SELECT com o nome de quem cadastrou
func (r *voucherUserRepository) withRegisteredBy(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("voucher_users AS vu").
		Select("vu.*, su.name AS registered_by_name").
		Joins("LEFT JOIN system_users su ON vu.registered_by = su.id")
}

// FindByVoucherID busca por igualdade exata.
// voucher_id não é único: com duplicados devolvemos o de menor id.
func (r *voucherUserRepository) FindByVoucherID(ctx context.Context, voucherID string) (*domain.VoucherUserView, error) {
	var views []domain.VoucherUserView
	err := r.withRegisteredBy(ctx).
		Where("vu.voucher_id = ?", voucherID).
		Order("vu.id ASC").
		Limit(1).
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, ErrNotFound
	}
	return &views[0], nil
}

// List devolve os clientes do mais recente para o mais antigo.
// Com search, filtra por substring em nome, voucher_id, email ou telefone.
func (r *voucherUserRepository) List(ctx context.Context, search string) ([]domain.VoucherUserView, error) {
	query := r.withRegisteredBy(ctx)

	if search != "" {
		term := "%" + escapeLike(search) + "%"
		query = query.Where(
			"vu.name LIKE ? OR vu.voucher_id LIKE ? OR vu.email LIKE ? OR vu.phone LIKE ?",
			term, term, term, term,
		)
	}

	views := make([]domain.VoucherUserView, 0)
	err := query.Order("vu.registered_at DESC, vu.id DESC").Scan(&views).Error
	return views, err
}

// Count conta os clientes cadastrados
func (r *voucherUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.VoucherUser{}).Count(&count).Error
	return count, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike faz % e _ do termo valerem como caracteres literais
// (o caractere de escape padrão do MySQL é a barra invertida)
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
