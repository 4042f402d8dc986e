package dto

import "github.com/Gisely-Aguiar/backend-vousher/domain"

// CreateVoucherUserRequest é o corpo de POST /api/voucher-users
type CreateVoucherUserRequest struct {
	Name            string  `json:"name" validate:"required"`
	Email           *string `json:"email"`
	Phone           string  `json:"phone" validate:"required"`
	VoucherID       string  `json:"voucher_id" validate:"required"`
	VoucherPassword string  `json:"voucher_password" validate:"required"`
	Notes           *string `json:"notes"`
}

// CreatedVoucherUser ecoa o voucher cadastrado como confirmação
type CreatedVoucherUser struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Email           *string `json:"email"`
	Phone           string  `json:"phone"`
	VoucherID       string  `json:"voucher_id"`
	VoucherPassword string  `json:"voucher_password"`
}

// NewCreatedVoucherUser monta a confirmação a partir do registro salvo
func NewCreatedVoucherUser(v *domain.VoucherUser) CreatedVoucherUser {
	return CreatedVoucherUser{
		ID:              v.ID,
		Name:            v.Name,
		Email:           v.Email,
		Phone:           v.Phone,
		VoucherID:       v.VoucherID,
		VoucherPassword: v.VoucherPassword,
	}
}

// CreateVoucherUserResponse é a resposta 201 do cadastro
type CreateVoucherUserResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    CreatedVoucherUser `json:"data"`
}

// VoucherUserResponse é a resposta da busca por voucher_id
type VoucherUserResponse struct {
	Success bool                    `json:"success"`
	User    *domain.VoucherUserView `json:"user"`
}

// VoucherUserListResponse é a resposta da listagem
type VoucherUserListResponse struct {
	Success bool                     `json:"success"`
	Data    []domain.VoucherUserView `json:"data"`
	Count   int                      `json:"count"`
}
