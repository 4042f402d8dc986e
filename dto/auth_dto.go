package dto

import "github.com/Gisely-Aguiar/backend-vousher/domain"

// LoginRequest é o corpo de POST /api/auth/login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse devolve o token e o perfil público do operador
type LoginResponse struct {
	Success bool              `json:"success"`
	Token   string            `json:"token"`
	User    SystemUserProfile `json:"user"`
}

// SystemUserProfile é o operador sem a senha
type SystemUserProfile struct {
	ID       uint            `json:"id"`
	Username string          `json:"username"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	UserType domain.UserType `json:"user_type"`
	Phone    *string         `json:"phone"`
}

// NewSystemUserProfile monta o perfil público a partir do registro
func NewSystemUserProfile(u *domain.SystemUser) SystemUserProfile {
	return SystemUserProfile{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		Email:    u.Email,
		UserType: u.UserType,
		Phone:    u.Phone,
	}
}
