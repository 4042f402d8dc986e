package dto

import (
	"time"

	"github.com/Gisely-Aguiar/backend-vousher/domain"
)

// SeededUser é uma das contas fixas criadas pelo reset
type SeededUser struct {
	Username string          `json:"username"`
	Password string          `json:"password"`
	Tipo     domain.UserType `json:"tipo"`
}

// ResetResponse é a resposta de POST /api/dev/reset-db
type ResetResponse struct {
	Success         bool         `json:"success"`
	Message         string       `json:"message"`
	UsuariosCriados []SeededUser `json:"usuarios_criados"`
}

// DevSystemUser é a linha crua de GET /api/dev/users (inclui a senha armazenada)
type DevSystemUser struct {
	ID       uint            `json:"id"`
	Username string          `json:"username"`
	Password string          `json:"password"`
	Name     string          `json:"name"`
	UserType domain.UserType `json:"user_type"`
}

// DevUsersResponse é a resposta de GET /api/dev/users
type DevUsersResponse struct {
	Success bool            `json:"success"`
	Users   []DevSystemUser `json:"users"`
}

// StatusResponse é a resposta de GET /api/dev/status
type StatusResponse struct {
	Success      bool      `json:"success"`
	SystemUsers  int64     `json:"system_users"`
	VoucherUsers int64     `json:"voucher_users"`
	Timestamp    time.Time `json:"timestamp"`
}
