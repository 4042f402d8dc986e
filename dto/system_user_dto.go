package dto

// CreateSystemUserRequest é o corpo de POST /api/system-users
// Só administrador e funcionario podem ser criados por aqui
type CreateSystemUserRequest struct {
	Username string  `json:"username" validate:"required"`
	Password string  `json:"password" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required"`
	Phone    *string `json:"phone"`
	UserType string  `json:"user_type" validate:"required"`
}

// CreateSystemUserResponse confirma a criação (sem ecoar a senha)
type CreateSystemUserResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	User    SystemUserProfile `json:"user"`
}
