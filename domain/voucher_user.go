package domain

import "time"

// VoucherUser representa um cliente com o par voucher_id / voucher_password
type VoucherUser struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	Email           *string   `gorm:"size:100" json:"email"`
	Phone           string    `gorm:"size:20;not null" json:"phone"`
	VoucherID       string    `gorm:"size:100;index;not null" json:"voucher_id"` // Não é único: a busca devolve o primeiro
	VoucherPassword string    `gorm:"size:100;not null" json:"voucher_password"`
	Notes           *string   `json:"notes"`
	RegisteredBy    uint      `gorm:"not null" json:"registered_by"`
	RegisteredAt    time.Time `gorm:"autoCreateTime" json:"registered_at"`
}

// TableName especifica o nome da tabela no MySQL
func (VoucherUser) TableName() string {
	return "voucher_users"
}

// VoucherUserView é o cliente como aparece nas buscas:
// inclui o nome de quem cadastrou (LEFT JOIN em system_users)
type VoucherUserView struct {
	VoucherUser
	RegisteredByName *string `gorm:"column:registered_by_name" json:"registered_by_name"`
}
