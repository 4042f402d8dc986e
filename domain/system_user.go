package domain

// UserType define os perfis de operador do sistema
type UserType string

const (
	UserTypeMaster        UserType = "master"        // Único perfil que cria outros usuários
	UserTypeAdministrador UserType = "administrador" // Administrador
	UserTypeFuncionario   UserType = "funcionario"   // Funcionário
)

// SystemUser representa um operador que se autentica no sistema
type SystemUser struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	Username  string   `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Password  string   `gorm:"size:255;not null" json:"-"` // Hash bcrypt (ou texto puro em dev)
	Name      string   `gorm:"size:100;not null" json:"name"`
	Email     string   `gorm:"size:100" json:"email"`
	Phone     *string  `gorm:"size:20" json:"phone"`
	UserType  UserType `gorm:"type:varchar(20);not null" json:"user_type"`
	IsActive  bool     `gorm:"not null" json:"is_active"`
	CreatedBy *uint    `json:"created_by"`
}

// TableName especifica o nome da tabela no MySQL
func (SystemUser) TableName() string {
	return "system_users"
}

// Identity devolve os dados que viajam dentro do token
func (u *SystemUser) Identity() Identity {
	return Identity{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
		UserType: u.UserType,
		Email:    u.Email,
	}
}

// CreatableUserType indica se o tipo pode ser criado pela rota comum.
// Contas master só nascem pelo reset de desenvolvimento.
func CreatableUserType(t UserType) bool {
	return t == UserTypeAdministrador || t == UserTypeFuncionario
}
