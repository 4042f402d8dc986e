package domain

// Identity é o operador autenticado de uma requisição
// (claims do token, injetadas pelo middleware de autenticação)
type Identity struct {
	ID       uint     `json:"id"`
	Username string   `json:"username"`
	Name     string   `json:"name"`
	UserType UserType `json:"user_type"`
	Email    string   `json:"email"`
}

// IsMaster informa se o operador pode criar outros usuários do sistema
func (i Identity) IsMaster() bool {
	return i.UserType == UserTypeMaster
}
